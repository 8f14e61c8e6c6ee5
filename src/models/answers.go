package models

// ValueKind ชนิดของค่าคำตอบ
type ValueKind string

const (
	TextValue   ValueKind = "text"
	BoolValue   ValueKind = "bool"
	ChoiceValue ValueKind = "choice"
	DateValue   ValueKind = "date"
	GroupValue  ValueKind = "group"
)

// AnswerValue is a tagged union over the value shapes a question can produce.
// Exactly the fields matching Kind are meaningful; the rest stay zero so the
// struct round-trips through JSON for the session store.
type AnswerValue struct {
	Kind   ValueKind         `json:"kind"`
	Text   string            `json:"text,omitempty"`
	Bool   bool              `json:"bool,omitempty"`
	Date   string            `json:"date,omitempty"` // ISO yyyy-mm-dd
	Fields map[string]string `json:"fields,omitempty"`
}

func NewText(s string) AnswerValue   { return AnswerValue{Kind: TextValue, Text: s} }
func NewChoice(s string) AnswerValue { return AnswerValue{Kind: ChoiceValue, Text: s} }
func NewBool(b bool) AnswerValue     { return AnswerValue{Kind: BoolValue, Bool: b} }
func NewDate(iso string) AnswerValue { return AnswerValue{Kind: DateValue, Date: iso} }

func NewGroup(fields map[string]string) AnswerValue {
	return AnswerValue{Kind: GroupValue, Fields: fields}
}

// Raw returns the value as it would appear in a rendered input.
func (v AnswerValue) Raw() string {
	switch v.Kind {
	case BoolValue:
		if v.Bool {
			return "yes"
		}
		return "no"
	case DateValue:
		return v.Date
	default:
		return v.Text
	}
}

// IsTrue — true เฉพาะคำตอบ boolean ที่ตอบ yes
func (v AnswerValue) IsTrue() bool {
	return v.Kind == BoolValue && v.Bool
}

// Answers เก็บคำตอบระหว่างทางของ journey หนึ่งรอบ, key คือ fieldName
//
// Key ที่ยังไม่ได้ตอบจะไม่อยู่ใน map เลย — absence ไม่เท่ากับค่าว่าง
type Answers map[string]AnswerValue

// Has reports whether the field has been answered at all.
func (a Answers) Has(field string) bool {
	_, ok := a[field]
	return ok
}

// Text returns the text of the field, or "" when absent.
func (a Answers) Text(field string) string {
	if v, ok := a[field]; ok {
		return v.Text
	}
	return ""
}

// Merge writes one answered field, keeping the rest untouched.
func (a Answers) Merge(field string, v AnswerValue) {
	a[field] = v
}

// Clone copies the bag so navigation code can evaluate what-if states.
func (a Answers) Clone() Answers {
	out := make(Answers, len(a))
	for k, v := range a {
		out[k] = v
	}
	return out
}

// Env flattens the answers into a map for predicate evaluation.
// Booleans become bool, dates and choices become their string value.
func (a Answers) Env() map[string]any {
	env := make(map[string]any, len(a))
	for k, v := range a {
		switch v.Kind {
		case BoolValue:
			env[k] = v.Bool
		case DateValue:
			env[k] = v.Date
		default:
			env[k] = v.Text
		}
	}
	return env
}
