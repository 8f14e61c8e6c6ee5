package models

// DisplayType บอกชนิดของ input ที่ใช้ render คำถามหนึ่งข้อ
type DisplayType string

const (
	TextLine     DisplayType = "textLine"
	TextArea     DisplayType = "textArea"
	SingleChoice DisplayType = "singleChoice"
	Boolean      DisplayType = "boolean"
	Date         DisplayType = "date"
	Group        DisplayType = "group"
)

// RuleKind ชนิดของ validator ที่รองรับใน pipeline
type RuleKind string

const (
	RuleRequired  RuleKind = "required"
	RuleMaxLength RuleKind = "maxLength"
	RuleEmail     RuleKind = "email"
	RuleChoice    RuleKind = "choice"
	RuleDate      RuleKind = "date"
	RuleIntRange  RuleKind = "intRange"
)

// ValidatorSpec หนึ่งกฎใน pipeline ของคำถาม — รันตามลำดับที่ประกาศ
type ValidatorSpec struct {
	Kind    RuleKind `json:"kind"`
	Message string   `json:"message"`
	Max     int      `json:"max,omitempty"` // maxLength / intRange upper bound
	Min     int      `json:"min,omitempty"` // intRange lower bound
}

// Choice ตัวเลือกหนึ่งรายการของคำถามแบบ single choice
type Choice struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// QuestionDefinition นิยามคำถามหนึ่งข้อในหนึ่ง journey
//
// Immutable หลังสร้างเสร็จ: instance เดียวกันถูกแชร์ระหว่าง create journey
// และ edit journey — ห้าม handler ไหนแก้ field ของมัน
type QuestionDefinition struct {
	FieldName  string          `json:"fieldName"` // unique ภายใน journey
	Slug       string          `json:"slug"`      // url segment, unique ภายใน section
	Title      string          `json:"title"`
	Prompt     string          `json:"prompt,omitempty"`
	Display    DisplayType     `json:"display"`
	Choices    []Choice        `json:"choices,omitempty"`
	Validators []ValidatorSpec `json:"validators,omitempty"`
	// ActiveWhen เป็น expression เหนือ answers map (expr-lang);
	// ค่าว่าง = active เสมอ, อ้างถึง field ที่ยังไม่ตอบ = inactive
	ActiveWhen string `json:"activeWhen,omitempty"`
}

// HasChoice ตรวจว่า value อยู่ในชุดตัวเลือกของคำถามหรือไม่
func (q *QuestionDefinition) HasChoice(value string) bool {
	for _, c := range q.Choices {
		if c.Value == value {
			return true
		}
	}
	return false
}
