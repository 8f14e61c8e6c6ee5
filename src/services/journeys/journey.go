package journeys

import (
	"errors"
	"fmt"

	"Backend-Feedback-Journey/src/models"

	"github.com/expr-lang/expr/vm"
)

var ErrQuestionNotFound = errors.New("question not found")

// Section กลุ่มคำถามที่เรียงลำดับแล้ว เปิด/ปิดทั้งกลุ่มได้ด้วย predicate
type Section struct {
	Name       string
	Slug       string
	Questions  []*models.QuestionDefinition
	ActiveWhen string

	predicate *vm.Program
}

// NewSection builds a section and compiles its activation predicate up front.
func NewSection(name, slug string, activeWhen string, questions ...*models.QuestionDefinition) *Section {
	return &Section{
		Name:       name,
		Slug:       slug,
		Questions:  questions,
		ActiveWhen: activeWhen,
		predicate:  compilePredicate(activeWhen),
	}
}

// ModeKind แยกว่า journey นี้กำลังรันในขา create หรือขา edit
type ModeKind int

const (
	CreateMode ModeKind = iota
	EditMode
)

// Mode is fixed at construction. The edit flow gets its own Journey value with
// its own base path and back link; nothing is ever patched onto a shared
// instance after the fact.
type Mode struct {
	Kind     ModeKind
	RecordID string
}

// Position ชี้ไปยังคำถามหนึ่งข้อใน journey (section + question)
type Position struct {
	Section  *Section
	Question *models.QuestionDefinition
}

// Journey ลำดับ section/คำถามทั้งหมดของฟอร์มหนึ่งชนิด พร้อม navigation
//
// การคำนวณทุกอย่าง (active questions, next/previous, ความครบถ้วน) ทำสดจาก
// answers ที่ส่งเข้ามาเสมอ — ไม่มี progress cache ให้ stale ได้
type Journey struct {
	ID       string
	Title    string
	Sections []*Section
	Mode     Mode

	// predicate ระดับคำถาม compile ไว้ล่วงหน้า, key = fieldName
	questionPredicates map[string]*vm.Program
}

// NewJourney builds a create-mode journey from ordered sections.
func NewJourney(id, title string, sections ...*Section) *Journey {
	j := &Journey{
		ID:                 id,
		Title:              title,
		Sections:           sections,
		Mode:               Mode{Kind: CreateMode},
		questionPredicates: map[string]*vm.Program{},
	}
	for _, s := range sections {
		for _, q := range s.Questions {
			if q.ActiveWhen != "" {
				j.questionPredicates[q.FieldName] = compilePredicate(q.ActiveWhen)
			}
		}
	}
	return j
}

// ForEdit derives an edit-mode journey over the same immutable definitions.
// Only the mode differs; the sections and question pointers are shared.
func (j *Journey) ForEdit(recordID string) *Journey {
	edit := *j
	edit.Mode = Mode{Kind: EditMode, RecordID: recordID}
	return &edit
}

// BasePath ขึ้นกับ mode เท่านั้น — journey definition เดียวใช้ได้ทั้งสองขา
func (j *Journey) BasePath() string {
	if j.Mode.Kind == EditMode {
		return fmt.Sprintf("/manage/feedback/%s/edit", j.Mode.RecordID)
	}
	return "/give-feedback"
}

// QuestionPath is the canonical URL of one question under the current mode.
func (j *Journey) QuestionPath(p Position) string {
	return fmt.Sprintf("%s/%s/%s", j.BasePath(), p.Section.Slug, p.Question.Slug)
}

// CheckAnswersPath is where navigation lands after the last active question.
func (j *Journey) CheckAnswersPath() string {
	return j.BasePath() + "/check-your-answers"
}

// DetailPath หน้า detail ของ record ที่กำลัง edit (ใช้ได้เฉพาะ edit mode)
func (j *Journey) DetailPath() string {
	return "/manage/feedback/" + j.Mode.RecordID
}

// Resolve maps URL segments to exactly one question definition.
func (j *Journey) Resolve(sectionSlug, questionSlug string) (Position, error) {
	for _, s := range j.Sections {
		if s.Slug != sectionSlug {
			continue
		}
		for _, q := range s.Questions {
			if q.Slug == questionSlug {
				return Position{Section: s, Question: q}, nil
			}
		}
	}
	return Position{}, ErrQuestionNotFound
}

// ActiveQuestions computes the ordered list of questions that currently apply:
// section predicate AND question predicate, both evaluated against the given
// answers. A section left with zero active questions disappears entirely.
func (j *Journey) ActiveQuestions(a models.Answers) []Position {
	env := a.Env()
	var out []Position
	for _, s := range j.Sections {
		if !evalPredicate(s.predicate, env) {
			continue
		}
		for _, q := range s.Questions {
			if !evalPredicate(j.questionPredicates[q.FieldName], env) {
				continue
			}
			out = append(out, Position{Section: s, Question: q})
		}
	}
	return out
}

// NextTarget is the path of the first active question strictly after the
// current one, or check-your-answers when nothing follows. In edit mode a
// successful answer always returns to the record detail page.
func (j *Journey) NextTarget(cur Position, a models.Answers) string {
	if j.Mode.Kind == EditMode {
		return j.DetailPath()
	}
	active := j.ActiveQuestions(a)
	for i, p := range active {
		if p.Question.FieldName == cur.Question.FieldName {
			if i+1 < len(active) {
				return j.QuestionPath(active[i+1])
			}
			return j.CheckAnswersPath()
		}
	}
	// คำถามปัจจุบันเพิ่งถูก deactivate จากคำตอบล่าสุด — เริ่มไล่จากต้นทาง
	if len(active) > 0 {
		return j.QuestionPath(active[0])
	}
	return j.CheckAnswersPath()
}

// PreviousTarget is the last active question strictly before the current one,
// or the journey base for the first question. Edit mode always backs out to
// the record detail page instead of walking the journey.
func (j *Journey) PreviousTarget(cur Position, a models.Answers) string {
	if j.Mode.Kind == EditMode {
		return j.DetailPath()
	}
	active := j.ActiveQuestions(a)
	var prev *Position
	for i := range active {
		if active[i].Question.FieldName == cur.Question.FieldName {
			break
		}
		prev = &active[i]
	}
	if prev != nil {
		return j.QuestionPath(*prev)
	}
	return j.BasePath()
}

// FirstTarget is where the journey starts given the current answers.
func (j *Journey) FirstTarget(a models.Answers) string {
	active := j.ActiveQuestions(a)
	if len(active) == 0 {
		return j.CheckAnswersPath()
	}
	return j.QuestionPath(active[0])
}

// IsComplete — ครบเมื่อทุกคำถามที่ active ตอนนี้มีคำตอบอยู่ใน bag
func (j *Journey) IsComplete(a models.Answers) bool {
	for _, p := range j.ActiveQuestions(a) {
		if !a.Has(p.Question.FieldName) {
			return false
		}
	}
	return true
}
