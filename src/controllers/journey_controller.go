package controllers

import (
	"log"

	"Backend-Feedback-Journey/src/models"
	"Backend-Feedback-Journey/src/services/answers"
	"Backend-Feedback-Journey/src/services/journeys"
	"Backend-Feedback-Journey/src/services/validation"
	"Backend-Feedback-Journey/src/utils"

	"github.com/gofiber/fiber/v2"
)

// journey ขา create ใช้ instance เดียวทั้ง process — นิยามเป็น immutable
var giveFeedback = journeys.FeedbackJourney()

// QuestionPage คือ render model ที่ส่งให้ template layer ภายนอก
type QuestionPage struct {
	JourneyTitle string                     `json:"journeyTitle"`
	SectionName  string                     `json:"sectionName"`
	Question     *models.QuestionDefinition `json:"question"`
	Value        string                     `json:"value"`
	Action       string                     `json:"action"`
	BackLink     string                     `json:"backLink"`
	Error        *validation.FieldError     `json:"error,omitempty"`
}

// AnswerRow หนึ่งแถวในหน้า check-your-answers
type AnswerRow struct {
	Title      string `json:"title"`
	FieldName  string `json:"fieldName"`
	Value      string `json:"value"`
	Answered   bool   `json:"answered"`
	ChangeLink string `json:"changeLink"`
}

// StartJourney - GET /give-feedback
func StartJourney(c *fiber.Ctx) error {
	sid := utils.SessionID(c)

	a, _, err := answers.Get(c.Context(), sid, giveFeedback.ID)
	if err != nil {
		log.Println("❌ session read:", err)
		a = models.Answers{}
	}
	return c.Redirect(giveFeedback.FirstTarget(a), fiber.StatusSeeOther)
}

// GetQuestion - GET /give-feedback/:section/:question
func GetQuestion(c *fiber.Ctx) error {
	pos, err := giveFeedback.Resolve(c.Params("section"), c.Params("question"))
	if err != nil {
		return utils.HandleError(c, fiber.StatusNotFound, "Question not found")
	}

	sid := utils.SessionID(c)
	a, _, err := answers.Get(c.Context(), sid, giveFeedback.ID)
	if err != nil {
		log.Println("❌ session read:", err)
		return utils.HandleError(c, fiber.StatusInternalServerError, "Something went wrong")
	}

	return c.JSON(questionPage(giveFeedback, pos, a))
}

// PostQuestion - POST /give-feedback/:section/:question
//
// Validation ล้มเหลวไม่หลุดออกจาก render path ของคำถามนี้: ตอบ 400 พร้อม
// render model เดิม + field error, ไม่แตะ flash channel
func PostQuestion(c *fiber.Ctx) error {
	pos, err := giveFeedback.Resolve(c.Params("section"), c.Params("question"))
	if err != nil {
		return utils.HandleError(c, fiber.StatusNotFound, "Question not found")
	}

	sid := utils.SessionID(c)
	a, _, err := answers.Get(c.Context(), sid, giveFeedback.ID)
	if err != nil {
		log.Println("❌ session read:", err)
		return utils.HandleError(c, fiber.StatusInternalServerError, "Something went wrong")
	}

	value, fieldErr := validation.Validate(pos.Question, c.FormValue("value"))
	if fieldErr != nil {
		page := questionPage(giveFeedback, pos, a)
		page.Error = fieldErr
		return c.Status(fiber.StatusBadRequest).JSON(page)
	}

	a.Merge(pos.Question.FieldName, value)
	if err := answers.Set(c.Context(), sid, giveFeedback.ID, a); err != nil {
		log.Println("❌ session write:", err)
		return utils.HandleError(c, fiber.StatusInternalServerError, "Something went wrong")
	}

	// next คำนวณจาก answers ที่เพิ่งอัปเดต — conditional section โผล่/หายตรงนี้
	return c.Redirect(giveFeedback.NextTarget(pos, a), fiber.StatusSeeOther)
}

// GetCheckAnswers - GET /give-feedback/check-your-answers
func GetCheckAnswers(c *fiber.Ctx) error {
	sid := utils.SessionID(c)

	a, _, err := answers.Get(c.Context(), sid, giveFeedback.ID)
	if err != nil {
		log.Println("❌ session read:", err)
		return utils.HandleError(c, fiber.StatusInternalServerError, "Something went wrong")
	}

	flash, _, err := answers.Flash(c.Context(), sid)
	if err != nil {
		log.Println("❌ flash read:", err)
	}

	rows := make([]AnswerRow, 0)
	for _, p := range giveFeedback.ActiveQuestions(a) {
		row := AnswerRow{
			Title:      p.Question.Title,
			FieldName:  p.Question.FieldName,
			ChangeLink: giveFeedback.QuestionPath(p),
		}
		if v, ok := a[p.Question.FieldName]; ok {
			row.Answered = true
			row.Value = v.Raw()
		}
		rows = append(rows, row)
	}

	return c.JSON(fiber.Map{
		"journeyTitle": giveFeedback.Title,
		"rows":         rows,
		"complete":     giveFeedback.IsComplete(a),
		"submitAction": giveFeedback.BasePath() + "/submit",
		"flash":        flash,
	})
}

// GetSuccess - GET /give-feedback/success
func GetSuccess(c *fiber.Ctx) error {
	sid := utils.SessionID(c)

	flash, ok, err := answers.Flash(c.Context(), sid)
	if err != nil {
		log.Println("❌ flash read:", err)
	}
	if !ok || !flash.Submitted {
		// เข้าหน้า success ตรง ๆ โดยไม่ได้เพิ่ง submit — พากลับไปเริ่ม journey
		return c.Redirect(giveFeedback.BasePath(), fiber.StatusSeeOther)
	}

	return c.JSON(fiber.Map{
		"reference": flash.Reference,
		"submitted": true,
	})
}

func questionPage(j *journeys.Journey, pos journeys.Position, a models.Answers) QuestionPage {
	page := QuestionPage{
		JourneyTitle: j.Title,
		SectionName:  pos.Section.Name,
		Question:     pos.Question,
		Action:       j.QuestionPath(pos),
		BackLink:     j.PreviousTarget(pos, a),
	}
	if v, ok := a[pos.Question.FieldName]; ok {
		page.Value = v.Raw()
	}
	return page
}
