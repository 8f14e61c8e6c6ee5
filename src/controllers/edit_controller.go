package controllers

import (
	"errors"
	"log"

	"Backend-Feedback-Journey/src/models"
	"Backend-Feedback-Journey/src/services/answers"
	"Backend-Feedback-Journey/src/services/feedback"
	"Backend-Feedback-Journey/src/services/journeys"
	"Backend-Feedback-Journey/src/services/validation"
	"Backend-Feedback-Journey/src/utils"

	"github.com/gofiber/fiber/v2"
)

// Edit flow ใช้คำถาม/validator ชุดเดียวกับขา create แต่ไม่แตะ draft ใน
// session เลย: answers ถูก seed จาก record สด ๆ ทุก request แล้วเขียนกลับ
// ลง store ตรง ๆ ทีละหนึ่ง field

// HandleEditGet - GET /manage/feedback/:id/edit/:section/:question
func HandleEditGet(c *fiber.Ctx) error {
	id := c.Params("id")

	rec, err := feedback.FindByID(c.Context(), id, true)
	if err != nil {
		if errors.Is(err, feedback.ErrNotFound) {
			return utils.HandleError(c, fiber.StatusNotFound, "Feedback not found")
		}
		log.Println("❌ load feedback:", err)
		return utils.HandleError(c, fiber.StatusInternalServerError, "Something went wrong")
	}

	editJourney := giveFeedback.ForEdit(id)
	pos, err := editJourney.Resolve(c.Params("section"), c.Params("question"))
	if err != nil {
		return utils.HandleError(c, fiber.StatusNotFound, "Question not found")
	}

	a := feedback.FromRecord(rec)

	// error จากรอบ POST ก่อนหน้าเดินทางมาทาง flash — อ่านครั้งเดียวแล้วหาย
	flash, _, err := answers.Flash(c.Context(), utils.SessionID(c))
	if err != nil {
		log.Println("❌ flash read:", err)
	}

	page := questionPage(editJourney, pos, a)
	if flash.Error != "" {
		page.Error = &validation.FieldError{Field: pos.Question.FieldName, Message: flash.Error}
	}
	return c.JSON(page)
}

// HandleEditPost - POST /manage/feedback/:id/edit/:section/:question
//
// หนึ่ง POST แก้ได้หนึ่ง field เท่านั้น และ field ต้องอยู่ใน allow-list —
// request ที่ craft มาแก้ field อื่นถูกปัดกลับหน้า detail ก่อนถึง validator
func HandleEditPost(c *fiber.Ctx) error {
	id := c.Params("id")
	sid := utils.SessionID(c)
	ctx := c.Context()

	editJourney := giveFeedback.ForEdit(id)
	pos, err := editJourney.Resolve(c.Params("section"), c.Params("question"))
	if err != nil {
		return utils.HandleError(c, fiber.StatusNotFound, "Question not found")
	}

	if !journeys.EditableFields[pos.Question.FieldName] {
		return c.Redirect(editJourney.DetailPath(), fiber.StatusSeeOther)
	}

	if _, err := feedback.FindByID(ctx, id, true); err != nil {
		if errors.Is(err, feedback.ErrNotFound) {
			return utils.HandleError(c, fiber.StatusNotFound, "Feedback not found")
		}
		log.Println("❌ load feedback:", err)
		return utils.HandleError(c, fiber.StatusInternalServerError, "Something went wrong")
	}

	value, fieldErr := validation.Validate(pos.Question, c.FormValue("value"))
	if fieldErr != nil {
		if err := answers.SetFlash(ctx, sid, models.FlashMessage{Error: fieldErr.Message}); err != nil {
			log.Println("❌ flash write:", err)
		}
		return c.Redirect(editJourney.QuestionPath(pos), fiber.StatusSeeOther)
	}

	if _, err := feedback.UpdateField(ctx, id, pos.Question.FieldName, value); err != nil {
		if errors.Is(err, feedback.ErrNotFound) {
			return utils.HandleError(c, fiber.StatusNotFound, "Feedback not found")
		}
		log.Println("❌ update feedback:", err)
		if ferr := answers.SetFlash(ctx, sid, models.FlashMessage{
			Error: "The change could not be saved. Please try again.",
		}); ferr != nil {
			log.Println("❌ flash write:", ferr)
		}
		return c.Redirect(editJourney.DetailPath(), fiber.StatusSeeOther)
	}

	if err := answers.SetFlash(ctx, sid, models.FlashMessage{Reference: id, Submitted: true}); err != nil {
		log.Println("❌ flash write:", err)
	}
	return c.Redirect(editJourney.DetailPath(), fiber.StatusSeeOther)
}
