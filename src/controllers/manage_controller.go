package controllers

import (
	"errors"
	"log"

	"Backend-Feedback-Journey/src/models"
	"Backend-Feedback-Journey/src/services/answers"
	"Backend-Feedback-Journey/src/services/feedback"
	"Backend-Feedback-Journey/src/utils"

	"github.com/gofiber/fiber/v2"
)

// ListFeedback - GET /manage/feedback
//
// items กับ total มาจาก snapshot เดียวกันฝั่ง store — สองตัวเลขบนหน้า
// เดียวกันต้องตรงกันเสมอ
func ListFeedback(c *fiber.Ctx) error {
	list, err := feedback.List(c.Context())
	if err != nil {
		log.Println("❌ list feedback:", err)
		return utils.HandleError(c, fiber.StatusInternalServerError, "Something went wrong")
	}

	flash, _, err := answers.Flash(c.Context(), utils.SessionID(c))
	if err != nil {
		log.Println("❌ flash read:", err)
	}

	return c.JSON(fiber.Map{
		"items": list.Items,
		"total": list.Total,
		"flash": flash,
	})
}

// GetFeedbackDetail - GET /manage/feedback/:id
func GetFeedbackDetail(c *fiber.Ctx) error {
	rec, err := feedback.FindByID(c.Context(), c.Params("id"), true)
	if err != nil {
		if errors.Is(err, feedback.ErrNotFound) {
			return utils.HandleError(c, fiber.StatusNotFound, "Feedback not found")
		}
		log.Println("❌ load feedback:", err)
		return utils.HandleError(c, fiber.StatusInternalServerError, "Something went wrong")
	}

	flash, _, err := answers.Flash(c.Context(), utils.SessionID(c))
	if err != nil {
		log.Println("❌ flash read:", err)
	}

	return c.JSON(fiber.Map{
		"feedback": rec,
		"flash":    flash,
	})
}

// ConfirmDeleteFeedback - GET /manage/feedback/:id/delete
func ConfirmDeleteFeedback(c *fiber.Ctx) error {
	id := c.Params("id")

	rec, err := feedback.FindByID(c.Context(), id, true)
	if err != nil {
		if errors.Is(err, feedback.ErrNotFound) {
			return utils.HandleError(c, fiber.StatusNotFound, "Feedback not found")
		}
		log.Println("❌ load feedback:", err)
		return utils.HandleError(c, fiber.StatusInternalServerError, "Something went wrong")
	}

	return c.JSON(fiber.Map{
		"feedback": rec,
		"action":   "/manage/feedback/" + id + "/delete",
		"cancel":   "/manage/feedback/" + id,
	})
}

// DeleteFeedback - POST /manage/feedback/:id/delete
//
// Soft delete เท่านั้น: record ยังอยู่ให้ audit แต่หายจาก list/count ปกติ
// ลบไม่สำเร็จ = record ไม่ถูกแตะ + error ผ่าน flash ไม่โยนใส่ client
func DeleteFeedback(c *fiber.Ctx) error {
	id := c.Params("id")
	sid := utils.SessionID(c)

	if err := feedback.SoftDelete(c.Context(), id); err != nil {
		if errors.Is(err, feedback.ErrNotFound) {
			return utils.HandleError(c, fiber.StatusNotFound, "Feedback not found")
		}
		log.Println("❌ delete feedback:", err)
		if ferr := answers.SetFlash(c.Context(), sid, models.FlashMessage{
			Error: "The feedback could not be deleted. Please try again.",
		}); ferr != nil {
			log.Println("❌ flash write:", ferr)
		}
	}

	return c.Redirect("/manage/feedback", fiber.StatusSeeOther)
}
