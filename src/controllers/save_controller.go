package controllers

import (
	"log"

	"Backend-Feedback-Journey/src/jobs"
	"Backend-Feedback-Journey/src/models"
	"Backend-Feedback-Journey/src/services/answers"
	"Backend-Feedback-Journey/src/services/feedback"
	"Backend-Feedback-Journey/src/utils"

	"github.com/gofiber/fiber/v2"
)

// HandleSave - POST /give-feedback/submit
//
// ลำดับคงที่: ตรวจความครบ → persist → notify (best effort) → flash →
// เคลียร์ draft → redirect. คำตอบใน session จะถูกเคลียร์เฉพาะตอน persist
// สำเร็จเท่านั้น — ล้มเหลวแล้วผู้ใช้ต้องกลับมา retry ได้โดยไม่กรอกใหม่
func HandleSave(c *fiber.Ctx) error {
	sid := utils.SessionID(c)
	ctx := c.Context()

	a, ok, err := answers.Get(ctx, sid, giveFeedback.ID)
	if err != nil {
		log.Println("❌ session read:", err)
		ok = false
	}

	// session หมดอายุระหว่างหน้า — steering ธรรมดา ไม่ใช่ error
	if !ok || len(a) == 0 {
		return c.Redirect(giveFeedback.BasePath(), fiber.StatusSeeOther)
	}

	// ยังตอบไม่ครบ — พากลับไป check-your-answers เฉย ๆ ไม่ลง flash
	if !giveFeedback.IsComplete(a) {
		return c.Redirect(giveFeedback.CheckAnswersPath(), fiber.StatusSeeOther)
	}

	rec, err := feedback.Create(ctx, a)
	if err != nil {
		// รายละเอียดจริงลง log เท่านั้น ผู้ใช้เห็นข้อความกลาง ๆ ผ่าน flash
		log.Println("❌ persist feedback:", err)
		if ferr := answers.SetFlash(ctx, sid, models.FlashMessage{
			Error: "Your feedback could not be saved. Please try again.",
		}); ferr != nil {
			log.Println("❌ flash write:", ferr)
		}
		return c.Redirect(giveFeedback.CheckAnswersPath(), fiber.StatusSeeOther)
	}

	reference := rec.ID.Hex()

	// notification พังไม่ย้อน persist ที่สำเร็จแล้ว — log แล้วไปต่อ
	jobs.NotifyFeedbackReceived(reference, reference)

	if err := answers.SetFlash(ctx, sid, models.FlashMessage{
		Reference: reference,
		Submitted: true,
	}); err != nil {
		log.Println("❌ flash write:", err)
	}

	if err := answers.Clear(ctx, sid, giveFeedback.ID); err != nil {
		log.Println("❌ session clear:", err)
	}

	return c.Redirect(giveFeedback.BasePath()+"/success", fiber.StatusSeeOther)
}
