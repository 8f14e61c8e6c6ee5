package jobs

import (
	"context"
	"encoding/json"
	"errors"
	"log"

	"Backend-Feedback-Journey/src/services/feedback"

	"github.com/hibiken/asynq"
)

// HandleFeedbackReceivedTask แจ้งทีมว่ามี feedback ใหม่เข้ามา
//
// Record หายไปแล้ว (เช่นถูกลบก่อน worker ทัน) ไม่ถือเป็น error — ข้ามไปเฉย ๆ
func HandleFeedbackReceivedTask(ctx context.Context, t *asynq.Task) error {
	var payload FeedbackPayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		log.Println("❌ Payload decode error:", err)
		return err
	}

	rec, err := feedback.FindByID(ctx, payload.FeedbackID, false)
	if err != nil {
		if errors.Is(err, feedback.ErrNotFound) {
			log.Println("⚠️ Feedback not found. Possibly deleted. Skipping task:", payload.FeedbackID)
			return nil
		}
		return err
	}

	log.Printf("📣 New feedback %s: service=%s rating=%d", payload.Reference, rec.Service, rec.Rating)
	return nil
}

// RegisterHandlers ลงทะเบียน handler ทั้งหมดของ worker
func RegisterHandlers(mux *asynq.ServeMux) {
	mux.HandleFunc(TypeFeedbackReceived, HandleFeedbackReceivedTask)
}
