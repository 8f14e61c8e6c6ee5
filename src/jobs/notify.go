package jobs

import (
	"log"

	DB "Backend-Feedback-Journey/src/database"

	"github.com/hibiken/asynq"
)

// NotifyFeedbackReceived ส่ง notification แบบ best-effort หลัง persist สำเร็จ
//
// Enqueue ล้มเหลวหรือไม่มี Redis = log แล้วไปต่อ — record ถูกบันทึกไปแล้ว
// การเด้ง error กลับไปหาผู้ใช้ตรงนี้จะพาให้กด retry แล้วสร้าง record ซ้ำ
func NotifyFeedbackReceived(feedbackID, reference string) {
	if DB.AsynqClient == nil {
		log.Println("⚠️ Asynq not available → skipping feedback notification:", reference)
		return
	}

	task, err := NewFeedbackReceivedTask(feedbackID, reference)
	if err != nil {
		log.Println("❌ build feedback-received task:", err)
		return
	}

	if _, err := DB.AsynqClient.Enqueue(task, asynq.TaskID("feedback-received-"+feedbackID), asynq.MaxRetry(3)); err != nil {
		log.Println("❌ enqueue feedback-received task:", err)
		return
	}
	log.Println("✅ Enqueued feedback-received task:", reference)
}
