package feedback

import (
	"context"
	"errors"
	"log"
	"strconv"

	"Backend-Feedback-Journey/src/database"
	"Backend-Feedback-Journey/src/models"
	"Backend-Feedback-Journey/src/services/journeys"
)

var ErrNotFound = errors.New("feedback not found")

// Store ครอบ persistence ของ feedback record ทั้งหมดที่ core ต้องใช้
type Store interface {
	Create(ctx context.Context, rec models.Feedback) (models.Feedback, error)
	FindByID(ctx context.Context, id string, excludeDeleted bool) (*models.Feedback, error)
	UpdateField(ctx context.Context, id, field string, v models.AnswerValue) (*models.Feedback, error)
	SoftDelete(ctx context.Context, id string) error
	// List คืนรายการ active พร้อม total จาก snapshot เดียวกัน
	List(ctx context.Context) (*models.FeedbackList, error)
	Count(ctx context.Context) (int64, error)
}

var store Store = NewMemoryStore()

// Init เลือก backend: มี Mongo ใช้ Mongo, ไม่มีก็ memory (dev mode)
func Init() {
	if !database.MongoAvailable() {
		log.Println("⚠️ MongoDB not available. Feedback store falls back to in-memory (dev mode).")
		return
	}
	store = NewMongoStore()
	log.Println("✅ Feedback store backed by MongoDB")
}

// Use swaps the backing store. Tests use this with a memory store.
func Use(s Store) {
	store = s
}

// Create maps a completed answer bag into a record and persists it.
func Create(ctx context.Context, a models.Answers) (models.Feedback, error) {
	return store.Create(ctx, ToRecord(a))
}

func FindByID(ctx context.Context, id string, excludeDeleted bool) (*models.Feedback, error) {
	return store.FindByID(ctx, id, excludeDeleted)
}

func UpdateField(ctx context.Context, id, field string, v models.AnswerValue) (*models.Feedback, error) {
	return store.UpdateField(ctx, id, field, v)
}

func SoftDelete(ctx context.Context, id string) error {
	return store.SoftDelete(ctx, id)
}

func List(ctx context.Context) (*models.FeedbackList, error) {
	return store.List(ctx)
}

func Count(ctx context.Context) (int64, error) {
	return store.Count(ctx)
}

// ---------- answers <-> record mapping ----------
//
// จุดเดียวที่รู้จักการแปลงชื่อ field: คู่คำถาม consent + conditional details
// ยุบลงเป็น nullable columns ใน record; string ว่างของ field ที่ optional
// ต้อง normalize เป็น null ไม่ใช่ "" เพื่อให้หน้า list/detail แสดง
// "not provided" ได้ตรงกัน

// ToRecord maps a completed answer bag into persisted record fields.
func ToRecord(a models.Answers) models.Feedback {
	rec := models.Feedback{
		Service:        a.Text(journeys.FieldServiceUsed),
		Comments:       a.Text(journeys.FieldComments),
		ContactConsent: a[journeys.FieldContactConsent].IsTrue(),
	}
	if n, err := strconv.Atoi(a.Text(journeys.FieldRating)); err == nil {
		rec.Rating = n
	}
	if rec.ContactConsent {
		rec.FullName = optional(a.Text(journeys.FieldFullName))
		rec.Email = optional(a.Text(journeys.FieldEmail))
	}
	return rec
}

// FromRecord is the inverse of ToRecord: it rebuilds the answer shape the
// journey definitions expect, so the edit flow can reuse the same questions
// and validators against a persisted record.
func FromRecord(rec *models.Feedback) models.Answers {
	a := models.Answers{
		journeys.FieldServiceUsed:    models.NewChoice(rec.Service),
		journeys.FieldRating:         models.NewChoice(strconv.Itoa(rec.Rating)),
		journeys.FieldComments:       models.NewText(rec.Comments),
		journeys.FieldContactConsent: models.NewBool(rec.ContactConsent),
	}
	if rec.FullName != nil {
		a[journeys.FieldFullName] = models.NewText(*rec.FullName)
	}
	if rec.Email != nil {
		a[journeys.FieldEmail] = models.NewText(*rec.Email)
	}
	return a
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
