package feedback

import (
	"context"
	"sort"
	"strconv"
	"sync"
	"time"

	"Backend-Feedback-Journey/src/models"
	"Backend-Feedback-Journey/src/services/journeys"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MemoryStore ใช้ตอน dev ที่ไม่มี MongoDB และใช้ในเทสต์
type MemoryStore struct {
	mu      sync.Mutex
	records map[string]models.Feedback

	// FailNext ทำให้ operation ถัดไปล้มเหลว — เทสต์ใช้จำลอง persistence failure
	// ตั้ง FailOp ด้วยถ้าต้องการเจาะจงว่า op ไหนพัง (create/find/update/delete/list)
	FailNext error
	FailOp   string
}

var _ Store = (*MemoryStore)(nil)

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{records: map[string]models.Feedback{}}
}

func (s *MemoryStore) takeFailure(op string) error {
	if s.FailNext == nil || (s.FailOp != "" && s.FailOp != op) {
		return nil
	}
	err := s.FailNext
	s.FailNext = nil
	s.FailOp = ""
	return err
}

func (s *MemoryStore) Create(_ context.Context, rec models.Feedback) (models.Feedback, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.takeFailure("create"); err != nil {
		return models.Feedback{}, err
	}

	now := time.Now()
	rec.ID = primitive.NewObjectID()
	rec.CreatedAt = now
	rec.UpdatedAt = now
	rec.Deleted = false
	s.records[rec.ID.Hex()] = rec
	return rec, nil
}

func (s *MemoryStore) FindByID(_ context.Context, id string, excludeDeleted bool) (*models.Feedback, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.takeFailure("find"); err != nil {
		return nil, err
	}

	rec, ok := s.records[id]
	if !ok || (excludeDeleted && rec.Deleted) {
		return nil, ErrNotFound
	}
	out := rec
	return &out, nil
}

func (s *MemoryStore) UpdateField(_ context.Context, id, field string, v models.AnswerValue) (*models.Feedback, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.takeFailure("update"); err != nil {
		return nil, err
	}

	rec, ok := s.records[id]
	if !ok || rec.Deleted {
		return nil, ErrNotFound
	}

	switch field {
	case journeys.FieldRating:
		n, err := strconv.Atoi(v.Text)
		if err != nil {
			return nil, err
		}
		rec.Rating = n
	case journeys.FieldComments:
		rec.Comments = v.Text
	}
	rec.UpdatedAt = time.Now()
	s.records[id] = rec

	out := rec
	return &out, nil
}

func (s *MemoryStore) SoftDelete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.takeFailure("delete"); err != nil {
		return err
	}

	rec, ok := s.records[id]
	if !ok || rec.Deleted {
		return ErrNotFound
	}
	now := time.Now()
	rec.Deleted = true
	rec.DeletedAt = &now
	rec.UpdatedAt = now
	s.records[id] = rec
	return nil
}

func (s *MemoryStore) List(_ context.Context) (*models.FeedbackList, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.takeFailure("list"); err != nil {
		return nil, err
	}

	out := &models.FeedbackList{Items: []models.Feedback{}}
	for _, rec := range s.records {
		if rec.Deleted {
			continue
		}
		out.Items = append(out.Items, rec)
	}
	sort.Slice(out.Items, func(i, j int) bool {
		return out.Items[i].CreatedAt.After(out.Items[j].CreatedAt)
	})
	out.Total = int64(len(out.Items))
	return out, nil
}

func (s *MemoryStore) Count(_ context.Context) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	active := int64(0)
	for _, rec := range s.records {
		if !rec.Deleted {
			active++
		}
	}
	return active, nil
}
