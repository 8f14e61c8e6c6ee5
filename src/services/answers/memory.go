package answers

import (
	"context"
	"sync"

	"Backend-Feedback-Journey/src/models"
)

// MemoryStore ใช้ตอน dev ที่ไม่มี Redis และใช้ในเทสต์
type MemoryStore struct {
	mu      sync.Mutex
	drafts  map[string]models.Answers
	flashes map[string]models.FlashMessage
}

var _ Store = (*MemoryStore)(nil)

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		drafts:  map[string]models.Answers{},
		flashes: map[string]models.FlashMessage{},
	}
}

func (s *MemoryStore) Get(_ context.Context, sessionID, journeyID string) (models.Answers, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	a, ok := s.drafts[journeyKey(sessionID, journeyID)]
	if !ok {
		return models.Answers{}, false, nil
	}
	return a.Clone(), true, nil
}

func (s *MemoryStore) Set(_ context.Context, sessionID, journeyID string, a models.Answers) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.drafts[journeyKey(sessionID, journeyID)] = a.Clone()
	return nil
}

func (s *MemoryStore) Clear(_ context.Context, sessionID, journeyID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.drafts, journeyKey(sessionID, journeyID))
	return nil
}

func (s *MemoryStore) Flash(_ context.Context, sessionID string) (models.FlashMessage, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	f, ok := s.flashes[sessionID]
	if !ok {
		return models.FlashMessage{}, false, nil
	}
	delete(s.flashes, sessionID)
	return f, true, nil
}

func (s *MemoryStore) SetFlash(_ context.Context, sessionID string, f models.FlashMessage) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.flashes[sessionID] = f
	return nil
}
