package answers

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"Backend-Feedback-Journey/src/database"
	"Backend-Feedback-Journey/src/models"

	"github.com/redis/go-redis/v9"
)

// อายุของ draft ใน session — เกินนี้ถือว่าผู้ใช้ทิ้ง journey ไปแล้ว
const ttl = 24 * time.Hour

// Store is the session-backed answer bag plus the one-shot flash channel.
//
// Two tabs sharing one session and one journeyId overwrite each other:
// last write wins, silently. That is a documented property of the design,
// not something this package papers over with locking.
type Store interface {
	Get(ctx context.Context, sessionID, journeyID string) (models.Answers, bool, error)
	Set(ctx context.Context, sessionID, journeyID string, a models.Answers) error
	Clear(ctx context.Context, sessionID, journeyID string) error

	// Flash reads and clears the post-redirect outcome in one step.
	Flash(ctx context.Context, sessionID string) (models.FlashMessage, bool, error)
	SetFlash(ctx context.Context, sessionID string, f models.FlashMessage) error
}

var store Store = NewMemoryStore()

// Init เลือก backend ตามสภาพแวดล้อม: มี Redis ใช้ Redis, ไม่มีก็ memory (dev mode)
func Init() {
	if database.RedisClient == nil {
		log.Println("⚠️ Redis not available. Answer store falls back to in-memory (dev mode).")
		return
	}
	store = NewRedisStore(database.RedisClient)
	log.Println("✅ Answer store backed by Redis")
}

// Use swaps the backing store. Tests use this with a memory store.
func Use(s Store) {
	store = s
}

func Get(ctx context.Context, sessionID, journeyID string) (models.Answers, bool, error) {
	return store.Get(ctx, sessionID, journeyID)
}

func Set(ctx context.Context, sessionID, journeyID string, a models.Answers) error {
	return store.Set(ctx, sessionID, journeyID, a)
}

func Clear(ctx context.Context, sessionID, journeyID string) error {
	return store.Clear(ctx, sessionID, journeyID)
}

func Flash(ctx context.Context, sessionID string) (models.FlashMessage, bool, error) {
	return store.Flash(ctx, sessionID)
}

func SetFlash(ctx context.Context, sessionID string, f models.FlashMessage) error {
	return store.SetFlash(ctx, sessionID, f)
}

// ---------- Redis implementation ----------

type RedisStore struct {
	client *redis.Client
}

var _ Store = (*RedisStore)(nil)

func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

func journeyKey(sessionID, journeyID string) string {
	return fmt.Sprintf("journey:%s:%s", sessionID, journeyID)
}

func flashKey(sessionID string) string {
	return fmt.Sprintf("flash:%s", sessionID)
}

func (s *RedisStore) Get(ctx context.Context, sessionID, journeyID string) (models.Answers, bool, error) {
	raw, err := s.client.Get(ctx, journeyKey(sessionID, journeyID)).Result()
	if err == redis.Nil {
		return models.Answers{}, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	var a models.Answers
	if err := json.Unmarshal([]byte(raw), &a); err != nil {
		return nil, false, err
	}
	return a, true, nil
}

func (s *RedisStore) Set(ctx context.Context, sessionID, journeyID string, a models.Answers) error {
	raw, err := json.Marshal(a)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, journeyKey(sessionID, journeyID), raw, ttl).Err()
}

func (s *RedisStore) Clear(ctx context.Context, sessionID, journeyID string) error {
	return s.client.Del(ctx, journeyKey(sessionID, journeyID)).Err()
}

// Flash ใช้ GETDEL — อ่านครั้งเดียวแล้วหาย กัน banner ค้างข้าม page load
func (s *RedisStore) Flash(ctx context.Context, sessionID string) (models.FlashMessage, bool, error) {
	raw, err := s.client.GetDel(ctx, flashKey(sessionID)).Result()
	if err == redis.Nil {
		return models.FlashMessage{}, false, nil
	}
	if err != nil {
		return models.FlashMessage{}, false, err
	}
	var f models.FlashMessage
	if err := json.Unmarshal([]byte(raw), &f); err != nil {
		return models.FlashMessage{}, false, err
	}
	return f, true, nil
}

func (s *RedisStore) SetFlash(ctx context.Context, sessionID string, f models.FlashMessage) error {
	raw, err := json.Marshal(f)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, flashKey(sessionID), raw, ttl).Err()
}
