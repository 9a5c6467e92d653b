package store

import (
	"context"
	"sync"
	"time"

	"github.com/akolanti/MedChatAPI/internal/config"
	"github.com/akolanti/MedChatAPI/internal/domain/chatModel"
)

type cachedAnswer struct {
	answer    string
	expiresAt time.Time
}

// InMemoryAnswerStore is the fallback when Redis is offline. It holds at most
// maxEntries answers.
type InMemoryAnswerStore struct {
	mu         sync.RWMutex
	answers    map[string]cachedAnswer
	ttl        time.Duration
	maxEntries int
	now        func() time.Time
}

func NewInMemoryAnswerStore(ttl time.Duration) *InMemoryAnswerStore {
	return &InMemoryAnswerStore{
		answers:    make(map[string]cachedAnswer),
		ttl:        ttl,
		maxEntries: config.InMemoryAnswerStoreMaxEntries,
		now:        time.Now,
	}
}

func (s *InMemoryAnswerStore) GetAnswer(ctx context.Context, message string) (string, bool) {
	key := chatModel.CacheKey(message)
	s.mu.RLock()
	entry, found := s.answers[key]
	s.mu.RUnlock()
	if !found {
		return "", false
	}
	if s.ttl > 0 && s.now().After(entry.expiresAt) {
		s.mu.Lock()
		delete(s.answers, key)
		s.mu.Unlock()
		return "", false
	}
	return entry.answer, true
}

func (s *InMemoryAnswerStore) SaveAnswer(ctx context.Context, message string, answer string) error {
	key := chatModel.CacheKey(message)
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.answers[key]; !exists && s.maxEntries > 0 && len(s.answers) >= s.maxEntries {
		s.makeRoom()
	}
	s.answers[key] = cachedAnswer{answer: answer, expiresAt: s.now().Add(s.ttl)}
	return nil
}

// makeRoom drops expired answers, then the one closest to expiry if still full.
// Caller holds mu.
func (s *InMemoryAnswerStore) makeRoom() {
	now := s.now()
	for key, entry := range s.answers {
		if s.ttl > 0 && now.After(entry.expiresAt) {
			delete(s.answers, key)
		}
	}
	if len(s.answers) < s.maxEntries {
		return
	}
	var oldestKey string
	var oldest time.Time
	for key, entry := range s.answers {
		if oldestKey == "" || entry.expiresAt.Before(oldest) {
			oldestKey, oldest = key, entry.expiresAt
		}
	}
	delete(s.answers, oldestKey)
}
