package store

import (
	"context"
	"time"

	"github.com/akolanti/MedChatAPI/internal/config"
	"github.com/akolanti/MedChatAPI/internal/data/redisStore"
	"github.com/akolanti/MedChatAPI/internal/domain/chatModel"
	"github.com/akolanti/MedChatAPI/pkg/logger_i"
)

type RedisAnswerStore struct {
	store  *redisStore.Store
	ttl    time.Duration
	logger *logger_i.Logger
}

func NewRedisAnswerStore(s *redisStore.Store, ttl time.Duration) *RedisAnswerStore {
	if ttl <= 0 {
		ttl = config.RedisAnswerStoreTTL
	}
	return &RedisAnswerStore{
		store:  s,
		ttl:    ttl,
		logger: logger_i.NewLogger("AnswerStore"),
	}
}

func (s *RedisAnswerStore) GetAnswer(ctx context.Context, message string) (string, bool) {
	log := s.logger.WithTrace(ctx)
	val, err := s.store.Get(ctx, chatModel.CacheKey(message))
	if s.store.IsNil(err) {
		return "", false
	} else if err != nil {
		log.Error("Failed to read cached answer", "error", err)
		return "", false
	}
	log.Debug("Answer found in Redis")
	return val, true
}

func (s *RedisAnswerStore) SaveAnswer(ctx context.Context, message string, answer string) error {
	log := s.logger.WithTrace(ctx)
	err := s.store.Set(ctx, chatModel.CacheKey(message), answer, s.ttl)
	if err != nil {
		log.Error("Failed to cache answer", "error", err)
		return err
	}
	log.Debug("Saved answer to Redis")
	return nil
}

func (s *RedisAnswerStore) Forget(ctx context.Context, message string) error {
	return s.store.Del(ctx, chatModel.CacheKey(message))
}
