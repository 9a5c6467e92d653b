package redisStore

import (
	"context"
	"time"

	"github.com/akolanti/MedChatAPI/internal/config"
	"github.com/akolanti/MedChatAPI/internal/domain/failure"
	"github.com/akolanti/MedChatAPI/pkg/logger_i"
	"github.com/redis/go-redis/v9"
)

type Store struct {
	client *redis.Client
	Type   int
}

type Params struct {
	Addr     string
	Password string
	DB       int
}

// NewStore connects and pings. The caller decides what to do when Redis is offline.
func NewStore(ctx context.Context, params Params) (*Store, error) {
	logger := logger_i.NewLogger("Redis Store").WithTrace(ctx)
	if params.Addr == "" {
		params.Addr = config.RedisAddr
	}

	newClient := redis.NewClient(&redis.Options{
		Addr:                  params.Addr,
		Password:              params.Password,
		DB:                    params.DB,
		ContextTimeoutEnabled: true,
		ReadTimeout:           5 * time.Second,
		WriteTimeout:          5 * time.Second,
	})

	pingCtx, cancel := context.WithTimeout(ctx, config.RedisPingTimeout)
	defer cancel()

	if err := newClient.Ping(pingCtx).Err(); err != nil {
		logger.Error("Redis is offline", "addr", params.Addr, "error", err)
		_ = newClient.Close()
		return nil, failure.New(failure.ConnectionFailure, "redis.ping", err)
	}

	logger.Info("Redis store init successfully", "addr", params.Addr, "db", params.DB)
	return &Store{client: newClient, Type: params.DB}, nil
}

func (s *Store) Close() error {
	return s.client.Close()
}

// NewTestStore wraps an existing client, used with miniredis.
func NewTestStore(client *redis.Client) *Store {
	return &Store{client: client}
}
