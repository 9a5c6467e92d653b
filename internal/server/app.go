package server

import (
	"context"
	"net/http"

	"github.com/akolanti/MedChatAPI/internal/config"
	"github.com/akolanti/MedChatAPI/internal/data/redisStore"
	"github.com/akolanti/MedChatAPI/internal/data/store"
	"github.com/akolanti/MedChatAPI/internal/domain/chatModel"
	"github.com/akolanti/MedChatAPI/internal/handlers"
	"github.com/akolanti/MedChatAPI/internal/services"
	"github.com/akolanti/MedChatAPI/internal/ui"
	"github.com/akolanti/MedChatAPI/pkg/logger_i"
)

// App is one fully wired process: router, lazily built services and the answer cache.
type App struct {
	Router   http.Handler
	Services *services.Manager
	redis    *redisStore.Store
}

// NewApp never fails. Missing pieces degrade: Redis falls back to memory and
// a broken template makes "/" answer with the JSON error.
func NewApp(ctx context.Context, settings config.Settings, build services.Builder) *App {
	logger := logger_i.NewLogger("App")
	app := &App{Services: services.NewManager(settings, build)}

	var answers chatModel.AnswerStore
	if redis := openRedis(ctx, settings); redis != nil {
		app.redis = redis
		answers = store.NewRedisAnswerStore(redis, config.RedisAnswerStoreTTL)
	} else {
		logger.Warn("Redis store is offline, caching answers in memory")
		answers = store.NewInMemoryAnswerStore(config.RedisAnswerStoreTTL)
	}

	page, err := ui.NewChatPage()
	if err != nil {
		logger.Error("Could not load chat page", "error", err)
	}

	app.Router = NewRouter(Dependencies{
		Handler:  handlers.NewHandler(app.Services, answers, page),
		Services: app.Services,
	})
	return app
}

// openRedis skips the ping on serverless deployments that did not configure Redis.
func openRedis(ctx context.Context, settings config.Settings) *redisStore.Store {
	if settings.Vercel && settings.RedisAddr == "" {
		return nil
	}
	s, err := redisStore.NewStore(ctx, redisStore.Params{
		Addr:     settings.RedisAddr,
		Password: settings.RedisPassword,
		DB:       config.RedisAnswerStore,
	})
	if err != nil {
		return nil
	}
	return s
}

func (a *App) Close() {
	logger := logger_i.NewLogger("App")
	if err := a.Services.Close(); err != nil {
		logger.Error("Error closing services", "error", err)
	}
	if a.redis != nil {
		if err := a.redis.Close(); err != nil {
			logger.Error("Error closing redis", "error", err)
		}
	}
}
