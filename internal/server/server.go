package server

import (
	"context"
	"errors"
	"net/http"
	"os"

	"github.com/akolanti/MedChatAPI/internal/adapter/utils"
	"github.com/akolanti/MedChatAPI/internal/config"
	"github.com/akolanti/MedChatAPI/internal/handlers"
	"github.com/akolanti/MedChatAPI/internal/mcpServer"
	"github.com/akolanti/MedChatAPI/internal/middleware"
	"github.com/akolanti/MedChatAPI/internal/services"
	"github.com/akolanti/MedChatAPI/pkg/logger_i"
	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/time/rate"
)

// Dependencies is everything the router needs. Handler and Services are required.
type Dependencies struct {
	Handler    *handlers.Handler
	Services   *services.Manager
	Limiter    *middleware.IPRateLimiter
	MCPLimiter *middleware.IPRateLimiter
}

func NewRouter(deps Dependencies) *chi.Mux {
	limiter := deps.Limiter
	if limiter == nil {
		limiter = middleware.NewIPRateLimiter(rate.Limit(config.RATE_LIMIT_PER_SECOND), config.BURST_RATE_LIMIT_PER_SECOND)
	}
	mcpLimiter := deps.MCPLimiter
	if mcpLimiter == nil {
		mcpLimiter = middleware.NewIPRateLimiter(rate.Limit(config.MCP_RATE_LIMIT_PER_SECOND), config.MCP_BURST_RATE_LIMIT_PER_SECOND)
	}
	h := deps.Handler

	r := chi.NewRouter()
	r.Use(middleware.Wrap)
	r.NotFound(handlers.NotFoundHandler)
	r.MethodNotAllowed(handlers.MethodNotAllowedHandler)

	r.Get("/", h.IndexHandler)
	r.Group(func(chat chi.Router) {
		chat.Use(middleware.RateLimit(limiter))
		chat.Get("/get", h.ChatHandler)
		chat.Post("/get", h.ChatHandler)
	})
	r.With(middleware.RateLimit(mcpLimiter)).Handle("/mcp", mcpServer.NewHandler(mcpServer.NewServer(deps.Services)))
	r.Get("/health", h.HealthHandler)
	r.Get("/debug", h.DebugHandler)
	r.Get("/test", h.TestHandler)

	r.Handle("/metrics", promhttp.Handler())
	utils.InitSwagger(r)
	return r
}

type ShutdownParams struct {
	GracefulShutdown chan os.Signal
	StopExecution    chan bool
	CloseServices    func()
}

type Server struct {
	httpServer *http.Server
	logger     *logger_i.Logger
}

func CreateServer(listenAddr string, handler http.Handler) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:         listenAddr,
			Handler:      handler,
			ReadTimeout:  config.ReadTimeout,
			WriteTimeout: config.WriteTimeout,
			IdleTimeout:  config.IdleTimeout,
		},
		logger: logger_i.NewLogger("Server"),
	}
}

func (s *Server) ListenAndServe() {
	s.logger.Info("Server is listening at", "address", s.httpServer.Addr)
	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		s.logger.Error("Server crashed", "error", err.Error(), "addr", s.httpServer.Addr)
	}
}

func (s *Server) ShutDownHandler(shutdownParams ShutdownParams) {
	state := <-shutdownParams.GracefulShutdown
	s.logger.Info("Server is shutting down", "signal", state.String())

	ctx, cancel := context.WithTimeout(context.Background(), config.ShutdownContextTimeout)
	defer cancel()

	done := make(chan struct{})

	go func() {
		s.httpServer.SetKeepAlivesEnabled(false)

		if err := s.httpServer.Shutdown(ctx); err != nil {
			s.logger.Error("Could not shutdown gracefully", "error", err)
		}

		shutdownParams.CloseServices()
		close(shutdownParams.StopExecution)
		close(done)
	}()

	select {
	case <-done:
		s.logger.Info("Gracefully shut down")
	case <-ctx.Done():
		s.logger.Info("Force Shut down")
		os.Exit(1)
	}
}
