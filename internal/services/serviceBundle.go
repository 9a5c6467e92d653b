package services

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"github.com/akolanti/MedChatAPI/internal/config"
	"github.com/akolanti/MedChatAPI/internal/domain/failure"
	"github.com/akolanti/MedChatAPI/internal/metrics"
	"github.com/akolanti/MedChatAPI/internal/rag"
	"github.com/akolanti/MedChatAPI/internal/rag/embedding"
	"github.com/akolanti/MedChatAPI/internal/rag/llm"
	"github.com/akolanti/MedChatAPI/internal/rag/vectorDB"
	"github.com/akolanti/MedChatAPI/pkg/logger_i"
)

// Bundle is the set of remote clients one process talks to.
type Bundle struct {
	Embedder  embedding.Embedder
	Retriever vectorDB.Retriever
	Generator llm.Provider
	Pipeline  rag.Pipeline
}

func (b *Bundle) Close() error {
	if b == nil || b.Retriever == nil {
		return nil
	}
	return b.Retriever.Close()
}

// Builder constructs a complete bundle or fails without side effects.
type Builder func(ctx context.Context, settings config.Settings) (*Bundle, error)

// Manager owns at most one Bundle. It is either fully built or absent.
// ready is set only after a complete build. mu serialises construction.
type Manager struct {
	mu       sync.Mutex
	ready    atomic.Pointer[Bundle]
	settings config.Settings
	build    Builder
	timeout  time.Duration
	logger   *logger_i.Logger
	builds   atomic.Int32
}

func NewManager(settings config.Settings, build Builder) *Manager {
	if build == nil {
		build = BuildBundle
	}
	return &Manager{
		settings: settings,
		build:    build,
		timeout:  config.InitTimeout,
		logger:   logger_i.NewLogger("ServiceManager"),
	}
}

// Get returns the bundle, building it on first use. A failed build leaves the
// manager uninitialised so the next call retries.
func (m *Manager) Get(ctx context.Context) (*Bundle, error) {
	if b := m.ready.Load(); b != nil {
		return b, nil
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if b := m.ready.Load(); b != nil {
		return b, nil
	}

	log := m.logger.WithTrace(ctx)
	log.Info("Initializing services...")

	// construction outlives the request that triggered it, but not forever
	buildCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), m.timeout)
	defer cancel()

	bundle, err := m.build(buildCtx, m.settings)
	m.builds.Add(1)
	metrics.CaptureServiceInit(err)
	if err != nil {
		log.Error("Error initializing services", "kind", failure.KindOf(err), "error", err)
		return nil, err
	}
	if bundle == nil || bundle.Pipeline == nil {
		err = failure.New(failure.DependencyUnavailable, "services.init", errors.New("builder returned an incomplete bundle"))
		log.Error("Error initializing services", "error", err)
		return nil, err
	}

	m.ready.Store(bundle)
	log.Info("Services initialized successfully!")
	return bundle, nil
}

// Initialized never blocks, even while a build is in progress.
func (m *Manager) Initialized() bool {
	return m.ready.Load() != nil
}

func (m *Manager) Settings() config.Settings {
	return m.settings
}

// Builds counts construction attempts.
func (m *Manager) Builds() int {
	return int(m.builds.Load())
}

func (m *Manager) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.ready.Swap(nil).Close()
}
