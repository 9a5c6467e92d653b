package services

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/akolanti/MedChatAPI/internal/config"
	"github.com/akolanti/MedChatAPI/internal/domain/failure"
	"github.com/akolanti/MedChatAPI/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fakeBundle() *Bundle {
	return &Bundle{
		Embedder:  &testutil.MockEmbedder{},
		Retriever: &testutil.MockRetriever{},
		Generator: &testutil.MockLLM{},
		Pipeline:  &testutil.MockPipeline{},
	}
}

func TestManager_LazyInitIsIdempotent(t *testing.T) {
	var calls atomic.Int32
	m := NewManager(config.Settings{}, func(ctx context.Context, s config.Settings) (*Bundle, error) {
		calls.Add(1)
		return fakeBundle(), nil
	})

	assert.False(t, m.Initialized())

	first, err := m.Get(context.Background())
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		again, err := m.Get(context.Background())
		require.NoError(t, err)
		assert.Same(t, first, again)
	}

	assert.True(t, m.Initialized())
	assert.EqualValues(t, 1, calls.Load())
	assert.Equal(t, 1, m.Builds())
}

func TestManager_ConcurrentFirstRequestsBuildOnce(t *testing.T) {
	var calls atomic.Int32
	m := NewManager(config.Settings{}, func(ctx context.Context, s config.Settings) (*Bundle, error) {
		calls.Add(1)
		time.Sleep(20 * time.Millisecond)
		return fakeBundle(), nil
	})

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := m.Get(context.Background())
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	assert.EqualValues(t, 1, calls.Load())
}

func TestManager_FailureStaysUninitializedAndRetries(t *testing.T) {
	var calls atomic.Int32
	m := NewManager(config.Settings{}, func(ctx context.Context, s config.Settings) (*Bundle, error) {
		if calls.Add(1) == 1 {
			return nil, failure.New(failure.ConnectionFailure, "pinecone.describe_index", errors.New("refused"))
		}
		return fakeBundle(), nil
	})

	_, err := m.Get(context.Background())
	require.Error(t, err)
	assert.Equal(t, failure.ConnectionFailure, failure.KindOf(err))
	assert.False(t, m.Initialized())

	_, err = m.Get(context.Background())
	require.NoError(t, err)
	assert.True(t, m.Initialized())
	assert.EqualValues(t, 2, calls.Load())
}

func TestManager_IncompleteBundleRejected(t *testing.T) {
	m := NewManager(config.Settings{}, func(ctx context.Context, s config.Settings) (*Bundle, error) {
		return &Bundle{}, nil
	})

	_, err := m.Get(context.Background())
	assert.Equal(t, failure.DependencyUnavailable, failure.KindOf(err))
	assert.False(t, m.Initialized())
}

func TestManager_BuildSurvivesCancelledRequest(t *testing.T) {
	m := NewManager(config.Settings{}, func(ctx context.Context, s config.Settings) (*Bundle, error) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		return fakeBundle(), nil
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := m.Get(ctx)
	assert.NoError(t, err)
}

func TestManager_Close(t *testing.T) {
	b := fakeBundle()
	m := NewManager(config.Settings{}, func(ctx context.Context, s config.Settings) (*Bundle, error) {
		return b, nil
	})
	_, _ = m.Get(context.Background())

	require.NoError(t, m.Close())
	assert.False(t, m.Initialized())
	assert.True(t, b.Retriever.(*testutil.MockRetriever).Closed.Load())
	assert.NoError(t, m.Close(), "closing twice is a no-op")
}

func TestBuildBundle_MissingCredentials(t *testing.T) {
	_, err := BuildBundle(context.Background(), config.Settings{
		LLMProvider: config.ProviderOpenAI,
		VectorStore: config.VectorStorePinecone,
	})
	require.Error(t, err)
	assert.Equal(t, failure.MissingCredentials, failure.KindOf(err))
	assert.Contains(t, err.Error(), "PINECONE_API_KEY")
	assert.Contains(t, err.Error(), "OPENAI_API_KEY")
}

func TestBuildBundle_UnknownProvider(t *testing.T) {
	_, err := BuildBundle(context.Background(), config.Settings{
		LLMProvider:    "mystery",
		VectorStore:    config.VectorStorePinecone,
		PineconeAPIKey: "pc",
		OpenAIAPIKey:   "sk",
	})
	assert.Equal(t, failure.DependencyUnavailable, failure.KindOf(err))
}

func TestManager_StateReadableDuringBuild(t *testing.T) {
	started := make(chan struct{})
	release := make(chan struct{})
	m := NewManager(config.Settings{}, func(ctx context.Context, s config.Settings) (*Bundle, error) {
		close(started)
		<-release
		return fakeBundle(), nil
	})

	done := make(chan error, 1)
	go func() {
		_, err := m.Get(context.Background())
		done <- err
	}()
	<-started

	state := make(chan bool, 1)
	go func() { state <- m.Initialized() }()
	select {
	case initialized := <-state:
		assert.False(t, initialized)
	case <-time.After(time.Second):
		t.Fatal("Initialized blocked while a build was in progress")
	}

	close(release)
	require.NoError(t, <-done)
	assert.True(t, m.Initialized())
}
