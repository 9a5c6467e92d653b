package testutil

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/akolanti/MedChatAPI/internal/domain/chatModel"
)

// MockRetriever implements vectorDB.Retriever
type MockRetriever struct {
	OnSearch func(ctx context.Context, vector []float32, topK int) ([]chatModel.Document, error)
	Closed   atomic.Bool
}

func (m *MockRetriever) Search(ctx context.Context, v []float32, topK int) ([]chatModel.Document, error) {
	if m.OnSearch != nil {
		return m.OnSearch(ctx, v, topK)
	}
	return []chatModel.Document{{Id: "doc-1", Content: "default context"}}, nil
}

func (m *MockRetriever) Close() error {
	m.Closed.Store(true)
	return nil
}

// MockEmbedder implements embedding.Embedder
type MockEmbedder struct {
	OnGetEmbedding func(ctx context.Context, text string) ([]float32, error)
}

func (m *MockEmbedder) GetEmbedding(ctx context.Context, query string) ([]float32, error) {
	if m.OnGetEmbedding != nil {
		return m.OnGetEmbedding(ctx, query)
	}
	return []float32{0.1}, nil
}

// MockLLM implements llm.Provider
type MockLLM struct {
	OnGenerate func(ctx context.Context, system string, user string) (string, error)
}

func (m *MockLLM) Generate(ctx context.Context, system string, user string) (string, error) {
	if m.OnGenerate != nil {
		return m.OnGenerate(ctx, system, user)
	}
	return "mocked llm response", nil
}

// MockPipeline implements rag.Pipeline
type MockPipeline struct {
	OnInvoke func(ctx context.Context, input string) (chatModel.Result, error)
	Calls    atomic.Int32
}

func (m *MockPipeline) Invoke(ctx context.Context, input string) (chatModel.Result, error) {
	m.Calls.Add(1)
	if m.OnInvoke != nil {
		return m.OnInvoke(ctx, input)
	}
	return chatModel.Result{Input: input, Answer: "mocked answer"}, nil
}

// MockAnswerStore implements chatModel.AnswerStore
type MockAnswerStore struct {
	mu      sync.Mutex
	answers map[string]string
	OnSave  func(ctx context.Context, message string, answer string) error
}

func (m *MockAnswerStore) GetAnswer(ctx context.Context, message string) (string, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	a, ok := m.answers[chatModel.CacheKey(message)]
	return a, ok
}

func (m *MockAnswerStore) SaveAnswer(ctx context.Context, message string, answer string) error {
	if m.OnSave != nil {
		if err := m.OnSave(ctx, message, answer); err != nil {
			return err
		}
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.answers == nil {
		m.answers = make(map[string]string)
	}
	m.answers[chatModel.CacheKey(message)] = answer
	return nil
}
