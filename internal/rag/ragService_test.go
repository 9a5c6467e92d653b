package rag_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/akolanti/MedChatAPI/internal/config"
	"github.com/akolanti/MedChatAPI/internal/domain/chatModel"
	"github.com/akolanti/MedChatAPI/internal/domain/failure"
	"github.com/akolanti/MedChatAPI/internal/rag"
	"github.com/akolanti/MedChatAPI/internal/testutil"
)

func TestInvoke_Scenarios(t *testing.T) {
	tests := []struct {
		name           string
		setupMocks     func(e *testutil.MockEmbedder, v *testutil.MockRetriever, l *testutil.MockLLM)
		expectedAnswer string
		expectedKind   failure.Kind
		expectErr      bool
	}{
		{
			name: "Success_Full_Flow",
			setupMocks: func(e *testutil.MockEmbedder, v *testutil.MockRetriever, l *testutil.MockLLM) {
				l.OnGenerate = func(ctx context.Context, s string, u string) (string, error) {
					return "final answer", nil
				}
			},
			expectedAnswer: "final answer",
		},
		{
			name: "Failure_Embedding",
			setupMocks: func(e *testutil.MockEmbedder, v *testutil.MockRetriever, l *testutil.MockLLM) {
				e.OnGetEmbedding = func(ctx context.Context, text string) ([]float32, error) {
					return nil, failure.New(failure.InvalidCredential, "openai.embedding", errors.New("bad key"))
				}
			},
			expectErr:    true,
			expectedKind: failure.InvalidCredential,
		},
		{
			name: "Failure_Vector_Search",
			setupMocks: func(e *testutil.MockEmbedder, v *testutil.MockRetriever, l *testutil.MockLLM) {
				v.OnSearch = func(ctx context.Context, vec []float32, k int) ([]chatModel.Document, error) {
					return nil, failure.New(failure.ConnectionFailure, "pinecone.query", errors.New("db timeout"))
				}
			},
			expectErr:    true,
			expectedKind: failure.ConnectionFailure,
		},
		{
			name: "Failure_LLM_Untyped_Quota",
			setupMocks: func(e *testutil.MockEmbedder, v *testutil.MockRetriever, l *testutil.MockLLM) {
				l.OnGenerate = func(ctx context.Context, s string, u string) (string, error) {
					return "", errors.New("Error code: 429 - insufficient_quota")
				}
			},
			expectErr:    true,
			expectedKind: failure.QuotaExceeded,
		},
		{
			name: "Failure_LLM_Generic",
			setupMocks: func(e *testutil.MockEmbedder, v *testutil.MockRetriever, l *testutil.MockLLM) {
				l.OnGenerate = func(ctx context.Context, s string, u string) (string, error) {
					return "", errors.New("provider down")
				}
			},
			expectErr:    true,
			expectedKind: failure.Generic,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mEmbed := &testutil.MockEmbedder{}
			mVec := &testutil.MockRetriever{}
			mLLM := &testutil.MockLLM{}
			tt.setupMocks(mEmbed, mVec, mLLM)

			p := rag.NewPipeline(mVec, mLLM, mEmbed, rag.Options{})
			ctx := context.WithValue(context.Background(), config.TRACE_ID_KEY, "test-trace")

			result, err := p.Invoke(ctx, "test question")

			if tt.expectErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				if got := failure.KindOf(err); got != tt.expectedKind {
					t.Errorf("Kind got %v, want %v", got, tt.expectedKind)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if result.Answer != tt.expectedAnswer {
				t.Errorf("Answer got %s, want %s", result.Answer, tt.expectedAnswer)
			}
			if result.Input != "test question" {
				t.Errorf("Input got %s", result.Input)
			}
		})
	}
}

func TestInvoke_PassesTopKAndStuffsContext(t *testing.T) {
	var gotK int
	var gotSystem, gotUser string

	retriever := &testutil.MockRetriever{
		OnSearch: func(ctx context.Context, v []float32, k int) ([]chatModel.Document, error) {
			gotK = k
			return []chatModel.Document{
				{Content: "chunk one"}, {Content: "chunk two"}, {Content: "chunk three"}, {Content: "chunk four"},
			}, nil
		},
	}
	generator := &testutil.MockLLM{
		OnGenerate: func(ctx context.Context, s string, u string) (string, error) {
			gotSystem, gotUser = s, u
			return "ok", nil
		},
	}

	p := rag.NewPipeline(retriever, generator, &testutil.MockEmbedder{}, rag.Options{})
	result, err := p.Invoke(context.Background(), "What is diabetes?")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if gotK != config.RetrieverTopK {
		t.Errorf("topK got %d, want %d", gotK, config.RetrieverTopK)
	}
	if len(result.Context) != config.RetrieverTopK {
		t.Errorf("context trimmed to %d docs, want %d", len(result.Context), config.RetrieverTopK)
	}
	if gotUser != "What is diabetes?" {
		t.Errorf("user message got %q", gotUser)
	}
	if !strings.Contains(gotSystem, "chunk one\n\nchunk two\n\nchunk three") || strings.Contains(gotSystem, "chunk four") {
		t.Errorf("system prompt not stuffed correctly: %q", gotSystem)
	}
}

func TestInvoke_RespectsTimeout(t *testing.T) {
	embedder := &testutil.MockEmbedder{
		OnGetEmbedding: func(ctx context.Context, text string) ([]float32, error) {
			<-ctx.Done()
			return nil, ctx.Err()
		},
	}
	p := rag.NewPipeline(&testutil.MockRetriever{}, &testutil.MockLLM{}, embedder, rag.Options{Timeout: 10 * time.Millisecond})

	_, err := p.Invoke(context.Background(), "slow")
	if failure.KindOf(err) != failure.ConnectionFailure {
		t.Errorf("Kind got %v, want %v", failure.KindOf(err), failure.ConnectionFailure)
	}
}
