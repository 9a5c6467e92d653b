package gemini

import (
	"context"
	"testing"

	"github.com/akolanti/MedChatAPI/internal/config"
	"github.com/akolanti/MedChatAPI/internal/domain/failure"
)

func TestNewGeminiClient_MissingKey(t *testing.T) {
	_, err := NewGeminiClient(context.Background(), "", config.GeminiModelName)
	if kind := failure.KindOf(err); kind != failure.MissingCredentials {
		t.Errorf("got kind %q, want %q", kind, failure.MissingCredentials)
	}
}

func TestNewGeminiClient_WithKey(t *testing.T) {
	provider, err := NewGeminiClient(context.Background(), "test-key", config.GeminiModelName)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if provider == nil {
		t.Fatal("provider is nil")
	}
}
