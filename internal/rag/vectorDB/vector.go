package vectorDB

import (
	"context"

	"github.com/akolanti/MedChatAPI/internal/domain/chatModel"
)

// Retriever runs a similarity search against an existing remote index.
type Retriever interface {
	Search(ctx context.Context, vector []float32, topK int) ([]chatModel.Document, error)
	Close() error
}
