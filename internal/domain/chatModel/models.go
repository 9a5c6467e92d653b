package chatModel

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// Document is one retrieved chunk of the vector index.
type Document struct {
	Id      string            `json:"id"`
	Content string            `json:"page_content"`
	Source  string            `json:"source,omitempty"`
	Score   float32           `json:"score"`
	Meta    map[string]string `json:"metadata,omitempty"`
}

// Result is what the retrieval+generation pipeline returns for one input.
type Result struct {
	Input   string     `json:"input"`
	Answer  string     `json:"answer"`
	Context []Document `json:"context"`
}

type AnswerStore interface {
	GetAnswer(ctx context.Context, message string) (string, bool)
	SaveAnswer(ctx context.Context, message string, answer string) error
}

// CacheKey normalises a user message so trivially different spellings share an entry.
func CacheKey(message string) string {
	normalised := strings.Join(strings.Fields(strings.ToLower(message)), " ")
	sum := sha256.Sum256([]byte(normalised))
	return "answer:" + hex.EncodeToString(sum[:])
}
