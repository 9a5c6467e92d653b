package googleEmbedding

import (
	"context"
	"errors"

	"github.com/akolanti/MedChatAPI/internal/config"
	"github.com/akolanti/MedChatAPI/internal/domain/failure"
	"github.com/akolanti/MedChatAPI/internal/rag/embedding"
	"github.com/akolanti/MedChatAPI/internal/rag/googleClient"
	"github.com/akolanti/MedChatAPI/pkg/logger_i"
	"google.golang.org/genai"
)

// matches the ada-002 vectors already stored in the index
var dimension int32 = config.EmbeddingOutputDimensionality

type client struct {
	genAi  *genai.Client
	model  string
	logger *logger_i.Logger
}

func NewGoogleEmbedder(ctx context.Context, apiKey string, modelName string) (embedding.Embedder, error) {
	c, err := googleClient.New(ctx, apiKey)
	if err != nil {
		return nil, err
	}
	logger := logger_i.NewLogger("google_embedding")
	logger.Info("Google Embedding client created", "model", modelName)
	return &client{genAi: c, model: modelName, logger: logger}, nil
}

func (c *client) GetEmbedding(ctx context.Context, query string) ([]float32, error) {
	log := c.logger.WithTrace(ctx)

	result, err := c.genAi.Models.EmbedContent(ctx, c.model, genai.Text(query), &genai.EmbedContentConfig{
		OutputDimensionality: &dimension,
		TaskType:             "RETRIEVAL_QUERY",
	})
	if err != nil {
		log.Error("Error getting Embeddings from Google", "error", err)
		return nil, googleClient.ClassifyError("google.embedding", err)
	}
	if result == nil || len(result.Embeddings) == 0 || result.Embeddings[0] == nil {
		return nil, failure.New(failure.Generic, "google.embedding", errors.New("empty embedding response"))
	}
	return result.Embeddings[0].Values, nil
}
