package openaiEmbedding

import (
	"context"
	"errors"

	"github.com/akolanti/MedChatAPI/internal/domain/failure"
	"github.com/akolanti/MedChatAPI/internal/rag/embedding"
	"github.com/akolanti/MedChatAPI/internal/rag/openaiClient"
	"github.com/akolanti/MedChatAPI/pkg/logger_i"
	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

type client struct {
	openAI *openai.Client
	model  string
	logger *logger_i.Logger
}

func NewEmbedder(apiKey string, model string, opts ...option.RequestOption) (embedding.Embedder, error) {
	if apiKey == "" {
		return nil, failure.Newf(failure.MissingCredentials, "openai.embedding", "OPENAI_API_KEY is not set")
	}
	logger := logger_i.NewLogger("openai_embedding")
	logger.Info("OpenAI embedding client created", "model", model)
	return &client{
		openAI: openaiClient.New(apiKey, opts...),
		model:  model,
		logger: logger,
	}, nil
}

func (c *client) GetEmbedding(ctx context.Context, query string) ([]float32, error) {
	log := c.logger.WithTrace(ctx)
	log.Debug("embedding query", "length", len(query))

	res, err := c.openAI.Embeddings.New(ctx, openai.EmbeddingNewParams{
		Input: openai.EmbeddingNewParamsInputUnion{OfString: openai.String(query)},
		Model: openai.EmbeddingModel(c.model),
	})
	if err != nil {
		log.Error("Error getting embeddings from OpenAI", "error", err)
		return nil, openaiClient.ClassifyError("openai.embedding", err)
	}
	if len(res.Data) == 0 {
		return nil, failure.New(failure.Generic, "openai.embedding", errors.New("empty embedding response"))
	}

	values := res.Data[0].Embedding
	vector := make([]float32, len(values))
	for i, v := range values {
		vector[i] = float32(v)
	}
	return vector, nil
}
