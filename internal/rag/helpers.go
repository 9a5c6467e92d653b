package rag

import (
	"context"
	"time"

	"github.com/akolanti/MedChatAPI/internal/domain/chatModel"
	"github.com/akolanti/MedChatAPI/internal/domain/failure"
	"github.com/akolanti/MedChatAPI/internal/metrics"
	"github.com/akolanti/MedChatAPI/pkg/logger_i"
)

func stepError(log *logger_i.Logger, op string, message string, err error) error {
	log.Error(message, "error", err)
	return failure.Classify(op, err)
}

func (p *pipeline) executeEmbeddingStep(ctx context.Context, log *logger_i.Logger, input string) ([]float32, error) {
	log.Debug("Pipeline step", "step", "embedding")

	start := time.Now()
	defer func() { metrics.CaptureExecutionMetrics("embedding", time.Since(start)) }()

	vector, err := p.embedder.GetEmbedding(ctx, input)
	if err != nil {
		return nil, stepError(log, "rag.embedding", "EMBEDDING_FAILURE", err)
	}
	return vector, nil
}

func (p *pipeline) executeRetrievalStep(ctx context.Context, log *logger_i.Logger, vector []float32) ([]chatModel.Document, error) {
	log.Debug("Pipeline step", "step", "retrieval", "topK", p.topK)

	start := time.Now()
	defer func() { metrics.CaptureExecutionMetrics("vector_search", time.Since(start)) }()

	docs, err := p.retriever.Search(ctx, vector, p.topK)
	if err != nil {
		return nil, stepError(log, "rag.retrieval", "VECTOR_DB_FAILURE", err)
	}
	if len(docs) > p.topK {
		docs = docs[:p.topK]
	}
	return docs, nil
}

func (p *pipeline) executeGenerationStep(ctx context.Context, log *logger_i.Logger, input string, docs []chatModel.Document) (string, error) {
	log.Debug("Pipeline step", "step", "generation", "documents", len(docs))

	start := time.Now()
	defer func() { metrics.CaptureExecutionMetrics("llm_generation", time.Since(start)) }()

	system, human := p.template.Format(input, docs)
	answer, err := p.generator.Generate(ctx, system, human)
	if err != nil {
		return "", stepError(log, "rag.generation", "LLM_GENERATION_FAILURE", err)
	}
	return answer, nil
}
