package rag

import (
	"context"
	"time"

	"github.com/akolanti/MedChatAPI/internal/config"
	"github.com/akolanti/MedChatAPI/internal/domain/chatModel"
	"github.com/akolanti/MedChatAPI/internal/metrics"
	"github.com/akolanti/MedChatAPI/internal/rag/embedding"
	"github.com/akolanti/MedChatAPI/internal/rag/llm"
	"github.com/akolanti/MedChatAPI/internal/rag/prompt"
	"github.com/akolanti/MedChatAPI/internal/rag/vectorDB"
	"github.com/akolanti/MedChatAPI/pkg/logger_i"
)

// Pipeline is the retrieval-then-generation chain the handlers call.
// The concrete type stays private so handlers only see this contract and
// tests can swap in a fake.
type Pipeline interface {
	Invoke(ctx context.Context, input string) (chatModel.Result, error)
}

type pipeline struct {
	retriever vectorDB.Retriever
	generator llm.Provider
	embedder  embedding.Embedder
	template  prompt.Template
	topK      int
	timeout   time.Duration
	logger    *logger_i.Logger
}

type Options struct {
	Template prompt.Template
	TopK     int
	Timeout  time.Duration
}

func NewPipeline(retriever vectorDB.Retriever, generator llm.Provider, em embedding.Embedder, opts Options) Pipeline {
	if opts.TopK <= 0 {
		opts.TopK = config.RetrieverTopK
	}
	if opts.Timeout <= 0 {
		opts.Timeout = config.PipelineTimeout
	}
	if opts.Template == (prompt.Template{}) {
		opts.Template = prompt.Default()
	}
	return &pipeline{
		retriever: retriever,
		generator: generator,
		embedder:  em,
		template:  opts.Template,
		topK:      opts.TopK,
		timeout:   opts.Timeout,
		logger:    logger_i.NewLogger("RAG Pipeline"),
	}
}

func (p *pipeline) Invoke(ctx context.Context, input string) (result chatModel.Result, err error) {
	log := p.logger.WithTrace(ctx)
	result.Input = input

	start := time.Now()
	defer func() { metrics.CapturePipelineMetrics(err, time.Since(start)) }()

	processContext, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	vector, err := p.executeEmbeddingStep(processContext, log, input)
	if err != nil {
		return result, err
	}

	docs, err := p.executeRetrievalStep(processContext, log, vector)
	if err != nil {
		return result, err
	}
	result.Context = docs

	answer, err := p.executeGenerationStep(processContext, log, input, docs)
	if err != nil {
		return result, err
	}
	result.Answer = answer
	return result, nil
}
