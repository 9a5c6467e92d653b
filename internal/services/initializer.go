package services

import (
	"context"
	"strings"

	"github.com/akolanti/MedChatAPI/internal/config"
	"github.com/akolanti/MedChatAPI/internal/domain/failure"
	"github.com/akolanti/MedChatAPI/internal/rag"
	"github.com/akolanti/MedChatAPI/internal/rag/embedding"
	"github.com/akolanti/MedChatAPI/internal/rag/embedding/googleEmbedding"
	"github.com/akolanti/MedChatAPI/internal/rag/embedding/openaiEmbedding"
	"github.com/akolanti/MedChatAPI/internal/rag/llm"
	"github.com/akolanti/MedChatAPI/internal/rag/llm/gemini"
	"github.com/akolanti/MedChatAPI/internal/rag/llm/openaiLLM"
	"github.com/akolanti/MedChatAPI/internal/rag/prompt"
	"github.com/akolanti/MedChatAPI/internal/rag/vectorDB"
	"github.com/akolanti/MedChatAPI/internal/rag/vectorDB/pineconeDB"
	"github.com/akolanti/MedChatAPI/internal/rag/vectorDB/qdrantDB"
	"github.com/akolanti/MedChatAPI/pkg/logger_i"
)

// BuildBundle wires the real remote clients selected by settings.
func BuildBundle(ctx context.Context, settings config.Settings) (*Bundle, error) {
	log := logger_i.NewLogger("ServiceInitializer").WithTrace(ctx)

	if missing := settings.MissingCredentials(); len(missing) > 0 {
		log.Error("Missing API keys", "keys", missing)
		return nil, failure.Newf(failure.MissingCredentials, "services.init", "missing %s", strings.Join(missing, ", "))
	}

	log.Info("Loading embeddings model...", "provider", settings.LLMProvider)
	embedder, err := newEmbedder(ctx, settings)
	if err != nil {
		return nil, err
	}

	log.Info("Connecting to vector store...", "store", settings.VectorStore, "index", settings.IndexName)
	retriever, err := newRetriever(ctx, settings)
	if err != nil {
		return nil, err
	}

	log.Info("Creating retrieval chain...")
	generator, err := newGenerator(ctx, settings)
	if err != nil {
		_ = retriever.Close()
		return nil, err
	}

	pipeline := rag.NewPipeline(retriever, generator, embedder, rag.Options{
		Template: prompt.Default(),
		TopK:     config.RetrieverTopK,
	})

	return &Bundle{
		Embedder:  embedder,
		Retriever: retriever,
		Generator: generator,
		Pipeline:  pipeline,
	}, nil
}

func newEmbedder(ctx context.Context, settings config.Settings) (embedding.Embedder, error) {
	switch settings.LLMProvider {
	case config.ProviderOpenAI:
		return openaiEmbedding.NewEmbedder(settings.OpenAIAPIKey, config.OpenAIEmbeddingModel)
	case config.ProviderGemini:
		return googleEmbedding.NewGoogleEmbedder(ctx, settings.GoogleAPIKey, config.GoogleEmbeddingModel)
	}
	return nil, failure.Newf(failure.DependencyUnavailable, "services.embedder", "unknown provider %q", settings.LLMProvider)
}

func newGenerator(ctx context.Context, settings config.Settings) (llm.Provider, error) {
	switch settings.LLMProvider {
	case config.ProviderOpenAI:
		return openaiLLM.NewChatModel(settings.OpenAIAPIKey, config.OpenAIChatModel)
	case config.ProviderGemini:
		return gemini.NewGeminiClient(ctx, settings.GoogleAPIKey, config.GeminiModelName)
	}
	return nil, failure.Newf(failure.DependencyUnavailable, "services.generator", "unknown provider %q", settings.LLMProvider)
}

func newRetriever(ctx context.Context, settings config.Settings) (vectorDB.Retriever, error) {
	switch settings.VectorStore {
	case config.VectorStorePinecone:
		return pineconeDB.FromExistingIndex(ctx, settings.PineconeAPIKey, settings.IndexName)
	case config.VectorStoreQdrant:
		return qdrantDB.FromExistingCollection(ctx, qdrantDB.Params{
			Host:           settings.QdrantHost,
			Port:           settings.QdrantPort,
			APIKey:         settings.QdrantAPIKey,
			CollectionName: settings.IndexName,
		})
	}
	return nil, failure.Newf(failure.DependencyUnavailable, "services.retriever", "unknown vector store %q", settings.VectorStore)
}
