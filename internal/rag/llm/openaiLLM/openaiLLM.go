package openaiLLM

import (
	"context"

	"github.com/akolanti/MedChatAPI/internal/config"
	"github.com/akolanti/MedChatAPI/internal/domain/failure"
	"github.com/akolanti/MedChatAPI/internal/rag/llm"
	"github.com/akolanti/MedChatAPI/internal/rag/openaiClient"
	"github.com/akolanti/MedChatAPI/pkg/logger_i"
	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

type llmClient struct {
	openAI    *openai.Client
	modelName string
	logger    *logger_i.Logger
}

func NewChatModel(apiKey string, modelName string, opts ...option.RequestOption) (llm.Provider, error) {
	if apiKey == "" {
		return nil, failure.Newf(failure.MissingCredentials, "openai.chat", "OPENAI_API_KEY is not set")
	}
	logger := logger_i.NewLogger("llm_openai")
	logger.Info("OpenAI chat client created", "model", modelName)
	return &llmClient{
		openAI:    openaiClient.New(apiKey, opts...),
		modelName: modelName,
		logger:    logger,
	}, nil
}

func (c *llmClient) Generate(ctx context.Context, systemPrompt string, userMessage string) (string, error) {
	log := c.logger.WithTrace(ctx)

	completion, err := c.openAI.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(c.modelName),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(systemPrompt),
			openai.UserMessage(userMessage),
		},
		Temperature: openai.Float(float64(config.ModelTemperature)),
	})
	if err != nil {
		log.Error("Error generating completion", "error", err)
		return "", openaiClient.ClassifyError("openai.chat", err)
	}
	if len(completion.Choices) == 0 {
		log.Warn("Completion returned no choices")
		return "", nil
	}
	return completion.Choices[0].Message.Content, nil
}
