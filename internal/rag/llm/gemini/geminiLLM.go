package gemini

import (
	"context"

	"github.com/akolanti/MedChatAPI/internal/config"
	"github.com/akolanti/MedChatAPI/internal/rag/googleClient"
	"github.com/akolanti/MedChatAPI/internal/rag/llm"
	"github.com/akolanti/MedChatAPI/pkg/logger_i"
	"google.golang.org/genai"
)

type llmClient struct {
	client    *genai.Client
	modelName string
	logger    *logger_i.Logger
}

func NewGeminiClient(ctx context.Context, apiKey string, modelName string) (llm.Provider, error) {
	c, err := googleClient.New(ctx, apiKey)
	if err != nil {
		return nil, err
	}
	logger := logger_i.NewLogger("llm_gemini")
	logger.Info("Gemini client created", "model", modelName)
	return &llmClient{client: c, modelName: modelName, logger: logger}, nil
}

func (c *llmClient) Generate(ctx context.Context, systemPrompt string, userMessage string) (string, error) {
	log := c.logger.WithTrace(ctx)
	temperature := config.ModelTemperature

	contentConfig := &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{Text: systemPrompt}},
		},
		Temperature: &temperature,
	}

	result, err := c.client.Models.GenerateContent(ctx, c.modelName, genai.Text(userMessage), contentConfig)
	if err != nil {
		log.Error("Error generating Gemini content", "error", err)
		return "", googleClient.ClassifyError("gemini.generate", err)
	}
	if result == nil {
		return "", nil
	}
	return result.Text(), nil
}
