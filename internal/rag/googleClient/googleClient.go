package googleClient

import (
	"context"
	"errors"
	"strings"

	"github.com/akolanti/MedChatAPI/internal/customHttpClient"
	"github.com/akolanti/MedChatAPI/internal/domain/failure"
	"google.golang.org/genai"
)

func New(ctx context.Context, apiKey string) (*genai.Client, error) {
	if apiKey == "" {
		return nil, failure.Newf(failure.MissingCredentials, "genai.client", "GOOGLE_API_KEY is not set")
	}
	c, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:     apiKey,
		Backend:    genai.BackendGeminiAPI,
		HTTPClient: customHttpClient.GetHttpClient(),
	})
	if err != nil {
		return nil, failure.New(failure.DependencyUnavailable, "genai.client", err)
	}
	return c, nil
}

func ClassifyError(op string, err error) error {
	if err == nil {
		return nil
	}
	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		switch {
		case apiErr.Status == "RESOURCE_EXHAUSTED":
			return failure.New(failure.QuotaExceeded, op, err)
		case apiErr.Status == "UNAUTHENTICATED" || apiErr.Status == "PERMISSION_DENIED":
			return failure.New(failure.InvalidCredential, op, err)
		// the Gemini API answers a bad key with 400 INVALID_ARGUMENT
		case strings.Contains(apiErr.Message, "API key not valid"):
			return failure.New(failure.InvalidCredential, op, err)
		}
		return failure.New(failure.FromHTTPStatus(apiErr.Code), op, err)
	}
	if kind, ok := failure.FromGrpcError(err); ok {
		return failure.New(kind, op, err)
	}
	return failure.Classify(op, err)
}
