package openaiClient

import (
	"errors"

	"github.com/akolanti/MedChatAPI/internal/config"
	"github.com/akolanti/MedChatAPI/internal/customHttpClient"
	"github.com/akolanti/MedChatAPI/internal/domain/failure"
	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

// New builds an openai client on the shared transport. Extra options go last
// so tests can point it at a fake server.
func New(apiKey string, extra ...option.RequestOption) *openai.Client {
	opts := []option.RequestOption{
		option.WithAPIKey(apiKey),
		option.WithHTTPClient(customHttpClient.GetHttpClient()),
		option.WithMaxRetries(config.OpenAIMaxRetries),
	}
	opts = append(opts, extra...)
	c := openai.NewClient(opts...)
	return &c
}

// ClassifyError turns an openai-go error into a failure kind using the API
// error struct rather than its text.
func ClassifyError(op string, err error) error {
	if err == nil {
		return nil
	}
	var apiErr *openai.Error
	if errors.As(err, &apiErr) {
		switch {
		case apiErr.Code == "insufficient_quota" || apiErr.Type == "insufficient_quota":
			return failure.New(failure.QuotaExceeded, op, err)
		case apiErr.Code == "invalid_api_key":
			return failure.New(failure.InvalidCredential, op, err)
		}
		return failure.New(failure.FromHTTPStatus(apiErr.StatusCode), op, err)
	}
	return failure.Classify(op, err)
}
