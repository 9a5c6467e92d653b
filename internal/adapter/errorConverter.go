package adapter

import (
	"net/http"

	"github.com/akolanti/MedChatAPI/internal/api"
	"github.com/akolanti/MedChatAPI/internal/domain/failure"
)

const (
	InitFailedMessage      = "Failed to initialize services. Please check your API keys."
	NoMessageMessage       = "No message provided"
	NotFoundMessage        = "Not found"
	MethodNotAllowed       = "Method not allowed"
	InternalErrorMessage   = "Internal server error"
	TemplateMissingMessage = "Template not found"
	RateLimitedMessage     = "Rate limit exceeded. Please slow down."
	NoAnswerMessage        = "No answer generated"

	quotaMessage   = "OpenAI API quota exceeded. Please check your billing and try again later."
	quotaDetails   = "You've exceeded your current OpenAI API quota. Please visit https://platform.openai.com/account/billing to add credits."
	invalidKey     = "Invalid OpenAI API key. Please check your configuration."
	invalidDetails = "The OpenAI API key is invalid or expired."
)

func BadRequest(message string) api.ErrorResponse {
	return api.ErrorResponse{Error: message}
}

func InitFailure() (int, api.ErrorResponse) {
	return http.StatusInternalServerError, api.ErrorResponse{Error: InitFailedMessage}
}

// ToChatError maps a pipeline failure to its HTTP status and body.
func ToChatError(err error) (int, api.ErrorResponse) {
	switch failure.KindOf(err) {
	case failure.QuotaExceeded:
		return http.StatusTooManyRequests, api.ErrorResponse{Error: quotaMessage, Details: quotaDetails}
	case failure.InvalidCredential:
		return http.StatusUnauthorized, api.ErrorResponse{Error: invalidKey, Details: invalidDetails}
	case failure.MessageMissing:
		return http.StatusBadRequest, api.ErrorResponse{Error: NoMessageMessage}
	}
	return http.StatusInternalServerError, api.ErrorResponse{Error: "Error generating response: " + err.Error()}
}
