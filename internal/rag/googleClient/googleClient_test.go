package googleClient

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/akolanti/MedChatAPI/internal/domain/failure"
	"github.com/stretchr/testify/assert"
	"google.golang.org/genai"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func TestClassifyError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want failure.Kind
	}{
		{"exhausted", genai.APIError{Code: 429, Status: "RESOURCE_EXHAUSTED"}, failure.QuotaExceeded},
		{"bad key", genai.APIError{Code: 400, Status: "INVALID_ARGUMENT", Message: "API key not valid. Please pass a valid API key."}, failure.InvalidCredential},
		{"denied", fmt.Errorf("wrapped: %w", genai.APIError{Code: 403, Status: "PERMISSION_DENIED"}), failure.InvalidCredential},
		{"server", genai.APIError{Code: 503, Status: "UNAVAILABLE"}, failure.ConnectionFailure},
		{"grpc", status.Error(codes.ResourceExhausted, "slow down"), failure.QuotaExceeded},
		{"plain", errors.New("boom"), failure.Generic},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, failure.KindOf(ClassifyError("op", tt.err)))
		})
	}
}

func TestNew_MissingKey(t *testing.T) {
	_, err := New(context.Background(), "")
	assert.Equal(t, failure.MissingCredentials, failure.KindOf(err))
}
