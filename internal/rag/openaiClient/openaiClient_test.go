package openaiClient_test

import (
	"errors"
	"testing"

	"github.com/akolanti/MedChatAPI/internal/domain/failure"
	"github.com/akolanti/MedChatAPI/internal/rag/openaiClient"
	"github.com/openai/openai-go"
	"github.com/stretchr/testify/assert"
)

func TestClassifyError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want failure.Kind
	}{
		{"quota code", &openai.Error{StatusCode: 429, Code: "insufficient_quota"}, failure.QuotaExceeded},
		{"rate limited", &openai.Error{StatusCode: 429}, failure.QuotaExceeded},
		{"invalid key code", &openai.Error{StatusCode: 401, Code: "invalid_api_key"}, failure.InvalidCredential},
		{"forbidden", &openai.Error{StatusCode: 403}, failure.InvalidCredential},
		{"server error", &openai.Error{StatusCode: 502}, failure.ConnectionFailure},
		{"bad request", &openai.Error{StatusCode: 400}, failure.Generic},
		{"untyped text", errors.New("insufficient_quota"), failure.QuotaExceeded},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, failure.KindOf(openaiClient.ClassifyError("op", tt.err)))
		})
	}
	assert.NoError(t, openaiClient.ClassifyError("op", nil))
}
