package openaiLLM

import (
	"context"
	"net/http"
	"testing"

	"github.com/akolanti/MedChatAPI/internal/domain/failure"
	"github.com/akolanti/MedChatAPI/internal/testutil"
	"github.com/openai/openai-go/option"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate(t *testing.T) {
	fake := testutil.NewFakeOpenAI(t)
	fake.Answer = "Diabetes is a chronic condition."

	model, err := NewChatModel("sk-test", "gpt-4o-mini", option.WithBaseURL(fake.BaseURL()))
	require.NoError(t, err)

	answer, err := model.Generate(context.Background(), "system instruction", "What is diabetes?")
	require.NoError(t, err)
	assert.Equal(t, "Diabetes is a chronic condition.", answer)

	msgs := fake.Messages()
	require.Len(t, msgs, 2)
	assert.Equal(t, "system", msgs[0]["role"])
	assert.Equal(t, "system instruction", msgs[0]["content"])
	assert.Equal(t, "user", msgs[1]["role"])
	assert.Equal(t, "What is diabetes?", msgs[1]["content"])
}

func TestGenerate_QuotaExceeded(t *testing.T) {
	fake := testutil.NewFakeOpenAI(t)
	fake.Status = http.StatusTooManyRequests
	fake.ErrorCode = "insufficient_quota"

	model, err := NewChatModel("sk-test", "gpt-4o-mini", option.WithBaseURL(fake.BaseURL()))
	require.NoError(t, err)

	_, err = model.Generate(context.Background(), "sys", "hi")
	require.Error(t, err)
	assert.Equal(t, failure.QuotaExceeded, failure.KindOf(err))
}

func TestNewChatModel_MissingKey(t *testing.T) {
	_, err := NewChatModel("", "gpt-4o-mini")
	assert.Equal(t, failure.MissingCredentials, failure.KindOf(err))
}
