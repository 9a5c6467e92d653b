package mcpServer

import (
	"context"
	"errors"
	"testing"

	"github.com/akolanti/MedChatAPI/internal/config"
	"github.com/akolanti/MedChatAPI/internal/domain/chatModel"
	"github.com/akolanti/MedChatAPI/internal/domain/failure"
	"github.com/akolanti/MedChatAPI/internal/services"
	"github.com/akolanti/MedChatAPI/internal/testutil"
	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func connect(t *testing.T, manager *services.Manager) *sdkmcp.ClientSession {
	t.Helper()
	ctx := context.Background()
	clientTransport, serverTransport := sdkmcp.NewInMemoryTransports()

	serverSession, err := NewServer(manager).Connect(ctx, serverTransport, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = serverSession.Close() })

	client := sdkmcp.NewClient(&sdkmcp.Implementation{Name: "test-client", Version: "v0.0.1"}, nil)
	session, err := client.Connect(ctx, clientTransport, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = session.Close() })
	return session
}

func managerWith(pipe *testutil.MockPipeline) *services.Manager {
	return services.NewManager(config.Settings{}, func(ctx context.Context, s config.Settings) (*services.Bundle, error) {
		return &services.Bundle{Retriever: &testutil.MockRetriever{}, Pipeline: pipe}, nil
	})
}

func text(t *testing.T, res *sdkmcp.CallToolResult) string {
	t.Helper()
	require.Len(t, res.Content, 1)
	tc, ok := res.Content[0].(*sdkmcp.TextContent)
	require.True(t, ok)
	return tc.Text
}

func TestAskTool_Listed(t *testing.T) {
	session := connect(t, managerWith(&testutil.MockPipeline{}))
	tools, err := session.ListTools(context.Background(), nil)
	require.NoError(t, err)
	require.Len(t, tools.Tools, 1)
	assert.Equal(t, AskToolName, tools.Tools[0].Name)
}

func TestAskTool_Answers(t *testing.T) {
	pipe := &testutil.MockPipeline{OnInvoke: func(ctx context.Context, input string) (chatModel.Result, error) {
		return chatModel.Result{Answer: "Drink fluids and rest."}, nil
	}}
	session := connect(t, managerWith(pipe))

	res, err := session.CallTool(context.Background(), &sdkmcp.CallToolParams{
		Name:      AskToolName,
		Arguments: map[string]any{"message": "How do I treat a cold?"},
	})
	require.NoError(t, err)
	assert.False(t, res.IsError)
	assert.Equal(t, "Drink fluids and rest.", text(t, res))
}

func TestAskTool_Errors(t *testing.T) {
	pipe := &testutil.MockPipeline{OnInvoke: func(ctx context.Context, input string) (chatModel.Result, error) {
		return chatModel.Result{}, failure.New(failure.QuotaExceeded, "openai.chat", errors.New("insufficient_quota"))
	}}
	session := connect(t, managerWith(pipe))

	res, err := session.CallTool(context.Background(), &sdkmcp.CallToolParams{
		Name:      AskToolName,
		Arguments: map[string]any{"message": "hi"},
	})
	require.NoError(t, err)
	assert.True(t, res.IsError)
	assert.Contains(t, text(t, res), "quota exceeded")

	res, err = session.CallTool(context.Background(), &sdkmcp.CallToolParams{
		Name:      AskToolName,
		Arguments: map[string]any{"message": "   "},
	})
	require.NoError(t, err)
	assert.True(t, res.IsError)
	assert.Equal(t, "No message provided", text(t, res))
	assert.EqualValues(t, 1, pipe.Calls.Load())
}

func TestAskTool_InitFailure(t *testing.T) {
	manager := services.NewManager(config.Settings{LLMProvider: config.ProviderOpenAI, VectorStore: config.VectorStorePinecone}, nil)
	session := connect(t, manager)

	res, err := session.CallTool(context.Background(), &sdkmcp.CallToolParams{
		Name:      AskToolName,
		Arguments: map[string]any{"message": "hi"},
	})
	require.NoError(t, err)
	assert.True(t, res.IsError)
	assert.Contains(t, text(t, res), "Failed to initialize services")
}
