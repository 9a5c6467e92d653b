package mcpServer

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/akolanti/MedChatAPI/internal/adapter"
	"github.com/akolanti/MedChatAPI/internal/api"
	"github.com/akolanti/MedChatAPI/internal/config"
	"github.com/akolanti/MedChatAPI/internal/services"
	"github.com/akolanti/MedChatAPI/pkg/logger_i"
	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

const AskToolName = "ask"

var askInputSchema = json.RawMessage(`{
  "type": "object",
  "properties": {
    "message": {"type": "string", "description": "The medical question to answer"}
  },
  "required": ["message"]
}`)

// NewServer exposes the chat pipeline as an MCP tool backed by the same manager as /get.
func NewServer(manager *services.Manager) *sdkmcp.Server {
	server := sdkmcp.NewServer(&sdkmcp.Implementation{
		Name:    config.MCPServerName,
		Version: config.MCPServerVersion,
	}, nil)

	t := &askTool{services: manager, logger: logger_i.NewLogger("MCPServer")}
	server.AddTool(&sdkmcp.Tool{
		Name:        AskToolName,
		Description: "Answer a medical question using the retrieval-augmented chatbot.",
		InputSchema: askInputSchema,
	}, t.handle)
	return server
}

// NewHandler serves the streamable HTTP transport.
func NewHandler(server *sdkmcp.Server) http.Handler {
	return sdkmcp.NewStreamableHTTPHandler(func(r *http.Request) *sdkmcp.Server {
		return server
	}, nil)
}

type askTool struct {
	services *services.Manager
	logger   *logger_i.Logger
}

func (t *askTool) handle(ctx context.Context, req *sdkmcp.CallToolRequest) (*sdkmcp.CallToolResult, error) {
	var input api.AskToolInput
	if req.Params.Arguments != nil {
		if err := json.Unmarshal(req.Params.Arguments, &input); err != nil {
			return toolError("invalid arguments: " + err.Error()), nil
		}
	}
	message := strings.TrimSpace(input.Message)
	if message == "" {
		return toolError(adapter.NoMessageMessage), nil
	}

	bundle, err := t.services.Get(ctx)
	if err != nil {
		_, body := adapter.InitFailure()
		return toolError(body.Error), nil
	}

	result, err := bundle.Pipeline.Invoke(ctx, message)
	if err != nil {
		t.logger.WithTrace(ctx).Error("Error in RAG chain", "error", err)
		_, body := adapter.ToChatError(err)
		return toolError(body.Error), nil
	}
	answer := result.Answer
	if answer == "" {
		answer = adapter.NoAnswerMessage
	}
	return &sdkmcp.CallToolResult{
		Content: []sdkmcp.Content{&sdkmcp.TextContent{Text: answer}},
	}, nil
}

func toolError(text string) *sdkmcp.CallToolResult {
	return &sdkmcp.CallToolResult{
		Content: []sdkmcp.Content{&sdkmcp.TextContent{Text: text}},
		IsError: true,
	}
}
