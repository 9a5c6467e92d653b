package config

import (
	"log/slog"
	"time"
)

const (
	LOG_LEVEL_PROD = slog.LevelInfo
	TRACE_ID_KEY   = "traceId"

	//rate limits apply to the chat and MCP routes only
	RATE_LIMIT_PER_SECOND       = 2
	BURST_RATE_LIMIT_PER_SECOND = 5

	//one MCP session costs several HTTP requests (initialize, notifications, SSE stream, DELETE)
	MCP_RATE_LIMIT_PER_SECOND       = 10
	MCP_BURST_RATE_LIMIT_PER_SECOND = 40

	//serverTimeouts
	ReadTimeout            = 5 * time.Second
	WriteTimeout           = 60 * time.Second
	IdleTimeout            = 120 * time.Second
	ShutdownContextTimeout = 10 * time.Second

	//server listening port
	ServerListenAddr = ":8080"

	//pipeline
	PipelineTimeout  = 45 * time.Second
	InitTimeout      = 20 * time.Second
	RetrieverTopK    = 3
	LogPreviewLength = 100

	//vectorDB
	VectorIndexName                     = "medical-chatbot"
	VectorStorePinecone                 = "pinecone"
	VectorStoreQdrant                   = "qdrant"
	EmbeddingOutputDimensionality int32 = 1536
	DocumentTextKey                     = "text"
	DocumentSourceKey                   = "source"

	QdrantHost     = "localhost"
	QdrantGrpcPort = 6334
	QdrantUseTLS   = false
	QdrantPoolSize = 1

	//llm
	ProviderOpenAI       = "openai"
	ProviderGemini       = "gemini"
	OpenAIEmbeddingModel = "text-embedding-ada-002"
	OpenAIChatModel      = "gpt-4o-mini"
	GeminiModelName      = "gemini-2.5-flash-lite"
	GoogleEmbeddingModel = "gemini-embedding-001"

	ModelTemperature float32 = 0.4
	//openai-go retries 429s by default, we want them surfaced
	OpenAIMaxRetries = 0

	MaxIdleConns        = 50
	MaxIdleConnsPerHost = 25
	IdleConnTimeout     = 60 * time.Second
	HttpClientTimeout   = 30 * time.Second

	//redis
	RedisAddr = "127.0.0.1:6379"
	//redis has 16 DB we can use
	RedisAnswerStore    = 0
	RedisAnswerStoreTTL = 24 * time.Hour
	RedisPingTimeout    = 3 * time.Second

	//fallback cache when redis is offline
	InMemoryAnswerStoreMaxEntries = 1000

	//mcp
	MCPServerName    = "medical-chatbot"
	MCPServerVersion = "1.0.0"
)
