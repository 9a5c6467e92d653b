package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Settings holds everything that is read from the process environment.
type Settings struct {
	PineconeAPIKey string
	OpenAIAPIKey   string
	GoogleAPIKey   string

	Vercel   bool
	Port     string
	LogLevel string

	LLMProvider string
	VectorStore string
	IndexName   string

	QdrantHost   string
	QdrantPort   int
	QdrantAPIKey string

	RedisAddr     string
	RedisPassword string
}

// LoadDotEnv loads a .env file if one exists. A missing file is not an error.
func LoadDotEnv(files ...string) error {
	err := godotenv.Load(files...)
	if err != nil && os.IsNotExist(err) {
		return nil
	}
	return err
}

func Load() Settings {
	s := Settings{
		PineconeAPIKey: strings.TrimSpace(os.Getenv("PINECONE_API_KEY")),
		OpenAIAPIKey:   strings.TrimSpace(os.Getenv("OPENAI_API_KEY")),
		GoogleAPIKey:   strings.TrimSpace(os.Getenv("GOOGLE_API_KEY")),
		Vercel:         os.Getenv("VERCEL") != "",
		Port:           os.Getenv("PORT"),
		LogLevel:       strings.ToLower(os.Getenv("LOG_LEVEL")),
		LLMProvider:    strings.ToLower(os.Getenv("LLM_PROVIDER")),
		VectorStore:    strings.ToLower(os.Getenv("VECTOR_STORE")),
		IndexName:      os.Getenv("PINECONE_INDEX"),
		QdrantHost:     os.Getenv("QDRANT_HOST"),
		QdrantAPIKey:   os.Getenv("QDRANT_API_KEY"),
		RedisAddr:      os.Getenv("REDIS_ADDR"),
		RedisPassword:  os.Getenv("REDIS_PASSWORD"),
	}

	if s.LLMProvider == "" {
		s.LLMProvider = ProviderOpenAI
	}
	if s.VectorStore == "" {
		s.VectorStore = VectorStorePinecone
	}
	if s.IndexName == "" {
		s.IndexName = VectorIndexName
	}
	if s.QdrantHost == "" {
		s.QdrantHost = QdrantHost
	}
	port, err := strconv.Atoi(os.Getenv("QDRANT_PORT"))
	if err != nil || port <= 0 {
		port = QdrantGrpcPort
	}
	s.QdrantPort = port
	return s
}

func (s Settings) Environment() string {
	if s.Vercel {
		return "production"
	}
	return "development"
}

// ListenAddr prefers PORT (set by most hosting platforms) over the fallback.
func (s Settings) ListenAddr(fallback string) string {
	if s.Port != "" {
		return ":" + s.Port
	}
	return fallback
}

// MissingCredentials names the keys the configured providers need but don't have.
func (s Settings) MissingCredentials() []string {
	var missing []string
	if s.VectorStore == VectorStorePinecone && s.PineconeAPIKey == "" {
		missing = append(missing, "PINECONE_API_KEY")
	}
	switch s.LLMProvider {
	case ProviderGemini:
		if s.GoogleAPIKey == "" {
			missing = append(missing, "GOOGLE_API_KEY")
		}
	default:
		if s.OpenAIAPIKey == "" {
			missing = append(missing, "OPENAI_API_KEY")
		}
	}
	return missing
}
