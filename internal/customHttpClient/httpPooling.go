package customHttpClient

import (
	"net/http"
	"sync"

	"github.com/akolanti/MedChatAPI/internal/config"
)

var (
	once   sync.Once
	client *http.Client
)

// GetHttpClient returns the pooled client shared by openai, pinecone and genai.
func GetHttpClient() *http.Client {
	once.Do(func() {
		transport := http.DefaultTransport.(*http.Transport).Clone()
		transport.MaxIdleConns = config.MaxIdleConns
		transport.MaxIdleConnsPerHost = config.MaxIdleConnsPerHost
		transport.IdleConnTimeout = config.IdleConnTimeout

		client = &http.Client{
			Transport: transport,
			Timeout:   config.HttpClientTimeout,
		}
	})
	return client
}
