package testutil

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
)

// FakeOpenAI serves just enough of the OpenAI REST surface for the wrappers.
type FakeOpenAI struct {
	Server *httptest.Server

	Answer    string
	Vector    []float64
	Status    int
	ErrorCode string

	EmbeddingCalls  atomic.Int32
	CompletionCalls atomic.Int32
	LastMessages    atomic.Value // []map[string]any
}

func NewFakeOpenAI(t *testing.T) *FakeOpenAI {
	f := &FakeOpenAI{Answer: "fake answer", Vector: []float64{0.1, 0.2, 0.3}}
	f.Server = httptest.NewServer(http.HandlerFunc(f.serve))
	t.Cleanup(f.Server.Close)
	return f
}

// BaseURL is what option.WithBaseURL expects.
func (f *FakeOpenAI) BaseURL() string {
	return f.Server.URL + "/v1/"
}

func (f *FakeOpenAI) serve(w http.ResponseWriter, r *http.Request) {
	if f.Status != 0 && f.Status != http.StatusOK {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(f.Status)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"error": map[string]any{
				"message": "fake failure",
				"type":    f.ErrorCode,
				"code":    f.ErrorCode,
				"param":   nil,
			},
		})
		return
	}

	switch {
	case strings.HasSuffix(r.URL.Path, "/embeddings"):
		f.EmbeddingCalls.Add(1)
		writeJSON(w, map[string]any{
			"object": "list",
			"model":  "text-embedding-ada-002",
			"data": []map[string]any{
				{"object": "embedding", "index": 0, "embedding": f.Vector},
			},
			"usage": map[string]any{"prompt_tokens": 1, "total_tokens": 1},
		})
	case strings.HasSuffix(r.URL.Path, "/chat/completions"):
		f.CompletionCalls.Add(1)
		var body struct {
			Messages []map[string]any `json:"messages"`
		}
		_ = json.NewDecoder(r.Body).Decode(&body)
		f.LastMessages.Store(body.Messages)
		writeJSON(w, map[string]any{
			"id":      "chatcmpl-test",
			"object":  "chat.completion",
			"created": 1700000000,
			"model":   "gpt-4o-mini",
			"choices": []map[string]any{
				{
					"index":         0,
					"finish_reason": "stop",
					"message":       map[string]any{"role": "assistant", "content": f.Answer},
				},
			},
		})
	default:
		http.NotFound(w, r)
	}
}

// Messages returns the chat messages of the last completion request.
func (f *FakeOpenAI) Messages() []map[string]any {
	v, _ := f.LastMessages.Load().([]map[string]any)
	return v
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}
