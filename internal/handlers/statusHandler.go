package handlers

import (
	"net/http"

	"github.com/akolanti/MedChatAPI/internal/adapter"
	"github.com/akolanti/MedChatAPI/internal/api"
	"github.com/akolanti/MedChatAPI/internal/ui"
)

const pageTitle = "Medical Chatbot"

// IndexHandler godoc
// @Summary      Chat page
// @Tags         Pages
// @Produce      html
// @Success      200  {string}  string             "HTML chat page"
// @Failure      500  {object}  api.ErrorResponse  "Template not found"
// @Router       / [get]
func (h *Handler) IndexHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := h.page.Render(w, ui.PageData{Title: pageTitle, Endpoint: "/get"}); err != nil {
		h.logger.WithTrace(r.Context()).Error("Error in index route", "error", err)
		WriteErrorResponse(w, http.StatusInternalServerError, adapter.TemplateMissingMessage)
	}
}

// HealthHandler godoc
// @Summary      Liveness and initialisation state
// @Tags         Status
// @Produce      json
// @Success      200  {object}  api.HealthResponse
// @Router       /health [get]
func (h *Handler) HealthHandler(w http.ResponseWriter, r *http.Request) {
	pinecone, openai := h.keysPresent()
	writeJsonResponse(w, http.StatusOK, api.HealthResponse{
		Status:              "healthy",
		ServicesInitialized: h.services.Initialized(),
		PineconeKey:         pinecone,
		OpenAIKey:           openai,
	})
}

// DebugHandler godoc
// @Summary      Configuration flags
// @Description  Reports whether each credential is present, never its value.
// @Tags         Status
// @Produce      json
// @Success      200  {object}  api.DebugResponse
// @Router       /debug [get]
func (h *Handler) DebugHandler(w http.ResponseWriter, r *http.Request) {
	pinecone, openai := h.keysPresent()
	writeJsonResponse(w, http.StatusOK, api.DebugResponse{
		PineconeKey:         pinecone,
		OpenAIKey:           openai,
		ServicesInitialized: h.services.Initialized(),
		Environment:         h.services.Settings().Environment(),
	})
}

// TestHandler godoc
// @Summary      Smoke test
// @Tags         Status
// @Produce      json
// @Success      200  {object}  api.TestResponse
// @Router       /test [get]
func (h *Handler) TestHandler(w http.ResponseWriter, r *http.Request) {
	pinecone, openai := h.keysPresent()
	writeJsonResponse(w, http.StatusOK, api.TestResponse{
		Status:      "ok",
		Message:     "App is working!",
		PineconeKey: pinecone,
		OpenAIKey:   openai,
	})
}

func (h *Handler) keysPresent() (pinecone bool, openai bool) {
	s := h.services.Settings()
	return s.PineconeAPIKey != "", s.OpenAIAPIKey != ""
}

func NotFoundHandler(w http.ResponseWriter, r *http.Request) {
	WriteErrorResponse(w, http.StatusNotFound, adapter.NotFoundMessage)
}

func MethodNotAllowedHandler(w http.ResponseWriter, r *http.Request) {
	WriteErrorResponse(w, http.StatusMethodNotAllowed, adapter.MethodNotAllowed)
}
