package handlers

import (
	"net/http"
	"strings"

	"github.com/akolanti/MedChatAPI/internal/adapter"
	"github.com/akolanti/MedChatAPI/internal/config"
	"github.com/akolanti/MedChatAPI/internal/domain/chatModel"
	"github.com/akolanti/MedChatAPI/internal/metrics"
	"github.com/akolanti/MedChatAPI/internal/services"
	"github.com/akolanti/MedChatAPI/internal/ui"
	"github.com/akolanti/MedChatAPI/pkg/logger_i"
)

// Handler serves the chat routes. Everything it needs is injected.
type Handler struct {
	services *services.Manager
	answers  chatModel.AnswerStore
	page     *ui.Page
	logger   *logger_i.Logger
}

// NewHandler wires the routes. answers and page may be nil.
func NewHandler(manager *services.Manager, answers chatModel.AnswerStore, page *ui.Page) *Handler {
	return &Handler{
		services: manager,
		answers:  answers,
		page:     page,
		logger:   logger_i.NewLogger("RequestHandler"),
	}
}

// ChatHandler godoc
// @Summary      Ask the medical chatbot
// @Description  Initialises the services on first use, retrieves the top matching chunks and returns the generated answer as plain text.
// @Tags         Chat
// @Accept       x-www-form-urlencoded
// @Produce      plain
// @Param        msg  formData  string  false  "User question (POST)"
// @Param        msg  query     string  false  "User question (GET)"
// @Success      200  {string}  string             "Generated answer"
// @Failure      400  {object}  api.ErrorResponse  "No message provided"
// @Failure      401  {object}  api.ErrorResponse  "Invalid OpenAI API key"
// @Failure      429  {object}  api.ErrorResponse  "OpenAI quota exceeded or rate limited"
// @Failure      500  {object}  api.ErrorResponse  "Initialisation or generation failure"
// @Router       /get [get]
// @Router       /get [post]
func (h *Handler) ChatHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := h.logger.WithTrace(ctx)

	if !h.services.Initialized() {
		log.Info("Initializing services...")
	}
	bundle, err := h.services.Get(ctx)
	if err != nil {
		status, body := adapter.InitFailure()
		writeJsonResponse(w, status, body)
		return
	}

	msg := messageFrom(r)
	if msg == "" {
		WriteErrorResponse(w, http.StatusBadRequest, adapter.NoMessageMessage)
		return
	}
	log.Info("Received message", "msg", msg)

	if answer, found := h.cachedAnswer(r, msg); found {
		writeTextResponse(w, http.StatusOK, answer)
		return
	}

	result, err := bundle.Pipeline.Invoke(ctx, msg)
	if err != nil {
		log.Error("Error in RAG chain", "error", err)
		status, body := adapter.ToChatError(err)
		writeJsonResponse(w, status, body)
		return
	}

	answer := result.Answer
	if answer == "" {
		answer = adapter.NoAnswerMessage
	} else {
		h.saveAnswer(r, msg, answer)
	}
	log.Info("Generated answer", "preview", preview(answer))
	writeTextResponse(w, http.StatusOK, answer)
}

// messageFrom reads msg from the form body on POST and the query string otherwise.
func messageFrom(r *http.Request) string {
	if r.Method == http.MethodPost {
		return strings.TrimSpace(r.PostFormValue("msg"))
	}
	return strings.TrimSpace(r.URL.Query().Get("msg"))
}

func (h *Handler) cachedAnswer(r *http.Request, msg string) (string, bool) {
	if h.answers == nil {
		return "", false
	}
	answer, found := h.answers.GetAnswer(r.Context(), msg)
	metrics.CaptureCacheLookup(found)
	return answer, found
}

// saveAnswer is best effort. A cache miss costs one pipeline call.
func (h *Handler) saveAnswer(r *http.Request, msg string, answer string) {
	if h.answers == nil {
		return
	}
	if err := h.answers.SaveAnswer(r.Context(), msg, answer); err != nil {
		h.logger.WithTrace(r.Context()).Warn("Could not cache answer", "error", err)
	}
}

func preview(answer string) string {
	if len(answer) <= config.LogPreviewLength {
		return answer
	}
	return answer[:config.LogPreviewLength] + "..."
}
