package middleware

import (
	"net/http"
	"strconv"

	"github.com/akolanti/MedChatAPI/internal/metrics"
	"github.com/akolanti/MedChatAPI/pkg/logger_i"
	"github.com/go-chi/chi/v5"
)

type requestResponseStruct struct {
	writer     http.ResponseWriter
	req        *http.Request
	badRequest failureStruct
	logger     *logger_i.Logger
}

type failureStruct struct {
	isBadRequest bool
	httpCode     int
	errorMessage string
}

// Wrap is applied to every route: trace id, panic recovery and request metrics.
func Wrap(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rec := metrics.NewStatusRecorder(w)
		re := injectTrace(requestResponseStruct{
			req:    r,
			writer: rec,
			logger: logger_i.NewLogger("middleware"),
		})
		re.logger.Debug("New request received", "method", r.Method, "path", r.URL.Path)

		defer func() {
			metrics.HttpRequestsTotal.WithLabelValues(routeLabel(re.req), strconv.Itoa(rec.Status)).Inc()
		}()
		defer recoverPanic(re, rec)

		next.ServeHTTP(rec, re.req)
	})
}

// RateLimit rejects clients that exceed their per-IP budget with a 429 body.
func RateLimit(limiter *IPRateLimiter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			re := rateLimiter(requestResponseStruct{
				req:    r,
				writer: w,
				logger: logger_i.NewLogger("middleware").WithTrace(r.Context()),
			}, limiter)
			if !handleBadRequest(re) {
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// routeLabel keeps metric cardinality bounded to registered patterns.
func routeLabel(r *http.Request) string {
	if rctx := chi.RouteContext(r.Context()); rctx != nil {
		if pattern := rctx.RoutePattern(); pattern != "" {
			return pattern
		}
	}
	return "unmatched"
}
