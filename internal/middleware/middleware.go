package middleware

import (
	"context"
	"net/http"

	"github.com/akolanti/MedChatAPI/internal/adapter"
	"github.com/akolanti/MedChatAPI/internal/adapter/utils"
	"github.com/akolanti/MedChatAPI/internal/config"
	"github.com/akolanti/MedChatAPI/internal/handlers"
	"github.com/akolanti/MedChatAPI/internal/metrics"
)

const TraceHeader = "X-Trace-Id"

func injectTrace(re requestResponseStruct) requestResponseStruct {
	re.logger.Debug("Injecting trace middleware")
	req := re.req
	trace := req.Header.Get(TraceHeader)
	if trace == "" {
		trace = utils.GetNewUUID()
	}
	re.logger = re.logger.With("traceId", trace)
	ctx := context.WithValue(req.Context(), config.TRACE_ID_KEY, trace)
	req.Header.Set(TraceHeader, trace)
	re.writer.Header().Set(TraceHeader, trace)
	re.req = req.WithContext(ctx)

	re.logger.Debug("trace middleware injected")
	return re
}

func rateLimiter(re requestResponseStruct, limiter *IPRateLimiter) requestResponseStruct {
	re.logger.Debug("Rate limiter middleware")
	ip := utils.ClientIP(re.req)

	if !limiter.GetLimiter(ip).Allow() {
		re.logger.Warn("Too many requests", "ip", ip)
		re.badRequest = failureStruct{
			isBadRequest: true,
			httpCode:     http.StatusTooManyRequests,
			errorMessage: adapter.RateLimitedMessage,
		}
		return re
	}
	re.logger.Debug("Rate limiter middleware authorized")
	return re
}

// recoverPanic turns a handler panic into the uniform 500 body.
func recoverPanic(re requestResponseStruct, rec *metrics.HttpStatusRecorder) {
	if p := recover(); p != nil {
		if p == http.ErrAbortHandler {
			panic(p)
		}
		re.logger.Error("Panic while serving request", "panic", p, "path", re.req.URL.Path)
		if !rec.WroteHeader() {
			handlers.WriteErrorResponse(rec, http.StatusInternalServerError, adapter.InternalErrorMessage)
		}
	}
}

func handleBadRequest(re requestResponseStruct) bool {
	if re.badRequest.isBadRequest {
		re.logger.Warn("Bad request", "httpCode", re.badRequest.httpCode, "errorMessage", re.badRequest.errorMessage, "IP", re.req.RemoteAddr)
		handlers.WriteErrorResponse(re.writer, re.badRequest.httpCode, re.badRequest.errorMessage)
		return false
	}
	return true
}
