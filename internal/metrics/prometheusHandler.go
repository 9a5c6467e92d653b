package metrics

import (
	"net/http"
	"time"

	"github.com/akolanti/MedChatAPI/internal/domain/failure"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var HttpRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "http_requests_total",
	Help: "Total number of requests labelled by route and status",
}, []string{"path", "status"})

var serviceInitTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "service_init_total",
	Help: "Service bundle construction attempts by result",
}, []string{"result"})

var answerCacheTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "answer_cache_total",
	Help: "Answer cache lookups by result",
}, []string{"result"})

var pipelineDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
	Name:    "pipeline_duration_seconds",
	Help:    "Total time spent in the retrieval and generation pipeline.",
	Buckets: []float64{.1, .5, 1, 2, 5, 10, 30},
}, []string{"result"})

var dependencyLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
	Name:    "dependency_latency_seconds",
	Help:    "Latency of external service calls.",
	Buckets: []float64{.05, .1, .25, .5, 1, 2, 5, 10},
}, []string{"service"})

type HttpStatusRecorder struct {
	http.ResponseWriter
	Status      int
	wroteHeader bool
}

func NewStatusRecorder(w http.ResponseWriter) *HttpStatusRecorder {
	return &HttpStatusRecorder{ResponseWriter: w, Status: http.StatusOK}
}

func (r *HttpStatusRecorder) WriteHeader(code int) {
	if !r.wroteHeader {
		r.Status = code
		r.wroteHeader = true
	}
	r.ResponseWriter.WriteHeader(code)
}

func (r *HttpStatusRecorder) Write(b []byte) (int, error) {
	r.wroteHeader = true
	return r.ResponseWriter.Write(b)
}

// WroteHeader reports whether anything reached the client yet.
func (r *HttpStatusRecorder) WroteHeader() bool {
	return r.wroteHeader
}

// Flush lets streaming handlers (SSE) push headers and events through the recorder.
func (r *HttpStatusRecorder) Flush() {
	if f, ok := r.ResponseWriter.(http.Flusher); ok {
		r.wroteHeader = true
		f.Flush()
	}
}

func (r *HttpStatusRecorder) Unwrap() http.ResponseWriter {
	return r.ResponseWriter
}

func CaptureExecutionMetrics(label string, timeElapsed time.Duration) {
	dependencyLatency.WithLabelValues(label).Observe(timeElapsed.Seconds())
}

func CapturePipelineMetrics(err error, timeElapsed time.Duration) {
	label := "ok"
	if err != nil {
		label = string(failure.KindOf(err))
	}
	pipelineDuration.WithLabelValues(label).Observe(timeElapsed.Seconds())
}

func CaptureServiceInit(err error) {
	label := "ok"
	if err != nil {
		label = string(failure.KindOf(err))
	}
	serviceInitTotal.WithLabelValues(label).Inc()
}

func CaptureCacheLookup(hit bool) {
	if hit {
		answerCacheTotal.WithLabelValues("hit").Inc()
		return
	}
	answerCacheTotal.WithLabelValues("miss").Inc()
}
