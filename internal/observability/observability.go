package observability

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	JobsSubmitted = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "exportq_jobs_submitted_total",
		Help: "The total number of submitted export jobs",
	}, []string{"priority"})

	JobsProcessed = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "exportq_jobs_processed_total",
		Help: "The total number of settled export jobs",
	}, []string{"status"}) // status: complete, failed, cancelled

	JobRetries = promauto.NewCounter(prometheus.CounterOpts{
		Name: "exportq_job_retries_total",
		Help: "The total number of retry attempts scheduled",
	})

	QueueDepth = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "exportq_queue_depth",
		Help: "Jobs currently waiting in the priority queue",
	})

	JobDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "exportq_job_duration_seconds",
		Help:    "Duration of export job processing.",
		Buckets: prometheus.ExponentialBuckets(0.05, 2, 12),
	})

	DispatchVetoes = promauto.NewCounter(prometheus.CounterOpts{
		Name: "exportq_dispatch_vetoes_total",
		Help: "Dispatch passes vetoed by the resource monitor",
	})
)

// NewLogger creates a new structured logger.
func NewLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(os.Stdout, nil))
}

// StartMetricsServer runs an HTTP server to expose Prometheus metrics.
func StartMetricsServer(addr string) {
	go func() {
		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.Handler())
		if err := http.ListenAndServe(addr, mux); err != nil {
			slog.Error("metrics server failed", "error", err)
		}
	}()
}
