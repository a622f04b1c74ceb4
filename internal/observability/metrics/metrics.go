package metrics

import (
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"
)

type Outcome string

const (
	Success Outcome = "success"
	Error   Outcome = "error"
)

func (O Outcome) String() string {
	return string(O)
}

var (
	once                         sync.Once
	metricsRouter                *chi.Mux
	httpRequestDurationHistogram *prometheus.HistogramVec
	queueMessageCounter          *prometheus.CounterVec
	cleanupRemovedCounter        prometheus.Counter
)

// Init initializes the metrics package.
func Init(metricsPort int) {
	once.Do(func() {
		initMetricsRouter(metricsPort)
		registerMetrics()
	})
}

// initMetricsRouter initializes the metrics router.
func initMetricsRouter(metricsPort int) {
	metricsRouter = chi.NewRouter()
	metricsRouter.Get("/metrics", func(w http.ResponseWriter, r *http.Request) {
		promhttp.Handler().ServeHTTP(w, r)
	})

	go func() {
		metricsAddr := fmt.Sprintf(":%d", metricsPort)
		err := http.ListenAndServe(metricsAddr, metricsRouter)
		if err != nil {
			log.Fatal().Err(err).Msgf("error starting metrics server on %s", metricsAddr)
		}
	}()
}

// registerMetrics initializes and register the Prometheus metrics.
func registerMetrics() {
	defaultHistogramBucketsSeconds := []float64{0.1, 0.5, 1, 2.5, 5, 10, 30}

	httpRequestDurationHistogram = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Histogram of http request durations in seconds.",
			Buckets: defaultHistogramBucketsSeconds,
		},
		[]string{"endpoint", "status"},
	)

	queueMessageCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "queue_messages_processed_total",
			Help: "Total number of queue messages processed, by queue and outcome.",
		},
		[]string{"queue", "outcome"},
	)

	cleanupRemovedCounter = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "withdrawal_requests_pruned_total",
			Help: "Total number of terminal withdrawal requests removed by cleanup passes.",
		},
	)

	prometheus.MustRegister(
		httpRequestDurationHistogram,
		queueMessageCounter,
		cleanupRemovedCounter,
	)
}

// StartHttpRequestDurationTimer starts a timer to measure http request handling duration.
// It is a no-op until Init has been called.
func StartHttpRequestDurationTimer(endpoint string) func(statusCode int) {
	startTime := time.Now()
	return func(statusCode int) {
		if httpRequestDurationHistogram == nil {
			return
		}
		duration := time.Since(startTime).Seconds()
		httpRequestDurationHistogram.WithLabelValues(endpoint, fmt.Sprintf("%d", statusCode)).Observe(duration)
	}
}

// RecordQueueMessage counts a processed queue message.
func RecordQueueMessage(queueName string, outcome Outcome) {
	if queueMessageCounter == nil {
		return
	}
	queueMessageCounter.WithLabelValues(queueName, outcome.String()).Inc()
}

// RecordPrunedRequests counts withdrawal requests removed by a cleanup pass.
func RecordPrunedRequests(count int64) {
	if cleanupRemovedCounter == nil {
		return
	}
	cleanupRemovedCounter.Add(float64(count))
}
