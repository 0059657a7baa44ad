// Package metrics exposes the service's Prometheus collectors.
package metrics

import (
	"net/http"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "frontdesk"

var (
	once sync.Once

	stayTransitions = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "stay_transitions_total",
			Help:      "Count of stay lifecycle transitions by event type.",
		},
		[]string{"event"},
	)

	transitionRejected = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "stay_transitions_rejected_total",
			Help:      "Count of rejected stay transitions by operation and status code.",
		},
		[]string{"operation", "code"},
	)

	persistFailures = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "persist_failures_total",
			Help:      "Count of failed background writes to the local store by table.",
		},
		[]string{"table"},
	)

	persistQueue = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "persist_queue_size",
			Help:      "Number of mutations waiting to be written to the local store.",
		},
	)

	syncedRecords = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "sync_records_total",
			Help:      "Count of records moved by remote sync by direction and table.",
		},
		[]string{"direction", "table"},
	)

	syncFailures = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "sync_failures_total",
			Help:      "Count of tables skipped by remote sync by direction.",
		},
		[]string{"direction", "table"},
	)

	syncDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "sync_duration_seconds",
			Help:      "Duration of a full remote sync pass.",
			Buckets:   []float64{.1, .5, 1, 2, 5, 10, 30},
		},
		[]string{"direction"},
	)

	outstandingBalance = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "checkout_balance",
			Help:      "Balance left on folios at checkout.",
			Buckets:   []float64{0, 100, 500, 1000, 5000, 10000, 50000},
		},
	)
)

// Register registers metrics (idempotent).
func Register() {
	once.Do(func() {
		prometheus.MustRegister(
			stayTransitions,
			transitionRejected,
			persistFailures,
			persistQueue,
			syncedRecords,
			syncFailures,
			syncDuration,
			outstandingBalance,
		)
	})
}

// Handler serves the default registry.
func Handler() http.Handler {
	Register()

	return promhttp.Handler()
}

func IncStayTransition(event string) {
	stayTransitions.WithLabelValues(event).Inc()
}

func IncTransitionRejected(operation, code string) {
	transitionRejected.WithLabelValues(operation, code).Inc()
}

func IncPersistFailure(table string) {
	persistFailures.WithLabelValues(table).Inc()
}

func IncPersistQueue() {
	persistQueue.Inc()
}

func DecPersistQueue() {
	persistQueue.Dec()
}

func AddSyncedRecords(direction, table string, count int) {
	syncedRecords.WithLabelValues(direction, table).Add(float64(count))
}

func IncSyncFailure(direction, table string) {
	syncFailures.WithLabelValues(direction, table).Inc()
}

func ObserveSyncDuration(direction string, started time.Time) {
	syncDuration.WithLabelValues(direction).Observe(time.Since(started).Seconds())
}

func ObserveCheckoutBalance(balance float64) {
	outstandingBalance.Observe(balance)
}
