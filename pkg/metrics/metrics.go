package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "payloadstore"

var (
	RateLimitAllowed = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: namespace, Name: "rate_limit_allowed_total", Help: "Number of allowed requests by limiter type."},
		[]string{"limiter"},
	)
	RateLimitRejected = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: namespace, Name: "rate_limit_rejected_total", Help: "Number of rejected requests by limiter type."},
		[]string{"limiter"},
	)
	// PayloadOperations counts store/retrieve calls by outcome (ok, invalid, not_found, error).
	PayloadOperations = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: namespace, Name: "operations_total", Help: "Number of payload store and retrieve operations by result."},
		[]string{"operation", "result"},
	)
	StoredBytes = prometheus.NewGauge(
		prometheus.GaugeOpts{Namespace: namespace, Name: "stored_bytes", Help: "Size of the most recently stored document."},
	)
)

func RegisterCollectors(reg prometheus.Registerer) {
	reg.MustRegister(RateLimitAllowed)
	reg.MustRegister(RateLimitRejected)
	reg.MustRegister(PayloadOperations)
	reg.MustRegister(StoredBytes)
}
