package ai

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	aiRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "whalestreet_ai_requests_total",
			Help: "Total number of requests to the AI provider.",
		},
		[]string{"provider", "flow", "status"},
	)
	aiRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "whalestreet_ai_request_duration_seconds",
			Help:    "Histogram of AI provider request durations.",
			Buckets: []float64{0.5, 1, 2.5, 5, 10, 20, 40, 80, 160},
		},
		[]string{"provider", "flow"},
	)
)
