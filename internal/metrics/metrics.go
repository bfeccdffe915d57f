// Package metrics provides Prometheus instrumentation for the Roomee
// matching service: match request outcomes, the distribution of computed
// compatibility scores, and the size of the active room pool.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// MatchRequests counts orchestrated match runs, labeled by outcome:
	// "matched", "no_match", or "error".
	MatchRequests = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "roomee_match_requests_total",
		Help: "Total number of match requests processed",
	}, []string{"outcome"})

	// CompatibilityScores records the compatibility score of every
	// successful match.
	CompatibilityScores = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "roomee_compatibility_score",
		Help:    "Compatibility scores of produced matches",
		Buckets: []float64{10, 20, 30, 40, 50, 60, 70, 80, 90, 100},
	})

	// RoomPoolSize tracks the number of active rooms seen by the latest
	// match run.
	RoomPoolSize = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "roomee_room_pool_size",
		Help: "Active rooms available to the latest match run",
	})

	// DocumentSubmissions counts identity document submissions, labeled by
	// document type.
	DocumentSubmissions = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "roomee_identity_documents_total",
		Help: "Total number of submitted identity documents",
	}, []string{"type"})
)

func init() {
	prometheus.MustRegister(
		MatchRequests,
		CompatibilityScores,
		RoomPoolSize,
		DocumentSubmissions,
	)
}

// Handler returns the Prometheus metrics HTTP handler.
func Handler() http.Handler {
	return promhttp.Handler()
}
