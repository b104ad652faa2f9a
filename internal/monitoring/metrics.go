// Package monitoring exposes Prometheus metrics for snapshot builds and the HTTP API.
package monitoring

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/sells-group/volcano-cli/internal/explore"
)

const namespace = "volcano"

// Metrics holds the Prometheus collectors for snapshot builds and API traffic.
type Metrics struct {
	SnapshotBuilds    *prometheus.CounterVec // labels: outcome={success,error}
	ProximityDuration prometheus.Histogram
	DatasetRows       *prometheus.GaugeVec // labels: dataset={volcanoes,cities}
	MatchedCities     prometheus.Gauge
	NearbyMatches     prometheus.Gauge

	HTTPRequests *prometheus.CounterVec   // labels: route, code
	HTTPDuration *prometheus.HistogramVec // labels: route
}

func newMetrics() *Metrics {
	return &Metrics{
		SnapshotBuilds: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "snapshot_builds_total",
			Help:      "Proximity snapshot builds by outcome.",
		}, []string{"outcome"}),
		ProximityDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "proximity_duration_seconds",
			Help:      "Duration of the city/volcano proximity aggregation.",
			Buckets:   []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
		}),
		DatasetRows: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "dataset_rows",
			Help:      "Rows loaded per dataset in the current snapshot.",
		}, []string{"dataset"}),
		MatchedCities: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "matched_cities",
			Help:      "Cities with at least one same-country volcano within the threshold.",
		}),
		NearbyMatches: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "nearby_matches",
			Help:      "City/volcano pairs within the threshold.",
		}),
		HTTPRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "API requests by route pattern and status code.",
		}, []string{"route", "code"}),
		HTTPDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "API request latency by route pattern.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"route"}),
	}
}

// NewMetrics creates the collectors and registers them with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := newMetrics()
	reg.MustRegister(
		m.SnapshotBuilds,
		m.ProximityDuration,
		m.DatasetRows,
		m.MatchedCities,
		m.NearbyMatches,
		m.HTTPRequests,
		m.HTTPDuration,
	)
	return m
}

// NewMetricsForTesting creates Metrics on a fresh registry to avoid
// "already registered" panics across tests.
func NewMetricsForTesting() (*Metrics, *prometheus.Registry) {
	reg := prometheus.NewRegistry()
	return NewMetrics(reg), reg
}

// ObserveSnapshot records a successful build.
func (m *Metrics) ObserveSnapshot(s *explore.Snapshot) {
	m.SnapshotBuilds.WithLabelValues("success").Inc()
	m.ProximityDuration.Observe(s.Duration.Seconds())
	m.DatasetRows.WithLabelValues("volcanoes").Set(float64(len(s.Volcanoes)))
	m.DatasetRows.WithLabelValues("cities").Set(float64(len(s.Cities)))
	m.MatchedCities.Set(float64(len(s.Table)))
	m.NearbyMatches.Set(float64(len(s.Matched)))
}

// ObserveSnapshotError records a failed build.
func (m *Metrics) ObserveSnapshotError() {
	m.SnapshotBuilds.WithLabelValues("error").Inc()
}

// ObserveRequest records one API request.
func (m *Metrics) ObserveRequest(route string, code int, elapsed time.Duration) {
	m.HTTPRequests.WithLabelValues(route, statusLabel(code)).Inc()
	m.HTTPDuration.WithLabelValues(route).Observe(elapsed.Seconds())
}
