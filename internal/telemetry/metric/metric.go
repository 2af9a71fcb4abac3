package metric

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// CommandsTotal counts dispatched commands, labeled by command name.
	CommandsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "keva_commands_total",
			Help: "Total number of commands dispatched",
		},
		[]string{"cmd"},
	)

	// CommandErrors counts requests answered with an error reply,
	// labeled by error kind (protocol, command).
	CommandErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "keva_command_errors_total",
			Help: "Total number of requests answered with an error reply",
		},
		[]string{"kind"},
	)

	// ConnectionsAccepted counts accepted client connections.
	ConnectionsAccepted = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "keva_connections_accepted_total",
			Help: "Total number of accepted client connections",
		},
	)

	// ConnectionsActive tracks currently registered client connections.
	ConnectionsActive = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "keva_connections_active",
			Help: "Number of currently open client connections",
		},
	)

	// KeyspaceKeys tracks the number of keys in the keyspace.
	KeyspaceKeys = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "keva_keyspace_keys",
			Help: "Number of keys currently in the keyspace",
		},
	)

	// SnapshotDuration measures snapshot write latency.
	SnapshotDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "keva_snapshot_duration_seconds",
			Help:    "Duration of keyspace snapshot writes in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5, 10},
		},
	)

	// SnapshotBytes tracks the size of the last written snapshot file.
	SnapshotBytes = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "keva_snapshot_size_bytes",
			Help: "Size in bytes of the last written snapshot file",
		},
	)

	// SnapshotErrors counts failed snapshot attempts.
	SnapshotErrors = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "keva_snapshot_errors_total",
			Help: "Total number of failed snapshot attempts",
		},
	)
)

// Handler returns the HTTP handler serving the /metrics endpoint.
func Handler() http.Handler {
	return promhttp.Handler()
}
