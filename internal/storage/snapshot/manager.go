package snapshot

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/cadvik/keva-go/internal/storage/keyspace"
	"github.com/cadvik/keva-go/internal/telemetry/metric"
)

// DefaultInterval is the snapshot period used when none is configured.
const DefaultInterval = 10 * time.Second

// Config configures the snapshot manager.
type Config struct {
	// Path is the snapshot file path.
	Path string
	// Interval is the time between periodic snapshots.
	Interval time.Duration
}

// DefaultConfig returns the default manager configuration.
func DefaultConfig() Config {
	return Config{
		Path:     keyspace.DefaultFile,
		Interval: DefaultInterval,
	}
}

// Manager periodically snapshots a keyspace to disk.
type Manager struct {
	store  *keyspace.Store
	cfg    Config
	logger *slog.Logger
}

// NewManager creates a snapshot manager for store.
func NewManager(store *keyspace.Store, cfg Config, logger *slog.Logger) *Manager {
	if cfg.Path == "" {
		cfg.Path = keyspace.DefaultFile
	}
	if cfg.Interval <= 0 {
		cfg.Interval = DefaultInterval
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Manager{
		store:  store,
		cfg:    cfg,
		logger: logger,
	}
}

// Path returns the snapshot file path.
func (m *Manager) Path() string {
	return m.cfg.Path
}

// Run snapshots the keyspace every interval until ctx is canceled.
// It is intended to run on its own goroutine.
func (m *Manager) Run(ctx context.Context) {
	ticker := time.NewTicker(m.cfg.Interval)
	defer ticker.Stop()

	m.logger.Info("snapshot loop started",
		"path", m.cfg.Path,
		"interval", m.cfg.Interval)

	for {
		select {
		case <-ctx.Done():
			m.logger.Info("snapshot loop stopped")
			return
		case <-ticker.C:
			if err := m.Force(); err != nil {
				m.logger.Error("snapshot failed", "path", m.cfg.Path, "error", err)
			}
		}
	}
}

// Force writes one snapshot immediately and records its metrics.
func (m *Manager) Force() error {
	start := time.Now()
	if err := m.store.Snapshot(m.cfg.Path); err != nil {
		metric.SnapshotErrors.Inc()
		return err
	}

	elapsed := time.Since(start)
	metric.SnapshotDuration.Observe(elapsed.Seconds())
	metric.KeyspaceKeys.Set(float64(m.store.Len()))
	if stat, err := os.Stat(m.cfg.Path); err == nil {
		metric.SnapshotBytes.Set(float64(stat.Size()))
	}

	m.logger.Debug("snapshot written",
		"path", m.cfg.Path,
		"keys", m.store.Len(),
		"elapsed", elapsed)
	return nil
}
