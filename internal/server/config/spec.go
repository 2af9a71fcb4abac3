package config

import "time"

// ServerConfig is the root configuration for keva-server.
type ServerConfig struct {
	Server  ServerSection  `koanf:"server"`
	Storage StorageSection `koanf:"storage"`
	Metrics MetricsSection `koanf:"metrics"`
	Log     LogSection     `koanf:"log"`
}

// ServerSection configures the TCP front end.
type ServerSection struct {
	// Port is the RESP port every worker binds.
	Port int `koanf:"port"`

	// Workers is the reactor fleet size; 0 means one worker per CPU.
	Workers int `koanf:"workers"`
}

// StorageSection configures snapshot persistence.
type StorageSection struct {
	// SnapshotPath is the snapshot file location.
	SnapshotPath string `koanf:"snapshot_path"`

	// SnapshotInterval is the time between periodic snapshots.
	SnapshotInterval time.Duration `koanf:"snapshot_interval"`
}

// MetricsSection configures the admin HTTP endpoint.
type MetricsSection struct {
	// Enabled turns the admin HTTP server on.
	Enabled bool `koanf:"enabled"`

	// Addr is the admin HTTP listen address.
	Addr string `koanf:"addr"`
}

// LogSection configures logging.
type LogSection struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
}
