package config

import "time"

// Default configuration values.
const (
	DefaultPort    = 9001
	DefaultWorkers = 0 // one per CPU

	DefaultSnapshotPath     = "kvstore.dat"
	DefaultSnapshotInterval = 10 * time.Second

	DefaultMetricsAddr = "127.0.0.1:9101"

	DefaultLogLevel  = "info"
	DefaultLogFormat = "json"
)

// Default returns the default server configuration.
func Default() *ServerConfig {
	return &ServerConfig{
		Server: ServerSection{
			Port:    DefaultPort,
			Workers: DefaultWorkers,
		},
		Storage: StorageSection{
			SnapshotPath:     DefaultSnapshotPath,
			SnapshotInterval: DefaultSnapshotInterval,
		},
		Metrics: MetricsSection{
			Enabled: false,
			Addr:    DefaultMetricsAddr,
		},
		Log: LogSection{
			Level:  DefaultLogLevel,
			Format: DefaultLogFormat,
		},
	}
}
