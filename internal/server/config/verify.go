package config

import (
	"errors"
	"fmt"
)

// Verify validates the configuration.
func Verify(cfg *ServerConfig) error {
	if cfg.Server.Port < 1 || cfg.Server.Port > 65535 {
		return fmt.Errorf("server.port %d out of range", cfg.Server.Port)
	}
	if cfg.Server.Workers < 0 {
		return errors.New("server.workers must not be negative")
	}
	if cfg.Storage.SnapshotPath == "" {
		return errors.New("storage.snapshot_path is required")
	}
	if cfg.Storage.SnapshotInterval <= 0 {
		return errors.New("storage.snapshot_interval must be positive")
	}
	if cfg.Metrics.Enabled && cfg.Metrics.Addr == "" {
		return errors.New("metrics.addr is required when metrics are enabled")
	}
	return nil
}
