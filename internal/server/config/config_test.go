package config

import (
	"testing"
	"time"
)

func TestDefault_PassesVerify(t *testing.T) {
	if err := Verify(Default()); err != nil {
		t.Errorf("default config failed verification: %v", err)
	}
}

func TestVerify(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*ServerConfig)
		wantErr bool
	}{
		{
			name:   "valid custom config",
			mutate: func(c *ServerConfig) { c.Server.Port = 6390; c.Server.Workers = 4 },
		},
		{
			name:    "port zero",
			mutate:  func(c *ServerConfig) { c.Server.Port = 0 },
			wantErr: true,
		},
		{
			name:    "port too large",
			mutate:  func(c *ServerConfig) { c.Server.Port = 70000 },
			wantErr: true,
		},
		{
			name:    "negative workers",
			mutate:  func(c *ServerConfig) { c.Server.Workers = -1 },
			wantErr: true,
		},
		{
			name:    "empty snapshot path",
			mutate:  func(c *ServerConfig) { c.Storage.SnapshotPath = "" },
			wantErr: true,
		},
		{
			name:    "zero snapshot interval",
			mutate:  func(c *ServerConfig) { c.Storage.SnapshotInterval = 0 },
			wantErr: true,
		},
		{
			name:    "metrics enabled without addr",
			mutate:  func(c *ServerConfig) { c.Metrics.Enabled = true; c.Metrics.Addr = "" },
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := Verify(cfg)
			if tt.wantErr && err == nil {
				t.Error("expected error, got nil")
			}
			if !tt.wantErr && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestDefault_Values(t *testing.T) {
	cfg := Default()
	if cfg.Server.Port != 9001 {
		t.Errorf("port = %d, want 9001", cfg.Server.Port)
	}
	if cfg.Storage.SnapshotPath != "kvstore.dat" {
		t.Errorf("snapshot path = %q, want kvstore.dat", cfg.Storage.SnapshotPath)
	}
	if cfg.Storage.SnapshotInterval != 10*time.Second {
		t.Errorf("snapshot interval = %v, want 10s", cfg.Storage.SnapshotInterval)
	}
	if cfg.Log.Level != "info" || cfg.Log.Format != "json" {
		t.Errorf("log defaults = %q/%q", cfg.Log.Level, cfg.Log.Format)
	}
}
