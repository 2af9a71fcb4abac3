// keva-server is an in-memory key-value server speaking the Redis
// serialization protocol, with periodic snapshot persistence.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/cadvik/keva-go/internal/infra/buildinfo"
	"github.com/cadvik/keva-go/internal/infra/confloader"
	"github.com/cadvik/keva-go/internal/infra/shutdown"
	"github.com/cadvik/keva-go/internal/server/command"
	"github.com/cadvik/keva-go/internal/server/config"
	"github.com/cadvik/keva-go/internal/server/httpserver"
	"github.com/cadvik/keva-go/internal/server/reactor"
	"github.com/cadvik/keva-go/internal/storage/keyspace"
	"github.com/cadvik/keva-go/internal/storage/snapshot"
	"github.com/cadvik/keva-go/internal/telemetry/logger"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	var (
		configFile  = flag.String("config", "", "Path to configuration file")
		showVersion = flag.Bool("version", false, "Show version information")
	)
	flag.Parse()

	if *showVersion {
		fmt.Printf("keva-server %s\n", buildinfo.String())
		return nil
	}

	cfg, err := loadConfig(*configFile)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	log := logger.New(logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: os.Stdout,
	})

	log.Info("starting keva-server",
		"version", buildinfo.Version,
		"config", *configFile)

	// Restore the keyspace from the last snapshot, if any.
	store, err := keyspace.Open(cfg.Storage.SnapshotPath)
	if err != nil {
		return fmt.Errorf("restore keyspace: %w", err)
	}
	log.Info("keyspace restored", "path", cfg.Storage.SnapshotPath, "keys", store.Len())

	// Build the reactor before starting anything; socket setup failures
	// are fatal here.
	srv, err := reactor.New(reactor.Config{
		Port:    uint16(cfg.Server.Port),
		Workers: cfg.Server.Workers,
	}, log)
	if err != nil {
		return fmt.Errorf("build reactor: %w", err)
	}
	srv.SetRequestHandler(command.NewHandler(store, log).HandleRequest)

	// Periodic snapshots on their own goroutine.
	snapCtx, cancelSnap := context.WithCancel(context.Background())
	defer cancelSnap()
	manager := snapshot.NewManager(store, snapshot.Config{
		Path:     cfg.Storage.SnapshotPath,
		Interval: cfg.Storage.SnapshotInterval,
	}, log)
	go manager.Run(snapCtx)

	var adminSrv *httpserver.Server
	if cfg.Metrics.Enabled {
		adminSrv = httpserver.New(cfg.Metrics.Addr, httpserver.NewRouter(store))
		go func() {
			log.Info("admin HTTP server listening", "addr", cfg.Metrics.Addr)
			if err := adminSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				log.Error("admin HTTP server error", "error", err)
			}
		}()
	}

	if *configFile != "" {
		stopWatch, err := watchConfig(*configFile, log)
		if err != nil {
			log.Warn("config watcher unavailable", "error", err)
		} else {
			defer stopWatch()
		}
	}

	shutdownHandler := shutdown.NewHandler(30 * time.Second)

	// Hooks run in reverse registration order: reactor first, then the
	// final snapshot, then the admin server.
	if adminSrv != nil {
		shutdownHandler.OnShutdown(func(ctx context.Context) error {
			log.Info("shutting down admin HTTP server")
			return adminSrv.Shutdown(ctx)
		})
	}
	shutdownHandler.OnShutdown(func(context.Context) error {
		cancelSnap()
		log.Info("writing final snapshot")
		return manager.Force()
	})
	shutdownHandler.OnShutdown(func(context.Context) error {
		log.Info("stopping reactor")
		srv.Stop()
		return nil
	})

	srv.Start()
	log.Info("server started",
		"port", cfg.Server.Port,
		"workers", srv.NumWorkers())

	if err := shutdownHandler.Wait(); err != nil {
		log.Error("shutdown error", "error", err)
		return err
	}

	log.Info("server stopped")
	return nil
}

// loadConfig merges defaults, the optional config file, and environment
// variables, then validates the result.
func loadConfig(configFile string) (*config.ServerConfig, error) {
	cfg := config.Default()

	opts := []confloader.Option{}
	if configFile != "" {
		opts = append(opts, confloader.WithConfigFile(configFile))
	}

	if err := confloader.NewLoader(opts...).Load(cfg); err != nil {
		return nil, err
	}

	if err := config.Verify(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// watchConfig re-applies the log level when the config file changes.
func watchConfig(configFile string, log *slog.Logger) (stop func(), err error) {
	w, err := confloader.NewWatcher(configFile, log)
	if err != nil {
		return nil, err
	}

	w.OnChange(func(path string) {
		cfg, err := loadConfig(path)
		if err != nil {
			log.Warn("config reload failed", "path", path, "error", err)
			return
		}
		logger.SetLevel(cfg.Log.Level)
		log.Info("log level re-applied", "level", cfg.Log.Level)
	})
	w.StartAsync()

	return func() { _ = w.Stop() }, nil
}
