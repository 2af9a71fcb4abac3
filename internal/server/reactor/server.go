package reactor

import (
	"fmt"
	"log/slog"
	"runtime"
	"sync/atomic"
)

// DefaultPort is the port served when none is configured.
const DefaultPort = 9001

// Config holds the reactor configuration.
type Config struct {
	// Port is the TCP port every worker binds.
	Port uint16
	// Workers is the fleet size; 0 means one worker per CPU.
	Workers int
}

// DefaultConfig returns the default reactor configuration.
func DefaultConfig() Config {
	return Config{Port: DefaultPort}
}

// Server supervises a fleet of workers sharing one port. It does no I/O
// itself: it builds the workers, fans the handler out to them, and
// drives their lifecycle.
type Server struct {
	workers []*Worker
	running atomic.Bool
	logger  *slog.Logger
}

// New constructs the worker fleet. Any worker's socket or epoll setup
// failure aborts construction; workers already built are torn down.
func New(cfg Config, logger *slog.Logger) (*Server, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.Port == 0 {
		cfg.Port = DefaultPort
	}

	n := cfg.Workers
	if n <= 0 {
		n = runtime.NumCPU()
	}
	if n < 1 {
		n = 1
	}

	s := &Server{logger: logger}
	for i := 0; i < n; i++ {
		w, err := newWorker(cfg.Port, i, logger)
		if err != nil {
			for _, built := range s.workers {
				built.stop()
			}
			return nil, fmt.Errorf("reactor: worker %d: %w", i, err)
		}
		s.workers = append(s.workers, w)
	}

	s.logger.Info("reactor built", "workers", n, "port", cfg.Port)
	return s, nil
}

// SetRequestHandler installs the same handler into every worker. Must be
// called before Start.
func (s *Server) SetRequestHandler(h Handler) {
	for _, w := range s.workers {
		w.setHandler(h)
	}
}

// Start launches every worker's event loop.
func (s *Server) Start() {
	if !s.running.CompareAndSwap(false, true) {
		return
	}
	for _, w := range s.workers {
		w.start()
	}
	s.logger.Info("reactor started")
}

// Stop flips every worker's running flag and joins them. Each worker
// observes the flag within one readiness-wait timeout. In-flight
// requests finish; open client sockets are closed.
func (s *Server) Stop() {
	if !s.running.CompareAndSwap(true, false) {
		return
	}
	for _, w := range s.workers {
		w.stop()
	}
	s.logger.Info("reactor stopped")
}

// NumWorkers returns the fleet size.
func (s *Server) NumWorkers() int {
	return len(s.workers)
}
