package reactor

import (
	"fmt"
	"log/slog"
	"runtime"
	"sync"
	"sync/atomic"

	"github.com/oklog/ulid/v2"
	"golang.org/x/sys/unix"

	"github.com/cadvik/keva-go/internal/telemetry/metric"
)

const (
	// maxEvents bounds one epoll_wait batch.
	maxEvents = 100

	// epollTimeoutMs bounds the readiness wait; the timeout is the only
	// point where a worker observes its running flag going false.
	epollTimeoutMs = 100

	// readBufferSize is the size of one kernel read.
	readBufferSize = 1024
)

// Handler turns one request's bytes into the reply bytes to send.
type Handler func(request []byte) []byte

// Worker owns one listening socket, one epoll instance, and every
// connection it has accepted. All I/O runs on its own OS thread.
type Worker struct {
	ordinal  int
	listenFD int
	epollFD  int

	handler Handler
	running atomic.Bool
	started atomic.Bool
	done    chan struct{}
	closeFD sync.Once

	// conns maps an accepted fd to its connection id for logging and
	// final cleanup. Touched only by the worker's own thread while the
	// loop runs, and by stop after the loop has exited.
	conns map[int]string

	logger *slog.Logger
}

// newWorker creates a worker listening on 0.0.0.0:port. The socket and
// epoll setup happen here so that a failure aborts server construction.
func newWorker(port uint16, ordinal int, logger *slog.Logger) (*Worker, error) {
	w := &Worker{
		ordinal: ordinal,
		conns:   make(map[int]string),
		done:    make(chan struct{}),
		logger:  logger.With("worker", ordinal),
	}

	if err := w.setupSocket(port); err != nil {
		return nil, err
	}
	if err := w.setupEpoll(); err != nil {
		unix.Close(w.listenFD)
		return nil, err
	}
	return w, nil
}

func (w *Worker) setupSocket(port uint16) error {
	fd, err := unix.Socket(unix.AF_INET, unix.SOCK_STREAM|unix.SOCK_NONBLOCK|unix.SOCK_CLOEXEC, 0)
	if err != nil {
		return fmt.Errorf("reactor: socket: %w", err)
	}

	// SO_REUSEPORT gives every worker its own listener on the shared
	// port; the kernel distributes incoming connections between them.
	// TCP_NODELAY on the listener propagates to accepted sockets.
	if err := unix.SetsockoptInt(fd, unix.SOL_SOCKET, unix.SO_REUSEADDR, 1); err != nil {
		unix.Close(fd)
		return fmt.Errorf("reactor: setsockopt SO_REUSEADDR: %w", err)
	}
	if err := unix.SetsockoptInt(fd, unix.SOL_SOCKET, unix.SO_REUSEPORT, 1); err != nil {
		unix.Close(fd)
		return fmt.Errorf("reactor: setsockopt SO_REUSEPORT: %w", err)
	}
	if err := unix.SetsockoptInt(fd, unix.IPPROTO_TCP, unix.TCP_NODELAY, 1); err != nil {
		unix.Close(fd)
		return fmt.Errorf("reactor: setsockopt TCP_NODELAY: %w", err)
	}

	sa := &unix.SockaddrInet4{Port: int(port)}
	if err := unix.Bind(fd, sa); err != nil {
		unix.Close(fd)
		return fmt.Errorf("reactor: bind port %d: %w", port, err)
	}
	if err := unix.Listen(fd, unix.SOMAXCONN); err != nil {
		unix.Close(fd)
		return fmt.Errorf("reactor: listen: %w", err)
	}

	w.listenFD = fd
	return nil
}

func (w *Worker) setupEpoll() error {
	epfd, err := unix.EpollCreate1(unix.EPOLL_CLOEXEC)
	if err != nil {
		return fmt.Errorf("reactor: epoll_create1: %w", err)
	}

	ev := unix.EpollEvent{Events: unix.EPOLLIN, Fd: int32(w.listenFD)}
	if err := unix.EpollCtl(epfd, unix.EPOLL_CTL_ADD, w.listenFD, &ev); err != nil {
		unix.Close(epfd)
		return fmt.Errorf("reactor: epoll_ctl add listener: %w", err)
	}

	w.epollFD = epfd
	return nil
}

// setHandler installs the request handler. Must be called before start.
func (w *Worker) setHandler(h Handler) {
	w.handler = h
}

func (w *Worker) start() {
	if !w.running.CompareAndSwap(false, true) {
		return
	}
	w.started.Store(true)
	go w.eventLoop()
}

// stop flips the running flag and waits for the event loop to observe
// it, then releases every fd the worker still owns.
func (w *Worker) stop() {
	w.running.Store(false)
	if w.started.Load() {
		<-w.done
	}
	w.closeFD.Do(func() {
		for fd := range w.conns {
			unix.Close(fd)
			metric.ConnectionsActive.Dec()
		}
		w.conns = nil
		unix.Close(w.epollFD)
		unix.Close(w.listenFD)
	})
}

func (w *Worker) eventLoop() {
	defer close(w.done)

	// The event loop is the worker's dedicated thread; pin it so the
	// fleet spreads across cores. Pinning failure is ignored.
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()
	w.pinThread()

	events := make([]unix.EpollEvent, maxEvents)

	for w.running.Load() {
		n, err := unix.EpollWait(w.epollFD, events, epollTimeoutMs)
		if err != nil {
			if err == unix.EINTR {
				continue
			}
			w.logger.Error("epoll wait failed, worker exiting", "error", err)
			return
		}

		for i := 0; i < n; i++ {
			fd := int(events[i].Fd)
			if fd == w.listenFD {
				if err := w.acceptClients(); err != nil {
					w.logger.Error("accept failed, worker exiting", "error", err)
					return
				}
			} else {
				w.handleClient(fd)
			}
		}
	}
}

func (w *Worker) pinThread() {
	cpus := runtime.NumCPU()
	if cpus < 1 {
		return
	}
	var set unix.CPUSet
	set.Zero()
	set.Set(w.ordinal % cpus)
	_ = unix.SchedSetaffinity(0, &set)
}

// acceptClients drains the listener. Accepted sockets are made
// non-blocking and registered edge-triggered. Any accept error other
// than "would block" is fatal to the worker.
func (w *Worker) acceptClients() error {
	for {
		fd, _, err := unix.Accept(w.listenFD)
		if err != nil {
			switch err {
			case unix.EAGAIN:
				return nil
			case unix.EINTR:
				continue
			default:
				return fmt.Errorf("reactor: accept: %w", err)
			}
		}

		if err := unix.SetNonblock(fd, true); err != nil {
			unix.Close(fd)
			continue
		}

		ev := unix.EpollEvent{Events: unix.EPOLLIN | unix.EPOLLET, Fd: int32(fd)}
		if err := unix.EpollCtl(w.epollFD, unix.EPOLL_CTL_ADD, fd, &ev); err != nil {
			unix.Close(fd)
			return fmt.Errorf("reactor: epoll_ctl add client: %w", err)
		}

		id := ulid.Make().String()
		w.conns[fd] = id
		metric.ConnectionsAccepted.Inc()
		metric.ConnectionsActive.Inc()
		w.logger.Debug("connection accepted", "conn_id", id)
	}
}

// handleClient services one readiness event: drain the socket, hand the
// bytes to the handler, send the reply in one shot.
func (w *Worker) handleClient(fd int) {
	var request []byte
	var buf [readBufferSize]byte

	for {
		n, err := unix.Read(fd, buf[:])
		if n > 0 {
			request = append(request, buf[:n]...)
			continue
		}
		if err == nil {
			// n == 0: peer closed. Any bytes read with the FIN are
			// dropped along with the connection.
			w.closeConn(fd)
			return
		}
		if err == unix.EAGAIN || err == unix.EWOULDBLOCK {
			break
		}
		if err == unix.EINTR {
			continue
		}
		w.closeConn(fd)
		return
	}

	if len(request) == 0 || w.handler == nil {
		return
	}

	reply := w.handler(request)
	if len(reply) == 0 {
		return
	}

	// Single send; a short send's remainder is dropped. Sendto with a
	// nil address is send(2) on a connected socket.
	if err := unix.Sendto(fd, reply, unix.MSG_NOSIGNAL, nil); err != nil {
		if err != unix.EAGAIN && err != unix.EWOULDBLOCK {
			w.closeConn(fd)
		}
	}
}

func (w *Worker) closeConn(fd int) {
	_ = unix.EpollCtl(w.epollFD, unix.EPOLL_CTL_DEL, fd, nil)
	unix.Close(fd)
	if id, ok := w.conns[fd]; ok {
		delete(w.conns, fd)
		metric.ConnectionsActive.Dec()
		w.logger.Debug("connection closed", "conn_id", id)
	}
}
