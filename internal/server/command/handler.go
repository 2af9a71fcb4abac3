package command

import (
	"log/slog"

	"github.com/cadvik/keva-go/internal/resp"
	"github.com/cadvik/keva-go/internal/storage/keyspace"
	"github.com/cadvik/keva-go/internal/telemetry/metric"
)

// Reply messages. Arity mismatches answer "unknown command", matching
// the served protocol contract.
const (
	errInvalidCommand = "ERR invalid command"
	errUnknownCommand = "ERR unknown command"
)

// Handler dispatches parsed commands against a keyspace.
type Handler struct {
	store  *keyspace.Store
	logger *slog.Logger
}

// NewHandler creates a Handler backed by store.
func NewHandler(store *keyspace.Store, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{
		store:  store,
		logger: logger,
	}
}

// HandleRequest parses every RESP frame in req and returns the
// concatenated replies. A malformed frame produces one error reply and
// abandons the rest of the buffer; there is no way to find the next
// frame boundary after a parse failure.
func (h *Handler) HandleRequest(req []byte) []byte {
	var out []byte
	pos := 0
	for pos < len(req) {
		v, err := resp.Parse(req, &pos)
		if err != nil {
			metric.CommandErrors.WithLabelValues("protocol").Inc()
			h.logger.Debug("protocol error", "error", err)
			return append(out, resp.ErrorReply("ERR "+err.Error())...)
		}
		out = append(out, h.dispatch(v)...)
	}
	return out
}

func (h *Handler) dispatch(v resp.Value) []byte {
	if v.Kind != resp.KindArray || len(v.Array) == 0 {
		metric.CommandErrors.WithLabelValues("command").Inc()
		return resp.ErrorReply(errInvalidCommand)
	}

	name := v.Array[0]
	if !name.IsString() {
		metric.CommandErrors.WithLabelValues("command").Inc()
		return resp.ErrorReply(errInvalidCommand)
	}

	switch string(name.Str) {
	case "GET":
		if len(v.Array) == 2 {
			metric.CommandsTotal.WithLabelValues("GET").Inc()
			return h.handleGet(v.Array[1])
		}
	case "SET":
		if len(v.Array) == 3 {
			metric.CommandsTotal.WithLabelValues("SET").Inc()
			return h.handleSet(v.Array[1], v.Array[2])
		}
	case "DEL":
		if len(v.Array) == 2 {
			metric.CommandsTotal.WithLabelValues("DEL").Inc()
			return h.handleDel(v.Array[1])
		}
	}

	metric.CommandErrors.WithLabelValues("command").Inc()
	return resp.ErrorReply(errUnknownCommand)
}

func (h *Handler) handleGet(key resp.Value) []byte {
	value, ok := h.store.Get(string(key.Str))
	if !ok {
		return resp.NullBulkReply()
	}
	return resp.BulkReply(value)
}

func (h *Handler) handleSet(key, value resp.Value) []byte {
	h.store.Set(string(key.Str), value.Str)
	return resp.OKReply()
}

func (h *Handler) handleDel(key resp.Value) []byte {
	if h.store.Del(string(key.Str)) {
		return resp.IntReply(1)
	}
	return resp.IntReply(0)
}
