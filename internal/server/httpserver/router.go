package httpserver

import (
	"encoding/json"
	"net/http"

	"github.com/cadvik/keva-go/internal/infra/buildinfo"
	"github.com/cadvik/keva-go/internal/storage/keyspace"
	"github.com/cadvik/keva-go/internal/telemetry/metric"
)

// NewRouter builds the admin endpoints. The keyspace is consulted only
// for the health payload's key count.
func NewRouter(store *keyspace.Store) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, map[string]any{
			"status": "ok",
			"keys":   store.Len(),
		})
	})

	mux.HandleFunc("GET /version", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, buildinfo.Get())
	})

	mux.Handle("GET /metrics", metric.Handler())

	return mux
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}
