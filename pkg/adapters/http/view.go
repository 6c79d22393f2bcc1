package http

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"sync"

	"github.com/aretw0/ipcli/pkg/domain"
	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// View keeps the latest published snapshot of a session.
// The runner publishes into it; HTTP handlers only ever read copies.
type View struct {
	mu      sync.RWMutex
	current domain.Snapshot
	ready   bool

	Streams *StreamManager
	Logger  *slog.Logger
}

// NewView creates an empty view.
func NewView(logger *slog.Logger) *View {
	if logger == nil {
		logger = slog.Default()
	}
	return &View{
		Streams: NewStreamManager(logger),
		Logger:  logger,
	}
}

// Publish replaces the current snapshot and pushes the frame to stream subscribers.
func (v *View) Publish(s domain.Snapshot) {
	v.mu.Lock()
	v.current = s
	v.ready = true
	v.mu.Unlock()

	v.Streams.Broadcast(s.Frame)
}

// Snapshot returns the latest snapshot and whether one was published yet.
func (v *View) Snapshot() (domain.Snapshot, bool) {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.current, v.ready
}

// NewHandler creates the read-only HTTP surface for v.
// Metrics are served from gatherer; a nil gatherer disables /metrics.
func NewHandler(v *View, gatherer prometheus.Gatherer) http.Handler {
	r := chi.NewRouter()

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"ok"}`))
	})
	r.Get("/canvas", func(w http.ResponseWriter, _ *http.Request) {
		s, ok := v.Snapshot()
		if !ok {
			http.Error(w, "no frame rendered yet", http.StatusServiceUnavailable)
			return
		}
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		fmt.Fprintln(w, s.Frame)
	})
	r.Get("/history", func(w http.ResponseWriter, _ *http.Request) {
		s, _ := v.Snapshot()
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.Write([]byte(s.Script))
	})
	r.Get("/snapshot", func(w http.ResponseWriter, _ *http.Request) {
		s, ok := v.Snapshot()
		if !ok {
			http.Error(w, "no frame rendered yet", http.StatusServiceUnavailable)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(s); err != nil {
			v.Logger.Error("failed to encode snapshot", "err", err)
		}
	})
	r.Get("/events", v.subscribe)
	if gatherer != nil {
		r.Handle("/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))
	}
	return r
}
