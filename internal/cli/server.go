package cli

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"time"

	httpview "github.com/aretw0/ipcli/pkg/adapters/http"
	"github.com/prometheus/client_golang/prometheus"
)

// viewServer serves the read-only HTTP view next to an interactive session.
type viewServer struct {
	srv    *http.Server
	ln     net.Listener
	logger *slog.Logger
}

func startViewServer(addr string, view *httpview.View, gatherer prometheus.Gatherer, logger *slog.Logger) (*viewServer, error) {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, err
	}
	vs := &viewServer{
		srv: &http.Server{
			Handler:           httpview.NewHandler(view, gatherer),
			ReadHeaderTimeout: 5 * time.Second,
		},
		ln:     ln,
		logger: logger,
	}
	go func() {
		if err := vs.srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("HTTP view stopped", "err", err)
		}
	}()
	logger.Info("HTTP view listening", "addr", ln.Addr().String())
	return vs, nil
}

// Addr returns the bound address, useful when listening on port 0.
func (vs *viewServer) Addr() string {
	return vs.ln.Addr().String()
}

func (vs *viewServer) Shutdown() {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := vs.srv.Shutdown(ctx); err != nil {
		vs.logger.Debug("HTTP view shutdown", "err", err)
	}
}
