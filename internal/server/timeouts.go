// internal/server/timeouts.go
//
// HTTP server helper with robust timeouts.
//
// Both listeners the binary can start (the stub endpoint and the
// /metrics exporter) are built here:
//
//   • ReadTimeout   – abort slow-loris headers (10 s)
//   • WriteTimeout  – cap total response time (15 s)
//   • IdleTimeout   – close keep-alives on idle clients (60 s)
//

package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"go.uber.org/zap"
)

// ShutdownGrace bounds how long Run waits for in-flight requests.
const ShutdownGrace = 5 * time.Second

// New constructs an *http.Server with sensible defaults.
func New(addr string, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadTimeout:       10 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
}

// Run serves until ctx is cancelled, then shuts down gracefully.
// http.ErrServerClosed is not reported as an error.
func Run(ctx context.Context, srv *http.Server, name string) error {
	errc := make(chan error, 1)
	go func() {
		zap.S().Infow("listener started", "name", name, "addr", srv.Addr)
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		zap.S().Errorw("listener failed", "name", name, "addr", srv.Addr, "err", err)
		return err
	case <-ctx.Done():
	}

	sctx, cancel := context.WithTimeout(context.Background(), ShutdownGrace)
	defer cancel()
	zap.S().Infow("listener stopping", "name", name)
	return srv.Shutdown(sctx)
}
