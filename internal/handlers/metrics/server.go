package metrics

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/gabapcia/ledgermirror/internal/pkg/logger"
	"github.com/gabapcia/ledgermirror/internal/pkg/x/chflow"
)

// NewHandler serves /metrics in the Prometheus exposition format and /stats
// as JSON.
func NewHandler(stats StatsReader) http.Handler {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		NewCollector(stats),
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	mux := http.NewServeMux()
	mux.Handle("GET /metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{
		EnableOpenMetrics: true,
	}))
	mux.HandleFunc("GET /stats", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(stats.Stats()); err != nil {
			logger.Warn(r.Context(), "failed to write stats", "error", err)
		}
	})

	return mux
}

// Serve runs an HTTP server for handler on addr until ctx is done, then shuts
// it down gracefully.
func Serve(ctx context.Context, addr string, handler http.Handler) error {
	server := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info(ctx, "metrics server listening", "http.addr", addr)
		errCh <- server.ListenAndServe()
	}()

	if err, ok := chflow.Receive(ctx, errCh); ok {
		return err
	}

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return err
	}

	if err := <-errCh; !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}
