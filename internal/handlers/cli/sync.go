package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v3"

	"github.com/gabapcia/ledgermirror/internal/handlers/metrics"
	"github.com/gabapcia/ledgermirror/internal/ledgersync"
	"github.com/gabapcia/ledgermirror/internal/pkg/logger"
)

// startCommand returns a CLI command that runs the sync loop and, when
// configured, the metrics server.
//
// Usage example:
//
//	ledgermirror start
//
// The process runs until it receives SIGINT or SIGTERM. SIGHUP asks for an
// immediate sync pass.
func startCommand(ss ledgersync.Service, cfg config) *cli.Command {
	return &cli.Command{
		Name:        "start",
		Description: "Starts mirroring the ledger, restoring the last snapshot first and saving a new one on exit.",
		Usage:       "Runs the sync loop. Terminates gracefully on Ctrl+C or termination signals.",
		Action: func(ctx context.Context, c *cli.Command) error {
			ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			hup := make(chan os.Signal, 1)
			signal.Notify(hup, syscall.SIGHUP)
			defer signal.Stop(hup)

			if err := ss.Start(ctx); err != nil {
				return err
			}
			defer ss.Close()

			errCh := make(chan error, 1)
			if cfg.metricsAddr != "" && cfg.metricsHandler != nil {
				go func() {
					errCh <- metrics.Serve(ctx, cfg.metricsAddr, cfg.metricsHandler)
				}()
			}

			for {
				select {
				case <-ctx.Done():
					return nil
				case err := <-errCh:
					if err != nil {
						return fmt.Errorf("metrics server: %w", err)
					}
				case <-hup:
					logger.Info(ctx, "sync requested by signal", "sync.accepted", ss.Sync())
				}
			}
		},
	}
}
