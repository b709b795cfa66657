package cli

import (
	"context"
	"io"
	"net/http"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/gabapcia/ledgermirror/internal/ledgersync"
	"github.com/gabapcia/ledgermirror/internal/registry"
)

type config struct {
	writer         io.Writer
	metricsAddr    string
	metricsHandler http.Handler
}

// Option configures the CLI application built by Run.
type Option func(*config)

// WithWriter replaces os.Stdout as the output of commands that print.
func WithWriter(w io.Writer) Option {
	return func(c *config) {
		c.writer = w
	}
}

// WithMetricsServer makes `start` serve handler on addr while the sync loop
// runs. An empty addr disables the server.
func WithMetricsServer(addr string, handler http.Handler) Option {
	return func(c *config) {
		c.metricsAddr = addr
		c.metricsHandler = handler
	}
}

// Run initializes and executes the ledgermirror CLI application.
//
// It registers all available commands, including:
//
//   - `start`: Runs the ledger sync loop until interrupted.
//   - `track` / `untrack`: Manage the tracked addresses.
//   - `pending add` / `pending remove`: Manage pending deposits.
//   - `stats`: Prints the statistics of the last saved snapshot.
//
// Parameters:
//   - ctx: Context used to control the lifecycle of the CLI application.
//   - rs: The registry service used by the address and deposit commands.
//   - ss: The sync service used by the start command.
//   - stats: Loads the statistics printed by the stats command.
func Run(ctx context.Context, rs registry.Service, ss ledgersync.Service, stats StatsLoader, opts ...Option) error {
	cfg := config{
		writer: os.Stdout,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	app := &cli.Command{
		EnableShellCompletion: true,
		Name:                  "ledgermirror",
		Description:           "Command-line interface for running and managing the ledger transaction mirror.",
		Usage:                 "ledgermirror [command] [flags]",
		Writer:                cfg.writer,
		Commands: []*cli.Command{
			startCommand(ss, cfg),
			trackAddressCommand(rs),
			untrackAddressCommand(rs),
			pendingDepositCommand(rs),
			statsCommand(stats),
		},
	}

	return app.Run(ctx, os.Args)
}
