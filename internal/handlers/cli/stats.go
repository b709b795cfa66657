package cli

import (
	"context"
	"encoding/json"

	"github.com/urfave/cli/v3"

	"github.com/gabapcia/ledgermirror/internal/accounts"
)

// StatsLoader reads the statistics printed by the stats command.
type StatsLoader interface {
	LoadStats(ctx context.Context) (accounts.Stats, error)
}

// StatsLoaderFunc adapts a function to StatsLoader.
type StatsLoaderFunc func(ctx context.Context) (accounts.Stats, error)

func (f StatsLoaderFunc) LoadStats(ctx context.Context) (accounts.Stats, error) {
	return f(ctx)
}

// statsCommand returns a CLI command that prints the store statistics as JSON.
//
// Usage example:
//
//	ledgermirror stats
func statsCommand(stats StatsLoader) *cli.Command {
	return &cli.Command{
		Name:        "stats",
		Description: "Print the statistics of the last saved snapshot as JSON.",
		Usage:       "Prints the mirror statistics.",
		Action: func(ctx context.Context, c *cli.Command) error {
			s, err := stats.LoadStats(ctx)
			if err != nil {
				return err
			}

			encoder := json.NewEncoder(c.Root().Writer)
			encoder.SetIndent("", "  ")
			return encoder.Encode(s)
		},
	}
}
