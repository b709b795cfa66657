package cli

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/gabapcia/ledgermirror/internal/accounts"
	"github.com/gabapcia/ledgermirror/internal/registry"
)

// trackAddressCommand returns a CLI command that binds a ledger address to
// the principal that owns it.
//
// Usage example:
//
//	ledgermirror track --principal p-1 --address 3a9f...
func trackAddressCommand(rs registry.Service) *cli.Command {
	return &cli.Command{
		Name:        "track",
		Description: "Track a ledger address so that its transactions are retained.",
		Usage:       "Tracks an address for a principal. Must provide both principal and address.",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "principal",
				Usage:    "Owner of the address",
				Required: true,
			},
			&cli.StringFlag{
				Name:     "address",
				Usage:    "Ledger address to track",
				Required: true,
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			return rs.Track(ctx, c.String("principal"), c.String("address"))
		},
	}
}

// untrackAddressCommand returns a CLI command that stops tracking an address.
//
// Usage example:
//
//	ledgermirror untrack --address 3a9f...
func untrackAddressCommand(rs registry.Service) *cli.Command {
	return &cli.Command{
		Name:        "untrack",
		Description: "Stop tracking a ledger address. Transactions already retained are kept.",
		Usage:       "Untracks an address.",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "address",
				Usage:    "Ledger address to stop tracking",
				Required: true,
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			return rs.Untrack(ctx, c.String("address"))
		},
	}
}

// pendingDepositCommand groups the pending deposit subcommands.
//
// Usage example:
//
//	ledgermirror pending add --address 9c1e... --principal p-1 --kind create_canister --memo 1095062083
//	ledgermirror pending remove --address 9c1e...
func pendingDepositCommand(rs registry.Service) *cli.Command {
	return &cli.Command{
		Name:        "pending",
		Description: "Manage deposits that complete multi-part operations.",
		Usage:       "Adds or removes pending deposits.",
		Commands: []*cli.Command{
			{
				Name:  "add",
				Usage: "Registers a pending deposit.",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "address",
						Usage:    "Deposit address",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "principal",
						Usage:    "Principal the operation belongs to",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "kind",
						Usage:    "Operation completed by the deposit: stake_neuron, top_up_neuron, create_canister or top_up_canister",
						Required: true,
					},
					&cli.Uint64Flag{
						Name:  "memo",
						Usage: "Memo the deposit must carry. Zero matches any memo",
					},
				},
				Action: func(ctx context.Context, c *cli.Command) error {
					kind, ok := accounts.ParseActionKind(c.String("kind"))
					if !ok {
						return fmt.Errorf("unknown action kind %q", c.String("kind"))
					}

					return rs.RegisterPendingDeposit(ctx, registry.PendingDeposit{
						Address:   c.String("address"),
						Principal: c.String("principal"),
						Kind:      kind,
						Memo:      c.Uint64("memo"),
					})
				},
			},
			{
				Name:  "remove",
				Usage: "Forgets a pending deposit.",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "address",
						Usage:    "Deposit address",
						Required: true,
					},
				},
				Action: func(ctx context.Context, c *cli.Command) error {
					return rs.RemovePendingDeposit(ctx, c.String("address"))
				},
			},
		},
	}
}
