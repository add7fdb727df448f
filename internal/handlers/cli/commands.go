package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"slices"

	"github.com/gabapcia/ledgerwatch/internal/blockdetail"
	"github.com/gabapcia/ledgerwatch/internal/infra/pubsub/redis"
	"github.com/gabapcia/ledgerwatch/internal/pkg/x/chflow"
	"github.com/gabapcia/ledgerwatch/internal/view"

	"github.com/urfave/cli/v3"
)

var (
	ErrFeedDisabled = errors.New("redis publishing is not configured")
	ErrUnknownKind  = errors.New("unknown view kind")
)

// balanceCommand prints the balance of the logged-in user.
//
// Usage example:
//
//	ledgerwatch balance
func balanceCommand(app App) *cli.Command {
	return &cli.Command{
		Name:        "balance",
		Description: "Print the balance of the logged-in user.",
		Usage:       "Prints the current balance.",
		Action: func(ctx context.Context, _ *cli.Command) error {
			b, err := app.Ledger.Balance(ctx)
			if err != nil {
				return err
			}

			v := view.RenderBalance(b)
			fmt.Fprintln(app.Out, v.Amount)
			if v.ZeroBalanceVisible {
				fmt.Fprintln(app.Out, v.ZeroBalanceText)
			}
			return nil
		},
	}
}

// chainCommand prints every block with its transactions.
//
// Usage example:
//
//	ledgerwatch chain
func chainCommand(app App) *cli.Command {
	return &cli.Command{
		Name:        "chain",
		Description: "Print the blocks of the chain, oldest first.",
		Usage:       "Prints the chain.",
		Action: func(ctx context.Context, _ *cli.Command) error {
			chain, err := app.Ledger.Chain(ctx)
			if err != nil {
				return err
			}

			v := view.RenderChain(chain)
			if v.Empty != nil {
				fmt.Fprintln(app.Out, v.Empty.Title)
				return nil
			}

			for _, b := range v.Blocks {
				fmt.Fprintf(app.Out, "%s\thash %s\tprev %s\tproof %d\n", b.Title, b.Hash, b.PreviousHash, b.Proof)
				for _, tx := range b.Transactions {
					fmt.Fprintf(app.Out, "\t%s -> %s\t%s\n", tx.Sender, tx.Recipient, tx.Amount)
				}
			}
			return nil
		},
	}
}

// sendCommand submits a transaction and prints the resulting dashboard.
//
// Usage example:
//
//	ledgerwatch send --to bob --amount 12.5
func sendCommand(app App) *cli.Command {
	return &cli.Command{
		Name:        "send",
		Description: "Submit a transaction from the logged-in user.",
		Usage:       "Sends coins. Must provide both recipient and amount.",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "to",
				Usage:    "Recipient of the transaction",
				Required: true,
			},
			&cli.StringFlag{
				Name:     "amount",
				Usage:    "Amount to send (e.g., 12.5)",
				Required: true,
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			var (
				recipient = c.String("to")
				amount    = c.String("amount")
			)

			return withScheduler(ctx, app, func() error {
				return app.Actions.SubmitTransaction(ctx, recipient, amount)
			})
		},
	}
}

// mineCommand requests a block and waits until it is confirmed or the polls
// run out.
//
// Usage example:
//
//	ledgerwatch mine
func mineCommand(app App) *cli.Command {
	return &cli.Command{
		Name:        "mine",
		Description: "Request a new block and wait for it to show up on the chain.",
		Usage:       "Mines a block.",
		Action: func(ctx context.Context, _ *cli.Command) error {
			return withScheduler(ctx, app, func() error {
				if err := app.Actions.RequestMining(ctx); err != nil {
					return err
				}

				app.Actions.Wait()
				return nil
			})
		},
	}
}

// blockCommand prints the details of one block.
//
// Usage example:
//
//	ledgerwatch block --index 3 --attempts
func blockCommand(app App) *cli.Command {
	return &cli.Command{
		Name:        "block",
		Description: "Print the hash input and proof-of-work attempts of a block.",
		Usage:       "Shows a block. Must provide the block index.",
		Flags: []cli.Flag{
			&cli.Uint64Flag{
				Name:     "index",
				Usage:    "Index of the block",
				Required: true,
			},
			&cli.BoolFlag{
				Name:  "attempts",
				Usage: "Also print every hash tried while mining the block",
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			if err := app.Panel.Select(ctx, c.Uint64("index")); err != nil {
				return err
			}

			if c.Bool("attempts") {
				if err := app.Panel.ToggleAllAttempts(ctx); err != nil && !errors.Is(err, blockdetail.ErrSuperseded) {
					return err
				}
			}

			return app.Screen.Draw()
		},
	}
}

// followCommand prints every view published to Redis as one JSON line,
// starting with the last published view of each followed kind.
//
// Usage example:
//
//	ledgerwatch follow --kind toast --kind chain
func followCommand(app App) *cli.Command {
	return &cli.Command{
		Name:        "follow",
		Description: "Follow the views published to Redis by a running dashboard.",
		Usage:       "Prints published views as JSON lines. Follows every kind unless --kind is given.",
		Flags: []cli.Flag{
			&cli.StringSliceFlag{
				Name:  "kind",
				Usage: "View kind to follow (e.g., toast, balance, chain)",
			},
			&cli.BoolFlag{
				Name:  "snapshot",
				Usage: "Print the last published view of each kind before following",
				Value: true,
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			if app.Feed == nil {
				return ErrFeedDisabled
			}

			kinds, err := parseKinds(c.StringSlice("kind"))
			if err != nil {
				return err
			}

			// subscribe first so nothing published while reading the
			// snapshots is lost
			envelopes, err := app.Feed.Follow(ctx, kinds...)
			if err != nil {
				return err
			}

			enc := json.NewEncoder(app.Out)
			if c.Bool("snapshot") {
				for _, kind := range kinds {
					env, ok, err := app.Feed.Latest(ctx, kind)
					if err != nil {
						return fmt.Errorf("read the last %s view: %w", kind, err)
					}
					if !ok {
						continue
					}

					if err := enc.Encode(env); err != nil {
						return err
					}
				}
			}

			for {
				env, ok := chflow.Receive(ctx, envelopes)
				if !ok {
					return nil
				}

				if err := enc.Encode(env); err != nil {
					return err
				}
			}
		},
	}
}

func parseKinds(names []string) ([]redis.Kind, error) {
	if len(names) == 0 {
		return redis.Kinds, nil
	}

	kinds := make([]redis.Kind, 0, len(names))
	for _, name := range names {
		k := redis.Kind(name)
		if !slices.Contains(redis.Kinds, k) {
			return nil, fmt.Errorf("%w: %s", ErrUnknownKind, name)
		}
		kinds = append(kinds, k)
	}
	return kinds, nil
}

// withScheduler runs fn with the session initialized and draws the resulting
// frame once fn returns.
func withScheduler(ctx context.Context, app App, fn func() error) error {
	if err := app.Scheduler.Start(ctx); err != nil {
		return err
	}
	defer app.Scheduler.Close()

	err := fn()
	if drawErr := app.Screen.Draw(); err == nil {
		err = drawErr
	}
	return err
}
