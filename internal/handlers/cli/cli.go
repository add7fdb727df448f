package cli

import (
	"context"
	"io"

	"github.com/gabapcia/ledgerwatch/internal/infra/pubsub/redis"
	"github.com/gabapcia/ledgerwatch/internal/ledger"
	"github.com/gabapcia/ledgerwatch/internal/notify"

	"github.com/urfave/cli/v3"
)

// Scheduler keeps the dashboard views in sync with the ledger.
type Scheduler interface {
	Start(ctx context.Context) error
	RefreshAll(ctx context.Context)
	Close()
}

// Actions runs the user actions against the ledger.
type Actions interface {
	SubmitTransaction(ctx context.Context, recipient, amount string) error
	RequestMining(ctx context.Context) error
	Wait()
}

// Panel drives the block-detail view.
type Panel interface {
	Select(ctx context.Context, index uint64) error
	Deselect(ctx context.Context)
	ToggleAllAttempts(ctx context.Context) error
}

// Screen draws the dashboard.
type Screen interface {
	Run(ctx context.Context)
	Draw() error
}

// Reader is the read side of the ledger used by the one-shot commands.
type Reader interface {
	Balance(ctx context.Context) (ledger.Balance, error)
	Chain(ctx context.Context) (ledger.Chain, error)
}

// Feed reads the views published to Redis.
type Feed interface {
	Latest(ctx context.Context, kind redis.Kind) (redis.Envelope, bool, error)
	Follow(ctx context.Context, kinds ...redis.Kind) (<-chan redis.Envelope, error)
}

// App holds the components the commands are wired to.
type App struct {
	Scheduler Scheduler
	Actions   Actions
	Panel     Panel
	Screen    Screen
	Ledger    Reader
	Notifier  notify.Notifier

	// Feed is nil when Redis publishing is disabled.
	Feed Feed

	In  io.Reader
	Out io.Writer
}

// Run initializes and executes the ledgerwatch CLI application.
//
// It registers all available commands, including:
//
//   - `dashboard`: Runs the interactive dashboard.
//   - `balance`: Prints the current balance.
//   - `chain`: Prints the blocks of the chain.
//   - `send`: Submits a transaction.
//   - `mine`: Requests a new block and waits for its confirmation.
//   - `block`: Prints the details of a block.
//   - `follow`: Prints the views published to Redis as JSON lines.
//
// args are the process arguments, program name included.
func Run(ctx context.Context, app App, args []string) error {
	cmd := &cli.Command{
		EnableShellCompletion: true,
		Name:                  "ledgerwatch",
		Description:           "Terminal dashboard for a proof-of-work ledger service.",
		Usage:                 "ledgerwatch [command] [flags]",
		Reader:                app.In,
		Writer:                app.Out,
		Commands: []*cli.Command{
			dashboardCommand(app),
			balanceCommand(app),
			chainCommand(app),
			sendCommand(app),
			mineCommand(app),
			blockCommand(app),
			followCommand(app),
		},
	}

	return cmd.Run(ctx, args)
}
