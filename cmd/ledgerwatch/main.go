package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gabapcia/ledgerwatch/internal/action"
	"github.com/gabapcia/ledgerwatch/internal/blockdetail"
	"github.com/gabapcia/ledgerwatch/internal/config"
	"github.com/gabapcia/ledgerwatch/internal/handlers/cli"
	"github.com/gabapcia/ledgerwatch/internal/handlers/console"
	ledgerhttp "github.com/gabapcia/ledgerwatch/internal/infra/ledger/http"
	"github.com/gabapcia/ledgerwatch/internal/infra/pubsub/redis"
	"github.com/gabapcia/ledgerwatch/internal/mining"
	"github.com/gabapcia/ledgerwatch/internal/notify"
	"github.com/gabapcia/ledgerwatch/internal/pkg/logger"
	"github.com/gabapcia/ledgerwatch/internal/pkg/telemetry"
	"github.com/gabapcia/ledgerwatch/internal/reconcile"
	"github.com/gabapcia/ledgerwatch/internal/session"
	"github.com/gabapcia/ledgerwatch/internal/view"
)

const shutdownTimeout = 5 * time.Second

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	// stdout belongs to the dashboard
	if err := logger.Init(cfg.LogLevel, logger.WithOutput(os.Stderr)); err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	if cfg.Telemetry.Enabled {
		shutdown, err := telemetry.Init(ctx, cfg.Telemetry.ServiceName)
		if err != nil {
			return fmt.Errorf("init telemetry: %w", err)
		}
		defer func() {
			ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
			defer cancel()

			if err := shutdown(ctx); err != nil {
				logger.Warn(ctx, "failed to flush telemetry", "error", err)
			}
		}()
	}

	ledgerClient, err := ledgerhttp.NewClient(cfg.Ledger.BaseURL,
		ledgerhttp.WithTimeout(cfg.Ledger.RequestTimeout),
		ledgerhttp.WithRateLimit(cfg.Ledger.RequestsPerSecond, 1),
	)
	if err != nil {
		return fmt.Errorf("create ledger client: %w", err)
	}

	if cfg.HasCredentials() {
		if err := ledgerClient.Login(ctx, cfg.Ledger.Username, cfg.Ledger.Password); err != nil {
			return fmt.Errorf("login as %s: %w", cfg.Ledger.Username, err)
		}
	}

	var screenOpts []console.Option
	if !isTerminal(os.Stdout) {
		screenOpts = append(screenOpts, console.WithoutClear())
	}
	screen := console.New(os.Stdout, screenOpts...)

	var (
		sink view.Sink = screen
		feed cli.Feed
	)
	if cfg.RedisEnabled() {
		publisher, err := redis.NewClient(ctx, cfg.Redis.Addr, cfg.Redis.Username, cfg.Redis.Password, cfg.Redis.DB,
			redis.WithChannelPrefix(cfg.Redis.ChannelPrefix),
		)
		if err != nil {
			return fmt.Errorf("connect to redis: %w", err)
		}
		defer func() { _ = publisher.Close() }()

		sink, feed = view.Multi(screen, publisher), publisher
	}

	notifier := notify.New(sink, notify.WithDuration(cfg.Dashboard.ToastDuration))
	scheduler := reconcile.New(ledgerClient, sink, notifier, session.New(),
		reconcile.WithInterval(cfg.Dashboard.RefreshInterval),
	)
	confirmations := mining.New(ledgerClient, scheduler, notifier,
		mining.WithBudget(cfg.Dashboard.MiningPollBudget),
		mining.WithDelay(cfg.Dashboard.MiningPollDelay),
	)

	return cli.Run(ctx, cli.App{
		Scheduler: scheduler,
		Actions:   action.New(ledgerClient, sink, scheduler, confirmations, notifier),
		Panel:     blockdetail.New(ledgerClient, sink, notifier),
		Screen:    screen,
		Ledger:    ledgerClient,
		Notifier:  notifier,
		Feed:      feed,
		In:        os.Stdin,
		Out:       os.Stdout,
	}, os.Args)
}

func isTerminal(f *os.File) bool {
	info, err := f.Stat()
	if err != nil {
		return false
	}
	return info.Mode()&os.ModeCharDevice != 0
}
