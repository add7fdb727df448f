package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync"

	"github.com/gabapcia/ledgerwatch/internal/blockdetail"
	"github.com/gabapcia/ledgerwatch/internal/pkg/logger"
	"github.com/gabapcia/ledgerwatch/internal/pkg/x/chflow"

	"github.com/urfave/cli/v3"
)

const (
	TextSelectBlockFirst = "Select a block first"
	TextInvalidIndex     = "Invalid block index"
)

var errUnknownCommand = errors.New("unknown command")

// input is one parsed line of the dashboard prompt.
type input struct {
	name string
	args []string
}

var usages = map[string]string{
	"send":     "send <recipient> <amount>",
	"mine":     "mine",
	"block":    "block <index>",
	"unselect": "unselect",
	"attempts": "attempts",
	"refresh":  "refresh",
	"quit":     "quit",
	"exit":     "exit",
}

var arity = map[string]int{
	"send":  2,
	"block": 1,
}

// parseInput splits line into a command and its arguments. Blank lines
// yield an empty name.
func parseInput(line string) (input, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return input{}, nil
	}

	in := input{name: strings.ToLower(fields[0]), args: fields[1:]}
	usage, ok := usages[in.name]
	if !ok {
		return input{}, fmt.Errorf("%w: %s", errUnknownCommand, fields[0])
	}

	if len(in.args) != arity[in.name] {
		return input{}, fmt.Errorf("usage: %s", usage)
	}
	return in, nil
}

// dashboardCommand returns the interactive command. The views are redrawn by
// the screen while commands are read line by line from the input.
//
// Usage example:
//
//	ledgerwatch dashboard
func dashboardCommand(app App) *cli.Command {
	return &cli.Command{
		Name:        "dashboard",
		Description: "Run the interactive dashboard. Type commands such as 'send bob 12.5', 'mine' or 'block 3'.",
		Usage:       "Runs the dashboard until 'quit' or end of input.",
		Action: func(ctx context.Context, _ *cli.Command) error {
			return runDashboard(ctx, app)
		},
	}
}

func runDashboard(ctx context.Context, app App) error {
	ctx, cancel := context.WithCancel(ctx)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		app.Screen.Run(ctx)
	}()
	defer func() {
		cancel()
		wg.Wait()
	}()

	if err := app.Scheduler.Start(ctx); err != nil {
		return err
	}
	defer app.Scheduler.Close()

	lines := scanLines(ctx, app.In)
	for {
		line, ok := chflow.Receive(ctx, lines)
		if !ok {
			return nil
		}

		if quit := execute(ctx, app, line); quit {
			return nil
		}
	}
}

// scanLines reads r line by line until EOF or ctx is done.
func scanLines(ctx context.Context, r io.Reader) <-chan string {
	lines := make(chan string)
	go func() {
		defer close(lines)

		scanner := bufio.NewScanner(r)
		for scanner.Scan() {
			if !chflow.Send(ctx, lines, scanner.Text()) {
				return
			}
		}
		if err := scanner.Err(); err != nil {
			logger.Warn(ctx, "failed to read the dashboard input", "error", err)
		}
	}()
	return lines
}

// execute runs one prompt line and reports whether the dashboard should stop.
// Failures of the actions themselves are already shown as toasts by the
// components.
func execute(ctx context.Context, app App, line string) bool {
	in, err := parseInput(line)
	if err != nil {
		app.Notifier.Error(ctx, capitalize(err.Error()))
		return false
	}

	switch in.name {
	case "":
	case "quit", "exit":
		return true
	case "send":
		err = app.Actions.SubmitTransaction(ctx, in.args[0], in.args[1])
	case "mine":
		err = app.Actions.RequestMining(ctx)
	case "refresh":
		app.Scheduler.RefreshAll(ctx)
	case "unselect":
		app.Panel.Deselect(ctx)
	case "block":
		index, perr := strconv.ParseUint(in.args[0], 10, 64)
		if perr != nil {
			app.Notifier.Error(ctx, TextInvalidIndex)
			return false
		}
		err = app.Panel.Select(ctx, index)
	case "attempts":
		err = app.Panel.ToggleAllAttempts(ctx)
		if errors.Is(err, blockdetail.ErrNoBlockSelected) {
			app.Notifier.Error(ctx, TextSelectBlockFirst)
		}
	}

	if err != nil {
		logger.Debug(ctx, "dashboard command failed", "command", in.name, "error", err)
	}
	return false
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
