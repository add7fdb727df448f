// Package blockdetail drives the panel showing how a selected block was
// mined: its hash input, the resulting hash and the proof-of-work attempts.
package blockdetail

import (
	"context"
	"errors"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/gabapcia/ledgerwatch/internal/ledger"
	"github.com/gabapcia/ledgerwatch/internal/notify"
	"github.com/gabapcia/ledgerwatch/internal/pkg/logger"
	"github.com/gabapcia/ledgerwatch/internal/view"
)

const TextDetailFailed = "Failed to load block details"

var (
	ErrNoBlockSelected = errors.New("no block selected")

	// ErrSuperseded is returned when another selection replaced the one a
	// fetch was made for. Its result is dropped.
	ErrSuperseded = errors.New("selection superseded")
)

type Ledger interface {
	HashDetail(ctx context.Context, index uint64) (ledger.HashDetail, error)
	PowAttempts(ctx context.Context, index uint64) ([]ledger.MiningAttempt, error)
	AllMiningAttempts(ctx context.Context, index uint64) ([]ledger.AttemptHash, error)
}

type Views interface {
	UpdateBlockDetail(ctx context.Context, v view.BlockDetailView)
	UpdateAllAttempts(ctx context.Context, v view.AttemptsView)
}

// Panel holds the current selection. Late responses are dropped by
// generation: selection counts selections and deselections, expansion also
// counts toggles. Expanding the trace never invalidates the detail fetch of
// the same selection.
type Panel struct {
	ledger   Ledger
	views    Views
	notifier notify.Notifier

	mu        sync.Mutex
	selected  uint64
	hasBlock  bool
	expanded  bool
	selection uint64
	expansion uint64
}

func New(l Ledger, views Views, notifier notify.Notifier) *Panel {
	return &Panel{
		ledger:   l,
		views:    views,
		notifier: notifier,
	}
}

// Select loads the hash detail and the attempt summary of the block at index
// concurrently. The full attempt trace goes back to collapsed.
func (p *Panel) Select(ctx context.Context, index uint64) error {
	p.mu.Lock()
	p.selected, p.hasBlock, p.expanded = index, true, false
	p.selection++
	p.expansion++
	gen := p.selection
	p.mu.Unlock()

	ctx = logger.Derive(ctx, "block.index", index)
	p.views.UpdateAllAttempts(ctx, view.AttemptsCollapsed())

	var (
		detail   ledger.HashDetail
		attempts []ledger.MiningAttempt
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		detail, err = p.ledger.HashDetail(gctx, index)
		return err
	})
	g.Go(func() (err error) {
		attempts, err = p.ledger.PowAttempts(gctx, index)
		return err
	})

	err := g.Wait()
	if err == nil {
		var v view.BlockDetailView
		if v, err = view.RenderBlockDetail(index, detail, attempts); err == nil {
			return p.publishDetail(ctx, gen, v)
		}
	}

	if !p.currentSelection(gen) {
		return ErrSuperseded
	}

	logger.Error(ctx, "failed to load block details", "error", err)
	p.notifier.Error(ctx, TextDetailFailed)
	return err
}

// Deselect clears the panel.
func (p *Panel) Deselect(ctx context.Context) {
	p.mu.Lock()
	p.selected, p.hasBlock, p.expanded = 0, false, false
	p.selection++
	p.expansion++
	p.mu.Unlock()

	p.views.UpdateBlockDetail(ctx, view.ClearedBlockDetail())
	p.views.UpdateAllAttempts(ctx, view.AttemptsCollapsed())
}

// ToggleAllAttempts expands or collapses the full attempt trace of the
// selected block. The trace is fetched on every expansion; a failed fetch is
// shown inline in the expanded section.
func (p *Panel) ToggleAllAttempts(ctx context.Context) error {
	p.mu.Lock()
	if !p.hasBlock {
		p.mu.Unlock()
		return ErrNoBlockSelected
	}

	p.expansion++
	gen, index := p.expansion, p.selected
	p.expanded = !p.expanded
	expanding := p.expanded
	p.mu.Unlock()

	if !expanding {
		p.views.UpdateAllAttempts(ctx, view.AttemptsCollapsed())
		return nil
	}

	ctx = logger.Derive(ctx, "block.index", index)
	p.views.UpdateAllAttempts(ctx, view.AttemptsLoading())

	attempts, err := p.ledger.AllMiningAttempts(ctx, index)
	if err != nil {
		if !p.currentExpansion(gen) {
			return ErrSuperseded
		}

		logger.Warn(ctx, "failed to load the attempt trace", "error", err)
		p.views.UpdateAllAttempts(ctx, view.AttemptsError())
		return err
	}

	if !p.currentExpansion(gen) {
		return ErrSuperseded
	}

	p.views.UpdateAllAttempts(ctx, view.RenderAllAttempts(attempts))
	return nil
}

func (p *Panel) publishDetail(ctx context.Context, gen uint64, v view.BlockDetailView) error {
	if !p.currentSelection(gen) {
		return ErrSuperseded
	}

	p.views.UpdateBlockDetail(ctx, v)
	return nil
}

func (p *Panel) currentSelection(gen uint64) bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.selection == gen
}

func (p *Panel) currentExpansion(gen uint64) bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.expansion == gen
}
