package http

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gabapcia/ledgerwatch/internal/action"
	"github.com/gabapcia/ledgerwatch/internal/blockdetail"
	"github.com/gabapcia/ledgerwatch/internal/ledger"
	"github.com/gabapcia/ledgerwatch/internal/mining"
	"github.com/gabapcia/ledgerwatch/internal/pkg/validator"
	"github.com/gabapcia/ledgerwatch/internal/reconcile"
)

var (
	_ reconcile.Ledger   = (*client)(nil)
	_ action.Ledger      = (*client)(nil)
	_ mining.ChainReader = (*client)(nil)
	_ blockdetail.Ledger = (*client)(nil)
)

func (c *client) Balance(ctx context.Context) (ledger.Balance, error) {
	var b ledger.Balance
	if err := c.do(ctx, "balance", http.MethodGet, "/balance", nil, &b); err != nil {
		return ledger.Balance{}, err
	}
	return b, nil
}

// PendingTransactions returns the transactions not yet included in a block.
func (c *client) PendingTransactions(ctx context.Context) ([]ledger.Transaction, error) {
	var txs []ledger.Transaction
	if err := c.do(ctx, "pending_transactions", http.MethodGet, "/transactions", nil, &txs); err != nil {
		return nil, err
	}

	if err := validator.ValidateEach(txs); err != nil {
		return nil, fmt.Errorf("%w: pending transactions: %w", ledger.ErrMalformedResponse, err)
	}
	return txs, nil
}

func (c *client) SubmitTransaction(ctx context.Context, req ledger.TransactionRequest) (ledger.Acknowledgement, error) {
	var ack ledger.Acknowledgement
	if err := c.do(ctx, "submit_transaction", http.MethodPost, "/transactions", req, &ack); err != nil {
		return ledger.Acknowledgement{}, err
	}
	return ack, nil
}

// Chain returns every block, checking that indices are contiguous and that
// every embedded transaction is well formed.
func (c *client) Chain(ctx context.Context) (ledger.Chain, error) {
	var chain ledger.Chain
	if err := c.do(ctx, "chain", http.MethodGet, "/chain", nil, &chain); err != nil {
		return nil, err
	}

	if err := validator.ValidateEach(chain); err != nil {
		return nil, fmt.Errorf("%w: chain: %w", ledger.ErrMalformedResponse, err)
	}
	if err := chain.Validate(); err != nil {
		return nil, err
	}
	return chain, nil
}

// Mine asks the ledger to mine the pending transactions. It only
// acknowledges the request; the new block shows up in the chain later.
func (c *client) Mine(ctx context.Context) (ledger.Acknowledgement, error) {
	var ack ledger.Acknowledgement
	if err := c.do(ctx, "mine", http.MethodPost, "/mine", nil, &ack); err != nil {
		return ledger.Acknowledgement{}, err
	}
	return ack, nil
}

func (c *client) CurrentUser(ctx context.Context) (ledger.CurrentUser, error) {
	var u ledger.CurrentUser
	if err := c.do(ctx, "current_user", http.MethodGet, "/current-user", nil, &u); err != nil {
		return ledger.CurrentUser{}, err
	}
	return u, nil
}

func (c *client) HashDetail(ctx context.Context, index uint64) (ledger.HashDetail, error) {
	var d ledger.HashDetail
	if err := c.do(ctx, "hash_detail", http.MethodGet, fmt.Sprintf("/block/%d/hash", index), nil, &d); err != nil {
		return ledger.HashDetail{}, err
	}
	return d, nil
}

// PowAttempts returns the summarized attempt trace of the block at index,
// with validity decided by the ledger.
func (c *client) PowAttempts(ctx context.Context, index uint64) ([]ledger.MiningAttempt, error) {
	var attempts []ledger.MiningAttempt
	if err := c.do(ctx, "pow_attempts", http.MethodGet, fmt.Sprintf("/block/%d/pow-attempts", index), nil, &attempts); err != nil {
		return nil, err
	}
	return attempts, nil
}

func (c *client) AllMiningAttempts(ctx context.Context, index uint64) ([]ledger.AttemptHash, error) {
	var attempts []ledger.AttemptHash
	if err := c.do(ctx, "all_mining_attempts", http.MethodGet, fmt.Sprintf("/block/%d/all-mining-attempts", index), nil, &attempts); err != nil {
		return nil, err
	}
	return attempts, nil
}
