// Package view maps ledger data to view models.
//
// Every Render function is pure: identical input produces identical output,
// with no clock, randomness or I/O involved. Rendering layers receive the
// models through a Sink.
package view

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/gabapcia/ledgerwatch/internal/ledger"
	"github.com/gabapcia/ledgerwatch/internal/pkg/types"
)

const (
	chainHashPrefixLen   = 15
	attemptHashPrefixLen = 16
)

// Texts shown by the views.
const (
	TextNoPendingTransactions = "No pending transactions"
	TextNoPendingHint         = "Transactions will appear here before they're mined into blocks"
	TextTransactionsFailed    = "Failed to load transactions. Please try again later."
	TextZeroBalance           = "You have no coins yet. Mine a block to earn a reward."
	TextNoBlocks              = "No blocks yet"
	TextSelectorPlaceholder   = "Select a block..."
	TextNoAttempts            = "No mining attempts recorded"
	TextLoadingAttempts       = "Loading attempts..."
	TextAttemptsFailed        = "Failed to load attempts"
	TextShowAllAttempts       = "Show All Mining Attempts"
	TextHideAllAttempts       = "Hide All Mining Attempts"
	TextSendTransaction       = "Send Transaction"
	TextSending               = "Sending..."
	TextMineBlock             = "Mine New Block"
	TextMining                = "Mining..."
	TextMiningProgress        = "Mining new block... Please wait"
	TextTransactionCreated    = "💸 Transaction Created!"
	TextPending               = "Pending"
)

// Direction of a transaction relative to the current user.
type Direction string

const (
	DirectionOutgoing Direction = "outgoing"
	DirectionIncoming Direction = "incoming"
)

type BalanceView struct {
	Amount             string `json:"amount"`
	ZeroBalanceVisible bool   `json:"zero_balance_visible"`
	ZeroBalanceText    string `json:"zero_balance_text,omitempty"`
}

type PendingRow struct {
	Sender    string    `json:"sender"`
	Recipient string    `json:"recipient"`
	Direction Direction `json:"direction"`
	Amount    string    `json:"amount"`
	Status    string    `json:"status"`
}

type TransactionsView struct {
	Rows  []PendingRow `json:"rows"`
	Empty *EmptyState  `json:"empty,omitempty"`
	Error string       `json:"error,omitempty"`
}

// EmptyState marks a collection view with nothing to show.
type EmptyState struct {
	Title string `json:"title"`
	Hint  string `json:"hint,omitempty"`
}

type TransactionRow struct {
	Sender    string `json:"sender"`
	Recipient string `json:"recipient"`
	Amount    string `json:"amount"`
	Reward    bool   `json:"reward"`
}

type BlockRow struct {
	Title        string           `json:"title"`
	Index        uint64           `json:"index"`
	Hash         string           `json:"hash"`
	PreviousHash string           `json:"previous_hash"`
	Proof        int64            `json:"proof"`
	Transactions []TransactionRow `json:"transactions"`
}

type ChainView struct {
	Blocks []BlockRow  `json:"blocks"`
	Empty  *EmptyState `json:"empty,omitempty"`
}

type SelectorOption struct {
	Value uint64 `json:"value"`
	Label string `json:"label"`
}

type SelectorView struct {
	Placeholder string           `json:"placeholder"`
	Options     []SelectorOption `json:"options"`
}

type StatsView struct {
	Balance            string `json:"balance"`
	BlocksMined        int    `json:"blocks_mined"`
	PendingCount       int    `json:"pending_count"`
	Participants       int    `json:"participants"`
	ZeroBalanceVisible bool   `json:"zero_balance_visible"`
	// RewardHistory holds the cumulative reward earned by the current user
	// after each block.
	RewardHistory []float64 `json:"reward_history"`
}

type AttemptRow struct {
	Position int    `json:"position"`
	Proof    int64  `json:"proof"`
	Hash     string `json:"hash"`
	Valid    bool   `json:"valid"`
}

type BlockDetailView struct {
	Index    uint64       `json:"index"`
	Input    string       `json:"input"`
	Hash     string       `json:"hash"`
	Proof    string       `json:"proof"`
	Attempts []AttemptRow `json:"attempts"`
	Empty    *EmptyState  `json:"empty,omitempty"`
	Cleared  bool         `json:"cleared"`
}

type AttemptsView struct {
	Expanded    bool         `json:"expanded"`
	ToggleLabel string       `json:"toggle_label"`
	Loading     bool         `json:"loading"`
	Rows        []AttemptRow `json:"rows"`
	Empty       *EmptyState  `json:"empty,omitempty"`
	Error       string       `json:"error,omitempty"`
}

// ControlView is the state of an action button.
type ControlView struct {
	Disabled bool   `json:"disabled"`
	Label    string `json:"label"`
	Progress string `json:"progress,omitempty"`
}

// CueView is the secondary success cue shown after a transaction.
type CueView struct {
	Text string `json:"text"`
}

// FormatAmount renders an amount the way the ledger reports it, with the
// shortest exact decimal representation.
func FormatAmount(amount float64) string {
	return strconv.FormatFloat(amount, 'f', -1, 64)
}

func RenderBalance(b ledger.Balance) BalanceView {
	v := BalanceView{Amount: fmt.Sprintf("%.2f coins", b.Balance)}
	if b.Balance == 0 {
		v.ZeroBalanceVisible = true
		v.ZeroBalanceText = TextZeroBalance
	}
	return v
}

// RenderTransactions lists the pending transactions involving user, signed
// from the user's point of view.
func RenderTransactions(txs []ledger.Transaction, user string) TransactionsView {
	rows := make([]PendingRow, 0, len(txs))
	for _, tx := range txs {
		if !tx.Involves(user) {
			continue
		}

		row := PendingRow{
			Sender:    tx.Sender,
			Recipient: tx.Recipient,
			Direction: DirectionIncoming,
			Amount:    "+ " + FormatAmount(tx.Amount) + " coins",
			Status:    TextPending,
		}
		if tx.Sender == user {
			row.Direction = DirectionOutgoing
			row.Amount = "- " + FormatAmount(tx.Amount) + " coins"
		}
		rows = append(rows, row)
	}

	v := TransactionsView{Rows: rows}
	if len(rows) == 0 {
		v.Empty = &EmptyState{Title: TextNoPendingTransactions, Hint: TextNoPendingHint}
	}
	return v
}

func TransactionsError() TransactionsView {
	return TransactionsView{Rows: []PendingRow{}, Error: TextTransactionsFailed}
}

func RenderChain(chain ledger.Chain) ChainView {
	blocks := make([]BlockRow, 0, len(chain))
	for _, b := range chain {
		txs := make([]TransactionRow, 0, len(b.Transactions))
		for _, tx := range b.Transactions {
			txs = append(txs, TransactionRow{
				Sender:    tx.Sender,
				Recipient: tx.Recipient,
				Amount:    FormatAmount(tx.Amount) + " coins",
				Reward:    tx.IsReward(),
			})
		}

		blocks = append(blocks, BlockRow{
			Title:        fmt.Sprintf("Block #%d", b.Index),
			Index:        b.Index,
			Hash:         truncate(b.Hash, chainHashPrefixLen),
			PreviousHash: truncate(b.PreviousHash, chainHashPrefixLen),
			Proof:        b.Proof,
			Transactions: txs,
		})
	}

	v := ChainView{Blocks: blocks}
	if len(blocks) == 0 {
		v.Empty = &EmptyState{Title: TextNoBlocks}
	}
	return v
}

func RenderBlockSelector(chain ledger.Chain) SelectorView {
	options := make([]SelectorOption, 0, len(chain))
	for i, b := range chain {
		options = append(options, SelectorOption{
			Value: uint64(i),
			Label: fmt.Sprintf("Block #%d", b.Index),
		})
	}
	return SelectorView{Placeholder: TextSelectorPlaceholder, Options: options}
}

// RenderStats summarizes the three refreshed resources. The pending count
// covers every pending transaction, not only the user's.
func RenderStats(b ledger.Balance, txs []ledger.Transaction, chain ledger.Chain, user string) StatsView {
	participants := types.NewSet[string]()
	history := make([]float64, 0, len(chain))

	var (
		mined  int
		reward float64
	)
	for _, block := range chain {
		if block.MinedBy(user) {
			mined++
		}
		for _, tx := range block.Transactions {
			if !tx.IsReward() {
				participants.Add(tx.Sender)
			}
			participants.Add(tx.Recipient)
			if tx.IsReward() && tx.Recipient == user {
				reward += tx.Amount
			}
		}
		history = append(history, reward)
	}
	for _, tx := range txs {
		participants.Add(tx.Sender, tx.Recipient)
	}
	participants.Delete(ledger.MiningSender)

	return StatsView{
		Balance:            FormatAmount(b.Balance),
		BlocksMined:        mined,
		PendingCount:       len(txs),
		Participants:       participants.Len(),
		ZeroBalanceVisible: b.Balance == 0,
		RewardHistory:      history,
	}
}

// RenderBlockDetail pretty-prints the hash input and lists the attempt
// summary with server-side validity.
func RenderBlockDetail(index uint64, detail ledger.HashDetail, attempts []ledger.MiningAttempt) (BlockDetailView, error) {
	input, err := detail.Decode()
	if err != nil {
		return BlockDetailView{}, err
	}

	var pretty bytes.Buffer
	if err := json.Indent(&pretty, []byte(detail.Input), "", "  "); err != nil {
		return BlockDetailView{}, fmt.Errorf("%w: hash input: %w", ledger.ErrMalformedResponse, err)
	}

	rows := make([]AttemptRow, 0, len(attempts))
	for i, a := range attempts {
		rows = append(rows, AttemptRow{
			Position: i + 1,
			Proof:    a.Proof,
			Hash:     truncate(a.Hash, attemptHashPrefixLen),
			Valid:    a.Valid,
		})
	}

	v := BlockDetailView{
		Index:    index,
		Input:    pretty.String(),
		Hash:     detail.Hash,
		Proof:    strconv.FormatInt(input.Proof, 10),
		Attempts: rows,
	}
	if len(rows) == 0 {
		v.Empty = &EmptyState{Title: TextNoAttempts}
	}
	return v, nil
}

// ClearedBlockDetail is the panel after deselection.
func ClearedBlockDetail() BlockDetailView {
	return BlockDetailView{Attempts: []AttemptRow{}, Cleared: true}
}

// RenderAllAttempts lists the full attempt trace, tagging each hash valid
// when it meets the difficulty prefix.
func RenderAllAttempts(attempts []ledger.AttemptHash) AttemptsView {
	rows := make([]AttemptRow, 0, len(attempts))
	for i, a := range attempts {
		rows = append(rows, AttemptRow{
			Position: i,
			Proof:    a.Proof,
			Hash:     a.Hash,
			Valid:    a.Valid(),
		})
	}

	v := AttemptsView{Expanded: true, ToggleLabel: TextHideAllAttempts, Rows: rows}
	if len(rows) == 0 {
		v.Empty = &EmptyState{Title: TextNoAttempts}
	}
	return v
}

func AttemptsLoading() AttemptsView {
	return AttemptsView{Expanded: true, ToggleLabel: TextHideAllAttempts, Loading: true, Rows: []AttemptRow{}}
}

func AttemptsError() AttemptsView {
	return AttemptsView{Expanded: true, ToggleLabel: TextHideAllAttempts, Rows: []AttemptRow{}, Error: TextAttemptsFailed}
}

func AttemptsCollapsed() AttemptsView {
	return AttemptsView{ToggleLabel: TextShowAllAttempts, Rows: []AttemptRow{}}
}

func SubmitIdle() ControlView { return ControlView{Label: TextSendTransaction} }
func SubmitBusy() ControlView { return ControlView{Disabled: true, Label: TextSending} }
func MineIdle() ControlView   { return ControlView{Label: TextMineBlock} }

func MineBusy() ControlView {
	return ControlView{Disabled: true, Label: TextMining, Progress: TextMiningProgress}
}

func TransactionCue() CueView { return CueView{Text: TextTransactionCreated} }

func truncate(s string, n int) string {
	if len(s) <= n {
		return s + "..."
	}
	return s[:n] + "..."
}
