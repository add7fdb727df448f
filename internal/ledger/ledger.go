// Package ledger defines the data observed from the remote ledger service
// and the error taxonomy shared by every component that talks to it.
package ledger

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/mitchellh/mapstructure"
)

// MiningSender is the reserved sender value identifying a mining reward.
const MiningSender = "MINING"

// Transaction is a value transfer between two identities. It is immutable once
// observed; it is pending while it comes from the pending feed and confirmed
// once it is read back inside a block.
type Transaction struct {
	Sender    string  `json:"sender" mapstructure:"sender" validate:"required"`
	Recipient string  `json:"recipient" mapstructure:"recipient" validate:"required"`
	Amount    float64 `json:"amount" mapstructure:"amount" validate:"gte=0"`
	Timestamp float64 `json:"timestamp,omitempty" mapstructure:"timestamp"`
}

// IsReward reports whether the transaction is a mining payout.
func (t Transaction) IsReward() bool {
	return t.Sender == MiningSender
}

// Involves reports whether user is the sender or the recipient.
func (t Transaction) Involves(user string) bool {
	return user != "" && (t.Sender == user || t.Recipient == user)
}

// Block is one entry of the chain as served by the ledger.
type Block struct {
	Index        uint64        `json:"index"`
	Hash         string        `json:"hash"`
	PreviousHash string        `json:"previous_hash"`
	Proof        int64         `json:"proof"`
	Timestamp    float64       `json:"timestamp"`
	Transactions []Transaction `json:"transactions" validate:"dive"`
}

// HasReward reports whether the block carries at least one reward transaction.
func (b Block) HasReward() bool {
	for _, tx := range b.Transactions {
		if tx.IsReward() {
			return true
		}
	}
	return false
}

// MinedBy reports whether the block rewarded user.
func (b Block) MinedBy(user string) bool {
	for _, tx := range b.Transactions {
		if tx.IsReward() && tx.Recipient == user {
			return true
		}
	}
	return false
}

// Chain is the ordered, append-only sequence of blocks known to the ledger.
type Chain []Block

// Last returns the newest block. ok is false for an empty chain.
func (c Chain) Last() (Block, bool) {
	if len(c) == 0 {
		return Block{}, false
	}
	return c[len(c)-1], true
}

// Validate checks that block indices are contiguous from zero.
func (c Chain) Validate() error {
	for i, b := range c {
		if b.Index != uint64(i) {
			return fmt.Errorf("%w: block at position %d has index %d", ErrMalformedResponse, i, b.Index)
		}
	}
	return nil
}

// Balance is the current user's spendable amount, computed by the ledger.
type Balance struct {
	Balance float64 `json:"balance"`
}

// MiningAttempt is one step of a proof-of-work search as summarized by the
// ledger, with validity decided server-side.
type MiningAttempt struct {
	Proof int64  `json:"proof"`
	Hash  string `json:"hash"`
	Valid bool   `json:"valid"`
}

// AttemptHash is one entry of the full proof-of-work trace. Validity is not
// part of the payload.
type AttemptHash struct {
	Proof int64  `json:"proof"`
	Hash  string `json:"hash"`
}

// DifficultyPrefix is the hash prefix a valid proof must produce.
const DifficultyPrefix = "00"

// Valid tests the hash against the difficulty prefix.
func (a AttemptHash) Valid() bool {
	return strings.HasPrefix(a.Hash, DifficultyPrefix)
}

// HashDetail is the canonical hash input of a block and its digest.
type HashDetail struct {
	Input string `json:"input"`
	Hash  string `json:"hash"`
}

// HashInput is the decoded form of HashDetail.Input.
type HashInput struct {
	Index        uint64        `mapstructure:"index"`
	PreviousHash string        `mapstructure:"previous_hash"`
	Proof        int64         `mapstructure:"proof"`
	Timestamp    float64       `mapstructure:"timestamp"`
	Transactions []Transaction `mapstructure:"transactions"`
}

// Decode parses the serialized block carried in Input. Unknown keys are
// ignored.
func (d HashDetail) Decode() (HashInput, error) {
	var raw map[string]any
	if err := json.Unmarshal([]byte(d.Input), &raw); err != nil {
		return HashInput{}, fmt.Errorf("%w: hash input: %w", ErrMalformedResponse, err)
	}

	var input HashInput
	if err := mapstructure.Decode(raw, &input); err != nil {
		return HashInput{}, fmt.Errorf("%w: hash input: %w", ErrMalformedResponse, err)
	}

	return input, nil
}

// CurrentUser identifies the session owner.
type CurrentUser struct {
	Username string `json:"username"`
}

// Acknowledgement is the body of a successful write.
type Acknowledgement struct {
	Message string `json:"message"`
}

// TransactionRequest is the payload of a transaction submission.
type TransactionRequest struct {
	Recipient string  `json:"recipient"`
	Amount    float64 `json:"amount"`
}
