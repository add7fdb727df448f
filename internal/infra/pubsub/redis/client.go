// Package redis publishes every rendered view model to Redis so other
// rendering layers can follow a running dashboard.
//
// Each update is published on "<prefix>:<kind>" and stored as the latest
// frame of its kind under "<prefix>:latest:<kind>", in one MULTI/EXEC.
package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/redis/go-redis/v9"

	"github.com/gabapcia/ledgerwatch/internal/pkg/logger"
)

const DefaultChannelPrefix = "ledgerwatch"

// Kind names the view carried by an Envelope.
type Kind string

const (
	KindToast         Kind = "toast"
	KindToastHidden   Kind = "toast_hidden"
	KindBalance       Kind = "balance"
	KindTransactions  Kind = "transactions"
	KindChain         Kind = "chain"
	KindBlockSelector Kind = "block_selector"
	KindStats         Kind = "stats"
	KindBlockDetail   Kind = "block_detail"
	KindAllAttempts   Kind = "all_attempts"
	KindSubmitControl Kind = "submit_control"
	KindMineControl   Kind = "mine_control"
	KindFormReset     Kind = "form_reset"
	KindCue           Kind = "cue"
)

// Kinds lists every published kind.
var Kinds = []Kind{
	KindToast, KindToastHidden, KindBalance, KindTransactions, KindChain,
	KindBlockSelector, KindStats, KindBlockDetail, KindAllAttempts,
	KindSubmitControl, KindMineControl, KindFormReset, KindCue,
}

// Envelope is the published message.
type Envelope struct {
	Kind    Kind            `json:"kind"`
	SentAt  time.Time       `json:"sent_at"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

type client struct {
	conn   *redis.Client
	prefix string
	clock  clock.Clock
}

type config struct {
	prefix string
	clock  clock.Clock
}

type Option func(*config)

// WithChannelPrefix namespaces channels and keys. Default: "ledgerwatch".
func WithChannelPrefix(prefix string) Option {
	return func(c *config) {
		if prefix != "" {
			c.prefix = prefix
		}
	}
}

func WithClock(c clock.Clock) Option {
	return func(cfg *config) {
		cfg.clock = c
	}
}

func (c *client) Close() error {
	return c.conn.Close()
}

// NewClient connects to Redis and checks the connection with a PING.
func NewClient(ctx context.Context, addr, username, password string, db int, opts ...Option) (*client, error) {
	conn := redis.NewClient(&redis.Options{
		Addr:     addr,
		Username: username,
		Password: password,
		DB:       db,
	})

	if err := conn.Ping(ctx).Err(); err != nil {
		_ = conn.Close()
		return nil, err
	}

	return newClient(conn, opts...), nil
}

func newClient(conn *redis.Client, opts ...Option) *client {
	cfg := config{
		prefix: DefaultChannelPrefix,
		clock:  clock.New(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &client{
		conn:   conn,
		prefix: cfg.prefix,
		clock:  cfg.clock,
	}
}

func (c *client) channel(kind Kind) string {
	return fmt.Sprintf("%s:%s", c.prefix, kind)
}

func (c *client) latestKey(kind Kind) string {
	return fmt.Sprintf("%s:latest:%s", c.prefix, kind)
}

func (c *client) envelope(kind Kind, payload any) ([]byte, error) {
	env := Envelope{Kind: kind, SentAt: c.clock.Now().UTC()}
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return nil, err
		}
		env.Payload = data
	}

	return json.Marshal(env)
}

// publish never fails the caller: a dashboard keeps working without its
// followers.
func (c *client) publish(ctx context.Context, kind Kind, payload any) {
	data, err := c.envelope(kind, payload)
	if err != nil {
		logger.Error(ctx, "failed to encode view update", "view.kind", kind, "error", err)
		return
	}

	_, err = c.conn.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, c.latestKey(kind), data, 0)
		pipe.Publish(ctx, c.channel(kind), data)
		return nil
	})
	if err != nil {
		logger.Warn(ctx, "failed to publish view update", "view.kind", kind, "error", err)
	}
}

// Latest returns the last published envelope of kind. ok is false when
// nothing was published yet.
func (c *client) Latest(ctx context.Context, kind Kind) (env Envelope, ok bool, err error) {
	data, err := c.conn.Get(ctx, c.latestKey(kind)).Bytes()
	switch {
	case err == redis.Nil:
		return Envelope{}, false, nil
	case err != nil:
		return Envelope{}, false, err
	}

	if err := json.Unmarshal(data, &env); err != nil {
		return Envelope{}, false, err
	}
	return env, true, nil
}

// Follow subscribes to kinds (every kind when empty) and delivers envelopes
// until ctx is canceled. Undecodable messages are logged and skipped.
func (c *client) Follow(ctx context.Context, kinds ...Kind) (<-chan Envelope, error) {
	if len(kinds) == 0 {
		kinds = Kinds
	}

	channels := make([]string, len(kinds))
	for i, k := range kinds {
		channels[i] = c.channel(k)
	}

	sub := c.conn.Subscribe(ctx, channels...)
	if _, err := sub.Receive(ctx); err != nil {
		_ = sub.Close()
		return nil, err
	}

	out := make(chan Envelope)
	go func() {
		defer close(out)
		defer sub.Close()

		messages := sub.Channel()
		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-messages:
				if !ok {
					return
				}

				var env Envelope
				if err := json.Unmarshal([]byte(msg.Payload), &env); err != nil {
					logger.Warn(ctx, "skipping undecodable view update", "redis.channel", msg.Channel, "error", err)
					continue
				}

				select {
				case out <- env:
				case <-ctx.Done():
					return
				}
			}
		}
	}()

	return out, nil
}
