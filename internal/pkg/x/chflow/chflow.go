// Package chflow wraps channel operations that must give up when a context
// is done.
package chflow

import "context"

// Receive waits for a value from ch. ok is false when ctx is done first or
// ch is closed.
func Receive[T any](ctx context.Context, ch <-chan T) (v T, ok bool) {
	select {
	case <-ctx.Done():
		return v, false
	case v, ok = <-ch:
		return v, ok
	}
}

// Send waits until ch accepts v and reports false if ctx is done first.
func Send[T any](ctx context.Context, ch chan<- T, v T) bool {
	select {
	case <-ctx.Done():
		return false
	case ch <- v:
		return true
	}
}

// TrySend hands v to ch only if it can do so without blocking.
func TrySend[T any](ch chan<- T, v T) bool {
	select {
	case ch <- v:
		return true
	default:
		return false
	}
}
