// Package screen holds per-screen state: the data-loading lifecycle, form
// validity rules and the duplicate-submission guard.
package screen

import (
	"context"
	"errors"
)

// Status is the loading lifecycle of a screen.
type Status string

const (
	Idle    Status = "idle"
	Loading Status = "loading"
	Loaded  Status = "loaded"
	Failed  Status = "error"
)

// State is the outcome of loading the data a screen shows.
type State[T any] struct {
	Status Status
	Data   T
	Err    error
}

// Ready reports whether data was loaded.
func (s State[T]) Ready() bool {
	return s.Status == Loaded
}

// Load runs fetch under ctx and returns the resulting state. A cancelled
// context leaves the screen idle instead of failed, so nothing is rendered
// for a client that has gone away.
func Load[T any](ctx context.Context, fetch func(context.Context) (T, error)) State[T] {
	var zero T
	if err := ctx.Err(); err != nil {
		return State[T]{Status: Idle, Data: zero, Err: err}
	}

	data, err := fetch(ctx)
	switch {
	case err == nil:
		return State[T]{Status: Loaded, Data: data}
	case errors.Is(err, context.Canceled) || ctx.Err() != nil:
		return State[T]{Status: Idle, Data: zero, Err: err}
	default:
		return State[T]{Status: Failed, Data: zero, Err: err}
	}
}
