package contextutil

import (
	"context"
	"time"
)

const (
	// DefaultTimeout is the default timeout for operations
	DefaultTimeout = 30 * time.Second
	// ShortTimeout is a shorter timeout for quick operations
	ShortTimeout = 5 * time.Second
	// LongTimeout is a longer timeout for more intensive operations
	LongTimeout = 2 * time.Minute
)

// WithTimeout creates a context with the default timeout
func WithTimeout() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), DefaultTimeout)
}

// WithCustomTimeout creates a context with a custom timeout
func WithCustomTimeout(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

// WithShortTimeout creates a context with a short timeout
func WithShortTimeout() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), ShortTimeout)
}

// MergeCancel derives a cancellable context from parent whose Done channel
// also closes when any of the extra contexts is cancelled. The returned
// CancelFunc must be called to release the watchers. The result is always
// cancellable, even when parent is context.Background().
func MergeCancel(parent context.Context, extras ...context.Context) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(parent)

	stops := make([]func() bool, 0, len(extras))
	for _, extra := range extras {
		stops = append(stops, context.AfterFunc(extra, cancel))
	}

	return ctx, func() {
		for _, stop := range stops {
			stop()
		}
		cancel()
	}
}
