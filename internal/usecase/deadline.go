package usecase

import (
	"context"
	"errors"
	"time"
)

type opOutcome int

const (
	opCompleted opOutcome = iota
	opTimedOut
	opFailed
)

type opResult struct {
	Outcome opOutcome
	Err     error
}

// runWithDeadline races fn against a timer. On timeout the derived context
// is cancelled and the caller stops waiting; fn may still finish in the
// background, and its eventual outcome is never observed.
func runWithDeadline(ctx context.Context, d time.Duration, fn func(context.Context) error) opResult {
	opCtx, cancel := context.WithTimeout(ctx, d)
	defer cancel()

	done := make(chan error, 1)
	go func() {
		done <- fn(opCtx)
	}()

	select {
	case err := <-done:
		if err == nil {
			return opResult{Outcome: opCompleted}
		}
		if errors.Is(err, context.DeadlineExceeded) {
			return opResult{Outcome: opTimedOut, Err: err}
		}
		return opResult{Outcome: opFailed, Err: err}
	case <-opCtx.Done():
		if errors.Is(opCtx.Err(), context.DeadlineExceeded) {
			return opResult{Outcome: opTimedOut, Err: opCtx.Err()}
		}
		return opResult{Outcome: opFailed, Err: opCtx.Err()}
	}
}
