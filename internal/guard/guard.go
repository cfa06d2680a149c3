package guard

import (
	"context"
	"fmt"
	"time"

	"chartscout/internal/errors"
)

// Do runs fn under a cooperative budget: the computation races against a
// timer and the caller gets whichever settles first. On expiry the caller
// receives a timeout error carrying the operation name and budget, but fn is
// NOT interrupted; it keeps running on its own goroutine until it returns.
// fn must therefore only touch state scoped to this call.
func Do(ctx context.Context, operation string, budget time.Duration, fn func() error) error {
	done := make(chan error, 1)
	go func() {
		defer func() {
			if r := recover(); r != nil {
				done <- errors.New(errors.CodeInternalError, fmt.Sprintf("%s panicked: %v", operation, r))
			}
		}()
		done <- fn()
	}()

	timer := time.NewTimer(budget)
	defer timer.Stop()

	select {
	case err := <-done:
		return err
	case <-timer.C:
		return errors.Timeout(operation, budget)
	case <-ctx.Done():
		return errors.Wrapf(ctx.Err(), "%s canceled", operation)
	}
}
