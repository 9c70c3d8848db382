package routing

import (
	"context"
	"time"
)

// Pacer spaces consecutive routing calls.
type Pacer interface {
	Wait(ctx context.Context) error
}

type PacerFunc func(ctx context.Context) error

func (f PacerFunc) Wait(ctx context.Context) error {
	return f(ctx)
}

// NoDelay never waits.
var NoDelay Pacer = PacerFunc(func(ctx context.Context) error {
	return ctx.Err()
})

// FixedDelay waits d between calls, or returns early when ctx is done.
func FixedDelay(d time.Duration) Pacer {
	if d <= 0 {
		return NoDelay
	}
	return PacerFunc(func(ctx context.Context) error {
		timer := time.NewTimer(d)
		defer timer.Stop()

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-timer.C:
			return nil
		}
	})
}
