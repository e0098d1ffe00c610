package handlers

import (
	"context"
	"time"
)

// simulateWork stands in for the remote call a real backend would make.
// It returns early with the context error when the client goes away.
func simulateWork(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
