package demo

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/rescp17/tuievents/pkg/eventctl"
)

// EmitTicks sends a Tick to c every interval until ctx is done or c is closed.
// It blocks; run it on its own goroutine.
func EmitTicks(ctx context.Context, c *Controller, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := c.Send(Tick{}); err != nil {
				if !errors.Is(err, eventctl.ErrClosed) {
					slog.Warn("failed to send tick", "error", err)
				}
				return
			}
		}
	}
}
