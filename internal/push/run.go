package push

import (
	"context"
	"time"
)

const maxBackoff = 30 * time.Second

// Run keeps the subscription alive until ctx is cancelled. Transport errors
// inside a subscription are retried by the SSE client; Run only restarts the
// subscription when it ends, for example when the backend closes the stream.
func (c *Channel) Run(ctx context.Context) {
	failures := 0
	for {
		started := time.Now()
		err := c.Subscribe(ctx)
		if ctx.Err() != nil {
			return
		}
		// A subscription that stayed up for a while starts the count over.
		if time.Since(started) > maxBackoff {
			failures = 0
		}
		wait := calculateBackoff(failures, c.initial)
		entry := c.log.WithField("retry_in", wait)
		if err != nil {
			entry = entry.WithError(err)
		}
		entry.Warn("push subscription ended")
		failures++

		timer := time.NewTimer(wait)
		select {
		case <-ctx.Done():
			timer.Stop()
			return
		case <-timer.C:
		}
	}
}

// Start runs the channel in a background goroutine and returns immediately.
func (c *Channel) Start(ctx context.Context) {
	go c.Run(ctx)
}

// calculateBackoff doubles base for every consecutive failure, capped at
// maxBackoff.
func calculateBackoff(failures int, base time.Duration) time.Duration {
	if failures <= 0 {
		return base
	}
	wait := base
	for i := 0; i < failures; i++ {
		wait *= 2
		if wait >= maxBackoff {
			return maxBackoff
		}
	}
	return wait
}
