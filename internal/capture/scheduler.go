package capture

import (
	"context"
	"time"
)

// Scheduler paces the loop. Wait blocks until the next frame slot, or until ctx is done.
type Scheduler interface {
	Wait(ctx context.Context) error
}

// TickerScheduler hands out frame slots at a fixed rate.
type TickerScheduler struct {
	ticker *time.Ticker
}

func NewTickerScheduler(frameRate int) *TickerScheduler {
	if frameRate <= 0 {
		frameRate = 30
	}
	return &TickerScheduler{
		ticker: time.NewTicker(time.Second / time.Duration(frameRate)),
	}
}

func (s *TickerScheduler) Wait(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-s.ticker.C:
		return nil
	}
}

func (s *TickerScheduler) Stop() {
	s.ticker.Stop()
}
