package editor

import (
	"context"
	"time"
)

// Frames schedules the yield points of the switch protocol: frame-boundary
// waits and the settle delay the rendered surface needs after readiness.
type Frames interface {
	// WaitFrame blocks until the next frame boundary or ctx is done.
	WaitFrame(ctx context.Context) error

	// Settle blocks for the given stabilization delay or until ctx is done.
	Settle(ctx context.Context, d time.Duration) error
}

// TimerFrames is the production scheduler, pacing frames with a wall-clock
// interval.
type TimerFrames struct {
	// Interval is the frame duration. Zero means DefaultFrameInterval.
	Interval time.Duration
}

// DefaultFrameInterval approximates one frame at 60 fps.
const DefaultFrameInterval = 16 * time.Millisecond

func (f TimerFrames) WaitFrame(ctx context.Context) error {
	iv := f.Interval
	if iv <= 0 {
		iv = DefaultFrameInterval
	}
	return sleep(ctx, iv)
}

func (f TimerFrames) Settle(ctx context.Context, d time.Duration) error {
	return sleep(ctx, d)
}

// ImmediateFrames completes every wait instantly, honoring only
// cancellation. Tests use it to run the full protocol without timers.
type ImmediateFrames struct{}

func (ImmediateFrames) WaitFrame(ctx context.Context) error {
	return ctx.Err()
}

func (ImmediateFrames) Settle(ctx context.Context, _ time.Duration) error {
	return ctx.Err()
}

func sleep(ctx context.Context, d time.Duration) error {
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
