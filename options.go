package starmotion

import (
	"time"

	"github.com/jonboulle/clockwork"
)

// Option configures an Engine during creation.
//
// Example:
//
//	// Deterministic time for tests
//	fake := clockwork.NewFakeClock()
//	eng := starmotion.NewEngine(src, dst, starmotion.WithClock(fake))
type Option func(*engineOptions)

type engineOptions struct {
	clock    clockwork.Clock
	debounce time.Duration
	gridStep int
	workers  int
}

func defaultEngineOptions() engineOptions {
	return engineOptions{
		clock:    clockwork.NewRealClock(),
		debounce: DefaultDebounce,
		gridStep: DefaultGridStep,
	}
}

// WithClock sets the clock driving the regeneration debounce and
// playback phase advance. Tests pass a clockwork fake clock.
func WithClock(c clockwork.Clock) Option {
	return func(o *engineOptions) {
		o.clock = c
	}
}

// WithDebounce sets the idle period after the last mutating action
// before a deferred regeneration fires.
func WithDebounce(d time.Duration) Option {
	return func(o *engineOptions) {
		o.debounce = d
	}
}

// WithGridStep sets the coarse displacement grid spacing in pixels.
// Step 1 evaluates the field at every pixel.
func WithGridStep(step int) Option {
	return func(o *engineOptions) {
		o.gridStep = step
	}
}

// WithWorkers bounds the per-phase regeneration fan-out.
// 0 means GOMAXPROCS.
func WithWorkers(n int) Option {
	return func(o *engineOptions) {
		o.workers = n
	}
}
