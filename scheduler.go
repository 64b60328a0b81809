package starmotion

import (
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
)

// DefaultDebounce is the idle period after the last mutating action
// before a deferred regeneration fires.
const DefaultDebounce = 300 * time.Millisecond

// regenScheduler is the staleness-flag + deferred-trigger state behind
// lazy keyframe regeneration. The contract: never regenerate on every
// mutation, always regenerate before a stale cache is served to
// playback or export.
//
// MarkStale (re)arms a debounce timer; a rapid stroke sequence keeps
// pushing the deadline so only one regeneration runs after the burst.
// The timer callback only flags the regeneration as due: the regen
// closure touches layer state, which belongs to the host goroutine,
// so RunDue drains the flag from the host's tick instead of running
// on the timer goroutine. Require regenerates synchronously, disarming
// any pending timer. All paths run the same regen closure, so they
// converge to identical cache content for the same field state.
type regenScheduler struct {
	mu    sync.Mutex
	clock clockwork.Clock
	delay time.Duration
	timer clockwork.Timer
	regen func() error
	stale bool
	due   bool
}

// A new scheduler starts stale: a fresh layer has an empty cache, so
// the first Require populates it even before any mutation.
func newRegenScheduler(clock clockwork.Clock, delay time.Duration, regen func() error) *regenScheduler {
	return &regenScheduler{
		clock: clock,
		delay: delay,
		regen: regen,
		stale: true,
	}
}

// MarkStale records a mutation and defers regeneration until the
// debounce period passes without another one.
func (s *regenScheduler) MarkStale() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stale = true
	if s.timer == nil {
		s.timer = s.clock.AfterFunc(s.delay, s.fire)
		return
	}
	s.timer.Reset(s.delay)
}

// fire marks the deferred regeneration due when the debounce timer
// expires. It runs on the timer goroutine and must not call regen:
// only the due flag crosses goroutines here.
func (s *regenScheduler) fire() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.stale {
		s.due = true
	}
}

// RunDue runs a regeneration flagged by an expired debounce timer.
// Called from the host goroutine once per tick, so the regen closure
// only ever executes where layer state may be touched. A failed
// regeneration leaves the stale flag set so the next Require retries;
// the error is logged, not surfaced, because no caller is waiting on
// this path.
func (s *regenScheduler) RunDue() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.due {
		return
	}
	s.due = false
	if !s.stale {
		return
	}
	if err := s.regen(); err != nil {
		Logger().Warn("deferred regeneration failed", "error", err)
		return
	}
	s.stale = false
}

// Require ensures the cache is fresh before playback or export serves
// frames, regenerating synchronously if needed. Any pending deferred
// trigger is disarmed since its work is being done now.
func (s *regenScheduler) Require() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.timer != nil {
		s.timer.Stop()
	}
	s.due = false
	if !s.stale {
		return nil
	}
	if err := s.regen(); err != nil {
		return err
	}
	s.stale = false
	return nil
}

// Stale reports whether a regeneration is pending.
func (s *regenScheduler) Stale() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stale
}
