package starmotion

import "time"

// baseLoopDuration is the length of one animation loop at 100% speed.
const baseLoopDuration = 2 * time.Second

// Play transitions the layer from Idle to Playing. A stale keyframe
// cache is regenerated synchronously first; playback never starts on
// stale data. On a RegenerationError the layer stays Idle.
func (l *Layer) Play() error {
	if l.playing {
		return nil
	}
	if l.cache.stale {
		if err := l.sched.Require(); err != nil {
			return err
		}
	}
	l.playing = true
	return nil
}

// Stop returns the layer to Idle. The next composite render shows the
// editable stroke overlay again.
func (l *Layer) Stop() {
	l.playing = false
}

// Playing reports whether the layer is in the Playing state.
func (l *Layer) Playing() bool { return l.playing }

// Phase returns the layer's current position within the animation
// loop, in [0,1).
func (l *Layer) Phase() float64 { return l.phase }

// advance moves the phase forward by one tick's worth of loop
// progress: animationSpeed/100 of real time over the base loop length,
// negated when ReverseDirection is set, wrapping modulo 1.
func (l *Layer) advance(dt time.Duration) {
	if !l.playing {
		return
	}
	dir := 1.0
	if l.settings.ReverseDirection {
		dir = -1
	}
	l.phase += dt.Seconds() / baseLoopDuration.Seconds() * l.settings.AnimationSpeed / 100 * dir
	l.phase -= float64(int(l.phase))
	if l.phase < 0 {
		l.phase += 1
	}
}
