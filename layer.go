package starmotion

import (
	"image/color"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
)

// Layer is one independent animation layer: a vector field, its
// history log, per-layer render settings and a lazily regenerated
// keyframe cache. Layers are owned by a LayerManager; nothing in the
// engine is module-level state.
type Layer struct {
	ID      uuid.UUID
	Name    string
	Visible bool
	Locked  bool

	// RangeColor and MotionColor tint the editable overlay.
	RangeColor  color.RGBA
	MotionColor color.RGBA

	settings Settings
	field    *Field
	trails   []MotionTrail // applied motion trails, for overlay display
	history  *HistoryLog
	cache    *keyframeCache
	sched    *regenScheduler

	gen *Generator
	src *Pixmap

	playing bool
	phase   float64
}

func newLayer(name string, src *Pixmap, gen *Generator, clock clockwork.Clock, debounce time.Duration) *Layer {
	l := &Layer{
		ID:          uuid.New(),
		Name:        name,
		Visible:     true,
		RangeColor:  color.RGBA{R: 64, G: 200, B: 120, A: 255},
		MotionColor: color.RGBA{R: 235, G: 120, B: 64, A: 255},
		settings:    DefaultSettings(),
		field:       NewField(src.Width(), src.Height()),
		history:     NewHistoryLog(),
		cache:       newKeyframeCache(),
		gen:         gen,
		src:         src,
	}
	l.sched = newRegenScheduler(clock, debounce, l.regenerate)
	return l
}

// Settings returns the layer's current settings.
func (l *Layer) Settings() Settings { return l.settings }

// SetSettings replaces the layer's settings (clamped to valid ranges)
// and marks the keyframe cache stale.
func (l *Layer) SetSettings(s Settings) {
	s.Clamp()
	l.settings = s
	l.markStale()
}

// Field returns the layer's vector field store.
func (l *Layer) Field() *Field { return l.field }

// History returns the layer's history log.
func (l *Layer) History() *HistoryLog { return l.history }

// Trails returns the motion trails currently applied to the field, in
// history order. The slice is shared; callers must not mutate it.
func (l *Layer) Trails() []MotionTrail { return l.trails }

// Apply appends a stroke action to the history log (discarding any
// redo tail), applies it to the field and defers regeneration.
func (l *Layer) Apply(a Action) {
	l.history.Append(a)
	l.applyAction(a)
	l.markStale()
}

func (l *Layer) applyAction(a Action) {
	a.applyTo(l.field)
	if a.Kind == ActionMotion {
		l.trails = append(l.trails, a.Trail)
	}
}

// Undo steps the history back one action and rebuilds the field by
// replaying the remaining prefix. If the layer is playing, the cache
// is regenerated synchronously before playback resumes; otherwise it
// is only marked stale.
func (l *Layer) Undo() error {
	if err := l.history.Undo(); err != nil {
		return err
	}
	return l.afterHistoryMove()
}

// Redo steps the history forward one action; otherwise as Undo.
func (l *Layer) Redo() error {
	if err := l.history.Redo(); err != nil {
		return err
	}
	return l.afterHistoryMove()
}

func (l *Layer) afterHistoryMove() error {
	l.rebuild()
	l.markStale()
	if l.playing {
		return l.sched.Require()
	}
	return nil
}

// rebuild clears the field and replays applied history in order.
// Erase strokes are not invertible against overlapping range strokes,
// so full replay is the correctness-preserving path; cost is
// O(history length).
func (l *Layer) rebuild() {
	l.field.Clear()
	l.trails = l.trails[:0]
	l.history.Applied(l.applyAction)
}

// Clear empties the layer: field, trails and history.
func (l *Layer) Clear() {
	l.field.Clear()
	l.trails = l.trails[:0]
	l.history = NewHistoryLog()
	l.markStale()
}

func (l *Layer) markStale() {
	l.cache.stale = true
	l.sched.MarkStale()
}

// regenerate recomputes the keyframe cache and publishes it as a
// whole. On failure the previous cache (or stale marker) is untouched.
func (l *Layer) regenerate() error {
	frames, err := l.gen.Regenerate(l.src, l.field, l.settings)
	if err != nil {
		return err
	}
	l.cache.frames = frames
	l.cache.stale = false
	return nil
}

// CacheStale reports whether the keyframe cache needs regeneration.
func (l *Layer) CacheStale() bool { return l.cache.stale }

// Keyframes returns the cached keyframes, or nil while the cache is
// stale and has never been populated.
func (l *Layer) Keyframes() []Keyframe { return l.cache.frames }

// FrameAt selects the nearest cached keyframe for a phase in [0,1).
// Returns nil while the cache is empty.
func (l *Layer) FrameAt(phase float64) *Pixmap {
	return nearestFrame(l.cache.frames, phase)
}

func nearestFrame(frames []Keyframe, phase float64) *Pixmap {
	n := len(frames)
	if n == 0 {
		return nil
	}
	phase = phase - float64(int(phase))
	if phase < 0 {
		phase += 1
	}
	i := int(phase*float64(n) + 0.5)
	return frames[i%n].Pixmap
}
