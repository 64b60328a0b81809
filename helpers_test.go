package starmotion

import (
	"bytes"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/zedczegh/starmotion/surface"
)

// testSource builds a horizontal/vertical gradient image so warps
// produce measurable pixel shifts.
func testSource(w, h int) *Pixmap {
	pm := NewPixmap(w, h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			pm.SetRGBA(x, y, uint8(x*255/(w-1)), uint8(y*255/(h-1)), 128, 255)
		}
	}
	return pm
}

// testEngine creates an engine over a gradient source with a fake
// clock and per-pixel displacement evaluation for exact comparisons.
func testEngine(t *testing.T, w, h int) (*Engine, *clockwork.FakeClock) {
	t.Helper()
	fake := clockwork.NewFakeClock()
	dst := surface.NewImageSurface(w, h)
	eng := NewEngine(testSource(w, h), dst,
		WithClock(fake),
		WithGridStep(1),
		WithWorkers(1),
	)
	return eng, fake
}

// drawTrail commits a motion stroke through the given points.
func drawTrail(eng *Engine, points ...Point) {
	eng.PointerDown(ToolMotion, points[0])
	for _, p := range points[1:] {
		eng.PointerMove(p)
	}
	eng.PointerUp()
}

// drawRange commits a range stroke through the given points.
func drawRange(eng *Engine, points ...Point) {
	eng.PointerDown(ToolRange, points[0])
	for _, p := range points[1:] {
		eng.PointerMove(p)
	}
	eng.PointerUp()
}

// framesEqual reports whether two keyframe lists are byte-identical.
func framesEqual(a, b []Keyframe) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i].Phase != b[i].Phase {
			return false
		}
		if !bytes.Equal(a[i].Pixmap.Data(), b[i].Pixmap.Data()) {
			return false
		}
	}
	return true
}

// cloneFrames deep-copies a keyframe list so later regenerations
// cannot alias it.
func cloneFrames(frames []Keyframe) []Keyframe {
	out := make([]Keyframe, len(frames))
	for i, f := range frames {
		out[i] = Keyframe{Phase: f.Phase, Pixmap: f.Pixmap.Clone()}
	}
	return out
}

const testDebounce = 300 * time.Millisecond
