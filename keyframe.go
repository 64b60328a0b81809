package starmotion

import (
	"errors"
	"time"

	"github.com/zedczegh/starmotion/internal/parallel"
)

// Keyframe is a precomputed, fully warped rendering of the source
// image at one phase of the animation cycle.
type Keyframe struct {
	Phase  float64
	Pixmap *Pixmap
}

// keyframeCache is either a complete list of KeyframeAmount frames or
// explicitly stale. It is never served partially stale: regeneration
// publishes a whole replacement slice or nothing.
type keyframeCache struct {
	frames []Keyframe
	stale  bool
}

func newKeyframeCache() *keyframeCache {
	return &keyframeCache{stale: true}
}

// brightenThreshold is the minimum luminance (0-255) for a local
// maximum to qualify for core brightening.
const brightenThreshold = 128

// Generator computes warped keyframes from a layer's field. The
// displacement direction is evaluated on a coarse grid and bilinearly
// resampled to full resolution; GridStep 1 evaluates per pixel.
type Generator struct {
	// GridStep is the coarse displacement grid spacing in pixels.
	// Values below 1 are treated as the default.
	GridStep int

	// Workers bounds the per-phase fan-out. 0 means GOMAXPROCS.
	Workers int

	// phaseHook, when set, is consulted before each phase warp and
	// fails the whole regeneration on error. Tests use it to exercise
	// the atomic-failure path.
	phaseHook func(phase int) error
}

// DefaultGridStep is the displacement grid spacing used when a
// Generator does not specify one.
const DefaultGridStep = 4

// Regenerate computes a complete keyframe list for the field at the
// given settings: KeyframeAmount evenly spaced phases t_i = i/amount,
// each a seamless-loop crossfade of two pull-based warps (see
// warpPhase). Returns a RegenerationError and publishes nothing if any
// phase fails.
//
// Regenerating twice with no intervening mutation yields identical
// output: per-phase work is independent and deterministic, so the
// parallel fan-out cannot reorder results.
func (g *Generator) Regenerate(src *Pixmap, field *Field, s Settings) ([]Keyframe, error) {
	if src == nil || src.Width() == 0 || src.Height() == 0 {
		return nil, &RegenerationError{Phase: -1, Err: errors.New("empty source image")}
	}
	s.Clamp()
	n := s.KeyframeAmount
	start := time.Now()

	grid := buildDirGrid(field, src.Width(), src.Height(), g.gridStep())

	sign := 1.0
	if s.ReverseDirection {
		sign = -1
	}

	warps := make([]Keyframe, n)
	err := parallel.For(g.Workers, n, func(i int) error {
		if g.phaseHook != nil {
			if err := g.phaseHook(i); err != nil {
				return &RegenerationError{Phase: i, Err: err}
			}
		}
		t := float64(i) / float64(n)
		amp := s.DisplacementAmount * sign
		warps[i] = Keyframe{Phase: t, Pixmap: warpPhase(src, field.Mask(), grid, amp, t)}
		return nil
	})
	if err != nil {
		var rerr *RegenerationError
		if !errors.As(err, &rerr) {
			err = &RegenerationError{Phase: -1, Err: err}
		}
		Logger().Warn("keyframe regeneration failed", "error", err)
		return nil, err
	}

	frames := warps
	if s.MotionBlur > 0 && n >= 3 {
		frames = blendNeighbors(warps, s.MotionBlur/100)
	}
	if s.CoreBrightening {
		for i := range frames {
			brightenCores(frames[i].Pixmap, field.Mask())
		}
	}

	Logger().Debug("keyframes regenerated",
		"frames", n,
		"vectors", len(field.Vectors()),
		"elapsed", time.Since(start))
	return frames, nil
}

func (g *Generator) gridStep() int {
	if g.GridStep < 1 {
		return DefaultGridStep
	}
	return g.GridStep
}

// dirGrid holds the phase-independent displacement direction sampled
// on a coarse grid. Magnitudes are in [0,1] (unit direction times
// vector strength); the warp scales them by amplitude and mask weight.
type dirGrid struct {
	step   int
	cols   int
	rows   int
	dx, dy []float64
	empty  bool
}

func buildDirGrid(field *Field, width, height, step int) *dirGrid {
	g := &dirGrid{
		step: step,
		cols: (width-1)/step + 2,
		rows: (height-1)/step + 2,
	}
	if len(field.Vectors()) == 0 {
		g.empty = true
		return g
	}
	g.dx = make([]float64, g.cols*g.rows)
	g.dy = make([]float64, g.cols*g.rows)
	for gy := 0; gy < g.rows; gy++ {
		for gx := 0; gx < g.cols; gx++ {
			d := field.DirAt(Pt(float64(gx*step), float64(gy*step)))
			g.dx[gy*g.cols+gx] = d.X
			g.dy[gy*g.cols+gx] = d.Y
		}
	}
	return g
}

// at bilinearly resamples the grid at a pixel position.
func (g *dirGrid) at(x, y float64) (float64, float64) {
	fx := x / float64(g.step)
	fy := y / float64(g.step)
	x0 := int(fx)
	y0 := int(fy)
	if x0 > g.cols-2 {
		x0 = g.cols - 2
	}
	if y0 > g.rows-2 {
		y0 = g.rows - 2
	}
	tx := fx - float64(x0)
	ty := fy - float64(y0)

	i00 := y0*g.cols + x0
	i10 := i00 + 1
	i01 := i00 + g.cols
	i11 := i01 + 1

	dx := (g.dx[i00]*(1-tx)+g.dx[i10]*tx)*(1-ty) + (g.dx[i01]*(1-tx)+g.dx[i11]*tx)*ty
	dy := (g.dy[i00]*(1-tx)+g.dy[i10]*tx)*(1-ty) + (g.dy[i01]*(1-tx)+g.dy[i11]*tx)*ty
	return dx, dy
}

// warpPhase renders one phase as the crossfade of the forward stream
// (displaced by t*amp) and the backward stream (displaced by
// (t-1)*amp), weighted t toward the backward stream. t=0 returns the
// unwarped source.
func warpPhase(src *Pixmap, mask *InfluenceMask, grid *dirGrid, amp, t float64) *Pixmap {
	if t == 0 {
		return src.Clone()
	}
	forward := warp(src, mask, grid, amp*t)
	backward := warp(src, mask, grid, amp*(t-1))
	for i := range forward.data {
		forward.data[i] = uint8(float64(forward.data[i])*(1-t) + float64(backward.data[i])*t + 0.5)
	}
	return forward
}

// warp renders one displacement stream: for each pixel the
// displacement is the grid direction scaled by amp and the mask
// weight, and the source is sampled at the inverse-displaced location
// (pull-based, so the result has no holes).
func warp(src *Pixmap, mask *InfluenceMask, grid *dirGrid, amp float64) *Pixmap {
	if grid.empty || amp == 0 {
		return src.Clone()
	}
	w, h := src.Width(), src.Height()
	dst := NewPixmap(w, h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			mw := mask.At(x, y)
			if mw <= 0 {
				i := (y*w + x) * 4
				copy(dst.data[i:i+4], src.data[i:i+4])
				continue
			}
			dx, dy := grid.at(float64(x), float64(y))
			r, g, b, a := src.Sample(float64(x)-dx*amp*mw, float64(y)-dy*amp*mw)
			dst.SetRGBA(x, y, r, g, b, a)
		}
	}
	return dst
}

// blendNeighbors approximates temporal motion blur by blending each
// keyframe with its two neighboring-phase warps (wrapping around the
// loop), weighted by blur in [0,1]. The cost is paid once at
// generation instead of per frame at playback.
func blendNeighbors(warps []Keyframe, blur float64) []Keyframe {
	n := len(warps)
	nb := blur * 0.5 // total neighbor contribution
	out := make([]Keyframe, n)
	for i := range warps {
		prev := warps[(i-1+n)%n].Pixmap.data
		next := warps[(i+1)%n].Pixmap.data
		base := warps[i].Pixmap.data
		blended := NewPixmap(warps[i].Pixmap.Width(), warps[i].Pixmap.Height())
		for j := range base {
			v := float64(base[j])*(1-nb) + (float64(prev[j])+float64(next[j]))*nb/2
			blended.data[j] = uint8(v + 0.5)
		}
		out[i] = Keyframe{Phase: warps[i].Phase, Pixmap: blended}
	}
	return out
}

// brightenCores detects local luminance maxima within masked regions
// and boosts them multiplicatively (at most x1.5), clamped to the
// channel maximum so bright cores never wrap around.
func brightenCores(pm *Pixmap, mask *InfluenceMask) {
	w, h := pm.Width(), pm.Height()
	lum := make([]float64, w*h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			r, g, b, _ := pm.RGBA(x, y)
			lum[y*w+x] = 0.299*float64(r) + 0.587*float64(g) + 0.114*float64(b)
		}
	}
	for y := 1; y < h-1; y++ {
		for x := 1; x < w-1; x++ {
			if mask.At(x, y) < 0.5 {
				continue
			}
			l := lum[y*w+x]
			if l < brightenThreshold {
				continue
			}
			if !isLocalMax(lum, w, x, y) {
				continue
			}
			factor := 1 + 0.5*(l/255)
			if factor > 1.5 {
				factor = 1.5
			}
			r, g, b, a := pm.RGBA(x, y)
			pm.SetRGBA(x, y, scaleClamp(r, factor), scaleClamp(g, factor), scaleClamp(b, factor), a)
		}
	}
}

func isLocalMax(lum []float64, w, x, y int) bool {
	l := lum[y*w+x]
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			if lum[(y+dy)*w+(x+dx)] > l {
				return false
			}
		}
	}
	return true
}

func scaleClamp(c uint8, factor float64) uint8 {
	v := float64(c) * factor
	if v > 255 {
		v = 255
	}
	return uint8(v)
}
