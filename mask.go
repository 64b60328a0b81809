package starmotion

import "math"

// InfluenceMask is a per-pixel weighting field in [0,1] that gates
// where vector-field displacement is visible. Range strokes accumulate
// positively, erase strokes negatively. Values are clamped after every
// stamp, not only at read time, so overlapping erase regions cannot
// push weights below zero and later range strokes recover visible
// effect immediately.
type InfluenceMask struct {
	width  int
	height int
	data   []float32
}

// edgeFalloff is the fraction of the stamp radius over which the stamp
// weight falls from 1 to 0, softening the mask rim.
const edgeFalloff = 0.3

// NewInfluenceMask creates an empty mask with the given dimensions.
// All weights are initialized to 0 (no displacement anywhere).
func NewInfluenceMask(width, height int) *InfluenceMask {
	return &InfluenceMask{
		width:  width,
		height: height,
		data:   make([]float32, width*height),
	}
}

// Width returns the mask width.
func (m *InfluenceMask) Width() int { return m.width }

// Height returns the mask height.
func (m *InfluenceMask) Height() int { return m.height }

// At returns the weight at (x, y).
// Returns 0 for coordinates outside the mask bounds.
func (m *InfluenceMask) At(x, y int) float64 {
	if x < 0 || x >= m.width || y < 0 || y >= m.height {
		return 0
	}
	return float64(m.data[y*m.width+x])
}

// Stamp applies one brush disc at center. sign is +1 for range strokes
// and -1 for erase strokes. The disc has full weight inside
// (1-edgeFalloff)*radius and falls linearly to 0 at radius. Weights are
// clamped to [0,1] before the stamp returns.
func (m *InfluenceMask) Stamp(center Point, radius float64, sign float64) {
	if radius <= 0 {
		return
	}
	x0 := int(math.Floor(center.X - radius))
	x1 := int(math.Ceil(center.X + radius))
	y0 := int(math.Floor(center.Y - radius))
	y1 := int(math.Ceil(center.Y + radius))
	if x0 < 0 {
		x0 = 0
	}
	if y0 < 0 {
		y0 = 0
	}
	if x1 >= m.width {
		x1 = m.width - 1
	}
	if y1 >= m.height {
		y1 = m.height - 1
	}

	solid := radius * (1 - edgeFalloff)
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			dx := float64(x) - center.X
			dy := float64(y) - center.Y
			d := math.Sqrt(dx*dx + dy*dy)
			if d >= radius {
				continue
			}
			w := 1.0
			if d > solid {
				w = (radius - d) / (radius - solid)
			}
			i := y*m.width + x
			v := float64(m.data[i]) + sign*w
			if v < 0 {
				v = 0
			}
			if v > 1 {
				v = 1
			}
			m.data[i] = float32(v)
		}
	}
}

// StampPath stamps a brush stroke along a point sequence. Consecutive
// points are joined by interpolated stamps spaced at most radius/2
// apart so the contributed coverage has no gaps at reasonable draw
// speeds. A single-point path stamps once.
func (m *InfluenceMask) StampPath(points []Point, radius float64, sign float64) {
	if len(points) == 0 {
		return
	}
	m.Stamp(points[0], radius, sign)
	for i := 1; i < len(points); i++ {
		a, b := points[i-1], points[i]
		dist := a.Distance(b)
		steps := int(math.Ceil(dist / (radius / 2)))
		for s := 1; s <= steps; s++ {
			m.Stamp(a.Lerp(b, float64(s)/float64(steps)), radius, sign)
		}
	}
}

// Clear resets all weights to 0.
func (m *InfluenceMask) Clear() {
	for i := range m.data {
		m.data[i] = 0
	}
}

// Clone creates a deep copy of the mask.
func (m *InfluenceMask) Clone() *InfluenceMask {
	clone := NewInfluenceMask(m.width, m.height)
	copy(clone.data, m.data)
	return clone
}
