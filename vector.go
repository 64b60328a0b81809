package starmotion

import "math"

// MotionVector is a local displacement anchor: a direction sampled at
// Start, scaled by Strength. Immutable once created.
type MotionVector struct {
	Start    Point
	End      Point
	Strength float64 // [0,1]
}

// Dir returns the unit direction of the vector scaled by its strength.
func (v MotionVector) Dir() Point {
	return v.End.Sub(v.Start).Normalize().Mul(v.Strength)
}

// MotionTrail is the ordered point sequence captured during one
// continuous motion drag. It is retained for overlay display and undo;
// the field consumes its decomposition into MotionVectors.
type MotionTrail struct {
	Points   []Point
	Strength float64 // [0,1], shared by all decomposed vectors
}

// Vectors decomposes the trail into one MotionVector per adjacent point
// pair. Trails with fewer than two points decompose to nothing.
func (t MotionTrail) Vectors() []MotionVector {
	if len(t.Points) < 2 {
		return nil
	}
	vs := make([]MotionVector, 0, len(t.Points)-1)
	for i := 1; i < len(t.Points); i++ {
		vs = append(vs, MotionVector{
			Start:    t.Points[i-1],
			End:      t.Points[i],
			Strength: t.Strength,
		})
	}
	return vs
}

// vectorFalloff is the exponential-decay distance (in pixels) over
// which a motion vector's influence on the sampled field direction
// diminishes.
const vectorFalloff = 48.0

// Field owns one layer's motion vectors and its range/erase influence
// mask.
type Field struct {
	vectors []MotionVector
	mask    *InfluenceMask
}

// NewField creates an empty field for a surface of the given size.
func NewField(width, height int) *Field {
	return &Field{
		mask: NewInfluenceMask(width, height),
	}
}

// AddVectors appends motion vectors to the field.
func (f *Field) AddVectors(vectors []MotionVector) {
	f.vectors = append(f.vectors, vectors...)
}

// AddMask applies a brush stroke to the influence mask. sign is +1 for
// range strokes and -1 for erase strokes.
func (f *Field) AddMask(points []Point, radius float64, sign float64) {
	f.mask.StampPath(points, radius, sign)
}

// Clear resets the field to empty: no vectors, zero mask.
func (f *Field) Clear() {
	f.vectors = f.vectors[:0]
	f.mask.Clear()
}

// Vectors returns the field's motion vectors. The returned slice is
// shared; callers must not mutate it.
func (f *Field) Vectors() []MotionVector { return f.vectors }

// Mask returns the field's influence mask.
func (f *Field) Mask() *InfluenceMask { return f.mask }

// DirAt samples the blended motion direction at a point: the
// exponential-falloff weighted mean of all vector directions, each
// scaled by its strength. The result has magnitude in [0,1]; callers
// multiply by the displacement amount, mask weight and phase. Returns
// the zero vector when the field has no vectors.
func (f *Field) DirAt(p Point) Point {
	if len(f.vectors) == 0 {
		return Point{}
	}
	var sum Point
	var total float64
	for i := range f.vectors {
		v := &f.vectors[i]
		d := p.Distance(v.Start)
		w := math.Exp(-d / vectorFalloff)
		sum = sum.Add(v.Dir().Mul(w))
		total += w
	}
	if total < 1e-12 {
		return Point{}
	}
	return sum.Mul(1 / total)
}
