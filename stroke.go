package starmotion

// Tool selects what a pointer drag records.
type Tool int

// Recorder tools.
const (
	// ToolMotion records a motion trail decomposed into vectors.
	ToolMotion Tool = iota
	// ToolRange paints the influence mask.
	ToolRange
	// ToolErase erases from the influence mask.
	ToolErase
)

// Recorder converts raw pointer samples into structured strokes.
//
// The motion tool keeps every sampled point: the trail shape and the
// arrowhead direction depend on full fidelity. The range and erase
// tools accept a point only when it has moved at least a third of the
// brush size from the last accepted point, bounding the per-stroke
// stamp count while keeping the painted coverage visually continuous.
type Recorder struct {
	layer    *Layer
	tool     Tool
	active   bool
	points   []Point
	radius   float64
	strength float64
	minDist  float64
}

// Begin starts recording a stroke on a layer with the tool and the
// layer's current brush settings. The down position is always the
// first recorded point. An unfinished previous stroke is discarded.
func (r *Recorder) Begin(layer *Layer, tool Tool, at Point) {
	s := layer.Settings()
	r.layer = layer
	r.tool = tool
	r.active = true
	r.points = append(r.points[:0], at)
	r.radius = s.BrushSize / 2
	r.strength = s.MotionStrength / 100
	r.minDist = s.BrushSize / 3
}

// Move records a pointer-move sample. Samples are never dropped for
// the motion tool; range and erase samples are distance-thinned.
func (r *Recorder) Move(at Point) {
	if !r.active {
		return
	}
	if r.tool == ToolMotion {
		r.points = append(r.points, at)
		return
	}
	last := r.points[len(r.points)-1]
	if last.Distance(at) >= r.minDist {
		r.points = append(r.points, at)
	}
}

// End completes the stroke: the resulting action is appended to the
// layer's history and applied to its field, and the layer's keyframe
// cache is marked stale. A single-point stroke is a valid action (a
// range/erase click stamps once; a motion click contributes no
// vectors but still occupies a history slot).
func (r *Recorder) End() {
	if !r.active {
		return
	}
	r.active = false

	points := make([]Point, len(r.points))
	copy(points, r.points)

	var a Action
	switch r.tool {
	case ToolMotion:
		a = Action{Kind: ActionMotion, Trail: MotionTrail{Points: points, Strength: r.strength}}
	case ToolRange:
		a = Action{Kind: ActionRange, Points: points, Radius: r.radius}
	case ToolErase:
		a = Action{Kind: ActionErase, Points: points, Radius: r.radius}
	}
	r.layer.Apply(a)
}

// Recording reports whether a stroke is in progress.
func (r *Recorder) Recording() bool { return r.active }
