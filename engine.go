package starmotion

import (
	"image"
	"image/color"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/zedczegh/starmotion/surface"
)

// Engine is the façade over the motion animation subsystem: it wires
// the stroke recorder, layer manager, playback and compositing against
// one source image and one presentation surface.
//
// The engine is single-threaded by design: the host calls input
// handlers and Tick from one goroutine (typically its UI loop). Only
// keyframe regeneration fans out internally, and it publishes results
// as a whole-cache swap.
type Engine struct {
	src   *Pixmap
	dst   surface.Surface
	clock clockwork.Clock

	gen     *Generator
	manager *LayerManager
	rec     Recorder

	lastTick      time.Time
	redrawPending bool
}

// NewEngine creates an engine rendering src onto dst. The source image
// is scaled to the surface dimensions if they differ.
func NewEngine(src *Pixmap, dst surface.Surface, opts ...Option) *Engine {
	o := defaultEngineOptions()
	for _, opt := range opts {
		opt(&o)
	}

	fitted := FitPixmap(src, dst.Width(), dst.Height())
	gen := &Generator{GridStep: o.gridStep, Workers: o.workers}
	e := &Engine{
		src:      fitted,
		dst:      dst,
		clock:    o.clock,
		gen:      gen,
		manager:  NewLayerManager(fitted, gen, o.clock, o.debounce),
		lastTick: o.clock.Now(),
	}
	return e
}

// Source returns the engine's (surface-fitted) source image.
func (e *Engine) Source() *Pixmap { return e.src }

// Layers returns the layer manager.
func (e *Engine) Layers() *LayerManager { return e.manager }

// Active returns the active (editable) layer.
func (e *Engine) Active() *Layer { return e.manager.Active() }

// PointerDown starts recording a stroke with the given tool on the
// active layer.
func (e *Engine) PointerDown(tool Tool, at Point) {
	e.rec.Begin(e.manager.Active(), tool, at)
	e.RequestRedraw()
}

// PointerMove records a pointer-move sample for the stroke in
// progress. Redraws coalesce; stroke samples never drop.
func (e *Engine) PointerMove(at Point) {
	e.rec.Move(at)
	e.RequestRedraw()
}

// PointerUp completes the stroke in progress, committing it to the
// active layer's history and field.
func (e *Engine) PointerUp() {
	e.rec.End()
	e.RequestRedraw()
}

// Undo undoes the last action on the active layer.
func (e *Engine) Undo() error {
	err := e.manager.Active().Undo()
	e.RequestRedraw()
	return err
}

// Redo redoes the next action on the active layer.
func (e *Engine) Redo() error {
	err := e.manager.Active().Redo()
	e.RequestRedraw()
	return err
}

// Play starts playback on the active layer, regenerating its keyframe
// cache first if stale.
func (e *Engine) Play() error {
	err := e.manager.Active().Play()
	e.RequestRedraw()
	return err
}

// Stop pauses playback on the active layer and restores the editable
// overlay view.
func (e *Engine) Stop() {
	e.manager.Active().Stop()
	e.RequestRedraw()
}

// RequestRedraw schedules one composite render on the next tick. At
// most one redraw is pending at a time: bursts of requests (pointer
// moves, setting tweaks) coalesce into a single render.
func (e *Engine) RequestRedraw() {
	e.redrawPending = true
}

// Tick is called once per display refresh. It drains any debounce
// timers that have expired since the last tick, advances the phase of
// playing layers by the elapsed clock time, and renders the composite
// if a redraw is pending or any layer is playing. Running the deferred
// regenerations here keeps all layer state on the host goroutine; the
// timer goroutine only ever flags them.
func (e *Engine) Tick() {
	now := e.clock.Now()
	dt := now.Sub(e.lastTick)
	e.lastTick = now

	playing := false
	for _, l := range e.manager.Layers() {
		l.sched.RunDue()
		l.advance(dt)
		if l.Playing() {
			playing = true
		}
	}
	if !playing && !e.redrawPending {
		return
	}
	e.redrawPending = false
	e.render()
}

// render composites visible layers back-to-front onto the presentation
// surface: playing layers contribute their current warped keyframe,
// idle layers the source image under their editable stroke overlay.
func (e *Engine) render() {
	e.dst.Clear(color.Black)
	e.dst.DrawImage(e.src.ToImage(), image.Point{})
	for _, l := range e.manager.Layers() {
		if !l.Visible {
			continue
		}
		e.dst.DrawImage(e.layerFrame(l).ToImage(), image.Point{})
	}
	if err := e.dst.Flush(); err != nil {
		Logger().Warn("surface flush failed", "error", err)
	}
}

func (e *Engine) layerFrame(l *Layer) *Pixmap {
	if l.Playing() {
		if frame := l.FrameAt(l.Phase()); frame != nil {
			return frame
		}
	}
	frame := e.src.Clone()
	renderOverlay(frame, l)
	return frame
}
