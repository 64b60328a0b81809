// Package starmotion implements a vector-field motion animation engine
// for still images.
//
// # Overview
//
// The engine lets a caller annotate a source image with directional
// motion strokes and influence-range masks, then plays back and exports
// a looping animation that warps the image along the resulting vector
// field. It was built for simulating star and cloud motion in
// astrophotography previews, but works on any raster image.
//
// # Quick Start
//
//	import "github.com/zedczegh/starmotion"
//
//	src, _ := starmotion.LoadPNG("night-sky.png")
//	dst := surface.NewImageSurface(src.Width(), src.Height())
//	eng := starmotion.NewEngine(src, dst)
//
//	// Draw a motion stroke on the active layer.
//	eng.PointerDown(starmotion.ToolMotion, starmotion.Pt(100, 100))
//	eng.PointerMove(starmotion.Pt(140, 96))
//	eng.PointerUp()
//
//	// Mark where the motion is visible.
//	eng.PointerDown(starmotion.ToolRange, starmotion.Pt(120, 98))
//	eng.PointerUp()
//
//	eng.Play()
//	eng.Tick() // call once per display refresh
//
// # Architecture
//
// The package is organized into:
//   - Recording: Recorder converts pointer samples into strokes
//   - Field: per-layer motion vectors plus a range/erase influence mask
//   - Keyframes: lazily regenerated warped renderings of the source
//   - History: append-only action log replayed for undo/redo
//   - Layers: LayerManager composites independent layers back-to-front
//   - Playback/Export: phase-driven frame selection and encoder feed
//
// Expensive keyframe regeneration is debounced behind a scheduler so
// that drawing strokes never blocks on a full rebuild; playback and
// export always regenerate a stale cache before serving frames.
//
// # Coordinate System
//
// Uses standard raster coordinates: origin (0,0) at top-left, X
// increases right, Y increases down. All stroke positions are in
// surface pixels.
package starmotion
