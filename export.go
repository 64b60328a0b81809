package starmotion

import (
	"context"
	"image"
	"image/color"
	"math"

	"github.com/zedczegh/starmotion/encoder"
	"github.com/zedczegh/starmotion/surface"
)

// ExportRequest describes one export run.
type ExportRequest struct {
	// Format is the container format: "webm", "mp4" or "gif".
	Format string

	// FrameRate is the output frame rate in frames per second.
	FrameRate int

	// DurationSeconds is the loop duration. frameCount =
	// round(FrameRate * DurationSeconds).
	DurationSeconds float64
}

// ExportResult is a finished export artifact.
type ExportResult struct {
	// Blob is the encoded container bytes.
	Blob []byte

	// Filename follows the motion-animation-<timestamp>.<ext>
	// convention. The engine never persists the artifact itself;
	// saving is a host concern.
	Filename string

	// FrameCount is the number of frames encoded.
	FrameCount int
}

// exportLayer is the frozen per-layer state export renders from:
// holding the published keyframe slice is a snapshot, since caches are
// only ever replaced wholesale, never patched.
type exportLayer struct {
	frames  []Keyframe
	speed   float64
	reverse bool
}

// Export renders a full deterministic loop off-screen and streams it
// to the encoder. The live playback phase is ignored: frame i is
// always at phase i/frameCount. Stale keyframe caches are regenerated
// before the first frame; on any failure a typed ExportError is
// returned and no artifact is produced.
func (e *Engine) Export(ctx context.Context, enc encoder.Encoder, req ExportRequest) (*ExportResult, error) {
	frameCount := int(math.Round(float64(req.FrameRate) * req.DurationSeconds))
	if frameCount < 1 {
		return nil, &InputError{Op: "export", Reason: "frame rate and duration yield no frames"}
	}

	// Freeze visible layers behind fresh caches.
	var frozen []exportLayer
	for _, l := range e.manager.Layers() {
		if !l.Visible {
			continue
		}
		if err := l.sched.Require(); err != nil {
			return nil, &ExportError{Stage: "regenerate", Err: err}
		}
		frozen = append(frozen, exportLayer{
			frames:  l.Keyframes(),
			speed:   l.settings.AnimationSpeed,
			reverse: l.settings.ReverseDirection,
		})
	}

	opts := encoder.Options{
		Format:    req.Format,
		FrameRate: req.FrameRate,
		Width:     e.src.Width(),
		Height:    e.src.Height(),
	}
	session, err := enc.Begin(ctx, opts)
	if err != nil {
		return nil, &ExportError{Stage: "encode", Err: err}
	}

	Logger().Info("export started",
		"format", req.Format,
		"frames", frameCount,
		"rate", req.FrameRate)

	off := surface.NewImageSurface(e.src.Width(), e.src.Height())
	defer func() {
		_ = off.Close()
	}()

	for i := 0; i < frameCount; i++ {
		phase := float64(i) / float64(frameCount)
		if err := session.WriteFrame(e.exportFrame(off, frozen, phase)); err != nil {
			session.Abort()
			Logger().Warn("export aborted", "frame", i, "error", err)
			return nil, &ExportError{Stage: "encode", Err: err}
		}
	}

	blob, err := session.Close()
	if err != nil {
		Logger().Warn("export aborted", "error", err)
		return nil, &ExportError{Stage: "finish", Err: err}
	}
	return &ExportResult{
		Blob:       blob,
		Filename:   encoder.Filename(e.clock.Now(), opts),
		FrameCount: frameCount,
	}, nil
}

// exportFrame composites one loop phase off-screen. Each layer maps
// the global phase through its own speed and direction, then selects
// its nearest keyframe, mirroring interactive playback.
func (e *Engine) exportFrame(off surface.Surface, frozen []exportLayer, phase float64) *image.RGBA {
	off.Clear(color.Black)
	off.DrawImage(e.src.ToImage(), image.Point{})
	for _, fl := range frozen {
		p := phase * fl.speed / 100
		if fl.reverse {
			p = -p
		}
		if frame := nearestFrame(fl.frames, p); frame != nil {
			off.DrawImage(frame.ToImage(), image.Point{})
		}
	}
	return off.Snapshot()
}
