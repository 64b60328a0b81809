package encoder

import (
	"context"
	"fmt"
	"image"
	"time"
)

// Options configures one encoding session.
type Options struct {
	// Format is the container format: "webm", "mp4" or "gif".
	Format string

	// FrameRate is the output frame rate in frames per second.
	FrameRate int

	// Width and Height are the frame dimensions in pixels. Every
	// frame written to the session must match.
	Width  int
	Height int
}

// Validate checks the options for an encodable configuration.
func (o Options) Validate() error {
	switch o.Format {
	case "webm", "mp4", "gif":
	default:
		return fmt.Errorf("encoder: unsupported format %q", o.Format)
	}
	if o.FrameRate <= 0 || o.FrameRate > 120 {
		return fmt.Errorf("encoder: frame rate %d out of range", o.FrameRate)
	}
	if o.Width <= 0 || o.Height <= 0 {
		return fmt.Errorf("encoder: invalid dimensions %dx%d", o.Width, o.Height)
	}
	return nil
}

// Ext returns the artifact filename extension for the format.
func (o Options) Ext() string { return o.Format }

// Encoder starts encoding sessions.
type Encoder interface {
	// Begin opens a session. The context bounds the whole session
	// including the final Close.
	Begin(ctx context.Context, opts Options) (Session, error)
}

// Session consumes frames in order and produces the encoded artifact.
// Exactly one of Close or Abort must be called.
type Session interface {
	// WriteFrame appends one frame. Frames must arrive in playback
	// order.
	WriteFrame(img *image.RGBA) error

	// Close finishes the stream and returns the encoded container
	// bytes. On error no artifact is returned.
	Close() ([]byte, error)

	// Abort discards the session without producing an artifact.
	Abort()
}

// Filename returns the artifact filename convention for an export
// finished at the given time: motion-animation-<timestamp>.<ext>.
func Filename(at time.Time, opts Options) string {
	return fmt.Sprintf("motion-animation-%s.%s", at.Format("20060102-150405"), opts.Ext())
}
