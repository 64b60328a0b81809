package surface

import (
	"image"
	"image/color"
)

// Surface is the presentation target the engine draws frames onto.
//
// Surfaces are NOT thread-safe. Each surface should be used from a
// single goroutine, or external synchronization must be used.
type Surface interface {
	// Width returns the surface width in pixels.
	Width() int

	// Height returns the surface height in pixels.
	Height() int

	// Clear fills the entire surface with the given color.
	Clear(c color.Color)

	// DrawImage draws an image with its top-left corner at the given
	// position, alpha-compositing it over the current contents.
	DrawImage(img image.Image, at image.Point)

	// Flush ensures all pending drawing operations are complete.
	// For CPU surfaces this is typically a no-op.
	Flush() error

	// Snapshot returns the current surface contents as an RGBA image.
	// The returned image is a copy; modifications to it do not affect
	// the surface.
	Snapshot() *image.RGBA

	// Close releases all resources associated with the surface.
	// Close is idempotent; multiple calls are safe.
	Close() error
}
