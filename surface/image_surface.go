package surface

import (
	"image"
	"image/color"
	"image/draw"
)

// ImageSurface is a CPU-backed surface over an image.RGBA buffer.
type ImageSurface struct {
	img    *image.RGBA
	closed bool
}

// NewImageSurface creates an image surface with the given dimensions.
// The surface starts fully transparent.
func NewImageSurface(width, height int) *ImageSurface {
	return &ImageSurface{
		img: image.NewRGBA(image.Rect(0, 0, width, height)),
	}
}

// Width returns the surface width in pixels.
func (s *ImageSurface) Width() int { return s.img.Bounds().Dx() }

// Height returns the surface height in pixels.
func (s *ImageSurface) Height() int { return s.img.Bounds().Dy() }

// Clear fills the entire surface with the given color.
func (s *ImageSurface) Clear(c color.Color) {
	draw.Draw(s.img, s.img.Bounds(), image.NewUniform(c), image.Point{}, draw.Src)
}

// DrawImage alpha-composites img over the surface at the given
// position.
func (s *ImageSurface) DrawImage(img image.Image, at image.Point) {
	r := img.Bounds().Sub(img.Bounds().Min).Add(at)
	draw.Draw(s.img, r, img, img.Bounds().Min, draw.Over)
}

// Flush is a no-op for CPU surfaces.
func (s *ImageSurface) Flush() error { return nil }

// Snapshot returns a copy of the surface contents.
func (s *ImageSurface) Snapshot() *image.RGBA {
	out := image.NewRGBA(s.img.Bounds())
	copy(out.Pix, s.img.Pix)
	return out
}

// Close releases the surface. Idempotent.
func (s *ImageSurface) Close() error {
	s.closed = true
	return nil
}
