package starmotion

import (
	"bytes"
	"image"
	"image/png"
	"os"

	xdraw "golang.org/x/image/draw"
)

// Pixmap represents a rectangular pixel buffer.
// Pixels are stored in RGBA format, 4 bytes per pixel.
type Pixmap struct {
	width  int
	height int
	data   []uint8
}

// NewPixmap creates a new pixmap with the given dimensions.
// All pixels start fully transparent.
func NewPixmap(width, height int) *Pixmap {
	return &Pixmap{
		width:  width,
		height: height,
		data:   make([]uint8, width*height*4),
	}
}

// Width returns the width of the pixmap.
func (p *Pixmap) Width() int { return p.width }

// Height returns the height of the pixmap.
func (p *Pixmap) Height() int { return p.height }

// Data returns the raw pixel data (RGBA format).
func (p *Pixmap) Data() []uint8 { return p.data }

// SetRGBA sets the color of a single pixel.
// Coordinates outside the pixmap bounds are ignored.
func (p *Pixmap) SetRGBA(x, y int, r, g, b, a uint8) {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return
	}
	i := (y*p.width + x) * 4
	p.data[i+0] = r
	p.data[i+1] = g
	p.data[i+2] = b
	p.data[i+3] = a
}

// RGBA returns the color of a single pixel.
// Returns transparent black for coordinates outside the pixmap bounds.
func (p *Pixmap) RGBA(x, y int) (r, g, b, a uint8) {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return 0, 0, 0, 0
	}
	i := (y*p.width + x) * 4
	return p.data[i+0], p.data[i+1], p.data[i+2], p.data[i+3]
}

// Sample returns the bilinearly interpolated color at a fractional
// position. Positions outside the pixmap clamp to the nearest edge
// pixel, so warps that pull from beyond the border smear the edge
// instead of introducing transparent holes.
func (p *Pixmap) Sample(x, y float64) (r, g, b, a uint8) {
	if p.width == 0 || p.height == 0 {
		return 0, 0, 0, 0
	}
	x = clampFloat(x, 0, float64(p.width-1))
	y = clampFloat(y, 0, float64(p.height-1))

	x0 := int(x)
	y0 := int(y)
	x1 := x0 + 1
	y1 := y0 + 1
	if x1 >= p.width {
		x1 = p.width - 1
	}
	if y1 >= p.height {
		y1 = p.height - 1
	}
	fx := x - float64(x0)
	fy := y - float64(y0)

	i00 := (y0*p.width + x0) * 4
	i10 := (y0*p.width + x1) * 4
	i01 := (y1*p.width + x0) * 4
	i11 := (y1*p.width + x1) * 4

	lerp2 := func(c int) uint8 {
		top := float64(p.data[i00+c])*(1-fx) + float64(p.data[i10+c])*fx
		bot := float64(p.data[i01+c])*(1-fx) + float64(p.data[i11+c])*fx
		return uint8(top*(1-fy) + bot*fy + 0.5)
	}
	return lerp2(0), lerp2(1), lerp2(2), lerp2(3)
}

// Clone creates a deep copy of the pixmap.
func (p *Pixmap) Clone() *Pixmap {
	clone := NewPixmap(p.width, p.height)
	copy(clone.data, p.data)
	return clone
}

// CopyFrom overwrites this pixmap's contents with src.
// Both pixmaps must have identical dimensions; mismatches are ignored.
func (p *Pixmap) CopyFrom(src *Pixmap) {
	if src == nil || src.width != p.width || src.height != p.height {
		return
	}
	copy(p.data, src.data)
}

// ToImage converts the pixmap to an image.RGBA.
func (p *Pixmap) ToImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, p.width, p.height))
	copy(img.Pix, p.data)
	return img
}

// FromImage creates a pixmap from an image.
func FromImage(img image.Image) *Pixmap {
	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()
	pm := NewPixmap(width, height)

	if rgba, ok := img.(*image.RGBA); ok && rgba.Stride == width*4 {
		copy(pm.data, rgba.Pix)
		return pm
	}
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			r, g, b, a := img.At(bounds.Min.X+x, bounds.Min.Y+y).RGBA()
			i := (y*width + x) * 4
			pm.data[i+0] = uint8(r >> 8)
			pm.data[i+1] = uint8(g >> 8)
			pm.data[i+2] = uint8(b >> 8)
			pm.data[i+3] = uint8(a >> 8)
		}
	}
	return pm
}

// FitPixmap scales src to the given dimensions using bilinear
// interpolation. It returns src unchanged when the dimensions already
// match.
func FitPixmap(src *Pixmap, width, height int) *Pixmap {
	if src.width == width && src.height == height {
		return src
	}
	img := src.ToImage()
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	xdraw.BiLinear.Scale(dst, dst.Bounds(), img, img.Bounds(), xdraw.Src, nil)
	return FromImage(dst)
}

// SavePNG saves the pixmap to a PNG file.
func (p *Pixmap) SavePNG(path string) error {
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	defer func() {
		_ = f.Close()
	}()
	return png.Encode(f, p.ToImage())
}

// EncodePNG returns the pixmap encoded as PNG bytes.
func (p *Pixmap) EncodePNG() ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, p.ToImage()); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// LoadPNG loads a PNG file into a pixmap.
func LoadPNG(path string) (*Pixmap, error) {
	f, err := os.Open(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = f.Close()
	}()
	img, err := png.Decode(f)
	if err != nil {
		return nil, err
	}
	return FromImage(img), nil
}

func clampFloat(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
