package starmotion

import (
	"image/color"
	"math"
)

// Overlay rendering constants.
const (
	maskTintAlpha  = 0.35 // peak opacity of the range tint
	arrowLength    = 9.0  // arrowhead side length in pixels
	arrowAngle     = math.Pi * 5 / 6
	overlaySamples = 2.0 // line stamp spacing divisor
)

// renderOverlay draws the editable stroke visualization for a layer
// onto dst: the influence mask as a translucent tint in the layer's
// range color, and each motion trail as a polyline with an arrowhead
// pointing along its final segment. Shown while the layer is idle;
// playback replaces it with warped frames.
func renderOverlay(dst *Pixmap, l *Layer) {
	tintMask(dst, l.Field().Mask(), l.RangeColor)
	for _, t := range l.Trails() {
		paintTrail(dst, t, l.MotionColor)
	}
}

func tintMask(dst *Pixmap, mask *InfluenceMask, c color.RGBA) {
	w, h := dst.Width(), dst.Height()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			mw := mask.At(x, y)
			if mw <= 0 {
				continue
			}
			blendPixel(dst, x, y, c, mw*maskTintAlpha)
		}
	}
}

func paintTrail(dst *Pixmap, t MotionTrail, c color.RGBA) {
	if len(t.Points) == 0 {
		return
	}
	for i := 1; i < len(t.Points); i++ {
		drawLine(dst, t.Points[i-1], t.Points[i], c)
	}
	if len(t.Points) >= 2 {
		drawArrowhead(dst, t.Points[len(t.Points)-2], t.Points[len(t.Points)-1], c)
	}
}

// drawArrowhead draws two barbs at the trail end, angled back from the
// direction of the final segment.
func drawArrowhead(dst *Pixmap, from, to Point, c color.RGBA) {
	dir := to.Sub(from).Normalize()
	if dir == (Point{}) {
		return
	}
	angle := math.Atan2(dir.Y, dir.X)
	for _, a := range [2]float64{angle + arrowAngle, angle - arrowAngle} {
		tip := Pt(to.X+math.Cos(a)*arrowLength, to.Y+math.Sin(a)*arrowLength)
		drawLine(dst, to, tip, c)
	}
}

// drawLine stamps the segment at sub-pixel steps. Stamp spacing is a
// half pixel, dense enough that the polyline reads as solid.
func drawLine(dst *Pixmap, a, b Point, c color.RGBA) {
	dist := a.Distance(b)
	steps := int(math.Ceil(dist * overlaySamples))
	if steps < 1 {
		blendPixel(dst, int(a.X+0.5), int(a.Y+0.5), c, 1)
		return
	}
	for s := 0; s <= steps; s++ {
		p := a.Lerp(b, float64(s)/float64(steps))
		blendPixel(dst, int(p.X+0.5), int(p.Y+0.5), c, 1)
	}
}

// blendPixel composites c over the destination pixel at the given
// opacity.
func blendPixel(dst *Pixmap, x, y int, c color.RGBA, alpha float64) {
	if x < 0 || x >= dst.Width() || y < 0 || y >= dst.Height() || alpha <= 0 {
		return
	}
	if alpha > 1 {
		alpha = 1
	}
	r, g, b, a := dst.RGBA(x, y)
	sa := alpha * float64(c.A) / 255
	blend := func(s uint8, d uint8) uint8 {
		return uint8(float64(s)*sa + float64(d)*(1-sa) + 0.5)
	}
	dst.SetRGBA(x, y,
		blend(c.R, r),
		blend(c.G, g),
		blend(c.B, b),
		blend(255, a))
}
