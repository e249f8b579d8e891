// File: noise.go
package captcha

import (
	"image"
	"image/color"
	"math/rand/v2"

	"github.com/fogleman/gg"
)

const (
	lineAlpha  = 0xff
	curveAlpha = 128
)

// stroke is one noise mark. Lines ignore the control point.
type stroke struct {
	curve          bool
	x1, y1, x2, y2 float64
	cx, cy         float64
	color          color.NRGBA
}

func randomRGB(rng *rand.Rand) RGB {
	return RGB{
		R: uint8(rng.IntN(256)),
		G: uint8(rng.IntN(256)),
		B: uint8(rng.IntN(256)),
	}
}

// intRange is uniform in [lo, hi), or lo when the range is empty.
func intRange(rng *rand.Rand, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + rng.IntN(hi-lo)
}

// randomLine is an opaque segment between two random points.
func randomLine(rng *rand.Rand, w, h int) stroke {
	x1, y1 := rng.IntN(w), rng.IntN(h)
	x2, y2 := rng.IntN(w), rng.IntN(h)
	return stroke{
		x1: float64(x1), y1: float64(y1),
		x2: float64(x2), y2: float64(y2),
		color: randomRGB(rng).NRGBA(lineAlpha),
	}
}

// randomCurve runs from the left edge to the right edge. Both cubic
// control points coincide, which gives a single bulge.
func randomCurve(rng *rand.Rand, w, h int) stroke {
	y1 := rng.IntN(h)
	y2 := rng.IntN(h)
	cx := intRange(rng, w/4, w/4*3)
	cy := rng.IntN(h)
	return stroke{
		curve: true,
		x1:    0, y1: float64(y1),
		x2: float64(w), y2: float64(y2),
		cx: float64(cx), cy: float64(cy),
		color: randomRGB(rng).NRGBA(curveAlpha),
	}
}

// overlay draws s alone on a transparent w x h buffer.
func (s stroke) overlay(w, h int) image.Image {
	dc := gg.NewContext(w, h)
	dc.MoveTo(s.x1, s.y1)
	if s.curve {
		dc.CubicTo(s.cx, s.cy, s.cx, s.cy, s.x2, s.y2)
	} else {
		dc.LineTo(s.x2, s.y2)
	}
	dc.SetColor(s.color)
	dc.Stroke()
	return dc.Image()
}

func drawStroke(canvas *image.RGBA, s stroke) {
	Overlay(canvas, s.overlay(canvas.Rect.Dx(), canvas.Rect.Dy()), 0, 0)
}

func drawLine(canvas *image.RGBA, rng *rand.Rand) {
	drawStroke(canvas, randomLine(rng, canvas.Rect.Dx(), canvas.Rect.Dy()))
}

func drawCurve(canvas *image.RGBA, rng *rand.Rand) {
	drawStroke(canvas, randomCurve(rng, canvas.Rect.Dx(), canvas.Rect.Dy()))
}

// noiseStrokes lists all lines first, then all curves.
func noiseStrokes(rng *rand.Rand, w, h, lines, curves int) []stroke {
	out := make([]stroke, 0, lines+curves)
	for i := 0; i < lines; i++ {
		out = append(out, randomLine(rng, w, h))
	}
	for i := 0; i < curves; i++ {
		out = append(out, randomCurve(rng, w, h))
	}
	return out
}

// drawNoise merges each stroke as soon as it is drawn, so later strokes sit
// on top of earlier ones and of the glyphs.
func drawNoise(canvas *image.RGBA, rng *rand.Rand, lines, curves int) {
	for _, s := range noiseStrokes(rng, canvas.Rect.Dx(), canvas.Rect.Dy(), lines, curves) {
		drawStroke(canvas, s)
	}
}
