// File: transform.go
package captcha

import (
	"image"
	"image/color"
	"math"
	"math/rand/v2"

	"github.com/pkg/errors"
	"golang.org/x/image/draw"
	"golang.org/x/image/math/f64"
)

// MaxRotation bounds the random glyph rotation, in radians.
const MaxRotation = math.Pi / 8

// transformed is a glyph ready for compositing.
type transformed struct {
	img *image.RGBA
	// origWidth is the pre-rotation glyph width, used to recenter the
	// larger rotated bitmap on the advance position.
	origWidth int
	angle     float64
}

// colorize turns a coverage mask into fg-colored pixels whose alpha is
// the coverage. The mask must be a tightly packed bitmap, as rasterize
// produces.
func colorize(mask *image.Alpha, fg RGB) (*image.NRGBA, error) {
	b := mask.Bounds()
	w, h := b.Dx(), b.Dy()
	if err := checkBitmap(len(mask.Pix), mask.Stride, w, h, 1); err != nil {
		return nil, err
	}
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			a := mask.AlphaAt(b.Min.X+x, b.Min.Y+y).A
			i := img.PixOffset(x, y)
			img.Pix[i+0] = fg.R
			img.Pix[i+1] = fg.G
			img.Pix[i+2] = fg.B
			img.Pix[i+3] = a
		}
	}
	return img, nil
}

// randomAngle is uniform in [-MaxRotation, MaxRotation].
func randomAngle(rng *rand.Rand) float64 {
	return MaxRotation * (rng.Float64()*2 - 1)
}

// rotateGlyph colorizes g, grows it to its rotated bounding box and
// rotates it about the center by angle. Pixels that map outside the
// expanded bitmap take fill.
func rotateGlyph(g glyph, fg RGB, angle float64, fill color.Color) (transformed, error) {
	if g.width == 0 || g.height == 0 {
		return transformed{img: image.NewRGBA(image.Rectangle{}), angle: angle}, nil
	}

	src, err := colorize(g.mask, fg)
	if err != nil {
		return transformed{}, errors.WithMessagef(err, "colorize %q", g.r)
	}

	rw, rh := RotatedRectSize(float64(g.width), float64(g.height), angle)
	w, h := int(rw), int(rh)

	expanded := image.NewRGBA(image.Rect(0, 0, w, h))
	Overlay(expanded, src, (w-g.width)/2, (h-g.height)/2)

	rotated := image.NewRGBA(expanded.Rect)
	if fill != nil {
		draw.Draw(rotated, rotated.Rect, image.NewUniform(fill), image.Point{}, draw.Src)
	}
	draw.BiLinear.Transform(rotated, rotationAbout(angle, float64(w)/2, float64(h)/2), expanded, expanded.Rect, draw.Src, nil)

	return transformed{img: rotated, origWidth: g.width, angle: angle}, nil
}

// rotationAbout maps source to destination coordinates, rotating by
// angle about (cx, cy). Positive angles turn clockwise on screen.
func rotationAbout(angle, cx, cy float64) f64.Aff3 {
	cos, sin := math.Cos(angle), math.Sin(angle)
	return f64.Aff3{
		cos, -sin, cx - cos*cx + sin*cy,
		sin, cos, cy - sin*cx - cos*cy,
	}
}
