// File: composite.go
package captcha

import (
	"image"

	"golang.org/x/image/draw"
)

// Overlay alpha-blends src onto dst with src's top-left corner at (x, y).
// The offset may be negative or run past dst; whatever falls outside dst
// is clipped.
func Overlay(dst draw.Image, src image.Image, x, y int) {
	sb := src.Bounds()
	r := image.Rectangle{Min: image.Pt(x, y), Max: image.Pt(x+sb.Dx(), y+sb.Dy())}
	draw.Draw(dst, r, src, sb.Min, draw.Over)
}

// newCanvas returns a w x h canvas filled with opaque bg.
func newCanvas(w, h int, bg RGB) *image.RGBA {
	canvas := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(canvas, canvas.Rect, image.NewUniform(bg.NRGBA(0xff)), image.Point{}, draw.Src)
	return canvas
}
