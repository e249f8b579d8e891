// File: glyph.go
package captcha

import (
	"image"

	"github.com/pkg/errors"
	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// glyph is one rasterized character: a coverage mask plus metrics.
type glyph struct {
	r       rune
	mask    *image.Alpha
	width   int
	height  int
	advance float64
}

// rasterize renders r with face. The mask is copied out of the face's
// cache into a bitmap whose origin is (0, 0).
func rasterize(face font.Face, r rune) (glyph, error) {
	dr, src, sp, adv, ok := face.Glyph(fixed.Point26_6{}, r)
	if !ok {
		return glyph{}, errors.Wrapf(ErrFont, "no glyph for %q", r)
	}
	w, h := dr.Dx(), dr.Dy()
	mask := &image.Alpha{
		Pix:    make([]uint8, w*h),
		Stride: w,
		Rect:   image.Rect(0, 0, w, h),
	}
	if err := checkBitmap(len(mask.Pix), mask.Stride, w, h, 1); err != nil {
		return glyph{}, errors.WithMessagef(err, "glyph %q", r)
	}
	if src != nil {
		draw.Draw(mask, mask.Rect, src, sp, draw.Src)
	}
	return glyph{
		r:       r,
		mask:    mask,
		width:   w,
		height:  h,
		advance: fixedToFloat64(adv),
	}, nil
}

// rasterizeText renders text at size pixels per em. A size of zero gives
// empty glyphs: truetype would otherwise fall back to its 12pt default.
func rasterizeText(f *Font, size int, text string) ([]glyph, error) {
	glyphs := make([]glyph, 0, len(text))
	if size <= 0 {
		for _, r := range text {
			glyphs = append(glyphs, emptyGlyph(r))
		}
		return glyphs, nil
	}
	face := f.face(float64(size))
	for _, r := range text {
		g, err := rasterize(face, r)
		if err != nil {
			return nil, err
		}
		glyphs = append(glyphs, g)
	}
	return glyphs, nil
}

func emptyGlyph(r rune) glyph {
	return glyph{r: r, mask: image.NewAlpha(image.Rectangle{})}
}

// checkBitmap verifies that a raw buffer of n bytes holds exactly a
// w x h image with bpp bytes per pixel at the given stride.
func checkBitmap(n, stride, w, h, bpp int) error {
	if w < 0 || h < 0 || stride < w*bpp {
		return errors.Wrapf(ErrBitmapSize, "%dx%d with stride %d", w, h, stride)
	}
	if want := stride * h; n != want {
		return errors.Wrapf(ErrBitmapSize, "%dx%d needs %d bytes, have %d", w, h, want, n)
	}
	return nil
}

func fixedToFloat64(v fixed.Int26_6) float64 {
	return float64(v) / 64
}
