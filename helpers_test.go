package captcha

import (
	"image"
	"testing"
)

func mustDefaultFont(t testing.TB) *Font {
	t.Helper()
	f, err := DefaultFont()
	if err != nil {
		t.Fatalf("DefaultFont() error = %v", err)
	}
	return f
}

// solidGlyph is a fully covered w x h glyph with the given advance.
func solidGlyph(w, h int, advance float64) glyph {
	mask := image.NewAlpha(image.Rect(0, 0, w, h))
	for i := range mask.Pix {
		mask.Pix[i] = 0xff
	}
	return glyph{r: 'X', mask: mask, width: w, height: h, advance: advance}
}

func cloneRGBA(src *image.RGBA) *image.RGBA {
	dst := image.NewRGBA(src.Rect)
	copy(dst.Pix, src.Pix)
	return dst
}
