// File: layout.go
package captcha

import (
	"image"

	"github.com/pkg/errors"
)

// placement is where one transformed glyph lands on the canvas.
type placement struct {
	glyph transformed
	at    image.Point
}

// computeSpacing spreads the space the advances leave over length+1 gaps.
// The result is negative when the advances exceed width; policy decides
// whether that stands.
func computeSpacing(width int, glyphs []glyph, policy SpacingPolicy) (float64, error) {
	total := 0.0
	for _, g := range glyphs {
		total += g.advance
	}
	spacing := (float64(width) - total) / float64(len(glyphs)+1)
	if spacing >= 0 {
		return spacing, nil
	}
	switch policy {
	case SpacingClamp:
		return 0, nil
	case SpacingReject:
		return 0, errors.Wrapf(ErrNegativeSpacing, "advances %.1f exceed width %d", total, width)
	}
	return spacing, nil
}

// placeGlyphs runs a cursor left to right. Each rotated bitmap is shifted
// back by half of its growth so it stays centered on the original advance
// position, and is centered vertically in the canvas.
func placeGlyphs(height int, glyphs []glyph, shaped []transformed, spacing float64) []placement {
	out := make([]placement, len(shaped))
	x := spacing
	for i, t := range shaped {
		b := t.img.Bounds()
		px := int(x) - (b.Dx()-t.origWidth)/2
		py := int((float64(height) - float64(b.Dy())) / 2)
		out[i] = placement{glyph: t, at: image.Pt(px, py)}

		x += glyphs[i].advance + spacing
	}
	return out
}
