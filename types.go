// File: types.go
package captcha

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/pkg/errors"
)

// RGB is an 8-bit-per-channel color with named channels.
type RGB struct {
	R, G, B uint8
}

var (
	Black = RGB{0, 0, 0}
	White = RGB{255, 255, 255}
)

// NRGBA pairs the color with a straight (non-premultiplied) alpha.
func (c RGB) NRGBA(a uint8) color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: a}
}

// Hex 返回 "#rrggbb" 形式
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

func (c RGB) String() string { return c.Hex() }

// MarshalText implements encoding.TextMarshaler.
func (c RGB) MarshalText() ([]byte, error) {
	return []byte(c.Hex()), nil
}

// UnmarshalText accepts "#rrggbb" or "#rgb".
func (c *RGB) UnmarshalText(text []byte) error {
	parsed, err := ParseRGB(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// ParseRGB parses a hex color string such as "#1a2b3c".
func ParseRGB(s string) (RGB, error) {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "#") {
		s = "#" + s
	}
	if len(s) != 4 && len(s) != 7 {
		return RGB{}, errors.Wrapf(ErrInvalidConfig, "color %q", s)
	}
	col, err := colorful.Hex(s)
	if err != nil {
		return RGB{}, errors.Wrapf(ErrInvalidConfig, "color %q", s)
	}
	r, g, b := col.RGB255()
	return RGB{R: r, G: g, B: b}, nil
}

// SpacingPolicy decides what happens when the glyph advances do not fit
// the canvas width and the computed spacing goes negative.
type SpacingPolicy int

const (
	// SpacingOverlap keeps the negative spacing; glyphs overlap.
	SpacingOverlap SpacingPolicy = iota
	// SpacingClamp floors the spacing at zero; glyphs may run off the right edge.
	SpacingClamp
	// SpacingReject fails generation with ErrNegativeSpacing.
	SpacingReject
)

var spacingNames = map[SpacingPolicy]string{
	SpacingOverlap: "overlap",
	SpacingClamp:   "clamp",
	SpacingReject:  "reject",
}

func (p SpacingPolicy) String() string {
	if name, ok := spacingNames[p]; ok {
		return name
	}
	return fmt.Sprintf("SpacingPolicy(%d)", int(p))
}

func (p SpacingPolicy) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

func (p *SpacingPolicy) UnmarshalText(text []byte) error {
	want := strings.ToLower(strings.TrimSpace(string(text)))
	for policy, name := range spacingNames {
		if name == want {
			*p = policy
			return nil
		}
	}
	return errors.Wrapf(ErrInvalidConfig, "unknown spacing policy %q", want)
}
