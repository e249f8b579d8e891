// File: config.go
package captcha

import "github.com/pkg/errors"

// Config describes one kind of challenge image.
type Config struct {
	Length     int `toml:"length"`
	Width      int `toml:"width"`
	Height     int `toml:"height"`
	Color      RGB `toml:"color"`
	Background RGB `toml:"background"`

	// 干扰线数量
	Lines  int `toml:"lines"`
	Curves int `toml:"curves"`

	Spacing SpacingPolicy `toml:"spacing"`

	// RotationFill colors the pixels a rotated glyph exposes at its
	// corners. Nil leaves them transparent; White reproduces the old
	// boxed look on non-white backgrounds.
	RotationFill *RGB `toml:"rotation_fill"`
}

const (
	DefaultLength = 4
	DefaultWidth  = 240
	DefaultHeight = 80
	DefaultLines  = 5
	DefaultCurves = 2
)

// DefaultConfig returns a 240x80 image with four black characters on white.
func DefaultConfig() Config {
	return Config{
		Length:     DefaultLength,
		Width:      DefaultWidth,
		Height:     DefaultHeight,
		Color:      Black,
		Background: White,
		Lines:      DefaultLines,
		Curves:     DefaultCurves,
		Spacing:    SpacingOverlap,
	}
}

// Validate reports whether the config can produce an image.
func (c Config) Validate() error {
	switch {
	case c.Length <= 0:
		return errors.Wrapf(ErrInvalidConfig, "length must be positive, got %d", c.Length)
	case c.Width <= 0:
		return errors.Wrapf(ErrInvalidConfig, "width must be positive, got %d", c.Width)
	case c.Height <= 0:
		return errors.Wrapf(ErrInvalidConfig, "height must be positive, got %d", c.Height)
	case c.Lines < 0:
		return errors.Wrapf(ErrInvalidConfig, "lines must not be negative, got %d", c.Lines)
	case c.Curves < 0:
		return errors.Wrapf(ErrInvalidConfig, "curves must not be negative, got %d", c.Curves)
	}
	if _, ok := spacingNames[c.Spacing]; !ok {
		return errors.Wrapf(ErrInvalidConfig, "unknown spacing policy %d", int(c.Spacing))
	}
	return nil
}

// FontSize is the largest pixel size that lets Length glyphs share the
// width while still fitting the height.
func (c Config) FontSize() int {
	return min(c.Width/c.Length, c.Height)
}
