// File: font.go
package captcha

import (
	"os"

	"github.com/golang/freetype/truetype"
	"github.com/pkg/errors"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
)

// Font is a parsed TrueType font. It is read-only after construction and
// can be shared by any number of generators.
type Font struct {
	name string
	tt   *truetype.Font
}

// ParseFont parses TrueType data.
func ParseFont(data []byte) (*Font, error) {
	tt, err := truetype.Parse(data)
	if err != nil {
		return nil, errors.Wrapf(ErrFont, "parse: %v", err)
	}
	return &Font{name: tt.Name(truetype.NameIDFontFullName), tt: tt}, nil
}

// LoadFont reads and parses the font file at path. Call it once at
// startup and pass the result to NewGenerator.
func LoadFont(path string) (*Font, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(ErrFont, "read %s: %v", path, err)
	}
	f, err := ParseFont(data)
	if err != nil {
		return nil, errors.WithMessage(err, path)
	}
	return f, nil
}

// DefaultFont returns the Go Regular font bundled with x/image.
func DefaultFont() (*Font, error) {
	return ParseFont(goregular.TTF)
}

// Name is the font's full name, if it declares one.
func (f *Font) Name() string { return f.name }

// face builds a fresh face at size pixels per em. truetype faces cache
// glyphs internally, so every generation call needs its own.
func (f *Font) face(size float64) font.Face {
	return truetype.NewFace(f.tt, &truetype.Options{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingNone,
	})
}
