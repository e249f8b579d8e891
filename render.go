// File: render.go

// Package captcha renders text challenge images: random unambiguous
// characters, each rotated a little, laid out over a plain background and
// crossed by random strokes.
package captcha

import (
	"image"
	"image/color"
	"io"
	"math/rand/v2"
	"time"

	"github.com/charmbracelet/log"
	"github.com/pkg/errors"
)

// Generator renders challenges for one Config and Font. It holds no
// mutable state, so one Generator may serve concurrent calls as long as
// each call brings its own *rand.Rand.
type Generator struct {
	cfg    Config
	font   *Font
	fill   color.Color
	logger *log.Logger
}

// Option customizes a Generator.
type Option func(*Generator)

// WithLogger sets the logger used for per-call debug output.
func WithLogger(l *log.Logger) Option {
	return func(g *Generator) {
		if l != nil {
			g.logger = l
		}
	}
}

// NewGenerator validates cfg and binds it to f.
func NewGenerator(cfg Config, f *Font, opts ...Option) (*Generator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if f == nil {
		return nil, errors.Wrap(ErrFont, "nil font")
	}
	g := &Generator{
		cfg:    cfg,
		font:   f,
		logger: log.New(io.Discard),
	}
	if cfg.RotationFill != nil {
		g.fill = cfg.RotationFill.NRGBA(0xff)
	}
	for _, opt := range opts {
		opt(g)
	}
	return g, nil
}

// Config returns the configuration the generator was built with.
func (g *Generator) Config() Config { return g.cfg }

// Render draws a fresh challenge and returns its text and canvas.
func (g *Generator) Render(rng *rand.Rand) (string, *image.RGBA, error) {
	start := time.Now()
	cfg := g.cfg

	text := SampleText(rng, cfg.Length)
	size := cfg.FontSize()

	// 每次调用单独建 face，Font 本身只读
	glyphs, err := rasterizeText(g.font, size, text)
	if err != nil {
		return "", nil, err
	}

	canvas, spacing, err := g.compose(glyphs, rng)
	if err != nil {
		return "", nil, err
	}

	g.logger.Debug("rendered challenge",
		"length", len(text),
		"size", size,
		"spacing", spacing,
		"elapsed", time.Since(start).Round(time.Microsecond))
	return text, canvas, nil
}

// compose lays the rasterized glyphs out on a fresh canvas and adds the
// noise strokes.
func (g *Generator) compose(glyphs []glyph, rng *rand.Rand) (*image.RGBA, float64, error) {
	cfg := g.cfg

	spacing, err := computeSpacing(cfg.Width, glyphs, cfg.Spacing)
	if err != nil {
		return nil, 0, err
	}

	shaped := make([]transformed, len(glyphs))
	for i, gl := range glyphs {
		t, err := rotateGlyph(gl, cfg.Color, randomAngle(rng), g.fill)
		if err != nil {
			return nil, 0, err
		}
		shaped[i] = t
	}

	canvas := newCanvas(cfg.Width, cfg.Height, cfg.Background)
	for _, p := range placeGlyphs(cfg.Height, glyphs, shaped, spacing) {
		Overlay(canvas, p.glyph.img, p.at.X, p.at.Y)
	}

	drawNoise(canvas, rng, cfg.Lines, cfg.Curves)
	return canvas, spacing, nil
}

// Generate returns the challenge text and the PNG bytes of its image.
func (g *Generator) Generate(rng *rand.Rand) (string, []byte, error) {
	text, canvas, err := g.Render(rng)
	if err != nil {
		return "", nil, err
	}
	data, err := EncodePNG(canvas)
	if err != nil {
		return "", nil, err
	}
	return text, data, nil
}

// GenerateBase64 is Generate with the image base64-encoded.
func (g *Generator) GenerateBase64(rng *rand.Rand) (string, string, error) {
	text, data, err := g.Generate(rng)
	if err != nil {
		return "", "", err
	}
	return text, EncodeBase64(data), nil
}

// Generate is a one-shot helper for callers that do not keep a Generator.
func Generate(cfg Config, f *Font, rng *rand.Rand) (string, []byte, error) {
	g, err := NewGenerator(cfg, f)
	if err != nil {
		return "", nil, err
	}
	return g.Generate(rng)
}
