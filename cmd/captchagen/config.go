// File: config.go
package main

import (
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"
	"github.com/pkg/errors"
	"github.com/spf13/pflag"

	captcha "textCaptchaAuth"
)

// fileConfig is the TOML layout:
//
//	font = "fonts/Arial.ttf"
//
//	[captcha]
//	length = 4
//	width = 240
//	height = 80
//	color = "#000000"
//	background = "#ffffff"
//	lines = 5
//	curves = 2
//	spacing = "overlap"
//	rotation_fill = "#ffffff"
type fileConfig struct {
	Font    string         `toml:"font"`
	Captcha captcha.Config `toml:"captcha"`
}

func defaultFileConfig() fileConfig {
	return fileConfig{Captcha: captcha.DefaultConfig()}
}

// loadFileConfig decodes path over the defaults. Keys missing from the
// file keep their default values.
func loadFileConfig(path string, logger *log.Logger) (fileConfig, error) {
	fc := defaultFileConfig()
	if path == "" {
		return fc, nil
	}
	md, err := toml.DecodeFile(path, &fc)
	if err != nil {
		return fc, errors.Wrapf(err, "load config %s", path)
	}
	for _, key := range md.Undecoded() {
		logger.Warn("unknown config key", "file", path, "key", key.String())
	}
	return fc, nil
}

// renderFlags are the per-image settings that can override the file.
type renderFlags struct {
	length, width, height int
	color, background     string
	lines, curves         int
	spacing               string
	rotationFill          string
}

func (f *renderFlags) register(fs *pflag.FlagSet) {
	def := captcha.DefaultConfig()
	fs.IntVarP(&f.length, "length", "n", def.Length, "number of characters")
	fs.IntVar(&f.width, "width", def.Width, "image width in pixels")
	fs.IntVar(&f.height, "height", def.Height, "image height in pixels")
	fs.StringVar(&f.color, "color", def.Color.Hex(), "text color (#rrggbb)")
	fs.StringVar(&f.background, "background", def.Background.Hex(), "background color (#rrggbb)")
	fs.IntVar(&f.lines, "lines", def.Lines, "number of straight noise strokes")
	fs.IntVar(&f.curves, "curves", def.Curves, "number of curved noise strokes")
	fs.StringVar(&f.spacing, "spacing", def.Spacing.String(), "negative spacing policy: overlap, clamp or reject")
	fs.StringVar(&f.rotationFill, "rotation-fill", "none", "fill for corners exposed by glyph rotation (none or #rrggbb)")
}

// apply copies the flags the user actually set onto cfg.
func (f *renderFlags) apply(fs *pflag.FlagSet, cfg *captcha.Config) error {
	if fs.Changed("length") {
		cfg.Length = f.length
	}
	if fs.Changed("width") {
		cfg.Width = f.width
	}
	if fs.Changed("height") {
		cfg.Height = f.height
	}
	if fs.Changed("lines") {
		cfg.Lines = f.lines
	}
	if fs.Changed("curves") {
		cfg.Curves = f.curves
	}
	if fs.Changed("color") {
		c, err := captcha.ParseRGB(f.color)
		if err != nil {
			return err
		}
		cfg.Color = c
	}
	if fs.Changed("background") {
		c, err := captcha.ParseRGB(f.background)
		if err != nil {
			return err
		}
		cfg.Background = c
	}
	if fs.Changed("spacing") {
		if err := cfg.Spacing.UnmarshalText([]byte(f.spacing)); err != nil {
			return err
		}
	}
	if fs.Changed("rotation-fill") {
		if strings.EqualFold(f.rotationFill, "none") {
			cfg.RotationFill = nil
		} else {
			c, err := captcha.ParseRGB(f.rotationFill)
			if err != nil {
				return err
			}
			cfg.RotationFill = &c
		}
	}
	return nil
}
