package captcha

import (
	"errors"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	if cfg.Length != 4 || cfg.Width != 240 || cfg.Height != 80 {
		t.Errorf("defaults = %d chars %dx%d", cfg.Length, cfg.Width, cfg.Height)
	}
	if cfg.Color != Black || cfg.Background != White {
		t.Errorf("colors = %v on %v", cfg.Color, cfg.Background)
	}
	if cfg.RotationFill != nil {
		t.Errorf("rotation fill = %v, want transparent", cfg.RotationFill)
	}
	if got := cfg.FontSize(); got != 60 {
		t.Errorf("FontSize() = %d, want 60", got)
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero length", func(c *Config) { c.Length = 0 }},
		{"negative width", func(c *Config) { c.Width = -1 }},
		{"zero height", func(c *Config) { c.Height = 0 }},
		{"negative lines", func(c *Config) { c.Lines = -2 }},
		{"negative curves", func(c *Config) { c.Curves = -1 }},
		{"unknown policy", func(c *Config) { c.Spacing = SpacingPolicy(9) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			if err := cfg.Validate(); !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("Validate() = %v, want ErrInvalidConfig", err)
			}
		})
	}
}

func TestFontSize(t *testing.T) {
	tests := []struct {
		length, width, height, want int
	}{
		{4, 240, 80, 60},
		{2, 240, 80, 80},
		{6, 60, 80, 10},
		{5, 12, 80, 2},
	}
	for _, tt := range tests {
		cfg := Config{Length: tt.length, Width: tt.width, Height: tt.height}
		if got := cfg.FontSize(); got != tt.want {
			t.Errorf("FontSize(%d, %dx%d) = %d, want %d", tt.length, tt.width, tt.height, got, tt.want)
		}
	}
}

func TestParseRGB(t *testing.T) {
	tests := []struct {
		in      string
		want    RGB
		wantErr bool
	}{
		{"#000000", Black, false},
		{"#ffffff", White, false},
		{"1a2b3c", RGB{0x1a, 0x2b, 0x3c}, false},
		{" #FF8000 ", RGB{0xff, 0x80, 0x00}, false},
		{"#fff", White, false},
		{"#12345", RGB{}, true},
		{"red", RGB{}, true},
	}
	for _, tt := range tests {
		got, err := ParseRGB(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseRGB(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if err != nil {
			if !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("ParseRGB(%q) error %v is not ErrInvalidConfig", tt.in, err)
			}
			continue
		}
		if got != tt.want {
			t.Errorf("ParseRGB(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestRGBText(t *testing.T) {
	c := RGB{0x12, 0xab, 0xef}
	text, err := c.MarshalText()
	if err != nil {
		t.Fatal(err)
	}
	var back RGB
	if err := back.UnmarshalText(text); err != nil {
		t.Fatal(err)
	}
	if back != c {
		t.Errorf("text round trip = %v, want %v", back, c)
	}
}

func TestSpacingPolicyText(t *testing.T) {
	for _, p := range []SpacingPolicy{SpacingOverlap, SpacingClamp, SpacingReject} {
		text, _ := p.MarshalText()
		var back SpacingPolicy
		if err := back.UnmarshalText(text); err != nil {
			t.Fatalf("UnmarshalText(%q) error = %v", text, err)
		}
		if back != p {
			t.Errorf("round trip %v -> %q -> %v", p, text, back)
		}
	}

	var p SpacingPolicy
	if err := p.UnmarshalText([]byte("CLAMP")); err != nil || p != SpacingClamp {
		t.Errorf("UnmarshalText(CLAMP) = %v, %v", p, err)
	}
	if err := p.UnmarshalText([]byte("squeeze")); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("UnmarshalText(squeeze) error = %v", err)
	}
}
