package captcha

import (
	"strings"
	"testing"
)

func TestAlphabet(t *testing.T) {
	seen := make(map[rune]bool)
	for _, r := range Alphabet {
		if seen[r] {
			t.Errorf("duplicate symbol %q", r)
		}
		seen[r] = true
	}
	if len(seen) != 56 {
		t.Errorf("alphabet has %d symbols, want 56", len(seen))
	}
	if strings.ContainsAny(Alphabet, "01OIlo") {
		t.Errorf("alphabet contains an ambiguous symbol: %q", Alphabet)
	}
}

func TestSampleText(t *testing.T) {
	rng := NewRand(1)
	for _, n := range []int{0, 1, 4, 6, 32} {
		s := SampleText(rng, n)
		if len(s) != n {
			t.Errorf("SampleText(%d) length = %d", n, len(s))
		}
		if !InAlphabet(s) {
			t.Errorf("SampleText(%d) = %q has symbols outside the alphabet", n, s)
		}
	}
}

func TestSampleTextDeterministic(t *testing.T) {
	a := SampleText(NewRand(99), 16)
	b := SampleText(NewRand(99), 16)
	if a != b {
		t.Errorf("same seed gave %q and %q", a, b)
	}
	if c := SampleText(NewRand(100), 16); c == a {
		t.Errorf("different seeds both gave %q", a)
	}
}

func TestSampleTextCoversAlphabet(t *testing.T) {
	s := SampleText(NewRand(7), 20000)
	for _, r := range Alphabet {
		if !strings.ContainsRune(s, r) {
			t.Errorf("symbol %q never drawn", r)
		}
	}
}

func TestInAlphabet(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"", true},
		{"abc2", true},
		{"ab0", false},
		{"Hello", false},
		{"XYZ9", true},
	}
	for _, tt := range tests {
		if got := InAlphabet(tt.in); got != tt.want {
			t.Errorf("InAlphabet(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
