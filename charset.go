// File: charset.go
package captcha

import (
	"math/rand/v2"
	"strings"
)

// Alphabet holds the challenge symbols. 0/1/O/I/l/o are left out
// because they are easy to confuse.
const Alphabet = "23456789ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnpqrstuvwxyz"

// SampleText draws n symbols from Alphabet, uniformly and with replacement.
func SampleText(rng *rand.Rand, n int) string {
	var sb strings.Builder
	sb.Grow(n)
	for i := 0; i < n; i++ {
		sb.WriteByte(Alphabet[rng.IntN(len(Alphabet))])
	}
	return sb.String()
}

// InAlphabet reports whether every rune of s is a challenge symbol.
func InAlphabet(s string) bool {
	for _, r := range s {
		if !strings.ContainsRune(Alphabet, r) {
			return false
		}
	}
	return true
}

// NewRand returns a seeded source so a fixed seed reproduces an image.
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}
