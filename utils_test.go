package captcha

import (
	"math"
	"testing"
)

const eps = 1e-9

func TestRotatedRectSizeZeroAngle(t *testing.T) {
	for _, size := range [][2]float64{{10, 20}, {33, 7}, {1, 1}, {0, 5}} {
		w, h := RotatedRectSize(size[0], size[1], 0)
		if w != size[0] || h != size[1] {
			t.Errorf("RotatedRectSize(%v, %v, 0) = (%v, %v), want exact input", size[0], size[1], w, h)
		}
	}
}

func TestRotatedRectSizeQuarterTurn(t *testing.T) {
	w, h := RotatedRectSize(10, 20, math.Pi/2)
	if math.Abs(w-20) > eps || math.Abs(h-10) > eps {
		t.Errorf("RotatedRectSize(10, 20, pi/2) = (%v, %v), want (20, 10)", w, h)
	}
}

func TestRotatedRectSizeSymmetric(t *testing.T) {
	angles := []float64{0.01, 0.2, math.Pi / 8, 1, math.Pi / 3, 2.5}
	for _, a := range angles {
		w1, h1 := RotatedRectSize(17, 29, a)
		w2, h2 := RotatedRectSize(17, 29, -a)
		if math.Abs(w1-w2) > eps || math.Abs(h1-h2) > eps {
			t.Errorf("angle %v: (%v, %v) != (%v, %v) for negated angle", a, w1, h1, w2, h2)
		}
	}
}

func TestRotatedRectSizeSquareDiagonal(t *testing.T) {
	w, h := RotatedRectSize(10, 10, math.Pi/4)
	want := 10 * math.Sqrt2
	if math.Abs(w-want) > eps || math.Abs(h-want) > eps {
		t.Errorf("RotatedRectSize(10, 10, pi/4) = (%v, %v), want %v each", w, h, want)
	}
}

func TestRotatedRectSizeClosedForm(t *testing.T) {
	// |w cos| + |h sin| for the width, |w sin| + |h cos| for the height.
	for _, a := range []float64{-MaxRotation, -0.1, 0.3, MaxRotation} {
		w, h := RotatedRectSize(12, 40, a)
		c, s := math.Abs(math.Cos(a)), math.Abs(math.Sin(a))
		if math.Abs(w-(12*c+40*s)) > eps || math.Abs(h-(12*s+40*c)) > eps {
			t.Errorf("angle %v: got (%v, %v)", a, w, h)
		}
	}
}
