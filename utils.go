// File: utils.go
package captcha

import "math"

// RotatedRectSize returns the axis-aligned bounding box of a w x h
// rectangle rotated by angle radians about its center.
func RotatedRectSize(w, h, angle float64) (float64, float64) {
	cos, sin := math.Cos(angle), math.Sin(angle)
	hw, hh := w/2, h/2

	// 四个角点，相对中心
	corners := [4][2]float64{{-hw, -hh}, {hw, -hh}, {hw, hh}, {-hw, hh}}

	minX, maxX := math.Inf(1), math.Inf(-1)
	minY, maxY := math.Inf(1), math.Inf(-1)
	for _, p := range corners {
		rx := p[0]*cos - p[1]*sin
		ry := p[0]*sin + p[1]*cos
		minX = math.Min(minX, rx)
		maxX = math.Max(maxX, rx)
		minY = math.Min(minY, ry)
		maxY = math.Max(maxY, ry)
	}
	return maxX - minX, maxY - minY
}
