package mathutil

import "math"

// Rot2 returns a counter-clockwise rotation by a radians.
func Rot2(a float64) Mat2 {
	c, s := math.Cos(a), math.Sin(a)
	return Mat2{A: c, B: s, C: -s, D: c}
}

// Shear2 returns a matrix that shears x by k·y.
func Shear2(k float64) Mat2 {
	return Mat2{A: 1, C: k, D: 1}
}

// Angle returns the rotation of the first column, atan2(B, A), in radians.
func (m Mat2) Angle() float64 {
	return math.Atan2(m.B, m.A)
}

// Deg2Rad converts degrees to radians.
func Deg2Rad(d float64) float64 {
	return d * math.Pi / 180
}

// Rad2Deg converts radians to degrees.
func Rad2Deg(r float64) float64 {
	return r * 180 / math.Pi
}
