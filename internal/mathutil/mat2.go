package mathutil

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// Mat2 is the linear part of a 2D affine transform. Columns are (A, B) and (C, D):
//
//	x' = A*x + C*y
//	y' = B*x + D*y
//
// Value type for zero heap allocation.
type Mat2 struct {
	A, B, C, D float64
}

func Identity2() Mat2 {
	return Mat2{A: 1, D: 1}
}

func Diag2(x, y float64) Mat2 {
	return Mat2{A: x, D: y}
}

// FromColumns builds a matrix whose columns are c1 and c2.
func FromColumns(c1, c2 r2.Vec) Mat2 {
	return Mat2{A: c1.X, B: c1.Y, C: c2.X, D: c2.Y}
}

// Mul returns a × b.
func Mul(a, b Mat2) Mat2 {
	return Mat2{
		A: a.A*b.A + a.C*b.B,
		B: a.B*b.A + a.D*b.B,
		C: a.A*b.C + a.C*b.D,
		D: a.B*b.C + a.D*b.D,
	}
}

// Apply returns M × v.
func (m Mat2) Apply(v r2.Vec) r2.Vec {
	return r2.Vec{
		X: m.A*v.X + m.C*v.Y,
		Y: m.B*v.X + m.D*v.Y,
	}
}

func (m Mat2) Det() float64 {
	return m.A*m.D - m.B*m.C
}

// Inverse returns the inverse of m. A determinant smaller than Epsilon in
// magnitude is replaced by ±Epsilon, so the result is always finite but only
// approximate for near-singular input.
func (m Mat2) Inverse() Mat2 {
	d := m.Det()
	if math.Abs(d) < Epsilon {
		if d < 0 {
			d = -Epsilon
		} else {
			d = Epsilon
		}
	}
	invD := 1.0 / d
	return Mat2{
		A: m.D * invD,
		B: -m.B * invD,
		C: -m.C * invD,
		D: m.A * invD,
	}
}

func (m Mat2) Transpose() Mat2 {
	return Mat2{A: m.A, B: m.C, C: m.B, D: m.D}
}

// Col1 and Col2 return the images of the unit axes.
func (m Mat2) Col1() r2.Vec { return r2.Vec{X: m.A, Y: m.B} }
func (m Mat2) Col2() r2.Vec { return r2.Vec{X: m.C, Y: m.D} }

// Equal reports whether every element of m and n differs by at most tol.
func (m Mat2) Equal(n Mat2, tol float64) bool {
	return math.Abs(m.A-n.A) <= tol &&
		math.Abs(m.B-n.B) <= tol &&
		math.Abs(m.C-n.C) <= tol &&
		math.Abs(m.D-n.D) <= tol
}
