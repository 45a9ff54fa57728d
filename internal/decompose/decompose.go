// Package decompose factors the linear part of an affine transform into an
// orthonormal frame, two axis scales and a shear coefficient, rebuilds a
// matrix from such a factoring, and solves for the correction that carries
// one matrix to another.
package decompose

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"

	"xform-reset/internal/mathutil"
)

// Decomposition is the QR factoring M = Q·R of a 2×2 matrix, where Q has the
// orthonormal columns Q1, Q2 and R is
//
//	| SX  Shear·SX |
//	| 0   SY       |
//
// Q may be a rotation or a reflection; SX and SY are never negative.
type Decomposition struct {
	Q1, Q2 r2.Vec
	SX, SY float64
	Shear  float64
}

// Decompose runs Gram–Schmidt on the columns (a, b) and (c, d) of m.
// Degenerate columns are absorbed: SX is clamped to mathutil.Epsilon and a
// second column parallel to the first falls back to Q1 rotated by 90°.
func Decompose(m mathutil.Mat2) Decomposition {
	sx := math.Hypot(m.A, m.B)
	if sx < mathutil.Epsilon {
		sx = mathutil.Epsilon
	}
	q1 := r2.Vec{X: m.A / sx, Y: m.B / sx}
	// A zero first column leaves q1 at the origin; pick the x axis so the
	// frame stays orthonormal.
	if m.A == 0 && m.B == 0 {
		q1 = r2.Vec{X: 1}
	}

	col2 := m.Col2()
	r12 := r2.Dot(q1, col2)
	u2 := r2.Sub(col2, r2.Scale(r12, q1))
	sy := r2.Norm(u2)

	// Below Epsilon the direction of u2 is rounding noise.
	var q2 r2.Vec
	if sy < mathutil.Epsilon {
		q2 = r2.Vec{X: -q1.Y, Y: q1.X}
	} else {
		q2 = r2.Scale(1/sy, u2)
	}

	return Decomposition{
		Q1:    q1,
		Q2:    q2,
		SX:    sx,
		SY:    sy,
		Shear: r12 / sx,
	}
}

// Build is the inverse of Decompose.
func Build(d Decomposition) mathutil.Mat2 {
	r11, r12 := d.SX, d.Shear*d.SX
	r21, r22 := 0.0, d.SY
	c1 := r2.Add(r2.Scale(r11, d.Q1), r2.Scale(r21, d.Q2))
	c2 := r2.Add(r2.Scale(r12, d.Q1), r2.Scale(r22, d.Q2))
	return mathutil.FromColumns(c1, c2)
}

// Matrix is shorthand for Build(d).
func (d Decomposition) Matrix() mathutil.Mat2 {
	return Build(d)
}

// Frame returns Q as a matrix.
func (d Decomposition) Frame() mathutil.Mat2 {
	return mathutil.FromColumns(d.Q1, d.Q2)
}

// Reflected reports whether the frame is a reflection rather than a rotation.
func (d Decomposition) Reflected() bool {
	return d.Frame().Det() < 0
}

// Reoriented returns d with its frame multiplied on the left by q, which must
// be orthogonal (a rotation or a reflection). Scale and shear are untouched,
// so the rebuilt matrix is q·Build(d).
func (d Decomposition) Reoriented(q mathutil.Mat2) Decomposition {
	d.Q1 = q.Apply(d.Q1)
	d.Q2 = q.Apply(d.Q2)
	return d
}

// SolveDelta returns the matrix that, post-multiplied onto current, yields
// target: current · delta = target. Hosts compose transforms onto the
// existing matrix instead of replacing it, so this is how an arbitrary
// target is reached in one call. Near-singular current matrices give an
// approximate delta.
func SolveDelta(current, target mathutil.Mat2) mathutil.Mat2 {
	return mathutil.Mul(current.Inverse(), target)
}
