package reset

import (
	"math"

	"xform-reset/internal/decompose"
	"xform-reset/internal/item"
	"xform-reset/internal/mathutil"
)

// ShearTolerance is the largest shear left behind by RemoveShear that is
// still considered zero.
const ShearTolerance = 1e-6

// modify decomposes ref's current map, lets fn edit the factors, and composes
// the delta that carries the current map to the rebuilt one.
func modify(ref item.Ref, fn func(m mathutil.Mat2, d *decompose.Decomposition)) error {
	m := ref.LinearMap()
	d := decompose.Decompose(m)
	fn(m, &d)
	return ref.Compose(decompose.SolveDelta(m, d.Matrix()))
}

// CancelRotation turns ref back by the angle of its first axis. For
// mirrored-axis categories the angle is read with the opposite sign, and the
// document-space rotation is converted into the item's own frame.
func CancelRotation(ref item.Ref) error {
	c := ref.Category()
	return modify(ref, func(m mathutil.Mat2, d *decompose.Decomposition) {
		angle := m.Angle() * c.RotationSign()
		*d = d.Reoriented(c.ToHost(mathutil.Rot2(-angle)))
	})
}

// RemoveShear zeroes the shear factor, keeping frame and scales.
func RemoveShear(ref item.Ref) error {
	return modify(ref, func(_ mathutil.Mat2, d *decompose.Decomposition) {
		d.Shear = 0
	})
}

// NormalizeScale sets both axis scales to 1, keeping frame and shear.
func NormalizeScale(ref item.Ref) error {
	return modify(ref, func(_ mathutil.Mat2, d *decompose.Decomposition) {
		d.SX, d.SY = 1, 1
	})
}

// EqualizeScale lifts both axis scales to the larger one, rounded to a whole
// percent.
func EqualizeScale(ref item.Ref) error {
	return modify(ref, func(_ mathutil.Mat2, d *decompose.Decomposition) {
		s := mathutil.Round2(math.Max(d.SX, d.SY))
		d.SX, d.SY = s, s
	})
}

// Mirroring reports which document axes ref is mirrored along, judged from
// the signs of the diagonal. A horizontal mirror shows as A < 0 for every
// category. A vertical mirror is only detected for mirrored-axis categories,
// where an upright item already has D < 0 and so D > 0 means flipped. The
// result is only meaningful once rotation has been canceled.
func Mirroring(ref item.Ref) (horizontal, vertical bool) {
	m := ref.LinearMap()
	return m.A < 0, ref.Category().MirroredAxis() && m.D > 0
}

// UndoMirror flips ref back along each mirrored axis about its center. It
// does nothing when Mirroring finds no mirror, so a second call is a no-op.
func UndoMirror(ref item.Ref) error {
	h, v := Mirroring(ref)
	if !h && !v {
		return nil
	}
	sx, sy := 1.0, 1.0
	if h {
		sx = -1
	}
	if v {
		sy = -1
	}
	c := ref.Category()
	return modify(ref, func(_ mathutil.Mat2, d *decompose.Decomposition) {
		*d = d.Reoriented(c.ToHost(mathutil.Diag2(sx, sy)))
	})
}

// ShearOf returns the shear factor of ref's current map.
func ShearOf(ref item.Ref) float64 {
	return decompose.Decompose(ref.LinearMap()).Shear
}
