package host

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"

	"xform-reset/internal/mathutil"
)

// Box is an axis-aligned bounding box in document space (y grows downward).
type Box struct {
	Min, Max r2.Vec
}

func (b Box) Size() r2.Vec {
	return r2.Sub(b.Max, b.Min)
}

func (b Box) Center() r2.Vec {
	return r2.Scale(0.5, r2.Add(b.Min, b.Max))
}

// Translate returns b moved by d.
func (b Box) Translate(d r2.Vec) Box {
	return Box{Min: r2.Add(b.Min, d), Max: r2.Add(b.Max, d)}
}

// transformBox maps the box centered on the origin with the given size
// through m and then t, and returns the axis-aligned box around the result.
// Each axis contributes its most negative and most positive extent
// independently, so only two products per axis are needed.
func transformBox(size r2.Vec, m mathutil.Mat2, t r2.Vec) Box {
	hx, hy := size.X/2, size.Y/2
	ex := math.Abs(m.A)*hx + math.Abs(m.C)*hy
	ey := math.Abs(m.B)*hx + math.Abs(m.D)*hy
	return Box{
		Min: r2.Vec{X: t.X - ex, Y: t.Y - ey},
		Max: r2.Vec{X: t.X + ex, Y: t.Y + ey},
	}
}

// corners returns the transformed native rectangle in drawing order.
func corners(size r2.Vec, m mathutil.Mat2, t r2.Vec) [4]r2.Vec {
	hx, hy := size.X/2, size.Y/2
	local := [4]r2.Vec{{X: -hx, Y: -hy}, {X: hx, Y: -hy}, {X: hx, Y: hy}, {X: -hx, Y: hy}}
	var out [4]r2.Vec
	for i, p := range local {
		out[i] = r2.Add(m.Apply(p), t)
	}
	return out
}
