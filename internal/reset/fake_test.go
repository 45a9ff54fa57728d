package reset

import (
	"gonum.org/v1/gonum/spatial/r2"

	"xform-reset/internal/item"
	"xform-reset/internal/mathutil"
)

// fakeRef is a path-like item of native size 1×1 that records host calls and
// can be told to fail them.
type fakeRef struct {
	cat    item.Category
	m      mathutil.Mat2
	center r2.Vec

	calls []string
	fail  map[string]error
	// residue is a shear the next Compose leaves behind, mimicking round-off
	// in a sloppy host.
	residue float64
}

func (f *fakeRef) err(call string) error {
	f.calls = append(f.calls, call)
	return f.fail[call]
}

func (f *fakeRef) Name() string { return "fake" }
func (f *fakeRef) Category() item.Category { return f.cat }
func (f *fakeRef) LinearMap() mathutil.Mat2 { return f.m }
func (f *fakeRef) Position() r2.Vec { return r2.Sub(f.center, r2.Scale(0.5, f.Size())) }

func (f *fakeRef) Size() r2.Vec {
	return r2.Vec{X: abs(f.m.A) + abs(f.m.C), Y: abs(f.m.B) + abs(f.m.D)}
}

func (f *fakeRef) Compose(delta mathutil.Mat2) error {
	if err := f.err("compose"); err != nil {
		return err
	}
	f.m = mathutil.Mul(f.m, delta)
	if f.residue != 0 {
		f.m = mathutil.Mul(f.m, mathutil.Shear2(f.residue))
		f.residue = 0
	}
	return nil
}

func (f *fakeRef) SetPosition(p r2.Vec) error {
	if err := f.err("setPosition"); err != nil {
		return err
	}
	f.center = r2.Add(p, r2.Scale(0.5, f.Size()))
	return nil
}

func (f *fakeRef) RecomputeBounds() error {
	return f.err("recompute")
}

func (f *fakeRef) ResizePercent(px, py float64) error {
	if err := f.err("resize"); err != nil {
		return err
	}
	f.m = mathutil.Mul(mathutil.Diag2(px/100, py/100), f.m)
	return nil
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
