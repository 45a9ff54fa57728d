package mathutil

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/floats/scalar"
	"gonum.org/v1/gonum/spatial/r2"
)

func TestMul(t *testing.T) {
	tests := []struct {
		name string
		a, b Mat2
		want Mat2
	}{
		{"identity left", Identity2(), Mat2{1, 2, 3, 4}, Mat2{1, 2, 3, 4}},
		{"identity right", Mat2{1, 2, 3, 4}, Identity2(), Mat2{1, 2, 3, 4}},
		{"diag", Diag2(2, 3), Diag2(4, 5), Diag2(8, 15)},
		{"general", Mat2{1, 2, 3, 4}, Mat2{5, 6, 7, 8}, Mat2{23, 34, 31, 46}},
		{"rotations add", Rot2(0.3), Rot2(0.4), Rot2(0.7)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Mul(tt.a, tt.b)
			if !got.Equal(tt.want, 1e-12) {
				t.Errorf("Mul(%+v, %+v) = %+v, want %+v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestMulMatchesApply(t *testing.T) {
	a := Mat2{0.5, -1.2, 2, 0.25}
	b := Mat2{-3, 0.7, 1.1, 4}
	v := r2.Vec{X: 1.5, Y: -2}
	got := Mul(a, b).Apply(v)
	want := a.Apply(b.Apply(v))
	if !scalar.EqualWithinAbs(got.X, want.X, 1e-12) || !scalar.EqualWithinAbs(got.Y, want.Y, 1e-12) {
		t.Errorf("(a·b)v = %v, a(bv) = %v", got, want)
	}
}

func TestInverse(t *testing.T) {
	tests := []struct {
		name string
		m    Mat2
	}{
		{"identity", Identity2()},
		{"rotation", Rot2(1.1)},
		{"scale", Diag2(2, 0.5)},
		{"mirror", Diag2(-1, 1)},
		{"shear", Shear2(0.7)},
		{"general", Mat2{3, -1, 2, 5}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Mul(tt.m, tt.m.Inverse())
			if !got.Equal(Identity2(), 1e-8) {
				t.Errorf("m·m⁻¹ = %+v, want identity", got)
			}
		})
	}
}

func TestInverseSingular(t *testing.T) {
	for _, m := range []Mat2{{}, {1, 2, 2, 4}, {1e-9, 0, 0, 1e-9}} {
		inv := m.Inverse()
		for _, v := range []float64{inv.A, inv.B, inv.C, inv.D} {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				t.Fatalf("Inverse(%+v) = %+v, want finite", m, inv)
			}
		}
	}

	// The clamp keeps the sign of the determinant.
	m := Mat2{A: -1e-5, D: 1e-5}
	inv := m.Inverse()
	if inv.Det() >= 0 {
		t.Errorf("Inverse(%+v) has det %v, want negative", m, inv.Det())
	}
}

func TestAngle(t *testing.T) {
	for _, deg := range []float64{0, 37, -60, 90, 179} {
		got := Rad2Deg(Rot2(Deg2Rad(deg)).Angle())
		if !scalar.EqualWithinAbs(got, deg, 1e-9) {
			t.Errorf("Rot2(%v°).Angle() = %v°", deg, got)
		}
	}
}

func TestStretch(t *testing.T) {
	m := Mul(Rot2(0.6), Mul(Diag2(3, 2), Rot2(-0.2)))
	smax, smin, _ := Stretch(m)
	if !scalar.EqualWithinAbs(smax, 3, 1e-9) || !scalar.EqualWithinAbs(smin, 2, 1e-9) {
		t.Errorf("Stretch = (%v, %v), want (3, 2)", smax, smin)
	}
}

func TestRound2(t *testing.T) {
	tests := []struct{ in, want float64 }{
		{2.0, 2.0},
		{1.337, 1.34},
		{0.994, 0.99},
		{1.005000001, 1.01},
	}
	for _, tt := range tests {
		if got := Round2(tt.in); got != tt.want {
			t.Errorf("Round2(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
