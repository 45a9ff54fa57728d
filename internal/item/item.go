// Package item defines the boundary between the reset engine and a host
// application's object model.
package item

import (
	"errors"

	"gonum.org/v1/gonum/spatial/r2"

	"xform-reset/internal/mathutil"
)

// ErrUnsupported is returned by a host operation that the item's category
// cannot perform.
var ErrUnsupported = errors.New("item: operation not supported")

// Category is the kind of drawable an item is. It only decides sign
// conventions and which operations are available.
type Category int

const (
	Unsupported Category = iota
	Path
	Raster
	Linked
)

var categoryNames = [...]string{
	Unsupported: "unsupported",
	Path:        "path",
	Raster:      "raster",
	Linked:      "linked",
}

func (c Category) String() string {
	if c < 0 || int(c) >= len(categoryNames) {
		return "unknown"
	}
	return categoryNames[c]
}

// ParseCategory maps a kind name to a Category. Unknown names are Unsupported.
func ParseCategory(s string) Category {
	for c, name := range categoryNames {
		if name == s {
			return Category(c)
		}
	}
	return Unsupported
}

// MirroredAxis reports whether the category stores its linear map in image
// space, with the vertical axis flipped relative to the document. For these
// items an upright placement has D < 0, so D > 0 means vertically mirrored,
// and atan2(B, A) measures rotation with the opposite sign. Raster items are
// placed images like linked ones, so both use this convention; path items do
// not.
func (c Category) MirroredAxis() bool {
	return c == Raster || c == Linked
}

// RotationSign is -1 for mirrored-axis categories and 1 otherwise.
func (c Category) RotationSign() float64 {
	if c.MirroredAxis() {
		return -1
	}
	return 1
}

// ToHost converts a document-space linear map into the category's reported
// frame. For mirrored-axis categories this is the conjugate F·m·F with
// F = diag(1, -1); otherwise m is returned unchanged.
func (c Category) ToHost(m mathutil.Mat2) mathutil.Mat2 {
	if !c.MirroredAxis() {
		return m
	}
	return mathutil.Mul(mathutil.MirrorY, mathutil.Mul(m, mathutil.MirrorY))
}

// Eligible reports whether the reset engine can work on the category at all.
func (c Category) Eligible() bool {
	return c == Path || c == Raster || c == Linked
}

// Ref is a handle to one drawable item, owned by the caller for the duration
// of a single reset. Every mutating call returns an error instead of
// panicking; callers decide whether to continue.
type Ref interface {
	Name() string
	Category() Category

	// LinearMap returns the current 2×2 map in the category's frame.
	LinearMap() mathutil.Mat2
	// Compose post-multiplies delta onto the current map: M ← M·delta.
	Compose(delta mathutil.Mat2) error

	// Position is the top-left corner of the item's bounding box.
	Position() r2.Vec
	SetPosition(p r2.Vec) error
	// Size is the width and height of the bounding box after any pending
	// matrix change.
	Size() r2.Vec

	// RecomputeBounds refreshes any cached bounds. May return ErrUnsupported.
	RecomputeBounds() error
	// ResizePercent scales the item geometrically about its own center.
	ResizePercent(px, py float64) error
}

// Attributes are the presentation properties carried over when an item is
// re-inserted.
type Attributes struct {
	Name      string
	Opacity   float64
	BlendMode string
}

// Replaceable is implemented by items that reference an external asset and
// can be swapped for a fresh, untransformed reference to it.
type Replaceable interface {
	Ref

	// ReinsertFresh places a new untransformed reference to the same asset
	// in the same container and returns it.
	ReinsertFresh() (Replaceable, error)
	Remove() error

	Attributes() Attributes
	SetName(name string) error
	SetOpacity(opacity float64) error
	SetBlendMode(mode string) error
}

// Center returns the center of ref's bounding box.
func Center(ref Ref) r2.Vec {
	return r2.Add(ref.Position(), r2.Scale(0.5, ref.Size()))
}
