// Package host is an in-memory stand-in for an illustration application's
// object model. Items keep their geometry as a native size, a document-space
// linear map and the position of their native center, and expose it through
// item.Ref with the same quirks a real host has: image items report their
// matrix in a vertically flipped frame, linked items cache their bounds until
// told to recompute, and raster items cannot recompute at all.
package host

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/spatial/r2"

	"xform-reset/internal/item"
	"xform-reset/internal/mathutil"
)

// ErrRemoved is returned by operations on an item that was removed from its
// document.
var ErrRemoved = errors.New("host: item removed")

// Document is an ordered list of items; later items draw on top.
type Document struct {
	Name  string
	Items []*Item
}

// Spec describes an item to add to a document.
type Spec struct {
	Name      string
	Kind      string        // source kind name; defaults to the category's
	Category  item.Category
	Asset     string        // linked and raster items only
	Native    r2.Vec        // untransformed width and height
	Matrix    mathutil.Mat2 // document-space linear map
	Center    r2.Vec        // document-space position of the native center
	Opacity   *float64      // percent; nil means 100
	BlendMode string        // "" means normal
}

// Percent returns a pointer to v, for the optional fields of Spec.
func Percent(v float64) *float64 {
	return &v
}

// Add appends a new item built from s and returns it.
func (d *Document) Add(s Spec) (*Item, error) {
	if s.Native.X <= 0 || s.Native.Y <= 0 {
		return nil, fmt.Errorf("host: item %q: native size %vx%v must be positive", s.Name, s.Native.X, s.Native.Y)
	}
	opacity := 100.0
	if s.Opacity != nil {
		opacity = *s.Opacity
	}
	if opacity < 0 || opacity > 100 {
		return nil, fmt.Errorf("host: item %q: opacity %v out of range [0, 100]", s.Name, opacity)
	}
	if s.BlendMode == "" {
		s.BlendMode = BlendNormal
	}
	if s.Kind == "" {
		s.Kind = s.Category.String()
	}
	it := &Item{
		doc:       d,
		name:      s.Name,
		kind:      s.Kind,
		category:  s.Category,
		asset:     s.Asset,
		native:    s.Native,
		world:     s.Matrix,
		center:    s.Center,
		opacity:   opacity,
		blendMode: s.BlendMode,
	}
	it.bounds = it.liveBounds()
	d.Items = append(d.Items, it)
	return it, nil
}

// Refs returns the document's items as engine handles, in drawing order.
func (d *Document) Refs() []item.Ref {
	refs := make([]item.Ref, 0, len(d.Items))
	for _, it := range d.Items {
		refs = append(refs, it)
	}
	return refs
}

// Find returns the first item with the given name.
func (d *Document) Find(name string) (*Item, bool) {
	for _, it := range d.Items {
		if it.name == name {
			return it, true
		}
	}
	return nil, false
}

// Bounds returns the union of the live bounds of all items.
func (d *Document) Bounds() (Box, bool) {
	if len(d.Items) == 0 {
		return Box{}, false
	}
	b := d.Items[0].liveBounds()
	for _, it := range d.Items[1:] {
		ib := it.liveBounds()
		b.Min = r2.Vec{X: min(b.Min.X, ib.Min.X), Y: min(b.Min.Y, ib.Min.Y)}
		b.Max = r2.Vec{X: max(b.Max.X, ib.Max.X), Y: max(b.Max.Y, ib.Max.Y)}
	}
	return b, true
}

func (d *Document) indexOf(it *Item) int {
	for i, x := range d.Items {
		if x == it {
			return i
		}
	}
	return -1
}

func (d *Document) insertAfter(anchor, it *Item) {
	i := d.indexOf(anchor)
	if i < 0 {
		d.Items = append(d.Items, it)
		return
	}
	d.Items = append(d.Items, nil)
	copy(d.Items[i+2:], d.Items[i+1:])
	d.Items[i+1] = it
}

func (d *Document) remove(it *Item) bool {
	i := d.indexOf(it)
	if i < 0 {
		return false
	}
	d.Items = append(d.Items[:i], d.Items[i+1:]...)
	return true
}
