package host

import (
	"fmt"
	"path/filepath"
	"strings"

	"gonum.org/v1/gonum/spatial/r2"

	"xform-reset/internal/item"
	"xform-reset/internal/mathutil"
)

// Blend modes accepted by SetBlendMode.
const (
	BlendNormal   = "normal"
	BlendMultiply = "multiply"
	BlendScreen   = "screen"
	BlendOverlay  = "overlay"
)

var blendModes = map[string]bool{
	BlendNormal:   true,
	BlendMultiply: true,
	BlendScreen:   true,
	BlendOverlay:  true,
}

// Item is one drawable in a Document. It implements item.Ref, and
// item.Replaceable for linked items.
type Item struct {
	doc      *Document
	name     string
	kind     string
	category item.Category
	asset    string

	native r2.Vec        // untransformed width and height
	world  mathutil.Mat2 // document-space linear map
	center r2.Vec        // where the native center lands

	// bounds is what Position reports. Linked items only refresh it on
	// RecomputeBounds, SetPosition and ResizePercent.
	bounds Box

	opacity   float64
	blendMode string
	removed   bool
}

var (
	_ item.Ref         = (*Item)(nil)
	_ item.Replaceable = (*Item)(nil)
)

func (it *Item) Name() string { return it.name }
func (it *Item) Category() item.Category { return it.category }
func (it *Item) Kind() string { return it.kind }
func (it *Item) Asset() string { return it.asset }
func (it *Item) Native() r2.Vec { return it.native }
func (it *Item) World() mathutil.Mat2 { return it.world }
func (it *Item) Translation() r2.Vec { return it.center }
func (it *Item) Opacity() float64 { return it.opacity }
func (it *Item) BlendMode() string { return it.blendMode }
func (it *Item) Removed() bool { return it.removed }
func (it *Item) Corners() [4]r2.Vec { return corners(it.native, it.world, it.center) }
func (it *Item) Bounds() Box { return it.liveBounds() }
func (it *Item) cachesBounds() bool { return it.category == item.Linked }
func (it *Item) liveBounds() Box { return transformBox(it.native, it.world, it.center) }

func (it *Item) Attributes() item.Attributes {
	return item.Attributes{Name: it.name, Opacity: it.opacity, BlendMode: it.blendMode}
}

// LinearMap reports the document-space map, flipped into image space for
// mirrored-axis categories.
func (it *Item) LinearMap() mathutil.Mat2 {
	if it.category.MirroredAxis() {
		return mathutil.Mul(mathutil.MirrorY, it.world)
	}
	return it.world
}

// Compose post-multiplies delta onto the reported map. The flip is on the
// left, so in document space this is also world·delta.
func (it *Item) Compose(delta mathutil.Mat2) error {
	if it.removed {
		return ErrRemoved
	}
	it.world = mathutil.Mul(it.world, delta)
	if !it.cachesBounds() {
		it.bounds = it.liveBounds()
	}
	return nil
}

func (it *Item) Position() r2.Vec {
	return it.bounds.Min
}

// SetPosition moves the item so that the top-left corner of the bounds it
// currently reports lands on p.
func (it *Item) SetPosition(p r2.Vec) error {
	if it.removed {
		return ErrRemoved
	}
	d := r2.Sub(p, it.Position())
	it.center = r2.Add(it.center, d)
	it.bounds = it.liveBounds()
	return nil
}

func (it *Item) Size() r2.Vec {
	return it.liveBounds().Size()
}

func (it *Item) RecomputeBounds() error {
	if it.removed {
		return ErrRemoved
	}
	switch it.category {
	case item.Raster:
		return fmt.Errorf("host: recompute bounds of raster %q: %w", it.name, item.ErrUnsupported)
	case item.Linked:
		it.bounds = it.liveBounds()
	}
	return nil
}

// ResizePercent scales the item in document space about the center of its
// live bounds.
func (it *Item) ResizePercent(px, py float64) error {
	if it.removed {
		return ErrRemoved
	}
	if px <= 0 || py <= 0 {
		return fmt.Errorf("host: resize %q by %v%%x%v%%: percentages must be positive", it.name, px, py)
	}
	s := mathutil.Diag2(px/100, py/100)
	c := it.liveBounds().Center()
	it.world = mathutil.Mul(s, it.world)
	it.center = r2.Add(c, s.Apply(r2.Sub(it.center, c)))
	it.bounds = it.liveBounds()
	return nil
}

// ReinsertFresh places a new, untransformed reference to the same asset
// directly above it, at the document origin.
func (it *Item) ReinsertFresh() (item.Replaceable, error) {
	if it.removed {
		return nil, ErrRemoved
	}
	if it.category != item.Linked || it.asset == "" {
		return nil, fmt.Errorf("host: reinsert %q: %w", it.name, item.ErrUnsupported)
	}
	fresh := &Item{
		doc:       it.doc,
		name:      strings.TrimSuffix(filepath.Base(it.asset), filepath.Ext(it.asset)),
		kind:      it.kind,
		category:  item.Linked,
		asset:     it.asset,
		native:    it.native,
		world:     mathutil.Identity2(),
		center:    r2.Scale(0.5, it.native),
		opacity:   100,
		blendMode: BlendNormal,
	}
	fresh.bounds = fresh.liveBounds()
	it.doc.insertAfter(it, fresh)
	return fresh, nil
}

func (it *Item) Remove() error {
	if it.removed {
		return ErrRemoved
	}
	if !it.doc.remove(it) {
		return fmt.Errorf("host: remove %q: not in document %q", it.name, it.doc.Name)
	}
	it.removed = true
	return nil
}

func (it *Item) SetName(name string) error {
	if it.removed {
		return ErrRemoved
	}
	it.name = name
	return nil
}

func (it *Item) SetOpacity(opacity float64) error {
	if it.removed {
		return ErrRemoved
	}
	if opacity < 0 || opacity > 100 {
		return fmt.Errorf("host: opacity %v out of range [0, 100]", opacity)
	}
	it.opacity = opacity
	return nil
}

func (it *Item) SetBlendMode(mode string) error {
	if it.removed {
		return ErrRemoved
	}
	if !blendModes[mode] {
		return fmt.Errorf("host: blend mode %q: %w", mode, item.ErrUnsupported)
	}
	it.blendMode = mode
	return nil
}
