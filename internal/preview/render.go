// Package preview draws documents into small thumbnails so the effect of a
// reset can be checked by eye.
package preview

import (
	"image"
	"image/color"
	"math"

	"golang.org/x/image/draw"
	"golang.org/x/image/math/f64"
	"golang.org/x/image/vector"
	"gonum.org/v1/gonum/spatial/r2"

	"xform-reset/internal/asset"
	"xform-reset/internal/host"
	"xform-reset/internal/item"
)

// Margin is the border left around the document, in output pixels.
const Margin = 16

var (
	pathColor        = color.NRGBA{160, 160, 170, 255}
	unsupportedColor = color.NRGBA{220, 200, 120, 160}
	missingColor     = color.NRGBA{200, 60, 200, 255}
)

// canvas maps document coordinates onto a square render target.
type canvas struct {
	center r2.Vec
	scale  float64
	half   float64
}

func fit(doc *host.Document, renderSize, margin int) canvas {
	c := canvas{scale: 1, half: float64(renderSize) / 2}
	b, ok := doc.Bounds()
	if !ok {
		return c
	}
	sz := b.Size()
	span := math.Max(math.Max(sz.X, sz.Y), 0.001)
	c.center = b.Center()
	c.scale = float64(renderSize-2*margin) / span
	return c
}

func (c canvas) point(p r2.Vec) (float32, float32) {
	q := r2.Add(r2.Scale(c.scale, r2.Sub(p, c.center)), r2.Vec{X: c.half, Y: c.half})
	return float32(q.X), float32(q.Y)
}

// Render draws doc into a size×size image. Items are drawn in document
// order. Items with an asset are drawn from it through their affine map;
// everything else, and assets that cannot be loaded, is drawn as a filled
// quad. assets may be nil.
func Render(doc *host.Document, assets asset.Resolver, size, supersample int) *image.NRGBA {
	if supersample < 1 {
		supersample = 1
	}
	renderSize := size * supersample
	dst := image.NewRGBA(image.Rect(0, 0, renderSize, renderSize))
	c := fit(doc, renderSize, Margin*supersample)

	for _, it := range doc.Items {
		var img *image.NRGBA
		if it.Asset() != "" && assets != nil {
			img = assets.Image(it.Asset())
		}
		switch {
		case img != nil && drawAsset(dst, c, it, img):
		case it.Category() == item.Unsupported:
			fillQuad(dst, c, it, unsupportedColor)
		case it.Asset() != "":
			fillQuad(dst, c, it, missingColor)
		default:
			fillQuad(dst, c, it, pathColor)
		}
	}

	if supersample > 1 {
		return unpremultiply(downsample(dst, size))
	}
	return unpremultiply(dst)
}

func fillQuad(dst *image.RGBA, c canvas, it *host.Item, col color.NRGBA) {
	col.A = uint8(float64(col.A)*it.Opacity()/100 + 0.5)
	b := dst.Bounds()
	z := vector.NewRasterizer(b.Dx(), b.Dy())
	for i, p := range it.Corners() {
		x, y := c.point(p)
		if i == 0 {
			z.MoveTo(x, y)
		} else {
			z.LineTo(x, y)
		}
	}
	z.ClosePath()
	z.Draw(dst, b, image.NewUniform(col), image.Point{})
}

// drawAsset maps the asset's pixel grid onto the item's native rectangle,
// then through the item's linear map and the canvas fit. It reports false
// when the map is too degenerate to invert.
func drawAsset(dst *image.RGBA, c canvas, it *host.Item, img *image.NRGBA) bool {
	sb := img.Bounds()
	if sb.Empty() {
		return false
	}
	m, t, n := it.World(), it.Translation(), it.Native()
	kx := n.X / float64(sb.Dx())
	ky := n.Y / float64(sb.Dy())
	if math.Abs(m.Det()*kx*ky*c.scale*c.scale) < 1e-9 {
		return false
	}
	ox := m.A*(-n.X/2) + m.C*(-n.Y/2) + t.X - c.center.X
	oy := m.B*(-n.X/2) + m.D*(-n.Y/2) + t.Y - c.center.Y
	s2d := f64.Aff3{
		c.scale * m.A * kx, c.scale * m.C * ky, c.scale*ox + c.half - c.scale*(m.A*kx*float64(sb.Min.X)+m.C*ky*float64(sb.Min.Y)),
		c.scale * m.B * kx, c.scale * m.D * ky, c.scale*oy + c.half - c.scale*(m.B*kx*float64(sb.Min.X)+m.D*ky*float64(sb.Min.Y)),
	}
	var opts *draw.Options
	if op := it.Opacity(); op < 100 {
		opts = &draw.Options{SrcMask: image.NewUniform(color.Alpha16{A: uint16(op / 100 * 0xffff)})}
	}
	draw.BiLinear.Transform(dst, s2d, img, sb, draw.Over, opts)
	return true
}
