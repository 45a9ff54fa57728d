// Package scene reads and writes documents as XML:
//
//	<Document Name="poster">
//	  <Item Name="logo" Kind="linked" Asset="logo.tga"
//	        A="1" B="0" C="0" D="1" X="120" Y="80" Width="64" Height="32"/>
//	</Document>
//
// A..D are the document-space linear map, X and Y the position of the item's
// native center and Width and Height its untransformed size. Linked and
// raster items without a size take it from their asset. A missing Opacity
// means 100; an explicit 0 is kept.
package scene

import (
	"encoding/xml"
	"fmt"
	"os"

	"gonum.org/v1/gonum/spatial/r2"

	"xform-reset/internal/asset"
	"xform-reset/internal/host"
	"xform-reset/internal/item"
	"xform-reset/internal/mathutil"
)

// Parse reads a document file. assets may be nil when every item carries its
// own size.
func Parse(path string, assets asset.Resolver) (*host.Document, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("scene: read %s: %w", path, err)
	}
	doc, err := Decode(raw, assets)
	if err != nil {
		return nil, fmt.Errorf("scene: parse %s: %w", path, err)
	}
	return doc, nil
}

// Decode builds a document from XML. Unknown kinds become unsupported items
// so they survive a round trip untouched.
func Decode(raw []byte, assets asset.Resolver) (*host.Document, error) {
	var xd xmlDocument
	if err := xml.Unmarshal(raw, &xd); err != nil {
		return nil, err
	}

	doc := &host.Document{Name: xd.Name}
	for i, xi := range xd.Items {
		cat := item.ParseCategory(xi.Kind)
		native := r2.Vec{X: xi.Width, Y: xi.Height}
		if (native.X <= 0 || native.Y <= 0) && xi.Asset != "" && assets != nil {
			sz, err := assets.Size(xi.Asset)
			if err != nil {
				return nil, fmt.Errorf("item %d %q: %w", i, xi.Name, err)
			}
			native = r2.Vec{X: float64(sz.X), Y: float64(sz.Y)}
		}
		m := mathutil.Mat2{A: xi.A, B: xi.B, C: xi.C, D: xi.D}
		// An item without a matrix is untransformed.
		if m == (mathutil.Mat2{}) {
			m = mathutil.Identity2()
		}
		_, err := doc.Add(host.Spec{
			Name:      xi.Name,
			Kind:      xi.Kind,
			Category:  cat,
			Asset:     xi.Asset,
			Native:    native,
			Matrix:    m,
			Center:    r2.Vec{X: xi.X, Y: xi.Y},
			Opacity:   xi.Opacity,
			BlendMode: xi.BlendMode,
		})
		if err != nil {
			return nil, fmt.Errorf("item %d: %w", i, err)
		}
	}
	return doc, nil
}
