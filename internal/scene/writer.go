package scene

import (
	"encoding/xml"
	"fmt"
	"os"
	"path/filepath"

	"xform-reset/internal/host"
)

// Encode serializes doc in drawing order.
func Encode(doc *host.Document) ([]byte, error) {
	xd := xmlDocument{Name: doc.Name}
	for _, it := range doc.Items {
		m, c, n := it.World(), it.Translation(), it.Native()
		xd.Items = append(xd.Items, xmlItem{
			Name:      it.Name(),
			Kind:      it.Kind(),
			Asset:     it.Asset(),
			A:         m.A,
			B:         m.B,
			C:         m.C,
			D:         m.D,
			X:         c.X,
			Y:         c.Y,
			Width:     n.X,
			Height:    n.Y,
			Opacity:   host.Percent(it.Opacity()),
			BlendMode: it.BlendMode(),
		})
	}
	data, err := xml.MarshalIndent(xd, "", "  ")
	if err != nil {
		return nil, err
	}
	return append([]byte(xml.Header), append(data, '\n')...), nil
}

// Write serializes doc to path, creating parent directories.
func Write(path string, doc *host.Document) error {
	data, err := Encode(doc)
	if err != nil {
		return fmt.Errorf("scene: encode %s: %w", doc.Name, err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("scene: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("scene: write %s: %w", path, err)
	}
	return nil
}
