package scene

import (
	"bytes"
	"errors"
	"image"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"gonum.org/v1/gonum/spatial/r2"

	"xform-reset/internal/host"
	"xform-reset/internal/item"
	"xform-reset/internal/mathutil"
)

type fakeAssets map[string]image.Point

func (f fakeAssets) Size(ref string) (image.Point, error) {
	sz, ok := f[ref]
	if !ok {
		return image.Point{}, errors.New("not found")
	}
	return sz, nil
}

func (f fakeAssets) Image(string) *image.NRGBA { return nil }

const sample = `<?xml version="1.0" encoding="UTF-8"?>
<Document Name="poster">
  <Item Name="frame" Kind="path" A="0.5" B="0.866" C="-0.866" D="0.5" X="100" Y="50" Width="80" Height="40"/>
  <Item Name="logo" Kind="linked" Asset="art/logo.png" A="2" D="2" X="10" Y="20" Opacity="60" BlendMode="multiply"/>
  <Item Name="caption" Kind="text" X="5" Y="5" Width="30" Height="8"/>
</Document>
`

func TestDecode(t *testing.T) {
	doc, err := Decode([]byte(sample), fakeAssets{"art/logo.png": image.Pt(64, 32)})
	if err != nil {
		t.Fatal(err)
	}
	if doc.Name != "poster" || len(doc.Items) != 3 {
		t.Fatalf("doc = %q with %d items", doc.Name, len(doc.Items))
	}

	frame, logo, caption := doc.Items[0], doc.Items[1], doc.Items[2]
	if frame.Category() != item.Path || frame.World() != (mathutil.Mat2{A: 0.5, B: 0.866, C: -0.866, D: 0.5}) {
		t.Errorf("frame = %v %+v", frame.Category(), frame.World())
	}
	if logo.Native() != (r2.Vec{X: 64, Y: 32}) {
		t.Errorf("logo native size = %v, want from asset", logo.Native())
	}
	if logo.World() != mathutil.Diag2(2, 2) || logo.Opacity() != 60 || logo.BlendMode() != "multiply" {
		t.Errorf("logo = %+v opacity %v blend %q", logo.World(), logo.Opacity(), logo.BlendMode())
	}
	if caption.Category() != item.Unsupported || caption.Kind() != "text" {
		t.Errorf("caption = %v (%q)", caption.Category(), caption.Kind())
	}
	if caption.World() != mathutil.Identity2() {
		t.Errorf("caption without matrix = %+v, want identity", caption.World())
	}
}

func TestDecodeMissingAsset(t *testing.T) {
	if _, err := Decode([]byte(sample), fakeAssets{}); err == nil {
		t.Fatal("Decode succeeded without the linked asset")
	}
}

func TestWriteParseRoundTrip(t *testing.T) {
	doc, err := Decode([]byte(sample), fakeAssets{"art/logo.png": image.Pt(64, 32)})
	if err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(t.TempDir(), "out", "poster.xml")
	if err := Write(path, doc); err != nil {
		t.Fatal(err)
	}
	// The written file carries every size, so no resolver is needed.
	back, err := Parse(path, nil)
	if err != nil {
		t.Fatal(err)
	}

	type row struct {
		Name, Kind, Asset, Blend string
		Matrix                   mathutil.Mat2
		Center, Native           r2.Vec
		Opacity                  float64
	}
	rows := func(items []*host.Item) []row {
		var out []row
		for _, it := range items {
			out = append(out, row{it.Name(), it.Kind(), it.Asset(), it.BlendMode(), it.World(), it.Translation(), it.Native(), it.Opacity()})
		}
		return out
	}
	if diff := cmp.Diff(rows(doc.Items), rows(back.Items)); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestParseMissingFile(t *testing.T) {
	_, err := Parse(filepath.Join(t.TempDir(), "nope.xml"), nil)
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("err = %v, want ErrNotExist", err)
	}
}

func TestZeroOpacityRoundTrip(t *testing.T) {
	const src = `<Document Name="fade">
  <Item Name="ghost" Kind="path" A="1" D="1" Width="10" Height="10" Opacity="0"/>
  <Item Name="logo" Kind="linked" Asset="logo.png" A="1" D="-1" Width="20" Height="10"/>
</Document>`
	doc, err := Decode([]byte(src), nil)
	if err != nil {
		t.Fatal(err)
	}
	ghost, logo := doc.Items[0], doc.Items[1]
	if ghost.Opacity() != 0 {
		t.Errorf("ghost opacity = %v, want 0", ghost.Opacity())
	}
	if logo.Opacity() != 100 {
		t.Errorf("logo opacity without attribute = %v, want 100", logo.Opacity())
	}
	if err := logo.SetOpacity(0); err != nil {
		t.Fatal(err)
	}

	raw, err := Encode(doc)
	if err != nil {
		t.Fatal(err)
	}
	if n := bytes.Count(raw, []byte(`Opacity="0"`)); n != 2 {
		t.Errorf("encoded %d zero opacities, want 2:\n%s", n, raw)
	}
	back, err := Decode(raw, nil)
	if err != nil {
		t.Fatal(err)
	}
	for _, it := range back.Items {
		if it.Opacity() != 0 {
			t.Errorf("%s opacity after round trip = %v, want 0", it.Name(), it.Opacity())
		}
	}
}

func TestDecodeRejectsOpacityOutOfRange(t *testing.T) {
	const src = `<Document><Item Name="x" Kind="path" Width="1" Height="1" Opacity="140"/></Document>`
	if _, err := Decode([]byte(src), nil); err == nil {
		t.Fatal("Decode accepted opacity 140")
	}
}
