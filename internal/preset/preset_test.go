package preset

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"xform-reset/internal/reset"
)

const sample = `{
  "presets": {
    "upright": {"rotate": true, "flip": true},
    "square": {"ratio": true, "scale": true, "percent": "150%"}
  },
  "items": {
    "logo": "upright",
    "badge": {"preset": "square", "percent": "80", "skew": true},
    "photo": {"replace": true, "rotate": false}
  }
}`

func TestFor(t *testing.T) {
	s, err := Decode([]byte(sample))
	if err != nil {
		t.Fatal(err)
	}
	base := reset.Options{Rotate: true, Skew: false, ScalePercent: 100}

	tests := []struct {
		name string
		want reset.Options
	}{
		{"logo", reset.Options{Rotate: true, Flip: true, ScalePercent: 100}},
		{"badge", reset.Options{Rotate: true, Skew: true, Ratio: true, Scale: true, ScalePercent: 80}},
		{"photo", reset.Options{Replace: true, ScalePercent: 100}},
		{"unknown", base},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, s.For(tt.name, base)); diff != "" {
				t.Errorf("For(%q) mismatch (-want +got):\n%s", tt.name, diff)
			}
		})
	}
	if s.Len() != 3 {
		t.Errorf("Len = %d, want 3", s.Len())
	}
}

func TestDecodeErrors(t *testing.T) {
	tests := map[string]string{
		"unknown preset": `{"items": {"a": "missing"}}`,
		"nested preset":  `{"presets": {"p": {"preset": "q"}, "q": {}}, "items": {"a": "p"}}`,
		"bad entry":      `{"items": {"a": 7}}`,
		"bad json":       `{`,
	}
	for name, raw := range tests {
		if _, err := Decode([]byte(raw)); err == nil {
			t.Errorf("%s: Decode succeeded", name)
		}
	}
}

func TestLoadMissingFile(t *testing.T) {
	s, err := Load(filepath.Join(t.TempDir(), "presets.json"))
	if err != nil {
		t.Fatal(err)
	}
	opts := reset.Options{Scale: true}
	if got := s.For("anything", opts); got != opts {
		t.Errorf("empty set changed options: %+v", got)
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "presets.json")
	if err := os.WriteFile(path, []byte(sample), 0644); err != nil {
		t.Fatal(err)
	}
	s, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if got := s.For("logo", reset.Options{}); !got.Rotate || !got.Flip {
		t.Errorf("logo = %+v", got)
	}
}

func TestNilSet(t *testing.T) {
	var s *Set
	if got := s.For("x", reset.Options{Ratio: true}); !got.Ratio {
		t.Errorf("nil set dropped base options")
	}
}
