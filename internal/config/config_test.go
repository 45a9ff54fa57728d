package config

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/google/go-cmp/cmp"

	"xform-reset/internal/reset"
)

func TestLoadAndResolve(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")
	body := `{
  "base_dir": "/work",
  "input_dir": "docs",
  "output_dir": "/tmp/out",
  "options": {"rotate": true, "scale": true, "scale_percent": 150},
  "preview_size": 128
}`
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	no := false
	cfg.Resolve(Flags{Workers: 3, Rotate: &no, Percent: "80%"})

	size := 128
	want := Config{
		BaseDir:     "/work",
		InputDir:    filepath.Join("/work", "docs"),
		AssetDir:    filepath.Join("/work", "docs"),
		OutputDir:   "/tmp/out",
		PresetFile:  filepath.Join("/work", "presets.json"),
		Options:     reset.Options{Scale: true, ScalePercent: 80},
		PreviewSize: &size,
		Supersample: 2,
		Workers:     3,
	}
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Errorf("Resolve mismatch (-want +got):\n%s", diff)
	}
}

func TestResolveDefaults(t *testing.T) {
	var cfg Config
	yes := true
	cfg.Resolve(Flags{BaseDir: "/base", Skew: &yes, NoPreview: true})

	if cfg.InputDir != filepath.Join("/base", "documents") || cfg.OutputDir != filepath.Join("/base", "output") {
		t.Errorf("paths = %q %q", cfg.InputDir, cfg.OutputDir)
	}
	if cfg.AssetDir != cfg.InputDir {
		t.Errorf("AssetDir = %q, want input dir", cfg.AssetDir)
	}
	if !cfg.Options.Skew || cfg.Options.ScalePercent != reset.DefaultPercent {
		t.Errorf("options = %+v", cfg.Options)
	}
	if *cfg.PreviewSize != 0 || cfg.Workers != runtime.NumCPU() {
		t.Errorf("preview %d workers %d", *cfg.PreviewSize, cfg.Workers)
	}
}

func TestResolvePreviewSize(t *testing.T) {
	tests := []struct {
		name      string
		body      string
		noPreview bool
		want      int
	}{
		{"absent", `{}`, false, DefaultPreviewSize},
		{"explicit zero", `{"preview_size": 0}`, false, 0},
		{"negative", `{"preview_size": -5}`, false, 0},
		{"set", `{"preview_size": 64}`, false, 64},
		{"flag wins", `{"preview_size": 64}`, true, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.json")
			if err := os.WriteFile(path, []byte(tt.body), 0644); err != nil {
				t.Fatal(err)
			}
			cfg, err := Load(path)
			if err != nil {
				t.Fatal(err)
			}
			cfg.Resolve(Flags{BaseDir: "/base", NoPreview: tt.noPreview})
			if cfg.PreviewSize == nil || *cfg.PreviewSize != tt.want {
				t.Errorf("PreviewSize = %v, want %d", cfg.PreviewSize, tt.want)
			}
		})
	}
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()
	if _, err := Load(filepath.Join(dir, "missing.json")); err == nil {
		t.Error("Load of missing file succeeded")
	}
	bad := filepath.Join(dir, "bad.json")
	if err := os.WriteFile(bad, []byte("{"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(bad); err == nil {
		t.Error("Load of malformed file succeeded")
	}
}
