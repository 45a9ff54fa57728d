// Package config loads run settings from a JSON file and merges command-line
// overrides onto them.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"xform-reset/internal/reset"
)

// DefaultPreviewSize is the preview edge in pixels when the config file
// does not set one.
const DefaultPreviewSize = 256

// Config holds all configurable paths and run settings.
type Config struct {
	// Paths
	BaseDir    string `json:"base_dir"`
	InputDir   string `json:"input_dir"`
	AssetDir   string `json:"asset_dir"`
	OutputDir  string `json:"output_dir"`
	PresetFile string `json:"preset_file"`

	// Reset options applied to every item before presets.
	Options reset.Options `json:"options"`

	// Preview and worker settings. PreviewSize 0 disables previews; nil
	// means the default.
	PreviewSize *int `json:"preview_size"`
	Supersample int  `json:"supersample"`
	Workers     int  `json:"workers"`
}

// Load reads a JSON config file and returns Config.
// Fields not set in the file keep their zero values.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}

	return cfg, nil
}

// Flags holds CLI flag values that override config file settings. Nil
// option flags were not given on the command line.
type Flags struct {
	BaseDir    string
	InputDir   string
	AssetDir   string
	OutputDir  string
	PresetFile string
	Workers    int
	NoPreview  bool

	Rotate, Skew, Ratio, Flip, Scale, Replace *bool
	Percent                                   string
}

// Resolve merges flags onto c and fills in defaults. Relative paths are
// taken from BaseDir, which defaults to the working directory.
func (c *Config) Resolve(flags Flags) {
	override := func(dst *string, v string) {
		if v != "" {
			*dst = v
		}
	}
	override(&c.BaseDir, flags.BaseDir)
	override(&c.InputDir, flags.InputDir)
	override(&c.AssetDir, flags.AssetDir)
	override(&c.OutputDir, flags.OutputDir)
	override(&c.PresetFile, flags.PresetFile)
	if flags.Workers > 0 {
		c.Workers = flags.Workers
	}

	for _, o := range []struct {
		dst *bool
		v   *bool
	}{
		{&c.Options.Rotate, flags.Rotate},
		{&c.Options.Skew, flags.Skew},
		{&c.Options.Ratio, flags.Ratio},
		{&c.Options.Flip, flags.Flip},
		{&c.Options.Scale, flags.Scale},
		{&c.Options.Replace, flags.Replace},
	} {
		if o.v != nil {
			*o.dst = *o.v
		}
	}
	if flags.Percent != "" {
		c.Options.ScalePercent = reset.ParsePercent(flags.Percent)
	}
	if c.Options.ScalePercent <= 0 {
		c.Options.ScalePercent = reset.DefaultPercent
	}

	if c.BaseDir == "" {
		c.BaseDir, _ = os.Getwd()
	}
	resolve := func(p *string, def string) {
		if *p == "" {
			*p = def
		}
		if !filepath.IsAbs(*p) {
			*p = filepath.Join(c.BaseDir, *p)
		}
	}
	resolve(&c.InputDir, "documents")
	if c.AssetDir == "" {
		c.AssetDir = c.InputDir
	}
	resolve(&c.AssetDir, "")
	resolve(&c.OutputDir, "output")
	resolve(&c.PresetFile, "presets.json")

	switch {
	case flags.NoPreview:
		c.PreviewSize = new(int)
	case c.PreviewSize == nil:
		size := DefaultPreviewSize
		c.PreviewSize = &size
	case *c.PreviewSize < 0:
		*c.PreviewSize = 0
	}
	if c.Supersample <= 0 {
		c.Supersample = 2
	}
	if c.Workers <= 0 {
		c.Workers = runtime.NumCPU()
	}
}
