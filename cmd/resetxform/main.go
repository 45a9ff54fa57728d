package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"

	"xform-reset/internal/asset"
	"xform-reset/internal/batch"
	"xform-reset/internal/config"
	"xform-reset/internal/preset"
)

func main() {
	configFile := flag.String("config", "", "Path to config.json file")
	baseDir := flag.String("base", "", "Base directory for relative paths (default: working directory)")
	inputDir := flag.String("input", "", "Directory of XML documents (default: documents)")
	assetDir := flag.String("assets", "", "Directory of linked assets (default: input directory)")
	outputDir := flag.String("output", "", "Output directory (default: output)")
	presetFile := flag.String("presets", "", "Per-item preset file (default: presets.json)")
	workers := flag.Int("workers", 0, "Number of worker goroutines (default: NumCPU)")
	noPreview := flag.Bool("no-preview", false, "Skip WebP previews")
	verbose := flag.Bool("v", false, "Log skipped steps")

	rotate := flag.Bool("rotate", false, "Cancel rotation")
	skew := flag.Bool("skew", false, "Remove shear")
	ratio := flag.Bool("ratio", false, "Equalize axis scales")
	flip := flag.Bool("flip", false, "Undo mirroring")
	scale := flag.Bool("scale", false, "Reset scale to -percent of native size")
	percent := flag.String("percent", "", "Target size for -scale, e.g. 150%")
	replace := flag.Bool("replace", false, "Re-place linked items from their asset")

	flag.Parse()

	level := zerolog.InfoLevel
	if *verbose {
		level = zerolog.DebugLevel
	}
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}).
		Level(level).With().Timestamp().Logger()

	var cfg config.Config
	if *configFile != "" {
		var err error
		cfg, err = config.Load(*configFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
	}

	// Only flags given on the command line override the config file.
	given := map[string]bool{}
	flag.Visit(func(f *flag.Flag) { given[f.Name] = true })
	opt := func(name string, v *bool) *bool {
		if given[name] {
			return v
		}
		return nil
	}

	cfg.Resolve(config.Flags{
		BaseDir:    *baseDir,
		InputDir:   *inputDir,
		AssetDir:   *assetDir,
		OutputDir:  *outputDir,
		PresetFile: *presetFile,
		Workers:    *workers,
		NoPreview:  *noPreview,
		Rotate:     opt("rotate", rotate),
		Skew:       opt("skew", skew),
		Ratio:      opt("ratio", ratio),
		Flip:       opt("flip", flip),
		Scale:      opt("scale", scale),
		Replace:    opt("replace", replace),
		Percent:    *percent,
	})

	paths := flag.Args()
	if len(paths) == 0 {
		var err error
		paths, err = batch.Discover(cfg.InputDir)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}
	if len(paths) == 0 {
		fmt.Println("No documents to process.")
		os.Exit(0)
	}

	presets, err := preset.Load(cfg.PresetFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading presets: %v\n", err)
		os.Exit(1)
	}
	if !cfg.Options.Any() && presets.Len() == 0 {
		log.Warn().Msg("no reset options selected; documents are copied unchanged")
	}

	assetIndex := asset.BuildIndex(cfg.AssetDir)
	assets := asset.NewCache(assetIndex)

	log.Info().
		Int("documents", len(paths)).
		Int("assets", assetIndex.Len()).
		Int("presets", presets.Len()).
		Int("workers", cfg.Workers).
		Stringer("options", cfg.Options).
		Str("output", cfg.OutputDir).
		Msg("starting")

	start := time.Now()
	results := batch.Run(batch.Config{
		OutputDir:   cfg.OutputDir,
		Assets:      assets,
		Presets:     presets,
		Options:     cfg.Options,
		PreviewSize: *cfg.PreviewSize,
		Supersample: cfg.Supersample,
		Workers:     cfg.Workers,
		Log:         log,
	}, paths)

	var failed, empty, items, processed, skipped int
	for _, r := range results {
		switch {
		case !r.Success:
			failed++
			log.Error().Str("document", r.Document).Msg(r.Error)
		case r.NothingProcessed:
			empty++
		}
		items += r.Summary.Items
		processed += r.Summary.Processed
		skipped += r.Summary.Skipped
	}
	log.Info().
		Dur("elapsed", time.Since(start).Round(time.Millisecond)).
		Int("documents", len(results)-failed).
		Int("items", items).
		Int("processed", processed).
		Int("skipped_steps", skipped).
		Msg("done")
	if empty == len(results) {
		log.Warn().Msg("nothing processed: no document held a path, raster or linked item")
	}

	manifestPath := filepath.Join(cfg.OutputDir, "manifest.json")
	if err := batch.WriteManifest(manifestPath, results); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: manifest write failed: %v\n", err)
	} else {
		log.Info().Str("path", manifestPath).Msg("manifest written")
	}

	if failed > 0 {
		os.Exit(1)
	}
}
