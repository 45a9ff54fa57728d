// Package batch resets every document of a directory with a worker pool.
package batch

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"

	"xform-reset/internal/asset"
	"xform-reset/internal/item"
	"xform-reset/internal/preset"
	"xform-reset/internal/preview"
	"xform-reset/internal/reset"
	"xform-reset/internal/scene"
)

// Config holds all shared resources for a batch run.
type Config struct {
	OutputDir   string
	Assets      asset.Resolver
	Presets     *preset.Set
	Options     reset.Options // base options before per-item presets
	PreviewSize int           // 0 disables previews
	Supersample int
	Workers     int
	Log         zerolog.Logger
}

// Result holds the outcome of processing one document.
type Result struct {
	Document string
	Source   string
	Output   string
	Before   string
	After    string
	Summary  reset.Summary
	Reports  []reset.Report

	// NothingProcessed is set when the document held no eligible item. The
	// document is still written unchanged.
	NothingProcessed bool
	Success          bool
	Error            string
}

// Discover lists the XML documents directly under dir in name order.
func Discover(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("batch: read %s: %w", dir, err)
	}
	var paths []string
	for _, e := range entries {
		if e.IsDir() || !strings.EqualFold(filepath.Ext(e.Name()), ".xml") {
			continue
		}
		paths = append(paths, filepath.Join(dir, e.Name()))
	}
	sort.Strings(paths)
	return paths, nil
}

// Run processes all documents using a worker pool. Results are in input
// order.
func Run(cfg Config, paths []string) []Result {
	if cfg.Workers < 1 {
		cfg.Workers = 1
	}
	total := len(paths)
	results := make([]Result, total)
	var processed atomic.Int64

	start := time.Now()

	done := make(chan struct{})
	go func() {
		ticker := time.NewTicker(2 * time.Second)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				if p := processed.Load(); p > 0 {
					rate := float64(p) / time.Since(start).Seconds()
					cfg.Log.Info().Int64("done", p).Int("total", total).
						Float64("per_sec", rate).Msg("progress")
				}
			}
		}
	}()

	jobs := make(chan int, cfg.Workers*2)
	var wg sync.WaitGroup

	for w := 0; w < cfg.Workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range jobs {
				results[idx] = processDocument(cfg, paths[idx])
				processed.Add(1)
			}
		}()
	}

	for i := range paths {
		jobs <- i
	}
	close(jobs)

	wg.Wait()
	close(done)

	return results
}

func processDocument(cfg Config, path string) Result {
	stem := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	res := Result{Document: stem, Source: path}
	log := cfg.Log.With().Str("document", stem).Logger()

	doc, err := scene.Parse(path, cfg.Assets)
	if err != nil {
		res.Error = err.Error()
		return res
	}
	if doc.Name != "" {
		res.Document = doc.Name
	}

	if cfg.PreviewSize > 0 {
		res.Before = filepath.Join(cfg.OutputDir, stem+".before.webp")
		img := preview.Render(doc, cfg.Assets, cfg.PreviewSize, cfg.Supersample)
		if err := preview.Save(res.Before, img); err != nil {
			res.Error = err.Error()
			return res
		}
	}

	engine := reset.NewEngine(log)
	_, reports, err := engine.ApplyEach(doc.Refs(), func(ref item.Ref) reset.Options {
		return cfg.Presets.For(ref.Name(), cfg.Options)
	})
	switch {
	case errors.Is(err, reset.ErrNothingProcessed):
		res.NothingProcessed = true
		log.Warn().Msg("nothing processed")
	case err != nil:
		res.Error = err.Error()
		return res
	}
	res.Reports = reports
	res.Summary = reset.Summarize(reports)

	res.Output = filepath.Join(cfg.OutputDir, stem+".xml")
	if err := scene.Write(res.Output, doc); err != nil {
		res.Error = err.Error()
		return res
	}

	if cfg.PreviewSize > 0 {
		res.After = filepath.Join(cfg.OutputDir, stem+".after.webp")
		img := preview.Render(doc, cfg.Assets, cfg.PreviewSize, cfg.Supersample)
		if err := preview.Save(res.After, img); err != nil {
			res.Error = err.Error()
			return res
		}
	}

	log.Debug().Int("processed", res.Summary.Processed).
		Int("skipped", res.Summary.Skipped).Msg("document done")
	res.Success = true
	return res
}
