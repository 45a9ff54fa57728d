package batch

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// ManifestEntry represents one document in the output manifest.
type ManifestEntry struct {
	Document         string      `json:"document"`
	Output           string      `json:"output,omitempty"`
	Before           string      `json:"before,omitempty"`
	After            string      `json:"after,omitempty"`
	Items            int         `json:"items"`
	Processed        int         `json:"processed"`
	Replaced         int         `json:"replaced"`
	Ineligible       int         `json:"ineligible"`
	NothingProcessed bool        `json:"nothing_processed,omitempty"`
	Error            string      `json:"error,omitempty"`
	Reports          []ItemEntry `json:"items_detail,omitempty"`
}

// ItemEntry is the manifest form of a reset.Report.
type ItemEntry struct {
	Name       string   `json:"name"`
	Category   string   `json:"category"`
	Ineligible bool     `json:"ineligible,omitempty"`
	Replaced   bool     `json:"replaced,omitempty"`
	Steps      []string `json:"steps,omitempty"`
	Skipped    []string `json:"skipped,omitempty"`
}

// rel makes p relative to dir for the manifest, falling back to p.
func rel(dir, p string) string {
	if p == "" {
		return ""
	}
	if r, err := filepath.Rel(dir, p); err == nil {
		return filepath.ToSlash(r)
	}
	return p
}

// WriteManifest writes the batch results as JSON to path. Output paths are
// recorded relative to the manifest's directory.
func WriteManifest(path string, results []Result) error {
	dir := filepath.Dir(path)
	entries := make([]ManifestEntry, len(results))
	for i, r := range results {
		e := ManifestEntry{
			Document:         r.Document,
			Output:           rel(dir, r.Output),
			Before:           rel(dir, r.Before),
			After:            rel(dir, r.After),
			Items:            r.Summary.Items,
			Processed:        r.Summary.Processed,
			Replaced:         r.Summary.Replaced,
			Ineligible:       r.Summary.Ineligible,
			NothingProcessed: r.NothingProcessed,
			Error:            r.Error,
		}
		for _, rep := range r.Reports {
			ie := ItemEntry{
				Name:       rep.Name,
				Category:   rep.Category.String(),
				Ineligible: rep.Ineligible,
				Replaced:   rep.Replaced,
				Steps:      rep.Steps,
			}
			for _, se := range rep.Skipped {
				ie.Skipped = append(ie.Skipped, se.Error())
			}
			e.Reports = append(e.Reports, ie)
		}
		entries[i] = e
	}

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return err
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("batch: %w", err)
	}
	return os.WriteFile(path, data, 0644)
}
