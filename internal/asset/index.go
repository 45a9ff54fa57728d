// Package asset locates and decodes the image files that linked and raster
// items reference.
package asset

import (
	"os"
	"path/filepath"
	"strings"
)

// extPriority ranks formats when two files share a stem. Lossless formats
// with alpha win.
var extPriority = map[string]int{
	".png":  5,
	".tga":  4,
	".webp": 3,
	".bmp":  2,
	".jpg":  1,
	".jpeg": 1,
}

// Index maps asset references to filesystem paths. A reference resolves by
// its slash-separated path relative to the root first, then by its
// lowercase stem.
type Index struct {
	root   string
	byPath map[string]string // lowercase relative path → full path
	byStem map[string]string // lowercase stem → full path
}

// BuildIndex scans root and its subdirectories for image files.
func BuildIndex(root string) *Index {
	idx := &Index{
		root:   root,
		byPath: make(map[string]string),
		byStem: make(map[string]string),
	}
	if root == "" {
		return idx
	}

	filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return nil
		}
		ext := strings.ToLower(filepath.Ext(path))
		if extPriority[ext] == 0 {
			return nil
		}
		if rel, err := filepath.Rel(root, path); err == nil {
			idx.byPath[strings.ToLower(filepath.ToSlash(rel))] = path
		}
		stem := strings.ToLower(strings.TrimSuffix(filepath.Base(path), filepath.Ext(path)))
		existing, exists := idx.byStem[stem]
		if !exists || extPriority[ext] > extPriority[strings.ToLower(filepath.Ext(existing))] {
			idx.byStem[stem] = path
		}
		return nil
	})

	return idx
}

// ResolvePath returns the filesystem path for an asset reference, or ("", false).
func (idx *Index) ResolvePath(ref string) (string, bool) {
	// Documents written on Windows use backslashes.
	ref = strings.ReplaceAll(ref, "\\", "/")
	if path, ok := idx.byPath[strings.ToLower(strings.TrimPrefix(ref, "./"))]; ok {
		return path, true
	}
	base := filepath.Base(ref)
	stem := strings.ToLower(strings.TrimSuffix(base, filepath.Ext(base)))
	path, ok := idx.byStem[stem]
	return path, ok
}

// Len returns the number of indexed files.
func (idx *Index) Len() int {
	return len(idx.byPath)
}
