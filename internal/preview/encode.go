package preview

import (
	"fmt"
	"image"
	"io"
	"os"
	"path/filepath"

	"github.com/HugoSmits86/nativewebp"
)

// Encode writes img as lossless WebP.
func Encode(w io.Writer, img image.Image) error {
	return nativewebp.Encode(w, img, nil)
}

// Save encodes img to path, creating parent directories.
func Save(path string, img image.Image) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("preview: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("preview: create %s: %w", path, err)
	}
	if err := Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("preview: encode %s: %w", path, err)
	}
	return f.Close()
}
