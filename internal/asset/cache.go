package asset

import (
	"fmt"
	"image"
	"sync"
)

// Resolver looks up assets by the reference stored in a document.
type Resolver interface {
	// Size returns the native pixel size of the asset.
	Size(ref string) (image.Point, error)
	// Image returns the decoded asset, or nil if it cannot be loaded.
	Image(ref string) *image.NRGBA
}

// Cache is a concurrency-safe asset cache shared by all documents of a run.
type Cache struct {
	mu    sync.RWMutex
	sizes map[string]image.Point
	items map[string]*cacheEntry
	index *Index
}

type cacheEntry struct {
	img *image.NRGBA // nil if decoding failed
}

// NewCache creates a new asset cache backed by the given index.
func NewCache(index *Index) *Cache {
	return &Cache{
		sizes: make(map[string]image.Point),
		items: make(map[string]*cacheEntry),
		index: index,
	}
}

// Size decodes only the image header and caches the result.
func (c *Cache) Size(ref string) (image.Point, error) {
	path, ok := c.index.ResolvePath(ref)
	if !ok {
		return image.Point{}, fmt.Errorf("asset: %q not found under %s", ref, c.index.root)
	}

	c.mu.RLock()
	if sz, exists := c.sizes[path]; exists {
		c.mu.RUnlock()
		return sz, nil
	}
	c.mu.RUnlock()

	sz, err := DecodeSize(path)
	if err != nil {
		return image.Point{}, err
	}

	c.mu.Lock()
	c.sizes[path] = sz
	c.mu.Unlock()
	return sz, nil
}

// Image loads and caches an asset by reference. Returns nil if not found.
func (c *Cache) Image(ref string) *image.NRGBA {
	path, ok := c.index.ResolvePath(ref)
	if !ok {
		return nil
	}

	// Fast path: read lock
	c.mu.RLock()
	if entry, exists := c.items[path]; exists {
		c.mu.RUnlock()
		return entry.img
	}
	c.mu.RUnlock()

	// Slow path: load from disk
	img, _ := Load(path)

	// Write lock with double-check
	c.mu.Lock()
	if entry, exists := c.items[path]; exists {
		c.mu.Unlock()
		return entry.img
	}
	c.items[path] = &cacheEntry{img: img}
	if img != nil {
		c.sizes[path] = img.Bounds().Size()
	}
	c.mu.Unlock()

	return img
}
