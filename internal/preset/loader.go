// Package preset loads per-item reset options from a JSON file:
//
//	{
//	  "presets": {"upright": {"rotate": true, "flip": true}},
//	  "items": {
//	    "logo": "upright",
//	    "badge": {"preset": "upright", "scale": true, "percent": "150%"}
//	  }
//	}
//
// An item value is either a preset name or an inline entry. Inline fields
// win over the preset they name.
package preset

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
)

type file struct {
	Presets map[string]json.RawMessage `json:"presets"`
	Items   map[string]json.RawMessage `json:"items"`
}

// Load reads a preset file. A missing file yields an empty set.
func Load(path string) (*Set, error) {
	raw, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return &Set{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("preset: read %s: %w", path, err)
	}
	s, err := Decode(raw)
	if err != nil {
		return nil, fmt.Errorf("preset: parse %s: %w", path, err)
	}
	return s, nil
}

// Decode builds a set from JSON.
func Decode(raw []byte) (*Set, error) {
	var f file
	if err := json.Unmarshal(raw, &f); err != nil {
		return nil, err
	}
	s := &Set{items: make(map[string][]Entry, len(f.Items))}
	for name, rawEntry := range f.Items {
		chain, err := resolve(rawEntry, f.Presets)
		if err != nil {
			return nil, fmt.Errorf("item %q: %w", name, err)
		}
		s.items[name] = chain
	}
	return s, nil
}

// resolve turns a preset name or inline entry into the entries to apply in
// order: the referenced preset first, then the inline fields.
func resolve(raw json.RawMessage, presets map[string]json.RawMessage) ([]Entry, error) {
	var name string
	if err := json.Unmarshal(raw, &name); err == nil {
		return lookup(name, presets)
	}
	var e Entry
	if err := json.Unmarshal(raw, &e); err != nil {
		return nil, err
	}
	if e.Preset == "" {
		return []Entry{e}, nil
	}
	base, err := lookup(e.Preset, presets)
	if err != nil {
		return nil, err
	}
	return append(base, e), nil
}

func lookup(name string, presets map[string]json.RawMessage) ([]Entry, error) {
	raw, ok := presets[name]
	if !ok {
		return nil, fmt.Errorf("preset %q not found", name)
	}
	var e Entry
	if err := json.Unmarshal(raw, &e); err != nil {
		return nil, fmt.Errorf("preset %q: %w", name, err)
	}
	if e.Preset != "" {
		return nil, fmt.Errorf("preset %q: presets cannot reference other presets", name)
	}
	return []Entry{e}, nil
}
