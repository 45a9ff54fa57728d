package preset

import "xform-reset/internal/reset"

// Entry is one set of per-item option overrides. Nil fields keep the base
// value.
type Entry struct {
	Preset  string  `json:"preset,omitempty"`
	Rotate  *bool   `json:"rotate,omitempty"`
	Skew    *bool   `json:"skew,omitempty"`
	Ratio   *bool   `json:"ratio,omitempty"`
	Flip    *bool   `json:"flip,omitempty"`
	Scale   *bool   `json:"scale,omitempty"`
	Percent *string `json:"percent,omitempty"`
	Replace *bool   `json:"replace,omitempty"`
}

// apply merges the non-nil fields of e onto o.
func (e Entry) apply(o reset.Options) reset.Options {
	if e.Rotate != nil {
		o.Rotate = *e.Rotate
	}
	if e.Skew != nil {
		o.Skew = *e.Skew
	}
	if e.Ratio != nil {
		o.Ratio = *e.Ratio
	}
	if e.Flip != nil {
		o.Flip = *e.Flip
	}
	if e.Scale != nil {
		o.Scale = *e.Scale
	}
	if e.Percent != nil {
		o.ScalePercent = reset.ParsePercent(*e.Percent)
	}
	if e.Replace != nil {
		o.Replace = *e.Replace
	}
	return o
}

// Set maps item names to resolved overrides.
type Set struct {
	items map[string][]Entry
}

// For returns base with the overrides for the named item applied. Items
// without an entry get base unchanged.
func (s *Set) For(name string, base reset.Options) reset.Options {
	if s == nil {
		return base
	}
	for _, e := range s.items[name] {
		base = e.apply(base)
	}
	return base
}

// Len reports how many items carry overrides.
func (s *Set) Len() int {
	if s == nil {
		return 0
	}
	return len(s.items)
}
