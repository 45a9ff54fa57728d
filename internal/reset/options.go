package reset

import (
	"math"
	"strconv"
	"strings"
)

// DefaultPercent is the absolute scale applied when none, or an invalid
// one, is given.
const DefaultPercent = 100

// Options selects which components of an item's transform to reset. It is
// user intent, passed by value; nothing here is persisted.
type Options struct {
	Rotate  bool `json:"rotate"`
	Skew    bool `json:"skew"`
	Ratio   bool `json:"ratio"`
	Flip    bool `json:"flip"`
	Scale   bool `json:"scale"`
	Replace bool `json:"replace"`

	// ScalePercent is the size, relative to native, that Scale resizes to.
	ScalePercent int `json:"scale_percent"`
}

// Percent returns ScalePercent, or DefaultPercent when it is not positive.
func (o Options) Percent() int {
	if o.ScalePercent <= 0 {
		return DefaultPercent
	}
	return o.ScalePercent
}

// matrixWork reports whether any option other than Replace is set.
func (o Options) matrixWork() bool {
	return o.Rotate || o.Skew || o.Ratio || o.Flip || o.Scale
}

// Any reports whether the options ask for anything at all.
func (o Options) Any() bool {
	return o.matrixWork() || o.Replace
}

func (o Options) String() string {
	var parts []string
	for _, f := range []struct {
		on   bool
		name string
	}{
		{o.Rotate, "rotate"},
		{o.Flip, "flip"},
		{o.Ratio, "ratio"},
		{o.Scale, "scale=" + strconv.Itoa(o.Percent()) + "%"},
		{o.Skew, "skew"},
		{o.Replace, "replace"},
	} {
		if f.on {
			parts = append(parts, f.name)
		}
	}
	if len(parts) == 0 {
		return "none"
	}
	return strings.Join(parts, ",")
}

// ParsePercent reads a user-entered scale percentage. Anything that is not a
// positive number, including an empty string, yields DefaultPercent.
// Fractions are rounded to the nearest whole percent.
func ParsePercent(s string) int {
	s = strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(s), "%"))
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || v < 0.5 || v > 1e6 {
		return DefaultPercent
	}
	return int(v + 0.5)
}
