package effectchain

import (
	"maps"
	"math"
)

// Params holds the parsed parameters for a single chain node.
type Params struct {
	ID       string
	Type     string
	Bypassed bool
	Num      map[string]float64
	Str      map[string]string
}

// GetNum safely extracts a numeric parameter, returning def if missing or invalid.
func (p Params) GetNum(key string, def float64) float64 {
	if p.Num == nil {
		return def
	}

	v, ok := p.Num[key]
	if !ok || math.IsNaN(v) || math.IsInf(v, 0) {
		return def
	}

	return v
}

// GetStr extracts a string parameter, returning def if missing.
func (p Params) GetStr(key, def string) string {
	if v, ok := p.Str[key]; ok {
		return v
	}

	return def
}

// Has reports whether a numeric parameter is present.
func (p Params) Has(key string) bool {
	_, ok := p.Num[key]
	return ok
}

// Clone returns a copy whose maps can be modified independently.
func (p Params) Clone() Params {
	c := p
	c.Num = maps.Clone(p.Num)
	c.Str = maps.Clone(p.Str)

	if c.Num == nil {
		c.Num = map[string]float64{}
	}

	if c.Str == nil {
		c.Str = map[string]string{}
	}

	return c
}

// With returns a copy with one numeric parameter replaced.
func (p Params) With(key string, value float64) Params {
	c := p.Clone()
	c.Num[key] = value

	return c
}
