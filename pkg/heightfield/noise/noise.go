// Package noise provides seeded, continuous 2D noise sources for height-field
// synthesis. Every Source returns values in [0, 1].
package noise

import (
	"fmt"
	"sort"
)

// Source samples coherent 2D noise. Implementations must be deterministic for
// a given seed, continuous across lattice points and safe for concurrent use.
type Source interface {
	Noise2D(x, y float64) float64
}

// Func adapts a plain function to a Source.
type Func func(x, y float64) float64

func (f Func) Noise2D(x, y float64) float64 { return f(x, y) }

// Factory builds a Source from a seed.
type Factory func(seed int64) Source

var factories = map[string]Factory{}

// Register makes a named source available to New. Registering an existing
// name replaces it.
func Register(name string, f Factory) {
	factories[name] = f
}

// New returns the source registered under name, seeded with seed.
func New(name string, seed int64) (Source, error) {
	f, ok := factories[name]
	if !ok {
		return nil, fmt.Errorf("unknown noise source: %s", name)
	}
	return f(seed), nil
}

// Names lists registered source names in sorted order.
func Names() []string {
	names := make([]string, 0, len(factories))
	for name := range factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func init() {
	Register("simplex", func(seed int64) Source { return NewSimplex(seed) })
	Register("perlin", func(seed int64) Source { return NewPerlin(seed) })
	Register("opensimplex", func(seed int64) Source { return NewOpenSimplex(seed) })
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
