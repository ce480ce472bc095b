package noise

import "github.com/aquilax/go-perlin"

// Perlin is classic gradient noise sampled as a single octave; layering is
// left to the synthesizer.
type Perlin struct {
	p *perlin.Perlin
}

// NewPerlin creates a single-octave Perlin source.
func NewPerlin(seed int64) *Perlin {
	return &Perlin{p: perlin.NewPerlin(2, 2, 1, seed)}
}

// Noise2D returns Perlin noise at (x, y) remapped from [-1, 1] to [0, 1].
func (pn *Perlin) Noise2D(x, y float64) float64 {
	return clamp01((pn.p.Noise2D(x, y) + 1) / 2)
}
