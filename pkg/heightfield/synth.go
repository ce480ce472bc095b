// Package heightfield synthesizes terrain height fields from layered noise
// and classifies every sample into a terrain band.
package heightfield

import (
	"golang.org/x/sync/errgroup"

	"github.com/OCharnyshevich/heightfield/pkg/heightfield/noise"
)

// Seed amplitude of the first octave. maxAmplitude starts at 1, not at this
// value, and is updated after each octave with the decayed amplitude.
const seedAmplitude = 2.0

// Synthesizer turns noise into height fields.
type Synthesizer struct {
	src        noise.Source
	classifier *Classifier
	workers    int
}

// Option configures a Synthesizer.
type Option func(*Synthesizer)

// WithClassifier replaces DefaultClassifier.
func WithClassifier(c *Classifier) Option {
	return func(s *Synthesizer) { s.classifier = c }
}

// WithWorkers evaluates rows on up to n goroutines. Output does not depend on n.
func WithWorkers(n int) Option {
	return func(s *Synthesizer) {
		if n > 0 {
			s.workers = n
		}
	}
}

// NewSynthesizer creates a Synthesizer sampling src.
func NewSynthesizer(src noise.Source, opts ...Option) *Synthesizer {
	s := &Synthesizer{
		src:        src,
		classifier: DefaultClassifier,
		workers:    1,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Synthesize builds a grid of (width+1)×(length+1) samples. Heights are
// floored at 0 but not clamped above: the first octave's amplitude of 2 lets
// them exceed maxHeight. Invalid arguments yield ErrInvalidArgument and no grid.
func (s *Synthesizer) Synthesize(width, length int, maxHeight float64, p NoiseParameters) (*Grid, error) {
	if err := validateDims(width, length, maxHeight); err != nil {
		return nil, err
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}

	g := newGrid(width, length, maxHeight, s.classifier)

	if s.workers <= 1 {
		for z := 0; z <= length; z++ {
			s.fillRow(g, z, p)
		}
		return g, nil
	}

	var eg errgroup.Group
	eg.SetLimit(s.workers)
	for z := 0; z <= length; z++ {
		z := z
		eg.Go(func() error {
			s.fillRow(g, z, p)
			return nil
		})
	}
	_ = eg.Wait()
	return g, nil
}

// fillRow writes one z row. Rows touch disjoint slices of the grid.
func (s *Synthesizer) fillRow(g *Grid, z int, p NoiseParameters) {
	row := z * (g.width + 1)
	for x := 0; x <= g.width; x++ {
		h, b := settle(s.octaves(x, z, p)*g.maxHeight, g.maxHeight, s.classifier)
		g.heights[row+x] = h
		g.bands[row+x] = b
	}
}

// octaves returns the layered noise at (x, z), normalized by the accumulated
// amplitude but not yet scaled to maxHeight.
func (s *Synthesizer) octaves(x, z int, p NoiseParameters) float64 {
	var y float64
	frequency := 1.0
	amplitude := seedAmplitude
	maxAmplitude := 1.0

	fx := float64(x) * p.Scale
	fz := float64(z) * p.Scale
	for i := 0; i < p.Octaves; i++ {
		y += s.src.Noise2D(fx*frequency, fz*frequency) * amplitude

		frequency *= p.Lacunarity
		amplitude *= p.Persistence
		maxAmplitude += amplitude
	}
	return y / maxAmplitude
}

// settle applies the water floor: a negative height becomes 0 and is water
// regardless of the classifier. Other heights are classified as-is.
func settle(y, maxHeight float64, c *Classifier) (float64, Band) {
	if y < 0 {
		return 0, BandWater
	}
	return y, c.Classify(y, maxHeight)
}
