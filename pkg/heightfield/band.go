package heightfield

import (
	"fmt"
	"image/color"
	"sort"
)

// Band is the terrain type of a sample, derived from its normalized height.
type Band uint8

const (
	BandWater Band = iota
	BandGrass
	BandDirt
	BandRock
	BandSnow

	numBands = int(BandSnow) + 1
)

var bandNames = [numBands]string{"water", "grass", "dirt", "rock", "snow"}

func (b Band) String() string {
	if int(b) < numBands {
		return bandNames[b]
	}
	return fmt.Sprintf("band(%d)", uint8(b))
}

// MarshalText encodes the band by name.
func (b Band) MarshalText() ([]byte, error) {
	if int(b) >= numBands {
		return nil, fmt.Errorf("%w: unknown band %d", ErrInvalidArgument, uint8(b))
	}
	return []byte(bandNames[b]), nil
}

// UnmarshalText decodes a band name as written by MarshalText.
func (b *Band) UnmarshalText(text []byte) error {
	for i, name := range bandNames {
		if string(text) == name {
			*b = Band(i)
			return nil
		}
	}
	return fmt.Errorf("%w: unknown band %q", ErrInvalidArgument, text)
}

// Color returns the preview colour used for the band.
func (b Band) Color() color.RGBA {
	switch b {
	case BandWater:
		return color.RGBA{0, 0, 255, 255}
	case BandGrass:
		return color.RGBA{0, 255, 0, 255}
	case BandDirt:
		return color.RGBA{140, 69, 18, 255} // (0.55, 0.27, 0.07)
	case BandRock:
		return color.RGBA{128, 128, 128, 255}
	default:
		return color.RGBA{255, 255, 255, 255}
	}
}

// Threshold closes a band: ratios strictly below Below belong to Band.
type Threshold struct {
	Below float64
	Band  Band
}

// Classifier maps a normalized height ratio to a band with an ordered,
// first-match table. Ratios at or above the last bound fall into Top.
//
// Bounds are exclusive on the upper side, so a ratio exactly on a bound
// belongs to the next band up.
type Classifier struct {
	bounds []float64
	bands  []Band
	top    Band
}

// DefaultClassifier is the water/grass/dirt/rock/snow table:
//
//	r < 0.25        water
//	0.25 <= r < 0.40 grass
//	0.40 <= r < 0.60 dirt
//	0.60 <= r < 0.85 rock
//	r >= 0.85        snow
var DefaultClassifier = MustClassifier([]Threshold{
	{Below: 0.25, Band: BandWater},
	{Below: 0.40, Band: BandGrass},
	{Below: 0.60, Band: BandDirt},
	{Below: 0.85, Band: BandRock},
}, BandSnow)

// NewClassifier builds a classifier from thresholds sorted by strictly
// increasing Below, with top as the band for everything above the last one.
func NewClassifier(table []Threshold, top Band) (*Classifier, error) {
	c := &Classifier{
		bounds: make([]float64, len(table)),
		bands:  make([]Band, len(table)),
		top:    top,
	}
	for i, t := range table {
		if i > 0 && t.Below <= table[i-1].Below {
			return nil, fmt.Errorf("%w: threshold %d (%v) not above %v", ErrInvalidArgument, i, t.Below, table[i-1].Below)
		}
		c.bounds[i] = t.Below
		c.bands[i] = t.Band
	}
	return c, nil
}

// MustClassifier is like NewClassifier but panics on an invalid table.
func MustClassifier(table []Threshold, top Band) *Classifier {
	c, err := NewClassifier(table, top)
	if err != nil {
		panic(err)
	}
	return c
}

// Ratio returns the band for a normalized height ratio.
func (c *Classifier) Ratio(r float64) Band {
	i := sort.Search(len(c.bounds), func(i int) bool { return r < c.bounds[i] })
	if i == len(c.bounds) {
		return c.top
	}
	return c.bands[i]
}

// Classify returns the band for height on a terrain of the given max height.
func (c *Classifier) Classify(height, maxHeight float64) Band {
	return c.Ratio(height / maxHeight)
}

// Classify uses DefaultClassifier.
func Classify(height, maxHeight float64) Band {
	return DefaultClassifier.Classify(height, maxHeight)
}
