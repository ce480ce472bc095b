package heightfield

import "fmt"

// Grid is a (width+1)×(length+1) lattice of height samples and their bands,
// stored row-major with z as the outer axis.
//
// Heights only change through EditRadial, which keeps bands in step.
type Grid struct {
	width, length int
	maxHeight     float64
	heights       []float64
	bands         []Band
	classifier    *Classifier
}

func newGrid(width, length int, maxHeight float64, c *Classifier) *Grid {
	n := (width + 1) * (length + 1)
	return &Grid{
		width:      width,
		length:     length,
		maxHeight:  maxHeight,
		heights:    make([]float64, n),
		bands:      make([]Band, n),
		classifier: c,
	}
}

// Restore rebuilds a grid from previously synthesized samples. Bands are
// taken as given so that forced water samples survive a round trip, but each
// must be a known band. Later edits reclassify with DefaultClassifier unless
// SetClassifier replaces it.
func Restore(width, length int, maxHeight float64, heights []float64, bands []Band) (*Grid, error) {
	if err := validateDims(width, length, maxHeight); err != nil {
		return nil, err
	}
	n := (width + 1) * (length + 1)
	if len(heights) != n || len(bands) != n {
		return nil, fmt.Errorf("%w: want %d samples, got %d heights and %d bands",
			ErrInvalidArgument, n, len(heights), len(bands))
	}
	for i, b := range bands {
		if int(b) >= numBands {
			return nil, fmt.Errorf("%w: sample %d has unknown band %d", ErrInvalidArgument, i, uint8(b))
		}
	}
	g := newGrid(width, length, maxHeight, DefaultClassifier)
	copy(g.heights, heights)
	copy(g.bands, bands)
	return g, nil
}

// SetClassifier sets the table used to reclassify samples on edit. Existing
// bands are left as they are.
func (g *Grid) SetClassifier(c *Classifier) {
	if c != nil {
		g.classifier = c
	}
}

func (g *Grid) Width() int         { return g.width }
func (g *Grid) Length() int        { return g.length }
func (g *Grid) MaxHeight() float64 { return g.maxHeight }

// Len returns the number of samples, (width+1)*(length+1).
func (g *Grid) Len() int { return len(g.heights) }

// Contains reports whether (x, z) addresses a sample.
func (g *Grid) Contains(x, z int) bool {
	return x >= 0 && x <= g.width && z >= 0 && z <= g.length
}

// Index returns the flat offset of (x, z). The caller must check Contains.
func (g *Grid) Index(x, z int) int {
	return z*(g.width+1) + x
}

// Height returns the height at (x, z).
func (g *Grid) Height(x, z int) (float64, error) {
	if !g.Contains(x, z) {
		return 0, g.outOfBounds(x, z)
	}
	return g.heights[g.Index(x, z)], nil
}

// Band returns the band at (x, z).
func (g *Grid) Band(x, z int) (Band, error) {
	if !g.Contains(x, z) {
		return 0, g.outOfBounds(x, z)
	}
	return g.bands[g.Index(x, z)], nil
}

// Heights returns a copy of all heights in flat order.
func (g *Grid) Heights() []float64 {
	out := make([]float64, len(g.heights))
	copy(out, g.heights)
	return out
}

// Bands returns a copy of all bands in flat order.
func (g *Grid) Bands() []Band {
	out := make([]Band, len(g.bands))
	copy(out, g.bands)
	return out
}

// BandCounts returns how many samples fall into each band.
func (g *Grid) BandCounts() map[Band]int {
	counts := make(map[Band]int, numBands)
	for _, b := range g.bands {
		counts[b]++
	}
	return counts
}

// Clone returns an independent copy of the grid.
func (g *Grid) Clone() *Grid {
	c := newGrid(g.width, g.length, g.maxHeight, g.classifier)
	copy(c.heights, g.heights)
	copy(c.bands, g.bands)
	return c
}

func (g *Grid) outOfBounds(x, z int) error {
	return fmt.Errorf("%w: (%d,%d) not in [0,%d]x[0,%d]", ErrOutOfBounds, x, z, g.width, g.length)
}
