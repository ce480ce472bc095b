package heightfield

import (
	"fmt"
	"math"

	"github.com/OCharnyshevich/heightfield/pkg/heightfield/noise"
)

// BlockMap is a width×length map of integer column heights for block terrain.
type BlockMap struct {
	Width, Length int
	Columns       []int // index = z*Width + x
}

// Column returns the column height at (x, z).
func (m *BlockMap) Column(x, z int) (int, error) {
	if x < 0 || x >= m.Width || z < 0 || z >= m.Length {
		return 0, fmt.Errorf("%w: (%d,%d) not in [0,%d)x[0,%d)", ErrOutOfBounds, x, z, m.Width, m.Length)
	}
	return m.Columns[z*m.Width+x], nil
}

// SynthesizeBlocks samples one octave of src at (x/frequency+0.1, z/frequency+0.1)
// and rounds noise*blockHeight*scale to whole blocks, halves to even.
func SynthesizeBlocks(src noise.Source, width, length int, frequency, blockHeight, scale float64) (*BlockMap, error) {
	if width <= 0 || length <= 0 {
		return nil, fmt.Errorf("%w: dimensions must be positive, got %dx%d", ErrInvalidArgument, width, length)
	}
	if !finitePositive(frequency) {
		return nil, fmt.Errorf("%w: frequency must be > 0, got %v", ErrInvalidArgument, frequency)
	}
	if !finite(blockHeight) || !finite(scale) {
		return nil, fmt.Errorf("%w: non-finite block height %v or scale %v", ErrInvalidArgument, blockHeight, scale)
	}

	m := &BlockMap{Width: width, Length: length, Columns: make([]int, width*length)}
	for z := 0; z < length; z++ {
		for x := 0; x < width; x++ {
			n := src.Noise2D(float64(x)/frequency+0.1, float64(z)/frequency+0.1)
			m.Columns[z*width+x] = int(math.RoundToEven(n * blockHeight * scale))
		}
	}
	return m, nil
}
