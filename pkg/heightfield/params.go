package heightfield

import (
	"fmt"
	"math"
)

// NoiseParameters controls how octaves are layered.
type NoiseParameters struct {
	Scale       float64 `json:"scale"`       // sampling frequency multiplier
	Octaves     int     `json:"octaves"`     // number of noise layers
	Persistence float64 `json:"persistence"` // amplitude decay per octave
	Lacunarity  float64 `json:"lacunarity"`  // frequency growth per octave
}

// Validate reports the first precondition the parameters violate.
func (p NoiseParameters) Validate() error {
	switch {
	case !finitePositive(p.Scale):
		return fmt.Errorf("%w: scale must be > 0, got %v", ErrInvalidArgument, p.Scale)
	case p.Octaves < 1:
		return fmt.Errorf("%w: octaves must be >= 1, got %d", ErrInvalidArgument, p.Octaves)
	case !(p.Persistence > 0 && p.Persistence <= 1):
		return fmt.Errorf("%w: persistence must be in (0,1], got %v", ErrInvalidArgument, p.Persistence)
	case !finitePositive(p.Lacunarity):
		return fmt.Errorf("%w: lacunarity must be > 0, got %v", ErrInvalidArgument, p.Lacunarity)
	}
	return nil
}

func finitePositive(v float64) bool {
	return v > 0 && !math.IsInf(v, 1)
}

func validateDims(width, length int, maxHeight float64) error {
	if width <= 0 || length <= 0 {
		return fmt.Errorf("%w: dimensions must be positive, got %dx%d", ErrInvalidArgument, width, length)
	}
	if !finitePositive(maxHeight) {
		return fmt.Errorf("%w: max height must be > 0, got %v", ErrInvalidArgument, maxHeight)
	}
	return nil
}
