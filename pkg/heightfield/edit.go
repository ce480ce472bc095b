package heightfield

import (
	"fmt"
	"math"
)

// EditRadial raises (delta > 0) or lowers (delta < 0) every sample within
// radius of (centerX, centerZ) on the x/z plane, with linear falloff from the
// full delta at the centre to nothing at the radius. Touched samples are
// reclassified. It returns the number of samples changed.
func EditRadial(g *Grid, centerX, centerZ, radius, delta float64) (int, error) {
	if !finitePositive(radius) {
		return 0, fmt.Errorf("%w: radius must be > 0, got %v", ErrInvalidArgument, radius)
	}
	if !finite(centerX) || !finite(centerZ) || !finite(delta) {
		return 0, fmt.Errorf("%w: non-finite edit (%v,%v) delta %v", ErrInvalidArgument, centerX, centerZ, delta)
	}

	n := 0
	for z := 0; z <= g.length; z++ {
		for x := 0; x <= g.width; x++ {
			d := math.Hypot(float64(x)-centerX, float64(z)-centerZ)
			if d >= radius {
				continue
			}
			i := g.Index(x, z)
			g.heights[i] += delta * (1 - d/radius)
			g.bands[i] = g.classifier.Classify(g.heights[i], g.maxHeight)
			n++
		}
	}
	return n, nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
