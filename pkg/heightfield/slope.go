package heightfield

import "math"

// Slope returns the steepest forward slope at (x, z) in degrees, comparing
// the sample with its +x and +z neighbours at unit spacing. Samples on the far
// edges have no forward neighbour and report 0.
func Slope(g *Grid, x, z int) (float64, error) {
	if !g.Contains(x, z) {
		return 0, g.outOfBounds(x, z)
	}
	if x == g.width || z == g.length {
		return 0, nil
	}
	return g.slope(x, z), nil
}

func (g *Grid) slope(x, z int) float64 {
	h := g.heights[g.Index(x, z)]
	dx := math.Abs(h - g.heights[g.Index(x+1, z)])
	dz := math.Abs(h - g.heights[g.Index(x, z+1)])
	return math.Atan(math.Max(dx, dz)) * 180 / math.Pi
}

// Site is a placement position on the terrain surface.
type Site struct {
	X, Z   int
	Height float64
	Band   Band
}

// PlacementSites returns the samples flat enough to place props on: slope
// strictly below maxSlope degrees and band not in exclude. Edge samples are
// never returned.
func PlacementSites(g *Grid, maxSlope float64, exclude ...Band) []Site {
	var skip [numBands]bool
	for _, b := range exclude {
		if int(b) < numBands {
			skip[b] = true
		}
	}

	var sites []Site
	for z := 0; z < g.length; z++ {
		for x := 0; x < g.width; x++ {
			if g.slope(x, z) >= maxSlope {
				continue
			}
			i := g.Index(x, z)
			if skip[g.bands[i]] {
				continue
			}
			sites = append(sites, Site{X: x, Z: z, Height: g.heights[i], Band: g.bands[i]})
		}
	}
	return sites
}
