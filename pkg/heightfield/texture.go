package heightfield

import "sort"

// Blend holds texture layer weights.
type Blend struct {
	Grass, Dirt, Rock float64
}

var (
	blendBounds = []float64{0.3, 0.5, 0.75}
	blendLayers = []Blend{
		{Grass: 0, Dirt: 1, Rock: 0},
		{Grass: 1, Dirt: 0.2, Rock: 0},
		{Grass: 0.3, Dirt: 0.4, Rock: 1},
		{Grass: 0, Dirt: 0.3, Rock: 1},
	}
)

// TextureBlend returns the layer weights for a normalized height ratio.
func TextureBlend(r float64) Blend {
	return blendLayers[sort.Search(len(blendBounds), func(i int) bool { return r < blendBounds[i] })]
}
