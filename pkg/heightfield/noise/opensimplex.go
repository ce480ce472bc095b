package noise

import "github.com/ojrac/opensimplex-go"

// OpenSimplex wraps the normalized OpenSimplex generator, which already
// produces values in [0, 1].
type OpenSimplex struct {
	n opensimplex.Noise
}

func NewOpenSimplex(seed int64) *OpenSimplex {
	return &OpenSimplex{n: opensimplex.NewNormalized(seed)}
}

func (o *OpenSimplex) Noise2D(x, y float64) float64 {
	return clamp01(o.n.Eval2(x, y))
}
