package noise

// Simplex is 2D simplex noise over a seeded permutation table.
type Simplex struct {
	perm [512]int
}

// grad2 holds the twelve edge gradients of a cube; only x and y are used.
var grad2 = [12][2]float64{
	{1, 1}, {-1, 1}, {1, -1}, {-1, -1},
	{1, 0}, {-1, 0}, {1, 0}, {-1, 0},
	{0, 1}, {0, -1}, {0, 1}, {0, -1},
}

// NewSimplex shuffles the permutation table with an LCG driven by seed.
func NewSimplex(seed int64) *Simplex {
	var p [256]int
	for i := range p {
		p[i] = i
	}

	s := seed
	for i := 255; i > 0; i-- {
		s = s*6364136223846793005 + 1442695040888963407
		j := int((s>>33)&0x7FFFFFFF) % (i + 1)
		p[i], p[j] = p[j], p[i]
	}

	sx := &Simplex{}
	for i := range sx.perm {
		sx.perm[i] = p[i&255]
	}
	return sx
}

// Noise2D returns simplex noise at (x, y) remapped from [-1, 1] to [0, 1].
func (sx *Simplex) Noise2D(x, y float64) float64 {
	return clamp01((sx.raw(x, y) + 1) / 2)
}

func (sx *Simplex) raw(x, y float64) float64 {
	const (
		f2 = 0.36602540378443864676 // (sqrt(3) - 1) / 2
		g2 = 0.21132486540518711775 // (3 - sqrt(3)) / 6
	)

	skew := (x + y) * f2
	i := floor(x + skew)
	j := floor(y + skew)

	unskew := float64(i+j) * g2
	x0 := x - (float64(i) - unskew)
	y0 := y - (float64(j) - unskew)

	i1, j1 := 0, 1
	if x0 > y0 {
		i1, j1 = 1, 0
	}

	x1 := x0 - float64(i1) + g2
	y1 := y0 - float64(j1) + g2
	x2 := x0 - 1 + 2*g2
	y2 := y0 - 1 + 2*g2

	ii := i & 255
	jj := j & 255

	n := corner(sx.perm[ii+sx.perm[jj]]%12, x0, y0) +
		corner(sx.perm[ii+i1+sx.perm[jj+j1]]%12, x1, y1) +
		corner(sx.perm[ii+1+sx.perm[jj+1]]%12, x2, y2)

	return 70 * n
}

func corner(gi int, x, y float64) float64 {
	t := 0.5 - x*x - y*y
	if t < 0 {
		return 0
	}
	t *= t
	g := grad2[gi]
	return t * t * (g[0]*x + g[1]*y)
}

func floor(x float64) int {
	xi := int(x)
	if x < float64(xi) {
		return xi - 1
	}
	return xi
}
