package heightfield

// Vertex is a mesh vertex position.
type Vertex struct {
	X, Y, Z float64
}

// Vertices returns one vertex per sample, (x, height, z), in flat order.
func (g *Grid) Vertices() []Vertex {
	vs := make([]Vertex, len(g.heights))
	for z := 0; z <= g.length; z++ {
		for x := 0; x <= g.width; x++ {
			i := g.Index(x, z)
			vs[i] = Vertex{X: float64(x), Y: g.heights[i], Z: float64(z)}
		}
	}
	return vs
}

// Triangles returns the index buffer for a width×length quad mesh over the
// (width+1)×(length+1) vertex lattice: two triangles per quad.
func Triangles(width, length int) []int {
	if width <= 0 || length <= 0 {
		return nil
	}
	tris := make([]int, 0, width*length*6)
	stride := width + 1
	for z := 0; z < length; z++ {
		for x := 0; x < width; x++ {
			v := z*stride + x
			tris = append(tris,
				v, v+stride, v+1,
				v+1, v+stride, v+stride+1,
			)
		}
	}
	return tris
}
