package field

import (
	"sort"

	"github.com/phil-mansfield/drift/grid"
)

// Sampler interpolates one field at arbitrary points. The node
// coordinate arrays are resolved from the field's locations once at
// construction, so kernels which sample many points should create a
// single Sampler and reuse it.
type Sampler struct {
	f     *Field
	nodes [3][]float64
}

// NewSampler creates a Sampler for f on g.
func NewSampler(f *Field, g *grid.Grid) *Sampler {
	return &Sampler{
		f: f,
		nodes: [3][]float64{
			f.Nodes(0, g), f.Nodes(1, g), f.Nodes(2, g),
		},
	}
}

// At returns the trilinear interpolation of the field at (x, y, z). It
// is defined for any point inside or on the boundary of the grid's
// domain; points beyond the outermost sample points are linearly
// extrapolated from the nearest pair.
func (s *Sampler) At(x, y, z float64) float64 {
	i0, i1, tx := bracket(s.nodes[0], x)
	j0, j1, ty := bracket(s.nodes[1], y)
	k0, k1, tz := bracket(s.nodes[2], z)

	f := s.f
	v000 := f.Vals[f.Idx(i0, j0, k0)]
	v100 := f.Vals[f.Idx(i1, j0, k0)]
	v010 := f.Vals[f.Idx(i0, j1, k0)]
	v110 := f.Vals[f.Idx(i1, j1, k0)]
	v001 := f.Vals[f.Idx(i0, j0, k1)]
	v101 := f.Vals[f.Idx(i1, j0, k1)]
	v011 := f.Vals[f.Idx(i0, j1, k1)]
	v111 := f.Vals[f.Idx(i1, j1, k1)]

	v00 := v000 + (v100-v000)*tx
	v10 := v010 + (v110-v010)*tx
	v01 := v001 + (v101-v001)*tx
	v11 := v011 + (v111-v011)*tx

	v0 := v00 + (v10-v00)*ty
	v1 := v01 + (v11-v01)*ty

	return v0 + (v1-v0)*tz
}

// bracket finds the node pair surrounding x and the fractional distance
// between them. Axes with a single node are flat: both indices are 0 and
// the fraction does not matter.
func bracket(nodes []float64, x float64) (i0, i1 int, t float64) {
	if len(nodes) == 1 {
		return 0, 0, 0
	}

	i := sort.SearchFloat64s(nodes, x) - 1
	if i < 0 {
		i = 0
	} else if i > len(nodes)-2 {
		i = len(nodes) - 2
	}

	t = (x - nodes[i]) / (nodes[i+1] - nodes[i])
	return i, i + 1, t
}

// Sample interpolates f at a single point. It constructs a throwaway
// Sampler, so hot loops should use NewSampler directly.
func Sample(f *Field, g *grid.Grid, x, y, z float64) float64 {
	return NewSampler(f, g).At(x, y, z)
}
