/*package field represents scalar fields stored on staggered regular
Cartesian grids and interpolates them at arbitrary points.

A field lives at a Location along each axis: Face-located axes store one
value per cell face, Cell-located axes store one value per cell center.
A velocity component is Face-located along its own axis and Cell-located
along the other two.
*/
package field

import (
	"fmt"

	"github.com/phil-mansfield/drift/grid"
)

// Location tags where a field's sample points sit along one axis.
type Location int

const (
	Cell Location = iota
	Face
)

func (l Location) String() string {
	switch l {
	case Cell:
		return "Cell"
	case Face:
		return "Face"
	}
	return fmt.Sprintf("Location(%d)", int(l))
}

// Field is a scalar field on a staggered grid. Vals is stored flat with
// the x index varying fastest.
type Field struct {
	Name string
	Loc  [3]Location
	Vals []float64

	length, area, volume int
	compute              func(*Field) error
}

// New creates a zeroed field with the given per-axis locations on g.
func New(name string, loc [3]Location, g *grid.Grid) *Field {
	f := &Field{Name: name, Loc: loc}
	f.length = pointCount(loc[0], g, 0)
	area := pointCount(loc[1], g, 1)
	f.area = f.length * area
	f.volume = f.area * pointCount(loc[2], g, 2)
	f.Vals = make([]float64, f.volume)
	return f
}

func pointCount(loc Location, g *grid.Grid, d int) int {
	if loc == Face {
		return g.Cells(d) + 1
	}
	return g.Cells(d)
}

// Points returns the number of sample points along axis d.
func (f *Field) Points(d int) int {
	switch d {
	case 0:
		return f.length
	case 1:
		return f.area / f.length
	}
	return f.volume / f.area
}

// Idx returns the flat index of the sample point (i, j, k).
func (f *Field) Idx(i, j, k int) int {
	return i + j*f.length + k*f.area
}

// Coords returns the (i, j, k) sample point of a flat index.
func (f *Field) Coords(idx int) (i, j, k int) {
	i = idx % f.length
	j = (idx % f.area) / f.length
	k = idx / f.area
	return i, j, k
}

// Nodes returns the coordinates of the field's sample points along axis
// d: the grid's faces for a Face-located axis and its cell centers for a
// Cell-located axis. The returned slice must not be modified.
func (f *Field) Nodes(d int, g *grid.Grid) []float64 {
	if f.Loc[d] == Face {
		return g.Faces(d)
	}
	return g.Centers(d)
}

// Fill sets every sample point to fn evaluated at its coordinates.
func (f *Field) Fill(g *grid.Grid, fn func(x, y, z float64) float64) {
	xs, ys, zs := f.Nodes(0, g), f.Nodes(1, g), f.Nodes(2, g)
	idx := 0
	for k := range zs {
		for j := range ys {
			for i := range xs {
				f.Vals[idx] = fn(xs[i], ys[j], zs[k])
				idx++
			}
		}
	}
}

// SetCompute registers the hook that brings the field's values up to
// date before it is sampled.
func (f *Field) SetCompute(fn func(*Field) error) { f.compute = fn }

// Compute brings the field's values up to date. Fields without a
// registered hook are assumed to always be current.
func (f *Field) Compute() error {
	if f.compute == nil {
		return nil
	}
	return f.compute(f)
}
