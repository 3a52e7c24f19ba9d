/*package grid represents staggered regular Cartesian meshes and the
per-axis boundary topologies used to keep particle coordinates inside
them.
*/
package grid

import (
	"fmt"
)

// Topology tags how an axis treats coordinates that leave the domain.
type Topology int

const (
	Bounded Topology = iota
	Periodic
)

func (t Topology) String() string {
	switch t {
	case Bounded:
		return "Bounded"
	case Periodic:
		return "Periodic"
	}
	return fmt.Sprintf("Topology(%d)", int(t))
}

// ParseTopology converts a topology name into a Topology tag.
func ParseTopology(s string) (Topology, error) {
	switch s {
	case "Bounded":
		return Bounded, nil
	case "Periodic":
		return Periodic, nil
	}
	return -1, fmt.Errorf("Unrecognized topology name, '%s'.", s)
}

// Grid is an immutable regular Cartesian mesh. Each axis stores the
// coordinates of its cell faces, so an axis with n cells has n + 1 faces
// and the domain along axis d spans [Faces(d)[0], Faces(d)[n]].
type Grid struct {
	topo    [3]Topology
	faces   [3][]float64
	centers [3][]float64
	cells   [3]int
}

// New creates a Grid from explicit face coordinate arrays. The faces
// along each axis must be strictly increasing and each axis must have at
// least one cell.
func New(faces [3][]float64, topo [3]Topology) (*Grid, error) {
	g := &Grid{topo: topo}
	for d := 0; d < 3; d++ {
		if len(faces[d]) < 2 {
			return nil, fmt.Errorf(
				"Axis %d has %d faces, but needs at least 2.",
				d, len(faces[d]),
			)
		}
		for i := 1; i < len(faces[d]); i++ {
			if faces[d][i] <= faces[d][i-1] {
				return nil, fmt.Errorf(
					"Faces along axis %d are not strictly increasing "+
						"at index %d.", d, i,
				)
			}
		}

		g.faces[d] = faces[d]
		g.cells[d] = len(faces[d]) - 1
		g.centers[d] = make([]float64, g.cells[d])
		for i := range g.centers[d] {
			g.centers[d][i] = (faces[d][i] + faces[d][i+1]) / 2
		}
	}
	return g, nil
}

// NewUniform creates a Grid with evenly spaced faces starting at origin
// and spanning span along each axis.
func NewUniform(
	origin, span [3]float64, cells [3]int, topo [3]Topology,
) (*Grid, error) {
	var faces [3][]float64
	for d := 0; d < 3; d++ {
		if cells[d] < 1 {
			return nil, fmt.Errorf(
				"Axis %d has %d cells, but needs at least 1.", d, cells[d],
			)
		}
		if span[d] <= 0 {
			return nil, fmt.Errorf(
				"Axis %d has non-positive span %g.", d, span[d],
			)
		}

		dx := span[d] / float64(cells[d])
		faces[d] = make([]float64, cells[d]+1)
		for i := range faces[d] {
			faces[d][i] = origin[d] + dx*float64(i)
		}
		// Avoid accumulated round-off on the last face.
		faces[d][cells[d]] = origin[d] + span[d]
	}
	return New(faces, topo)
}

// Cells returns the number of cells along axis d.
func (g *Grid) Cells(d int) int { return g.cells[d] }

// Topology returns the topology tag of axis d.
func (g *Grid) Topology(d int) Topology { return g.topo[d] }

// Faces returns the face coordinates of axis d. The returned slice must
// not be modified.
func (g *Grid) Faces(d int) []float64 { return g.faces[d] }

// Centers returns the cell center coordinates of axis d. The returned
// slice must not be modified.
func (g *Grid) Centers(d int) []float64 { return g.centers[d] }

// Left returns the lower domain bound of axis d.
func (g *Grid) Left(d int) float64 { return g.faces[d][0] }

// Right returns the upper domain bound of axis d.
func (g *Grid) Right(d int) float64 { return g.faces[d][g.cells[d]] }

// Span returns the domain width of axis d.
func (g *Grid) Span(d int) float64 { return g.Right(d) - g.Left(d) }
