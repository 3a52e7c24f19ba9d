/*package track advects Lagrangian tracer particles through a velocity
field on a staggered grid and samples tracked scalar fields at the
advected positions.

The only entry point is Advect, which runs three strictly ordered
phases: a forward-Euler position update over all particles, a barrier,
and then one sampling kernel per tracked field. Tracking kernels for
different fields run concurrently with each other, but every one of them
starts after the position update has fully committed.
*/
package track

import (
	"fmt"

	"github.com/phil-mansfield/drift/device"
	"github.com/phil-mansfield/drift/field"
	"github.com/phil-mansfield/drift/grid"
)

// ParticleSet is a struct-of-arrays collection of tracer particles.
// The coordinate arrays and every tracked property array share the same
// length, which is fixed for the lifetime of the set.
type ParticleSet struct {
	X, Y, Z []float64
	// Props holds the most recent sampled value of each tracked field,
	// keyed by field name.
	Props map[string][]float64
	// Restitution scales reflections off Bounded axes: 1 is a perfect
	// bounce, 0 stops particles at the wall.
	Restitution float64
}

// NewParticleSet creates a ParticleSet over the given coordinate
// arrays, which it takes ownership of. The arrays must have equal
// lengths and restitution must be in [0, 1].
func NewParticleSet(x, y, z []float64, restitution float64) (*ParticleSet, error) {
	if len(x) != len(y) || len(x) != len(z) {
		return nil, fmt.Errorf(
			"Coordinate arrays have mismatched lengths %d, %d, %d.",
			len(x), len(y), len(z),
		)
	}
	if restitution < 0 || restitution > 1 {
		return nil, fmt.Errorf(
			"Restitution is %g, but must be in [0, 1].", restitution,
		)
	}

	return &ParticleSet{
		X: x, Y: y, Z: z,
		Props:       map[string][]float64{},
		Restitution: restitution,
	}, nil
}

// Len returns the number of particles.
func (p *ParticleSet) Len() int { return len(p.X) }

// Track allocates a property array for the named field so that Advect
// records its sampled values.
func (p *ParticleSet) Track(name string) {
	if _, ok := p.Props[name]; !ok {
		p.Props[name] = make([]float64, p.Len())
	}
}

// Model bundles the read-only inputs of one advection step: the grid,
// the three velocity components, and the tracked scalar fields.
type Model struct {
	Grid    *grid.Grid
	U, V, W *field.Field
	Tracked map[string]*field.Field
}

// VelocityLoc returns the staggered locations of the velocity component
// along axis d: Face on its own axis and Cell on the other two.
func VelocityLoc(d int) [3]field.Location {
	loc := [3]field.Location{field.Cell, field.Cell, field.Cell}
	loc[d] = field.Face
	return loc
}

// NewModel creates a Model with zeroed velocity components on g and no
// tracked fields.
func NewModel(g *grid.Grid) *Model {
	return &Model{
		Grid: g,
		U:    field.New("u", VelocityLoc(0), g),
		V:    field.New("v", VelocityLoc(1), g),
		W:    field.New("w", VelocityLoc(2), g),

		Tracked: map[string]*field.Field{},
	}
}

// Advect advances every particle one explicit forward-Euler step of
// length dt through m's velocity field, corrects each coordinate
// against its axis topology, and then samples every tracked field at
// the new positions into p.Props.
//
// A nil particle set is a no-op. Grid and field state must not be
// mutated by anything else while Advect runs; the particle arrays are
// the only memory it writes. Errors from a tracked field's Compute hook
// propagate unchanged, after every kernel already in flight has
// drained.
func Advect(p *ParticleSet, m *Model, dt float64) error {
	if p == nil {
		return nil
	}

	adv := device.Launch(
		p.Len(), device.DefaultGroupSize, nil,
		advectionKernel(p, m, dt),
	)
	// Hard barrier: no tracked field may be sampled against positions
	// that are still being written.
	adv.Wait()

	evts := make([]*device.Event, 0, len(m.Tracked))
	for name, f := range m.Tracked {
		out, ok := p.Props[name]
		if !ok {
			device.WaitAll(evts...)
			return fmt.Errorf(
				"Tracked field '%s' has no property array. "+
					"Call ParticleSet.Track first.", name,
			)
		}

		if err := f.Compute(); err != nil {
			device.WaitAll(evts...)
			return err
		}

		evts = append(evts, device.Launch(
			p.Len(), device.DefaultGroupSize,
			[]*device.Event{adv},
			trackingKernel(p, f, m.Grid, out),
		))
	}

	device.WaitAll(evts...)
	return nil
}

// advectionKernel builds the per-particle position update. Each index
// reads and writes only its own entries, so the kernel needs no
// synchronization.
func advectionKernel(p *ParticleSet, m *Model, dt float64) device.Kernel {
	g := m.Grid
	su := field.NewSampler(m.U, g)
	sv := field.NewSampler(m.V, g)
	sw := field.NewSampler(m.W, g)

	return func(lo, hi int) {
		for i := lo; i < hi; i++ {
			x, y, z := p.X[i], p.Y[i], p.Z[i]

			// All three components are sampled at the pre-step position
			// before any coordinate moves.
			dx := su.At(x, y, z) * dt
			dy := sv.At(x, y, z) * dt
			dz := sw.At(x, y, z) * dt
			x, y, z = x+dx, y+dy, z+dz

			// Boundary correction sees the fully advected position and
			// runs exactly once per axis.
			p.X[i] = grid.Correct(
				g.Topology(0), x, g.Left(0), g.Right(0), p.Restitution,
			)
			p.Y[i] = grid.Correct(
				g.Topology(1), y, g.Left(1), g.Right(1), p.Restitution,
			)
			p.Z[i] = grid.Correct(
				g.Topology(2), z, g.Left(2), g.Right(2), p.Restitution,
			)
		}
	}
}

// trackingKernel builds the per-particle sampler for one tracked field.
// Positions are read, never written, so tracking kernels for different
// fields may run concurrently.
func trackingKernel(
	p *ParticleSet, f *field.Field, g *grid.Grid, out []float64,
) device.Kernel {
	s := field.NewSampler(f, g)
	return func(lo, hi int) {
		for i := lo; i < hi; i++ {
			out[i] = s.At(p.X[i], p.Y[i], p.Z[i])
		}
	}
}
