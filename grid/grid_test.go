package grid

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

const testEps = 1e-12

func TestCorrectInterior(t *testing.T) {
	xs := []float64{0.0, 0.25, 0.5, 0.99, 1.0}
	rs := []float64{0.0, 0.5, 1.0, 2.0}
	for _, x := range xs {
		for _, r := range rs {
			assert.Equal(t, x, Correct(Bounded, x, 0, 1, r), "Bounded")
			assert.Equal(t, x, Correct(Periodic, x, 0, 1, r), "Periodic")
		}
	}
}

func TestCorrectBounded(t *testing.T) {
	// Mirror reflection about the right wall.
	assert.InDelta(t, 0.7, Correct(Bounded, 1.3, 0, 1, 1), testEps)
	// Mirror reflection about the left wall.
	assert.InDelta(t, 0.3, Correct(Bounded, -0.3, 0, 1, 1), testEps)
	// Fully absorbing walls clamp regardless of overshoot.
	assert.Equal(t, 1.0, Correct(Bounded, 1.3, 0, 1, 0))
	assert.Equal(t, 1.0, Correct(Bounded, 27.0, 0, 1, 0))
	assert.Equal(t, 0.0, Correct(Bounded, -5.0, 0, 1, 0))
	// Partial restitution.
	assert.InDelta(t, 0.85, Correct(Bounded, 1.3, 0, 1, 0.5), testEps)
}

func TestCorrectPeriodic(t *testing.T) {
	assert.InDelta(t, 0.3, Correct(Periodic, 1.3, 0, 1, 1), testEps)
	assert.InDelta(t, 0.7, Correct(Periodic, -0.3, 0, 1, 1), testEps)
	// Restitution is ignored on periodic axes.
	assert.InDelta(t, 0.3, Correct(Periodic, 1.3, 0, 1, 0), testEps)
	// Offset domains.
	assert.InDelta(t, 2.5, Correct(Periodic, 4.5, 2, 4, 1), testEps)
	assert.InDelta(t, 3.5, Correct(Periodic, 1.5, 2, 4, 1), testEps)
}

func TestNewUniform(t *testing.T) {
	g, err := NewUniform(
		[3]float64{0, 0, -1},
		[3]float64{1, 2, 2},
		[3]int{4, 2, 1},
		[3]Topology{Bounded, Periodic, Bounded},
	)
	assert.NoError(t, err)

	assert.Equal(t, 4, g.Cells(0))
	assert.Equal(t, Periodic, g.Topology(1))
	assert.Equal(t, []float64{0, 0.25, 0.5, 0.75, 1}, g.Faces(0))
	assert.Equal(t, []float64{0.125, 0.375, 0.625, 0.875}, g.Centers(0))
	assert.Equal(t, 0.0, g.Left(0))
	assert.Equal(t, 1.0, g.Right(0))
	assert.Equal(t, 2.0, g.Span(1))
	assert.Equal(t, -1.0, g.Left(2))
	assert.Equal(t, 1.0, g.Right(2))
	assert.Equal(t, []float64{0.0}, g.Centers(2))
}

func TestNewRejectsBadFaces(t *testing.T) {
	ok := []float64{0, 1}

	_, err := New([3][]float64{ok, ok, {0}}, [3]Topology{})
	assert.Error(t, err, "single face")

	_, err = New([3][]float64{ok, {0, 1, 1}, ok}, [3]Topology{})
	assert.Error(t, err, "repeated face")

	_, err = New([3][]float64{{1, 0}, ok, ok}, [3]Topology{})
	assert.Error(t, err, "decreasing faces")
}

func TestParseTopology(t *testing.T) {
	topo, err := ParseTopology("Periodic")
	assert.NoError(t, err)
	assert.Equal(t, Periodic, topo)

	topo, err = ParseTopology("Bounded")
	assert.NoError(t, err)
	assert.Equal(t, Bounded, topo)

	_, err = ParseTopology("periodic")
	assert.Error(t, err)
}
