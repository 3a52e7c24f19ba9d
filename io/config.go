/*package io reads the configuration files used by the drift command
line tool.
*/
package io

import (
	"fmt"

	"gopkg.in/gcfg.v1"
)

const ExampleDriftFile = `[Drift]

#######################
# Required Parameters #
#######################

# Whitespace-separated text file with one particle per line. The first
# three columns are the initial x, y, and z coordinates.
ParticleFile = path/to/particles.txt

# File which the particle tracks will be written to.
Output = path/to/tracks.txt

# Number of cells along each axis.
CellsX = 32
CellsY = 32
CellsZ = 32

# Domain extent along each axis.
SpanX = 1.0
SpanY = 1.0
SpanZ = 1.0

# Time step and number of steps to take.
Dt = 0.01
Steps = 100

#######################
# Optional Parameters #
#######################

# Domain origin along each axis. Default is 0.
# OriginX = 0.0
# OriginY = 0.0
# OriginZ = 0.0

# Boundary topology of each axis. Either Bounded or Periodic. Default
# is Bounded.
# TopologyX = Bounded
# TopologyY = Bounded
# TopologyZ = Bounded

# Restitution coefficient used when particles reflect off Bounded
# walls: 1 is a perfect bounce, 0 stops particles at the wall. Default
# is 1.
# Restitution = 1.0

# The built-in velocity field. Either Constant or Rotation. Constant
# uses VelocityX/Y/Z everywhere. Rotation is solid-body rotation about
# the domain center in the x-y plane with angular frequency Omega.
# Default is Constant.
# Velocity = Constant
# VelocityX = 0.0
# VelocityY = 0.0
# VelocityZ = 0.0
# Omega = 1.0`

// DriftConfig describes one run of the drift tool: the grid, the
// built-in velocity field, the particle input, and the step loop.
type DriftConfig struct {
	// Required
	ParticleFile, Output   string
	CellsX, CellsY, CellsZ int
	SpanX, SpanY, SpanZ    float64
	Dt                     float64
	Steps                  int

	// Optional
	OriginX, OriginY, OriginZ       float64
	TopologyX, TopologyY, TopologyZ string
	Restitution                     float64
	Velocity                        string
	VelocityX, VelocityY, VelocityZ float64
	Omega                           float64
}

type DriftWrapper struct {
	Drift DriftConfig
}

// DefaultDriftWrapper returns a wrapper with the optional parameters
// set to their defaults.
func DefaultDriftWrapper() *DriftWrapper {
	cfg := DriftConfig{
		TopologyX: "Bounded", TopologyY: "Bounded", TopologyZ: "Bounded",
		Restitution: 1,
		Velocity:    "Constant",
		Omega:       1,
	}
	return &DriftWrapper{cfg}
}

// ReadDriftConfig reads and validates a [Drift] config file.
func ReadDriftConfig(fname string) (*DriftConfig, error) {
	wrap := DefaultDriftWrapper()
	if err := gcfg.ReadFileInto(wrap, fname); err != nil {
		return nil, err
	}

	con := &wrap.Drift
	if err := con.check(); err != nil {
		return nil, err
	}
	return con, nil
}

func (con *DriftConfig) check() error {
	switch {
	case con.ParticleFile == "":
		return fmt.Errorf("ParticleFile is not set.")
	case con.Output == "":
		return fmt.Errorf("Output is not set.")
	case con.CellsX < 1 || con.CellsY < 1 || con.CellsZ < 1:
		return fmt.Errorf(
			"Cell counts are (%d, %d, %d), but all must be positive.",
			con.CellsX, con.CellsY, con.CellsZ,
		)
	case con.SpanX <= 0 || con.SpanY <= 0 || con.SpanZ <= 0:
		return fmt.Errorf(
			"Spans are (%g, %g, %g), but all must be positive.",
			con.SpanX, con.SpanY, con.SpanZ,
		)
	case con.Dt <= 0:
		return fmt.Errorf("Dt is %g, but must be positive.", con.Dt)
	case con.Steps < 1:
		return fmt.Errorf("Steps is %d, but must be positive.", con.Steps)
	case con.Restitution < 0 || con.Restitution > 1:
		return fmt.Errorf(
			"Restitution is %g, but must be in [0, 1].", con.Restitution,
		)
	}

	switch con.Velocity {
	case "Constant", "Rotation":
	default:
		return fmt.Errorf(
			"Velocity is '%s', but must be 'Constant' or 'Rotation'.",
			con.Velocity,
		)
	}

	for _, topo := range []string{
		con.TopologyX, con.TopologyY, con.TopologyZ,
	} {
		if topo != "Bounded" && topo != "Periodic" {
			return fmt.Errorf(
				"Topology is '%s', but must be 'Bounded' or 'Periodic'.",
				topo,
			)
		}
	}

	return nil
}
