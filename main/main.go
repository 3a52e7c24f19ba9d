package main

import (
	"flag"
	"fmt"
	"log"
	"math"
	"os"
	"runtime"

	"github.com/phil-mansfield/table"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/phil-mansfield/drift/device"
	"github.com/phil-mansfield/drift/field"
	"github.com/phil-mansfield/drift/grid"
	"github.com/phil-mansfield/drift/io"
	"github.com/phil-mansfield/drift/track"
)

func main() {
	var (
		config        string
		exampleConfig bool
	)

	flag.IntVar(
		&device.NumCores, "Threads", runtime.NumCPU(),
		"Number of threads used. Default is the number of logical cores.",
	)
	flag.StringVar(
		&config, "Config", "",
		"Configuration file with a [Drift] section describing the grid, "+
			"velocity field, and step loop.",
	)
	flag.BoolVar(
		&exampleConfig, "ExampleConfig", false,
		"Prints an example [Drift] configuration file to stdout.",
	)

	flag.Parse()

	if exampleConfig {
		fmt.Println(io.ExampleDriftFile)
		return
	}
	if config == "" {
		log.Fatal("No mode given. Run with -Config or -ExampleConfig.")
	}

	con, err := io.ReadDriftConfig(config)
	if err != nil {
		log.Fatal(err.Error())
	}
	if err = run(con); err != nil {
		log.Fatal(err.Error())
	}
}

func run(con *io.DriftConfig) error {
	g, err := makeGrid(con)
	if err != nil {
		return err
	}
	m := makeModel(con, g)

	p, err := readParticles(con)
	if err != nil {
		return err
	}
	p.Track("speed")

	log.Printf(
		"Advecting %d particles for %d steps on a %dx%dx%d grid "+
			"with %d threads.",
		p.Len(), con.Steps, con.CellsX, con.CellsY, con.CellsZ,
		device.NumCores,
	)

	out, err := os.Create(con.Output)
	if err != nil {
		return err
	}
	defer out.Close()
	fmt.Fprintf(out, "# step id x y z speed\n")

	for step := 1; step <= con.Steps; step++ {
		if err = track.Advect(p, m, con.Dt); err != nil {
			return err
		}
		if err = writeStep(out, step, p); err != nil {
			return err
		}

		if con.Steps >= 10 && step%(con.Steps/10) == 0 {
			log.Printf("Finished step %d/%d", step, con.Steps)
		}
	}

	summarize(p)
	return nil
}

func makeGrid(con *io.DriftConfig) (*grid.Grid, error) {
	var topo [3]grid.Topology
	names := [3]string{con.TopologyX, con.TopologyY, con.TopologyZ}
	for d := 0; d < 3; d++ {
		t, err := grid.ParseTopology(names[d])
		if err != nil {
			return nil, err
		}
		topo[d] = t
	}

	return grid.NewUniform(
		[3]float64{con.OriginX, con.OriginY, con.OriginZ},
		[3]float64{con.SpanX, con.SpanY, con.SpanZ},
		[3]int{con.CellsX, con.CellsY, con.CellsZ},
		topo,
	)
}

func makeModel(con *io.DriftConfig, g *grid.Grid) *track.Model {
	m := track.NewModel(g)

	switch con.Velocity {
	case "Constant":
		m.U.Fill(g, func(x, y, z float64) float64 { return con.VelocityX })
		m.V.Fill(g, func(x, y, z float64) float64 { return con.VelocityY })
		m.W.Fill(g, func(x, y, z float64) float64 { return con.VelocityZ })
	case "Rotation":
		// Solid-body rotation about the domain center in the x-y plane.
		cx := (g.Left(0) + g.Right(0)) / 2
		cy := (g.Left(1) + g.Right(1)) / 2
		m.U.Fill(g, func(x, y, z float64) float64 {
			return -con.Omega * (y - cy)
		})
		m.V.Fill(g, func(x, y, z float64) float64 {
			return con.Omega * (x - cx)
		})
	}

	speed := field.New("speed", [3]field.Location{
		field.Cell, field.Cell, field.Cell,
	}, g)
	su := field.NewSampler(m.U, g)
	sv := field.NewSampler(m.V, g)
	sw := field.NewSampler(m.W, g)
	speed.SetCompute(func(f *field.Field) error {
		f.Fill(g, func(x, y, z float64) float64 {
			u, v, w := su.At(x, y, z), sv.At(x, y, z), sw.At(x, y, z)
			return math.Sqrt(u*u + v*v + w*w)
		})
		return nil
	})
	m.Tracked["speed"] = speed

	return m
}

func readParticles(con *io.DriftConfig) (*track.ParticleSet, error) {
	cols, err := table.ReadTable(con.ParticleFile, []int{0, 1, 2}, nil)
	if err != nil {
		return nil, err
	}
	if len(cols[0]) == 0 {
		return nil, fmt.Errorf(
			"Particle file %s contains no particles.", con.ParticleFile,
		)
	}

	return track.NewParticleSet(
		cols[0], cols[1], cols[2], con.Restitution,
	)
}

func writeStep(out *os.File, step int, p *track.ParticleSet) error {
	speeds := p.Props["speed"]
	for i := 0; i < p.Len(); i++ {
		_, err := fmt.Fprintf(
			out, "%d %d %g %g %g %g\n",
			step, i, p.X[i], p.Y[i], p.Z[i], speeds[i],
		)
		if err != nil {
			return err
		}
	}
	return nil
}

func summarize(p *track.ParticleSet) {
	speeds := p.Props["speed"]
	log.Printf(
		"Final speeds: mean = %.4g, std = %.4g",
		stat.Mean(speeds, nil), stat.StdDev(speeds, nil),
	)
	log.Printf(
		"Final x range: [%.4g, %.4g], y range: [%.4g, %.4g], "+
			"z range: [%.4g, %.4g]",
		floats.Min(p.X), floats.Max(p.X),
		floats.Min(p.Y), floats.Max(p.Y),
		floats.Min(p.Z), floats.Max(p.Z),
	)
}
