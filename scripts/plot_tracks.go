package main

import (
	"fmt"
	"log"
	"os"

	plt "github.com/phil-mansfield/pyplot"
	"github.com/phil-mansfield/table"
)

// Plots the x-y trajectories written by the drift tool.
func main() {
	if len(os.Args) != 3 {
		log.Fatalf("Required file use: $ %s track_file out_file", os.Args[0])
	}
	trackFile, outFile := os.Args[1], os.Args[2]

	cols, err := table.ReadTable(trackFile, []int{1, 2, 3}, nil)
	if err != nil {
		log.Fatal(err.Error())
	}
	ids, xs, ys := cols[0], cols[1], cols[2]

	plt.Figure()

	n := particleCount(ids)
	for id := 0; id < n; id++ {
		px, py := []float64{}, []float64{}
		for i := range ids {
			if int(ids[i]) == id {
				px = append(px, xs[i])
				py = append(py, ys[i])
			}
		}
		plt.Plot(px, py, plt.LW(1))
	}

	plt.XLabel(`$x$`, plt.FontSize(16))
	plt.YLabel(`$y$`, plt.FontSize(16))
	plt.Title(fmt.Sprintf("%d particle tracks", n))
	plt.SaveFig(outFile)
	plt.Execute()
}

func particleCount(ids []float64) int {
	max := 0
	for _, id := range ids {
		if int(id) > max {
			max = int(id)
		}
	}
	return max + 1
}
