package cmd

import (
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"web/pinmap/cluster"
	"web/pinmap/snapshot"
)

var (
	genCount  int       // Number of assets to generate
	genOut    string    // Output snapshot path
	genBounds []float64 // Bounding box minLng,minLat,maxLng,maxLat
)

// genCmd writes a randomly generated fleet snapshot for demos and
// benchmarking.
var genCmd = &cobra.Command{
	Use:   "gen",
	Short: "Generate a random fleet snapshot",
	Run: func(cmd *cobra.Command, args []string) {
		bounds := cluster.ContinentalUS
		switch len(genBounds) {
		case 0:
		case 4:
			bounds = cluster.Bounds{
				MinLng: genBounds[0],
				MinLat: genBounds[1],
				MaxLng: genBounds[2],
				MaxLat: genBounds[3],
			}
		default:
			logrus.Fatalf("--bounds wants minLng,minLat,maxLng,maxLat, got %d values", len(genBounds))
		}

		points := cluster.GenerateFleet(genCount, bounds)

		var err error
		if strings.HasSuffix(genOut, ".pinset") {
			err = snapshot.SaveMMap(genOut, points)
		} else {
			err = snapshot.Save(genOut, points)
		}
		if err != nil {
			logrus.Fatalf("Failed to save snapshot: %v", err)
		}
		logrus.Infof("Wrote %d assets to %s", len(points), genOut)
	},
}

func init() {
	genCmd.Flags().IntVar(&genCount, "count", 1000, "Number of assets to generate")
	genCmd.Flags().StringVar(&genOut, "out", "fleet.pinset.zst", "Output snapshot path (.pinset for uncompressed mmap layout)")
	genCmd.Flags().Float64SliceVar(&genBounds, "bounds", nil, "Bounding box minLng,minLat,maxLng,maxLat")
}
