package cmd

import (
	"encoding/json"
	"os"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"web/pinmap/cluster"
	"web/pinmap/snapshot"
)

var (
	viewIn      string  // Input snapshot path
	viewScene   string  // Scene yaml path
	viewOut     string  // Output GeoJSON path
	viewLng     float64 // Viewport center longitude
	viewLat     float64 // Viewport center latitude
	viewZoom    float64 // Viewport zoom
	viewPitch   float64 // Viewport pitch in degrees
	viewBearing float64 // Viewport bearing in degrees
	viewWidth   float64 // Container width in pixels
	viewHeight  float64 // Container height in pixels
	viewRadius  float64 // Cluster radius in pixels
)

// viewCmd loads a fleet snapshot, runs one clustering pass for the
// requested viewport and reports the result.
var viewCmd = &cobra.Command{
	Use:   "view",
	Short: "Cluster a fleet snapshot for one viewport",
	Run: func(cmd *cobra.Command, args []string) {
		scene := defaultScene()
		if viewScene != "" {
			var err error
			if scene, err = loadScene(viewScene); err != nil {
				logrus.Fatalf("Failed to load scene: %v", err)
			}
		}

		vp := scene.viewport()
		radius := scene.RadiusPx
		flags := cmd.Flags()
		if flags.Changed("lng") {
			vp.Longitude = viewLng
		}
		if flags.Changed("lat") {
			vp.Latitude = viewLat
		}
		if flags.Changed("zoom") {
			vp.Zoom = viewZoom
		}
		if flags.Changed("pitch") {
			vp.Pitch = viewPitch
		}
		if flags.Changed("bearing") {
			vp.Bearing = viewBearing
		}
		if flags.Changed("width") {
			vp.Width = viewWidth
		}
		if flags.Changed("height") {
			vp.Height = viewHeight
		}
		if flags.Changed("radius") {
			radius = viewRadius
		}

		var points []cluster.GeoPoint
		var err error
		if strings.HasSuffix(viewIn, ".pinset") {
			points, err = snapshot.LoadMMap(viewIn)
		} else {
			points, err = snapshot.Load(viewIn)
		}
		if err != nil {
			logrus.Fatalf("Failed to load snapshot: %v", err)
		}

		start := time.Now()
		entities := cluster.Cluster(points, vp, radius)
		logrus.Infof("Clustered %d points into %d entities in %v", len(points), len(entities), time.Since(start))

		summary := cluster.Summarize(entities)
		logrus.Infof("Viewport summary: %d clusters, %d singles, dominant status %s",
			summary.NumClusters, summary.NumSinglePoints, summary.DominantStatus)

		if viewOut == "" {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			if err := enc.Encode(summary); err != nil {
				logrus.Fatalf("Failed to write summary: %v", err)
			}
			return
		}

		data, err := json.MarshalIndent(cluster.ToGeoJSON(entities), "", "  ")
		if err != nil {
			logrus.Fatalf("Failed to encode GeoJSON: %v", err)
		}
		if err := os.WriteFile(viewOut, data, 0644); err != nil {
			logrus.Fatalf("Failed to write GeoJSON: %v", err)
		}
		logrus.Infof("Wrote %d features to %s", len(entities), viewOut)
	},
}

func init() {
	viewCmd.Flags().StringVar(&viewIn, "in", "fleet.pinset.zst", "Input snapshot path")
	viewCmd.Flags().StringVar(&viewScene, "scene", "", "Scene yaml with viewport and radius defaults")
	viewCmd.Flags().StringVar(&viewOut, "out", "", "Write entities as GeoJSON to this path")
	viewCmd.Flags().Float64Var(&viewLng, "lng", 0, "Viewport center longitude")
	viewCmd.Flags().Float64Var(&viewLat, "lat", 0, "Viewport center latitude")
	viewCmd.Flags().Float64Var(&viewZoom, "zoom", 4, "Viewport zoom level")
	viewCmd.Flags().Float64Var(&viewPitch, "pitch", 0, "Viewport pitch in degrees")
	viewCmd.Flags().Float64Var(&viewBearing, "bearing", 0, "Viewport bearing in degrees")
	viewCmd.Flags().Float64Var(&viewWidth, "width", 1024, "Map container width in pixels")
	viewCmd.Flags().Float64Var(&viewHeight, "height", 768, "Map container height in pixels")
	viewCmd.Flags().Float64Var(&viewRadius, "radius", cluster.DefaultRadiusPx, "Cluster radius in pixels")
}
