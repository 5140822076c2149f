package cluster

import (
	"fmt"
	"math/rand"
	"runtime"
	"testing"
)

// generateRandomFleet creates n assets with a deterministic seed so
// benchmark runs are comparable.
func generateRandomFleet(n int, bounds Bounds) []GeoPoint {
	r := rand.New(rand.NewSource(42))
	statuses := []StatusTag{StatusHealthy, StatusHealthy, StatusHealthy, StatusPredictedFailure, StatusDownForRepairs}

	points := make([]GeoPoint, n)
	for i := range points {
		points[i] = GeoPoint{
			ID:          fmt.Sprintf("bench-%d", i),
			Longitude:   bounds.MinLng + r.Float64()*(bounds.MaxLng-bounds.MinLng),
			Latitude:    bounds.MinLat + r.Float64()*(bounds.MaxLat-bounds.MinLat),
			Status:      statuses[r.Intn(len(statuses))],
			DisplayName: fmt.Sprintf("asset-%04d", i),
		}
	}
	return points
}

func benchmarkCluster(b *testing.B, numPoints int, zoom float64) {
	points := generateRandomFleet(numPoints, ContinentalUS)
	vp := Viewport{Longitude: -96, Latitude: 37, Zoom: zoom, Width: 1280, Height: 800}

	var memStatsBefore, memStatsAfter runtime.MemStats
	runtime.ReadMemStats(&memStatsBefore)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Cluster(points, vp, DefaultRadiusPx)
	}
	b.StopTimer()

	runtime.ReadMemStats(&memStatsAfter)
	allocMB := float64(memStatsAfter.TotalAlloc-memStatsBefore.TotalAlloc) / 1024 / 1024
	b.ReportMetric(allocMB, "MB/op")
}

func BenchmarkClusterSmall_LowZoom(b *testing.B) {
	benchmarkCluster(b, 100, 3)
}

func BenchmarkClusterSmall_HighZoom(b *testing.B) {
	benchmarkCluster(b, 100, 14)
}

func BenchmarkClusterMedium_LowZoom(b *testing.B) {
	benchmarkCluster(b, 1000, 3)
}

func BenchmarkClusterMedium_HighZoom(b *testing.B) {
	benchmarkCluster(b, 1000, 14)
}

func BenchmarkClusterLarge_LowZoom(b *testing.B) {
	benchmarkCluster(b, 5000, 3)
}

func BenchmarkClusterLarge_HighZoom(b *testing.B) {
	benchmarkCluster(b, 5000, 14)
}
