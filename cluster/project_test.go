package cluster

import (
	"math"
	"testing"
)

func TestProjectionRoundTrip(t *testing.T) {
	m := WebMercator{}

	testCases := []struct {
		lng, lat float64
		vp       Viewport
	}{
		{0, 0, Viewport{Zoom: 0, Width: 800, Height: 600}},
		{179, 84, Viewport{Zoom: 10, Width: 800, Height: 600, Longitude: 170, Latitude: 80}},
		{-179, -84, Viewport{Zoom: 5, Width: 1024, Height: 768}},
		{45, 45, Viewport{Zoom: 8.3, Width: 400, Height: 400, Longitude: 44, Latitude: 44, Bearing: 37}},
		{-122.4194, 37.7749, Viewport{Zoom: 14.5, Width: 800, Height: 600, Longitude: -122.4185, Latitude: 37.7725, Bearing: -90}},
	}

	const epsilon = 1e-6
	for _, tc := range testCases {
		x, y := m.Project(tc.lng, tc.lat, tc.vp)
		lng, lat := m.Unproject(x, y, tc.vp)

		if math.Abs(tc.lng-lng) > epsilon || math.Abs(tc.lat-lat) > epsilon {
			t.Errorf("Round trip failed for (%f,%f) at zoom %f: got (%f,%f)",
				tc.lng, tc.lat, tc.vp.Zoom, lng, lat)
		}
	}
}

func TestViewportCenterProjectsToScreenCenter(t *testing.T) {
	m := WebMercator{}
	vp := Viewport{Longitude: -122.4185, Latitude: 37.7725, Zoom: 13, Bearing: 123, Width: 800, Height: 600}

	x, y := m.Project(vp.Longitude, vp.Latitude, vp)
	if math.Abs(x-400) > 1e-9 || math.Abs(y-300) > 1e-9 {
		t.Errorf("Viewport center projected to (%f,%f), want (400,300)", x, y)
	}
}

func TestProjectionIsDeterministic(t *testing.T) {
	m := WebMercator{}
	vp := Viewport{Longitude: 10, Latitude: 20, Zoom: 11.25, Bearing: 15, Width: 640, Height: 480}

	x1, y1 := m.Project(9.99, 20.01, vp)
	x2, y2 := m.Project(9.99, 20.01, vp)
	if x1 != x2 || y1 != y2 {
		t.Errorf("Projection not deterministic: (%f,%f) vs (%f,%f)", x1, y1, x2, y2)
	}
}

// Bearing rotates the screen plane, so pairwise pixel distances, and
// therefore the partition, must not depend on it.
func TestBearingPreservesDistances(t *testing.T) {
	m := WebMercator{}
	flat := Viewport{Longitude: -122.4185, Latitude: 37.7725, Zoom: 14.5, Width: 800, Height: 600}
	rotated := flat
	rotated.Bearing = 58

	points := sfFleet()
	for i := 0; i < len(points); i++ {
		for j := i + 1; j < len(points); j++ {
			ax, ay := m.Project(points[i].Longitude, points[i].Latitude, flat)
			bx, by := m.Project(points[j].Longitude, points[j].Latitude, flat)
			rax, ray := m.Project(points[i].Longitude, points[i].Latitude, rotated)
			rbx, rby := m.Project(points[j].Longitude, points[j].Latitude, rotated)

			d := math.Hypot(ax-bx, ay-by)
			rd := math.Hypot(rax-rbx, ray-rby)
			if math.Abs(d-rd) > 1e-6 {
				t.Fatalf("Bearing changed distance between %d and %d: %f vs %f", i, j, d, rd)
			}
		}
	}
}

func TestCustomTileSize(t *testing.T) {
	small := WebMercator{TileSize: 256}
	large := WebMercator{TileSize: 512}
	vp := Viewport{Zoom: 3, Width: 200, Height: 200}

	sx, _ := small.Project(10, 0, vp)
	lx, _ := large.Project(10, 0, vp)

	// Doubling the tile size doubles the offset from screen center.
	if math.Abs((lx-100)-2*(sx-100)) > 1e-9 {
		t.Errorf("Tile size scaling off: 256px offset %f, 512px offset %f", sx-100, lx-100)
	}
}
