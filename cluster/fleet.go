package cluster

import (
	"fmt"
	"math/rand"

	"github.com/google/uuid"
)

// Bounds is a geographic bounding box for fleet generation.
type Bounds struct {
	MinLng, MinLat, MaxLng, MaxLat float64
}

// ContinentalUS covers the lower 48 states.
var ContinentalUS = Bounds{MinLng: -125.0, MinLat: 25.0, MaxLng: -67.0, MaxLat: 49.0}

// GenerateFleet produces n assets spread uniformly over bounds with a
// weighted status mix skewed toward healthy. Used for demos, benchmarks
// and snapshot fixtures.
func GenerateFleet(n int, bounds Bounds) []GeoPoint {
	points := make([]GeoPoint, n)
	for i := range points {
		points[i] = GeoPoint{
			ID:          uuid.New().String(),
			Longitude:   bounds.MinLng + rand.Float64()*(bounds.MaxLng-bounds.MinLng),
			Latitude:    bounds.MinLat + rand.Float64()*(bounds.MaxLat-bounds.MinLat),
			Status:      randomStatus(),
			DisplayName: fmt.Sprintf("asset-%04d", i+1),
		}
	}
	return points
}

func randomStatus() StatusTag {
	switch r := rand.Float64(); {
	case r < 0.80:
		return StatusHealthy
	case r < 0.92:
		return StatusPredictedFailure
	default:
		return StatusDownForRepairs
	}
}
