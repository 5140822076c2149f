// Package cluster implements the screen-space clustering engine behind
// the asset map. Given the fleet's geographic points and the current
// viewport it partitions the points by projected pixel proximity and
// rolls each group up into a renderable entity with a count, a status
// breakdown and a centroid. The partition is transitive: two points
// share a cluster when a chain of pairwise distances each within the
// radius connects them, which is what a union-find pass over the
// projected coordinates computes.
//
// The pairwise pass is O(N²). That is comfortably inside a UI frame for
// the point counts a map renders (hundreds to a few thousand); bucketing
// the points through a spatial grid or k-d tree before the pairwise test
// is the known optimization if fleets outgrow that.
package cluster

import (
	"fmt"
	"strings"
)

// DefaultRadiusPx is the cluster radius used when the caller has no
// override. Larger radii merge more aggressively.
const DefaultRadiusPx = 50

// Engine clusters points for a viewport using its Projector. Engine
// carries configuration only, never state between passes: Cluster is a
// pure function of its arguments and safe for concurrent use. The zero
// value projects with WebMercator defaults.
type Engine struct {
	Projector Projector
}

var defaultEngine = Engine{Projector: WebMercator{}}

// Cluster runs one clustering pass with the default web-mercator
// projector. See Engine.Cluster.
func Cluster(points []GeoPoint, vp Viewport, radiusPx float64) []RenderEntity {
	return defaultEngine.Cluster(points, vp, radiusPx)
}

// Cluster partitions points into renderable entities for the given
// viewport. Every input point lands in exactly one entity: a Single
// wrapping the point, or folded into exactly one Cluster. Member order
// inside an entity and entity order across groups both follow point
// input order, which keeps the dominant-status tie-break and cluster
// IDs deterministic frame to frame as long as the partition itself is
// stable.
//
// Degenerate input degrades instead of failing: an empty point set
// yields an empty result, NaN coordinates project to NaN screen
// positions which satisfy no distance comparison and fall out as
// singletons, and a negative radius behaves as zero since a
// non-negative distance can never satisfy a negative threshold.
func (e Engine) Cluster(points []GeoPoint, vp Viewport, radiusPx float64) []RenderEntity {
	if len(points) == 0 {
		return nil
	}
	proj := e.Projector
	if proj == nil {
		proj = WebMercator{}
	}
	if radiusPx < 0 {
		radiusPx = 0
	}

	projected := make([]ProjectedPoint, len(points))
	for i, p := range points {
		x, y := proj.Project(p.Longitude, p.Latitude, vp)
		projected[i] = ProjectedPoint{GeoPoint: p, ScreenX: x, ScreenY: y, SourceIndex: i}
	}

	uf := newUnionFind(len(projected))
	r2 := radiusPx * radiusPx
	for i := 0; i < len(projected); i++ {
		for j := i + 1; j < len(projected); j++ {
			dx := projected[i].ScreenX - projected[j].ScreenX
			dy := projected[i].ScreenY - projected[j].ScreenY
			if dx*dx+dy*dy <= r2 {
				uf.union(i, j)
			}
		}
	}

	// Group by resolved root. First-seen roots keep input order both
	// across groups and within each member list.
	groupOf := make(map[int]int, len(projected))
	groups := make([][]int, 0, len(projected))
	for i := range projected {
		root := uf.find(i)
		gi, ok := groupOf[root]
		if !ok {
			gi = len(groups)
			groupOf[root] = gi
			groups = append(groups, nil)
		}
		groups[gi] = append(groups[gi], i)
	}

	entities := make([]RenderEntity, len(groups))
	for gi, members := range groups {
		entities[gi] = makeEntity(projected, members)
	}
	return entities
}

// makeEntity rolls one partition group up into a renderable entity.
func makeEntity(projected []ProjectedPoint, members []int) RenderEntity {
	if len(members) == 1 {
		p := projected[members[0]].GeoPoint
		return RenderEntity{
			Point:          &p,
			ID:             p.ID,
			Centroid:       LatLng{Latitude: p.Latitude, Longitude: p.Longitude},
			StatusCounts:   map[StatusTag]int{p.Status: 1},
			DominantStatus: p.Status,
			MemberCount:    1,
			Members:        members,
		}
	}

	var sumLat, sumLng float64
	counts := make(map[StatusTag]int, len(KnownStatuses)+1)
	for _, i := range members {
		sumLat += projected[i].Latitude
		sumLng += projected[i].Longitude
		counts[projected[i].Status]++
	}

	max := 0
	for _, c := range counts {
		if c > max {
			max = c
		}
	}
	// Ties go to the first member in group iteration order whose status
	// sits at the maximum, not to any sort order over the tags.
	dominant := StatusUnknown
	for _, i := range members {
		if counts[projected[i].Status] == max {
			dominant = projected[i].Status
			break
		}
	}

	n := float64(len(members))
	return RenderEntity{
		IsCluster:      true,
		ID:             clusterID(members),
		Centroid:       LatLng{Latitude: sumLat / n, Longitude: sumLng / n},
		StatusCounts:   counts,
		DominantStatus: dominant,
		MemberCount:    len(members),
		Members:        members,
	}
}

// clusterID derives a stable entity ID from the member source indices.
// Members arrive in ascending input order, so identical partitions
// always produce identical IDs.
func clusterID(members []int) string {
	var b strings.Builder
	b.WriteString("cluster")
	for _, i := range members {
		fmt.Fprintf(&b, "-%d", i)
	}
	return b.String()
}
