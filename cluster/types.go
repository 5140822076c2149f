package cluster

// StatusTag is the health classification attached to a tracked asset.
// It is a closed set: upstream data can carry arbitrary strings, but
// everything outside the recognized tags collapses to StatusUnknown so
// that aggregation stays exhaustive.
type StatusTag string

const (
	StatusHealthy          StatusTag = "healthy"
	StatusPredictedFailure StatusTag = "predicted-failure"
	StatusDownForRepairs   StatusTag = "down-for-repairs"
	StatusUnknown          StatusTag = "unknown"
)

// KnownStatuses lists every recognized tag except the unknown fallback.
var KnownStatuses = []StatusTag{StatusHealthy, StatusPredictedFailure, StatusDownForRepairs}

// ParseStatusTag maps an upstream status string onto the closed tag set.
// Unrecognized values become StatusUnknown, never an error.
func ParseStatusTag(s string) StatusTag {
	switch tag := StatusTag(s); tag {
	case StatusHealthy, StatusPredictedFailure, StatusDownForRepairs:
		return tag
	}
	return StatusUnknown
}

// GeoPoint is one tracked asset. Immutable input, owned by the caller.
type GeoPoint struct {
	ID          string    `json:"id"`
	Latitude    float64   `json:"latitude"`
	Longitude   float64   `json:"longitude"`
	Status      StatusTag `json:"status"`
	DisplayName string    `json:"displayName"`
}

// Viewport is the camera state used to project geography to screen
// pixels. Width and Height are the map container's rendered pixel size,
// never the surrounding display's. A Viewport is a value: pan and zoom
// replace it wholesale and trigger a fresh clustering pass.
type Viewport struct {
	Longitude float64 `json:"longitude"`
	Latitude  float64 `json:"latitude"`
	Zoom      float64 `json:"zoom"`
	Pitch     float64 `json:"pitch"`
	Bearing   float64 `json:"bearing"`
	Width     float64 `json:"width"`
	Height    float64 `json:"height"`
}

// ProjectedPoint is a GeoPoint plus its screen position for one pass.
// Derived and transient: recomputed on every viewport change, never kept.
type ProjectedPoint struct {
	GeoPoint
	ScreenX     float64
	ScreenY     float64
	SourceIndex int
}

// LatLng is an unprojected geographic position.
type LatLng struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// RenderEntity is one renderable map pin: either a lone point
// (IsCluster false, Point set) or a cluster summary (IsCluster true,
// Point nil). Entities are created fresh by every clustering pass and
// replaced wholesale by the next one; the aggregate fields are filled in
// for singles too so summary code can treat the list uniformly.
type RenderEntity struct {
	IsCluster bool `json:"isCluster"`

	// Point is the wrapped asset on singles, nil on clusters.
	Point *GeoPoint `json:"point,omitempty"`

	// ID is the point's own ID on singles and a stable digest of the
	// member source indices on clusters.
	ID             string            `json:"id"`
	Centroid       LatLng            `json:"centroid"`
	StatusCounts   map[StatusTag]int `json:"statusCounts"`
	DominantStatus StatusTag         `json:"dominantStatus"`
	MemberCount    int               `json:"memberCount"`

	// Members holds the source indices folded into this entity, in
	// input order.
	Members []int `json:"members"`
}
