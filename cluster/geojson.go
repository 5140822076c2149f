package cluster

// GeoJSON types consumed by the icon/text/donut rendering layers.
type Feature struct {
	Type       string                 `json:"type"`
	Geometry   Geometry               `json:"geometry"`
	Properties map[string]interface{} `json:"properties"`
}

type FeatureCollection struct {
	Type     string    `json:"type"`
	Features []Feature `json:"features"`
}

type Geometry struct {
	Type        string    `json:"type"`
	Coordinates []float64 `json:"coordinates"`
}

// ToGeoJSON converts one clustering pass's entities to a GeoJSON
// FeatureCollection. Status tags pass through untouched; picking colors
// and icons for them is the rendering layers' concern.
func ToGeoJSON(entities []RenderEntity) *FeatureCollection {
	features := make([]Feature, len(entities))
	for i, ent := range entities {
		properties := map[string]interface{}{
			"cluster":         ent.IsCluster,
			"id":              ent.ID,
			"point_count":     ent.MemberCount,
			"dominant_status": string(ent.DominantStatus),
		}

		if ent.IsCluster {
			counts := make(map[string]int, len(ent.StatusCounts))
			for tag, n := range ent.StatusCounts {
				counts[string(tag)] = n
			}
			properties["status_counts"] = counts
		} else {
			properties["status"] = string(ent.Point.Status)
			properties["name"] = ent.Point.DisplayName
		}

		features[i] = Feature{
			Type: "Feature",
			Geometry: Geometry{
				Type:        "Point",
				Coordinates: []float64{ent.Centroid.Longitude, ent.Centroid.Latitude},
			},
			Properties: properties,
		}
	}

	return &FeatureCollection{
		Type:     "FeatureCollection",
		Features: features,
	}
}
