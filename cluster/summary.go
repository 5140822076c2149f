package cluster

// StatusSummary is a viewport-wide rollup over one clustering pass.
type StatusSummary struct {
	TotalPoints     int               `json:"totalPoints"`
	NumClusters     int               `json:"numClusters"`
	NumSinglePoints int               `json:"numSinglePoints"`
	StatusCounts    map[StatusTag]int `json:"statusCounts"`
	DominantStatus  StatusTag         `json:"dominantStatus"`
}

// Summarize aggregates an entity list into a StatusSummary. The overall
// dominant status mirrors the per-cluster rule: among tags tied at the
// maximum, the first contributing entity in slice order wins.
func Summarize(entities []RenderEntity) StatusSummary {
	summary := StatusSummary{StatusCounts: make(map[StatusTag]int)}
	if len(entities) == 0 {
		return summary
	}

	for _, ent := range entities {
		if ent.IsCluster {
			summary.NumClusters++
		} else {
			summary.NumSinglePoints++
		}
		summary.TotalPoints += ent.MemberCount
		for tag, n := range ent.StatusCounts {
			summary.StatusCounts[tag] += n
		}
	}

	max := 0
	for _, n := range summary.StatusCounts {
		if n > max {
			max = n
		}
	}
	for _, ent := range entities {
		if summary.StatusCounts[ent.DominantStatus] == max {
			summary.DominantStatus = ent.DominantStatus
			return summary
		}
	}
	// No entity's own dominant sits at the overall maximum (possible
	// when the top tag is spread thinly across clusters); fall back to
	// the fixed tag order.
	for _, tag := range append(append([]StatusTag{}, KnownStatuses...), StatusUnknown) {
		if summary.StatusCounts[tag] == max {
			summary.DominantStatus = tag
			break
		}
	}
	return summary
}
