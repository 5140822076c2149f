package cluster

import "testing"

func TestSummarizeMixedEntities(t *testing.T) {
	entities := Cluster(sfFleet(), sfViewport(), DefaultRadiusPx)
	summary := Summarize(entities)

	if summary.TotalPoints != 6 {
		t.Errorf("Expected 6 total points, got %d", summary.TotalPoints)
	}
	if summary.NumClusters != 1 || summary.NumSinglePoints != 3 {
		t.Errorf("Expected 1 cluster and 3 singles, got %d and %d",
			summary.NumClusters, summary.NumSinglePoints)
	}
	if summary.StatusCounts[StatusHealthy] != 3 ||
		summary.StatusCounts[StatusPredictedFailure] != 2 ||
		summary.StatusCounts[StatusDownForRepairs] != 1 {
		t.Errorf("Unexpected status counts %v", summary.StatusCounts)
	}
	if summary.DominantStatus != StatusHealthy {
		t.Errorf("Expected overall dominant %s, got %s", StatusHealthy, summary.DominantStatus)
	}
}

func TestSummarizeEmpty(t *testing.T) {
	summary := Summarize(nil)
	if summary.TotalPoints != 0 || summary.NumClusters != 0 || summary.NumSinglePoints != 0 {
		t.Errorf("Empty summary not zeroed: %+v", summary)
	}
	if len(summary.StatusCounts) != 0 {
		t.Errorf("Empty summary has status counts %v", summary.StatusCounts)
	}
}

func TestSummarizeTieGoesToFirstEntity(t *testing.T) {
	points := []GeoPoint{
		flatPoint("a", 0, 0, StatusDownForRepairs),
		flatPoint("b", 100, 0, StatusHealthy),
	}
	summary := Summarize(flatEngine.Cluster(points, Viewport{}, 10))

	if summary.DominantStatus != StatusDownForRepairs {
		t.Errorf("Expected tie to resolve to first entity's status, got %s", summary.DominantStatus)
	}
}
