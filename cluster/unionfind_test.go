package cluster

import "testing"

func TestUnionFindSingletons(t *testing.T) {
	u := newUnionFind(4)
	for i := 0; i < 4; i++ {
		if u.find(i) != i {
			t.Errorf("Fresh element %d has root %d", i, u.find(i))
		}
	}
}

func TestUnionFindTransitiveMerge(t *testing.T) {
	u := newUnionFind(6)
	u.union(0, 1)
	u.union(1, 2)

	if u.find(0) != u.find(2) {
		t.Error("0 and 2 should share a root after chained unions")
	}
	if u.find(3) == u.find(0) {
		t.Error("3 merged without a union")
	}

	// Repeated unions are no-ops.
	root := u.find(0)
	u.union(2, 0)
	if u.find(0) != root || u.size[u.find(0)] != 3 {
		t.Error("Redundant union changed the set")
	}
}

func TestUnionFindMergesDisjointGroups(t *testing.T) {
	u := newUnionFind(8)
	u.union(0, 1)
	u.union(2, 3)
	u.union(4, 5)
	u.union(1, 3)

	if u.find(0) != u.find(2) {
		t.Error("Groups {0,1} and {2,3} did not merge")
	}
	if u.find(4) == u.find(0) {
		t.Error("Group {4,5} merged spuriously")
	}
	if got := u.size[u.find(0)]; got != 4 {
		t.Errorf("Merged group size %d, want 4", got)
	}
}
