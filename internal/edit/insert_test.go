package edit

import (
	"testing"

	"github.com/nyampire/Rapid/internal/feature"
	"github.com/nyampire/Rapid/internal/geo"
	"github.com/nyampire/Rapid/internal/input/pointer"
)

func segmentTarget() *feature.Target {
	return &feature.Target{
		Kind:    feature.KindSegment,
		ID:      "w1",
		NodeIDs: []string{"a", "b", "c"},
		Nodes: []geo.Point{
			{X: 0, Y: 0},
			{X: 10, Y: 0},
			{X: 10, Y: 10},
		},
	}
}

func newTestInserter() (*Inserter, *MemoryGraph, *MemoryHistory) {
	g := NewMemoryGraph()
	g.AddSegment("w1", []Node{
		{ID: "a", Loc: geo.Point{X: 0, Y: 0}},
		{ID: "b", Loc: geo.Point{X: 10, Y: 0}},
		{ID: "c", Loc: geo.Point{X: 10, Y: 10}},
	})
	h := NewMemoryHistory(g)
	return NewInserter(geo.SegmentChooser{}, h), g, h
}

func TestInsertOnSegment(t *testing.T) {
	ins, g, h := newTestInserter()

	// Off to the side of the first edge, nearest point is (4, 0).
	ins.Insert(&pointer.Event{
		Map:    geo.Point{X: 4, Y: 3},
		Target: segmentTarget(),
	})

	nodes, ok := g.SegmentNodes("w1")
	if !ok || len(nodes) != 4 {
		t.Fatalf("segment has %d vertices, want 4", len(nodes))
	}
	inserted := nodes[1]
	if nodes[0].ID != "a" || nodes[2].ID != "b" {
		t.Errorf("vertex order = %s %s %s %s, want the new vertex between a and b",
			nodes[0].ID, nodes[1].ID, nodes[2].ID, nodes[3].ID)
	}
	if !inserted.Loc.Equal(geo.Point{X: 4, Y: 0}) {
		t.Errorf("inserted at %v, want the nearest point (4, 0)", inserted.Loc)
	}

	changes := h.Changes()
	if len(changes) != 1 {
		t.Fatalf("committed %d transactions, want 1", len(changes))
	}
	if changes[0].Annotation != "Added a point to a line." {
		t.Errorf("annotation = %q", changes[0].Annotation)
	}
	if len(changes[0].SelectedIDs) != 1 || changes[0].SelectedIDs[0] != "w1" {
		t.Errorf("selection after commit = %v, want the parent segment", changes[0].SelectedIDs)
	}
}

func TestInsertOnMidpoint(t *testing.T) {
	ins, g, h := newTestInserter()

	mid := &feature.Target{
		Kind:    feature.KindMidpoint,
		ID:      "m1",
		Loc:     geo.Point{X: 10, Y: 5},
		Edge:    [2]string{"b", "c"},
		Segment: &feature.Target{Kind: feature.KindSegment, ID: "w1"},
	}
	ins.Insert(&pointer.Event{Map: geo.Point{X: 11, Y: 5}, Target: mid})

	nodes, ok := g.SegmentNodes("w1")
	if !ok || len(nodes) != 4 {
		t.Fatalf("segment has %d vertices, want 4", len(nodes))
	}
	if !nodes[2].Loc.Equal(geo.Point{X: 10, Y: 5}) {
		t.Errorf("inserted at %v, want the midpoint's own location", nodes[2].Loc)
	}
	if got := h.Changes(); len(got) != 1 || got[0].SelectedIDs[0] != "w1" {
		t.Errorf("changes = %+v, want one selecting w1", got)
	}
}

func TestInsertIgnoresOtherTargets(t *testing.T) {
	ins, g, h := newTestInserter()

	targets := []*feature.Target{
		nil,
		{Kind: feature.KindNode, ID: "a"},
		{Kind: feature.KindMidpoint, ID: "m1"}, // orphan, no parent segment
		{Kind: feature.KindQA, ID: "q1", Provider: "osmose"},
	}
	for _, target := range targets {
		ins.Insert(&pointer.Event{Map: geo.Point{X: 4, Y: 3}, Target: target})
	}
	ins.Insert(nil)

	if nodes, _ := g.SegmentNodes("w1"); len(nodes) != 3 {
		t.Errorf("segment has %d vertices, want 3 untouched", len(nodes))
	}
	if len(h.Changes()) != 0 {
		t.Error("a non-insertable target committed a transaction")
	}
}

func TestInsertMintsUniqueNodeIDs(t *testing.T) {
	ins, g, _ := newTestInserter()

	ins.Insert(&pointer.Event{Map: geo.Point{X: 2, Y: 1}, Target: segmentTarget()})

	// Re-hit with refreshed geometry for the second insertion.
	nodes, _ := g.SegmentNodes("w1")
	refreshed := &feature.Target{Kind: feature.KindSegment, ID: "w1"}
	for _, n := range nodes {
		refreshed.NodeIDs = append(refreshed.NodeIDs, n.ID)
		refreshed.Nodes = append(refreshed.Nodes, n.Loc)
	}
	ins.Insert(&pointer.Event{Map: geo.Point{X: 10, Y: 7}, Target: refreshed})

	nodes, _ = g.SegmentNodes("w1")
	seen := make(map[string]bool, len(nodes))
	for _, n := range nodes {
		if seen[n.ID] {
			t.Fatalf("duplicate vertex id %q", n.ID)
		}
		seen[n.ID] = true
	}
	if len(nodes) != 5 {
		t.Errorf("segment has %d vertices, want 5", len(nodes))
	}
}
