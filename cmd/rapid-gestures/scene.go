package main

import (
	"github.com/nyampire/Rapid/internal/edit"
	"github.com/nyampire/Rapid/internal/feature"
	"github.com/nyampire/Rapid/internal/geo"
)

// hitRadius is how close (in cells) the pointer must be to a point
// feature to hit it.
const hitRadius = 1.5

// marker is a point feature placed on the demo map.
type marker struct {
	loc    geo.Point
	target feature.Target
	glyph  rune
}

// scene is the synthetic map the demo edits: two ways in an editable
// graph plus a handful of point markers.
type scene struct {
	graph   *edit.MemoryGraph
	ways    []string
	markers []marker
}

func newScene() *scene {
	s := &scene{graph: edit.NewMemoryGraph()}

	s.addWay("w1", []edit.Node{
		{ID: "n1", Loc: geo.Point{X: 10, Y: 4}},
		{ID: "n2", Loc: geo.Point{X: 30, Y: 4}},
		{ID: "n3", Loc: geo.Point{X: 30, Y: 12}},
	})
	s.addWay("w2", []edit.Node{
		{ID: "n4", Loc: geo.Point{X: 6, Y: 14}},
		{ID: "n5", Loc: geo.Point{X: 24, Y: 18}},
	})

	s.markers = append(s.markers,
		marker{
			loc:    geo.Point{X: 44, Y: 6},
			target: feature.Target{Kind: feature.KindQA, ID: "qa-1", Provider: "osmose"},
			glyph:  '!',
		},
		marker{
			loc:    geo.Point{X: 48, Y: 14},
			target: feature.Target{Kind: feature.KindForeign, ID: "foreign-1"},
			glyph:  '?',
		},
		marker{
			loc:    geo.Point{X: 40, Y: 18},
			target: feature.Target{Kind: feature.KindPhoto, ID: "photo-1", Layer: "street", PhotoID: "photo-1"},
			glyph:  '*',
		},
	)
	return s
}

func (s *scene) addWay(id string, nodes []edit.Node) {
	s.graph.AddSegment(id, nodes)
	s.ways = append(s.ways, id)
}

// hitTest resolves the feature under a map location: vertices first,
// then midpoints, then markers, then way paths.
func (s *scene) hitTest(loc geo.Point) *feature.Target {
	for _, id := range s.ways {
		nodes, _ := s.graph.SegmentNodes(id)
		for _, n := range nodes {
			if loc.Distance(n.Loc) <= hitRadius {
				return &feature.Target{Kind: feature.KindNode, ID: n.ID}
			}
		}
	}

	for _, id := range s.ways {
		if t := s.hitMidpoint(id, loc); t != nil {
			return t
		}
	}

	for i := range s.markers {
		if loc.Distance(s.markers[i].loc) <= hitRadius {
			t := s.markers[i].target
			return &t
		}
	}

	for _, id := range s.ways {
		if t := s.hitWay(id, loc); t != nil {
			return t
		}
	}
	return nil
}

func (s *scene) hitMidpoint(id string, loc geo.Point) *feature.Target {
	nodes, _ := s.graph.SegmentNodes(id)
	for i := 1; i < len(nodes); i++ {
		mid := geo.Point{
			X: (nodes[i-1].Loc.X + nodes[i].Loc.X) / 2,
			Y: (nodes[i-1].Loc.Y + nodes[i].Loc.Y) / 2,
		}
		if loc.Distance(mid) <= hitRadius {
			return &feature.Target{
				Kind:    feature.KindMidpoint,
				ID:      id + "-mid",
				Loc:     mid,
				Edge:    [2]string{nodes[i-1].ID, nodes[i].ID},
				Segment: s.wayTarget(id),
			}
		}
	}
	return nil
}

func (s *scene) hitWay(id string, loc geo.Point) *feature.Target {
	nodes, _ := s.graph.SegmentNodes(id)
	points := make([]geo.Point, len(nodes))
	for i, n := range nodes {
		points[i] = n.Loc
	}
	choice, ok := geo.SegmentChooser{}.ChooseEdge(points, loc)
	if !ok || choice.Distance > hitRadius {
		return nil
	}
	return s.wayTarget(id)
}

// wayTarget builds a segment target with the way's current geometry.
func (s *scene) wayTarget(id string) *feature.Target {
	nodes, _ := s.graph.SegmentNodes(id)
	t := &feature.Target{Kind: feature.KindSegment, ID: id}
	for _, n := range nodes {
		t.NodeIDs = append(t.NodeIDs, n.ID)
		t.Nodes = append(t.Nodes, n.Loc)
	}
	return t
}
