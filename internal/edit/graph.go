package edit

import (
	"sync"

	"github.com/nyampire/Rapid/internal/geo"
)

// Node is a vertex in the editable graph.
type Node struct {
	ID  string
	Loc geo.Point
}

// Graph is the slice of the host's entity graph the editor mutates:
// ordered segment vertices and vertex insertion. Failed lookups and
// splices report false; the engine treats them as nothing happened.
type Graph interface {
	// SegmentNodes returns a segment's vertices in order.
	SegmentNodes(segmentID string) ([]Node, bool)

	// InsertNode splices a new vertex into a segment between the two
	// named vertices.
	InsertNode(segmentID string, n Node, beforeID, afterID string) bool
}

// MemoryGraph is an in-memory Graph for hosts without a native one,
// and for tests.
type MemoryGraph struct {
	mu       sync.RWMutex
	segments map[string][]Node
}

// NewMemoryGraph creates an empty in-memory graph.
func NewMemoryGraph() *MemoryGraph {
	return &MemoryGraph{segments: make(map[string][]Node)}
}

// AddSegment adds or replaces a segment with the given vertices.
func (g *MemoryGraph) AddSegment(id string, nodes []Node) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.segments[id] = append([]Node(nil), nodes...)
}

// SegmentNodes implements Graph.
func (g *MemoryGraph) SegmentNodes(segmentID string) ([]Node, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	nodes, ok := g.segments[segmentID]
	if !ok {
		return nil, false
	}
	return append([]Node(nil), nodes...), true
}

// InsertNode implements Graph. The new vertex must land between two
// adjacent existing vertices; anything else reports false.
func (g *MemoryGraph) InsertNode(segmentID string, n Node, beforeID, afterID string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	nodes, ok := g.segments[segmentID]
	if !ok {
		return false
	}
	for i := 1; i < len(nodes); i++ {
		if nodes[i-1].ID == beforeID && nodes[i].ID == afterID {
			spliced := make([]Node, 0, len(nodes)+1)
			spliced = append(spliced, nodes[:i]...)
			spliced = append(spliced, n)
			spliced = append(spliced, nodes[i:]...)
			g.segments[segmentID] = spliced
			return true
		}
	}
	return false
}
