package edit

import (
	"github.com/google/uuid"

	"github.com/nyampire/Rapid/internal/feature"
	"github.com/nyampire/Rapid/internal/geo"
	"github.com/nyampire/Rapid/internal/input/pointer"
)

// insertAnnotation is the transaction annotation for a double-click
// vertex insertion.
const insertAnnotation = "Added a point to a line."

// InsertVertex splices a new vertex into a segment between two named
// adjacent vertices.
type InsertVertex struct {
	SegmentID string
	Node      Node
	BeforeID  string
	AfterID   string
}

// Apply implements Action.
func (a InsertVertex) Apply(g Graph) bool {
	return g.InsertNode(a.SegmentID, a.Node, a.BeforeID, a.AfterID)
}

// Inserter performs the double-click vertex insertion: one atomic
// edit that adds a vertex to the clicked segment at the nearest point
// on its path, leaving the segment selected.
type Inserter struct {
	chooser geo.EdgeChooser
	history History

	// newNodeID mints identifiers for inserted vertices.
	newNodeID func() string
}

// NewInserter creates an inserter over the external geometry query
// and transaction API.
func NewInserter(chooser geo.EdgeChooser, history History) *Inserter {
	return &Inserter{
		chooser:   chooser,
		history:   history,
		newNodeID: func() string { return "n-" + uuid.NewString() },
	}
}

// Insert handles an accepted double-click. A segment target resolves
// its insertion point through the geometry query; a midpoint already
// carries its location and bracketing pair. Any other target, or a
// target with no resolvable geometry, performs no insertion.
func (i *Inserter) Insert(ev *pointer.Event) {
	if ev == nil || ev.Target == nil || i.history == nil {
		return
	}

	var segmentID, beforeID, afterID string
	var loc geo.Point

	t := ev.Target
	switch t.Kind {
	case feature.KindSegment:
		if i.chooser == nil || len(t.NodeIDs) < 2 || len(t.NodeIDs) != len(t.Nodes) {
			return
		}
		choice, ok := i.chooser.ChooseEdge(t.Nodes, ev.Map)
		if !ok || choice.Index < 1 || choice.Index >= len(t.NodeIDs) {
			return
		}
		segmentID = t.ID
		loc = choice.Loc
		beforeID = t.NodeIDs[choice.Index-1]
		afterID = t.NodeIDs[choice.Index]

	case feature.KindMidpoint:
		segmentID = t.SelectionID()
		if segmentID == "" {
			return
		}
		loc = t.Loc
		beforeID = t.Edge[0]
		afterID = t.Edge[1]

	default:
		return
	}

	i.history.Perform(InsertVertex{
		SegmentID: segmentID,
		Node:      Node{ID: i.newNodeID(), Loc: loc},
		BeforeID:  beforeID,
		AfterID:   afterID,
	})
	// The parent segment, not the new vertex, stays selected.
	i.history.Commit(insertAnnotation, []string{segmentID})
}
