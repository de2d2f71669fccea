package feature

import "github.com/nyampire/Rapid/internal/geo"

// Kind discriminates what a pointer event landed on. Dispatchers
// switch exhaustively over Kind; adding a variant means adding an arm.
type Kind uint8

const (
	// KindNone indicates no classified target.
	KindNone Kind = iota
	// KindNode is an editable vertex in the native graph.
	KindNode
	// KindSegment is an editable way in the native graph.
	KindSegment
	// KindMidpoint is a synthetic insertion point on a segment.
	// Selection redirects it to its parent segment.
	KindMidpoint
	// KindForeign is a displayed feature outside the native graph:
	// imported, overlay, or custom data.
	KindForeign
	// KindQA is an issue marker from an external QA provider.
	KindQA
	// KindDetection is an object-detection result marker.
	KindDetection
	// KindPhoto is a photo marker from a photo layer.
	KindPhoto
)

// String returns a string representation of the kind.
func (k Kind) String() string {
	switch k {
	case KindNode:
		return "node"
	case KindSegment:
		return "segment"
	case KindMidpoint:
		return "midpoint"
	case KindForeign:
		return "foreign"
	case KindQA:
		return "qa"
	case KindDetection:
		return "detection"
	case KindPhoto:
		return "photo"
	default:
		return "none"
	}
}

// IsEditable returns true for targets in the native editable graph.
// Midpoints count: they redirect to their parent segment.
func (k Kind) IsEditable() bool {
	return k == KindNode || k == KindSegment || k == KindMidpoint
}

// Target is what the hit test resolved under the pointer. It is a
// tagged union: Kind selects which of the variant fields are valid.
type Target struct {
	// Kind selects the variant.
	Kind Kind

	// ID is the target's identity, used for same-target matching
	// between the two ups of a double-click.
	ID string

	// NodeIDs and Nodes are the constituent vertices of a segment,
	// in order. Valid for KindSegment.
	NodeIDs []string
	Nodes   []geo.Point

	// Segment is the parent segment of a midpoint, Loc its location,
	// and Edge the pair of vertex IDs bracketing it. Valid for
	// KindMidpoint.
	Segment *Target
	Loc     geo.Point
	Edge    [2]string

	// Provider names the QA provider. Valid for KindQA.
	Provider string

	// Layer and PhotoID identify a photo. Valid for KindPhoto.
	Layer   string
	PhotoID string
}

// SelectionID returns the identifier selection should act on: a
// midpoint's parent segment ID, otherwise the target's own ID.
func (t *Target) SelectionID() string {
	if t == nil {
		return ""
	}
	if t.Kind == KindMidpoint {
		if t.Segment == nil {
			return ""
		}
		return t.Segment.ID
	}
	return t.ID
}

// Resolve returns the target selection should act on: a midpoint's
// parent segment, otherwise the target itself.
func (t *Target) Resolve() *Target {
	if t != nil && t.Kind == KindMidpoint && t.Segment != nil {
		return t.Segment
	}
	return t
}
