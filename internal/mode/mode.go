package mode

import "github.com/nyampire/Rapid/internal/feature"

// Canonical mode names.
const (
	// Browse is the neutral browsing mode.
	Browse = "browse"

	// Select is the generic selection mode for foreign features, QA
	// items, and detections. Its payload carries an id-to-target
	// mapping and never accumulates.
	Select = "select"

	// SelectOSM is the native selection mode for editable graph
	// entities. Its payload carries the ordered selection list.
	SelectOSM = "select-osm"
)

// Payload carries the selection a mode is entered with.
type Payload struct {
	// SelectedIDs is the ordered selection list (SelectOSM).
	SelectedIDs []string

	// Targets maps identifier to target (Select).
	Targets map[string]*feature.Target
}

// IsEmpty reports whether the payload selects nothing.
func (p Payload) IsEmpty() bool {
	return len(p.SelectedIDs) == 0 && len(p.Targets) == 0
}

// Mode defines an editor mode. Modes are registered with a Manager
// and entered by name with a payload.
type Mode interface {
	// Name returns the unique mode identifier.
	Name() string

	// Enter is called when the mode becomes current. It is called
	// again, with a fresh payload, even when the mode is already
	// current: downstream listeners must observe a fresh transition.
	Enter(p Payload) error

	// Exit is called when the mode stops being current.
	Exit() error
}
