package mode

// BrowseMode is the neutral browsing mode: nothing selected, no
// edits in flight.
type BrowseMode struct{}

// Name implements Mode.
func (BrowseMode) Name() string { return Browse }

// Enter implements Mode.
func (BrowseMode) Enter(Payload) error { return nil }

// Exit implements Mode.
func (BrowseMode) Exit() error { return nil }

// SelectMode is the generic selection mode for foreign features, QA
// items, and detections. It keeps the single-entry mapping it was
// entered with; these target kinds never multi-select.
type SelectMode struct{}

// Name implements Mode.
func (SelectMode) Name() string { return Select }

// Enter implements Mode.
func (SelectMode) Enter(Payload) error { return nil }

// Exit implements Mode.
func (SelectMode) Exit() error { return nil }

// SelectOSMMode is the native selection mode for editable graph
// entities. The manager records the selection list it was entered
// with; the dispatcher reads it back through SelectedIDs.
type SelectOSMMode struct{}

// Name implements Mode.
func (SelectOSMMode) Name() string { return SelectOSM }

// Enter implements Mode.
func (SelectOSMMode) Enter(Payload) error { return nil }

// Exit implements Mode.
func (SelectOSMMode) Exit() error { return nil }
