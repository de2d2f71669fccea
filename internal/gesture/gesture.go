package gesture

import "github.com/nyampire/Rapid/internal/input/pointer"

// Trigger says how a context-menu request was produced.
type Trigger uint8

const (
	// TriggerPointer is a secondary-button click.
	TriggerPointer Trigger = iota
	// TriggerLongPress is a held touch.
	TriggerLongPress
	// TriggerKeyboard is the dedicated menu key.
	TriggerKeyboard
)

// String returns a string representation of the trigger.
func (t Trigger) String() string {
	switch t {
	case TriggerLongPress:
		return "longpress"
	case TriggerKeyboard:
		return "keyboard"
	default:
		return "pointer"
	}
}

// SelectionSink receives accepted click gestures. The selection
// dispatcher implements it.
type SelectionSink interface {
	// Click handles an accepted single click.
	Click(ev *pointer.Event)

	// DoubleClick handles an accepted double-click. It is dispatched
	// distinctly; a double-click is never re-delivered as a second
	// single click.
	DoubleClick(ev *pointer.Event)

	// EnsureSelected makes the event's target selected if it is not
	// already, without toggling. Used before opening a context menu
	// on a secondary-button click.
	EnsureSelected(ev *pointer.Event)

	// Reset cancels any deferred work (the zoom-suppression
	// debounce) and restores the host's native gestures.
	Reset()
}

// MenuSink receives context-menu requests. The menu dispatcher
// implements it.
type MenuSink interface {
	// Toggle opens the appropriate menu for the event's target, or
	// closes it if it is already open.
	Toggle(ev *pointer.Event, trigger Trigger)

	// CloseAll closes every menu and resets the open flags.
	CloseAll()
}

// UIState answers questions about host UI state the classifier cannot
// know on its own.
type UIState interface {
	// TextFieldFocused reports whether keyboard focus is inside a
	// text input; the space-bar click is swallowed while it is.
	TextFieldFocused() bool

	// ComboboxOpen reports whether a text-entry combobox is open;
	// Escape is swallowed while it is.
	ComboboxOpen() bool
}

// Collaborators bundles the classifier's downstream dependencies.
// Any of them may be nil; a nil collaborator turns its effects into
// no-ops.
type Collaborators struct {
	// Selection receives accepted clicks and double-clicks.
	Selection SelectionSink

	// Menus receives context-menu requests.
	Menus MenuSink

	// UI answers focus and widget-state queries.
	UI UIState

	// Browse requests a transition to the neutral browsing mode
	// (the Escape path).
	Browse func()
}

// effects is what one transition decided to emit. The classifier
// computes effects under its lock and applies them after releasing
// it, so sinks never run with the lock held.
type effects struct {
	closeMenus bool
	browse     bool

	click  *pointer.Event
	double *pointer.Event
	ensure *pointer.Event

	menu        *pointer.Event
	menuTrigger Trigger

	resetSelection bool
}
