package hook

import (
	"sync"

	"github.com/nyampire/Rapid/internal/geo"
	"github.com/nyampire/Rapid/internal/gesture"
	"github.com/nyampire/Rapid/internal/input/pointer"
)

// Event describes one classified gesture for observers. Observers see
// outcomes only; they cannot mutate engine state.
type Event struct {
	// Gesture is the classified intent: "click", "double-click", or
	// "context-menu".
	Gesture string

	// Trigger is set for context-menu events.
	Trigger string

	// Screen and Map are the gesture's positions.
	Screen geo.Point
	Map    geo.Point

	// TargetKind and TargetID describe what was under the pointer.
	TargetKind string
	TargetID   string
}

// Func observes classified gestures.
type Func func(Event)

// Registry fans classified gestures out to registered observers.
type Registry struct {
	mu    sync.RWMutex
	hooks []Func
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// Register adds an observer.
func (r *Registry) Register(f Func) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.hooks = append(r.hooks, f)
}

func (r *Registry) emit(ev Event) {
	r.mu.RLock()
	hooks := make([]Func, len(r.hooks))
	copy(hooks, r.hooks)
	r.mu.RUnlock()

	for _, f := range hooks {
		if f != nil {
			f(ev)
		}
	}
}

func eventFor(gestureName string, ev *pointer.Event) Event {
	out := Event{
		Gesture: gestureName,
		Screen:  ev.Screen,
		Map:     ev.Map,
	}
	if ev.Target != nil {
		out.TargetKind = ev.Target.Kind.String()
		out.TargetID = ev.Target.ID
	}
	return out
}

// SelectionTap decorates a gesture.SelectionSink, emitting hook
// events before forwarding.
type SelectionTap struct {
	reg  *Registry
	next gesture.SelectionSink
}

// NewSelectionTap wraps next with observation through reg.
func NewSelectionTap(reg *Registry, next gesture.SelectionSink) *SelectionTap {
	return &SelectionTap{reg: reg, next: next}
}

// Click implements gesture.SelectionSink.
func (t *SelectionTap) Click(ev *pointer.Event) {
	t.reg.emit(eventFor("click", ev))
	if t.next != nil {
		t.next.Click(ev)
	}
}

// DoubleClick implements gesture.SelectionSink.
func (t *SelectionTap) DoubleClick(ev *pointer.Event) {
	t.reg.emit(eventFor("double-click", ev))
	if t.next != nil {
		t.next.DoubleClick(ev)
	}
}

// EnsureSelected implements gesture.SelectionSink.
func (t *SelectionTap) EnsureSelected(ev *pointer.Event) {
	if t.next != nil {
		t.next.EnsureSelected(ev)
	}
}

// Reset implements gesture.SelectionSink.
func (t *SelectionTap) Reset() {
	if t.next != nil {
		t.next.Reset()
	}
}

// MenuTap decorates a gesture.MenuSink, emitting hook events before
// forwarding.
type MenuTap struct {
	reg  *Registry
	next gesture.MenuSink
}

// NewMenuTap wraps next with observation through reg.
func NewMenuTap(reg *Registry, next gesture.MenuSink) *MenuTap {
	return &MenuTap{reg: reg, next: next}
}

// Toggle implements gesture.MenuSink.
func (t *MenuTap) Toggle(ev *pointer.Event, trigger gesture.Trigger) {
	out := eventFor("context-menu", ev)
	out.Trigger = trigger.String()
	t.reg.emit(out)
	if t.next != nil {
		t.next.Toggle(ev, trigger)
	}
}

// CloseAll implements gesture.MenuSink.
func (t *MenuTap) CloseAll() {
	if t.next != nil {
		t.next.CloseAll()
	}
}
