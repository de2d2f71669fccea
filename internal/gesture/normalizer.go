package gesture

import (
	"time"

	"github.com/nyampire/Rapid/internal/feature"
	"github.com/nyampire/Rapid/internal/geo"
	"github.com/nyampire/Rapid/internal/input/pointer"
)

// RawPointer is a host pointer event before normalization: identity,
// screen position, button, and device kind, as delivered by the host.
type RawPointer struct {
	ID     int64
	Screen geo.Point
	Time   time.Time
	Button pointer.Button
	Kind   pointer.Kind
}

// Projection converts between the host's screen space and map space.
type Projection interface {
	// Invert maps a screen coordinate to a map coordinate.
	Invert(screen geo.Point) geo.Point
}

// ProjectionFunc adapts a function to the Projection interface.
type ProjectionFunc func(screen geo.Point) geo.Point

// Invert implements Projection.
func (f ProjectionFunc) Invert(screen geo.Point) geo.Point {
	return f(screen)
}

// HitTester resolves the classified target under a screen coordinate,
// or nil when nothing is there.
type HitTester interface {
	TargetAt(screen geo.Point) *feature.Target
}

// HitTesterFunc adapts a function to the HitTester interface.
type HitTesterFunc func(screen geo.Point) *feature.Target

// TargetAt implements HitTester.
func (f HitTesterFunc) TargetAt(screen geo.Point) *feature.Target {
	return f(screen)
}

// Normalizer converts raw host pointer events into canonical Event
// records. It is stateless per call.
type Normalizer struct {
	proj Projection
	hits HitTester
	now  func() time.Time
}

// NewNormalizer creates a normalizer over the given projection and
// hit test collaborators.
func NewNormalizer(proj Projection, hits HitTester) *Normalizer {
	return &Normalizer{
		proj: proj,
		hits: hits,
		now:  time.Now,
	}
}

// Normalize produces the canonical event record for a raw event.
// A zero raw timestamp is replaced with the current time.
func (n *Normalizer) Normalize(raw RawPointer) *pointer.Event {
	t := raw.Time
	if t.IsZero() {
		t = n.now()
	}

	ev := &pointer.Event{
		ID:     raw.ID,
		Screen: raw.Screen,
		Time:   t,
		Button: raw.Button,
		Kind:   raw.Kind,
	}
	if n.proj != nil {
		ev.Map = n.proj.Invert(raw.Screen)
	} else {
		ev.Map = raw.Screen
	}
	if n.hits != nil {
		ev.Target = n.hits.TargetAt(raw.Screen)
	}
	return ev
}
