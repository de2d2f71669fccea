package hook

import (
	"testing"

	"github.com/nyampire/Rapid/internal/feature"
	"github.com/nyampire/Rapid/internal/geo"
	"github.com/nyampire/Rapid/internal/gesture"
	"github.com/nyampire/Rapid/internal/input/pointer"
)

type recordSink struct {
	clicks  int
	doubles int
	ensures int
	resets  int
}

func (s *recordSink) Click(*pointer.Event)          { s.clicks++ }
func (s *recordSink) DoubleClick(*pointer.Event)    { s.doubles++ }
func (s *recordSink) EnsureSelected(*pointer.Event) { s.ensures++ }
func (s *recordSink) Reset()                        { s.resets++ }

type recordMenu struct {
	toggles int
	closes  int
}

func (m *recordMenu) Toggle(*pointer.Event, gesture.Trigger) { m.toggles++ }
func (m *recordMenu) CloseAll()                              { m.closes++ }

func clickEvent() *pointer.Event {
	return &pointer.Event{
		Screen: geo.Point{X: 3, Y: 4},
		Map:    geo.Point{X: 30, Y: 40},
		Target: &feature.Target{Kind: feature.KindNode, ID: "n1"},
	}
}

func TestSelectionTapEmitsAndForwards(t *testing.T) {
	reg := NewRegistry()
	var seen []Event
	reg.Register(func(ev Event) { seen = append(seen, ev) })

	sink := &recordSink{}
	tap := NewSelectionTap(reg, sink)

	tap.Click(clickEvent())
	tap.DoubleClick(clickEvent())
	tap.EnsureSelected(clickEvent())
	tap.Reset()

	if sink.clicks != 1 || sink.doubles != 1 || sink.ensures != 1 || sink.resets != 1 {
		t.Errorf("forwarding = %+v", sink)
	}
	// Only classified gestures are observable, not plumbing calls.
	if len(seen) != 2 {
		t.Fatalf("observed %d events, want 2", len(seen))
	}
	if seen[0].Gesture != "click" || seen[1].Gesture != "double-click" {
		t.Errorf("gestures = %q, %q", seen[0].Gesture, seen[1].Gesture)
	}
	if seen[0].TargetKind != "node" || seen[0].TargetID != "n1" {
		t.Errorf("target = %q %q", seen[0].TargetKind, seen[0].TargetID)
	}
	if !seen[0].Screen.Equal(geo.Point{X: 3, Y: 4}) || !seen[0].Map.Equal(geo.Point{X: 30, Y: 40}) {
		t.Errorf("positions = %v / %v", seen[0].Screen, seen[0].Map)
	}
}

func TestMenuTapEmitsTrigger(t *testing.T) {
	reg := NewRegistry()
	var seen []Event
	reg.Register(func(ev Event) { seen = append(seen, ev) })

	menu := &recordMenu{}
	tap := NewMenuTap(reg, menu)

	tap.Toggle(clickEvent(), gesture.TriggerLongPress)
	tap.CloseAll()

	if menu.toggles != 1 || menu.closes != 1 {
		t.Errorf("forwarding = %+v", menu)
	}
	if len(seen) != 1 {
		t.Fatalf("observed %d events, want 1", len(seen))
	}
	if seen[0].Gesture != "context-menu" || seen[0].Trigger != gesture.TriggerLongPress.String() {
		t.Errorf("event = %+v", seen[0])
	}
}

func TestRegistryFansOut(t *testing.T) {
	reg := NewRegistry()
	var a, b int
	reg.Register(func(Event) { a++ })
	reg.Register(func(Event) { b++ })

	NewSelectionTap(reg, nil).Click(clickEvent())

	if a != 1 || b != 1 {
		t.Errorf("fan-out = %d / %d", a, b)
	}
}

func TestEventForNoTarget(t *testing.T) {
	out := eventFor("click", &pointer.Event{Screen: geo.Point{X: 1}})
	if out.TargetKind != "" || out.TargetID != "" {
		t.Errorf("targetless event = %+v", out)
	}
}
