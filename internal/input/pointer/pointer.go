package pointer

import (
	"time"

	"github.com/nyampire/Rapid/internal/feature"
	"github.com/nyampire/Rapid/internal/geo"
)

// Button represents a pointer button.
type Button uint8

const (
	// ButtonNone indicates no button.
	ButtonNone Button = iota
	// ButtonLeft is the primary button.
	ButtonLeft
	// ButtonMiddle is the middle button.
	ButtonMiddle
	// ButtonRight is the secondary button.
	ButtonRight
)

// String returns a string representation of the button.
func (b Button) String() string {
	switch b {
	case ButtonLeft:
		return "left"
	case ButtonMiddle:
		return "middle"
	case ButtonRight:
		return "right"
	default:
		return "none"
	}
}

// IsPrimary returns true for the primary (left) button.
func (b Button) IsPrimary() bool {
	return b == ButtonLeft
}

// IsSecondary returns true for the secondary (right) button.
func (b Button) IsSecondary() bool {
	return b == ButtonRight
}

// Kind identifies the device a pointer event came from.
type Kind uint8

const (
	// KindMouse is a mouse pointer.
	KindMouse Kind = iota
	// KindPen is a stylus pointer.
	KindPen
	// KindTouch is a touch contact.
	KindTouch
)

// String returns a string representation of the kind.
func (k Kind) String() string {
	switch k {
	case KindPen:
		return "pen"
	case KindTouch:
		return "touch"
	default:
		return "mouse"
	}
}

// IsTouch returns true for touch contacts. Only touch arms the
// long-press timer.
func (k Kind) IsTouch() bool {
	return k == KindTouch
}

// Event is a normalized pointer event: one canonical record per raw
// host event, carrying both coordinate spaces and the classified
// target under the pointer.
type Event struct {
	// ID is the pointer identity. A down and its matching move/up
	// events share an ID.
	ID int64

	// Screen is the event position in screen space.
	Screen geo.Point

	// Map is the event position projected into map space.
	Map geo.Point

	// Time is when the event occurred.
	Time time.Time

	// Button is the originating button, if any.
	Button Button

	// Kind is the pointing device.
	Kind Kind

	// Target is what the hit test found under the pointer, or nil.
	Target *feature.Target

	// Cancelled marks a tracked down record as no longer eligible to
	// become a click. It is set in place while the pointer is down
	// and never cleared before the record is discarded.
	Cancelled bool
}

// WithTarget returns a copy of the event with a replaced target.
func (e *Event) WithTarget(t *feature.Target) *Event {
	clone := *e
	clone.Target = t
	return &clone
}
