package key

import "time"

// Event represents a single key press or release.
type Event struct {
	// Key identifies the key.
	Key Key

	// Rune is the character for KeyRune events.
	Rune rune

	// Modifiers contains the active modifier keys.
	Modifiers Modifier

	// Timestamp is when the event occurred.
	Timestamp time.Time
}

// NewEvent creates a key event with the current timestamp.
func NewEvent(key Key, r rune, mods Modifier) Event {
	return Event{
		Key:       key,
		Rune:      r,
		Modifiers: mods,
		Timestamp: time.Now(),
	}
}

// IsSpace returns true for the space bar, whether it arrives as the
// dedicated key or as the space rune.
func (e Event) IsSpace() bool {
	return e.Key == KeySpace || (e.Key == KeyRune && e.Rune == ' ')
}

// IsEscape returns true if this is the Escape key (with no modifiers).
func (e Event) IsEscape() bool {
	return e.Key == KeyEscape && e.Modifiers == ModNone
}

// IsContextMenu returns true if this is the dedicated menu key.
func (e Event) IsContextMenu() bool {
	return e.Key == KeyContextMenu
}

// String returns a canonical representation like "Space" or "Ctrl+Esc".
func (e Event) String() string {
	mods := e.Modifiers.String()
	name := e.Key.String()
	if e.Key == KeyRune {
		name = string(e.Rune)
	}
	if mods == "" {
		return name
	}
	return mods + "+" + name
}
