package key

// Key identifies a keyboard key the gesture engine reacts to.
// Keys outside this set still cancel a pending long-press but carry
// no further meaning; they arrive as KeyRune or KeyOther.
type Key uint8

const (
	// KeyNone indicates no key.
	KeyNone Key = iota
	// KeyRune is a printable character key.
	KeyRune
	// KeySpace is the space bar.
	KeySpace
	// KeyEscape is the Escape key.
	KeyEscape
	// KeyContextMenu is the dedicated menu key.
	KeyContextMenu
	// KeyOther is any key the engine does not interpret.
	KeyOther
)

// String returns a string representation of the key.
func (k Key) String() string {
	switch k {
	case KeyRune:
		return "rune"
	case KeySpace:
		return "Space"
	case KeyEscape:
		return "Esc"
	case KeyContextMenu:
		return "Menu"
	case KeyOther:
		return "other"
	default:
		return "none"
	}
}
