package gesture

import "time"

// Config configures the gesture classifier's thresholds and features.
// All distances are in screen-space units.
type Config struct {
	// NearTolerance is the click-versus-drag threshold. A move that
	// reaches this distance from the down point cancels the click.
	NearTolerance float64

	// FarTolerance is the looser bound accepted together with the
	// time window, and the re-arm distance for space-bar clicks.
	FarTolerance float64

	// DoubleClickWindow is the maximum time between the two ups of a
	// double-click, and the time bound paired with FarTolerance.
	DoubleClickWindow time.Duration

	// LongPressDelay is how long a touch must stay down to register
	// a long-press.
	LongPressDelay time.Duration

	// EnableLongPress enables the touch long-press gesture.
	EnableLongPress bool

	// EnableContextMenu enables the context-menu paths.
	EnableContextMenu bool
}

// DefaultConfig returns the engine's standard thresholds.
func DefaultConfig() Config {
	return Config{
		NearTolerance:     4,
		FarTolerance:      12,
		DoubleClickWindow: 500 * time.Millisecond,
		LongPressDelay:    750 * time.Millisecond,
		EnableLongPress:   true,
		EnableContextMenu: true,
	}
}
