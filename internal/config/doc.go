// Package config loads and saves the gesture engine's tunable
// thresholds and feature toggles as a single JSON document. Absent
// keys keep their defaults; out-of-range values are rejected rather
// than clamped.
package config
