// Package pointer models the pointer side of the gesture engine's
// input: buttons, device kinds, and the canonical normalized event
// record the classifier tracks.
package pointer
