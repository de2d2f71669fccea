// Package key models the keyboard side of the gesture engine's input:
// key identity, modifier state, and the snap-disable rule derived from
// held modifiers.
package key
