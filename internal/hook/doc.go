// Package hook lets collaborators observe classified gestures without
// re-deriving them from raw events. Observers are plain functions or
// Lua scripts; both see gesture outcomes only and cannot mutate the
// engine.
package hook
