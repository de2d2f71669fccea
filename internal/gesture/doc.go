// Package gesture turns raw pointer and keyboard events into
// unambiguous high-level intents: single click, double-click,
// long-press, space-bar click, drag (non-click), and context-menu
// request.
//
// The Classifier resolves conflicting signals - distance thresholds,
// timing windows, multi-touch ownership, modifier keys, and the
// host's competing double-click-zoom gesture - synchronously inside
// the host's event loop, with no dropped or duplicated gestures. Its
// two deferred tasks (the long-press timer and the zoom-suppression
// debounce owned by the selection dispatcher) run on an injected
// Scheduler so tests need no wall clock.
package gesture
