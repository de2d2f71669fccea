// Package menu routes accepted context-menu gestures to the right
// menu: a registered QA provider's dedicated menu for its items, the
// generic edit menu for everything else. The two open flags are
// independent and both reset whenever the engine disables, a pending
// long-press is cancelled, or a new interaction begins.
package menu
