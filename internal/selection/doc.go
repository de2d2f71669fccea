// Package selection maps accepted click gestures onto selection and
// mode transitions: editable entities enter the native selection
// mode, foreign features and markers enter the generic one, photos
// route to the photo collaborator, and empty clicks fall back to
// browsing. It also owns the debounce that keeps the host's
// double-click-zoom from fighting the application-level double-click.
package selection
