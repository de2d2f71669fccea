// Package mode manages editor mode transitions. The gesture engine
// only enters modes; what a mode does once entered is the host's
// business. The manager re-issues transitions even when the target
// mode is already current, so downstream listeners always observe a
// fresh transition event.
package mode
