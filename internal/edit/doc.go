// Package edit holds the gesture engine's edit-side contracts - the
// graph slice it mutates and the transaction API it commits through -
// plus the double-click vertex inserter and in-memory implementations
// for hosts and tests.
package edit
