// Package feature classifies what lies under the pointer. A Target is
// a tagged union over the kinds of things a map editor can hit:
// editable nodes and segments, synthetic midpoints, foreign (imported
// or overlay) features, QA issue markers, detections, and photos.
package feature
