// Package geo provides the minimal geometry primitives shared by the
// gesture engine: screen/map points and the contract for the external
// nearest-point-on-path query.
package geo

import "math"

// Point is a coordinate in either screen space or map space.
// The two spaces never mix; which one a Point is in is determined
// by the field it is stored in.
type Point struct {
	X float64
	Y float64
}

// Distance returns the Euclidean distance between two points.
func (p Point) Distance(other Point) float64 {
	dx := p.X - other.X
	dy := p.Y - other.Y
	return math.Hypot(dx, dy)
}

// Equal returns true if two points are exactly equal.
func (p Point) Equal(other Point) bool {
	return p.X == other.X && p.Y == other.Y
}

// EdgeChoice is the result of a nearest-point-on-path query: the point
// on the path closest to a click, the index of the vertex following it,
// and the distance from the click to that point.
type EdgeChoice struct {
	// Loc is the nearest point on the path.
	Loc Point

	// Index is the insertion index: Loc lies between vertex Index-1
	// and vertex Index of the queried path.
	Index int

	// Distance is the distance from the query location to Loc.
	Distance float64
}

// EdgeChooser finds the nearest point on a path. Implementations are
// external to the gesture engine; ChooseEdge reports false when the
// path has fewer than two vertices or no edge can be resolved.
type EdgeChooser interface {
	ChooseEdge(points []Point, loc Point) (EdgeChoice, bool)
}

// ChooseEdgeFunc adapts a function to the EdgeChooser interface.
type ChooseEdgeFunc func(points []Point, loc Point) (EdgeChoice, bool)

// ChooseEdge implements EdgeChooser.
func (f ChooseEdgeFunc) ChooseEdge(points []Point, loc Point) (EdgeChoice, bool) {
	return f(points, loc)
}
