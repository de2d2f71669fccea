package geo

import (
	"math"
	"testing"
)

func TestDistance(t *testing.T) {
	tests := []struct {
		a, b Point
		want float64
	}{
		{Point{}, Point{}, 0},
		{Point{X: 0, Y: 0}, Point{X: 3, Y: 4}, 5},
		{Point{X: -1, Y: -1}, Point{X: 2, Y: 3}, 5},
		{Point{X: 1, Y: 1}, Point{X: 2, Y: 2}, math.Sqrt2},
	}
	for _, tt := range tests {
		if got := tt.a.Distance(tt.b); math.Abs(got-tt.want) > 1e-12 {
			t.Errorf("Distance(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
		}
		if got := tt.b.Distance(tt.a); math.Abs(got-tt.want) > 1e-12 {
			t.Errorf("Distance is not symmetric for %v, %v", tt.a, tt.b)
		}
	}
}

func TestSegmentChooser(t *testing.T) {
	path := []Point{
		{X: 0, Y: 0},
		{X: 10, Y: 0},
		{X: 10, Y: 10},
	}

	tests := []struct {
		name      string
		loc       Point
		wantLoc   Point
		wantIndex int
	}{
		{"interior of first edge", Point{X: 4, Y: 3}, Point{X: 4, Y: 0}, 1},
		{"interior of second edge", Point{X: 12, Y: 6}, Point{X: 10, Y: 6}, 2},
		{"before the path clamps to the start", Point{X: -5, Y: 1}, Point{X: 0, Y: 0}, 1},
		{"past the path clamps to the end", Point{X: 11, Y: 15}, Point{X: 10, Y: 10}, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			choice, ok := SegmentChooser{}.ChooseEdge(path, tt.loc)
			if !ok {
				t.Fatal("ChooseEdge reported no edge")
			}
			if !choice.Loc.Equal(tt.wantLoc) {
				t.Errorf("Loc = %v, want %v", choice.Loc, tt.wantLoc)
			}
			if choice.Index != tt.wantIndex {
				t.Errorf("Index = %d, want %d", choice.Index, tt.wantIndex)
			}
			if want := tt.loc.Distance(tt.wantLoc); math.Abs(choice.Distance-want) > 1e-12 {
				t.Errorf("Distance = %v, want %v", choice.Distance, want)
			}
		})
	}
}

func TestSegmentChooserDegenerate(t *testing.T) {
	if _, ok := (SegmentChooser{}).ChooseEdge(nil, Point{}); ok {
		t.Error("empty path resolved an edge")
	}
	if _, ok := (SegmentChooser{}).ChooseEdge([]Point{{X: 1, Y: 1}}, Point{}); ok {
		t.Error("single-vertex path resolved an edge")
	}

	// Zero-length edge projects onto the vertex itself.
	choice, ok := (SegmentChooser{}).ChooseEdge([]Point{{X: 2, Y: 2}, {X: 2, Y: 2}}, Point{X: 5, Y: 2})
	if !ok || !choice.Loc.Equal(Point{X: 2, Y: 2}) {
		t.Errorf("degenerate edge choice = %+v, ok = %v", choice, ok)
	}
}

func TestChooseEdgeFunc(t *testing.T) {
	var calls int
	f := ChooseEdgeFunc(func(points []Point, loc Point) (EdgeChoice, bool) {
		calls++
		return EdgeChoice{Index: 1}, true
	})
	if choice, ok := f.ChooseEdge(nil, Point{}); !ok || choice.Index != 1 || calls != 1 {
		t.Error("adapter did not forward")
	}
}
