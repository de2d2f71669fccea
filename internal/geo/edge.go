package geo

// SegmentChooser is a straightforward EdgeChooser that projects the
// query location onto every edge of the path and keeps the closest
// projection. It serves hosts that have no native nearest-point query.
type SegmentChooser struct{}

// ChooseEdge implements EdgeChooser.
func (SegmentChooser) ChooseEdge(points []Point, loc Point) (EdgeChoice, bool) {
	if len(points) < 2 {
		return EdgeChoice{}, false
	}

	best := EdgeChoice{Distance: -1}
	for i := 1; i < len(points); i++ {
		proj := projectOntoSegment(points[i-1], points[i], loc)
		d := loc.Distance(proj)
		if best.Distance < 0 || d < best.Distance {
			best = EdgeChoice{Loc: proj, Index: i, Distance: d}
		}
	}
	return best, true
}

// projectOntoSegment returns the point on segment ab closest to p.
func projectOntoSegment(a, b, p Point) Point {
	dx := b.X - a.X
	dy := b.Y - a.Y
	lenSq := dx*dx + dy*dy
	if lenSq == 0 {
		return a
	}

	t := ((p.X-a.X)*dx + (p.Y-a.Y)*dy) / lenSq
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	return Point{X: a.X + t*dx, Y: a.Y + t*dy}
}
