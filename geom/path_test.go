package geom

import (
	"math"
	"slices"
	"testing"
)

func squarePath() Path {
	var p Path
	p.MoveTo(Pt(0, 0))
	p.LineTo(Pt(10, 0))
	p.LineTo(Pt(10, 10))
	p.LineTo(Pt(0, 10))
	p.ClosePath()
	return p
}

func TestPathSegmentsClosingLine(t *testing.T) {
	var p Path
	p.MoveTo(Pt(0, 0))
	p.LineTo(Pt(10, 0))
	p.LineTo(Pt(10, 10))
	p.ClosePath()

	segs := slices.Collect(p.Segments())
	want := []PathSegment{
		Line{Pt(0, 0), Pt(10, 0)}.Seg(),
		Line{Pt(10, 0), Pt(10, 10)}.Seg(),
		Line{Pt(10, 10), Pt(0, 0)}.Seg(),
	}
	diff(t, want, segs)
}

func TestPathSignedArea(t *testing.T) {
	if got := squarePath().SignedArea(); got != 100 {
		t.Errorf("got signed area %v, want 100", got)
	}

	var p Path
	p.MoveTo(Pt(0, 0))
	p.CubicTo(Pt(0, 10), Pt(10, 10), Pt(10, 0))
	p.ClosePath()
	if got := p.SignedArea(); math.Abs(got-(-60)) > 1e-9 {
		t.Errorf("got signed area %v, want -60", got)
	}
}

func TestPathWinding(t *testing.T) {
	p := squarePath()
	tests := []struct {
		pt   Point
		want int
	}{
		{Pt(5, 5), 1},
		{Pt(15, 5), 0},
		{Pt(-5, 5), 0},
		{Pt(5, 15), 0},
	}
	for _, tt := range tests {
		if got := p.Winding(tt.pt); got != tt.want {
			t.Errorf("winding of %s: got %d, want %d", tt.pt, got, tt.want)
		}
	}
}

func TestPathSegmentCrossings(t *testing.T) {
	p := squarePath()
	var crossings int
	for s := range p.Segments() {
		crossings += s.Crossings(Pt(15, 5))
	}
	// The leftward ray from an outside point crosses both vertical edges.
	if crossings != 2 {
		t.Errorf("got %d crossings, want 2", crossings)
	}
}

func TestPathBoundingBox(t *testing.T) {
	var p Path
	p.MoveTo(Pt(0, 0))
	p.CubicTo(Pt(0, 10), Pt(10, 10), Pt(10, 0))
	p.ClosePath()

	bbox, ok := p.BoundingBox()
	if !ok {
		t.Fatal("expected a bounding box")
	}
	// The curve's extremum lies at t=0.5, below the control points.
	diff(t, Rect{0, 0, 10, 7.5}, bbox)

	var q Path
	q.MoveTo(Pt(0, 0))
	q.QuadTo(Pt(5, 10), Pt(10, 0))
	bbox, ok = q.BoundingBox()
	if !ok {
		t.Fatal("expected a bounding box")
	}
	diff(t, Rect{0, 0, 10, 5}, bbox)
}

func TestPathControlBox(t *testing.T) {
	var p Path
	p.MoveTo(Pt(0, 0))
	p.CubicTo(Pt(0, 10), Pt(10, 10), Pt(10, 0))
	p.ClosePath()

	cbox, ok := p.ControlBox()
	if !ok {
		t.Fatal("expected a control box")
	}
	// The control box reaches the control points, above the tight box.
	diff(t, Rect{0, 0, 10, 10}, cbox)

	if _, ok := (Path{}).ControlBox(); ok {
		t.Error("empty path must not have a control box")
	}
}

func TestPathBoundingBoxDegenerate(t *testing.T) {
	var empty Path
	if _, ok := empty.BoundingBox(); ok {
		t.Error("empty path must not have a bounding box")
	}

	moves := Path{MoveTo(Pt(3, 4)), MoveTo(Pt(-1, 2))}
	bbox, ok := moves.BoundingBox()
	if !ok {
		t.Fatal("expected a bounding box")
	}
	diff(t, Rect{-1, 2, 3, 4}, bbox)
}

func TestPathTransform(t *testing.T) {
	var p Path
	p.MoveTo(Pt(0, 0))
	p.QuadTo(Pt(5, 10), Pt(10, 0))
	p.ClosePath()

	got := p.Transform(Translate(Vec(1, 2)))
	want := Path{
		MoveTo(Pt(1, 2)),
		QuadTo(Pt(6, 12), Pt(11, 2)),
		ClosePath(),
	}
	diff(t, want, got)
}
