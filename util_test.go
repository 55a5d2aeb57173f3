package outline

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/letterforge/outline/geom"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

// pointData is a comparable snapshot of one point.
type pointData struct {
	X, Y   float64
	Type   PointType
	Smooth bool
}

func snapshot(c *Contour) []pointData {
	var out []pointData
	for _, p := range c.Points() {
		out = append(out, pointData{p.X, p.Y, p.Type, p.Smooth})
	}
	return out
}

func buildContour(pts ...pointData) *Contour {
	c := &Contour{}
	for _, p := range pts {
		c.AppendPoint(Point{X: p.X, Y: p.Y, Type: p.Type, Smooth: p.Smooth})
	}
	return c
}

// closedSquare is the clockwise unit test square.
func closedSquare() *Contour {
	return buildContour(
		pointData{0, 0, Line, false},
		pointData{10, 0, Line, false},
		pointData{10, 10, Line, false},
		pointData{0, 10, Line, false},
	)
}

// closedWithCurve is a closed contour with one smooth cubic segment.
func closedWithCurve() *Contour {
	return buildContour(
		pointData{0, 0, Line, false},
		pointData{3, 0, OffCurve, false},
		pointData{7, 0, OffCurve, false},
		pointData{10, 0, Curve, true},
		pointData{10, 10, Line, false},
		pointData{0, 10, Line, false},
	)
}

func openPath() *Contour {
	return buildContour(
		pointData{0, 0, Move, false},
		pointData{10, 0, Line, false},
		pointData{10, 10, Line, false},
	)
}

// coords builds a point run from x, y pairs.
func coords(xys ...float64) []geom.Point {
	pts := make([]geom.Point, 0, len(xys)/2)
	for i := 0; i+1 < len(xys); i += 2 {
		pts = append(pts, geom.Pt(xys[i], xys[i+1]))
	}
	return pts
}

func pt(x, y float64) geom.Point {
	return geom.Pt(x, y)
}

func vec(x, y float64) geom.Vec2 {
	return geom.Vec(x, y)
}
