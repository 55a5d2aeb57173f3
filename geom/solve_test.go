package geom

import (
	"math"
	"testing"
)

func TestSolveQuadratic(t *testing.T) {
	// x² - 4 = 0
	roots, n := SolveQuadratic(-4, 0, 1)
	if n != 2 || roots[0] != -2 || roots[1] != 2 {
		t.Errorf("got %v (%d roots)", roots[:n], n)
	}

	// degenerate linear: 2x - 4 = 0
	roots, n = SolveQuadratic(-4, 2, 0)
	if n != 1 || roots[0] != 2 {
		t.Errorf("got %v (%d roots)", roots[:n], n)
	}

	// no real roots: x² + 1 = 0
	_, n = SolveQuadratic(1, 0, 1)
	if n != 0 {
		t.Errorf("got %d roots, want 0", n)
	}
}

func TestSolveCubic(t *testing.T) {
	// x³ - x = 0
	roots, n := SolveCubic(0, -1, 0, 1)
	if n != 3 {
		t.Fatalf("got %d roots, want 3", n)
	}
	got := append([]float64(nil), roots[:n]...)
	for _, want := range []float64{-1, 0, 1} {
		found := false
		for _, r := range got {
			if math.Abs(r-want) < 1e-9 {
				found = true
			}
		}
		if !found {
			t.Errorf("missing root %v in %v", want, got)
		}
	}
}

func TestCubicExtrema(t *testing.T) {
	c := CubicBez{Pt(0, 0), Pt(0, 10), Pt(10, 10), Pt(10, 0)}
	ex, n := c.Extrema()
	if n != 1 || math.Abs(ex[0]-0.5) > 1e-9 {
		t.Errorf("got extrema %v (%d), want [0.5]", ex[:n], n)
	}
	assertNear(t, c.Eval(0.5), Pt(5, 7.5), 1e-9)
}

func TestCubicSubdivide(t *testing.T) {
	c := CubicBez{Pt(0, 0), Pt(0, 10), Pt(10, 10), Pt(10, 0)}
	left, right := c.Subdivide()
	const epsilon = 1e-9
	assertNear(t, left.Eval(0), c.Eval(0), epsilon)
	assertNear(t, left.Eval(1), c.Eval(0.5), epsilon)
	assertNear(t, left.Eval(0.5), c.Eval(0.25), epsilon)
	assertNear(t, right.Eval(0), c.Eval(0.5), epsilon)
	assertNear(t, right.Eval(0.5), c.Eval(0.75), epsilon)
	assertNear(t, right.Eval(1), c.Eval(1), epsilon)
}

func TestQuadSubdivide(t *testing.T) {
	q := QuadBez{Pt(0, 0), Pt(5, 10), Pt(10, 0)}
	left, right := q.Subdivide()
	const epsilon = 1e-9
	assertNear(t, left.Eval(1), q.Eval(0.5), epsilon)
	assertNear(t, left.Eval(0.5), q.Eval(0.25), epsilon)
	assertNear(t, right.Eval(0.5), q.Eval(0.75), epsilon)
}

func TestQuadSubsegment(t *testing.T) {
	q := QuadBez{Pt(0, 0), Pt(5, 10), Pt(10, 0)}
	sub := q.Subsegment(0.25, 0.75)
	const epsilon = 1e-9
	assertNear(t, sub.Eval(0), q.Eval(0.25), epsilon)
	assertNear(t, sub.Eval(0.5), q.Eval(0.5), epsilon)
	assertNear(t, sub.Eval(1), q.Eval(0.75), epsilon)
}
