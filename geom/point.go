// Package geom provides the 2D geometry underlying the outline model:
// points, vectors, affine transforms, Bézier segments and rendered paths,
// with exact bounding boxes, signed areas and winding numbers.
package geom

import (
	"fmt"
	"math"
)

// Point is a position in glyph coordinate space.
type Point struct {
	X float64
	Y float64
}

// Pt returns the point (x, y).
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

func (pt Point) Splat() (float64, float64) {
	return pt.X, pt.Y
}

func (pt Point) String() string {
	return fmt.Sprintf("(%g, %g)", pt.X, pt.Y)
}

func (pt Point) Translate(o Vec2) Point {
	return Point{
		X: pt.X + o.X,
		Y: pt.Y + o.Y,
	}
}

func (pt Point) Transform(aff Affine) Point {
	return Point{
		X: aff.A*pt.X + aff.C*pt.Y + aff.E,
		Y: aff.B*pt.X + aff.D*pt.Y + aff.F,
	}
}

// Sub computes pt−o.
func (pt Point) Sub(o Point) Vec2 {
	return Vec2{
		X: pt.X - o.X,
		Y: pt.Y - o.Y,
	}
}

// Lerp linearly interpolates between two points.
func (pt Point) Lerp(o Point, t float64) Point {
	return Point(Vec2(pt).Lerp(Vec2(o), t))
}

// Midpoint returns the midpoint of two points.
func (pt Point) Midpoint(o Point) Point {
	return Point{
		X: 0.5 * (pt.X + o.X),
		Y: 0.5 * (pt.Y + o.Y),
	}
}

// Distance returns the euclidean distance between two points.
func (pt Point) Distance(o Point) float64 {
	x := pt.X - o.X
	y := pt.Y - o.Y
	return math.Hypot(x, y)
}

// RoundHalfUp returns a new point with x and y rounded to the nearest
// integers, resolving ties toward positive infinity. This is the tie rule
// used throughout font editing tools: 2.5 rounds to 3 and -2.5 rounds to -2.
func (pt Point) RoundHalfUp() Point {
	return Point{
		X: RoundHalfUp(pt.X),
		Y: RoundHalfUp(pt.Y),
	}
}

// RoundHalfUp rounds f to the nearest integer, ties toward positive infinity.
func RoundHalfUp(f float64) float64 {
	return math.Floor(f + 0.5)
}

// IsNaN reports whether at least one of x and y is NaN.
func (pt Point) IsNaN() bool {
	return math.IsNaN(pt.X) || math.IsNaN(pt.Y)
}
