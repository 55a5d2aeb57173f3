package geom

import "math"

// Affine is a 2×3 affine transformation matrix with the coefficient order
// (a, b, c, d, e, f) used by font tools, mapping
//
//	(x, y) -> (a*x + c*y + e, b*x + d*y + f)
//
// which corresponds to the augmented matrix
//
//	| a c e |
//	| b d f |
//	| 0 0 1 |
type Affine struct {
	A, B, C, D, E, F float64
}

// Identity is the identity transform.
var Identity = Affine{1, 0, 0, 1, 0, 0}

// Scale creates an affine transform representing non-uniform scaling with
// different scale values for x and y.
func Scale(x, y float64) Affine {
	return Affine{x, 0, 0, y, 0, 0}
}

// Translate creates an affine transform representing translation.
func Translate(v Vec2) Affine {
	return Affine{1, 0, 0, 1, v.X, v.Y}
}

// Rotate creates an affine transform representing a rotation of th radians.
// A positive angle rotates the positive x axis toward the positive y axis.
func Rotate(th float64) Affine {
	sin, cos := math.Sincos(th)
	return Affine{cos, sin, -sin, cos, 0, 0}
}

// Skew creates an affine transform representing a skew of x radians along
// the horizontal axis and y radians along the vertical axis.
func Skew(x, y float64) Affine {
	return Affine{1, math.Tan(y), math.Tan(x), 1, 0, 0}
}

// NewAffine creates an affine transformation from an array of coefficients
// in (a, b, c, d, e, f) order.
func NewAffine(n [6]float64) Affine {
	return Affine{n[0], n[1], n[2], n[3], n[4], n[5]}
}

// Coefficients returns the coefficients of the transform in
// (a, b, c, d, e, f) order.
func (aff Affine) Coefficients() [6]float64 {
	return [6]float64{aff.A, aff.B, aff.C, aff.D, aff.E, aff.F}
}

// Mul composes two transforms such that (aff.Mul(o)) applied to a point is
// aff applied to the result of o.
func (aff Affine) Mul(o Affine) Affine {
	return Affine{
		aff.A*o.A + aff.C*o.B,
		aff.B*o.A + aff.D*o.B,
		aff.A*o.C + aff.C*o.D,
		aff.B*o.C + aff.D*o.D,
		aff.A*o.E + aff.C*o.F + aff.E,
		aff.B*o.E + aff.D*o.F + aff.F,
	}
}

// ThenTranslate creates aff followed by a translation of v.
func (aff Affine) ThenTranslate(v Vec2) Affine {
	aff.E += v.X
	aff.F += v.Y
	return aff
}

// AboutOrigin anchors aff at origin: it computes the offset between origin
// and its image under aff, and appends a translation by that offset so the
// combined transform leaves origin fixed.
func AboutOrigin(aff Affine, origin Point) Affine {
	if (origin == Point{}) {
		return aff
	}
	after := origin.Transform(aff)
	return aff.ThenTranslate(origin.Sub(after))
}

// Determinant computes the determinant of the linear part.
func (aff Affine) Determinant() float64 {
	return aff.A*aff.D - aff.B*aff.C
}

func (aff Affine) IsNaN() bool {
	return math.IsNaN(aff.A) ||
		math.IsNaN(aff.B) ||
		math.IsNaN(aff.C) ||
		math.IsNaN(aff.D) ||
		math.IsNaN(aff.E) ||
		math.IsNaN(aff.F)
}
