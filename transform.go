package outline

import (
	"math"

	"github.com/letterforge/outline/geom"
)

// TransformBy applies an affine transformation to every point of the
// contour. Handles move with the contour since they are ordinary points.
func (c *Contour) TransformBy(aff geom.Affine) {
	for _, p := range c.points {
		p.TransformBy(aff)
	}
}

// TransformAbout applies aff anchored at origin, so that origin itself is
// invariant under the combined operation.
func (c *Contour) TransformAbout(aff geom.Affine, origin geom.Point) {
	c.TransformBy(geom.AboutOrigin(aff, origin))
}

// MoveBy translates the contour.
func (c *Contour) MoveBy(v geom.Vec2) {
	c.TransformBy(geom.Translate(v))
}

// ScaleBy scales the contour about origin.
func (c *Contour) ScaleBy(sx, sy float64, origin geom.Point) {
	c.TransformAbout(geom.Scale(sx, sy), origin)
}

// RotateBy rotates the contour counterclockwise by the given angle in
// degrees about origin.
func (c *Contour) RotateBy(degrees float64, origin geom.Point) {
	c.TransformAbout(geom.Rotate(degrees*math.Pi/180), origin)
}

// SkewBy skews the contour by the given angles in degrees about origin.
func (c *Contour) SkewBy(xDegrees, yDegrees float64, origin geom.Point) {
	c.TransformAbout(geom.Skew(xDegrees*math.Pi/180, yDegrees*math.Pi/180), origin)
}
