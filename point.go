package outline

import (
	"fmt"

	"github.com/letterforge/outline/geom"
)

// PointType describes the role of a point within a contour.
type PointType int

const (
	// Move starts an open contour. At most one move point may exist in a
	// contour, and only as its first point.
	Move PointType = iota + 1
	// Line is an on-curve point reached by a straight segment.
	Line
	// Curve is an on-curve point reached by a cubic Bézier segment.
	Curve
	// QCurve is an on-curve point reached by a quadratic Bézier segment.
	QCurve
	// OffCurve is a Bézier control point.
	OffCurve
)

func (t PointType) String() string {
	switch t {
	case Move:
		return "move"
	case Line:
		return "line"
	case Curve:
		return "curve"
	case QCurve:
		return "qcurve"
	case OffCurve:
		return "offcurve"
	default:
		return fmt.Sprintf("PointType(%d)", int(t))
	}
}

// OnCurve reports whether points of this type lie on the rendered outline.
func (t PointType) OnCurve() bool {
	return t == Move || t == Line || t == Curve || t == QCurve
}

// Point is a single coordinate of a contour. Points are referenced by
// identity; two distinct points with equal coordinates are not the same
// point. A Point value without a contour serves as the template for
// [Contour.InsertPoint] and [Contour.AppendPoint].
type Point struct {
	X      float64
	Y      float64
	Type   PointType
	Smooth bool
	Name   string

	identifier string
	contour    *Contour
}

// MovePoint returns a move point template at (x, y).
func MovePoint(x, y float64) Point { return Point{X: x, Y: y, Type: Move} }

// LinePoint returns a line point template at (x, y).
func LinePoint(x, y float64) Point { return Point{X: x, Y: y, Type: Line} }

// CurvePoint returns a curve point template at (x, y).
func CurvePoint(x, y float64) Point { return Point{X: x, Y: y, Type: Curve} }

// QCurvePoint returns a qcurve point template at (x, y).
func QCurvePoint(x, y float64) Point { return Point{X: x, Y: y, Type: QCurve} }

// OffCurvePoint returns an off-curve point template at (x, y).
func OffCurvePoint(x, y float64) Point { return Point{X: x, Y: y, Type: OffCurve} }

func (p *Point) String() string {
	return fmt.Sprintf("%s(%v, %v)", p.Type, p.X, p.Y)
}

// Position returns the point's coordinates.
func (p *Point) Position() geom.Point {
	return geom.Pt(p.X, p.Y)
}

// SetPosition moves the point to pt.
func (p *Point) SetPosition(pt geom.Point) {
	p.X = pt.X
	p.Y = pt.Y
}

// Round rounds the point's coordinates to the nearest integers, rounding
// ties towards positive infinity.
func (p *Point) Round() {
	p.X = geom.RoundHalfUp(p.X)
	p.Y = geom.RoundHalfUp(p.Y)
}

// TransformBy applies an affine transformation to the point.
func (p *Point) TransformBy(aff geom.Affine) {
	p.SetPosition(p.Position().Transform(aff))
}

// Contour returns the contour the point belongs to, or nil.
func (p *Point) Contour() *Contour {
	return p.contour
}

// Index returns the point's position in its contour's point list, or -1 if
// the point doesn't belong to a contour.
func (p *Point) Index() int {
	if p.contour == nil {
		return -1
	}
	return p.contour.indexOfPoint(p)
}

// Identifier returns the point's identifier, or the empty string if none
// has been assigned.
func (p *Point) Identifier() string {
	return p.identifier
}

// GetIdentifier returns the point's identifier, minting and assigning one
// if necessary. The minted identifier is unique within the contour. The
// call is idempotent.
func (p *Point) GetIdentifier() string {
	if p.identifier == "" {
		inUse := func(string) bool { return false }
		if p.contour != nil {
			inUse = p.contour.identifierInUse
		}
		p.identifier = mintIdentifier(inUse)
	}
	return p.identifier
}
