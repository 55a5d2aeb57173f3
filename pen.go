package outline

import "github.com/letterforge/outline/geom"

// Pen is the segment-oriented drawing protocol. MoveTo begins an open
// path; closed paths start directly with the first drawing command of the
// wrapped-around outline and finish with ClosePath. EndPath finishes an
// open path.
type Pen interface {
	MoveTo(pt geom.Point)
	LineTo(pt geom.Point)
	CurveTo(p1, p2, p3 geom.Point)
	QCurveTo(pts ...geom.Point)
	ClosePath()
	EndPath()
}

// PointPen is the point-oriented drawing protocol. Between BeginPath and
// EndPath, AddPoint is called once per raw point with its segment type, or
// with OffCurve for control points.
type PointPen interface {
	BeginPath()
	AddPoint(pt geom.Point, typ PointType, smooth bool, name string)
	EndPath()
}

// IdentifierPointPen is an optional upgrade of PointPen for consumers that
// keep track of identifiers. DrawPoints uses it when available and falls
// back to the plain PointPen methods otherwise.
type IdentifierPointPen interface {
	PointPen
	BeginPathWithIdentifier(identifier string)
	AddPointWithIdentifier(pt geom.Point, typ PointType, smooth bool, name, identifier string)
}

// Draw renders the contour to a segment pen.
func (c *Contour) Draw(pen Pen) {
	segs := c.Segments()
	if len(segs) == 0 {
		return
	}
	if c.IsOpen() {
		pen.MoveTo(segs[0].OnCurve().Position())
		for _, s := range segs[1:] {
			drawSegment(pen, s)
		}
		pen.EndPath()
		return
	}
	// The last derived segment is anchored on the contour's start point.
	start := segs[len(segs)-1]
	pen.MoveTo(start.OnCurve().Position())
	for i, s := range segs {
		if i == len(segs)-1 && s.Type() == Line {
			// ClosePath draws the final line implicitly.
			break
		}
		drawSegment(pen, s)
	}
	pen.ClosePath()
}

func drawSegment(pen Pen, s Segment) {
	on := s.OnCurve().Position()
	switch s.Type() {
	case Line, Move:
		pen.LineTo(on)
	case Curve:
		offs := s.OffCurve()
		switch len(offs) {
		case 0:
			pen.LineTo(on)
		case 2:
			pen.CurveTo(offs[0].Position(), offs[1].Position(), on)
		default:
			// Degenerate control runs render as a qcurve-style spline.
			pen.QCurveTo(segmentPositions(s)...)
		}
	case QCurve:
		pen.QCurveTo(segmentPositions(s)...)
	}
}

func segmentPositions(s Segment) []geom.Point {
	pts := make([]geom.Point, 0, len(s.Points()))
	for _, p := range s.Points() {
		pts = append(pts, p.Position())
	}
	return pts
}

// DrawPoints renders the contour to a point pen, point by point. When pen
// also implements IdentifierPointPen, contour and point identifiers are
// passed along.
func (c *Contour) DrawPoints(pen PointPen) {
	ipen, withIDs := pen.(IdentifierPointPen)
	if withIDs {
		ipen.BeginPathWithIdentifier(c.identifier)
	} else {
		pen.BeginPath()
	}
	for _, p := range c.points {
		if withIDs {
			ipen.AddPointWithIdentifier(p.Position(), p.Type, p.Smooth, p.Name, p.identifier)
		} else {
			pen.AddPoint(p.Position(), p.Type, p.Smooth, p.Name)
		}
	}
	pen.EndPath()
}

// PointsToSegmentsPen is a PointPen that translates the point protocol to
// the segment protocol and forwards to an underlying Pen.
type PointsToSegmentsPen struct {
	pen    Pen
	points []*Point
}

// NewPointsToSegmentsPen returns a point pen forwarding to pen.
func NewPointsToSegmentsPen(pen Pen) *PointsToSegmentsPen {
	return &PointsToSegmentsPen{pen: pen}
}

func (p *PointsToSegmentsPen) BeginPath() {
	p.points = p.points[:0]
}

func (p *PointsToSegmentsPen) AddPoint(pt geom.Point, typ PointType, smooth bool, name string) {
	p.points = append(p.points, &Point{X: pt.X, Y: pt.Y, Type: typ, Smooth: smooth, Name: name})
}

// EndPath flushes the collected points as segment calls on the underlying
// pen.
func (p *PointsToSegmentsPen) EndPath() {
	var c Contour
	for _, pt := range p.points {
		pt.contour = &c
	}
	c.points = p.points
	c.Draw(p.pen)
	p.points = nil
}

// pathPen records segment calls as a geom.Path, decomposing quadratic
// splines with multiple control points into simple quadratics using the
// implied on-curve midpoints.
type pathPen struct {
	path geom.Path
}

func (p *pathPen) Path() geom.Path {
	return p.path
}

func (p *pathPen) MoveTo(pt geom.Point) {
	p.path.MoveTo(pt)
}

func (p *pathPen) LineTo(pt geom.Point) {
	p.path.LineTo(pt)
}

func (p *pathPen) CurveTo(p1, p2, p3 geom.Point) {
	p.path.CubicTo(p1, p2, p3)
}

func (p *pathPen) QCurveTo(pts ...geom.Point) {
	if len(pts) == 0 {
		return
	}
	on := pts[len(pts)-1]
	offs := pts[:len(pts)-1]
	switch len(offs) {
	case 0:
		p.LineTo(on)
		return
	case 1:
		p.path.QuadTo(offs[0], on)
	default:
		for i := 0; i < len(offs)-1; i++ {
			implied := offs[i].Midpoint(offs[i+1])
			p.path.QuadTo(offs[i], implied)
		}
		p.path.QuadTo(offs[len(offs)-1], on)
	}
}

func (p *pathPen) ClosePath() {
	p.path.ClosePath()
}

func (p *pathPen) EndPath() {}
