package outline

import (
	"fmt"

	"github.com/letterforge/outline/geom"
)

// Segment is a view over one run of a contour's points: zero or more
// off-curve control points terminated by an on-curve point. Segments are
// derived from the point list on access; mutations through a Segment edit
// the underlying points.
type Segment struct {
	contour *Contour
	points  []*Point
}

// Segments derives the contour's segments from its point list.
//
// Each maximal run of off-curve points is grouped with the on-curve point
// that terminates it. On a closed contour a trailing off-curve run wraps
// around to be terminated by the first on-curve point, and segment order is
// rotated so that the group containing the first point comes last. On an
// open contour trailing off-curve points have no terminator and are
// ignored.
func (c *Contour) Segments() []Segment {
	if len(c.points) == 0 {
		return nil
	}
	var groups [][]*Point
	var run []*Point
	for _, p := range c.points {
		run = append(run, p)
		if p.Type != OffCurve {
			groups = append(groups, run)
			run = nil
		}
	}
	first := c.points[0]
	switch {
	case len(run) > 0 && first.Type == Move:
		// Dangling handles at the end of an open contour.
	case len(run) > 0:
		if len(groups) == 0 {
			return nil
		}
		combined := append(run, groups[0]...)
		groups = append(groups[1:], combined)
	case first.Type != Move && first.Type != OffCurve && len(groups) > 1:
		groups = append(groups[1:], groups[0])
	}
	segs := make([]Segment, len(groups))
	for i, g := range groups {
		segs[i] = Segment{contour: c, points: g}
	}
	return segs
}

// NumSegments returns the number of segments in the contour.
func (c *Contour) NumSegments() int {
	return len(c.Segments())
}

// SegmentAt returns the segment at index i.
func (c *Contour) SegmentAt(i int) (Segment, error) {
	segs := c.Segments()
	if i < 0 || i >= len(segs) {
		return Segment{}, fmt.Errorf("%w: no segment at index %d", ErrIndexOutOfRange, i)
	}
	return segs[i], nil
}

// OnCurve returns the segment's terminating on-curve point.
func (s Segment) OnCurve() *Point {
	return s.points[len(s.points)-1]
}

// OffCurve returns the segment's off-curve points in order.
func (s Segment) OffCurve() []*Point {
	return s.offCurve()
}

func (s Segment) offCurve() []*Point {
	out := make([]*Point, len(s.points)-1)
	copy(out, s.points[:len(s.points)-1])
	return out
}

// Points returns all points of the segment, off-curve points first.
func (s Segment) Points() []*Point {
	out := make([]*Point, len(s.points))
	copy(out, s.points)
	return out
}

// Type returns the segment's type, which is the type of its on-curve
// point.
func (s Segment) Type() PointType {
	return s.OnCurve().Type
}

// Smooth reports whether the segment's on-curve point is smooth.
func (s Segment) Smooth() bool {
	return s.OnCurve().Smooth
}

// SetSmooth sets the smooth flag of the segment's on-curve point.
func (s Segment) SetSmooth(smooth bool) {
	s.OnCurve().Smooth = smooth
}

// Contour returns the contour the segment belongs to.
func (s Segment) Contour() *Contour {
	return s.contour
}

// Index returns the segment's position in the contour's derived segment
// list, or -1 if the underlying on-curve point is no longer part of the
// contour.
func (s Segment) Index() int {
	on := s.OnCurve()
	for i, t := range s.contour.Segments() {
		if t.OnCurve() == on {
			return i
		}
	}
	return -1
}

// SetType converts the segment to the given type.
//
// Converting a line or move to a curve or qcurve inserts two off-curve
// points placed on the previous on-curve point and on the segment's own
// anchor, so the rendered shape is unchanged. Converting a curve or qcurve
// to a line or move removes the segment's off-curve points. Conversions
// between curve and qcurve, and between line and move, only retag the
// anchor.
func (s *Segment) SetType(typ PointType) error {
	switch typ {
	case Move, Line, Curve, QCurve:
	default:
		return fmt.Errorf("%w: %v is not a segment type", ErrInvalidOperation, typ)
	}
	on := s.OnCurve()
	cur := on.Type
	if cur == typ {
		return nil
	}
	curved := cur == Curve || cur == QCurve
	wantCurved := typ == Curve || typ == QCurve
	switch {
	case !curved && wantCurved:
		prev := s.previousOnCurve()
		i := s.contour.indexOfPoint(on)
		if _, err := s.contour.InsertPoint(i, Point{X: on.X, Y: on.Y, Type: OffCurve}); err != nil {
			return err
		}
		if _, err := s.contour.InsertPoint(i, Point{X: prev.X, Y: prev.Y, Type: OffCurve}); err != nil {
			return err
		}
		on.Type = typ
	case curved && !wantCurved:
		for _, p := range s.offCurve() {
			if err := s.contour.RemovePointRef(p); err != nil {
				return err
			}
		}
		on.Type = typ
	default:
		on.Type = typ
	}
	s.reload()
	return nil
}

// reload refreshes the view's point run after a structural edit.
func (s *Segment) reload() {
	on := s.OnCurve()
	for _, t := range s.contour.Segments() {
		if t.OnCurve() == on {
			s.points = t.points
			return
		}
	}
}

// previousOnCurve returns the on-curve point of the preceding segment,
// wrapping around the contour.
func (s Segment) previousOnCurve() *Point {
	segs := s.contour.Segments()
	i := s.Index()
	prev := segs[(i-1+len(segs))%len(segs)]
	return prev.OnCurve()
}

// AppendSegment appends a segment to the contour. pts is the segment's
// point run in order, ending with the on-curve anchor; all points before
// it become off-curve control points.
func (c *Contour) AppendSegment(typ PointType, pts []geom.Point, smooth bool) (Segment, error) {
	return c.InsertSegment(c.NumSegments(), typ, pts, smooth)
}

// InsertSegment inserts a segment so that it becomes segment index in the
// derived segment order. pts is the segment's point run in order, ending
// with the on-curve anchor.
func (c *Contour) InsertSegment(index int, typ PointType, pts []geom.Point, smooth bool) (Segment, error) {
	switch typ {
	case Move, Line, Curve, QCurve:
	default:
		return Segment{}, fmt.Errorf("%w: %v is not a segment type", ErrInvalidOperation, typ)
	}
	if len(pts) == 0 {
		return Segment{}, fmt.Errorf("%w: a segment needs at least an on-curve point", ErrInvalidOperation)
	}
	segs := c.Segments()
	if index < 0 || index > len(segs) {
		return Segment{}, fmt.Errorf("%w: no segment insertion index %d", ErrIndexOutOfRange, index)
	}
	pi := len(c.points)
	if index < len(segs) {
		pi = c.indexOfPoint(segs[index].points[0])
	}
	anchor := pts[len(pts)-1]
	on, err := c.InsertPoint(pi, Point{X: anchor.X, Y: anchor.Y, Type: typ, Smooth: smooth})
	if err != nil {
		return Segment{}, err
	}
	for i := len(pts) - 2; i >= 0; i-- {
		if _, err := c.InsertPoint(pi, Point{X: pts[i].X, Y: pts[i].Y, Type: OffCurve}); err != nil {
			return Segment{}, err
		}
	}
	run := make([]*Point, 0, len(pts))
	run = append(run, c.points[pi:pi+len(pts)-1]...)
	run = append(run, on)
	return Segment{contour: c, points: run}, nil
}

// RemoveSegment removes segment i from the contour, deleting its on-curve
// point and all its off-curve points.
func (c *Contour) RemoveSegment(i int) error {
	segs := c.Segments()
	if i < 0 || i >= len(segs) {
		return fmt.Errorf("%w: no segment at index %d", ErrIndexOutOfRange, i)
	}
	for _, p := range segs[i].Points() {
		if err := c.RemovePointRef(p); err != nil {
			return err
		}
	}
	return nil
}

// SetStartSegment rotates the contour's point order so that segment i
// becomes segment 0. If the contour ends with a curve whose anchor sits on
// top of the first segment's anchor, the duplicate start segment is
// removed first. A move point is normalized to a line, since the rotated
// contour has no distinguished start. Does nothing when i is 0 or the
// contour has fewer than two segments.
func (c *Contour) SetStartSegment(i int) error {
	segs := c.Segments()
	if len(segs) < 2 || i == 0 {
		return nil
	}
	if i < 0 || i >= len(segs) {
		return fmt.Errorf("%w: no segment at index %d", ErrIndexOutOfRange, i)
	}
	last := segs[len(segs)-1]
	if typ := last.Type(); typ == Curve || typ == QCurve {
		if last.OnCurve().Position() == segs[0].OnCurve().Position() {
			if err := c.RemoveSegment(0); err != nil {
				return err
			}
			i--
			segs = c.Segments()
			if i == 0 || len(segs) < 2 {
				return nil
			}
		}
	}
	if on := segs[0].OnCurve(); on.Type == Move {
		on.Type = Line
	}

	rotated := make([]Segment, 0, len(segs))
	rotated = append(rotated, segs[i:]...)
	rotated = append(rotated, segs[:i]...)
	pts := make([]*Point, 0, len(c.points))
	for _, s := range rotated {
		pts = append(pts, s.points...)
	}
	// Keep the raw list in canonical closed form: it starts with the
	// on-curve point preceding the new first segment, and the control
	// points of the final segment trail at the end.
	lastAnchor := pts[len(pts)-1]
	copy(pts[1:], pts[:len(pts)-1])
	pts[0] = lastAnchor
	c.points = pts
	return nil
}
