package outline

import (
	"fmt"

	"github.com/letterforge/outline/geom"
)

// BPointType describes how a bPoint joins its neighboring segments.
type BPointType int

const (
	// BPointCorner is an anchor whose tangents are free.
	BPointCorner BPointType = iota + 1
	// BPointCurve is a smooth anchor with collinear tangents.
	BPointCurve
)

func (t BPointType) String() string {
	switch t {
	case BPointCorner:
		return "corner"
	case BPointCurve:
		return "curve"
	default:
		return fmt.Sprintf("BPointType(%d)", int(t))
	}
}

// BPoint is a view of an on-curve point expressed as an anchor with
// incoming and outgoing handle vectors relative to it. The handles are the
// adjacent off-curve points of the anchor's own segment and of the next
// segment; a zero vector means no handle.
type BPoint struct {
	contour *Contour
	point   *Point
}

// BPoints derives the contour's bPoints. One bPoint is produced per point
// of type move, line or curve, in point list order. Off-curve and qcurve
// points produce no bPoint.
func (c *Contour) BPoints() []BPoint {
	var bps []BPoint
	for _, p := range c.points {
		switch p.Type {
		case Move, Line, Curve:
			bps = append(bps, BPoint{contour: c, point: p})
		}
	}
	return bps
}

// NumBPoints returns the number of bPoints in the contour.
func (c *Contour) NumBPoints() int {
	return len(c.BPoints())
}

// BPointAt returns the bPoint at index i.
func (c *Contour) BPointAt(i int) (BPoint, error) {
	bps := c.BPoints()
	if i < 0 || i >= len(bps) {
		return BPoint{}, fmt.Errorf("%w: no bPoint at index %d", ErrIndexOutOfRange, i)
	}
	return bps[i], nil
}

// Contour returns the contour the bPoint belongs to.
func (b BPoint) Contour() *Contour {
	return b.contour
}

// Index returns the bPoint's position in the contour's bPoint list.
func (b BPoint) Index() int {
	for i, o := range b.contour.BPoints() {
		if o.point == b.point {
			return i
		}
	}
	return -1
}

// segment returns the segment terminated by the bPoint's anchor.
func (b BPoint) segment() (Segment, int) {
	segs := b.contour.Segments()
	for i, s := range segs {
		if s.OnCurve() == b.point {
			return s, i
		}
	}
	return Segment{}, -1
}

// nextSegment returns the segment that leaves the bPoint's anchor,
// wrapping around the contour.
func (b BPoint) nextSegment() Segment {
	segs := b.contour.Segments()
	_, i := b.segment()
	return segs[(i+1)%len(segs)]
}

// Anchor returns the anchor position.
func (b BPoint) Anchor() geom.Point {
	return b.point.Position()
}

// SetAnchor moves the anchor to pt. Only the on-curve point moves; the
// handles are stored as absolute off-curve coordinates and keep their
// positions, so the relative handle vectors change accordingly.
func (b BPoint) SetAnchor(pt geom.Point) {
	b.point.SetPosition(pt)
}

// BCPIn returns the incoming handle vector relative to the anchor, or the
// zero vector if the anchor's segment has no off-curve points.
func (b BPoint) BCPIn() geom.Vec2 {
	seg, _ := b.segment()
	offs := seg.OffCurve()
	if len(offs) == 0 {
		return geom.Vec2{}
	}
	return offs[len(offs)-1].Position().Sub(b.Anchor())
}

// BCPOut returns the outgoing handle vector relative to the anchor, or the
// zero vector if the next segment has no off-curve points.
func (b BPoint) BCPOut() geom.Vec2 {
	offs := b.nextSegment().OffCurve()
	if len(offs) == 0 {
		return geom.Vec2{}
	}
	return offs[0].Position().Sub(b.Anchor())
}

// SetBCPIn sets the incoming handle vector, writing through to the last
// off-curve point of the anchor's segment. Collapsing both handles to zero
// downgrades the segment to a line and clears its smooth flag; setting a
// non-zero handle on a segment without off-curve points upgrades it to a
// curve. The first point of an open contour cannot take an incoming
// handle.
func (b BPoint) SetBCPIn(v geom.Vec2) error {
	abs := b.Anchor().Translate(v)
	seg, _ := b.segment()
	if seg.Type() == Move && !v.IsZero() {
		return fmt.Errorf("%w: cannot set the incoming handle of the first point of an open contour", ErrInvalidOperation)
	}
	offs := seg.OffCurve()
	switch {
	case len(offs) > 0:
		if v.IsZero() && b.BCPOut().IsZero() {
			if err := seg.SetType(Line); err != nil {
				return err
			}
			seg.SetSmooth(false)
		} else {
			offs[len(offs)-1].SetPosition(abs)
		}
	case !v.IsZero():
		if err := seg.SetType(Curve); err != nil {
			return err
		}
		offs = seg.OffCurve()
		offs[len(offs)-1].SetPosition(abs)
	}
	return nil
}

// SetBCPOut sets the outgoing handle vector, writing through to the first
// off-curve point of the next segment, with the same downgrade and upgrade
// rules as SetBCPIn. The last point of an open contour cannot take an
// outgoing handle.
func (b BPoint) SetBCPOut(v geom.Vec2) error {
	abs := b.Anchor().Translate(v)
	next := b.nextSegment()
	if next.Type() == Move && !v.IsZero() {
		return fmt.Errorf("%w: cannot set the outgoing handle of the last point of an open contour", ErrInvalidOperation)
	}
	offs := next.OffCurve()
	switch {
	case len(offs) > 0:
		if v.IsZero() && b.BCPIn().IsZero() {
			if err := next.SetType(Line); err != nil {
				return err
			}
			next.SetSmooth(false)
		} else {
			offs[0].SetPosition(abs)
		}
	case !v.IsZero():
		if err := next.SetType(Curve); err != nil {
			return err
		}
		offs = next.OffCurve()
		offs[0].SetPosition(abs)
	}
	return nil
}

// Type returns the bPoint's type: curve for a smooth curve anchor, corner
// otherwise. An anchor whose raw point type is not move, line or curve
// cannot be expressed as a bPoint and returns ErrInvalidOperation.
func (b BPoint) Type() (BPointType, error) {
	switch b.point.Type {
	case Curve:
		if b.point.Smooth {
			return BPointCurve, nil
		}
		return BPointCorner, nil
	case Move, Line:
		return BPointCorner, nil
	default:
		return 0, fmt.Errorf("%w: a %v point cannot be expressed as a bPoint", ErrInvalidOperation, b.point.Type)
	}
}

// SetType converts the bPoint between corner and curve. Corner to curve
// turns the anchor's segment into a smooth curve, inserting zero-length
// handles so neighboring segments are not disturbed. Curve to corner only
// clears the smooth flag; the handles stay in place.
func (b BPoint) SetType(typ BPointType) error {
	switch typ {
	case BPointCorner, BPointCurve:
	default:
		return fmt.Errorf("%w: %v is not a bPoint type", ErrInvalidOperation, typ)
	}
	cur, err := b.Type()
	if err != nil {
		return err
	}
	if cur == typ {
		return nil
	}
	if typ == BPointCurve && b.point.Type == Line {
		seg, _ := b.segment()
		if err := seg.SetType(Curve); err != nil {
			return err
		}
		seg.SetSmooth(true)
	} else if typ == BPointCorner && b.point.Type == Curve {
		b.point.Smooth = false
	}
	return nil
}

// Round rounds the anchor and both handle vectors to integer coordinates,
// writing the rounded handles back through the off-curve points.
func (b BPoint) Round() error {
	b.SetAnchor(b.Anchor().RoundHalfUp())
	in := b.BCPIn()
	if err := b.SetBCPIn(geom.Vec(geom.RoundHalfUp(in.X), geom.RoundHalfUp(in.Y))); err != nil {
		return err
	}
	out := b.BCPOut()
	return b.SetBCPOut(geom.Vec(geom.RoundHalfUp(out.X), geom.RoundHalfUp(out.Y)))
}

// TransformBy applies an affine transformation to the anchor and both
// handles.
func (b BPoint) TransformBy(aff geom.Affine) error {
	anchor := b.Anchor()
	absIn := anchor.Translate(b.BCPIn()).Transform(aff)
	absOut := anchor.Translate(b.BCPOut()).Transform(aff)
	anchor = anchor.Transform(aff)
	b.SetAnchor(anchor)
	if err := b.SetBCPIn(absIn.Sub(anchor)); err != nil {
		return err
	}
	return b.SetBCPOut(absOut.Sub(anchor))
}

// InsertBPoint inserts an anchor-plus-handles unit so that it lands at the
// given segment index. Inserting at the move segment of an open contour
// appends at the end of the contour instead; a non-zero outgoing handle
// there requires synthesizing an extra curve segment on top of the move
// point.
func (c *Contour) InsertBPoint(index int, typ BPointType, anchor geom.Point, bcpIn, bcpOut geom.Vec2) error {
	switch typ {
	case BPointCorner, BPointCurve:
	default:
		return fmt.Errorf("%w: %v is not a bPoint type", ErrInvalidOperation, typ)
	}
	segs := c.Segments()
	if len(segs) == 0 {
		return fmt.Errorf("%w: cannot insert a bPoint into an empty contour", ErrInvalidOperation)
	}
	if index < 0 || index > len(segs) {
		return fmt.Errorf("%w: no bPoint insertion index %d", ErrIndexOutOfRange, index)
	}
	idx := index % len(segs)
	next := segs[idx]
	switch next.Type() {
	case Move:
		return c.appendBPointBeforeMove(typ, anchor, bcpIn, bcpOut, next)
	case Line, Curve:
	default:
		return fmt.Errorf("%w: cannot insert a bPoint before a %v segment", ErrInvalidOperation, next.Type())
	}

	// The new curve segment splits the span entering the next segment, so
	// its first control point starts out on the previous outgoing control.
	var prevOut geom.Point
	if next.Type() == Curve {
		prevOut = next.OffCurve()[0].Position()
	} else {
		prev := segs[(idx-1+len(segs))%len(segs)]
		prevOut = prev.OnCurve().Position()
	}
	newSeg, err := c.InsertSegment(idx, Curve, []geom.Point{prevOut, anchor, anchor}, false)
	if err != nil {
		return err
	}
	segs = c.Segments()
	prev := segs[(idx-1+len(segs))%len(segs)]
	next = segs[(idx+1)%len(segs)]
	if next.Type() == Move {
		return fmt.Errorf("%w: cannot curve onto the end of an open contour", ErrInvalidOperation)
	}

	newSeg.OffCurve()[1].SetPosition(anchor.Translate(bcpIn))
	hasCurve := true
	if next.Type() != Curve {
		if !bcpOut.IsZero() {
			if err := next.SetType(Curve); err != nil {
				return err
			}
		} else {
			hasCurve = false
		}
	}
	if hasCurve {
		next.OffCurve()[0].SetPosition(anchor.Translate(bcpOut))
	}

	// A degenerate curve whose controls sit on the neighboring anchors is
	// really a line.
	newOffs := newSeg.OffCurve()
	if prev.OnCurve().Position() == newOffs[0].Position() &&
		newSeg.OnCurve().Position() == newOffs[1].Position() {
		if err := newSeg.SetType(Line); err != nil {
			return err
		}
	}
	if typ == BPointCurve {
		newSeg.SetSmooth(true)
	}
	return nil
}

// appendBPointBeforeMove handles insertion at the move segment of an open
// contour, which appends the new anchor at the end of the path.
func (c *Contour) appendBPointBeforeMove(typ BPointType, anchor geom.Point, bcpIn, bcpOut geom.Vec2, moveSeg Segment) error {
	segs := c.Segments()
	prevOn := segs[len(segs)-1].OnCurve().Position()
	if !bcpIn.IsZero() {
		seg, err := c.AppendSegment(Curve, []geom.Point{prevOn, anchor.Translate(bcpIn), anchor}, false)
		if err != nil {
			return err
		}
		if typ == BPointCurve {
			seg.SetSmooth(true)
		}
	} else {
		if _, err := c.AppendSegment(Line, []geom.Point{anchor}, false); err != nil {
			return err
		}
	}
	if !bcpOut.IsZero() {
		moveOn := moveSeg.OnCurve().Position()
		if _, err := c.AppendSegment(Curve, []geom.Point{anchor.Translate(bcpOut), moveOn, moveOn}, false); err != nil {
			return err
		}
	}
	return nil
}

// AppendBPoint appends an anchor-plus-handles unit to the contour.
func (c *Contour) AppendBPoint(typ BPointType, anchor geom.Point, bcpIn, bcpOut geom.Vec2) error {
	return c.InsertBPoint(c.NumBPoints(), typ, anchor, bcpIn, bcpOut)
}

// RemoveBPoint removes the bPoint at index i together with its handles:
// the last off-curve point of its own segment, the first off-curve point
// of the next segment, and the anchor itself.
func (c *Contour) RemoveBPoint(i int) error {
	bps := c.BPoints()
	if i < 0 || i >= len(bps) {
		return fmt.Errorf("%w: no bPoint at index %d", ErrIndexOutOfRange, i)
	}
	b := bps[i]
	if offs := b.nextSegment().OffCurve(); len(offs) > 0 {
		if err := c.RemovePointRef(offs[0]); err != nil {
			return err
		}
	}
	seg, _ := b.segment()
	if offs := seg.OffCurve(); len(offs) > 0 {
		if err := c.RemovePointRef(offs[len(offs)-1]); err != nil {
			return err
		}
	}
	return c.RemovePointRef(b.point)
}
