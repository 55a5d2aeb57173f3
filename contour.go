package outline

import (
	"fmt"

	"github.com/letterforge/outline/geom"
)

// Glyph is the container that owns a contour. The outline model treats it
// as an opaque collaborator and only keeps a back reference to it.
type Glyph interface {
	Name() string
}

// Contour is an ordered sequence of points describing one closed or open
// path of a glyph outline. The point list is the single source of truth;
// the segment and bPoint views are derived from it on every access.
//
// Contours are not safe for concurrent mutation. The zero value is an
// empty contour ready for use.
type Contour struct {
	points     []*Point
	identifier string
	glyph      Glyph
}

// Glyph returns the glyph the contour belongs to, or nil.
func (c *Contour) Glyph() Glyph {
	return c.glyph
}

// SetGlyph attaches the contour to a glyph. A contour can be attached only
// once; attaching it to a different glyph returns ErrInvalidOperation.
func (c *Contour) SetGlyph(g Glyph) error {
	if c.glyph != nil && c.glyph != g {
		return fmt.Errorf("%w: contour already belongs to a glyph", ErrInvalidOperation)
	}
	c.glyph = g
	return nil
}

// Copy returns an independent copy of the contour. Point coordinates,
// types, smooth flags and names are duplicated; identifiers and the glyph
// back reference are not, since both must stay unique to the original.
func (c *Contour) Copy() *Contour {
	out := &Contour{}
	for _, p := range c.points {
		out.AppendPoint(Point{X: p.X, Y: p.Y, Type: p.Type, Smooth: p.Smooth, Name: p.Name})
	}
	return out
}

// NumPoints returns the number of points in the contour.
func (c *Contour) NumPoints() int {
	return len(c.points)
}

// PointAt returns the point at index i.
func (c *Contour) PointAt(i int) (*Point, error) {
	if i < 0 || i >= len(c.points) {
		return nil, fmt.Errorf("%w: no point at index %d", ErrIndexOutOfRange, i)
	}
	return c.points[i], nil
}

// Points returns the contour's points in order. The returned slice is a
// copy; the points themselves are shared.
func (c *Contour) Points() []*Point {
	out := make([]*Point, len(c.points))
	copy(out, c.points)
	return out
}

// InsertPoint inserts a new point at index i, using pt as the template for
// its coordinates, type, smoothness and name. Adjacency rules are not
// validated; the segment and bPoint views maintain the off-curve run
// invariant when they edit through this method.
func (c *Contour) InsertPoint(i int, pt Point) (*Point, error) {
	if i < 0 || i > len(c.points) {
		return nil, fmt.Errorf("%w: no insertion index %d", ErrIndexOutOfRange, i)
	}
	if pt.Type == 0 {
		pt.Type = Line
	}
	p := &Point{
		X:          pt.X,
		Y:          pt.Y,
		Type:       pt.Type,
		Smooth:     pt.Smooth,
		Name:       pt.Name,
		identifier: pt.identifier,
		contour:    c,
	}
	c.points = append(c.points, nil)
	copy(c.points[i+1:], c.points[i:])
	c.points[i] = p
	return p, nil
}

// InsertPointWithIdentifier inserts a new point carrying the given
// identifier. The identifier is taken as is; the caller vouches for its
// uniqueness within the contour.
func (c *Contour) InsertPointWithIdentifier(i int, pt Point, identifier string) (*Point, error) {
	pt.identifier = identifier
	return c.InsertPoint(i, pt)
}

// AppendPoint appends a new point built from the template pt.
func (c *Contour) AppendPoint(pt Point) *Point {
	p, _ := c.InsertPoint(len(c.points), pt)
	return p
}

// RemovePoint removes the point at index i.
func (c *Contour) RemovePoint(i int) error {
	if i < 0 || i >= len(c.points) {
		return fmt.Errorf("%w: no point at index %d", ErrIndexOutOfRange, i)
	}
	p := c.points[i]
	p.contour = nil
	c.points = append(c.points[:i], c.points[i+1:]...)
	return nil
}

// RemovePointRef removes the given point from the contour, locating it by
// identity.
func (c *Contour) RemovePointRef(p *Point) error {
	i := c.indexOfPoint(p)
	if i < 0 {
		return fmt.Errorf("%w: point is not part of the contour", ErrNotFound)
	}
	return c.RemovePoint(i)
}

func (c *Contour) indexOfPoint(p *Point) int {
	for i, q := range c.points {
		if q == p {
			return i
		}
	}
	return -1
}

// IsOpen reports whether the contour is open. A contour is open when it is
// empty or starts with a move point.
func (c *Contour) IsOpen() bool {
	return len(c.points) == 0 || c.points[0].Type == Move
}

// rendered draws the contour into a path for geometric queries.
func (c *Contour) rendered() geom.Path {
	var pen pathPen
	c.Draw(&pen)
	return pen.Path()
}

// IsClockwise reports the contour's winding direction, computed from the
// signed area of the rendered outline so that curvature contributes to the
// sign.
func (c *Contour) IsClockwise() bool {
	return c.rendered().SignedArea() > 0
}

// SetClockwise reverses the contour if its current winding direction
// differs from the requested one.
func (c *Contour) SetClockwise(clockwise bool) {
	if c.IsClockwise() != clockwise {
		c.Reverse()
	}
}

// Reverse reverses the contour's winding direction in place. Point objects
// are reused; their order and types are rewritten. For an open contour the
// start moves to the other end of the path.
func (c *Contour) Reverse() {
	segs := c.Segments()
	m := len(segs)
	if m < 2 {
		if m == 1 {
			offs := segs[0].offCurve()
			revPoints(offs)
			c.points = append(offs, segs[0].OnCurve())
		}
		return
	}

	anchors := make([]*Point, m)
	types := make([]PointType, m)
	offs := make([][]*Point, m)
	for i, s := range segs {
		anchors[i] = s.OnCurve()
		types[i] = s.Type()
		offs[i] = s.offCurve()
		revPoints(offs[i])
	}

	var pts []*Point
	if c.IsOpen() {
		// The old end becomes the new start. The segment that used to
		// leave an anchor now terminates at it, so each anchor takes the
		// type of its old following segment.
		pts = append(pts, anchors[m-1])
		anchors[m-1].Type = Move
		for j := m - 2; j >= 0; j-- {
			pts = append(pts, offs[j+1]...)
			anchors[j].Type = types[j+1]
			pts = append(pts, anchors[j])
		}
	} else {
		// The first anchor stays first. Segment k connected anchor k-1 to
		// anchor k; reversed, its control points connect anchor k to
		// anchor k-1, so they trail behind anchor k in the new order.
		pts = append(pts, anchors[0])
		anchors[0].Type = types[(0+1)%m]
		for i := 1; i < m; i++ {
			j := m - i // anchor visited at step i
			pts = append(pts, offs[(j+1)%m]...)
			anchors[j].Type = types[(j+1)%m]
			pts = append(pts, anchors[j])
		}
		pts = append(pts, offs[1%m]...)
	}
	c.points = pts
}

func revPoints(pts []*Point) {
	for i, j := 0, len(pts)-1; i < j; i, j = i+1, j-1 {
		pts[i], pts[j] = pts[j], pts[i]
	}
}

// Bounds returns the tight bounding box of the rendered outline, curves
// included. ok is false for an empty contour.
func (c *Contour) Bounds() (bounds geom.Rect, ok bool) {
	return c.rendered().BoundingBox()
}

// PointInside reports whether pt lies inside the contour under the
// even-odd fill rule.
func (c *Contour) PointInside(pt geom.Point) bool {
	var crossings int
	for s := range c.rendered().Segments() {
		crossings += s.Crossings(pt)
	}
	return crossings%2 == 1
}

// Round rounds all point coordinates to the nearest integers, rounding
// ties towards positive infinity.
func (c *Contour) Round() {
	for _, p := range c.points {
		p.Round()
	}
}

// Identifier returns the contour's identifier, or the empty string if none
// has been assigned.
func (c *Contour) Identifier() string {
	return c.identifier
}

// GetIdentifier returns the contour's identifier, minting one if
// necessary. The call is idempotent.
func (c *Contour) GetIdentifier() string {
	if c.identifier == "" {
		c.identifier = mintIdentifier(c.identifierInUse)
	}
	return c.identifier
}

// identifierInUse reports whether id is already assigned within the
// contour.
func (c *Contour) identifierInUse(id string) bool {
	if c.identifier == id {
		return true
	}
	for _, p := range c.points {
		if p.identifier == id {
			return true
		}
	}
	return false
}
