package geom

import (
	"fmt"
	"iter"
	"slices"
)

type PathElementKind int

const (
	// Move directly to the point without drawing anything, starting a new
	// subpath.
	MoveToKind PathElementKind = iota + 1
	// Draw a line from the current location to the point.
	LineToKind
	// Draw a quadratic Bézier using the current location and the two points.
	QuadToKind
	// Draw a cubic Bézier using the current location and the three points.
	CubicToKind
	// Close off the path.
	ClosePathKind
)

// PathElement is one command of a rendered outline, in the form produced by
// segment pens. A valid path has MoveTo at the beginning of each subpath.
type PathElement struct {
	Kind PathElementKind
	P0   Point
	P1   Point
	P2   Point
}

func (el PathElement) String() string {
	var kind string
	switch el.Kind {
	case MoveToKind:
		kind = "MoveTo"
	case LineToKind:
		kind = "LineTo"
	case QuadToKind:
		kind = "QuadTo"
	case CubicToKind:
		kind = "CubicTo"
	case ClosePathKind:
		kind = "ClosePath"
	default:
		kind = "InvalidPathElement"
	}
	return fmt.Sprintf("%s(%s, %s, %s)", kind, el.P0, el.P1, el.P2)
}

func MoveTo(pt Point) PathElement {
	return PathElement{Kind: MoveToKind, P0: pt}
}

func LineTo(pt Point) PathElement {
	return PathElement{Kind: LineToKind, P0: pt}
}

func QuadTo(p0, p1 Point) PathElement {
	return PathElement{Kind: QuadToKind, P0: p0, P1: p1}
}

func CubicTo(p0, p1, p2 Point) PathElement {
	return PathElement{Kind: CubicToKind, P0: p0, P1: p1, P2: p2}
}

func ClosePath() PathElement {
	return PathElement{Kind: ClosePathKind}
}

func (el PathElement) Transform(aff Affine) PathElement {
	switch el.Kind {
	case MoveToKind:
		return MoveTo(el.P0.Transform(aff))
	case LineToKind:
		return LineTo(el.P0.Transform(aff))
	case QuadToKind:
		return QuadTo(el.P0.Transform(aff), el.P1.Transform(aff))
	case CubicToKind:
		return CubicTo(el.P0.Transform(aff), el.P1.Transform(aff), el.P2.Transform(aff))
	case ClosePathKind:
		return ClosePath()
	default:
		return PathElement{}
	}
}

type PathSegmentKind int

const (
	// A line segment.
	LineKind PathSegmentKind = iota + 1
	// A quadratic Bézier segment.
	QuadKind
	// A cubic Bézier segment.
	CubicKind
)

// PathSegment represents one independent line or curve of a path, as a
// tagged union of [Line], [QuadBez] and [CubicBez].
type PathSegment struct {
	Kind PathSegmentKind
	P0   Point
	P1   Point
	P2   Point
	P3   Point
}

// Line returns the line represented by this segment. This is only valid
// when Kind == LineKind.
func (seg PathSegment) Line() Line { return Line{seg.P0, seg.P1} }

// Quad returns the quadratic Bézier represented by this segment. This is
// only valid when Kind == QuadKind.
func (seg PathSegment) Quad() QuadBez { return QuadBez{seg.P0, seg.P1, seg.P2} }

// Cubic returns the cubic Bézier represented by this segment. This is only
// valid when Kind == CubicKind.
func (seg PathSegment) Cubic() CubicBez { return CubicBez{seg.P0, seg.P1, seg.P2, seg.P3} }

func (seg PathSegment) Eval(t float64) Point {
	switch seg.Kind {
	case LineKind:
		return seg.Line().Eval(t)
	case QuadKind:
		return seg.Quad().Eval(t)
	case CubicKind:
		return seg.Cubic().Eval(t)
	default:
		return Point{}
	}
}

func (seg PathSegment) Subsegment(start, end float64) PathSegment {
	switch seg.Kind {
	case LineKind:
		return seg.Line().Subsegment(start, end).Seg()
	case QuadKind:
		return seg.Quad().Subsegment(start, end).Seg()
	case CubicKind:
		return seg.Cubic().Subsegment(start, end).Seg()
	default:
		return PathSegment{}
	}
}

func (seg PathSegment) Extrema() ([MaxExtrema]float64, int) {
	switch seg.Kind {
	case LineKind:
		return seg.Line().Extrema()
	case QuadKind:
		return seg.Quad().Extrema()
	case CubicKind:
		return seg.Cubic().Extrema()
	default:
		return [MaxExtrema]float64{}, 0
	}
}

func (seg PathSegment) BoundingBox() Rect {
	switch seg.Kind {
	case LineKind:
		return seg.Line().BoundingBox()
	case QuadKind:
		return seg.Quad().BoundingBox()
	case CubicKind:
		return seg.Cubic().BoundingBox()
	default:
		return Rect{}
	}
}

func (seg PathSegment) SignedArea() float64 {
	switch seg.Kind {
	case LineKind:
		return seg.Line().SignedArea()
	case QuadKind:
		return seg.Quad().SignedArea()
	case CubicKind:
		return seg.Cubic().SignedArea()
	default:
		return 0
	}
}

// windingInner computes the winding contribution of a monotonic subsegment.
// Assumes split at extrema.
func (seg PathSegment) windingInner(pt Point) int {
	start := seg.Eval(0)
	end := seg.Eval(1)
	var sign int
	if end.Y > start.Y {
		if pt.Y < start.Y || pt.Y >= end.Y {
			return 0
		}
		sign = -1
	} else if end.Y < start.Y {
		if pt.Y < end.Y || pt.Y >= start.Y {
			return 0
		}
		sign = 1
	} else {
		return 0
	}
	switch seg.Kind {
	case LineKind:
		if pt.X < min(start.X, end.X) {
			return 0
		}
		if pt.X >= max(start.X, end.X) {
			return sign
		}
		// line equation ax + by = c
		a := end.Y - start.Y
		b := start.X - end.X
		c := a*start.X + b*start.Y
		if (a*pt.X+b*pt.Y-c)*float64(sign) <= 0.0 {
			return sign
		} else {
			return 0
		}
	case QuadKind:
		quad := seg.Quad()
		p1 := quad.P1
		if pt.X < min(start.X, end.X, p1.X) {
			return 0
		}
		if pt.X >= max(start.X, end.X, p1.X) {
			return sign
		}
		a := end.Y - 2.0*p1.Y + start.Y
		b := 2.0 * (p1.Y - start.Y)
		c := start.Y - pt.Y
		solution, n := SolveQuadratic(c, b, a)
		for _, t := range solution[:n] {
			if t >= 0.0 && t <= 1.0 {
				x := quad.Eval(t).X
				if pt.X >= x {
					return sign
				} else {
					return 0
				}
			}
		}
		return 0
	case CubicKind:
		cubic := seg.Cubic()
		p1 := cubic.P1
		p2 := cubic.P2
		if pt.X < min(start.X, end.X, p1.X, p2.X) {
			return 0
		}
		if pt.X >= max(start.X, end.X, p1.X, p2.X) {
			return sign
		}
		a := end.Y - 3.0*p2.Y + 3.0*p1.Y - start.Y
		b := 3.0 * (p2.Y - 2.0*p1.Y + start.Y)
		c := 3.0 * (p1.Y - start.Y)
		d := start.Y - pt.Y
		solution, n := SolveCubic(d, c, b, a)
		for _, t := range solution[:n] {
			if t >= 0.0 && t <= 1.0 {
				x := cubic.Eval(t).X
				if pt.X >= x {
					return sign
				} else {
					return 0
				}
			}
		}
		return 0
	default:
		return 0
	}
}

// Winding computes the winding number contribution of a single segment.
//
// Casts a ray to the left and counts intersections.
func (seg PathSegment) Winding(pt Point) int {
	exs, n := ExtremaRanges(seg)
	var w int
	for _, ex := range exs[:n] {
		w += seg.Subsegment(ex[0], ex[1]).windingInner(pt)
	}
	return w
}

// Crossings counts how often a ray cast to the left from pt crosses the
// segment, ignoring crossing direction. Summing this over a path gives the
// even-odd fill rule via the parity of the total.
func (seg PathSegment) Crossings(pt Point) int {
	exs, n := ExtremaRanges(seg)
	var cr int
	for _, ex := range exs[:n] {
		if seg.Subsegment(ex[0], ex[1]).windingInner(pt) != 0 {
			cr++
		}
	}
	return cr
}

// Path is a rendered outline: the sequence of path elements a contour
// produces when drawn with a segment pen.
type Path []PathElement

func (p *Path) Push(el PathElement) {
	*p = append(*p, el)
}

func (p *Path) MoveTo(pt Point)          { p.Push(MoveTo(pt)) }
func (p *Path) LineTo(pt Point)          { p.Push(LineTo(pt)) }
func (p *Path) QuadTo(p1, p2 Point)      { p.Push(QuadTo(p1, p2)) }
func (p *Path) CubicTo(p1, p2, p3 Point) { p.Push(CubicTo(p1, p2, p3)) }
func (p *Path) ClosePath()               { p.Push(ClosePath()) }

// Transform returns a new path with aff applied to every element.
func (p Path) Transform(aff Affine) Path {
	els := make(Path, len(p))
	for i := range p {
		els[i] = p[i].Transform(aff)
	}
	return els
}

// Segments returns an iterator over the path's segments. A ClosePath
// element yields the implicit closing line when the current position does
// not already coincide with the subpath start.
func (p Path) Segments() iter.Seq[PathSegment] {
	return Segments(slices.Values(p))
}

// Segments converts a sequence of path elements to a sequence of path
// segments.
func Segments(seq iter.Seq[PathElement]) iter.Seq[PathSegment] {
	return func(yield func(PathSegment) bool) {
		first := true
		var start, last Point
		for el := range seq {
			if first {
				first = false
				switch el.Kind {
				case MoveToKind:
					start = el.P0
				case LineToKind:
					start = el.P0
				case QuadToKind:
					start = el.P1
				case CubicToKind:
					start = el.P2
				case ClosePathKind:
					panic("geom: first path element mustn't be ClosePath")
				}
				last = start
			}

			switch el.Kind {
			case MoveToKind:
				start = el.P0
				last = el.P0
			case LineToKind:
				p := last
				last = el.P0
				if !yield(Line{p, el.P0}.Seg()) {
					return
				}
			case QuadToKind:
				p := last
				last = el.P1
				if !yield(QuadBez{p, el.P0, el.P1}.Seg()) {
					return
				}
			case CubicToKind:
				p := last
				last = el.P2
				if !yield(CubicBez{p, el.P0, el.P1, el.P2}.Seg()) {
					return
				}
			case ClosePathKind:
				if last != start {
					p := last
					last = start
					if !yield(Line{p, start}.Seg()) {
						return
					}
				}
			default:
				panic(fmt.Sprintf("geom: unhandled path element kind %v", el.Kind))
			}
		}
	}
}

// SignedArea returns the signed area enclosed by the path, computed with
// Green's theorem so Bézier curvature contributes exactly.
func (p Path) SignedArea() float64 {
	var sum float64
	for s := range p.Segments() {
		sum += s.SignedArea()
	}
	return sum
}

// Winding returns the winding number of pt with respect to the path.
func (p Path) Winding(pt Point) int {
	var sum int
	for s := range p.Segments() {
		sum += s.Winding(pt)
	}
	return sum
}

// HasSegments reports whether the path contains any segments. A path that
// consists only of MoveTo and ClosePath elements has no segments.
func (p Path) HasSegments() bool {
	for i := range p {
		if p[i].Kind != MoveToKind && p[i].Kind != ClosePathKind {
			return true
		}
	}
	return false
}

// ControlBox returns the bounding box of the path's control points. It
// contains the tight bounding box and is cheaper to compute, but curves
// that don't touch their control points make it larger. The second return
// value is false for an empty path.
func (p Path) ControlBox() (Rect, bool) {
	var bbox Rect
	first := true
	add := func(pt Point) {
		if first {
			first = false
			bbox = NewRectFromPoints(pt, pt)
		} else {
			bbox = bbox.UnionPoint(pt)
		}
	}
	for _, el := range p {
		switch el.Kind {
		case MoveToKind, LineToKind:
			add(el.P0)
		case QuadToKind:
			add(el.P0)
			add(el.P1)
		case CubicToKind:
			add(el.P0)
			add(el.P1)
			add(el.P2)
		}
	}
	return bbox, !first
}

// BoundingBox returns the tight bounding box of the path, including curve
// extrema. For a path with no segments the box collapses to the MoveTo
// points. The second return value is false for an empty path.
func (p Path) BoundingBox() (Rect, bool) {
	if len(p) == 0 {
		return Rect{}, false
	}
	if !p.HasSegments() {
		first := true
		var bbox Rect
		for _, el := range p {
			if el.Kind != MoveToKind {
				continue
			}
			if first {
				first = false
				bbox = NewRectFromPoints(el.P0, el.P0)
			} else {
				bbox = bbox.UnionPoint(el.P0)
			}
		}
		return bbox, !first
	}
	var bbox Rect
	first := true
	for s := range p.Segments() {
		sbbox := s.BoundingBox()
		if first {
			first = false
			bbox = sbbox
		} else {
			bbox = bbox.Union(sbbox)
		}
	}
	return bbox, true
}
