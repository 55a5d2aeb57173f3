package outline

import (
	"errors"
	"testing"
)

func TestSegmentDerivationOpen(t *testing.T) {
	c := openPath()
	segs := c.Segments()
	if len(segs) != 3 {
		t.Fatalf("got %d segments, want 3", len(segs))
	}
	if segs[0].Type() != Move {
		t.Errorf("got first segment type %v, want move", segs[0].Type())
	}
	if segs[1].Type() != Line || segs[2].Type() != Line {
		t.Error("remaining segments must be lines")
	}
}

func TestSegmentDerivationClosed(t *testing.T) {
	c := closedWithCurve()
	segs := c.Segments()
	if len(segs) != 4 {
		t.Fatalf("got %d segments, want 4", len(segs))
	}
	// Closed derivation starts at the group following the first point.
	if segs[0].Type() != Curve {
		t.Errorf("got first segment type %v, want curve", segs[0].Type())
	}
	if got := len(segs[0].OffCurve()); got != 2 {
		t.Errorf("got %d off-curve points, want 2", got)
	}
	if segs[3].OnCurve().Position() != pt(0, 0) {
		t.Errorf("last segment must wrap to the first point, got %s", segs[3].OnCurve())
	}
}

func TestSegmentDerivationTrailingOffCurves(t *testing.T) {
	// Closed: the trailing off-curve run wraps around and is terminated by
	// the first on-curve point, forming the last segment.
	c := buildContour(
		pointData{0, 0, Curve, false},
		pointData{10, 0, Line, false},
		pointData{10, 10, Line, false},
		pointData{5, 12, OffCurve, false},
		pointData{0, 5, OffCurve, false},
	)
	segs := c.Segments()
	if len(segs) != 3 {
		t.Fatalf("got %d segments, want 3", len(segs))
	}
	last := segs[len(segs)-1]
	if last.Type() != Curve || last.OnCurve().Position() != pt(0, 0) {
		t.Errorf("got last segment %v at %s", last.Type(), last.OnCurve())
	}
	if got := len(last.OffCurve()); got != 2 {
		t.Errorf("got %d off-curve points, want 2", got)
	}

	// Open: trailing off-curve points dangle and are dropped.
	o := buildContour(
		pointData{0, 0, Move, false},
		pointData{10, 0, Line, false},
		pointData{5, 5, OffCurve, false},
	)
	segs = o.Segments()
	if len(segs) != 2 {
		t.Fatalf("got %d segments, want 2", len(segs))
	}
}

func TestSegmentPartition(t *testing.T) {
	// Every point belongs to exactly one segment.
	for _, c := range []*Contour{closedSquare(), closedWithCurve(), openPath()} {
		seen := make(map[*Point]int)
		for _, s := range c.Segments() {
			for _, p := range s.Points() {
				seen[p]++
			}
		}
		for _, p := range c.Points() {
			if seen[p] != 1 {
				t.Errorf("point %s appears in %d segments", p, seen[p])
			}
		}
		if len(seen) != c.NumPoints() {
			t.Errorf("segments cover %d points, contour has %d", len(seen), c.NumPoints())
		}
	}
}

func TestSegmentCount(t *testing.T) {
	c := buildContour(
		pointData{0, 0, Line, false},
		pointData{10, 0, Line, false},
		pointData{10, 10, Line, false},
	)
	if got := c.NumSegments(); got != 3 {
		t.Fatalf("got %d segments, want 3", got)
	}
	c.AppendPoint(Point{X: 0, Y: 10, Type: Line})
	if got := c.NumSegments(); got != 4 {
		t.Fatalf("got %d segments after insertion, want 4", got)
	}
}

func TestSegmentAt(t *testing.T) {
	c := closedSquare()
	s, err := c.SegmentAt(0)
	if err != nil {
		t.Fatal(err)
	}
	if s.OnCurve().Position() != pt(10, 0) {
		t.Errorf("got %s", s.OnCurve())
	}
	if s.Index() != 0 {
		t.Errorf("got index %d, want 0", s.Index())
	}
	if _, err := c.SegmentAt(4); !errors.Is(err, ErrIndexOutOfRange) {
		t.Errorf("got %v, want ErrIndexOutOfRange", err)
	}
}

func TestInsertSegment(t *testing.T) {
	c := closedSquare()
	seg, err := c.InsertSegment(0, Line, coords(5, 5), false)
	if err != nil {
		t.Fatal(err)
	}
	if seg.OnCurve().Position() != pt(5, 5) {
		t.Errorf("got %s", seg.OnCurve())
	}
	if got := c.NumSegments(); got != 5 {
		t.Fatalf("got %d segments, want 5", got)
	}
	first, _ := c.SegmentAt(0)
	if first.OnCurve() != seg.OnCurve() {
		t.Error("inserted segment must become segment 0")
	}
	diff(t, []pointData{
		{0, 0, Line, false},
		{5, 5, Line, false},
		{10, 0, Line, false},
		{10, 10, Line, false},
		{0, 10, Line, false},
	}, snapshot(c))
}

func TestInsertSegmentInvalidType(t *testing.T) {
	c := closedSquare()
	if _, err := c.InsertSegment(0, OffCurve, coords(5, 5), false); !errors.Is(err, ErrInvalidOperation) {
		t.Errorf("got %v, want ErrInvalidOperation", err)
	}
	if _, err := c.InsertSegment(9, Line, coords(5, 5), false); !errors.Is(err, ErrIndexOutOfRange) {
		t.Errorf("got %v, want ErrIndexOutOfRange", err)
	}
}

func TestAppendSegmentCurve(t *testing.T) {
	c := &Contour{}
	if _, err := c.AppendSegment(Move, coords(0, 0), false); err != nil {
		t.Fatal(err)
	}
	if _, err := c.AppendSegment(Curve, coords(3, 0, 7, 0, 10, 0), false); err != nil {
		t.Fatal(err)
	}
	diff(t, []pointData{
		{0, 0, Move, false},
		{3, 0, OffCurve, false},
		{7, 0, OffCurve, false},
		{10, 0, Curve, false},
	}, snapshot(c))
}

func TestRemoveSegment(t *testing.T) {
	c := closedWithCurve()
	// Segment 0 is the curve; removing it removes its control points too.
	if err := c.RemoveSegment(0); err != nil {
		t.Fatal(err)
	}
	diff(t, []pointData{
		{0, 0, Line, false},
		{10, 10, Line, false},
		{0, 10, Line, false},
	}, snapshot(c))

	if err := c.RemoveSegment(7); !errors.Is(err, ErrIndexOutOfRange) {
		t.Errorf("got %v, want ErrIndexOutOfRange", err)
	}
}

func TestSegmentSetTypeUpgrade(t *testing.T) {
	c := closedSquare()
	seg, _ := c.SegmentAt(0)
	if err := seg.SetType(Curve); err != nil {
		t.Fatal(err)
	}
	// The inserted control points sit on the neighboring anchors, so the
	// rendered shape is unchanged.
	diff(t, []pointData{
		{0, 0, Line, false},
		{0, 0, OffCurve, false},
		{10, 0, OffCurve, false},
		{10, 0, Curve, false},
		{10, 10, Line, false},
		{0, 10, Line, false},
	}, snapshot(c))
	if got := len(seg.OffCurve()); got != 2 {
		t.Errorf("got %d off-curve points after upgrade, want 2", got)
	}
}

func TestSegmentSetTypeDowngrade(t *testing.T) {
	c := closedWithCurve()
	seg, _ := c.SegmentAt(0)
	if err := seg.SetType(Line); err != nil {
		t.Fatal(err)
	}
	diff(t, []pointData{
		{0, 0, Line, false},
		{10, 0, Line, true},
		{10, 10, Line, false},
		{0, 10, Line, false},
	}, snapshot(c))
}

func TestSegmentSetTypeRetag(t *testing.T) {
	c := closedWithCurve()
	seg, _ := c.SegmentAt(0)
	if err := seg.SetType(QCurve); err != nil {
		t.Fatal(err)
	}
	if got := c.Points()[3].Type; got != QCurve {
		t.Errorf("got %v, want qcurve", got)
	}
	if got := c.NumPoints(); got != 6 {
		t.Errorf("got %d points, want 6", got)
	}
	if err := seg.SetType(OffCurve); !errors.Is(err, ErrInvalidOperation) {
		t.Errorf("got %v, want ErrInvalidOperation", err)
	}
}

func TestSetStartSegment(t *testing.T) {
	c := closedSquare()
	before := c.rendered().SignedArea()
	if err := c.SetStartSegment(2); err != nil {
		t.Fatal(err)
	}
	first, _ := c.SegmentAt(0)
	if first.OnCurve().Position() != pt(0, 10) {
		t.Errorf("got new first segment at %s, want (0, 10)", first.OnCurve())
	}
	if got := c.NumSegments(); got != 4 {
		t.Errorf("got %d segments, want 4", got)
	}
	if got := c.rendered().SignedArea(); got != before {
		t.Errorf("got signed area %v, want %v", got, before)
	}

	// i == 0 is a no-op.
	want := snapshot(c)
	if err := c.SetStartSegment(0); err != nil {
		t.Fatal(err)
	}
	diff(t, want, snapshot(c))

	if err := c.SetStartSegment(9); !errors.Is(err, ErrIndexOutOfRange) {
		t.Errorf("got %v, want ErrIndexOutOfRange", err)
	}
}

func TestSetStartSegmentDuplicateElision(t *testing.T) {
	// The contour ends with a curve sitting on top of the first segment's
	// anchor; the duplicate start segment is dropped before rotating.
	c := buildContour(
		pointData{0, 0, Curve, false},
		pointData{0, 0, Line, false},
		pointData{10, 0, Line, false},
		pointData{10, 10, Line, false},
		pointData{5, 12, OffCurve, false},
		pointData{0, 5, OffCurve, false},
	)
	if err := c.SetStartSegment(2); err != nil {
		t.Fatal(err)
	}
	if got := c.NumSegments(); got != 3 {
		t.Fatalf("got %d segments, want 3", got)
	}
	first, _ := c.SegmentAt(0)
	if first.OnCurve().Position() != pt(10, 10) {
		t.Errorf("got new first segment at %s, want (10, 10)", first.OnCurve())
	}
}

func TestSetStartSegmentRoundTrip(t *testing.T) {
	// Rotating through all segments returns to an equivalent contour.
	c := closedWithCurve()
	area := c.rendered().SignedArea()
	bounds, _ := c.Bounds()
	for i := 0; i < 4; i++ {
		if err := c.SetStartSegment(1); err != nil {
			t.Fatal(err)
		}
		if got := c.NumSegments(); got != 4 {
			t.Fatalf("got %d segments after rotation %d", got, i)
		}
	}
	if got := c.rendered().SignedArea(); got != area {
		t.Errorf("got signed area %v, want %v", got, area)
	}
	gotBounds, _ := c.Bounds()
	diff(t, bounds, gotBounds)
}
