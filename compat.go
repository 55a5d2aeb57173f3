package outline

import "fmt"

// SegmentCompatibility reports the differences between one pair of
// segments compared for interpolation.
type SegmentCompatibility struct {
	Index            int
	TypeDifference   bool
	SmoothDifference bool
	Fatal            bool
	Warning          bool
}

// Compatibility reports whether two contours can be interpolated. Fatal
// differences make interpolation impossible; warnings indicate results
// that are usually unintended.
type Compatibility struct {
	OpenDifference         bool
	DirectionDifference    bool
	SegmentCountDifference bool
	Fatal                  bool
	Warning                bool
	Segments               []SegmentCompatibility
}

// IsCompatible compares two segments for interpolation. A type mismatch
// is fatal, a smooth mismatch a warning.
func (s Segment) IsCompatible(other Segment) (bool, SegmentCompatibility) {
	var report SegmentCompatibility
	if s.Type() != other.Type() {
		report.TypeDifference = true
		report.Fatal = true
	}
	if s.Smooth() != other.Smooth() {
		report.SmoothDifference = true
		report.Warning = true
	}
	return !report.Fatal, report
}

// IsCompatible checks whether the contour can be interpolated with other.
// Differences in open/closed state and segment count are fatal; a
// direction difference is a warning. Segment pairs are compared over the
// shorter of the two segment lists.
func (c *Contour) IsCompatible(other *Contour) (bool, *Compatibility) {
	report := &Compatibility{}
	if c.IsOpen() != other.IsOpen() {
		report.OpenDifference = true
		report.Fatal = true
	}
	if c.IsClockwise() != other.IsClockwise() {
		report.DirectionDifference = true
		report.Warning = true
	}
	segs1 := c.Segments()
	segs2 := other.Segments()
	if len(segs1) != len(segs2) {
		report.SegmentCountDifference = true
		report.Fatal = true
	}
	n := min(len(segs1), len(segs2))
	for i := 0; i < n; i++ {
		_, sr := segs1[i].IsCompatible(segs2[i])
		if sr.Fatal || sr.Warning {
			sr.Index = i
			report.Fatal = report.Fatal || sr.Fatal
			report.Warning = report.Warning || sr.Warning
			report.Segments = append(report.Segments, sr)
		}
	}
	return !report.Fatal, report
}

// Interpolate replaces the contour's points with a factor-based blend
// between minContour and maxContour. A factor of 0 reproduces minContour,
// 1 reproduces maxContour. Point types, smooth flags and names are taken
// from minContour. The two contours must have the same point count and
// pointwise equal types.
func (c *Contour) Interpolate(factor float64, minContour, maxContour *Contour) error {
	minPts := minContour.points
	maxPts := maxContour.points
	if len(minPts) != len(maxPts) {
		return fmt.Errorf("%w: contours have %d and %d points", ErrInvalidOperation, len(minPts), len(maxPts))
	}
	blended := make([]*Point, len(minPts))
	for i, mp := range minPts {
		xp := maxPts[i]
		if mp.Type != xp.Type {
			return fmt.Errorf("%w: point %d is %v in one contour and %v in the other", ErrInvalidOperation, i, mp.Type, xp.Type)
		}
		pos := mp.Position().Lerp(xp.Position(), factor)
		blended[i] = &Point{
			X:       pos.X,
			Y:       pos.Y,
			Type:    mp.Type,
			Smooth:  mp.Smooth,
			Name:    mp.Name,
			contour: c,
		}
	}
	for _, p := range c.points {
		p.contour = nil
	}
	c.points = blended
	return nil
}
