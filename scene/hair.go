package scene

// The cross-section shape used when intersecting curve segments.
type CurveShape uint8

const (
	CurveRibbon CurveShape = iota
	CurveThick
)

// A single curve inside a hair geometry. A curve with N control keys is
// intersected as N-1 consecutive segments.
type Curve struct {
	NumKeys int
}

// Get the number of segments the curve decomposes into.
func (c Curve) NumSegments() int {
	if c.NumKeys < 2 {
		return 0
	}
	return c.NumKeys - 1
}

// A hair geometry: a list of curves sharing one cross-section shape.
type Hair struct {
	GeometryBase

	Shape  CurveShape
	Curves []Curve
}

// Get the number of curves in the geometry.
func (h *Hair) NumCurves() int {
	return len(h.Curves)
}

// Get the total segment count across all curves.
func (h *Hair) NumSegments() int {
	total := 0
	for _, curve := range h.Curves {
		total += curve.NumSegments()
	}
	return total
}
