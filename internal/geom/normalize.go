package geom

import (
	"errors"
	"math"
)

var (
	// ErrNoBBox is returned for documents that declare no bounding box.
	ErrNoBBox = errors.New("geom: document has no bounding box")
	// ErrDegenerateBox is returned when the box has zero extent on both axes
	// or a non-finite coordinate.
	ErrDegenerateBox = errors.New("geom: degenerate bounding box")
)

// Normalizer maps a bounding box into normalized [-1,1] space. The longer
// axis spans exactly 2, the shorter axis keeps the aspect ratio and the box
// center maps to the origin. Y is inverted: sources are top-left origin.
type Normalizer struct {
	box            BBox
	rangeX, rangeY float64
	scale          float64
}

// NewNormalizer validates b and returns its mapping.
func NewNormalizer(b BBox) (Normalizer, error) {
	for _, v := range []float64{b.MinX, b.MinY, b.MaxX, b.MaxY} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return Normalizer{}, ErrDegenerateBox
		}
	}
	rx, ry := b.Ranges()
	scale := math.Max(rx, ry)
	if scale == 0 {
		return Normalizer{}, ErrDegenerateBox
	}
	return Normalizer{box: b, rangeX: rx, rangeY: ry, scale: scale}, nil
}

// Point normalizes one source coordinate.
func (n Normalizer) Point(x, y float64) Point {
	return Point{
		X: 2 * ((x - n.box.MinX) - n.rangeX/2) / n.scale,
		Y: -2 * ((y - n.box.MinY) - n.rangeY/2) / n.scale,
	}
}

// Segment normalizes both endpoints of r, keeping its stroke.
func (n Normalizer) Segment(r RawSegment) Segment {
	return NewSegment(n.Point(r.X1, r.Y1), n.Point(r.X2, r.Y2), r.Stroke)
}

// Frame returns the four edges of the box outline in normalized space.
func (n Normalizer) Frame(stroke string) []Segment {
	b := n.box
	tl := n.Point(b.MinX, b.MinY)
	tr := n.Point(b.MaxX, b.MinY)
	br := n.Point(b.MaxX, b.MaxY)
	bl := n.Point(b.MinX, b.MaxY)
	return []Segment{
		NewSegment(tl, tr, stroke),
		NewSegment(bl, br, stroke),
		NewSegment(tl, bl, stroke),
		NewSegment(tr, br, stroke),
	}
}

// Normalize converts every raw segment of doc. overrun reports whether any
// endpoint fell outside [-1,1]; such segments are still returned. When
// withFrame is set the box outline is appended after the document's lines.
// On error no segments are returned.
func Normalize(doc Document, withFrame bool, frameStroke string) (segs []Segment, overrun bool, err error) {
	if doc.BBox == nil {
		return nil, false, ErrNoBBox
	}
	n, err := NewNormalizer(*doc.BBox)
	if err != nil {
		return nil, false, err
	}
	segs = make([]Segment, 0, len(doc.Segments)+4)
	for _, r := range doc.Segments {
		s := n.Segment(r)
		if !s.InBounds() {
			overrun = true
		}
		segs = append(segs, s)
	}
	if withFrame {
		segs = append(segs, n.Frame(frameStroke)...)
	}
	return segs, overrun, nil
}
