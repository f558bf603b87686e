package geom

import (
	"fmt"
	"math"
)

// BBox is the coordinate domain a source document declares.
type BBox struct {
	MinX float64
	MinY float64
	MaxX float64
	MaxY float64
}

// Extend grows the box to include (x, y).
func (b *BBox) Extend(x, y float64) {
	if x < b.MinX {
		b.MinX = x
	}
	if y < b.MinY {
		b.MinY = y
	}
	if x > b.MaxX {
		b.MaxX = x
	}
	if y > b.MaxY {
		b.MaxY = y
	}
}

// Ranges returns the absolute axis spans.
func (b BBox) Ranges() (rx, ry float64) {
	return math.Abs(b.MaxX - b.MinX), math.Abs(b.MaxY - b.MinY)
}

// Center returns the geometric center of the box.
func (b BBox) Center() Point {
	return Point{X: (b.MinX + b.MaxX) / 2, Y: (b.MinY + b.MaxY) / 2}
}

func (b BBox) String() string {
	return fmt.Sprintf("[%.5f, %.5f, %.5f, %.5f]", b.MinX, b.MinY, b.MaxX, b.MaxY)
}

type Point struct {
	X, Y float64
}

func (p Point) Add(q Point) Point { return Point{X: p.X + q.X, Y: p.Y + q.Y} }
func (p Point) Sub(q Point) Point { return Point{X: p.X - q.X, Y: p.Y - q.Y} }

// InBounds reports whether p lies inside normalized [-1,1] on both axes.
func (p Point) InBounds() bool {
	return p.X >= -1 && p.X <= 1 && p.Y >= -1 && p.Y <= 1
}

// Segment is a straight line in normalized scene space. Segments are values
// and never change once appended to a collection.
type Segment struct {
	X1, Y1 float64
	X2, Y2 float64
	Stroke string
}

// NewSegment builds a segment between two points.
func NewSegment(a, b Point, stroke string) Segment {
	return Segment{X1: a.X, Y1: a.Y, X2: b.X, Y2: b.Y, Stroke: stroke}
}

func (s Segment) Start() Point { return Point{X: s.X1, Y: s.Y1} }
func (s Segment) End() Point   { return Point{X: s.X2, Y: s.Y2} }

// InBounds reports whether both endpoints are inside [-1,1].
func (s Segment) InBounds() bool {
	return s.Start().InBounds() && s.End().InBounds()
}

// RawSegment is a segment in source document units.
type RawSegment struct {
	X1, Y1 float64
	X2, Y2 float64
	Stroke string
}

// Document is the completed output of an ingestion: the declared box and the
// ordered list of raw segments. BBox is nil when the source declared none.
type Document struct {
	Name     string
	BBox     *BBox
	Segments []RawSegment
}
