package viewer

import "vecview/internal/geom"

// DefaultStroke is the stroke of interactively drawn segments.
const DefaultStroke = "#000000"

// LineTool builds 2-point segments from successive draw triggers. It is
// Idle with no pending point and Armed with one.
type LineTool struct {
	stroke  string
	pending *geom.Point
}

func NewLineTool(stroke string) *LineTool {
	if stroke == "" {
		stroke = DefaultStroke
	}
	return &LineTool{stroke: stroke}
}

// Trigger feeds one scene-space point. The first point arms the tool; the
// second completes a segment. With persist set, the completing point stays
// pending so the next trigger chains a polyline.
func (t *LineTool) Trigger(p geom.Point, persist bool) (geom.Segment, bool) {
	if t.pending == nil {
		t.pending = &p
		return geom.Segment{}, false
	}
	seg := geom.NewSegment(*t.pending, p, t.stroke)
	if persist {
		t.pending = &p
	} else {
		t.pending = nil
	}
	return seg, true
}

// Pending returns the armed point, if any.
func (t *LineTool) Pending() (geom.Point, bool) {
	if t.pending == nil {
		return geom.Point{}, false
	}
	return *t.pending, true
}

func (t *LineTool) Armed() bool { return t.pending != nil }

// Disarm drops the pending point.
func (t *LineTool) Disarm() { t.pending = nil }
