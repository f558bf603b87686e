// Package camera implements pan, zoom and rotation over normalized scene
// space.
//
// The pan offset is split in two: a committed offset that only changes when
// a drag ends, and an in-flight drag offset that pointer moves accumulate
// into. Renders read their sum.
package camera

import (
	"math"

	"vecview/internal/geom"
)

// Options bound the camera. Zero fields take the defaults.
type Options struct {
	ZoomFloor    float64
	ZoomCeiling  float64
	ZoomFactor   float64
	RotationStep float64 // degrees per wheel notch
}

func DefaultOptions() Options {
	return Options{
		ZoomFloor:    0.1,
		ZoomCeiling:  10.0,
		ZoomFactor:   1.1,
		RotationStep: 5,
	}
}

func (o Options) withDefaults() Options {
	d := DefaultOptions()
	if o.ZoomFloor <= 0 {
		o.ZoomFloor = d.ZoomFloor
	}
	if o.ZoomCeiling <= 0 {
		o.ZoomCeiling = d.ZoomCeiling
	}
	if o.ZoomCeiling < o.ZoomFloor {
		o.ZoomFloor, o.ZoomCeiling = o.ZoomCeiling, o.ZoomFloor
	}
	if o.ZoomFactor <= 1 {
		o.ZoomFactor = d.ZoomFactor
	}
	if o.RotationStep == 0 {
		o.RotationStep = d.RotationStep
	}
	return o
}

type Camera struct {
	opts Options

	zoom      float64
	drag      geom.Point
	committed geom.Point
	rotation  float64 // degrees, unbounded

	dragging bool
	anchor   geom.Point
}

func New(opts Options) *Camera {
	c := &Camera{opts: opts.withDefaults()}
	c.Reset()
	return c
}

func (c *Camera) Options() Options { return c.opts }

// Reset returns to zoom 1, no offset, no rotation and ends any drag.
func (c *Camera) Reset() {
	c.zoom = 1
	c.drag = geom.Point{}
	c.committed = geom.Point{}
	c.rotation = 0
	c.dragging = false
	c.anchor = geom.Point{}
}

// BeginDrag records the drag anchor. The offset is untouched.
func (c *Camera) BeginDrag(p geom.Point) {
	c.dragging = true
	c.anchor = p
}

// ContinueDrag adds the movement since the previous pointer position to the
// in-flight offset and moves the anchor to p. It reports whether the view
// changed.
func (c *Camera) ContinueDrag(p geom.Point) bool {
	if !c.dragging {
		return false
	}
	d := p.Sub(c.anchor)
	c.anchor = p
	if d == (geom.Point{}) {
		return false
	}
	c.drag = c.drag.Add(d)
	return true
}

// EndDrag folds the in-flight offset into the committed offset.
func (c *Camera) EndDrag() {
	c.committed = c.committed.Add(c.drag)
	c.drag = geom.Point{}
	c.dragging = false
}

// CancelDrag discards the in-flight offset without committing it. It
// reports whether the view changed.
func (c *Camera) CancelDrag() bool {
	moved := c.drag != (geom.Point{})
	c.drag = geom.Point{}
	c.dragging = false
	return moved
}

func (c *Camera) Dragging() bool { return c.dragging }

// PanBy moves the committed offset by d. A drag in flight keeps its anchor
// and its own offset. It reports whether the view changed.
func (c *Camera) PanBy(d geom.Point) bool {
	if d == (geom.Point{}) {
		return false
	}
	c.committed = c.committed.Add(d)
	return true
}

// ZoomBy zooms in for dir < 0 and out for dir > 0. The zoom is clamped to
// the configured bounds; a request at the bound in its direction is a no-op
// and reports false.
func (c *Camera) ZoomBy(dir float64) bool {
	switch {
	case dir < 0:
		if c.zoom >= c.opts.ZoomCeiling {
			return false
		}
		c.zoom = math.Min(c.zoom*c.opts.ZoomFactor, c.opts.ZoomCeiling)
	case dir > 0:
		if c.zoom <= c.opts.ZoomFloor {
			return false
		}
		c.zoom = math.Max(c.zoom/c.opts.ZoomFactor, c.opts.ZoomFloor)
	default:
		return false
	}
	return true
}

// RotateBy adds one rotation step for dir > 0 and subtracts one otherwise.
func (c *Camera) RotateBy(dir float64) {
	if dir > 0 {
		c.rotation += c.opts.RotationStep
	} else {
		c.rotation -= c.opts.RotationStep
	}
}

func (c *Camera) Zoom() float64 { return c.zoom }

// Offset is the pan applied at render time: committed plus in-flight.
func (c *Camera) Offset() geom.Point { return c.committed.Add(c.drag) }

func (c *Camera) Committed() geom.Point { return c.committed }

func (c *Camera) DragOffset() geom.Point { return c.drag }

func (c *Camera) RotationDegrees() float64 { return c.rotation }

func (c *Camera) RotationRadians() float64 { return c.rotation * math.Pi / 180 }

// Transform returns the current forward mapping.
func (c *Camera) Transform() geom.Transform {
	off := c.Offset()
	return geom.Transform{
		Zoom:     c.zoom,
		OffsetX:  off.X,
		OffsetY:  off.Y,
		Rotation: c.RotationRadians(),
	}
}

// ToCameraSpace maps a scene point to display space.
func (c *Camera) ToCameraSpace(p geom.Point) geom.Point {
	return c.Transform().Apply(p)
}

// ToSceneSpace maps a display point back to scene space; it is the exact
// inverse of ToCameraSpace for the current state.
func (c *Camera) ToSceneSpace(p geom.Point) geom.Point {
	return c.Transform().Invert(p)
}
