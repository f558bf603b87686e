package viewer

import "vecview/internal/geom"

// PointerSample is the pointer state a polling host samples once per frame.
type PointerSample struct {
	X, Y      float64 // cursor, host pixels
	Inside    bool    // cursor within the surface
	LeftDown  bool    // left button went down this frame
	LeftHeld  bool
	LeftUp    bool // left button released this frame
	RightDown bool
	WheelY    float64 // positive is wheel up
	Modifier  bool    // shift, ctrl or alt held
}

// Pointer turns polled samples into Controller input events. Hosts with
// event-driven input call the Controller directly instead.
type Pointer struct {
	ctrl    *Controller
	persist func() bool
	lastX   float64
	lastY   float64
}

// NewPointer returns a sampler feeding c. persist is read on every draw
// trigger.
func NewPointer(c *Controller, persist func() bool) *Pointer {
	return &Pointer{ctrl: c, persist: persist}
}

// Apply feeds one sample. vp maps host pixels to display space.
func (p *Pointer) Apply(in PointerSample, vp geom.Viewport) {
	if vp.Empty() {
		return
	}
	pos := vp.ToDisplay(in.X, in.Y)
	dragging := p.ctrl.Camera().Dragging()
	moved := in.X != p.lastX || in.Y != p.lastY
	switch {
	case dragging && !in.Inside:
		p.ctrl.Leave()
	case dragging && (in.LeftUp || !in.LeftHeld):
		if moved {
			p.ctrl.DragMove(pos)
		}
		p.ctrl.DragEnd()
	case dragging && moved:
		p.ctrl.DragMove(pos)
	case in.LeftDown && in.Inside:
		p.ctrl.DragStart(pos)
	}
	if in.RightDown && in.Inside {
		p.ctrl.DrawTrigger(pos, p.persist())
	}
	if in.WheelY != 0 && in.Inside {
		p.ctrl.Wheel(-in.WheelY, in.Modifier)
	}
	p.lastX, p.lastY = in.X, in.Y
}
