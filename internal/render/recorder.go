package render

import (
	"fmt"
	"log/slog"
)

// Op names a pipeline call.
type Op string

const (
	OpClear    Op = "clear"
	OpZoom     Op = "zoom"
	OpOffset   Op = "offset"
	OpRotation Op = "rotation"
	OpUpload   Op = "upload"
	OpColor    Op = "color"
	OpDraw     Op = "draw"
	OpFlush    Op = "flush"
)

// Call is one recorded pipeline call with its float arguments.
type Call struct {
	Op   Op
	Args []float32
}

func (c Call) String() string {
	if len(c.Args) == 0 {
		return string(c.Op)
	}
	return fmt.Sprintf("%s%v", c.Op, c.Args)
}

// Recorder is a Pipeline that records every call. Frames counts flushes.
type Recorder struct {
	Calls  []Call
	Frames int
}

var _ Pipeline = (*Recorder)(nil)

func (r *Recorder) add(op Op, args ...float32) { r.Calls = append(r.Calls, Call{Op: op, Args: args}) }

func (r *Recorder) ClearFrame()                         { r.add(OpClear) }
func (r *Recorder) SetZoomUniform(z float32)            { r.add(OpZoom, z) }
func (r *Recorder) SetOffsetUniform(x, y float32)       { r.add(OpOffset, x, y) }
func (r *Recorder) SetRotationUniform(rad float32)      { r.add(OpRotation, rad) }
func (r *Recorder) UploadVertices(v [4]float32)         { r.add(OpUpload, v[:]...) }
func (r *Recorder) SetColorUniform(cr, g, b, a float32) { r.add(OpColor, cr, g, b, a) }
func (r *Recorder) DrawLinePrimitive()                  { r.add(OpDraw) }

func (r *Recorder) Flush() {
	r.add(OpFlush)
	r.Frames++
}

// Ops returns the recorded operation names in order.
func (r *Recorder) Ops() []Op {
	ops := make([]Op, len(r.Calls))
	for i, c := range r.Calls {
		ops[i] = c.Op
	}
	return ops
}

// Reset forgets all recorded calls.
func (r *Recorder) Reset() {
	r.Calls = nil
	r.Frames = 0
}

// Traced wraps p so that every frame is logged at debug level.
func Traced(p Pipeline, log *slog.Logger) Pipeline {
	return &traced{Pipeline: p, log: log}
}

type traced struct {
	Pipeline
	log   *slog.Logger
	draws int
	u     Uniforms
}

func (t *traced) ClearFrame() {
	t.draws = 0
	t.Pipeline.ClearFrame()
}

func (t *traced) SetZoomUniform(z float32) {
	t.u.Zoom = z
	t.Pipeline.SetZoomUniform(z)
}

func (t *traced) SetOffsetUniform(x, y float32) {
	t.u.OffsetX, t.u.OffsetY = x, y
	t.Pipeline.SetOffsetUniform(x, y)
}

func (t *traced) SetRotationUniform(rad float32) {
	t.u.Rotation = rad
	t.Pipeline.SetRotationUniform(rad)
}

func (t *traced) DrawLinePrimitive() {
	t.draws++
	t.Pipeline.DrawLinePrimitive()
}

func (t *traced) Flush() {
	t.Pipeline.Flush()
	t.log.Debug("frame",
		"draws", t.draws,
		"zoom", t.u.Zoom,
		"offset_x", t.u.OffsetX,
		"offset_y", t.u.OffsetY,
		"rotation", t.u.Rotation)
}
