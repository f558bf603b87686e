// Package render submits the scene to a line-drawing GPU pipeline.
package render

import (
	"vecview/internal/geom"
	"vecview/internal/rgb"
)

// Pipeline is the GPU collaborator. Per frame the renderer clears, writes
// the three camera uniforms and flushes; per segment it uploads one 2-vertex
// primitive, sets the color uniform and issues one line draw.
type Pipeline interface {
	ClearFrame()
	SetZoomUniform(zoom float32)
	SetOffsetUniform(x, y float32)
	SetRotationUniform(radians float32)
	UploadVertices(v [4]float32)
	SetColorUniform(r, g, b, a float32)
	DrawLinePrimitive()
	Flush()
}

// DrawSegment submits one segment as a single draw call. Strokes that fail
// to decode draw in black.
func DrawSegment(p Pipeline, s geom.Segment) {
	c := rgb.Decode(s.Stroke)
	p.UploadVertices([4]float32{float32(s.X1), float32(s.Y1), float32(s.X2), float32(s.Y2)})
	p.SetColorUniform(c.Uniform())
	p.DrawLinePrimitive()
}

// Camera is the camera state a frame reads.
type Camera interface {
	Zoom() float64
	Offset() geom.Point
	RotationRadians() float64
}

// Scene yields segments in render order.
type Scene interface {
	Each(fn func(geom.Segment))
}

// Frame renders one full frame: the uniforms are written before any
// segment, and loaded segments precede drawn ones.
func Frame(p Pipeline, cam Camera, sc Scene) {
	p.ClearFrame()
	p.SetZoomUniform(float32(cam.Zoom()))
	off := cam.Offset()
	p.SetOffsetUniform(float32(off.X), float32(off.Y))
	p.SetRotationUniform(float32(cam.RotationRadians()))
	sc.Each(func(s geom.Segment) {
		DrawSegment(p, s)
	})
	p.Flush()
}
