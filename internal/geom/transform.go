package geom

import "math"

// Transform is the camera mapping from normalized scene space to display
// space: scale by Zoom, rotate by Rotation (radians, counter-clockwise),
// then translate by the offset. It is rebuilt from scalars every frame
// rather than accumulated.
type Transform struct {
	Zoom     float64
	OffsetX  float64
	OffsetY  float64
	Rotation float64
}

// Identity returns the transform of a reset camera.
func Identity() Transform {
	return Transform{Zoom: 1}
}

// Apply maps a scene point to display space.
func (t Transform) Apply(p Point) Point {
	x, y := p.X*t.Zoom, p.Y*t.Zoom
	if t.Rotation != 0 {
		sin, cos := math.Sincos(t.Rotation)
		x, y = x*cos-y*sin, x*sin+y*cos
	}
	return Point{X: x + t.OffsetX, Y: y + t.OffsetY}
}

// Invert maps a display point back to scene space. It undoes Apply in
// reverse order: translation, then rotation, then scale.
func (t Transform) Invert(p Point) Point {
	x, y := p.X-t.OffsetX, p.Y-t.OffsetY
	if t.Rotation != 0 {
		sin, cos := math.Sincos(-t.Rotation)
		x, y = x*cos-y*sin, x*sin+y*cos
	}
	if t.Zoom != 0 {
		x /= t.Zoom
		y /= t.Zoom
	}
	return Point{X: x, Y: y}
}
