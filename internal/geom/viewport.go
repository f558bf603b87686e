package geom

// Viewport maps host pixel coordinates (origin top-left, Y down) to display
// space (origin center, Y up). The [-1,1] square is fitted to the shorter
// side and centered so that display space keeps a 1:1 aspect.
type Viewport struct {
	Width  float64
	Height float64
}

func (v Viewport) side() float64 {
	return min(v.Width, v.Height)
}

// Empty reports whether the viewport has no drawable area.
func (v Viewport) Empty() bool {
	return v.Width <= 0 || v.Height <= 0
}

// ToDisplay converts a pixel position to display space.
func (v Viewport) ToDisplay(px, py float64) Point {
	s := v.side()
	if s <= 0 {
		return Point{}
	}
	return Point{
		X: (px - v.Width/2) * 2 / s,
		Y: (v.Height/2 - py) * 2 / s,
	}
}

// ToPixel converts a display-space point to pixels.
func (v Viewport) ToPixel(p Point) (px, py float64) {
	s := v.side()
	return v.Width/2 + p.X*s/2, v.Height/2 - p.Y*s/2
}

// PixelDelta converts a pixel displacement to a display-space displacement.
func (v Viewport) PixelDelta(dx, dy float64) Point {
	s := v.side()
	if s <= 0 {
		return Point{}
	}
	return Point{X: dx * 2 / s, Y: -dy * 2 / s}
}
