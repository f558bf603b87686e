package window

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"vecview/internal/geom"
	"vecview/internal/render"
	"vecview/internal/rgb"
)

// Surface implements render.Pipeline on an offscreen ebiten image. Frames
// are drawn only when the render loop ticks; Draw blits the last one.
type Surface struct {
	render.State

	target     *ebiten.Image
	vp         geom.Viewport
	background rgb.RGB
	lineWidth  float32
	draws      int
}

var _ render.Pipeline = (*Surface)(nil)

func NewSurface(background rgb.RGB, lineWidth float64) *Surface {
	if lineWidth <= 0 {
		lineWidth = 1
	}
	return &Surface{background: background, lineWidth: float32(lineWidth)}
}

// Resize reallocates the target when the window size changed. It reports
// whether it did.
func (s *Surface) Resize(w, h int) bool {
	if s.target != nil {
		b := s.target.Bounds()
		if b.Dx() == w && b.Dy() == h {
			return false
		}
		s.target.Deallocate()
	}
	s.target = ebiten.NewImage(w, h)
	s.vp = geom.Viewport{Width: float64(w), Height: float64(h)}
	return true
}

// Viewport maps window pixels to display space.
func (s *Surface) Viewport() geom.Viewport { return s.vp }

func (s *Surface) ClearFrame() {
	s.draws = 0
	if s.target != nil {
		s.target.Fill(s.background.Color())
	}
}

func (s *Surface) DrawLinePrimitive() {
	s.draws++
	if s.target == nil {
		return
	}
	x0, y0, x1, y1 := s.Line()
	px0, py0 := s.vp.ToPixel(geom.Point{X: float64(x0), Y: float64(y0)})
	px1, py1 := s.vp.ToPixel(geom.Point{X: float64(x1), Y: float64(y1)})
	c := rgb.FromUniform(s.Color[0], s.Color[1], s.Color[2])
	vector.StrokeLine(s.target, float32(px0), float32(py0), float32(px1), float32(py1), s.lineWidth, c.Color(), true)
}

func (s *Surface) Flush() {}

// Blit copies the last frame onto screen.
func (s *Surface) Blit(screen *ebiten.Image) {
	if s.target != nil {
		screen.DrawImage(s.target, nil)
	}
}
