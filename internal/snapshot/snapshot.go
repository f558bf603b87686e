// Package snapshot renders frames to raster images with gogpu/gg and writes
// them as PNG.
package snapshot

import (
	"errors"
	"fmt"
	"image"
	"io"

	"github.com/gogpu/gg"

	"vecview/internal/geom"
	"vecview/internal/render"
	"vecview/internal/rgb"
)

// DefaultLineWidth is the stroke width in pixels.
const DefaultLineWidth = 1.5

// Canvas implements render.Pipeline on a gg drawing context.
type Canvas struct {
	render.State

	dc         *gg.Context
	vp         geom.Viewport
	background gg.RGBA
	lineWidth  float64
	draws      int
	frames     int
	err        error
}

var _ render.Pipeline = (*Canvas)(nil)

// New returns a w x h pixel canvas. A non-positive lineWidth selects
// DefaultLineWidth.
func New(w, h int, background rgb.RGB, lineWidth float64) (*Canvas, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("snapshot: invalid size %dx%d", w, h)
	}
	if lineWidth <= 0 {
		lineWidth = DefaultLineWidth
	}
	bg := background.Colorful()
	return &Canvas{
		dc:         gg.NewContext(w, h),
		vp:         geom.Viewport{Width: float64(w), Height: float64(h)},
		background: gg.RGB(bg.R, bg.G, bg.B),
		lineWidth:  lineWidth,
	}, nil
}

func (c *Canvas) ClearFrame() {
	c.dc.ClearWithColor(c.background)
	c.draws = 0
	c.err = nil
}

// DrawLinePrimitive strokes the bound vertices through the vertex stage.
func (c *Canvas) DrawLinePrimitive() {
	c.draws++
	x0, y0, x1, y1 := c.Line()
	px0, py0 := c.vp.ToPixel(geom.Point{X: float64(x0), Y: float64(y0)})
	px1, py1 := c.vp.ToPixel(geom.Point{X: float64(x1), Y: float64(y1)})
	c.dc.SetRGBA(float64(c.Color[0]), float64(c.Color[1]), float64(c.Color[2]), float64(c.Color[3]))
	c.dc.SetLineWidth(c.lineWidth)
	c.dc.DrawLine(px0, py0, px1, py1)
	if err := c.dc.Stroke(); err != nil && c.err == nil {
		c.err = err
	}
}

func (c *Canvas) Flush() { c.frames++ }

// Err returns the first stroke error of the current frame.
func (c *Canvas) Err() error { return c.err }

// Draws is the number of line draw calls in the current frame.
func (c *Canvas) Draws() int { return c.draws }

// Frames is the number of flushed frames.
func (c *Canvas) Frames() int { return c.frames }

// Image returns the last rendered frame.
func (c *Canvas) Image() image.Image { return c.dc.Image() }

// EncodePNG writes the last frame as PNG.
func (c *Canvas) EncodePNG(w io.Writer) error {
	if c.frames == 0 {
		return errors.New("snapshot: no frame rendered")
	}
	return c.dc.EncodePNG(w)
}

// SavePNG writes the last frame to path.
func (c *Canvas) SavePNG(path string) error {
	if c.frames == 0 {
		return errors.New("snapshot: no frame rendered")
	}
	if err := c.dc.SavePNG(path); err != nil {
		return fmt.Errorf("snapshot: save %s: %w", path, err)
	}
	return nil
}

// Close releases the drawing context.
func (c *Canvas) Close() error { return c.dc.Close() }

// Options configures Export.
type Options struct {
	Width      int
	Height     int
	Background rgb.RGB
	LineWidth  float64
}

// Export renders one frame of sc as seen by cam and saves it to path.
func Export(path string, cam render.Camera, sc render.Scene, opts Options) error {
	c, err := New(opts.Width, opts.Height, opts.Background, opts.LineWidth)
	if err != nil {
		return err
	}
	defer c.Close()
	render.Frame(c, cam, sc)
	if err := c.Err(); err != nil {
		return fmt.Errorf("snapshot: render: %w", err)
	}
	return c.SavePNG(path)
}
