// Package raster is a software line pipeline that rasterizes into a
// terminal braille grid. Each cell keeps the color of the last line drawn
// through it, so later segments paint over earlier ones.
package raster

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"vecview/internal/geom"
	"vecview/internal/render"
	"vecview/internal/rgb"
)

// Canvas implements render.Pipeline over a braille buffer of w x h cells.
type Canvas struct {
	render.State

	buf        *brailleBuf
	background rgb.RGB
	draws      int
	frames     int
}

var _ render.Pipeline = (*Canvas)(nil)

// New returns a canvas of w x h cells painted on background.
func New(w, h int, background rgb.RGB) *Canvas {
	c := &Canvas{background: background}
	c.Resize(w, h)
	return c
}

// Resize reallocates the buffer. The next frame repaints it.
func (c *Canvas) Resize(w, h int) {
	c.buf = newBrailleBuf(max(w, 0), max(h, 0))
}

// Size returns the canvas size in cells.
func (c *Canvas) Size() (w, h int) {
	return c.buf.w, c.buf.h
}

// Viewport maps micro-pixels to display space. A braille dot is roughly
// square on a typical terminal font, so the display square stays square.
func (c *Canvas) Viewport() geom.Viewport {
	return geom.Viewport{Width: float64(c.buf.w * 2), Height: float64(c.buf.h * 4)}
}

// CellToDisplay maps the center of a terminal cell to display space.
func (c *Canvas) CellToDisplay(col, row int) geom.Point {
	return c.Viewport().ToDisplay(float64(col*2)+1, float64(row*4)+2)
}

func (c *Canvas) ClearFrame() {
	c.buf.clear()
	c.draws = 0
}

// DrawLinePrimitive rasterizes the bound vertices with the current uniforms.
func (c *Canvas) DrawLinePrimitive() {
	c.draws++
	vp := c.Viewport()
	if vp.Empty() {
		return
	}
	x0, y0, x1, y1 := c.Line()
	px0, py0 := vp.ToPixel(geom.Point{X: float64(x0), Y: float64(y0)})
	px1, py1 := vp.ToPixel(geom.Point{X: float64(x1), Y: float64(y1)})
	if anyNaN(px0, py0, px1, py1) {
		return
	}
	px0, py0, px1, py1, ok := clipLine(px0, py0, px1, py1, vp.Width-1, vp.Height-1)
	if !ok {
		return
	}
	col := rgb.FromUniform(c.Color[0], c.Color[1], c.Color[2])
	key := colorKey{uint8(col.R), uint8(col.G), uint8(col.B)}
	c.buf.drawLineMicro(round(px0), round(py0), round(px1), round(py1), key)
}

func (c *Canvas) Flush() { c.frames++ }

// Draws is the number of line draw calls in the current frame.
func (c *Canvas) Draws() int { return c.draws }

// Frames is the number of flushed frames.
func (c *Canvas) Frames() int { return c.frames }

// Lines returns the frame as plain braille text, one string per row.
func (c *Canvas) Lines() []string {
	return c.buf.toLines()
}

// View renders the frame with per-cell stroke colors on the background.
// Runs of cells sharing a color are styled together.
func (c *Canvas) View() string {
	bg := lipgloss.Color(c.background.Hex())
	rows := make([]string, c.buf.h)
	var sb strings.Builder
	for y := 0; y < c.buf.h; y++ {
		sb.Reset()
		var (
			run    []rune
			runKey colorKey
		)
		emit := func() {
			if len(run) == 0 {
				return
			}
			fg := rgb.RGB{R: float64(runKey[0]), G: float64(runKey[1]), B: float64(runKey[2])}
			sb.WriteString(lipgloss.NewStyle().
				Foreground(lipgloss.Color(fg.Hex())).
				Background(bg).
				Render(string(run)))
			run = run[:0]
		}
		for x := 0; x < c.buf.w; x++ {
			key := c.buf.color[y][x]
			if c.buf.m[y][x] == 0 {
				key = runKey
			}
			if len(run) > 0 && key != runKey {
				emit()
			}
			runKey = key
			run = append(run, c.buf.glyph(x, y))
		}
		emit()
		rows[y] = sb.String()
	}
	return strings.Join(rows, "\n")
}

func round(v float64) int { return int(math.Round(v)) }

func anyNaN(vs ...float64) bool {
	for _, v := range vs {
		if math.IsNaN(v) {
			return true
		}
	}
	return false
}
