package tui

import (
	"fmt"
	"strings"

	"vecview/internal/geom"
)

const (
	sidebarWidth = 28
	headerHeight = 1
	footerHeight = 2
)

// layout is the screen placement of the canvas. Update and View both use
// it so pointer cells and drawn cells agree.
type layout struct {
	contentW, contentH int
	mapX, mapY         int
	mapW, mapH         int
}

func (m Model) layout() layout {
	l := layout{
		contentW: max(10, m.width),
		contentH: max(4, m.height-headerHeight-footerHeight),
		mapY:     headerHeight,
	}
	if m.showSidebar {
		l.mapX = sidebarWidth + 1
	}
	l.mapW = max(8, l.contentW-l.mapX)
	l.mapH = l.contentH
	return l
}

func (l layout) contains(x, y int) bool {
	return x >= l.mapX && x < l.mapX+l.mapW && y >= l.mapY && y < l.mapY+l.mapH
}

// resize fits the canvas to the map area and schedules a repaint.
func (m *Model) resize() {
	l := m.layout()
	if w, h := m.canvas.Size(); w == l.mapW && h == l.mapH {
		return
	}
	m.canvas.Resize(l.mapW, l.mapH)
	m.ctrl.Loop().MarkDirty()
	if m.showSidebar {
		m.l.SetSize(sidebarWidth-2, l.contentH-2)
	}
}

// displayAt maps a terminal cell to display space. ok is false outside the
// canvas.
func (m Model) displayAt(x, y int) (geom.Point, bool) {
	l := m.layout()
	if !l.contains(x, y) {
		return geom.Point{}, false
	}
	return m.canvas.CellToDisplay(x-l.mapX, y-l.mapY), true
}

// renderCanvas returns the last frame, or a blank area before the first.
func (m Model) renderCanvas(w, h int) string {
	if m.frame != "" {
		return m.frame
	}
	row := strings.Repeat(" ", w)
	lines := make([]string, h)
	for i := range lines {
		lines[i] = row
	}
	return strings.Join(lines, "\n")
}

// describe builds the info popup for the current document and camera.
func (m Model) describe() string {
	cam := m.ctrl.Camera()
	sc := m.ctrl.Scene()
	name, bbox := "<none>", "-"
	if doc := m.ctrl.Document(); doc != nil {
		name = doc.Name
		if doc.BBox != nil {
			bbox = doc.BBox.String()
		}
	}
	off := cam.Offset()
	pending := "-"
	if p, ok := m.ctrl.Tool().Pending(); ok {
		pending = fmt.Sprintf("(%.3f, %.3f)", p.X, p.Y)
	}
	meta := []string{
		fmt.Sprintf("name: %s", name),
		fmt.Sprintf("path: %s", m.selPath),
		fmt.Sprintf("viewbox: %s", bbox),
		fmt.Sprintf("segments: loaded=%d drawn=%d", len(sc.Loaded()), len(sc.Drawn())),
		fmt.Sprintf("zoom: %.3f  rotation: %.0f°", cam.Zoom(), cam.RotationDegrees()),
		fmt.Sprintf("offset: (%.3f, %.3f)", off.X, off.Y),
		fmt.Sprintf("pending point: %s", pending),
		fmt.Sprintf("renders: %d @ %d fps", m.ctrl.Loop().Renders(), m.ctrl.Loop().Rate()),
	}
	return strings.Join(meta, "\n")
}
