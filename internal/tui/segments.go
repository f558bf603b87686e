package tui

import (
	"fmt"

	table "github.com/charmbracelet/bubbles/table"

	"vecview/internal/geom"
)

var segmentColumns = []table.Column{
	{Title: "#", Width: 5},
	{Title: "set", Width: 6},
	{Title: "x1", Width: 8},
	{Title: "y1", Width: 8},
	{Title: "x2", Width: 8},
	{Title: "y2", Width: 8},
	{Title: "stroke", Width: 9},
}

// refreshTable rebuilds the table from the scene in render order.
func (m *Model) refreshTable() {
	sc := m.ctrl.Scene()
	rows := make([]table.Row, 0, sc.Len())
	add := func(set string, segs []geom.Segment) {
		for _, s := range segs {
			rows = append(rows, table.Row{
				fmt.Sprintf("%d", len(rows)+1),
				set,
				fmt.Sprintf("%.4f", s.X1),
				fmt.Sprintf("%.4f", s.Y1),
				fmt.Sprintf("%.4f", s.X2),
				fmt.Sprintf("%.4f", s.Y2),
				s.Stroke,
			})
		}
	}
	add("loaded", sc.Loaded())
	add("drawn", sc.Drawn())
	// Avoid transient mismatch: clear rows, set columns, then set rows
	m.tbl.SetRows(nil)
	m.tbl.SetColumns(segmentColumns)
	m.tbl.SetRows(rows)
}

func tableWidth() int {
	w := 0
	for _, c := range segmentColumns {
		w += c.Width + 2
	}
	return w
}
