package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"vecview/internal/viewer"
)

func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	l := m.layout()

	// Header, with the bounds warning on the right when raised
	header := titleStyle.Render(" vecview ─ vector line viewer ")
	if m.ctrl.BoundsOverrun() {
		warn := warnStyle.Render(" ⚠ " + viewer.OverrunWarning + " ")
		gap := max(1, l.contentW-lipgloss.Width(header)-lipgloss.Width(warn))
		header = lipgloss.JoinHorizontal(lipgloss.Top, header, strings.Repeat(" ", gap), warn)
	}
	header = lipgloss.NewStyle().Width(l.contentW).MaxHeight(headerHeight).Render(header)

	// Sidebar
	var sidebar string
	if m.showSidebar {
		m.l.SetSize(sidebarWidth-2, l.contentH-2)
		sidebar = lipgloss.NewStyle().Width(sidebarWidth).Render(m.l.View())
	}

	// Canvas area
	var mapView string
	switch {
	case m.showTable:
		maxW := min(l.mapW, max(32, tableWidth()+4))
		m.tbl.SetWidth(maxW - 4)
		m.tbl.SetHeight(min(l.mapH-2, 20))
		box := boxStyle.Width(maxW).Render(m.tbl.View())
		mapView = lipgloss.Place(l.mapW, l.mapH, lipgloss.Center, lipgloss.Center, box)
	case m.pasteMode:
		m.ta.SetWidth(l.mapW)
		m.ta.SetHeight(min(l.mapH, 12))
		mapView = lipgloss.NewStyle().Width(l.mapW).Height(l.mapH).Render(m.ta.View())
	case m.infoPopup != "":
		box := boxStyle.MaxWidth(min(56, l.mapW)).Render(m.infoPopup)
		mapView = lipgloss.Place(l.mapW, l.mapH, lipgloss.Left, lipgloss.Center, box)
	default:
		mapView = lipgloss.NewStyle().Width(l.mapW).Height(l.mapH).Render(m.renderCanvas(l.mapW, l.mapH))
	}

	// Body row
	body := mapView
	if m.showSidebar {
		body = lipgloss.JoinHorizontal(lipgloss.Top, sidebar, " ", mapView)
	}

	// Footer: status line and help, scene coordinates at bottom-right
	status := dimStyle.Render(" " + m.status + " ")
	if m.rateMode {
		status = " " + m.rate.View() + " "
	}
	var flags []string
	if m.persist {
		flags = append(flags, "persist")
	}
	if m.ctrl.Tool().Armed() {
		flags = append(flags, "armed")
	}
	if m.ctrl.ShowFrame() {
		flags = append(flags, "frame")
	}
	if len(flags) > 0 {
		status += accentStyle.Render("[" + strings.Join(flags, " ") + "] ")
	}
	coords := ""
	if m.hoverOK {
		coords = dimStyle.Render(fmt.Sprintf("  x=%.3f y=%.3f  ", m.hoverX, m.hoverY))
	}
	spacerW := max(0, l.contentW-lipgloss.Width(status)-lipgloss.Width(coords))
	line1 := lipgloss.JoinHorizontal(lipgloss.Bottom, status, strings.Repeat(" ", spacerW), coords)
	footer := lipgloss.NewStyle().Width(l.contentW).Render(lipgloss.JoinVertical(lipgloss.Left, line1, m.renderHelp()))

	ui := lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
	return appStyle.Width(l.contentW).Height(m.height).Render(ui)
}

func (m Model) renderHelp() string {
	if !m.helpVisible {
		return ""
	}
	keys := []string{
		"drag/↑↓←→ pan",
		"wheel rotate",
		"shift+wheel/+- zoom",
		"[ ] rotate",
		"right-click draw",
		"c persist",
		"f frame",
		"r reset",
		"x erase",
		"Tab files",
		"p paste",
		"t segments",
		"F fps",
		"e export",
		"i info",
		"q quit",
	}
	return dimStyle.Render(" " + strings.Join(keys, "  "))
}
