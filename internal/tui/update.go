package tui

import (
	"fmt"
	"strconv"
	"strings"

	list "github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"vecview/internal/geom"
	"vecview/internal/ingest"
	"vecview/internal/watch"
)

// panStep is the keyboard pan distance in display units.
const panStep = 0.1

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()
	case tickMsg:
		if m.ctrl.Tick() {
			m.frame = m.canvas.View()
		}
		return m, tick(m.ctrl.Loop().Period())
	case watch.ChangedMsg:
		return m, m.reload(msg)
	case watch.ErrorMsg:
		m.status = "watch error: " + msg.Err.Error()
		if m.watcher != nil {
			return m, m.watcher.Cmd()
		}
		return m, nil
	case tea.KeyMsg:
		// If list is visible and filtering, send keys to list and ignore global commands
		if m.showSidebar && m.l.FilterState() == list.Filtering {
			var cmd tea.Cmd
			m.l, cmd = m.l.Update(msg)
			return m, cmd
		}
		if m.pasteMode {
			return m.updatePaste(msg)
		}
		if m.rateMode {
			return m.updateRate(msg)
		}
		if m.showTable {
			switch msg.String() {
			case "t", "esc":
				m.showTable = false
				return m, nil
			case "ctrl+c", "q":
				return m, tea.Quit
			}
			var cmd tea.Cmd
			m.tbl, cmd = m.tbl.Update(msg)
			return m, cmd
		}
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "+", "=":
			m.ctrl.Wheel(-1, true)
			m.status = fmt.Sprintf("zoom: %.2fx", m.ctrl.Camera().Zoom())
		case "-", "_":
			m.ctrl.Wheel(1, true)
			m.status = fmt.Sprintf("zoom: %.2fx", m.ctrl.Camera().Zoom())
		case "]":
			m.ctrl.Wheel(1, false)
			m.status = fmt.Sprintf("rotation: %.0f°", m.ctrl.Camera().RotationDegrees())
		case "[":
			m.ctrl.Wheel(-1, false)
			m.status = fmt.Sprintf("rotation: %.0f°", m.ctrl.Camera().RotationDegrees())
		case "up":
			m.pan(0, panStep)
		case "down":
			m.pan(0, -panStep)
		case "left":
			m.pan(-panStep, 0)
		case "right":
			m.pan(panStep, 0)
		case "esc":
			m.ctrl.DragCancel()
			m.infoPopup = ""
		case "r":
			m.ctrl.Reset()
			m.status = "view reset"
		case "x":
			m.ctrl.Erase()
			m.status = "scene erased"
		case "f":
			if err := m.ctrl.SetShowFrame(!m.ctrl.ShowFrame()); err != nil {
				m.status = "frame: " + err.Error()
			} else {
				m.status = fmt.Sprintf("viewbox frame: %v", m.ctrl.ShowFrame())
			}
		case "c":
			m.persist = !m.persist
			m.ctrl.SetPersist(m.persist)
			m.status = fmt.Sprintf("persist: %v", m.persist)
		case "tab":
			m.showSidebar = !m.showSidebar
			if m.showSidebar {
				m.refreshDir()
			}
			m.resize()
		case "p":
			m.pasteMode = true
			m.ta.SetValue("")
			m.status = "paste mode"
			m.ta.Focus()
		case "F":
			m.rateMode = true
			m.rate.SetValue(strconv.Itoa(m.ctrl.Loop().Rate()))
			m.rate.Focus()
			m.status = "frame rate"
		case "t":
			m.showTable = true
			m.refreshTable()
		case "e":
			m.exportPNG()
		case "i":
			if m.infoPopup == "" {
				m.infoPopup = m.describe()
			} else {
				m.infoPopup = ""
			}
		case "h":
			m.helpVisible = !m.helpVisible
		case "enter":
			if m.showSidebar {
				if it, ok := m.l.SelectedItem().(fileItem); ok {
					return m, m.loadPath(it.path)
				}
			}
		}
	case tea.MouseMsg:
		m.updateMouse(msg)
		return m, nil
	}
	// Pass messages to list when visible
	if m.showSidebar {
		var cmd tea.Cmd
		m.l, cmd = m.l.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *Model) updatePaste(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.pasteMode = false
		m.ta.Blur()
		return *m, nil
	case "enter":
		doc, err := ingest.ParseText(m.ta.Value())
		if err != nil {
			m.status = "paste error: " + err.Error()
			return *m, nil
		}
		if m.loadDocument(doc) {
			m.selPath = ""
			m.stopWatch()
		}
		m.pasteMode = false
		m.ta.Blur()
		return *m, nil
	}
	var cmd tea.Cmd
	m.ta, cmd = m.ta.Update(msg)
	return *m, cmd
}

func (m *Model) updateRate(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.rateMode = false
		m.rate.Blur()
		return *m, nil
	case "enter":
		fps, err := strconv.Atoi(strings.TrimSpace(m.rate.Value()))
		if err == nil {
			err = m.ctrl.SetFrameRate(fps)
		}
		if err != nil {
			m.status = "frame rate: " + err.Error()
			return *m, nil
		}
		m.status = fmt.Sprintf("frame rate: %d fps", fps)
		m.rateMode = false
		m.rate.Blur()
		return *m, nil
	}
	var cmd tea.Cmd
	m.rate, cmd = m.rate.Update(msg)
	return *m, cmd
}

// updateMouse maps terminal mouse events to the viewer input surface:
// left drag pans, right click draws, the wheel rotates, and the wheel with
// a modifier zooms.
func (m *Model) updateMouse(msg tea.MouseMsg) {
	p, inside := m.displayAt(msg.X, msg.Y)
	m.hoverOK = inside
	if inside {
		sp := m.ctrl.Camera().ToSceneSpace(p)
		m.hoverX, m.hoverY = sp.X, sp.Y
	}
	dragging := m.ctrl.Camera().Dragging()
	switch msg.Action {
	case tea.MouseActionRelease:
		if dragging {
			m.ctrl.DragEnd()
		}
	case tea.MouseActionMotion:
		if !dragging {
			return
		}
		if !inside {
			m.ctrl.Leave()
			return
		}
		m.ctrl.DragMove(p)
	case tea.MouseActionPress:
		if !inside {
			return
		}
		modifier := msg.Shift || msg.Ctrl || msg.Alt
		switch msg.Button {
		case tea.MouseButtonLeft:
			m.ctrl.DragStart(p)
		case tea.MouseButtonRight:
			m.ctrl.DrawTrigger(p, m.persist)
		case tea.MouseButtonWheelUp:
			m.ctrl.Wheel(-1, modifier)
		case tea.MouseButtonWheelDown:
			m.ctrl.Wheel(1, modifier)
		}
	}
}

func (m *Model) pan(dx, dy float64) {
	m.ctrl.Pan(geom.Point{X: dx, Y: dy})
}

func (m *Model) stopWatch() {
	if m.watcher != nil {
		_ = m.watcher.Close()
		m.watcher = nil
	}
}
