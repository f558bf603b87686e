package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	list "github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"vecview/internal/geom"
	"vecview/internal/ingest"
	"vecview/internal/snapshot"
	"vecview/internal/watch"
)

type fileItem struct {
	title, desc string
	path        string
}

func (f fileItem) Title() string       { return f.title }
func (f fileItem) Description() string { return f.desc }
func (f fileItem) FilterValue() string { return f.title }

func (m *Model) refreshDir() {
	entries, err := os.ReadDir(m.cwd)
	if err != nil {
		m.status = "read dir error: " + err.Error()
		return
	}
	var items []list.Item
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !ingest.Supported(name) {
			continue
		}
		ext := strings.ToLower(filepath.Ext(name))
		items = append(items, fileItem{title: name, desc: ext, path: filepath.Join(m.cwd, name)})
	}
	sort.SliceStable(items, func(i, j int) bool { return items[i].(fileItem).Title() < items[j].(fileItem).Title() })
	m.items = items
	m.l.SetItems(items)
	if len(items) == 0 {
		m.status = "no supported files in current directory"
	}
}

// loadPath reads p and hands it to the viewer. With watching enabled the
// returned command waits for the next change on disk.
func (m *Model) loadPath(p string) tea.Cmd {
	doc, err := ingest.Load(p)
	if err != nil {
		m.status = "load error: " + err.Error()
		return nil
	}
	if !m.loadDocument(doc) {
		return nil
	}
	m.selPath = p
	if !m.cfg.Watch {
		return nil
	}
	return m.watch(p)
}

// loadDocument replaces the scene and reports success in the status line.
func (m *Model) loadDocument(doc geom.Document) bool {
	if err := m.ctrl.Load(doc); err != nil {
		m.status = "load error: " + err.Error()
		return false
	}
	m.infoPopup = ""
	m.status = fmt.Sprintf("loaded: %s  segments=%d", doc.Name, len(doc.Segments))
	if m.showTable {
		m.refreshTable()
	}
	return true
}

func (m *Model) watch(p string) tea.Cmd {
	abs, _ := filepath.Abs(p)
	if m.watcher != nil {
		if m.watcher.Path() == abs {
			return nil
		}
		_ = m.watcher.Close()
		m.watcher = nil
	}
	w, err := watch.New(p)
	if err != nil {
		m.status = "watch error: " + err.Error()
		return nil
	}
	m.watcher = w
	return w.Cmd()
}

// reload re-reads the watched file after a change on disk.
func (m *Model) reload(msg watch.ChangedMsg) tea.Cmd {
	if m.watcher == nil || m.watcher.Path() != msg.Path {
		return nil
	}
	next := m.watcher.Cmd()
	doc, err := ingest.Load(msg.Path)
	if err != nil {
		m.status = "reload error: " + err.Error()
		return next
	}
	if m.loadDocument(doc) {
		m.status = "reloaded: " + doc.Name
	}
	return next
}

// exportPNG writes the current view next to the open file, or into the
// working directory for pasted content.
func (m *Model) exportPNG() {
	name := "vecview"
	dir := m.cwd
	if doc := m.ctrl.Document(); doc != nil && doc.Name != "" {
		name = strings.TrimSuffix(doc.Name, filepath.Ext(doc.Name))
	}
	if m.selPath != "" {
		dir = filepath.Dir(m.selPath)
	}
	out := filepath.Join(dir, name+".png")
	err := snapshot.Export(out, m.ctrl.Camera(), m.ctrl.Scene(), snapshot.Options{
		Width:      m.cfg.WindowWidth,
		Height:     m.cfg.WindowHeight,
		Background: m.cfg.Background(),
		LineWidth:  m.cfg.LineWidth,
	})
	if err != nil {
		m.status = "export error: " + err.Error()
		return
	}
	m.log.Info("exported frame", "path", out)
	m.status = "exported: " + out
}
