package tui

import (
	"log/slog"
	"os"
	"time"

	list "github.com/charmbracelet/bubbles/list"
	table "github.com/charmbracelet/bubbles/table"
	textarea "github.com/charmbracelet/bubbles/textarea"
	textinput "github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"vecview/internal/config"
	"vecview/internal/raster"
	"vecview/internal/viewer"
	"vecview/internal/watch"
)

type Model struct {
	width  int
	height int

	showSidebar bool
	helpVisible bool

	status string

	cfg     config.Config
	log     *slog.Logger
	ctrl    *viewer.Controller
	canvas  *raster.Canvas
	frame   string // last rendered canvas
	persist bool

	// File explorer
	cwd     string
	l       list.Model
	items   []list.Item
	selPath string
	watcher *watch.Watcher

	// paste mode
	pasteMode bool
	ta        textarea.Model

	// frame rate field
	rateMode bool
	rate     textinput.Model

	// info popup
	infoPopup string

	// hover state, in scene space
	hoverOK bool
	hoverX  float64
	hoverY  float64

	// segment table
	showTable bool
	tbl       table.Model
}

// tickMsg drives the render loop.
type tickMsg time.Time

func tick(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg { return tickMsg(t) })
}

func New(cfg config.Config, log *slog.Logger) (Model, error) {
	if log == nil {
		log = slog.Default()
	}
	m := Model{
		helpVisible: true,
		status:      "vecview ready",
		cfg:         cfg,
		log:         log,
		persist:     cfg.Persist,
	}
	m.canvas = raster.New(0, 0, cfg.Background())
	ctrl, err := viewer.New(m.canvas, cfg.ViewerOptions(log))
	if err != nil {
		return Model{}, err
	}
	ctrl.SetPersist(cfg.Persist)
	ctrl.OnBoundsOverrun = func(raised bool) {
		if raised {
			log.Warn(viewer.OverrunWarning)
		}
	}
	m.ctrl = ctrl
	m.cwd, _ = os.Getwd()
	// list setup
	d := list.NewDefaultDelegate()
	d.ShowDescription = false
	m.l = list.New(nil, d, 0, 0)
	m.l.Title = "Files"
	m.l.SetShowHelp(false)
	m.l.SetShowStatusBar(false)
	m.l.SetFilteringEnabled(true)
	// textarea setup
	m.ta = textarea.New()
	m.ta.Placeholder = "Paste SVG markup or WKT (LINESTRING, MULTILINESTRING, POLYGON). Enter renders; Esc cancels."
	m.ta.CharLimit = 0
	m.ta.SetWidth(50)
	m.ta.SetHeight(6)
	// frame rate field
	m.rate = textinput.New()
	m.rate.Prompt = "fps: "
	m.rate.CharLimit = 4
	m.rate.Width = 6
	// segment table setup
	m.tbl = table.New(table.WithFocused(true))
	m.tbl.SetHeight(12)
	m.refreshDir()
	return m, nil
}

// NewWithPath preloads a file at launch.
func NewWithPath(cfg config.Config, log *slog.Logger, path string) (Model, error) {
	m, err := New(cfg, log)
	if err != nil {
		return Model{}, err
	}
	m.loadPath(path)
	return m, nil
}

// Controller exposes the viewer state, mainly for tests and export.
func (m Model) Controller() *viewer.Controller { return m.ctrl }

// Close releases the file watcher.
func (m Model) Close() error {
	if m.watcher == nil {
		return nil
	}
	return m.watcher.Close()
}

func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{tick(m.ctrl.Loop().Period())}
	if m.watcher != nil {
		cmds = append(cmds, m.watcher.Cmd())
	}
	return tea.Batch(cmds...)
}
