// Package window hosts the viewer in a desktop window with ebiten.
package window

import (
	"context"
	"errors"
	"image"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"vecview/internal/config"
	"vecview/internal/geom"
	"vecview/internal/ingest"
	"vecview/internal/snapshot"
	"vecview/internal/viewer"
	"vecview/internal/watch"
)

// Game is the ebiten host. ebiten calls Update on one goroutine at the
// frame rate, which makes each Update a render loop tick.
type Game struct {
	cfg     config.Config
	log     *slog.Logger
	ctrl    *viewer.Controller
	surface *Surface
	pointer *viewer.Pointer
	persist bool
	path    string

	reloads chan string
	cancel  context.CancelFunc
}

// NewGame builds the host and loads path when it is not empty.
func NewGame(cfg config.Config, log *slog.Logger, path string) (*Game, error) {
	if log == nil {
		log = slog.Default()
	}
	g := &Game{
		cfg:     cfg,
		log:     log,
		surface: NewSurface(cfg.Background(), cfg.LineWidth),
		persist: cfg.Persist,
	}
	ctrl, err := viewer.New(g.surface, cfg.ViewerOptions(log))
	if err != nil {
		return nil, err
	}
	ctrl.SetPersist(cfg.Persist)
	ctrl.OnBoundsOverrun = func(bool) { g.updateTitle() }
	g.ctrl = ctrl
	g.pointer = viewer.NewPointer(ctrl, func() bool { return g.persist })
	if path != "" {
		if err := g.load(path); err != nil {
			return nil, err
		}
	}
	return g, nil
}

// updateTitle shows the open file and the bounds warning.
func (g *Game) updateTitle() {
	ebiten.SetWindowTitle(viewer.Title(g.path, g.ctrl.BoundsOverrun()))
}

func (g *Game) load(path string) error {
	doc, err := ingest.Load(path)
	if err != nil {
		return err
	}
	g.path = path
	return g.ctrl.Load(doc)
}

// Run opens the window and blocks until it closes.
func Run(cfg config.Config, log *slog.Logger, path string) error {
	g, err := NewGame(cfg, log, path)
	if err != nil {
		return err
	}
	defer g.stopWatch()
	if cfg.Watch && path != "" {
		if err := g.startWatch(path); err != nil {
			log.Warn("watch disabled", "error", err)
		}
	}
	g.updateTitle()
	ebiten.SetWindowSize(cfg.WindowWidth, cfg.WindowHeight)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(cfg.FrameRate)
	err = ebiten.RunGame(g)
	if errors.Is(err, ebiten.Termination) {
		return nil
	}
	return err
}

// startWatch forwards settled file changes to Update.
func (g *Game) startWatch(path string) error {
	w, err := watch.New(path)
	if err != nil {
		return err
	}
	ctx, cancel := context.WithCancel(context.Background())
	g.reloads = make(chan string, 1)
	g.cancel = func() {
		cancel()
		w.Close()
	}
	go func() {
		for {
			if err := w.Next(ctx); err != nil {
				if ctx.Err() == nil && !errors.Is(err, watch.ErrClosed) {
					g.log.Warn("watch stopped", "error", err)
				}
				return
			}
			select {
			case g.reloads <- w.Path():
			default:
			}
		}
	}()
	return nil
}

func (g *Game) stopWatch() {
	if g.cancel != nil {
		g.cancel()
	}
}

func (g *Game) Update() error {
	select {
	case p := <-g.reloads:
		if err := g.load(p); err != nil {
			g.log.Warn("reload failed", "path", p, "error", err)
		}
	default:
	}
	if err := g.handleKeys(); err != nil {
		return err
	}
	g.pointer.Apply(sample(), g.surface.Viewport())
	g.ctrl.Tick()
	return nil
}

func sample() viewer.PointerSample {
	x, y := ebiten.CursorPosition()
	w, h := ebiten.WindowSize()
	_, wy := ebiten.Wheel()
	mod := ebiten.IsKeyPressed(ebiten.KeyShift) ||
		ebiten.IsKeyPressed(ebiten.KeyControl) ||
		ebiten.IsKeyPressed(ebiten.KeyAlt)
	return viewer.PointerSample{
		X:         float64(x),
		Y:         float64(y),
		Inside:    image.Pt(x, y).In(image.Rect(0, 0, w, h)),
		LeftDown:  inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft),
		LeftHeld:  ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
		LeftUp:    inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft),
		RightDown: inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight),
		WheelY:    wy,
		Modifier:  mod,
	}
}

const panStep = 0.1

func (g *Game) handleKeys() error {
	pressed := inpututil.IsKeyJustPressed
	switch {
	case pressed(ebiten.KeyQ):
		return ebiten.Termination
	case pressed(ebiten.KeyEscape):
		g.ctrl.DragCancel()
	case pressed(ebiten.KeyR):
		g.ctrl.Reset()
	case pressed(ebiten.KeyX):
		g.ctrl.Erase()
	case pressed(ebiten.KeyF):
		if err := g.ctrl.SetShowFrame(!g.ctrl.ShowFrame()); err != nil {
			g.log.Warn("frame toggle", "error", err)
		}
	case pressed(ebiten.KeyC):
		g.persist = !g.persist
		g.ctrl.SetPersist(g.persist)
	case pressed(ebiten.KeyEqual), pressed(ebiten.KeyKPAdd):
		g.ctrl.Wheel(-1, true)
	case pressed(ebiten.KeyMinus), pressed(ebiten.KeyKPSubtract):
		g.ctrl.Wheel(1, true)
	case pressed(ebiten.KeyBracketRight):
		g.ctrl.Wheel(1, false)
	case pressed(ebiten.KeyBracketLeft):
		g.ctrl.Wheel(-1, false)
	case pressed(ebiten.KeyArrowUp):
		g.pan(0, panStep)
	case pressed(ebiten.KeyArrowDown):
		g.pan(0, -panStep)
	case pressed(ebiten.KeyArrowLeft):
		g.pan(-panStep, 0)
	case pressed(ebiten.KeyArrowRight):
		g.pan(panStep, 0)
	case pressed(ebiten.KeyE):
		g.export()
	}
	return nil
}

func (g *Game) pan(dx, dy float64) {
	g.ctrl.Pan(geom.Point{X: dx, Y: dy})
}

func (g *Game) export() {
	out := "vecview.png"
	if doc := g.ctrl.Document(); doc != nil && doc.Name != "" {
		out = strings.TrimSuffix(doc.Name, filepath.Ext(doc.Name)) + ".png"
	}
	err := snapshot.Export(out, g.ctrl.Camera(), g.ctrl.Scene(), snapshot.Options{
		Width:      g.cfg.WindowWidth,
		Height:     g.cfg.WindowHeight,
		Background: g.cfg.Background(),
		LineWidth:  g.cfg.LineWidth,
	})
	if err != nil {
		g.log.Warn("export failed", "error", err)
		return
	}
	g.log.Info("exported frame", "path", out)
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.surface.Blit(screen)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if g.surface.Resize(outsideWidth, outsideHeight) {
		g.ctrl.Loop().MarkDirty()
	}
	return outsideWidth, outsideHeight
}
