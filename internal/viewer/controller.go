// Package viewer ties the scene, camera, line tool and render loop into the
// single state aggregate that input handlers drive.
package viewer

import (
	"context"
	"fmt"
	"log/slog"

	"vecview/internal/camera"
	"vecview/internal/geom"
	"vecview/internal/render"
	"vecview/internal/scene"
)

// Options configure a Controller.
type Options struct {
	Camera      camera.Options
	FrameRate   int
	DrawStroke  string
	FrameStroke string
	ShowFrame   bool
	Logger      *slog.Logger
}

// Controller owns all mutable viewer state. It must be used from a single
// goroutine: hosts deliver input events and render ticks on the same
// goroutine (the bubbletea Update loop, the ebiten Update loop).
type Controller struct {
	cam   *camera.Camera
	store *scene.Store
	tool  *LineTool
	loop  *render.Loop
	pipe  render.Pipeline
	log   *slog.Logger

	doc         *geom.Document
	showFrame   bool
	frameStroke string
	persist     bool

	// OnBoundsOverrun is called when the bounds warning is raised or cleared.
	OnBoundsOverrun func(raised bool)
}

// New builds a controller rendering into pipe.
func New(pipe render.Pipeline, opts Options) (*Controller, error) {
	if opts.FrameRate == 0 {
		opts.FrameRate = render.DefaultRate
	}
	if opts.FrameStroke == "" {
		opts.FrameStroke = DefaultStroke
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	c := &Controller{
		cam:         camera.New(opts.Camera),
		store:       scene.New(),
		tool:        NewLineTool(opts.DrawStroke),
		log:         opts.Logger,
		showFrame:   opts.ShowFrame,
		frameStroke: opts.FrameStroke,
	}
	loop, err := render.NewLoop(opts.FrameRate, c.render)
	if err != nil {
		return nil, err
	}
	c.loop = loop
	c.SetPipeline(pipe)
	return c, nil
}

func (c *Controller) render() {
	if c.pipe == nil {
		return
	}
	render.Frame(c.pipe, c.cam, c.store)
}

// SetPipeline swaps the render target and schedules a redraw. With debug
// logging enabled every frame is traced.
func (c *Controller) SetPipeline(p render.Pipeline) {
	if p != nil && c.log.Enabled(context.Background(), slog.LevelDebug) {
		p = render.Traced(p, c.log)
	}
	c.pipe = p
	c.loop.MarkDirty()
}

// Tick is the render loop tick. It reports whether a frame was rendered.
func (c *Controller) Tick() bool { return c.loop.Tick() }

// RenderNow renders a frame immediately, whatever the dirty flag says.
func (c *Controller) RenderNow() {
	c.loop.MarkDirty()
	c.loop.Tick()
}

func (c *Controller) Loop() *render.Loop      { return c.loop }
func (c *Controller) Camera() *camera.Camera  { return c.cam }
func (c *Controller) Scene() *scene.Store     { return c.store }
func (c *Controller) Tool() *LineTool         { return c.tool }
func (c *Controller) Document() *geom.Document { return c.doc }

// SetFrameRate changes the render loop rate.
func (c *Controller) SetFrameRate(fps int) error {
	if err := c.loop.SetRate(fps); err != nil {
		return err
	}
	c.log.Info("frame rate changed", "fps", fps)
	return nil
}

// Load replaces the loaded collection with doc. Camera, drawn segments and
// the pending point are reset first. A document that cannot be normalized
// leaves the scene untouched.
func (c *Controller) Load(doc geom.Document) error {
	segs, overrun, err := geom.Normalize(doc, c.showFrame, c.frameStroke)
	if err != nil {
		c.log.Warn("rejecting document", "name", doc.Name, "error", err)
		return fmt.Errorf("load %q: %w", doc.Name, err)
	}
	c.Reset()
	c.tool.Disarm()
	c.store.Replace(segs, overrun)
	c.setOverrun(overrun)
	c.doc = &doc
	c.loop.MarkDirty()
	c.log.Info("document loaded", "name", doc.Name, "segments", len(doc.Segments), "overrun", overrun)
	return nil
}

// Reload normalizes the current document again, e.g. after the frame
// toggle changed. Drawn segments and the camera are kept.
func (c *Controller) Reload() error {
	if c.doc == nil {
		return nil
	}
	segs, overrun, err := geom.Normalize(*c.doc, c.showFrame, c.frameStroke)
	if err != nil {
		return err
	}
	c.store.Replace(segs, overrun)
	c.setOverrun(overrun)
	c.loop.MarkDirty()
	return nil
}

func (c *Controller) setOverrun(raised bool) {
	if c.OnBoundsOverrun != nil {
		c.OnBoundsOverrun(raised)
	}
}

// BoundsOverrun reports whether loaded geometry leaves [-1,1].
func (c *Controller) BoundsOverrun() bool { return c.store.Overrun() }

// DragStart begins a pan at display position p.
func (c *Controller) DragStart(p geom.Point) { c.cam.BeginDrag(p) }

// DragMove continues a pan.
func (c *Controller) DragMove(p geom.Point) {
	if c.cam.ContinueDrag(p) {
		c.loop.MarkDirty()
	}
}

// DragEnd commits the pan.
func (c *Controller) DragEnd() {
	if c.cam.Dragging() {
		c.cam.EndDrag()
	}
}

// Pan shifts the view by a display-space delta without touching a drag in
// progress.
func (c *Controller) Pan(d geom.Point) {
	if c.cam.PanBy(d) {
		c.loop.MarkDirty()
	}
}

// DragCancel abandons the pan and restores the committed offset.
func (c *Controller) DragCancel() {
	if c.cam.CancelDrag() {
		c.loop.MarkDirty()
	}
}

// Leave handles the pointer leaving the surface mid-drag. The pan so far is
// kept, as on release.
func (c *Controller) Leave() { c.DragEnd() }

// Wheel routes a wheel notch: with the modifier held it zooms (deltaY < 0
// zooms in), otherwise it rotates.
func (c *Controller) Wheel(deltaY float64, modifier bool) {
	if modifier {
		if c.cam.ZoomBy(deltaY) {
			c.loop.MarkDirty()
		}
		return
	}
	c.cam.RotateBy(deltaY)
	c.loop.MarkDirty()
}

// DrawTrigger places a line tool point at display position p. persist is
// the host's persist-draw setting at the time of the event.
func (c *Controller) DrawTrigger(p geom.Point, persist bool) {
	c.persist = persist
	sp := c.cam.ToSceneSpace(p)
	seg, done := c.tool.Trigger(sp, persist)
	if !done {
		c.log.Debug("line tool armed", "x", sp.X, "y", sp.Y)
		return
	}
	c.store.AppendDrawn(seg)
	c.loop.MarkDirty()
}

// SetPersist records the persist-draw setting; turning it off drops the
// pending point.
func (c *Controller) SetPersist(on bool) {
	c.persist = on
	if !on {
		c.tool.Disarm()
	}
}

func (c *Controller) Persist() bool { return c.persist }

// SetShowFrame toggles the viewbox outline and rebuilds the loaded set.
func (c *Controller) SetShowFrame(on bool) error {
	if c.showFrame == on {
		return nil
	}
	c.showFrame = on
	return c.Reload()
}

func (c *Controller) ShowFrame() bool { return c.showFrame }

// Reset returns the camera home and drops drawn segments; loaded segments
// stay.
func (c *Controller) Reset() {
	c.cam.Reset()
	c.store.ClearDrawn()
	c.loop.MarkDirty()
}

// Erase drops every segment.
func (c *Controller) Erase() {
	c.store.Clear()
	c.tool.Disarm()
	c.setOverrun(false)
	c.loop.MarkDirty()
}
