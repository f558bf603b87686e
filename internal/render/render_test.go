package render

import (
	"bytes"
	"log/slog"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vecview/internal/camera"
	"vecview/internal/geom"
	"vecview/internal/scene"
)

func TestDrawSegment(t *testing.T) {
	var r Recorder
	DrawSegment(&r, geom.Segment{X1: -1, Y1: 0.5, X2: 1, Y2: -0.5, Stroke: "#FF0000"})
	require.Equal(t, []Op{OpUpload, OpColor, OpDraw}, r.Ops())
	assert.Equal(t, []float32{-1, 0.5, 1, -0.5}, r.Calls[0].Args)
	assert.Equal(t, []float32{1, 0, 0, 1}, r.Calls[1].Args)

	r.Reset()
	DrawSegment(&r, geom.Segment{Stroke: "not-a-color"})
	assert.Equal(t, []float32{0, 0, 0, 1}, r.Calls[1].Args)
}

func TestFrameOrder(t *testing.T) {
	cam := camera.New(camera.DefaultOptions())
	cam.ZoomBy(-1)
	cam.RotateBy(1)
	st := scene.New()
	st.AppendDrawn(geom.Segment{Stroke: "#0000ff"})
	st.Replace([]geom.Segment{{Stroke: "#ff0000"}, {Stroke: "#00ff00"}}, false)

	var r Recorder
	Frame(&r, cam, st)
	assert.Equal(t, []Op{
		OpClear, OpZoom, OpOffset, OpRotation,
		OpUpload, OpColor, OpDraw,
		OpUpload, OpColor, OpDraw,
		OpUpload, OpColor, OpDraw,
		OpFlush,
	}, r.Ops())
	assert.InDelta(t, 1.1, r.Calls[1].Args[0], 1e-6)
	assert.InDelta(t, 5*math.Pi/180, r.Calls[3].Args[0], 1e-6)
	// color uniforms follow render order: loaded red, loaded green, drawn blue
	assert.Equal(t, []float32{1, 0, 0, 1}, r.Calls[5].Args)
	assert.Equal(t, []float32{0, 1, 0, 1}, r.Calls[8].Args)
	assert.Equal(t, []float32{0, 0, 1, 1}, r.Calls[11].Args)
	assert.Equal(t, 1, r.Frames)
}

func TestLoopCoalesces(t *testing.T) {
	renders := 0
	l, err := NewLoop(DefaultRate, func() { renders++ })
	require.NoError(t, err)
	assert.Equal(t, time.Second/24, l.Period())

	assert.False(t, l.Tick(), "clean ticks do nothing")
	for i := 0; i < 50; i++ {
		l.MarkDirty()
	}
	assert.True(t, l.Tick())
	assert.False(t, l.Tick())
	assert.Equal(t, 1, renders)
	assert.Equal(t, uint64(1), l.Renders())
	assert.False(t, l.Dirty())
}

func TestLoopRate(t *testing.T) {
	_, err := NewLoop(0, nil)
	assert.ErrorIs(t, err, ErrRate)

	l, err := NewLoop(10, nil)
	require.NoError(t, err)
	assert.ErrorIs(t, l.SetRate(-3), ErrRate)
	assert.Equal(t, 10, l.Rate())
	require.NoError(t, l.SetRate(60))
	assert.Equal(t, time.Second/60, l.Period())
}

func TestVertexMatchesCamera(t *testing.T) {
	cam := camera.New(camera.DefaultOptions())
	for i := 0; i < 7; i++ {
		cam.ZoomBy(-1)
		cam.RotateBy(1)
	}
	cam.BeginDrag(geom.Point{})
	cam.ContinueDrag(geom.Point{X: 0.3, Y: -0.2})

	var s statePipeline
	Frame(&s, cam, scene.New())
	for _, p := range []geom.Point{{X: 0.5, Y: 0.5}, {X: -1, Y: 0.25}} {
		want := cam.ToCameraSpace(p)
		x, y := s.Uniforms.Vertex(float32(p.X), float32(p.Y))
		assert.InDelta(t, want.X, x, 1e-5)
		assert.InDelta(t, want.Y, y, 1e-5)
	}
}

func TestTraced(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	var r Recorder
	st := scene.New()
	st.Replace([]geom.Segment{{Stroke: "#ff0000"}}, false)
	Frame(Traced(&r, log), camera.New(camera.DefaultOptions()), st)
	assert.Equal(t, 1, r.Frames)
	assert.Contains(t, buf.String(), "draws=1")
}

type statePipeline struct{ State }

func (*statePipeline) ClearFrame()        {}
func (*statePipeline) DrawLinePrimitive() {}
func (*statePipeline) Flush()             {}
