package snapshot

import (
	"bytes"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vecview/internal/geom"
	"vecview/internal/render"
	"vecview/internal/rgb"
)

type segments []geom.Segment

func (s segments) Each(fn func(geom.Segment)) {
	for _, seg := range s {
		fn(seg)
	}
}

type identity struct{}

func (identity) Zoom() float64            { return 1 }
func (identity) Offset() geom.Point       { return geom.Point{} }
func (identity) RotationRadians() float64 { return 0 }

func rgb8(c interface{ RGBA() (r, g, b, a uint32) }) (uint32, uint32, uint32) {
	r, g, b, _ := c.RGBA()
	return r >> 8, g >> 8, b >> 8
}

func TestRenderLine(t *testing.T) {
	c, err := New(40, 40, rgb.Decode("#FFFFFF"), 4)
	require.NoError(t, err)
	defer c.Close()

	render.Frame(c, identity{}, segments{{X1: -1, Y1: 0, X2: 1, Y2: 0, Stroke: "#FF0000"}})
	require.NoError(t, c.Err())
	assert.Equal(t, 1, c.Draws())
	assert.Equal(t, 1, c.Frames())

	img := c.Image()
	r, g, b := rgb8(img.At(20, 20))
	assert.Greater(t, r, uint32(200))
	assert.Less(t, g, uint32(80))
	assert.Less(t, b, uint32(80))

	r, g, b = rgb8(img.At(20, 2))
	assert.Equal(t, [3]uint32{255, 255, 255}, [3]uint32{r, g, b})
}

func TestEncodePNG(t *testing.T) {
	c, err := New(16, 8, rgb.Black, 0)
	require.NoError(t, err)
	defer c.Close()

	var buf bytes.Buffer
	assert.Error(t, c.EncodePNG(&buf))

	render.Frame(c, identity{}, segments{})
	require.NoError(t, c.EncodePNG(&buf))
	img, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, 16, img.Bounds().Dx())
	assert.Equal(t, 8, img.Bounds().Dy())
}

func TestExport(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.png")
	err := Export(path, identity{}, segments{{X1: -1, Y1: -1, X2: 1, Y2: 1}}, Options{
		Width:      32,
		Height:     32,
		Background: rgb.Decode("#FFFFFF"),
	})
	require.NoError(t, err)
	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Positive(t, info.Size())

	err = Export(path, identity{}, segments{}, Options{})
	assert.Error(t, err)
}
