package geom

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeScenario(t *testing.T) {
	doc := Document{
		BBox:     &BBox{MinX: 0, MinY: 0, MaxX: 100, MaxY: 50},
		Segments: []RawSegment{{X1: 0, Y1: 0, X2: 100, Y2: 50, Stroke: "#FF0000"}},
	}
	segs, overrun, err := Normalize(doc, false, "")
	require.NoError(t, err)
	require.Len(t, segs, 1)
	assert.False(t, overrun)
	// wide box: X spans [-1,1], Y keeps the 2:1 aspect
	assert.Equal(t, Segment{X1: -1, Y1: 0.5, X2: 1, Y2: -0.5, Stroke: "#FF0000"}, segs[0])
}

func TestNormalizeCorners(t *testing.T) {
	tests := []struct {
		name string
		box  BBox
		w, h float64
	}{
		{"wide", BBox{0, 0, 200, 50}, 1, 0.25},
		{"tall", BBox{0, 0, 30, 120}, 0.25, 1},
		{"offset origin", BBox{-40, 10, 60, 60}, 1, 0.5},
		{"negative domain", BBox{-300, -100, -100, -20}, 1, 0.4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n, err := NewNormalizer(tt.box)
			require.NoError(t, err)
			tl := n.Point(tt.box.MinX, tt.box.MinY)
			br := n.Point(tt.box.MaxX, tt.box.MaxY)
			assert.InDelta(t, -tt.w, tl.X, 1e-12)
			assert.InDelta(t, tt.h, tl.Y, 1e-12)
			assert.InDelta(t, tt.w, br.X, 1e-12)
			assert.InDelta(t, -tt.h, br.Y, 1e-12)
		})
	}
}

func TestNormalizeCenterIsOrigin(t *testing.T) {
	for _, b := range []BBox{
		{0, 0, 100, 50},
		{10, 20, 30, 60},
		{-5, -5, 5, 5},
		{1e6, 2e6, 1e6 + 3, 2e6 + 7},
	} {
		n, err := NewNormalizer(b)
		require.NoError(t, err)
		c := b.Center()
		p := n.Point(c.X, c.Y)
		assert.InDelta(t, 0, p.X, 1e-9, "box %v", b)
		assert.InDelta(t, 0, p.Y, 1e-9, "box %v", b)
	}
}

func TestNormalizePreservesAspect(t *testing.T) {
	n, err := NewNormalizer(BBox{0, 0, 80, 20})
	require.NoError(t, err)
	a, b := n.Point(10, 5), n.Point(40, 15)
	// source delta (30, 10); Y flips sign
	assert.InDelta(t, 30.0/10.0, (b.X-a.X)/-(b.Y-a.Y), 1e-12)
}

func TestNormalizeOverrun(t *testing.T) {
	doc := Document{
		BBox: &BBox{0, 0, 10, 10},
		Segments: []RawSegment{
			{X1: 1, Y1: 1, X2: 9, Y2: 9},
			{X1: 5, Y1: 5, X2: 15, Y2: 5},
		},
	}
	segs, overrun, err := Normalize(doc, false, "")
	require.NoError(t, err)
	assert.True(t, overrun)
	// detection only: the point is kept as is
	assert.Equal(t, 2.0, segs[1].X2)
}

func TestNormalizeRejects(t *testing.T) {
	_, _, err := Normalize(Document{}, false, "")
	assert.ErrorIs(t, err, ErrNoBBox)

	_, _, err = Normalize(Document{BBox: &BBox{3, 3, 3, 3}}, false, "")
	assert.ErrorIs(t, err, ErrDegenerateBox)

	_, err = NewNormalizer(BBox{0, 0, math.NaN(), 1})
	assert.ErrorIs(t, err, ErrDegenerateBox)

	// a flat box still has one non-zero axis
	_, err = NewNormalizer(BBox{0, 5, 10, 5})
	assert.NoError(t, err)
}

func TestFrame(t *testing.T) {
	doc := Document{BBox: &BBox{0, 0, 100, 50}}
	segs, overrun, err := Normalize(doc, true, "#000000")
	require.NoError(t, err)
	assert.False(t, overrun)
	require.Len(t, segs, 4)
	for _, s := range segs {
		assert.True(t, s.InBounds())
		assert.Equal(t, "#000000", s.Stroke)
	}
	assert.Equal(t, Segment{X1: -1, Y1: 0.5, X2: 1, Y2: 0.5, Stroke: "#000000"}, segs[0])
	assert.Equal(t, Segment{X1: -1, Y1: -0.5, X2: 1, Y2: -0.5, Stroke: "#000000"}, segs[1])
}
