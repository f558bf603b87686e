package ingest

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vecview/internal/geom"
)

func TestParseSVG(t *testing.T) {
	src := `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 100 100">
  <g>
    <line x1="0" y1="0" x2="100" y2="100" stroke="#FF0000"/>
    <line x1="10px" y1="20" x2="30" y2="40" style="fill:none; stroke: #00ff00" stroke="#0000ff"/>
  </g>
  <rect x="0" y="0" width="5" height="5"/>
</svg>`
	doc, err := ParseSVG(strings.NewReader(src))
	require.NoError(t, err)
	require.NotNil(t, doc.BBox)
	assert.Equal(t, geom.BBox{MinX: 0, MinY: 0, MaxX: 100, MaxY: 100}, *doc.BBox)
	require.Len(t, doc.Segments, 2)
	assert.Equal(t, geom.RawSegment{X1: 0, Y1: 0, X2: 100, Y2: 100, Stroke: "#FF0000"}, doc.Segments[0])
	assert.Equal(t, geom.RawSegment{X1: 10, Y1: 20, X2: 30, Y2: 40, Stroke: "#00ff00"}, doc.Segments[1])
}

func TestParseSVGViewBoxOffset(t *testing.T) {
	doc, err := ParseSVG(strings.NewReader(`<svg viewBox="10,20 300 150"></svg>`))
	require.NoError(t, err)
	require.NotNil(t, doc.BBox)
	assert.Equal(t, geom.BBox{MinX: 10, MinY: 20, MaxX: 310, MaxY: 170}, *doc.BBox)
	assert.Empty(t, doc.Segments)
}

func TestParseSVGMissingViewBox(t *testing.T) {
	doc, err := ParseSVG(strings.NewReader(`<svg><line x1="1" y1="1" x2="2" y2="2"/></svg>`))
	require.NoError(t, err)
	assert.Nil(t, doc.BBox)
	assert.Len(t, doc.Segments, 1)

	_, _, err = geom.Normalize(doc, false, "")
	assert.ErrorIs(t, err, geom.ErrNoBBox)
}

func TestParseSVGErrors(t *testing.T) {
	_, err := ParseSVG(strings.NewReader(`<html></html>`))
	assert.Error(t, err)

	_, err = ParseSVG(strings.NewReader(`<svg viewBox="0 0 10"></svg>`))
	assert.Error(t, err)
}

func TestParseWKT(t *testing.T) {
	cases := []struct {
		name string
		wkt  string
		segs int
	}{
		{"linestring", "LINESTRING (0 0, 10 0, 10 10)", 2},
		{"multilinestring", "MULTILINESTRING ((0 0, 1 1), (2 2, 3 3, 4 4))", 3},
		{"polygon closes rings", "POLYGON ((0 0, 10 0, 10 10))", 3},
		{"polygon already closed", "POLYGON ((0 0, 10 0, 10 10, 0 0), (2 2, 3 2, 3 3, 2 2))", 6},
		{"lowercase", "linestring(1 2,3 4)", 1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			doc, err := ParseWKT(tc.wkt)
			require.NoError(t, err)
			assert.Len(t, doc.Segments, tc.segs)
			require.NotNil(t, doc.BBox)
		})
	}
}

func TestParseWKTFlipsY(t *testing.T) {
	doc, err := ParseWKT("LINESTRING (0 0, 10 5)")
	require.NoError(t, err)
	assert.Equal(t, geom.RawSegment{X1: 0, Y1: 0, X2: 10, Y2: -5, Stroke: GeoStroke}, doc.Segments[0])
	assert.Equal(t, geom.BBox{MinX: 0, MinY: -5, MaxX: 10, MaxY: 0}, *doc.BBox)
}

func TestParseWKTErrors(t *testing.T) {
	_, err := ParseWKT("")
	assert.Error(t, err)
	_, err = ParseWKT("POINT (1 2)")
	assert.ErrorIs(t, err, ErrNoLines)
	_, err = ParseWKT("CIRCULARSTRING (0 0, 1 1, 2 0)")
	assert.Error(t, err)
}

func TestParseGeoJSON(t *testing.T) {
	src := `{"type":"FeatureCollection","features":[
  {"type":"Feature","geometry":{"type":"LineString","coordinates":[[0,0],[1,1],[2,0]]}},
  {"type":"Feature","geometry":{"type":"Polygon","coordinates":[[[0,0],[4,0],[4,4],[0,0]]]}},
  {"type":"Feature","geometry":{"type":"Point","coordinates":[9,9]}}
]}`
	doc, err := ParseGeoJSON(strings.NewReader(src))
	require.NoError(t, err)
	assert.Len(t, doc.Segments, 5)
	assert.Equal(t, geom.BBox{MinX: 0, MinY: -4, MaxX: 4, MaxY: 0}, *doc.BBox)

	_, err = ParseGeoJSON(strings.NewReader(`{"type":"Point","coordinates":[1,2]}`))
	assert.ErrorIs(t, err, ErrNoLines)
}

func TestParseKML(t *testing.T) {
	src := `<kml><Document><Placemark><MultiGeometry>
  <LineString><coordinates>0,0,0 1,1,0 2,2</coordinates></LineString>
  <Polygon><outerBoundaryIs><LinearRing><coordinates>0,0 3,0 3,3</coordinates></LinearRing></outerBoundaryIs></Polygon>
</MultiGeometry></Placemark>
<Placemark><Point><coordinates>5,5</coordinates></Point></Placemark></Document></kml>`
	doc, err := ParseKML(strings.NewReader(src))
	require.NoError(t, err)
	assert.Len(t, doc.Segments, 5)
}

func TestParseCSV(t *testing.T) {
	doc, err := ParseCSV(strings.NewReader("x1,y1,x2,y2,stroke\n0,0,10,10,#ff0000\n1,2,3,4\nbad,0,0,0\n"))
	require.NoError(t, err)
	require.Len(t, doc.Segments, 2)
	assert.Equal(t, geom.RawSegment{X1: 0, Y1: 0, X2: 10, Y2: 10, Stroke: "#ff0000"}, doc.Segments[0])
	assert.Equal(t, "", doc.Segments[1].Stroke)

	doc, err = ParseCSV(strings.NewReader("name,lat,lon\na,1,2\nb,3,4\nc,5,6\n"))
	require.NoError(t, err)
	assert.Len(t, doc.Segments, 2)
	assert.Equal(t, geom.RawSegment{X1: 2, Y1: -1, X2: 4, Y2: -3, Stroke: GeoStroke}, doc.Segments[0])

	_, err = ParseCSV(strings.NewReader("a,b\n1,2\n"))
	assert.Error(t, err)
}

func TestLoadDispatch(t *testing.T) {
	dir := t.TempDir()
	svg := filepath.Join(dir, "scene.svg")
	require.NoError(t, os.WriteFile(svg, []byte(`<svg viewBox="0 0 10 10"><line x1="0" y1="0" x2="10" y2="10"/></svg>`), 0o644))
	doc, err := Load(svg)
	require.NoError(t, err)
	assert.Equal(t, "scene.svg", doc.Name)
	assert.Len(t, doc.Segments, 1)

	_, err = Load(filepath.Join(dir, "notes.txt"))
	assert.ErrorIs(t, err, ErrUnsupported)

	assert.True(t, Supported("A.GEOJSON"))
	assert.False(t, Supported("a.shp"))
}

func TestParseText(t *testing.T) {
	doc, err := ParseText("  <svg viewBox=\"0 0 2 2\"><line x2=\"2\" y2=\"2\"/></svg>\n")
	require.NoError(t, err)
	assert.Equal(t, "pasted", doc.Name)
	assert.NotNil(t, doc.BBox)

	doc, err = ParseText("LINESTRING (0 0, 1 1)")
	require.NoError(t, err)
	assert.Len(t, doc.Segments, 1)

	_, err = ParseText("   ")
	assert.Error(t, err)
}
