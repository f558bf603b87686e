// Package ingest turns vector files into documents of raw line segments and
// a bounding box for the viewer.
package ingest

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"vecview/internal/geom"
)

var (
	// ErrUnsupported is returned for file types no loader handles.
	ErrUnsupported = errors.New("ingest: unsupported file type")
	// ErrNoLines is returned when a source has no line geometry.
	ErrNoLines = errors.New("ingest: no line geometry")
)

// GeoStroke is the stroke given to geometries from formats without colors.
const GeoStroke = "#1F6FEB"

// Extensions lists the file extensions Load understands.
var Extensions = []string{".svg", ".wkt", ".geojson", ".json", ".kml", ".csv"}

// Supported reports whether path has a loadable extension.
func Supported(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, e := range Extensions {
		if e == ext {
			return true
		}
	}
	return false
}

// Load reads path with the loader matching its extension.
func Load(path string) (geom.Document, error) {
	ext := strings.ToLower(filepath.Ext(path))
	var (
		doc geom.Document
		err error
	)
	switch ext {
	case ".svg":
		f, ferr := os.Open(path)
		if ferr != nil {
			return geom.Document{}, ferr
		}
		defer f.Close()
		doc, err = ParseSVG(f)
	case ".wkt":
		data, ferr := os.ReadFile(path)
		if ferr != nil {
			return geom.Document{}, ferr
		}
		doc, err = ParseWKT(string(data))
	case ".geojson", ".json":
		doc, err = LoadGeoJSON(path)
	case ".kml":
		doc, err = LoadKML(path)
	case ".csv":
		doc, err = LoadCSV(path)
	default:
		return geom.Document{}, fmt.Errorf("%w: %q", ErrUnsupported, ext)
	}
	if err != nil {
		return geom.Document{}, fmt.Errorf("load %s: %w", filepath.Base(path), err)
	}
	doc.Name = filepath.Base(path)
	return doc, nil
}

// builder collects segments and grows a bounding box from their endpoints.
// Geographic sources set flipY so that north ends up on top after the
// normalizer's Y inversion.
type builder struct {
	segs  []geom.RawSegment
	bbox  geom.BBox
	seen  bool
	flipY bool
}

func (b *builder) extend(x, y float64) {
	if !b.seen {
		b.bbox = geom.BBox{MinX: x, MinY: y, MaxX: x, MaxY: y}
		b.seen = true
		return
	}
	b.bbox.Extend(x, y)
}

func (b *builder) segment(x1, y1, x2, y2 float64, stroke string) {
	if b.flipY {
		y1, y2 = -y1, -y2
	}
	b.extend(x1, y1)
	b.extend(x2, y2)
	b.segs = append(b.segs, geom.RawSegment{X1: x1, Y1: y1, X2: x2, Y2: y2, Stroke: stroke})
}

// polyline adds one segment per consecutive pair; closed rings also join
// the last vertex back to the first unless they already coincide.
func (b *builder) polyline(pts [][2]float64, stroke string, closed bool) {
	for i := 0; i+1 < len(pts); i++ {
		b.segment(pts[i][0], pts[i][1], pts[i+1][0], pts[i+1][1], stroke)
	}
	if closed && len(pts) > 2 && pts[0] != pts[len(pts)-1] {
		last := pts[len(pts)-1]
		b.segment(last[0], last[1], pts[0][0], pts[0][1], stroke)
	}
}

func (b *builder) document() (geom.Document, error) {
	if len(b.segs) == 0 {
		return geom.Document{}, ErrNoLines
	}
	bbox := b.bbox
	return geom.Document{BBox: &bbox, Segments: b.segs}, nil
}

// ParseText reads pasted content: SVG markup when it starts with '<',
// WKT otherwise.
func ParseText(s string) (geom.Document, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return geom.Document{}, errors.New("empty input")
	}
	var (
		doc geom.Document
		err error
	)
	if strings.HasPrefix(s, "<") {
		doc, err = ParseSVG(strings.NewReader(s))
	} else {
		doc, err = ParseWKT(s)
	}
	if err != nil {
		return geom.Document{}, err
	}
	doc.Name = "pasted"
	return doc, nil
}
