package ingest

import (
	"encoding/json"
	"errors"
	"io"
	"os"

	"vecview/internal/geom"
)

// LoadGeoJSON reads a GeoJSON file and returns its line work:
// LineString, MultiLineString, and the rings of Polygon and MultiPolygon.
// Feature and FeatureCollection wrappers are unwrapped; points are skipped.
func LoadGeoJSON(path string) (geom.Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return geom.Document{}, err
	}
	defer f.Close()
	return ParseGeoJSON(f)
}

// ParseGeoJSON is LoadGeoJSON over a reader.
func ParseGeoJSON(r io.Reader) (geom.Document, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return geom.Document{}, err
	}
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return geom.Document{}, err
	}
	t, _ := raw["type"].(string)
	if t == "" {
		return geom.Document{}, errors.New("invalid geojson: missing type")
	}

	b := &builder{flipY: true}
	parsePoint := func(v any) (pt [2]float64, ok bool) {
		if a, ok := v.([]any); ok && len(a) >= 2 {
			lon, lok := a[0].(float64)
			lat, aok := a[1].(float64)
			if lok && aok {
				return [2]float64{lon, lat}, true
			}
		}
		return [2]float64{}, false
	}
	parseLine := func(v any) [][2]float64 {
		arr, _ := v.([]any)
		var pts [][2]float64
		for _, el := range arr {
			if pt, ok := parsePoint(el); ok {
				pts = append(pts, pt)
			}
		}
		return pts
	}
	each := func(v any, fn func(any)) {
		arr, _ := v.([]any)
		for _, el := range arr {
			fn(el)
		}
	}
	addPolygon := func(v any) {
		each(v, func(ring any) { b.polyline(parseLine(ring), GeoStroke, true) })
	}
	walkGeom := func(g map[string]any) {
		gt, _ := g["type"].(string)
		coords := g["coordinates"]
		switch gt {
		case "LineString":
			b.polyline(parseLine(coords), GeoStroke, false)
		case "MultiLineString":
			each(coords, func(ls any) { b.polyline(parseLine(ls), GeoStroke, false) })
		case "Polygon":
			addPolygon(coords)
		case "MultiPolygon":
			each(coords, addPolygon)
		}
	}

	switch t {
	case "Feature":
		if g, ok := raw["geometry"].(map[string]any); ok {
			walkGeom(g)
		}
	case "FeatureCollection":
		if fs, ok := raw["features"].([]any); ok {
			for _, f := range fs {
				fm, _ := f.(map[string]any)
				if g, ok := fm["geometry"].(map[string]any); ok {
					walkGeom(g)
				}
			}
		}
	default:
		walkGeom(raw)
	}
	return b.document()
}
