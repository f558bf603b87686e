package ingest

import (
	"encoding/csv"
	"errors"
	"io"
	"os"
	"strconv"
	"strings"

	"vecview/internal/geom"
)

// LoadCSV reads line segments from a CSV file. Two layouts are accepted:
//
//   - a segment table with x1,y1,x2,y2 and an optional stroke column, in
//     viewer units (Y down, like SVG);
//   - a point track with lat|latitude|y and lon|lng|long|longitude|x
//     columns, joined in row order into a polyline.
func LoadCSV(path string) (geom.Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return geom.Document{}, err
	}
	defer f.Close()
	return ParseCSV(f)
}

// ParseCSV is LoadCSV over a reader.
func ParseCSV(r io.Reader) (geom.Document, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	cr.FieldsPerRecord = -1
	recs, err := cr.ReadAll()
	if err != nil {
		return geom.Document{}, err
	}
	if len(recs) == 0 {
		return geom.Document{}, errors.New("empty csv")
	}
	cols := map[string]int{}
	for i, h := range recs[0] {
		h = strings.ToLower(strings.TrimSpace(h))
		if _, dup := cols[h]; !dup {
			cols[h] = i
		}
	}
	if hasAll(cols, "x1", "y1", "x2", "y2") {
		return csvSegments(recs[1:], cols)
	}
	return csvTrack(recs[1:], cols)
}

func hasAll(cols map[string]int, names ...string) bool {
	for _, n := range names {
		if _, ok := cols[n]; !ok {
			return false
		}
	}
	return true
}

func pick(cols map[string]int, names ...string) int {
	for _, n := range names {
		if i, ok := cols[n]; ok {
			return i
		}
	}
	return -1
}

func field(row []string, i int) (float64, bool) {
	if i < 0 || i >= len(row) {
		return 0, false
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(row[i]), 64)
	return v, err == nil
}

func csvSegments(rows [][]string, cols map[string]int) (geom.Document, error) {
	b := &builder{}
	strokeIdx := pick(cols, "stroke", "color")
	for _, row := range rows {
		x1, ok1 := field(row, cols["x1"])
		y1, ok2 := field(row, cols["y1"])
		x2, ok3 := field(row, cols["x2"])
		y2, ok4 := field(row, cols["y2"])
		if !ok1 || !ok2 || !ok3 || !ok4 {
			continue
		}
		stroke := ""
		if strokeIdx >= 0 && strokeIdx < len(row) {
			stroke = strings.TrimSpace(row[strokeIdx])
		}
		b.segment(x1, y1, x2, y2, stroke)
	}
	return b.document()
}

func csvTrack(rows [][]string, cols map[string]int) (geom.Document, error) {
	idxLat := pick(cols, "lat", "latitude", "y")
	idxLon := pick(cols, "lon", "lng", "long", "longitude", "x")
	if idxLat == -1 || idxLon == -1 {
		return geom.Document{}, errors.New("csv: neither x1,y1,x2,y2 nor latitude/longitude columns found")
	}
	var pts [][2]float64
	for _, row := range rows {
		lon, ok1 := field(row, idxLon)
		lat, ok2 := field(row, idxLat)
		if !ok1 || !ok2 {
			continue
		}
		pts = append(pts, [2]float64{lon, lat})
	}
	b := &builder{flipY: true}
	b.polyline(pts, GeoStroke, false)
	return b.document()
}
