package ingest

import (
	"errors"
	"strconv"
	"strings"

	"vecview/internal/geom"
)

// ParseWKT reads a subset of WKT into line segments:
// LINESTRING(x y, ...), MULTILINESTRING((x y, ...), ...), POLYGON((x y, ...), ...).
// Polygon rings are closed. Point geometries carry no lines.
func ParseWKT(wkt string) (geom.Document, error) {
	s := strings.TrimSpace(wkt)
	if s == "" {
		return geom.Document{}, errors.New("empty wkt")
	}
	up := strings.ToUpper(s)
	b := &builder{flipY: true}
	parseTuples := func(block string) [][2]float64 {
		var out [][2]float64
		for _, tup := range strings.Split(block, ",") {
			parts := strings.Fields(strings.TrimSpace(tup))
			if len(parts) < 2 {
				continue
			}
			x, e1 := strconv.ParseFloat(parts[0], 64)
			y, e2 := strconv.ParseFloat(parts[1], 64)
			if e1 != nil || e2 != nil {
				continue
			}
			out = append(out, [2]float64{x, y})
		}
		return out
	}
	// groups returns the contents of each top-level parenthesized group:
	// "(a b, c d), (e f)" -> ["a b, c d", "e f"].
	groups := func(block string) []string {
		var out []string
		depth, start := 0, -1
		for i, r := range block {
			switch r {
			case '(':
				if depth == 0 {
					start = i + 1
				}
				depth++
			case ')':
				depth--
				if depth == 0 && start >= 0 {
					out = append(out, block[start:i])
					start = -1
				}
			}
		}
		return out
	}
	body := func(open, close string) (string, error) {
		i := strings.Index(s, open)
		j := strings.LastIndex(s, close)
		if i < 0 || j <= i {
			return "", errors.New("wkt: invalid")
		}
		return s[i+len(open) : j], nil
	}
	switch {
	case strings.HasPrefix(up, "MULTILINESTRING"):
		blk, err := body("(", ")")
		if err != nil {
			return geom.Document{}, err
		}
		for _, ls := range groups(blk) {
			b.polyline(parseTuples(ls), GeoStroke, false)
		}
	case strings.HasPrefix(up, "LINESTRING"):
		blk, err := body("(", ")")
		if err != nil {
			return geom.Document{}, err
		}
		b.polyline(parseTuples(blk), GeoStroke, false)
	case strings.HasPrefix(up, "POLYGON"):
		blk, err := body("(", ")")
		if err != nil {
			return geom.Document{}, err
		}
		for _, ring := range groups(blk) {
			b.polyline(parseTuples(ring), GeoStroke, true)
		}
	case strings.HasPrefix(up, "POINT"), strings.HasPrefix(up, "MULTIPOINT"):
		return geom.Document{}, ErrNoLines
	default:
		return geom.Document{}, errors.New("unsupported wkt type")
	}
	return b.document()
}
