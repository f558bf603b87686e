package ingest

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"vecview/internal/geom"
)

// ParseSVG extracts every <line> element and the root viewBox. A document
// without a viewBox is returned with a nil BBox; the viewer rejects it.
func ParseSVG(r io.Reader) (geom.Document, error) {
	dec := xml.NewDecoder(r)
	var (
		doc     geom.Document
		sawRoot bool
	)
	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return geom.Document{}, fmt.Errorf("svg: %w", err)
		}
		el, ok := tok.(xml.StartElement)
		if !ok {
			continue
		}
		switch el.Name.Local {
		case "svg":
			if sawRoot {
				continue
			}
			sawRoot = true
			if vb, ok := attr(el, "viewBox"); ok {
				bbox, err := parseViewBox(vb)
				if err != nil {
					return geom.Document{}, err
				}
				doc.BBox = &bbox
			}
		case "line":
			doc.Segments = append(doc.Segments, geom.RawSegment{
				X1:     length(el, "x1"),
				Y1:     length(el, "y1"),
				X2:     length(el, "x2"),
				Y2:     length(el, "y2"),
				Stroke: stroke(el),
			})
		}
	}
	if !sawRoot {
		return geom.Document{}, errors.New("svg: no <svg> element")
	}
	return doc, nil
}

func attr(el xml.StartElement, name string) (string, bool) {
	for _, a := range el.Attr {
		if a.Name.Local == name {
			return strings.TrimSpace(a.Value), true
		}
	}
	return "", false
}

// parseViewBox reads "minX minY width height" (spaces and/or commas).
func parseViewBox(s string) (geom.BBox, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool { return r == ' ' || r == ',' || r == '\t' || r == '\n' })
	if len(fields) != 4 {
		return geom.BBox{}, fmt.Errorf("svg: viewBox %q: want 4 numbers", s)
	}
	var v [4]float64
	for i, f := range fields {
		n, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return geom.BBox{}, fmt.Errorf("svg: viewBox %q: %w", s, err)
		}
		v[i] = n
	}
	return geom.BBox{MinX: v[0], MinY: v[1], MaxX: v[0] + v[2], MaxY: v[1] + v[3]}, nil
}

// length reads a coordinate attribute. Absent attributes are 0 as in SVG;
// a trailing "px" is accepted.
func length(el xml.StartElement, name string) float64 {
	s, ok := attr(el, name)
	if !ok {
		return 0
	}
	n, err := strconv.ParseFloat(strings.TrimSuffix(s, "px"), 64)
	if err != nil {
		return 0
	}
	return n
}

// stroke prefers the style property over the presentation attribute.
func stroke(el xml.StartElement) string {
	if style, ok := attr(el, "style"); ok {
		for _, decl := range strings.Split(style, ";") {
			k, v, found := strings.Cut(decl, ":")
			if found && strings.TrimSpace(k) == "stroke" {
				return strings.TrimSpace(v)
			}
		}
	}
	s, _ := attr(el, "stroke")
	return s
}
