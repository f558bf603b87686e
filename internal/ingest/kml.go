package ingest

import (
	"encoding/xml"
	"io"
	"os"
	"strconv"
	"strings"

	"vecview/internal/geom"
)

// LoadKML extracts LineString and LinearRing coordinates from a KML file.
// KML coordinates are "lon,lat[,alt]"; altitude is ignored.
func LoadKML(path string) (geom.Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return geom.Document{}, err
	}
	defer f.Close()
	return ParseKML(f)
}

// ParseKML is LoadKML over a reader. Linework is found at any depth, so
// Folders, MultiGeometry and Polygon boundaries need no special casing.
func ParseKML(r io.Reader) (geom.Document, error) {
	b := &builder{flipY: true}
	dec := xml.NewDecoder(r)
	var (
		inLine   bool
		closed   bool
		inCoords bool
		text     strings.Builder
	)
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return geom.Document{}, err
		}
		switch el := tok.(type) {
		case xml.StartElement:
			switch el.Name.Local {
			case "LineString":
				inLine, closed = true, false
			case "LinearRing":
				inLine, closed = true, true
			case "coordinates":
				if inLine {
					inCoords = true
					text.Reset()
				}
			}
		case xml.CharData:
			if inCoords {
				text.Write(el)
			}
		case xml.EndElement:
			switch el.Name.Local {
			case "coordinates":
				if inCoords {
					b.polyline(kmlTuples(text.String()), GeoStroke, closed)
					inCoords = false
				}
			case "LineString", "LinearRing":
				inLine = false
			}
		}
	}
	return b.document()
}

func kmlTuples(s string) [][2]float64 {
	var pts [][2]float64
	for _, tuple := range strings.Fields(s) {
		vals := strings.Split(tuple, ",")
		if len(vals) < 2 {
			continue
		}
		lon, err1 := strconv.ParseFloat(strings.TrimSpace(vals[0]), 64)
		lat, err2 := strconv.ParseFloat(strings.TrimSpace(vals[1]), 64)
		if err1 != nil || err2 != nil {
			continue
		}
		pts = append(pts, [2]float64{lon, lat})
	}
	return pts
}
