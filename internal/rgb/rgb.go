// Package rgb decodes segment stroke colors.
package rgb

import (
	"fmt"
	"image/color"
	"math"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// RGB holds channels in [0,255]. A color decoded from malformed input has
// every channel set to NaN.
type RGB struct {
	R, G, B float64
}

// Black is the fallback for strokes that fail to decode.
var Black = RGB{}

// Decode parses "#RRGGBB" (the leading '#' is optional). Malformed input
// yields NaN channels instead of an error; see Valid.
func Decode(hex string) RGB {
	hex = strings.TrimPrefix(strings.TrimSpace(hex), "#")
	if len(hex) != 6 {
		return invalid()
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return invalid()
	}
	return RGB{
		R: float64((v >> 16) & 0xff),
		G: float64((v >> 8) & 0xff),
		B: float64(v & 0xff),
	}
}

func invalid() RGB {
	nan := math.NaN()
	return RGB{R: nan, G: nan, B: nan}
}

// Valid reports whether every channel decoded.
func (c RGB) Valid() bool {
	return !math.IsNaN(c.R) && !math.IsNaN(c.G) && !math.IsNaN(c.B)
}

// orBlack maps undecoded channels to 0.
func (c RGB) orBlack() RGB {
	if c.Valid() {
		return c
	}
	return Black
}

// Uniform returns the normalized color uniform with alpha 1.
func (c RGB) Uniform() (r, g, b, a float32) {
	c = c.orBlack()
	return float32(c.R / 255), float32(c.G / 255), float32(c.B / 255), 1
}

// Colorful converts to a go-colorful color.
func (c RGB) Colorful() colorful.Color {
	c = c.orBlack()
	return colorful.Color{R: c.R / 255, G: c.G / 255, B: c.B / 255}
}

// Color implements the bridge to image/color consumers (ebiten, gg).
func (c RGB) Color() color.Color {
	return c.Colorful()
}

// Hex renders "#rrggbb"; invalid colors render as black.
func (c RGB) Hex() string {
	return c.Colorful().Hex()
}

func (c RGB) String() string {
	if !c.Valid() {
		return "rgb(invalid)"
	}
	return fmt.Sprintf("rgb(%d,%d,%d)", int(c.R), int(c.G), int(c.B))
}

// FromUniform rebuilds an RGB from a normalized color uniform. Backends use
// it to turn the color uniform back into a drawable color.
func FromUniform(r, g, b float32) RGB {
	return RGB{
		R: math.Round(float64(r) * 255),
		G: math.Round(float64(g) * 255),
		B: math.Round(float64(b) * 255),
	}
}
