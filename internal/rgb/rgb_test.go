package rgb

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecode(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want RGB
	}{
		{"red with hash", "#FF0000", RGB{255, 0, 0}},
		{"green without hash", "00ff00", RGB{0, 255, 0}},
		{"mixed case", "#1a2B3c", RGB{0x1a, 0x2b, 0x3c}},
		{"black", "#000000", RGB{0, 0, 0}},
		{"white", "#ffffff", RGB{255, 255, 255}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Decode(tt.in)
			assert.True(t, got.Valid())
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDecodeMalformed(t *testing.T) {
	for _, in := range []string{"", "#", "#FFF", "#FF000", "#GG0000", "red", "#FF00001", "none"} {
		t.Run(in, func(t *testing.T) {
			got := Decode(in)
			assert.False(t, got.Valid())
			assert.True(t, math.IsNaN(got.R))
			assert.True(t, math.IsNaN(got.G))
			assert.True(t, math.IsNaN(got.B))
		})
	}
}

func TestUniform(t *testing.T) {
	r, g, b, a := Decode("#FF8000").Uniform()
	assert.Equal(t, float32(1), r)
	assert.InDelta(t, 128.0/255, g, 1e-6)
	assert.Equal(t, float32(0), b)
	assert.Equal(t, float32(1), a)

	// malformed strokes still draw, in black
	r, g, b, a = Decode("bogus").Uniform()
	assert.Equal(t, [4]float32{0, 0, 0, 1}, [4]float32{r, g, b, a})
}

func TestHexRoundTrip(t *testing.T) {
	assert.Equal(t, "#ff0000", Decode("#FF0000").Hex())
	assert.Equal(t, "#000000", Decode("nope").Hex())
	r, g, b, _ := Decode("#336699").Uniform()
	assert.Equal(t, Decode("#336699"), FromUniform(r, g, b))
}
