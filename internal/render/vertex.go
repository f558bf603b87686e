package render

import "github.com/chewxy/math32"

// Uniforms is the camera state as a pipeline receives it.
type Uniforms struct {
	Zoom     float32
	OffsetX  float32
	OffsetY  float32
	Rotation float32 // radians
}

// Vertex is the vertex stage of the line pipeline: scale, rotate, then
// translate. It matches camera.ToCameraSpace in float32 precision.
func (u Uniforms) Vertex(x, y float32) (float32, float32) {
	x, y = x*u.Zoom, y*u.Zoom
	if u.Rotation != 0 {
		sin, cos := math32.Sincos(u.Rotation)
		x, y = x*cos-y*sin, x*sin+y*cos
	}
	return x + u.OffsetX, y + u.OffsetY
}

// State tracks the uniforms and the bound vertex buffer the way a GPU
// context would. Software backends embed it.
type State struct {
	Uniforms Uniforms
	Vertices [4]float32
	Color    [4]float32
}

func (s *State) SetZoomUniform(zoom float32)        { s.Uniforms.Zoom = zoom }
func (s *State) SetOffsetUniform(x, y float32)      { s.Uniforms.OffsetX, s.Uniforms.OffsetY = x, y }
func (s *State) SetRotationUniform(radians float32) { s.Uniforms.Rotation = radians }
func (s *State) UploadVertices(v [4]float32)        { s.Vertices = v }
func (s *State) SetColorUniform(r, g, b, a float32) { s.Color = [4]float32{r, g, b, a} }

// Line runs the bound vertices through the vertex stage and returns the
// display-space endpoints.
func (s *State) Line() (x0, y0, x1, y1 float32) {
	x0, y0 = s.Uniforms.Vertex(s.Vertices[0], s.Vertices[1])
	x1, y1 = s.Uniforms.Vertex(s.Vertices[2], s.Vertices[3])
	return x0, y0, x1, y1
}
