// Package scene holds the segments the viewer renders.
//
// A Store is owned by a single goroutine; see viewer.Controller.
package scene

import "vecview/internal/geom"

// Store keeps the loaded and drawn collections. Rendering visits loaded
// first, so drawn segments paint on top.
type Store struct {
	loaded  []geom.Segment
	drawn   []geom.Segment
	overrun bool
}

func New() *Store {
	return &Store{}
}

// Replace starts a new load session with segs as the loaded collection.
// overrun records whether any of them left [-1,1].
func (s *Store) Replace(segs []geom.Segment, overrun bool) {
	s.loaded = append([]geom.Segment(nil), segs...)
	s.overrun = overrun
}

// AppendLoaded adds segments to the current load session.
func (s *Store) AppendLoaded(segs ...geom.Segment) {
	s.loaded = append(s.loaded, segs...)
}

// AppendDrawn adds one interactively drawn segment.
func (s *Store) AppendDrawn(seg geom.Segment) {
	s.drawn = append(s.drawn, seg)
}

// ClearDrawn drops drawn segments and keeps loaded ones (soft reset).
func (s *Store) ClearDrawn() {
	s.drawn = nil
}

// Clear drops both collections and lowers the overrun flag.
func (s *Store) Clear() {
	s.loaded = nil
	s.drawn = nil
	s.overrun = false
}

// Loaded returns a copy of the loaded collection.
func (s *Store) Loaded() []geom.Segment {
	return append([]geom.Segment(nil), s.loaded...)
}

// Drawn returns a copy of the drawn collection.
func (s *Store) Drawn() []geom.Segment {
	return append([]geom.Segment(nil), s.drawn...)
}

// Each calls fn for every segment in render order.
func (s *Store) Each(fn func(geom.Segment)) {
	for _, seg := range s.loaded {
		fn(seg)
	}
	for _, seg := range s.drawn {
		fn(seg)
	}
}

func (s *Store) Len() int { return len(s.loaded) + len(s.drawn) }

func (s *Store) Overrun() bool { return s.overrun }
