package viewport

// RenderScheduler coalesces redraw requests into at most one redraw per
// frame. Controllers call RequestRender whenever visible state changes;
// the host calls BeginFrame once per frame and redraws only when it
// returns true. Continuous mode (animations, glides) re-arms the flag
// every frame until turned off.
type RenderScheduler struct {
	dirty      bool
	continuous bool
}

// RequestRender marks the viewport dirty. Calling it any number of times
// within a frame still yields a single redraw.
func (s *RenderScheduler) RequestRender() {
	s.dirty = true
}

// SetContinuous toggles a redraw on every frame regardless of requests.
func (s *RenderScheduler) SetContinuous(on bool) {
	s.continuous = on
	if on {
		s.dirty = true
	}
}

// Continuous reports whether continuous mode is on.
func (s *RenderScheduler) Continuous() bool {
	return s.continuous
}

// BeginFrame consumes the dirty flag. It returns true when a redraw is
// due this frame.
func (s *RenderScheduler) BeginFrame() bool {
	if s.continuous {
		s.dirty = false
		return true
	}
	due := s.dirty
	s.dirty = false
	return due
}
