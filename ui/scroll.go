package ui

// Scroll keeps the scroll offsets of clipping containers by node name. The
// zero value is ready to use.
type Scroll struct {
	offsets map[string]float64
}

func NewScroll() *Scroll {
	return &Scroll{offsets: make(map[string]float64)}
}

// Offset returns how far the named container is scrolled. Nil is a valid
// unscrolled state.
func (s *Scroll) Offset(name string) float64 {
	if s == nil {
		return 0
	}
	return s.offsets[name]
}

// By scrolls the laid out container by delta pixels (positive moves the
// content up) and clamps to [0, extent - viewport].
func (s *Scroll) By(box *Box, delta float64) {
	if box == nil {
		return
	}
	if s.offsets == nil {
		s.offsets = make(map[string]float64)
	}
	limit := max(0, box.Extent-box.Content.H)
	name := box.Node.Name
	s.offsets[name] = min(max(s.offsets[name]+delta, 0), limit)
}
