package pointer

// Scripted replays a fixed sequence of observations, one per Poll.
// It stands in for the camera tracker in tests and demos: a nil entry
// models a tick where the tracker lost the target.
type Scripted struct {
	steps []*Sample
	pos   int
	loop  bool
}

// NewScripted creates a scripted source. Each element is consumed by one
// Poll; nil elements report no detection. After the script runs out the
// source keeps reporting no detection unless looping is enabled.
func NewScripted(steps ...*Sample) *Scripted {
	return &Scripted{steps: steps}
}

// Loop makes the script repeat from the beginning once exhausted.
func (s *Scripted) Loop() *Scripted {
	s.loop = true
	return s
}

// At is a convenience constructor for a detected sample.
func At(x, y float64) *Sample {
	return &Sample{X: x, Y: y}
}

// Poll implements Source.
func (s *Scripted) Poll() (Sample, bool) {
	if s.pos >= len(s.steps) {
		if !s.loop || len(s.steps) == 0 {
			return Sample{}, false
		}
		s.pos = 0
	}
	step := s.steps[s.pos]
	s.pos++
	if step == nil {
		return Sample{}, false
	}
	return *step, true
}

// Remaining returns how many scripted steps have not been consumed yet.
func (s *Scripted) Remaining() int {
	if s.pos >= len(s.steps) {
		return 0
	}
	return len(s.steps) - s.pos
}
