package pointer

import "math"

// Smoother wraps a Source and applies exponential smoothing to its
// samples, plus rejection of single-frame jumps larger than MaxJump.
// Hand trackers jitter and occasionally teleport to a misdetected hand;
// both artifacts would whip the heading around without this filter.
type Smoother struct {
	src Source

	// Factor is the blend weight of the new sample, in (0, 1].
	// 1 disables smoothing.
	Factor float64

	// MaxJump is the largest normalized distance a sample may move in one
	// poll before it is rejected as a misdetection. 0 disables the check.
	MaxJump float64

	prev    Sample
	hasPrev bool
}

// NewSmoother creates a smoother over src with the given blend factor.
func NewSmoother(src Source, factor, maxJump float64) *Smoother {
	if factor <= 0 || factor > 1 {
		factor = 1
	}
	return &Smoother{src: src, Factor: factor, MaxJump: maxJump}
}

// Poll implements Source.
func (s *Smoother) Poll() (Sample, bool) {
	raw, ok := s.src.Poll()
	if !ok {
		// Target lost: forget history so the next detection is taken as-is
		// instead of being dragged from a stale position.
		s.hasPrev = false
		return Sample{}, false
	}

	if !s.hasPrev {
		s.prev = raw
		s.hasPrev = true
		return raw, true
	}

	if s.MaxJump > 0 {
		if math.Hypot(raw.X-s.prev.X, raw.Y-s.prev.Y) > s.MaxJump {
			return s.prev, true
		}
	}

	s.prev = Sample{
		X: s.prev.X + (raw.X-s.prev.X)*s.Factor,
		Y: s.prev.Y + (raw.Y-s.prev.Y)*s.Factor,
	}
	return s.prev, true
}
