// Package pointer abstracts the gesture tracker behind a pollable source
// of 2D pointer samples. The camera/ML pipeline lives entirely outside this
// module: whatever produces positions only has to publish them through a
// Source, and the simulation never learns where they came from.
package pointer

// Sample is one pointer observation in normalized coordinates.
// X and Y are in [0, 1] relative to the tracked frame; (0, 0) is the
// top-left corner.
type Sample struct {
	X, Y float64
}

// Source produces the latest pointer sample without blocking.
// Poll returns ok=false when the tracker currently has no target; callers
// treat that as "no heading change", never as an error.
type Source interface {
	Poll() (Sample, bool)
}

// Func adapts a plain function to the Source interface.
type Func func() (Sample, bool)

// Poll implements Source.
func (f Func) Poll() (Sample, bool) {
	return f()
}

// None is a Source that never detects a target.
var None Source = Func(func() (Sample, bool) {
	return Sample{}, false
})
