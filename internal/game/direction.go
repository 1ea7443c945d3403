package game

import (
	"github.com/vovakirdan/finger-snake/internal/core"
	"github.com/vovakirdan/finger-snake/internal/pointer"
)

// Direction represents the snake's heading, one of four cardinals.
type Direction int

const (
	DirRight Direction = iota
	DirDown
	DirLeft
	DirUp
)

// String returns a human-readable name for the direction.
func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}

// Delta returns the grid displacement of one move in this direction.
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case DirUp:
		return 0, -1
	case DirDown:
		return 0, 1
	case DirLeft:
		return -1, 0
	case DirRight:
		return 1, 0
	}
	return 0, 0
}

// Opposite reports whether two directions are exact reverses.
func (d Direction) Opposite(o Direction) bool {
	return (d == DirUp && o == DirDown) ||
		(d == DirDown && o == DirUp) ||
		(d == DirLeft && o == DirRight) ||
		(d == DirRight && o == DirLeft)
}

// quantizeHeading converts a pointer sample into a cardinal heading by
// taking the dominant axis of the vector from the snake's head to the
// pointed-at cell. Returns ok=false when the pointer sits on the head
// cell (dead zone) and the heading should stay unchanged.
func quantizeHeading(s pointer.Sample, head core.Point, gridW, gridH int) (Direction, bool) {
	tx := core.Clamp(int(s.X*float64(gridW)), 0, gridW-1)
	ty := core.Clamp(int(s.Y*float64(gridH)), 0, gridH-1)

	dx := tx - head.X
	dy := ty - head.Y
	if dx == 0 && dy == 0 {
		return 0, false
	}

	if core.Abs(dx) >= core.Abs(dy) {
		if dx > 0 {
			return DirRight, true
		}
		return DirLeft, true
	}
	if dy > 0 {
		return DirDown, true
	}
	return DirUp, true
}
