// Package game implements the snake session controller: a tick-driven
// state machine over Menu, Playing, Paused and GameOver, advancing a grid
// snake simulation with collision detection, scoring and high-score
// persistence. It has no knowledge of terminals, cameras or audio devices.
package game

// Session is the controller's state machine state. Exactly one is active
// at a time; transitions happen only through defined events in Step.
type Session int

const (
	SessionMenu Session = iota
	SessionPlaying
	SessionPaused
	SessionGameOver
)

// String returns a human-readable name for the session state.
func (s Session) String() string {
	switch s {
	case SessionMenu:
		return "menu"
	case SessionPlaying:
		return "playing"
	case SessionPaused:
		return "paused"
	case SessionGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}
