package core

// RuntimeConfig contains configuration passed to the controller at
// initialization. It provides screen size and the RNG seed for
// deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 30)
	Seed     int64 // RNG seed, 0 means use current time in the platform layer
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 30,
		Seed:     0,
	}
}

// AudioEvent is a discrete trigger token handed to the audio collaborator.
// The collaborator must consult the Muted flag in the snapshot before
// playing anything.
type AudioEvent string

const (
	SoundStart AudioEvent = "start"
	SoundEat   AudioEvent = "eat"
	SoundBonus AudioEvent = "bonus"
	SoundCrash AudioEvent = "crash"
)

// GameState is the compact status the platform layer needs for flow
// control (save score, restart prompt).
type GameState struct {
	Score    int
	GameOver bool
	Paused   bool
}

// StepResult is returned by the controller after each simulation tick.
type StepResult struct {
	State  GameState
	Events []AudioEvent // Sounds triggered by this tick, zero or more
	Quit   bool         // True when the quit event was accepted this tick
}
