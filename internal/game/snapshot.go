package game

import "github.com/vovakirdan/finger-snake/internal/core"

// Snapshot is the immutable per-tick bundle handed to the renderer and
// used for determinism tests. Slices are copies; mutating a snapshot
// never touches controller state.
type Snapshot struct {
	Tick    uint64
	Session Session

	Snake   []core.Point // Head at index 0
	Heading Direction
	Food    core.Point
	Bonus   *core.Point // nil while no bonus is on the board
	Boosted bool

	Score     int
	HighScore int
	Muted     bool

	GridW int
	GridH int

	// StartDwell is the menu start-gesture hold progress in [0, 1].
	StartDwell float64
}

// Snapshot captures the current controller state.
func (c *Controller) Snapshot() Snapshot {
	snake := make([]core.Point, len(c.snake))
	copy(snake, c.snake)

	var bonus *core.Point
	if c.bonus != nil {
		b := *c.bonus
		bonus = &b
	}

	dwell := 0.0
	if c.cfg.Menu.StartDwellTicks > 0 {
		dwell = core.ClampF(float64(c.menuDwell)/float64(c.cfg.Menu.StartDwellTicks), 0, 1)
	}

	return Snapshot{
		Tick:       c.tick,
		Session:    c.session,
		Snake:      snake,
		Heading:    c.heading,
		Food:       c.food,
		Bonus:      bonus,
		Boosted:    c.tick < c.boostUntil,
		Score:      c.score,
		HighScore:  c.highScore,
		Muted:      c.muted,
		GridW:      c.cfg.Grid.Width,
		GridH:      c.cfg.Grid.Height,
		StartDwell: dwell,
	}
}
