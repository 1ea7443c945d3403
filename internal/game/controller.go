package game

import (
	"errors"
	"io"
	"io/fs"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/finger-snake/internal/config"
	"github.com/vovakirdan/finger-snake/internal/core"
	"github.com/vovakirdan/finger-snake/internal/highscore"
	"github.com/vovakirdan/finger-snake/internal/pointer"
)

// initialLength is the snake's starting segment count.
const initialLength = 3

// Controller owns the whole session: state machine, snake simulation,
// food scheduling, score and high-score persistence. It is advanced by
// exactly one external driver calling Step once per frame; no method
// blocks and nothing here is safe for concurrent use.
type Controller struct {
	cfg    config.Game
	rng    *rand.Rand
	logger *log.Logger
	store  highscore.Store
	src    pointer.Source

	session   Session
	tick      uint64
	score     int
	highScore int
	muted     bool

	// Snake state, head at index 0
	snake         []core.Point
	heading       Direction
	nextHeading   Direction // Buffered heading for the next move
	pendingGrowth int       // Tail segments owed from eaten food

	// Food state
	food          core.Point
	bonus         *core.Point // nil while no bonus is on the board
	bonusExpireAt uint64
	nextBonusAt   uint64
	boostUntil    uint64

	moveTicker int // Counts ticks until the next move
	menuDwell  int // Consecutive menu ticks with the pointer detected
}

// New creates a controller. The store and source may be nil: without a
// store the high score lives in memory only, without a source the snake
// is steered by discrete direction events alone. The high score is loaded
// once, here - persistence failures degrade to 0 and are only logged.
func New(cfg config.Game, store highscore.Store, src pointer.Source, logger *log.Logger) *Controller {
	if src == nil {
		src = pointer.None
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	c := &Controller{
		cfg:    cfg,
		store:  store,
		src:    src,
		logger: logger,
	}

	if store != nil {
		hs, err := store.Load()
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				logger.Debug("no high score record yet, starting from 0")
			} else {
				logger.Warn("could not load high score, starting from 0", "error", err)
			}
			hs = 0
		}
		c.highScore = hs
	}

	return c
}

// Reset initializes the controller for a fresh process run: back to the
// menu with a seeded RNG. Muted and the loaded high score survive resets.
func (c *Controller) Reset(rt core.RuntimeConfig) {
	c.rng = rand.New(rand.NewSource(rt.Seed))
	c.tick = 0
	c.session = SessionMenu
	c.score = 0
	c.menuDwell = 0
	c.moveTicker = 0
	c.snake = nil
	c.bonus = nil
	c.boostUntil = 0
}

// Step advances the controller by one simulation tick. The quit event is
// checked first and takes priority over all other transitions; mute works
// in every state; everything else depends on the current session state.
func (c *Controller) Step(in core.InputFrame) core.StepResult {
	c.tick++

	if in.Has(core.ActionQuit) {
		return core.StepResult{State: c.State(), Quit: true}
	}

	if in.Has(core.ActionMute) {
		c.muted = !c.muted
	}

	if in.Has(core.ActionPause) {
		switch c.session {
		case SessionPlaying:
			c.session = SessionPaused
		case SessionPaused:
			c.session = SessionPlaying
		}
	}

	var events []core.AudioEvent

	switch c.session {
	case SessionMenu:
		events = c.stepMenu(in, events)
	case SessionPlaying:
		events = c.stepPlaying(in, events)
	case SessionGameOver:
		if in.Has(core.ActionRestart) {
			c.session = SessionMenu
			c.menuDwell = 0
		}
	case SessionPaused:
		// Simulation clock frozen; moveTicker intentionally untouched.
	}

	return core.StepResult{State: c.State(), Events: events}
}

// stepMenu waits for the start gesture to be held for the configured
// dwell, or for a discrete start event which skips the dwell.
func (c *Controller) stepMenu(in core.InputFrame, events []core.AudioEvent) []core.AudioEvent {
	if in.Has(core.ActionStart) {
		return c.beginSession(events)
	}

	if _, ok := c.src.Poll(); ok {
		c.menuDwell++
		if c.menuDwell >= c.cfg.Menu.StartDwellTicks {
			return c.beginSession(events)
		}
	} else {
		c.menuDwell = 0
	}
	return events
}

// beginSession enters Playing with a fresh snake, zero score and new food.
func (c *Controller) beginSession(events []core.AudioEvent) []core.AudioEvent {
	c.session = SessionPlaying
	c.score = 0
	c.menuDwell = 0
	c.moveTicker = 0
	c.pendingGrowth = 0
	c.boostUntil = 0

	c.initSnake()
	c.food = core.Point{X: -1, Y: -1}
	c.spawnFood()

	c.bonus = nil
	c.nextBonusAt = c.tick + uint64(c.cfg.Bonus.FirstAfterTicks)

	return append(events, core.SoundStart)
}

// initSnake places the snake at the grid center heading east, body
// extending west from the head.
func (c *Controller) initSnake() {
	cx := c.cfg.Grid.Width / 2
	cy := c.cfg.Grid.Height / 2

	c.snake = c.snake[:0]
	for i := 0; i < initialLength; i++ {
		x := cx - i
		if x < 0 {
			break // Degenerate grid, keep what fits
		}
		c.snake = append(c.snake, core.Point{X: x, Y: cy})
	}
	c.heading = DirRight
	c.nextHeading = DirRight
}

func (c *Controller) stepPlaying(in core.InputFrame, events []core.AudioEvent) []core.AudioEvent {
	c.steer(in)
	c.updateBonus()

	c.moveTicker++
	if c.moveTicker >= c.moveEvery() {
		c.moveTicker = 0
		events = c.advance(events)
	}
	return events
}

// steer updates the buffered heading from the pointer, or from discrete
// direction events when the tracker has no target. A heading equal to the
// exact reverse of the current one is rejected; an absent pointer sample
// leaves the previous heading unchanged.
func (c *Controller) steer(in core.InputFrame) {
	if len(c.snake) == 0 {
		return
	}

	if s, ok := c.src.Poll(); ok {
		dir, ok := quantizeHeading(s, c.snake[0], c.cfg.Grid.Width, c.cfg.Grid.Height)
		if ok && !dir.Opposite(c.heading) {
			c.nextHeading = dir
		}
		return
	}

	requested := c.nextHeading
	switch {
	case in.Has(core.ActionUp):
		requested = DirUp
	case in.Has(core.ActionDown):
		requested = DirDown
	case in.Has(core.ActionLeft):
		requested = DirLeft
	case in.Has(core.ActionRight):
		requested = DirRight
	}
	if !requested.Opposite(c.heading) {
		c.nextHeading = requested
	}
}

// moveEvery returns the current move cadence, accounting for an active
// bonus speed boost.
func (c *Controller) moveEvery() int {
	if c.tick < c.boostUntil && c.cfg.Speed.BoostEveryTicks > 0 {
		return c.cfg.Speed.BoostEveryTicks
	}
	if c.cfg.Speed.MoveEveryTicks > 0 {
		return c.cfg.Speed.MoveEveryTicks
	}
	return 1
}

// updateBonus runs the bonus food schedule: spawn after the timer, expire
// after the lifetime.
func (c *Controller) updateBonus() {
	if !c.cfg.Bonus.Enabled {
		return
	}

	if c.bonus != nil {
		if c.tick >= c.bonusExpireAt {
			c.bonus = nil
			c.nextBonusAt = c.tick + c.bonusInterval()
		}
		return
	}

	if c.tick >= c.nextBonusAt {
		if p, ok := c.randomEmptyCell(); ok {
			c.bonus = &p
			c.bonusExpireAt = c.tick + uint64(c.cfg.Bonus.LifetimeTicks)
		} else {
			c.nextBonusAt = c.tick + uint64(c.cfg.Bonus.MinIntervalTicks)
		}
	}
}

// bonusInterval picks the next spawn delay from the configured range.
func (c *Controller) bonusInterval() uint64 {
	min := c.cfg.Bonus.MinIntervalTicks
	max := c.cfg.Bonus.MaxIntervalTicks
	if max <= min {
		return uint64(min)
	}
	return uint64(min + c.rng.Intn(max-min+1))
}

// advance moves the snake one cell in the buffered heading, handling
// collisions and food.
func (c *Controller) advance(events []core.AudioEvent) []core.AudioEvent {
	if len(c.snake) == 0 {
		return events
	}

	c.heading = c.nextHeading
	dx, dy := c.heading.Delta()
	newHead := c.snake[0].Add(dx, dy)

	// Wall collision
	if newHead.X < 0 || newHead.X >= c.cfg.Grid.Width ||
		newHead.Y < 0 || newHead.Y >= c.cfg.Grid.Height {
		return c.crash(events)
	}

	// Self collision, excluding the tail cell when it is about to move
	checkLen := len(c.snake)
	if c.pendingGrowth == 0 && checkLen > 0 {
		checkLen--
	}
	for i := 0; i < checkLen; i++ {
		if c.snake[i] == newHead {
			return c.crash(events)
		}
	}

	c.snake = append([]core.Point{newHead}, c.snake...)

	switch {
	case newHead == c.food:
		c.score += c.cfg.Scoring.FoodPoints
		c.pendingGrowth += c.cfg.Scoring.Growth
		c.spawnFood()
		events = append(events, core.SoundEat)
	case c.bonus != nil && newHead == *c.bonus:
		c.score += c.cfg.Scoring.BonusPoints
		c.pendingGrowth += c.cfg.Scoring.BonusGrowth
		c.bonus = nil
		c.boostUntil = c.tick + uint64(c.cfg.Speed.BoostTicks)
		c.nextBonusAt = c.tick + c.bonusInterval()
		events = append(events, core.SoundBonus)
	}

	if c.pendingGrowth > 0 {
		c.pendingGrowth--
	} else if len(c.snake) > 1 {
		c.snake = c.snake[:len(c.snake)-1]
	}

	return events
}

// crash transitions to GameOver and persists the high score if beaten.
// Persistence failures are logged, never propagated: the session ends
// cleanly either way.
func (c *Controller) crash(events []core.AudioEvent) []core.AudioEvent {
	c.session = SessionGameOver

	if c.score > c.highScore {
		c.highScore = c.score
		if c.store != nil {
			if err := c.store.Save(c.score); err != nil {
				c.logger.Warn("could not persist high score", "score", c.score, "error", err)
			}
		}
	}

	return append(events, core.SoundCrash)
}

// spawnFood places regular food at a random empty cell.
func (c *Controller) spawnFood() {
	if p, ok := c.randomEmptyCell(); ok {
		c.food = p
		return
	}
	// Board completely full - park the food off-grid
	c.food = core.Point{X: -1, Y: -1}
}

// randomEmptyCell picks a uniformly random cell not occupied by the
// snake, the food or the bonus.
func (c *Controller) randomEmptyCell() (core.Point, bool) {
	var empty []core.Point
	for y := 0; y < c.cfg.Grid.Height; y++ {
		for x := 0; x < c.cfg.Grid.Width; x++ {
			p := core.Point{X: x, Y: y}
			if p == c.food || (c.bonus != nil && p == *c.bonus) || c.isSnakeAt(p) {
				continue
			}
			empty = append(empty, p)
		}
	}
	if len(empty) == 0 {
		return core.Point{}, false
	}
	return empty[c.rng.Intn(len(empty))], true
}

// isSnakeAt checks if the snake occupies the given point.
func (c *Controller) isSnakeAt(p core.Point) bool {
	for _, seg := range c.snake {
		if seg == p {
			return true
		}
	}
	return false
}

// State returns the compact status used by the platform layer.
func (c *Controller) State() core.GameState {
	return core.GameState{
		Score:    c.score,
		GameOver: c.session == SessionGameOver,
		Paused:   c.session == SessionPaused,
	}
}

// Session returns the current state machine state.
func (c *Controller) Session() Session {
	return c.session
}

// Muted reports the process-wide mute flag. Audio collaborators must
// consult this before every playback.
func (c *Controller) Muted() bool {
	return c.muted
}

// HighScore returns the best score known to this process.
func (c *Controller) HighScore() int {
	return c.highScore
}
