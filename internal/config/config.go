// Package config provides YAML-based game configuration loading and
// difficulty presets. The simulation never reads files itself; it receives
// a resolved Game value.
package config

// Game contains all tunable parameters for a snake session.
// All intervals are in simulation ticks (30 per second by default).
type Game struct {
	Grid      Grid      `yaml:"grid"`
	Speed     Speed     `yaml:"speed"`
	Scoring   Scoring   `yaml:"scoring"`
	Bonus     Bonus     `yaml:"bonus"`
	Menu      Menu      `yaml:"menu"`
	Pointer   Pointer   `yaml:"pointer"`
	HighScore HighScore `yaml:"highscore"`
}

// Grid defines the playfield dimensions in cells.
type Grid struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// Speed defines the movement cadence.
type Speed struct {
	MoveEveryTicks  int `yaml:"move_every_ticks"`  // Snake advances one cell per this many ticks
	BoostEveryTicks int `yaml:"boost_every_ticks"` // Cadence while a bonus boost is active
	BoostTicks      int `yaml:"boost_ticks"`       // How long a boost lasts
}

// Scoring defines points and growth per food type.
type Scoring struct {
	FoodPoints  int `yaml:"food_points"`
	BonusPoints int `yaml:"bonus_points"`
	Growth      int `yaml:"growth"`       // Segments gained per regular food
	BonusGrowth int `yaml:"bonus_growth"` // Segments gained per bonus food
}

// Bonus defines the bonus food spawn schedule.
type Bonus struct {
	Enabled          bool `yaml:"enabled"`
	FirstAfterTicks  int  `yaml:"first_after_ticks"`
	MinIntervalTicks int  `yaml:"min_interval_ticks"`
	MaxIntervalTicks int  `yaml:"max_interval_ticks"`
	LifetimeTicks    int  `yaml:"lifetime_ticks"` // Bonus disappears if uneaten
}

// Menu defines menu behavior.
type Menu struct {
	// StartDwellTicks is how long the start gesture must be held before the
	// session begins. A discrete start event (keyboard) skips the dwell.
	StartDwellTicks int `yaml:"start_dwell_ticks"`
}

// Pointer defines the smoothing applied to tracker samples.
type Pointer struct {
	SmoothingFactor float64 `yaml:"smoothing_factor"` // Blend weight of new samples, (0, 1]
	MaxJump         float64 `yaml:"max_jump"`         // Normalized single-frame jump rejection threshold
}

// HighScore defines where the high-score record lives.
type HighScore struct {
	Path string `yaml:"path"`
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ApplyPreset adjusts the movement cadence for a difficulty preset.
// Unknown or empty presets leave the config untouched.
func ApplyPreset(cfg *Game, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Speed.MoveEveryTicks = 8
		cfg.Speed.BoostEveryTicks = 6
	case DifficultyNormal:
		cfg.Speed.MoveEveryTicks = 6
		cfg.Speed.BoostEveryTicks = 4
	case DifficultyHard:
		cfg.Speed.MoveEveryTicks = 4
		cfg.Speed.BoostEveryTicks = 3
	}
}
