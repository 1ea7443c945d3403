package config

import (
	_ "embed"
)

//go:embed defaults/game.yaml
var defaultGameYAML []byte

// DefaultGame returns the default game configuration.
// Kept in sync with defaults/game.yaml; used as last-resort fallback if the
// embedded YAML somehow fails to parse.
func DefaultGame() Game {
	return Game{
		Grid: Grid{
			Width:  48,
			Height: 22,
		},
		Speed: Speed{
			MoveEveryTicks:  6,
			BoostEveryTicks: 4,
			BoostTicks:      180,
		},
		Scoring: Scoring{
			FoodPoints:  10,
			BonusPoints: 25,
			Growth:      1,
			BonusGrowth: 3,
		},
		Bonus: Bonus{
			Enabled:          true,
			FirstAfterTicks:  450,
			MinIntervalTicks: 600,
			MaxIntervalTicks: 900,
			LifetimeTicks:    300,
		},
		Menu: Menu{
			StartDwellTicks: 90,
		},
		Pointer: Pointer{
			SmoothingFactor: 0.15,
			MaxJump:         0.3,
		},
		HighScore: HighScore{
			Path: "~/.fingersnake/highscore.json",
		},
	}
}
