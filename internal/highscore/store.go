// Package highscore persists the single best score across sessions.
// The record layout is intentionally tiny: one JSON object with one
// integer field, overwritten atomically on every new best.
package highscore

// Store is the persistence boundary for the high score. The controller
// only ever loads once at startup and saves on a game-over that sets a
// new best; tests inject an in-memory implementation.
type Store interface {
	// Load reads the stored high score. A missing or unreadable record is
	// reported as an error; callers degrade to 0 rather than failing.
	Load() (int, error)

	// Save overwrites the stored high score.
	Save(score int) error
}
