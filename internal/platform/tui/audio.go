package tui

import (
	"io"
	"os"

	"github.com/vovakirdan/finger-snake/internal/core"
)

// BellPlayer plays audio events as terminal bells. The caller decides
// whether to play at all; the player itself never checks the mute flag.
type BellPlayer struct {
	w io.Writer
}

// NewBellPlayer creates a player writing to w, or to stderr when w is nil.
// Stderr keeps the bell out of the alternate screen buffer.
func NewBellPlayer(w io.Writer) *BellPlayer {
	if w == nil {
		w = os.Stderr
	}
	return &BellPlayer{w: w}
}

// Play emits a bell for the given event.
func (p *BellPlayer) Play(e core.AudioEvent) {
	if e == "" {
		return
	}
	//nolint:errcheck // Best-effort, a lost bell is inaudible anyway
	p.w.Write([]byte("\a"))
}
