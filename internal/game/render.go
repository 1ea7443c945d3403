package game

import (
	"fmt"

	"github.com/vovakirdan/finger-snake/internal/core"
)

const hintLine = "Press Q to quit | P to pause | M to mute"

// Render draws the current state into the screen buffer. The buffer is
// cleared first; the platform layer turns it into styled terminal output.
func (c *Controller) Render(dst *core.Screen) {
	dst.Clear()

	hudH := 2
	boardW := c.cfg.Grid.Width + 2
	boardH := c.cfg.Grid.Height + 2

	if dst.Width() < boardW || dst.Height() < boardH+hudH+1 {
		dst.DrawTextCentered(dst.Height()/2, "Window too small")
		dst.DrawTextCentered(dst.Height()/2+1, fmt.Sprintf("Need at least %dx%d", boardW, boardH+hudH+1))
		return
	}

	c.renderHUD(dst)

	offX := (dst.Width() - boardW) / 2
	offY := hudH

	// Border around the playfield; the border cells are the walls.
	dst.DrawBox(core.NewRect(offX, offY, boardW, boardH))

	switch c.session {
	case SessionMenu:
		c.renderMenu(dst, offX, offY)
	case SessionPlaying, SessionPaused, SessionGameOver:
		c.renderBoard(dst, offX+1, offY+1)
	}

	switch c.session {
	case SessionPaused:
		c.renderOverlay(dst, "PAUSED", "Press P to resume")
	case SessionGameOver:
		c.renderOverlay(dst, "Game Over", fmt.Sprintf("Score: %d - Press R for menu", c.score))
	}

	dst.DrawTextCentered(dst.Height()-1, hintLine)
}

// renderHUD draws the top status bar.
func (c *Controller) renderHUD(dst *core.Screen) {
	hud := fmt.Sprintf(" Finger Snake  Score: %d  Best: %d", c.score, c.highScore)
	if c.muted {
		hud += "  [muted]"
	}
	dst.DrawText(0, 0, hud)
	dst.DrawHLine(0, 1, dst.Width(), '─')
}

// renderMenu draws the start screen with the gesture dwell progress.
func (c *Controller) renderMenu(dst *core.Screen, offX, offY int) {
	cy := offY + c.cfg.Grid.Height/2

	dst.DrawTextCentered(cy-2, "FINGER SNAKE")
	dst.DrawTextCentered(cy, "Raise your finger to start")
	dst.DrawTextCentered(cy+1, "(or press Enter)")

	// Dwell progress bar fills while the gesture is held
	if c.menuDwell > 0 && c.cfg.Menu.StartDwellTicks > 0 {
		barW := c.cfg.Grid.Width / 2
		filled := barW * c.menuDwell / c.cfg.Menu.StartDwellTicks
		bx := (dst.Width() - barW) / 2
		for i := 0; i < barW; i++ {
			ch := '░'
			if i < filled {
				ch = '█'
			}
			dst.SetColored(bx+i, cy+3, ch, core.ColorBrightGreen)
		}
	}
}

// renderBoard draws the snake and food at the given playfield origin.
func (c *Controller) renderBoard(dst *core.Screen, originX, originY int) {
	// Food
	if c.food.X >= 0 && c.food.Y >= 0 {
		dst.SetColored(originX+c.food.X, originY+c.food.Y, '*', core.ColorBrightRed)
	}
	if c.bonus != nil {
		dst.SetColored(originX+c.bonus.X, originY+c.bonus.Y, '$', core.ColorBrightYellow)
	}

	// Snake, head first
	bodyColor := core.ColorGreen
	headColor := core.ColorBrightGreen
	if c.tick < c.boostUntil {
		bodyColor = core.ColorYellow
		headColor = core.ColorBrightYellow
	}
	for i, seg := range c.snake {
		if i == 0 {
			dst.SetColored(originX+seg.X, originY+seg.Y, 'O', headColor)
		} else {
			dst.SetColored(originX+seg.X, originY+seg.Y, 'o', bodyColor)
		}
	}
}

// renderOverlay draws a centered boxed two-line message.
func (c *Controller) renderOverlay(dst *core.Screen, line1, line2 string) {
	w := dst.Width()
	h := dst.Height()

	maxLen := len(line1)
	if len(line2) > maxLen {
		maxLen = len(line2)
	}
	boxW := maxLen + 4
	boxH := 5
	box := core.NewRect((w-boxW)/2, (h-boxH)/2, boxW, boxH)

	dst.FillRect(core.NewRect(box.X+1, box.Y+1, box.W-2, box.H-2), ' ')
	dst.DrawBox(box)
	dst.DrawTextCentered(box.Y+1, line1)
	dst.DrawTextCentered(box.Y+3, line2)
}
