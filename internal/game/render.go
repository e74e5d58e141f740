package game

import (
	"fmt"

	"github.com/vovakirdan/mazechase/internal/core"
	"github.com/vovakirdan/mazechase/internal/maze"
)

// Visual characters for rendering
const (
	WallChar       = '█'
	DotChar        = '·'
	PelletChar     = '●'
	PlayerChar     = '@'
	GhostChar      = 'M'
	FrightenedChar = 'W'
)

// frightBlinkTicks is how long before fright ends that ghosts start blinking.
const frightBlinkTicks = 120

// Render draws the current game state to the screen.
func (s *Session) Render(dst *core.Screen) {
	dst.Clear()

	s.renderHUD(dst)

	if s.level != nil {
		ox, oy, cw, ok := s.mazeOrigin(dst)
		if !ok {
			w, h := s.level.Grid.Width(), s.level.Grid.Height()
			dst.DrawTextCentered(dst.Height()/2-1, "Window too small")
			dst.DrawTextCentered(dst.Height()/2+1, fmt.Sprintf("Need %dx%d", w, h+2))
			return
		}
		s.renderMaze(dst, ox, oy, cw)
		s.renderPickups(dst, ox, oy, cw)
		s.renderGhosts(dst, ox, oy, cw)
		s.renderPlayer(dst, ox, oy, cw)
	}

	s.renderOverlay(dst)
}

// mazeOrigin centers the maze below the HUD row. Cells are two columns wide
// when the screen allows it so the maze keeps a square-ish aspect.
func (s *Session) mazeOrigin(dst *core.Screen) (ox, oy, cw int, ok bool) {
	w, h := s.level.Grid.Width(), s.level.Grid.Height()
	if w > dst.Width() || h+2 > dst.Height() {
		return 0, 0, 0, false
	}
	cw = 1
	if w*2 <= dst.Width() {
		cw = 2
	}
	ox = (dst.Width() - w*cw) / 2
	oy = 1 + (dst.Height()-2-h)/2
	return ox, oy, cw, true
}

// renderHUD draws the score, lives, and level indicator.
func (s *Session) renderHUD(dst *core.Screen) {
	st := s.State()
	dst.DrawText(1, 0, fmt.Sprintf("Score: %d  Best: %d", st.Score, s.Best()))
	dst.DrawTextCentered(0, fmt.Sprintf("Lives: %d", st.Lives))
	levelText := fmt.Sprintf("Level: %d", st.Level)
	dst.DrawText(dst.Width()-len(levelText)-1, 0, levelText)
}

func (s *Session) renderMaze(dst *core.Screen, ox, oy, cw int) {
	grid := s.level.Grid
	for _, w := range grid.Walls() {
		c := grid.PixelToCell(w.X, w.Y)
		for i := 0; i < cw; i++ {
			dst.SetColor(ox+c.X*cw+i, oy+c.Y, WallChar, s.level.WallColor)
		}
	}
}

func (s *Session) renderPickups(dst *core.Screen, ox, oy, cw int) {
	for _, p := range s.level.Dots {
		dst.SetColor(ox+p.Cell.X*cw, oy+p.Cell.Y, DotChar, core.ColorWhite)
	}
	for _, p := range s.level.Pellets {
		dst.SetColor(ox+p.Cell.X*cw, oy+p.Cell.Y, PelletChar, core.ColorBrightYellow)
	}
}

func (s *Session) renderGhosts(dst *core.Screen, ox, oy, cw int) {
	for _, g := range s.ghosts {
		if !g.Visible() {
			continue
		}
		glyph, color := GhostChar, g.Color
		if g.Mode() == maze.Frightened {
			glyph, color = FrightenedChar, core.ColorBrightBlue
			if g.FrightLeft() < frightBlinkTicks && (s.tick/8)%2 == 0 {
				color = core.ColorBrightWhite
			}
		}
		c := s.entityCell(g.Rect)
		dst.SetColor(ox+c.X*cw, oy+c.Y, glyph, color)
	}
}

func (s *Session) renderPlayer(dst *core.Screen, ox, oy, cw int) {
	if s.player == nil {
		return
	}
	c := s.entityCell(s.player.Rect)
	dst.SetColor(ox+c.X*cw, oy+c.Y, PlayerChar, core.ColorYellow)
}

// entityCell returns the cell under the center of an entity.
func (s *Session) entityCell(r core.Rect) maze.Cell {
	cx, cy := r.Center()
	return s.level.Grid.PixelToCell(cx, cy)
}

// renderOverlay draws phase messages.
func (s *Session) renderOverlay(dst *core.Screen) {
	bottom := dst.Height() - 1
	switch s.phase {
	case PhaseReady:
		dst.DrawTextCentered(bottom, "Press SPACE or an arrow key to start")

	case PhasePlaying:
		if s.clearDelay > 0 {
			drawCenteredBox(dst, "LEVEL CLEAR", fmt.Sprintf("Score: %d", s.score))
		}

	case PhasePaused:
		drawCenteredBox(dst, "PAUSED", "Press P to resume")

	case PhaseOver:
		title := "GAME OVER"
		if s.won {
			title = "YOU WIN!"
		}
		drawCenteredBox(dst, title, fmt.Sprintf("Score: %d  |  Press R to restart", s.score))
		if s.message != "" {
			dst.DrawTextCentered(bottom, s.message)
		}
	}
}

// drawCenteredBox draws a centered message box.
func drawCenteredBox(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := max(len([]rune(title)), len([]rune(subtitle))) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	box := core.NewRect(boxX, boxY, boxW, boxH)
	dst.FillRect(box, ' ')
	dst.DrawBox(box)

	dst.DrawText(boxX+(boxW-len([]rune(title)))/2, boxY+1, title)
	dst.DrawText(boxX+(boxW-len([]rune(subtitle)))/2, boxY+3, subtitle)
}
