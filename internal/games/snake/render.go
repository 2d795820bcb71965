package snake

import (
	"fmt"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// hudHeight is the number of screen rows above the board (status line and separator).
const hudHeight = 2

// cellWidth is the number of terminal columns per grid cell; terminal
// characters are roughly twice as tall as they are wide.
const cellWidth = 2

// Glyphs drawn for each grid cell.
var (
	headGlyph = [cellWidth]rune{'█', '█'}
	bodyGlyph = [cellWidth]rune{'▓', '▓'}
	foodGlyph = [cellWidth]rune{'●', ' '}
)

// Palette holds the colors used to draw the game.
type Palette struct {
	Head   core.Color
	Body   core.Color
	Food   core.Color
	Border core.Color
	Text   core.Color
	Accent core.Color
}

// DefaultPalette mirrors the classic look: green snake with a brighter head
// and orange food.
func DefaultPalette() Palette {
	return Palette{
		Head:   core.ColorBrightGreen,
		Body:   core.ColorGreen,
		Food:   core.ColorOrange,
		Border: core.ColorGray,
		Text:   core.ColorBrightWhite,
		Accent: core.ColorBrightYellow,
	}
}

// Renderer draws an Engine into a screen buffer.
type Renderer struct {
	Palette Palette
}

// NewRenderer creates a renderer with the given palette.
func NewRenderer(p Palette) Renderer {
	return Renderer{Palette: p}
}

// RequiredSize returns the screen size needed to show a width×height grid.
func RequiredSize(width, height int) (int, int) {
	return width*cellWidth + 2, height + 2 + hudHeight
}

// BoardRect returns the bordered board area for e on a screen of the given size.
func BoardRect(e *Engine, screenW int) core.Rect {
	w, h := RequiredSize(e.Width(), e.Height())
	return core.NewRect((screenW-w)/2, hudHeight, w, h-hudHeight)
}

// Render draws the current game state to the screen.
func (r Renderer) Render(e *Engine, dst *core.Screen) {
	dst.Clear()
	r.renderHUD(e, dst)

	needW, needH := RequiredSize(e.Width(), e.Height())
	if dst.Width() < needW || dst.Height() < needH {
		full := core.NewRect(0, 0, dst.Width(), dst.Height())
		r.renderOverlay(dst, full, "Window too small", fmt.Sprintf("Need %dx%d", needW, needH))
		return
	}

	board := BoardRect(e, dst.Width())
	dst.DrawBox(board, r.Palette.Border)

	if food, ok := e.Food(); ok {
		r.drawCell(dst, board, food, foodGlyph, r.Palette.Food)
	}

	// Draw body first so the head stays visible if anything overlaps.
	segments := e.Snake()
	for i := len(segments) - 1; i >= 0; i-- {
		if i == 0 {
			r.drawCell(dst, board, segments[i], headGlyph, r.Palette.Head)
		} else {
			r.drawCell(dst, board, segments[i], bodyGlyph, r.Palette.Body)
		}
	}

	switch e.Status() {
	case StatusNotStarted:
		r.renderOverlay(dst, board, "SNAKE", "Press Enter to start")
	case StatusGameOver:
		r.renderOverlay(dst, board, "Game Over!", fmt.Sprintf("Score: %d", e.Score()), "Press R to restart")
	}
}

// drawCell paints one grid cell inside the board border.
func (r Renderer) drawCell(dst *core.Screen, board core.Rect, p Point, glyph [cellWidth]rune, c core.Color) {
	sx := board.X + 1 + p.X*cellWidth
	sy := board.Y + 1 + p.Y
	for i, g := range glyph {
		dst.SetColored(sx+i, sy, g, c)
	}
}

// renderHUD draws the top status bar.
func (r Renderer) renderHUD(e *Engine, dst *core.Screen) {
	hud := fmt.Sprintf(" Snake  Score: %d  Best: %d", e.Score(), e.HighScore())
	dst.DrawTextColored(0, 0, hud, r.Palette.Text)

	status := fmt.Sprintf("%s ", statusLabel(e.Status()))
	dst.DrawTextColored(dst.Width()-len(status), 0, status, r.Palette.Accent)

	for x := 0; x < dst.Width(); x++ {
		dst.SetColored(x, 1, '─', r.Palette.Border)
	}
}

func statusLabel(s Status) string {
	switch s {
	case StatusRunning:
		return "Running"
	case StatusGameOver:
		return "Game over"
	default:
		return "Ready"
	}
}

// renderOverlay draws a boxed message centered in area.
func (r Renderer) renderOverlay(dst *core.Screen, area core.Rect, lines ...string) {
	maxLen := 0
	for _, l := range lines {
		maxLen = max(maxLen, len([]rune(l)))
	}
	box := area.Centered(core.Clamp(maxLen+4, 0, area.W), core.Clamp(len(lines)*2+1, 0, area.H))

	dst.DrawRect(box, ' ')
	dst.DrawBox(box, r.Palette.Border)

	for i, l := range lines {
		c := r.Palette.Text
		if i == 0 {
			c = r.Palette.Accent
		}
		x := box.X + (box.W-len([]rune(l)))/2
		dst.DrawTextColored(x, box.Y+1+i*2, l, c)
	}
}
