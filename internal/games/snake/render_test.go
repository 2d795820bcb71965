package snake

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-snake/internal/core"
)

func screenText(s *core.Screen) string {
	return s.String()
}

func TestRequiredSize(t *testing.T) {
	w, h := RequiredSize(DefaultWidth, DefaultHeight)
	if w != 42 || h != 24 {
		t.Errorf("RequiredSize(20, 20) = %dx%d, expected 42x24", w, h)
	}
}

func TestRenderRunning(t *testing.T) {
	e := newRunning(t)
	dst := core.NewScreen(80, 24)
	r := NewRenderer(DefaultPalette())

	r.Render(e, dst)

	board := BoardRect(e, dst.Width())
	if board != core.NewRect(19, 2, 42, 22) {
		t.Fatalf("BoardRect = %+v, expected {19 2 42 22}", board)
	}

	// Head at grid (5,10) -> screen (19+1+10, 2+1+10)
	head := dst.GetCell(30, 13)
	if head.Rune != '█' || head.Color != core.ColorBrightGreen {
		t.Errorf("Head cell = %+v", head)
	}
	body := dst.GetCell(28, 13)
	if body.Rune != '▓' || body.Color != core.ColorGreen {
		t.Errorf("Body cell = %+v", body)
	}
	food := dst.GetCell(20, 3)
	if food.Rune != '●' || food.Color != core.ColorOrange {
		t.Errorf("Food cell = %+v", food)
	}

	if dst.Get(19, 2) != '┌' || dst.Get(60, 23) != '┘' {
		t.Error("Board border not drawn")
	}

	hud := dst.Row(0)
	if !strings.Contains(hud, "Score: 0") || !strings.Contains(hud, "Best: 0") {
		t.Errorf("HUD = %q", hud)
	}
	if !strings.Contains(hud, "Running") {
		t.Errorf("HUD should show running status, got %q", hud)
	}
	if strings.Contains(screenText(dst), "Game Over!") {
		t.Error("Running game should not show game over overlay")
	}
}

func TestRenderNotStarted(t *testing.T) {
	e := NewEngine(DefaultWidth, DefaultHeight, WithSeed(1))
	dst := core.NewScreen(80, 24)

	NewRenderer(DefaultPalette()).Render(e, dst)

	text := screenText(dst)
	if !strings.Contains(text, "Press Enter to start") {
		t.Errorf("Expected start prompt, got:\n%s", text)
	}
	if !strings.Contains(dst.Row(0), "Ready") {
		t.Errorf("HUD should show Ready, got %q", dst.Row(0))
	}
}

func TestRenderGameOver(t *testing.T) {
	e := newRunning(t)
	e.food = Point{X: 6, Y: 10}
	e.Tick()
	e.snake = []Point{{19, 10}, {18, 10}, {17, 10}, {16, 10}}
	e.Tick()
	if e.Status() != StatusGameOver {
		t.Fatalf("Expected game over, got %v", e.Status())
	}

	dst := core.NewScreen(80, 24)
	NewRenderer(DefaultPalette()).Render(e, dst)

	text := screenText(dst)
	for _, want := range []string{"Game Over!", "Score: 10", "Press R to restart"} {
		if !strings.Contains(text, want) {
			t.Errorf("Expected %q in game over screen:\n%s", want, text)
		}
	}
	if !strings.Contains(dst.Row(0), "Best: 10") {
		t.Errorf("HUD should show best 10, got %q", dst.Row(0))
	}
}

func TestRenderTooSmall(t *testing.T) {
	e := newRunning(t)
	dst := core.NewScreen(30, 10)

	NewRenderer(DefaultPalette()).Render(e, dst)

	text := screenText(dst)
	if !strings.Contains(text, "Window too small") {
		t.Errorf("Expected too-small notice, got:\n%s", text)
	}
	if strings.ContainsRune(text, '█') {
		t.Error("Board should not be drawn on a too-small screen")
	}
}

func TestRenderCustomPalette(t *testing.T) {
	e := newRunning(t)
	dst := core.NewScreen(80, 24)
	p := DefaultPalette()
	p.Head = core.ColorCyan

	NewRenderer(p).Render(e, dst)

	if c := dst.GetCell(30, 13).Color; c != core.ColorCyan {
		t.Errorf("Head color = %v, expected cyan", c)
	}
}
