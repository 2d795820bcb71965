package config

import (
	_ "embed"

	"github.com/vovakirdan/tui-snake/internal/games/snake"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// DefaultSnakeConfig returns the default Snake configuration.
func DefaultSnakeConfig() SnakeConfig {
	return SnakeConfig{
		Grid: GridConfig{
			Width:  snake.DefaultWidth,
			Height: snake.DefaultHeight,
		},
		Speed: SpeedConfig{
			TickMS: 150,
		},
		Scoring: ScoringConfig{
			FoodPoints: snake.DefaultFoodPoints,
		},
		Palette: PaletteConfig{
			Head:   "bright_green",
			Body:   "green",
			Food:   "orange",
			Border: "gray",
			Text:   "bright_white",
			Accent: "bright_yellow",
		},
	}
}
