// Package config provides YAML-based configuration loading for the game.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

// SnakeConfig contains all configuration for the Snake game.
type SnakeConfig struct {
	Grid    GridConfig    `yaml:"grid"`
	Speed   SpeedConfig   `yaml:"speed"`
	Scoring ScoringConfig `yaml:"scoring"`
	Palette PaletteConfig `yaml:"palette"`
}

// GridConfig defines the board size in cells.
type GridConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// SpeedConfig defines the game loop cadence.
type SpeedConfig struct {
	TickMS int `yaml:"tick_ms"`
}

// ScoringConfig defines how food is scored.
type ScoringConfig struct {
	FoodPoints int `yaml:"food_points"`
}

// PaletteConfig names the colors used for each game element.
type PaletteConfig struct {
	Head   string `yaml:"head"`
	Body   string `yaml:"body"`
	Food   string `yaml:"food"`
	Border string `yaml:"border"`
	Text   string `yaml:"text"`
	Accent string `yaml:"accent"`
}

// TickInterval returns the configured time between ticks.
func (c SnakeConfig) TickInterval() time.Duration {
	return time.Duration(c.Speed.TickMS) * time.Millisecond
}

// Validate checks that the config describes a playable game.
func (c SnakeConfig) Validate() error {
	if c.Grid.Width < snake.MinWidth || c.Grid.Height < snake.MinHeight {
		return fmt.Errorf("%w: grid %dx%d is smaller than the minimum %dx%d",
			ErrInvalid, c.Grid.Width, c.Grid.Height, snake.MinWidth, snake.MinHeight)
	}
	if c.Speed.TickMS <= 0 {
		return fmt.Errorf("%w: speed.tick_ms must be positive, got %d", ErrInvalid, c.Speed.TickMS)
	}
	if c.Scoring.FoodPoints <= 0 {
		return fmt.Errorf("%w: scoring.food_points must be positive, got %d", ErrInvalid, c.Scoring.FoodPoints)
	}
	if _, err := c.Palette.Resolve(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	return nil
}

// Resolve converts color names to a render palette. Empty names keep the
// default color for that element.
func (p PaletteConfig) Resolve() (snake.Palette, error) {
	out := snake.DefaultPalette()
	fields := []struct {
		name string
		dst  *core.Color
	}{
		{p.Head, &out.Head},
		{p.Body, &out.Body},
		{p.Food, &out.Food},
		{p.Border, &out.Border},
		{p.Text, &out.Text},
		{p.Accent, &out.Accent},
	}
	for _, f := range fields {
		if f.name == "" {
			continue
		}
		c, err := core.ParseColor(f.name)
		if err != nil {
			return out, err
		}
		*f.dst = c
	}
	return out, nil
}
