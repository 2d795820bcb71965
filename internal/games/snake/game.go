// Package snake implements the Snake game engine: snake movement, collision
// detection, growth and food placement on a fixed grid.
//
// The engine is driven from outside. A periodic trigger calls Tick, an input
// source calls SetDirection between ticks, and a renderer reads the public
// state afterwards. Engine is not safe for concurrent use; callers serialize
// Tick and SetDirection (the Bubble Tea runtime does this for free).
package snake

import (
	"math/rand"
	"time"
)

// GameID keys this game's rows in the score store.
const GameID = "snake"

// Grid and scoring defaults.
const (
	DefaultWidth      = 20
	DefaultHeight     = 20
	DefaultFoodPoints = 10
)

// Starting layout: a horizontal 3-segment snake with its head at (5, 10),
// trailing left.
const (
	startHeadX = 5
	startHeadY = 10
	startLen   = 3
)

// MinWidth and MinHeight are the smallest grid that holds the starting layout.
const (
	MinWidth  = startHeadX + 1
	MinHeight = startHeadY + 1
)

// Status is the lifecycle state of a game.
type Status int

const (
	StatusNotStarted Status = iota
	StatusRunning
	StatusGameOver
)

func (s Status) String() string {
	switch s {
	case StatusNotStarted:
		return "not_started"
	case StatusRunning:
		return "running"
	case StatusGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Cause records why a game ended.
type Cause int

const (
	CauseNone Cause = iota
	CauseWall
	CauseSelf
)

func (c Cause) String() string {
	switch c {
	case CauseWall:
		return "wall"
	case CauseSelf:
		return "self"
	default:
		return "none"
	}
}

// TickResult reports what a single Tick did so collaborators can react
// without polling every field.
type TickResult struct {
	Running      bool  // false if the tick was a no-op because no game is running
	GameOver     bool  // this tick ended the game
	Cause        Cause // why the game ended, CauseNone otherwise
	Ate          bool  // food was consumed this tick
	Score        int
	NewHighScore bool // score passed the high-score reference this tick
	HighScore    int
}

// Engine owns all mutable game state.
type Engine struct {
	width  int
	height int
	rng    *rand.Rand

	snake     []Point // head at index 0
	direction Direction
	pending   Direction
	food      Point
	hasFood   bool

	score      int
	highScore  int
	foodPoints int

	status Status
	cause  Cause
	ticks  uint64
}

// Option configures an Engine.
type Option func(*Engine)

// WithSeed seeds food placement for reproducible games.
func WithSeed(seed int64) Option {
	return func(e *Engine) {
		e.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand supplies the random source used for food placement.
func WithRand(r *rand.Rand) Option {
	return func(e *Engine) {
		e.rng = r
	}
}

// WithFoodPoints sets the score increment per food. Non-positive values are ignored.
func WithFoodPoints(points int) Option {
	return func(e *Engine) {
		if points > 0 {
			e.foodPoints = points
		}
	}
}

// WithHighScore sets the initial high-score reference.
func WithHighScore(score int) Option {
	return func(e *Engine) {
		e.highScore = max(score, 0)
	}
}

// NewEngine creates an engine for a width×height grid. The starting layout is
// placed immediately so a renderer can draw a first frame, but the game stays
// in StatusNotStarted until Start or Initialize is called.
func NewEngine(width, height int, opts ...Option) *Engine {
	e := &Engine{
		foodPoints: DefaultFoodPoints,
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.rng == nil {
		e.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	e.reset(width, height)
	e.status = StatusNotStarted
	return e
}

// Initialize resets all game state for a new game on a width×height grid and
// marks it running. It may be called any number of times.
func (e *Engine) Initialize(width, height int) {
	e.reset(width, height)
	e.status = StatusRunning
}

// Start begins a game unless one is already running.
// It reports whether a new game was started.
func (e *Engine) Start() bool {
	if e.status == StatusRunning {
		return false
	}
	e.Initialize(e.width, e.height)
	return true
}

// Restart abandons any game in progress and starts a fresh one.
func (e *Engine) Restart() {
	e.Initialize(e.width, e.height)
}

// reset lays out the starting snake and food without touching status.
func (e *Engine) reset(width, height int) {
	e.width = width
	e.height = height
	e.snake = make([]Point, 0, startLen)
	for i := 0; i < startLen; i++ {
		e.snake = append(e.snake, Point{X: startHeadX - i, Y: startHeadY})
	}
	e.direction = DirRight
	e.pending = DirRight
	e.score = 0
	e.cause = CauseNone
	e.ticks = 0
	e.placeFood()
}

// SetDirection requests a direction for the next tick. Requests are ignored
// unless a game is running, and the exact reverse of the current direction
// is always refused. The last accepted request before a tick wins.
func (e *Engine) SetDirection(d Direction) bool {
	if e.status != StatusRunning || !d.Valid() {
		return false
	}
	if d == e.direction.Opposite() {
		return false
	}
	e.pending = d
	return true
}

// Tick advances the game by one step. It is a no-op unless a game is running.
func (e *Engine) Tick() TickResult {
	if e.status != StatusRunning {
		return e.result(false)
	}
	e.ticks++

	e.direction = e.pending
	newHead := e.snake[0].Add(e.direction.Delta())

	if !e.InBounds(newHead) {
		return e.end(CauseWall)
	}

	// The whole pre-move body counts, including the tail cell that would be
	// vacated this tick.
	if e.isSnakeAt(newHead) {
		return e.end(CauseSelf)
	}

	if e.hasFood && newHead == e.food {
		e.snake = append([]Point{newHead}, e.snake...)
		e.score += e.foodPoints

		res := e.result(true)
		res.Ate = true
		if e.score > e.highScore {
			e.highScore = e.score
			res.NewHighScore = true
			res.HighScore = e.highScore
		}
		e.placeFood()
		return res
	}

	e.snake = append([]Point{newHead}, e.snake[:len(e.snake)-1]...)
	return e.result(true)
}

// end moves the game to StatusGameOver without touching the snake.
func (e *Engine) end(cause Cause) TickResult {
	e.status = StatusGameOver
	e.cause = cause
	res := e.result(false)
	res.GameOver = true
	res.Cause = cause
	return res
}

func (e *Engine) result(running bool) TickResult {
	return TickResult{
		Running:   running,
		Score:     e.score,
		HighScore: e.highScore,
	}
}

// InBounds reports whether p lies on the grid.
func (e *Engine) InBounds(p Point) bool {
	return p.X >= 0 && p.X < e.width && p.Y >= 0 && p.Y < e.height
}

// isSnakeAt checks if the snake occupies the given point.
func (e *Engine) isSnakeAt(p Point) bool {
	for _, seg := range e.snake {
		if seg == p {
			return true
		}
	}
	return false
}

// SetHighScore replaces the high-score reference, e.g. after loading it from storage.
func (e *Engine) SetHighScore(score int) {
	e.highScore = max(score, 0)
}

// Width returns the grid width in cells.
func (e *Engine) Width() int { return e.width }

// Height returns the grid height in cells.
func (e *Engine) Height() int { return e.height }

// Snake returns a copy of the snake segments, head first.
func (e *Engine) Snake() []Point {
	out := make([]Point, len(e.snake))
	copy(out, e.snake)
	return out
}

// Head returns the head position.
func (e *Engine) Head() Point { return e.snake[0] }

// Food returns the food position and whether any food is on the board.
func (e *Engine) Food() (Point, bool) { return e.food, e.hasFood }

// HasFood reports whether food is on the board. It is false only when the snake fills the grid.
func (e *Engine) HasFood() bool { return e.hasFood }

// Score returns the current score.
func (e *Engine) Score() int { return e.score }
func (e *Engine) HighScore() int { return e.highScore }
func (e *Engine) FoodPoints() int { return e.foodPoints }
func (e *Engine) Status() Status { return e.status }
func (e *Engine) Cause() Cause { return e.cause }
func (e *Engine) Direction() Direction { return e.direction }
func (e *Engine) Pending() Direction { return e.pending }
func (e *Engine) Ticks() uint64 { return e.ticks }

// Running reports whether a game is in progress.
func (e *Engine) Running() bool { return e.status == StatusRunning }
