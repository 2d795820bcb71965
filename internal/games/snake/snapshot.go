package snake

// Snapshot captures the observable game state for determinism testing and logging.
type Snapshot struct {
	Tick      uint64
	Status    Status
	Cause     Cause
	Score     int
	HighScore int
	SnakeLen  int
	Head      Point
	Dir       Direction
	Pending   Direction
	Food      Point
	HasFood   bool
}

// Snapshot returns the current game snapshot.
func (e *Engine) Snapshot() Snapshot {
	return Snapshot{
		Tick:      e.ticks,
		Status:    e.status,
		Cause:     e.cause,
		Score:     e.score,
		HighScore: e.highScore,
		SnakeLen:  len(e.snake),
		Head:      e.snake[0],
		Dir:       e.direction,
		Pending:   e.pending,
		Food:      e.food,
		HasFood:   e.hasFood,
	}
}
