package snake

// placeFood puts the food on a uniformly random cell not covered by the snake.
// Cells are drawn over the whole grid and redrawn while they hit a segment.
// A snake that covers every cell leaves the board without food.
func (e *Engine) placeFood() {
	if e.width <= 0 || e.height <= 0 || e.freeCells() == 0 {
		e.food = Point{X: -1, Y: -1}
		e.hasFood = false
		return
	}

	for {
		p := Point{X: e.rng.Intn(e.width), Y: e.rng.Intn(e.height)}
		if !e.isSnakeAt(p) {
			e.food = p
			e.hasFood = true
			return
		}
	}
}

// freeCells counts grid cells not covered by the snake.
func (e *Engine) freeCells() int {
	covered := 0
	for _, seg := range e.snake {
		if e.InBounds(seg) {
			covered++
		}
	}
	return e.width*e.height - covered
}
