package snake

import (
	"testing"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// newRunning returns a started 20×20 engine with food parked out of the way.
func newRunning(t *testing.T) *Engine {
	t.Helper()
	e := NewEngine(DefaultWidth, DefaultHeight, WithSeed(42))
	e.Initialize(DefaultWidth, DefaultHeight)
	e.food = Point{X: 0, Y: 0}
	return e
}

func TestNewEngineNotStarted(t *testing.T) {
	e := NewEngine(DefaultWidth, DefaultHeight, WithSeed(1))

	if e.Status() != StatusNotStarted {
		t.Fatalf("Expected status NotStarted, got %v", e.Status())
	}
	if len(e.Snake()) != 3 {
		t.Errorf("Expected initial layout to be drawn, snake len = %d", len(e.Snake()))
	}

	res := e.Tick()
	if res.Running {
		t.Error("Tick before start should report not running")
	}
	if e.Head() != (Point{X: 5, Y: 10}) {
		t.Errorf("Tick before start should not move snake, head = %v", e.Head())
	}

	if e.SetDirection(DirUp) {
		t.Error("SetDirection before start should be ignored")
	}
	if e.Pending() != DirRight {
		t.Errorf("Pending should stay Right, got %v", e.Pending())
	}
}

func TestInitializeLayout(t *testing.T) {
	e := NewEngine(DefaultWidth, DefaultHeight, WithSeed(7))
	e.Initialize(DefaultWidth, DefaultHeight)

	expected := []Point{{5, 10}, {4, 10}, {3, 10}}
	got := e.Snake()
	if len(got) != len(expected) {
		t.Fatalf("Snake len = %d, expected %d", len(got), len(expected))
	}
	for i := range expected {
		if got[i] != expected[i] {
			t.Errorf("Segment %d = %v, expected %v", i, got[i], expected[i])
		}
	}

	if e.Direction() != DirRight || e.Pending() != DirRight {
		t.Errorf("Expected Right/Right, got %v/%v", e.Direction(), e.Pending())
	}
	if e.Score() != 0 {
		t.Errorf("Score = %d, expected 0", e.Score())
	}
	if e.Status() != StatusRunning {
		t.Errorf("Status = %v, expected Running", e.Status())
	}
	food, ok := e.Food()
	if !ok {
		t.Fatal("Expected food to be placed")
	}
	if e.isSnakeAt(food) {
		t.Errorf("Food placed on snake at %v", food)
	}
}

func TestTickMovesRight(t *testing.T) {
	e := newRunning(t)

	res := e.Tick()

	if !res.Running || res.GameOver {
		t.Fatalf("Unexpected result %+v", res)
	}
	expected := []Point{{6, 10}, {5, 10}, {4, 10}}
	got := e.Snake()
	for i := range expected {
		if got[i] != expected[i] {
			t.Errorf("Segment %d = %v, expected %v", i, got[i], expected[i])
		}
	}
	if e.Score() != 0 {
		t.Errorf("Score = %d, expected 0", e.Score())
	}
}

func TestTickDirections(t *testing.T) {
	tests := []struct {
		name string
		dir  Direction
		head Point
	}{
		{"up", DirUp, Point{5, 9}},
		{"down", DirDown, Point{5, 11}},
		{"right", DirRight, Point{6, 10}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			e := newRunning(t)
			e.SetDirection(tc.dir)
			e.Tick()
			if e.Head() != tc.head {
				t.Errorf("Head = %v, expected %v", e.Head(), tc.head)
			}
			if e.Direction() != tc.dir {
				t.Errorf("Direction = %v, expected %v", e.Direction(), tc.dir)
			}
		})
	}
}

func TestNoImmediateReversal(t *testing.T) {
	e := newRunning(t)

	if e.SetDirection(DirLeft) {
		t.Error("Should not allow immediate reversal from Right to Left")
	}
	if e.Pending() != DirRight {
		t.Errorf("Pending = %v, expected Right", e.Pending())
	}

	if !e.SetDirection(DirUp) {
		t.Error("Up should be accepted while moving Right")
	}
	e.Tick()

	if e.Head() != (Point{X: 5, Y: 9}) {
		t.Errorf("Expected head to move up to (5, 9), got %v", e.Head())
	}
}

func TestReverseComparedAgainstCurrentDirection(t *testing.T) {
	e := newRunning(t)

	// Up is pending, current is still Right, so Down is not a reversal.
	e.SetDirection(DirUp)
	if !e.SetDirection(DirDown) {
		t.Fatal("Down should be accepted while current direction is Right")
	}
	if e.Pending() != DirDown {
		t.Errorf("Last valid request should win, pending = %v", e.Pending())
	}

	e.Tick()
	if e.Head() != (Point{X: 5, Y: 11}) {
		t.Errorf("Expected head at (5, 11), got %v", e.Head())
	}

	// Now moving Down: Up is the reversal.
	if e.SetDirection(DirUp) {
		t.Error("Up should be refused while moving Down")
	}
}

func TestWallCollision(t *testing.T) {
	e := newRunning(t)
	e.snake = []Point{{19, 10}, {18, 10}, {17, 10}}
	before := e.Snake()

	res := e.Tick()

	if !res.GameOver || res.Cause != CauseWall {
		t.Fatalf("Expected wall game over, got %+v", res)
	}
	if e.Status() != StatusGameOver {
		t.Errorf("Status = %v, expected GameOver", e.Status())
	}
	after := e.Snake()
	for i := range before {
		if before[i] != after[i] {
			t.Errorf("Snake changed on collision: %v -> %v", before, after)
			break
		}
	}
}

func TestWallCollisionEveryEdge(t *testing.T) {
	tests := []struct {
		name  string
		dir   Direction
		snake []Point
	}{
		{"top", DirUp, []Point{{5, 0}, {5, 1}, {5, 2}}},
		{"bottom", DirDown, []Point{{5, 19}, {5, 18}, {5, 17}}},
		{"left", DirLeft, []Point{{0, 5}, {1, 5}, {2, 5}}},
		{"right", DirRight, []Point{{19, 5}, {18, 5}, {17, 5}}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			e := newRunning(t)
			e.snake = tc.snake
			e.direction = tc.dir
			e.pending = tc.dir

			res := e.Tick()
			if !res.GameOver || res.Cause != CauseWall {
				t.Errorf("Expected wall collision, got %+v", res)
			}
		})
	}
}

func TestSelfCollision(t *testing.T) {
	e := newRunning(t)
	// Head at (5,5) moving Up into its own body at (5,4).
	e.snake = []Point{{5, 5}, {6, 5}, {6, 4}, {5, 4}, {4, 4}}
	e.direction = DirLeft
	e.pending = DirLeft
	e.SetDirection(DirUp)

	res := e.Tick()

	if !res.GameOver || res.Cause != CauseSelf {
		t.Fatalf("Expected self collision, got %+v", res)
	}
	if len(e.Snake()) != 5 {
		t.Errorf("Snake should be unchanged on collision, len = %d", len(e.Snake()))
	}
}

func TestMovingIntoTailCellIsFatal(t *testing.T) {
	e := newRunning(t)
	// 2x2 loop: the head's next cell is the current tail.
	e.snake = []Point{{5, 5}, {6, 5}, {6, 6}, {5, 6}}
	e.direction = DirLeft
	e.pending = DirLeft
	e.SetDirection(DirDown)

	res := e.Tick()

	if !res.GameOver || res.Cause != CauseSelf {
		t.Errorf("Moving into the tail cell should end the game, got %+v", res)
	}
}

func TestEatFood(t *testing.T) {
	e := newRunning(t)
	e.food = Point{X: 6, Y: 10}
	lenBefore := len(e.Snake())

	res := e.Tick()

	if !res.Ate {
		t.Fatal("Expected food to be eaten")
	}
	if res.Score != 10 || e.Score() != 10 {
		t.Errorf("Score = %d, expected 10", e.Score())
	}
	if len(e.Snake()) != lenBefore+1 {
		t.Errorf("Snake len = %d, expected %d", len(e.Snake()), lenBefore+1)
	}
	if e.Snake()[lenBefore] != (Point{X: 3, Y: 10}) {
		t.Errorf("Tail should stay in place while growing, got %v", e.Snake()[lenBefore])
	}
	food, ok := e.Food()
	if !ok {
		t.Fatal("Expected new food")
	}
	if e.isSnakeAt(food) {
		t.Errorf("New food %v placed on snake", food)
	}
}

func TestFoodPointsOption(t *testing.T) {
	e := NewEngine(DefaultWidth, DefaultHeight, WithSeed(3), WithFoodPoints(25))
	e.Start()
	e.food = Point{X: 6, Y: 10}

	e.Tick()

	if e.Score() != 25 {
		t.Errorf("Score = %d, expected 25", e.Score())
	}
}

func TestHighScoreSignal(t *testing.T) {
	e := NewEngine(DefaultWidth, DefaultHeight, WithSeed(5), WithHighScore(10))
	e.Start()

	// First food ties the record: no signal.
	e.food = Point{X: 6, Y: 10}
	res := e.Tick()
	if res.NewHighScore {
		t.Error("Tying the high score should not signal")
	}

	// Second food beats it.
	e.food = Point{X: 7, Y: 10}
	res = e.Tick()
	if !res.NewHighScore || res.HighScore != 20 {
		t.Errorf("Expected new high score 20, got %+v", res)
	}
	if e.HighScore() != 20 {
		t.Errorf("HighScore() = %d, expected 20", e.HighScore())
	}

	// Every further food keeps signalling.
	e.food = Point{X: 8, Y: 10}
	res = e.Tick()
	if !res.NewHighScore || res.HighScore != 30 {
		t.Errorf("Expected new high score 30, got %+v", res)
	}

	// High score survives a restart; score does not.
	e.Restart()
	if e.Score() != 0 || e.HighScore() != 30 {
		t.Errorf("After restart score/high = %d/%d, expected 0/30", e.Score(), e.HighScore())
	}
}

func TestGameOverIsFrozen(t *testing.T) {
	e := newRunning(t)
	e.snake = []Point{{19, 10}, {18, 10}, {17, 10}}
	e.Tick()

	snap := e.Snapshot()
	for i := 0; i < 5; i++ {
		res := e.Tick()
		if res.Running || res.GameOver {
			t.Errorf("Tick after game over should be a no-op, got %+v", res)
		}
	}
	if e.SetDirection(DirUp) {
		t.Error("SetDirection after game over should be ignored")
	}
	if e.Snapshot() != snap {
		t.Errorf("State changed after game over: %+v -> %+v", snap, e.Snapshot())
	}
}

func TestStartAndRestart(t *testing.T) {
	e := NewEngine(DefaultWidth, DefaultHeight, WithSeed(11))

	if !e.Start() {
		t.Fatal("Start from NotStarted should start a game")
	}
	e.Tick()
	if e.Start() {
		t.Error("Start while running should be a no-op")
	}
	if e.Head() != (Point{X: 6, Y: 10}) {
		t.Errorf("Start while running should not reset, head = %v", e.Head())
	}

	e.Restart()
	if e.Head() != (Point{X: 5, Y: 10}) || e.Status() != StatusRunning {
		t.Errorf("Restart should re-initialize, head = %v status = %v", e.Head(), e.Status())
	}

	e.snake = []Point{{19, 10}, {18, 10}, {17, 10}}
	e.Tick()
	if e.Status() != StatusGameOver {
		t.Fatalf("Expected game over, got %v", e.Status())
	}
	if !e.Start() {
		t.Error("Start after game over should start a new game")
	}
	if e.Cause() != CauseNone {
		t.Errorf("Cause should reset, got %v", e.Cause())
	}
}

// steerToFood turns the snake toward the food, falling back to any direction
// the engine accepts.
func steerToFood(e *Engine) {
	food, ok := e.Food()
	if !ok {
		return
	}
	head := e.Head()
	var want []Direction
	switch {
	case food.X > head.X:
		want = append(want, DirRight)
	case food.X < head.X:
		want = append(want, DirLeft)
	}
	switch {
	case food.Y > head.Y:
		want = append(want, DirDown)
	case food.Y < head.Y:
		want = append(want, DirUp)
	}
	for _, d := range want {
		if e.SetDirection(d) {
			return
		}
	}
}

func TestLengthInvariant(t *testing.T) {
	e := NewEngine(DefaultWidth, DefaultHeight, WithSeed(2024))
	e.Start()

	ate := 0
	for i := 0; i < 2000; i++ {
		if !e.Running() {
			e.Start()
		}
		steerToFood(e)

		before := len(e.Snake())
		res := e.Tick()
		if !res.Running {
			continue
		}
		after := len(e.Snake())
		if res.Ate {
			ate++
			if after != before+1 {
				t.Fatalf("tick %d: ate but len %d -> %d", i, before, after)
			}
		} else if after != before {
			t.Fatalf("tick %d: len changed %d -> %d without food", i, before, after)
		}
		if food, ok := e.Food(); ok && e.isSnakeAt(food) {
			t.Fatalf("tick %d: food %v overlaps snake", i, food)
		}
	}
	if ate == 0 {
		t.Error("Expected the steering loop to eat at least once")
	}
}

func TestScoreMonotonic(t *testing.T) {
	e := NewEngine(DefaultWidth, DefaultHeight, WithSeed(99))
	e.Start()

	last := 0
	for i := 0; i < 200; i++ {
		if !e.Running() {
			break
		}
		steerToFood(e)
		res := e.Tick()
		if res.Score < last {
			t.Fatalf("Score decreased %d -> %d", last, res.Score)
		}
		last = res.Score
	}

	e.Initialize(DefaultWidth, DefaultHeight)
	if e.Score() != 0 {
		t.Errorf("Initialize should reset score, got %d", e.Score())
	}
}

func TestFoodSpawnValidity(t *testing.T) {
	e := NewEngine(8, 12, WithSeed(999))
	e.Start()

	for i := 0; i < 200; i++ {
		e.placeFood()

		food, ok := e.Food()
		if !ok {
			t.Fatal("Expected food on a mostly empty board")
		}
		if e.isSnakeAt(food) {
			t.Errorf("Food spawned on snake at %v", food)
		}
		if !e.InBounds(food) {
			t.Errorf("Food spawned out of bounds at %v", food)
		}
	}
}

func TestFoodOnlyFreeCell(t *testing.T) {
	e := NewEngine(2, 2, WithSeed(1))
	e.snake = []Point{{0, 0}, {1, 0}, {1, 1}}

	for i := 0; i < 20; i++ {
		e.placeFood()
		if food, ok := e.Food(); !ok || food != (Point{X: 0, Y: 1}) {
			t.Fatalf("Expected food on the only free cell (0,1), got %v %v", food, ok)
		}
	}
}

func TestFoodFullBoard(t *testing.T) {
	e := NewEngine(2, 2, WithSeed(1))
	e.snake = []Point{{0, 0}, {1, 0}, {1, 1}, {0, 1}}

	e.placeFood()

	if _, ok := e.Food(); ok {
		t.Error("A full board should leave no food")
	}
}

func TestDeterminism(t *testing.T) {
	// Two engines with the same seed should produce identical snapshots
	e1 := NewEngine(DefaultWidth, DefaultHeight, WithSeed(12345))
	e2 := NewEngine(DefaultWidth, DefaultHeight, WithSeed(12345))
	e1.Start()
	e2.Start()

	for i := 0; i < 60; i++ {
		switch i {
		case 3:
			e1.SetDirection(DirDown)
			e2.SetDirection(DirDown)
		case 6:
			e1.SetDirection(DirRight)
			e2.SetDirection(DirRight)
		}
		e1.Tick()
		e2.Tick()
	}

	if e1.Snapshot() != e2.Snapshot() {
		t.Errorf("Snapshot mismatch:\n%+v\n%+v", e1.Snapshot(), e2.Snapshot())
	}
}

func TestDirectionHelpers(t *testing.T) {
	pairs := map[Direction]Direction{
		DirUp:    DirDown,
		DirDown:  DirUp,
		DirLeft:  DirRight,
		DirRight: DirLeft,
	}
	for d, opp := range pairs {
		if d.Opposite() != opp {
			t.Errorf("%v.Opposite() = %v, expected %v", d, d.Opposite(), opp)
		}
		sum := d.Delta().Add(opp.Delta())
		if sum != (Point{}) {
			t.Errorf("%v and %v deltas should cancel, got %v", d, opp, sum)
		}
	}

	if Direction(9).Valid() {
		t.Error("Direction(9) should be invalid")
	}

	actions := map[core.Action]Direction{
		core.ActionUp:    DirUp,
		core.ActionDown:  DirDown,
		core.ActionLeft:  DirLeft,
		core.ActionRight: DirRight,
	}
	for a, want := range actions {
		got, ok := DirectionFor(a)
		if !ok || got != want {
			t.Errorf("DirectionFor(%v) = %v, %v; expected %v", a, got, ok, want)
		}
	}
	if _, ok := DirectionFor(core.ActionRestart); ok {
		t.Error("Restart is not a steering action")
	}
}
