package grid

import "testing"

func TestInBounds(t *testing.T) {
	w := NewWorld(12, 9, nil)

	cases := []struct {
		col, row int
		want     bool
	}{
		{0, 0, true},
		{11, 8, true},
		{12, 8, false},
		{11, 9, false},
		{-1, 0, false},
		{0, -1, false},
		{5, 4, true},
	}

	for _, c := range cases {
		if got := w.InBounds(c.col, c.row); got != c.want {
			t.Errorf("InBounds(%d, %d) = %v, want %v", c.col, c.row, got, c.want)
		}
	}
}

func TestIsOccupied(t *testing.T) {
	w := NewWorld(12, 9, []Obstacle{
		{Pos: Position{Col: 2, Row: 2}, Kind: ObstacleRock},
		{Pos: Position{Col: 6, Row: 4}, Kind: ObstacleCrate},
	})

	if !w.IsOccupied(2, 2) {
		t.Error("expected (2, 2) to be occupied")
	}
	if !w.IsOccupied(6, 4) {
		t.Error("expected (6, 4) to be occupied")
	}
	if w.IsOccupied(3, 3) {
		t.Error("expected (3, 3) to be free")
	}

	o, ok := w.ObstacleAt(2, 2)
	if !ok {
		t.Fatal("expected an obstacle at (2, 2)")
	}
	if o.Kind != ObstacleRock {
		t.Errorf("expected rock, got %s", o.Kind)
	}
}

func TestOutOfBoundsObstaclesDropped(t *testing.T) {
	w := NewWorld(12, 9, []Obstacle{
		{Pos: Position{Col: 20, Row: 2}, Kind: ObstacleRock},
		{Pos: Position{Col: 1, Row: 1}, Kind: ObstacleBush},
	})

	if len(w.Obstacles()) != 1 {
		t.Fatalf("expected 1 obstacle, got %d", len(w.Obstacles()))
	}
	if w.IsOccupied(20, 2) {
		t.Error("out-of-bounds obstacle should not register")
	}
}

func TestDuplicateCellKeepsFirst(t *testing.T) {
	w := NewWorld(12, 9, []Obstacle{
		{Pos: Position{Col: 2, Row: 2}, Kind: ObstacleRock},
		{Pos: Position{Col: 2, Row: 2}, Kind: ObstacleBush},
	})

	o, _ := w.ObstacleAt(2, 2)
	if o.Kind != ObstacleRock {
		t.Errorf("expected first obstacle to win, got %s", o.Kind)
	}
	if len(w.Obstacles()) != 1 {
		t.Errorf("expected 1 obstacle, got %d", len(w.Obstacles()))
	}
}
