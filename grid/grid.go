// Package grid models the static game board: its dimensions and which
// cells are occupied by obstacles. All queries are pure.
package grid

// Position is a cell on the board, addressed as (column, row).
type Position struct {
	Col int
	Row int
}

// ObstacleKind identifies the visual category of an obstacle.
type ObstacleKind string

const (
	ObstacleRock  ObstacleKind = "rock"
	ObstacleCrate ObstacleKind = "crate"
	ObstacleBush  ObstacleKind = "bush"
)

// Obstacle occupies exactly one cell and never moves.
type Obstacle struct {
	Pos  Position
	Kind ObstacleKind
}

// World holds the board dimensions and the obstacle layout. The layout is
// fixed at construction; a session reset does not touch it.
type World struct {
	Cols int
	Rows int

	obstacles map[Position]*Obstacle
	order     []*Obstacle // stable iteration for rendering
}

// NewWorld creates a board of the given size with the given obstacles.
// Obstacles outside the board are dropped.
func NewWorld(cols, rows int, obstacles []Obstacle) *World {
	w := &World{
		Cols:      cols,
		Rows:      rows,
		obstacles: make(map[Position]*Obstacle),
	}
	for i := range obstacles {
		o := obstacles[i]
		if !w.InBounds(o.Pos.Col, o.Pos.Row) {
			continue
		}
		if _, taken := w.obstacles[o.Pos]; taken {
			continue
		}
		w.obstacles[o.Pos] = &o
		w.order = append(w.order, &o)
	}
	return w
}

// InBounds reports whether (col, row) lies on the board.
func (w *World) InBounds(col, row int) bool {
	return col >= 0 && col < w.Cols && row >= 0 && row < w.Rows
}

// IsOccupied reports whether an obstacle occupies (col, row).
func (w *World) IsOccupied(col, row int) bool {
	_, ok := w.obstacles[Position{Col: col, Row: row}]
	return ok
}

// ObstacleAt returns the obstacle at (col, row), if any.
func (w *World) ObstacleAt(col, row int) (*Obstacle, bool) {
	o, ok := w.obstacles[Position{Col: col, Row: row}]
	return o, ok
}

// Obstacles returns all obstacles in their authored order.
func (w *World) Obstacles() []*Obstacle {
	return w.order
}
