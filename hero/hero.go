// Package hero implements the player character's movement state machine.
// The hero occupies one grid cell at a time; the logical cell updates the
// moment a move is accepted while the pixel position animates toward it
// over the following ticks. At most one action is in flight at once, and a
// request made while one is running is rejected, never queued.
package hero

import (
	"errors"
	"math"

	"chosenoffset.com/codeventure/grid"
)

// Rejection reasons for move and perform requests.
var (
	ErrOutOfBounds = errors.New("target cell is outside the board")
	ErrBlocked     = errors.New("target cell is blocked by an obstacle")
	ErrBusy        = errors.New("hero is already acting")
)

// Direction represents a movement direction.
type Direction int

const (
	DirNone Direction = iota
	DirUp
	DirDown
	DirLeft
	DirRight
)

// Delta returns the (col, row) delta for a direction.
func (d Direction) Delta() (int, int) {
	switch d {
	case DirUp:
		return 0, -1
	case DirDown:
		return 0, 1
	case DirLeft:
		return -1, 0
	case DirRight:
		return 1, 0
	default:
		return 0, 0
	}
}

// String returns a lowercase name for the direction.
func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "none"
	}
}

// State identifies the hero's current activity.
type State int

const (
	StateIdle State = iota
	StateMoving
	StatePerforming
)

// PerformKind identifies a non-movement action.
type PerformKind int

const (
	PerformSpin PerformKind = iota
	PerformDance
)

// Fixed performance durations in ticks (60 ticks per second).
const (
	SpinTicks  = 30
	DanceTicks = 60
)

// Duration returns the length of the performance in ticks.
func (k PerformKind) Duration() int {
	if k == PerformDance {
		return DanceTicks
	}
	return SpinTicks
}

// MoveSpeed is the pixel step applied each tick while animating a move.
const MoveSpeed = 8.0

// Hero is the single player-controlled actor.
type Hero struct {
	// Grid position (authoritative, updates at move-accept time).
	col, row int

	// Pixel position and animation target.
	x, y             float64
	targetX, targetY float64

	state   State
	dir     Direction // direction of the move in flight
	facing  Direction // last direction moved, kept after arrival
	perform PerformKind
	elapsed int

	spawnCol, spawnRow int
	layout             grid.Layout

	// Board collaborators, injected by the owner.
	InBounds  func(col, row int) bool
	IsBlocked func(col, row int) bool
}

// New creates an idle hero at the given spawn cell.
func New(spawnCol, spawnRow int, layout grid.Layout) *Hero {
	h := &Hero{
		spawnCol: spawnCol,
		spawnRow: spawnRow,
		layout:   layout,
	}
	h.placeAt(spawnCol, spawnRow)
	return h
}

func (h *Hero) placeAt(col, row int) {
	h.col = col
	h.row = row
	h.x, h.y = h.layout.CellCenter(col, row)
	h.targetX, h.targetY = h.x, h.y
	h.state = StateIdle
	h.dir = DirNone
	h.elapsed = 0
}

// Position returns the hero's logical grid cell.
func (h *Hero) Position() (col, row int) {
	return h.col, h.row
}

// PixelPosition returns the hero's continuous (drawn) position.
func (h *Hero) PixelPosition() (x, y float64) {
	return h.x, h.y
}

// State returns the current activity state.
func (h *Hero) State() State {
	return h.state
}

// Direction returns the direction of the move in flight, or DirNone.
func (h *Hero) Direction() Direction {
	return h.dir
}

// Facing returns the last direction the hero moved in.
func (h *Hero) Facing() Direction {
	return h.facing
}

// Perform returns the performance in progress and its elapsed tick count.
// Only meaningful while State() == StatePerforming.
func (h *Hero) PerformState() (kind PerformKind, elapsed int) {
	return h.perform, h.elapsed
}

// Step requests a one-cell move. The logical grid position updates
// immediately on success; the pixel position catches up over later ticks.
func (h *Hero) Step(dir Direction) error {
	if h.state != StateIdle {
		return ErrBusy
	}

	dc, dr := dir.Delta()
	col := h.col + dc
	row := h.row + dr

	if h.InBounds != nil && !h.InBounds(col, row) {
		return ErrOutOfBounds
	}
	if h.IsBlocked != nil && h.IsBlocked(col, row) {
		return ErrBlocked
	}

	h.col = col
	h.row = row
	h.targetX, h.targetY = h.layout.CellCenter(col, row)
	h.dir = dir
	h.facing = dir
	h.state = StateMoving
	return nil
}

// StartPerform requests a spin or dance. Fails with ErrBusy unless idle.
func (h *Hero) StartPerform(kind PerformKind) error {
	if h.state != StateIdle {
		return ErrBusy
	}
	h.state = StatePerforming
	h.perform = kind
	h.elapsed = 0
	return nil
}

// Update advances the state machine by one tick.
func (h *Hero) Update() {
	switch h.state {
	case StateMoving:
		dx := h.targetX - h.x
		dy := h.targetY - h.y
		dist := math.Hypot(dx, dy)
		if dist < MoveSpeed {
			// Snap to the exact target, no overshoot.
			h.x = h.targetX
			h.y = h.targetY
			h.state = StateIdle
			h.dir = DirNone
			return
		}
		h.x += dx / dist * MoveSpeed
		h.y += dy / dist * MoveSpeed

	case StatePerforming:
		h.elapsed++
		if h.elapsed >= h.perform.Duration() {
			h.state = StateIdle
			h.elapsed = 0
		}
	}
}

// Reset restores the hero to its idle spawn state.
func (h *Hero) Reset() {
	h.placeAt(h.spawnCol, h.spawnRow)
}
