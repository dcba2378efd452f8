package hero

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chosenoffset.com/codeventure/grid"
)

var testLayout = grid.Layout{TileSize: 64, OriginX: 40, OriginY: 40}

func newTestHero() *Hero {
	w := grid.NewWorld(12, 9, []grid.Obstacle{
		{Pos: grid.Position{Col: 6, Row: 4}, Kind: grid.ObstacleCrate},
	})
	h := New(5, 4, testLayout)
	h.InBounds = w.InBounds
	h.IsBlocked = w.IsOccupied
	return h
}

func TestStepUpdatesGridPositionImmediately(t *testing.T) {
	h := newTestHero()

	require.NoError(t, h.Step(DirUp))

	col, row := h.Position()
	assert.Equal(t, 5, col)
	assert.Equal(t, 3, row)
	assert.Equal(t, StateMoving, h.State())

	// Pixel position has not caught up yet.
	_, y := h.PixelPosition()
	wantX, wantY := testLayout.CellCenter(5, 3)
	assert.NotEqual(t, wantY, y)

	// Walk the animation to completion: one tile at 8 px/tick.
	for i := 0; i < 64/8+1; i++ {
		h.Update()
	}
	x, y := h.PixelPosition()
	assert.Equal(t, wantX, x)
	assert.Equal(t, wantY, y)
	assert.Equal(t, StateIdle, h.State())
}

func TestStepWhileMovingReturnsBusy(t *testing.T) {
	h := newTestHero()

	require.NoError(t, h.Step(DirRight))
	col, row := h.Position()

	err := h.Step(DirUp)
	assert.ErrorIs(t, err, ErrBusy)

	// Position unchanged by the rejected request.
	c2, r2 := h.Position()
	assert.Equal(t, col, c2)
	assert.Equal(t, row, r2)
}

func TestStepWhilePerformingReturnsBusy(t *testing.T) {
	h := newTestHero()

	require.NoError(t, h.StartPerform(PerformSpin))
	assert.ErrorIs(t, h.Step(DirDown), ErrBusy)
	assert.ErrorIs(t, h.StartPerform(PerformDance), ErrBusy)
}

func TestStepBlockedByObstacle(t *testing.T) {
	h := newTestHero()

	// Obstacle sits at (6, 4), directly right of spawn (5, 4).
	err := h.Step(DirRight)
	assert.ErrorIs(t, err, ErrBlocked)

	col, row := h.Position()
	assert.Equal(t, 5, col)
	assert.Equal(t, 4, row)
	assert.Equal(t, StateIdle, h.State())
}

func TestStepOutOfBounds(t *testing.T) {
	w := grid.NewWorld(12, 9, nil)
	h := New(0, 0, testLayout)
	h.InBounds = w.InBounds
	h.IsBlocked = w.IsOccupied

	assert.ErrorIs(t, h.Step(DirUp), ErrOutOfBounds)
	assert.ErrorIs(t, h.Step(DirLeft), ErrOutOfBounds)

	col, row := h.Position()
	assert.Equal(t, 0, col)
	assert.Equal(t, 0, row)
}

func TestPerformDurations(t *testing.T) {
	h := newTestHero()

	require.NoError(t, h.StartPerform(PerformSpin))
	for i := 0; i < SpinTicks-1; i++ {
		h.Update()
		assert.Equal(t, StatePerforming, h.State())
	}
	h.Update()
	assert.Equal(t, StateIdle, h.State())

	require.NoError(t, h.StartPerform(PerformDance))
	for i := 0; i < DanceTicks-1; i++ {
		h.Update()
	}
	assert.Equal(t, StatePerforming, h.State())
	h.Update()
	assert.Equal(t, StateIdle, h.State())
}

func TestFacingPersistsAfterArrival(t *testing.T) {
	h := newTestHero()

	require.NoError(t, h.Step(DirLeft))
	for h.State() == StateMoving {
		h.Update()
	}

	assert.Equal(t, DirNone, h.Direction())
	assert.Equal(t, DirLeft, h.Facing())
}

func TestReset(t *testing.T) {
	h := newTestHero()

	require.NoError(t, h.Step(DirUp))
	h.Update()
	h.Reset()

	col, row := h.Position()
	assert.Equal(t, 5, col)
	assert.Equal(t, 4, row)
	assert.Equal(t, StateIdle, h.State())

	x, y := h.PixelPosition()
	wantX, wantY := testLayout.CellCenter(5, 4)
	assert.Equal(t, wantX, x)
	assert.Equal(t, wantY, y)
}
