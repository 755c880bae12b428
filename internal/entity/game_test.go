package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCell_Opponent(t *testing.T) {
	t.Run("X and O swap", func(t *testing.T) {
		// Given: both player marks
		// When: asking for the opponent
		// Then: each one maps onto the other
		assert.Equal(t, PlayerO, PlayerX.Opponent())
		assert.Equal(t, PlayerX, PlayerO.Opponent())
	})

	t.Run("EmptyCell has no opponent", func(t *testing.T) {
		assert.Equal(t, EmptyCell, EmptyCell.Opponent())
	})
}

func TestAction_Index(t *testing.T) {
	t.Run("Index and ActionFromIndex round trip in row-major order", func(t *testing.T) {
		for i := range BoardSize {
			// Given: the i-th cell
			action := ActionFromIndex(i)

			// Then: it is in bounds and maps back to the same index
			require.True(t, action.InBounds())
			assert.Equal(t, i, action.Index())
		}

		assert.Equal(t, Action{Row: 1, Col: 2}, ActionFromIndex(5))
	})

	t.Run("InBounds rejects every out of range coordinate", func(t *testing.T) {
		for _, action := range []Action{{-1, 0}, {0, -1}, {3, 0}, {0, 3}, {5, 5}} {
			assert.False(t, action.InBounds(), action.String())
		}
	})
}

func TestBoard_With(t *testing.T) {
	t.Run("With returns a new board and leaves the receiver untouched", func(t *testing.T) {
		// Given: an empty board
		var board Board

		// When: placing X in the center
		next := board.With(Action{Row: 1, Col: 1}, PlayerX)

		// Then: only the copy has changed
		assert.Equal(t, Board{}, board)
		assert.Equal(t, PlayerX, next.At(Action{Row: 1, Col: 1}))
		assert.Equal(t, 1, next.Count(PlayerX))
		assert.Equal(t, 8, next.Count(EmptyCell))
	})
}

func TestBoard_String(t *testing.T) {
	// Given: a partially filled board
	board := Board{
		PlayerX, PlayerO, EmptyCell,
		EmptyCell, PlayerX, EmptyCell,
		EmptyCell, EmptyCell, PlayerO,
	}

	// Then: it renders row by row
	assert.Equal(t, "XO./.X./..O", board.String())
}

func TestOutcome_IsFinished(t *testing.T) {
	assert.False(t, OutcomeInProgress.IsFinished())
	assert.True(t, OutcomeWinnerX.IsFinished())
	assert.True(t, OutcomeWinnerO.IsFinished())
	assert.True(t, OutcomeDraw.IsFinished())
}
