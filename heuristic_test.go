package npuzzle

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManhattan_GoalIsZero(t *testing.T) {
	assert.Equal(t, 0, Manhattan(mustBoard(t, 0, 1, 2, 3)))
	assert.Equal(t, 0, Manhattan(mustBoard(t, 0, 1, 2, 3, 4, 5, 6, 7, 8)))
}

func TestManhattan_KnownValues(t *testing.T) {
	// Tile 1 is one cell left of its goal cell.
	assert.Equal(t, 1, Manhattan(mustBoard(t, 1, 0, 2, 3)))
	// Two moves from the goal along [Up, Up].
	assert.Equal(t, 2, Manhattan(mustBoard(t, 3, 1, 2, 6, 4, 5, 0, 7, 8)))
	assert.Equal(t, 10, Manhattan(mustBoard(t, 1, 2, 0, 4, 5, 3, 7, 8, 6)))
}

func TestManhattan_MovedTileContributionChangesByOne(t *testing.T) {
	// One move shifts exactly one tile, so the estimate changes by
	// exactly 1 in either direction.
	boards := []*Board{
		mustBoard(t, 1, 2, 0, 4, 5, 3, 7, 8, 6),
		mustBoard(t, 4, 1, 2, 0, 5, 3, 7, 8, 6),
		mustBoard(t, 1, 0, 3, 2),
		mustBoard(t, 8, 6, 4, 2, 1, 3, 5, 7, 0),
	}
	for _, board := range boards {
		base := Manhattan(board)
		require.GreaterOrEqual(t, base, 0)
		for _, successor := range board.Successors() {
			delta := Manhattan(successor.Board) - base
			assert.Contains(t, []int{-1, 1}, delta,
				"board %v move %s", board.Tiles(), successor.Move)
		}
	}
}
