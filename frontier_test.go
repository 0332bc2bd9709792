package npuzzle

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// frontierNode builds a minimal node for frontier-order tests.
func frontierNode(t *testing.T, f int, seq uint64, tiles ...int) *searchNode {
	t.Helper()
	return &searchNode{board: mustBoard(t, tiles...), f: f, seq: seq}
}

func TestFrontier_FIFOOrder(t *testing.T) {
	fr := newFrontier(StrategyBFS)
	first := frontierNode(t, 0, 1, 0, 1, 2, 3)
	second := frontierNode(t, 0, 2, 1, 0, 2, 3)
	third := frontierNode(t, 0, 3, 1, 2, 0, 3)
	fr.push(first)
	fr.push(second)
	fr.push(third)

	assert.Same(t, first, fr.pop())
	assert.Same(t, second, fr.pop())
	assert.Same(t, third, fr.pop())
	assert.Equal(t, 0, fr.len())
}

func TestFrontier_LIFOOrder(t *testing.T) {
	fr := newFrontier(StrategyDFS)
	first := frontierNode(t, 0, 1, 0, 1, 2, 3)
	second := frontierNode(t, 0, 2, 1, 0, 2, 3)
	fr.push(first)
	fr.push(second)

	assert.Same(t, second, fr.pop())
	assert.Same(t, first, fr.pop())
}

func TestFrontier_PriorityOrder(t *testing.T) {
	fr := newFrontier(StrategyAStar)
	high := frontierNode(t, 7, 1, 0, 1, 2, 3)
	low := frontierNode(t, 2, 2, 1, 0, 2, 3)
	mid := frontierNode(t, 5, 3, 1, 2, 0, 3)
	fr.push(high)
	fr.push(low)
	fr.push(mid)

	assert.Same(t, low, fr.pop())
	assert.Same(t, mid, fr.pop())
	assert.Same(t, high, fr.pop())
}

func TestFrontier_PriorityTieBreaksByInsertionOrder(t *testing.T) {
	fr := newFrontier(StrategyAStar)
	nodes := []*searchNode{
		frontierNode(t, 4, 1, 0, 1, 2, 3),
		frontierNode(t, 4, 2, 1, 0, 2, 3),
		frontierNode(t, 4, 3, 1, 2, 0, 3),
		frontierNode(t, 4, 4, 1, 2, 3, 0),
	}
	for _, node := range nodes {
		fr.push(node)
	}
	for _, expected := range nodes {
		assert.Same(t, expected, fr.pop())
	}
}

func TestFrontier_MembershipTracksPushAndPop(t *testing.T) {
	for _, strategy := range []Strategy{StrategyBFS, StrategyDFS, StrategyAStar} {
		t.Run(strategy.String(), func(t *testing.T) {
			fr := newFrontier(strategy)
			node := frontierNode(t, 1, 1, 0, 1, 2, 3)
			key := node.board.Key()

			assert.False(t, fr.contains(key))
			fr.push(node)
			assert.True(t, fr.contains(key))
			assert.Equal(t, 1, fr.len())
			fr.pop()
			assert.False(t, fr.contains(key))
			assert.Equal(t, 0, fr.len())
		})
	}
}

func TestParseStrategy(t *testing.T) {
	for name, want := range map[string]Strategy{
		"bfs": StrategyBFS,
		"dfs": StrategyDFS,
		"ast": StrategyAStar,
	} {
		strategy, err := ParseStrategy(name)
		require.NoError(t, err)
		assert.Equal(t, want, strategy)
		assert.Equal(t, name, strategy.String())
	}
	_, err := ParseStrategy("ids")
	assert.Error(t, err)
}
