package npuzzle

import (
	"container/heap"
	"fmt"
)

// Strategy selects the frontier's removal order, and with it the search
// algorithm run by Solve.
type Strategy uint8

const (
	// StrategyBFS explores shallowest-first (FIFO frontier). Guarantees a
	// shortest solution, since every move costs one.
	StrategyBFS Strategy = iota
	// StrategyDFS explores deepest-first (LIFO frontier). No optimality
	// guarantee; may grow very deep before finding any solution.
	StrategyDFS
	// StrategyAStar explores in ascending f = depth + Manhattan order.
	// Guarantees a shortest solution under the admissible heuristic.
	StrategyAStar
)

var strategyNames = [...]string{"bfs", "dfs", "ast"}

// String returns the strategy's selector name: "bfs", "dfs" or "ast".
func (s Strategy) String() string {
	if int(s) >= len(strategyNames) {
		return fmt.Sprintf("Strategy(%d)", uint8(s))
	}
	return strategyNames[s]
}

// ParseStrategy maps a selector name to its Strategy.
func ParseStrategy(name string) (Strategy, error) {
	for s, candidate := range strategyNames {
		if candidate == name {
			return Strategy(s), nil
		}
	}
	return 0, fmt.Errorf("unknown strategy %q (want bfs, dfs or ast)", name)
}

// frontier holds the generated-but-not-yet-expanded nodes. One backing
// structure is active per strategy: a slice used as queue or stack for
// BFS/DFS, a binary heap ordered by f for A*. Alongside either it keeps a
// membership set over board identity, updated on every push and pop, so
// "already on the frontier" is an O(1) test instead of a scan.
type frontier struct {
	strategy Strategy
	queue    []*searchNode
	byF      nodeHeap
	members  map[string]struct{}
}

func newFrontier(strategy Strategy) *frontier {
	f := &frontier{
		strategy: strategy,
		members:  make(map[string]struct{}),
	}
	if strategy == StrategyAStar {
		heap.Init(&f.byF)
	}
	return f
}

func (f *frontier) len() int {
	if f.strategy == StrategyAStar {
		return f.byF.Len()
	}
	return len(f.queue)
}

func (f *frontier) contains(key string) bool {
	_, ok := f.members[key]
	return ok
}

func (f *frontier) push(node *searchNode) {
	if f.strategy == StrategyAStar {
		heap.Push(&f.byF, node)
	} else {
		f.queue = append(f.queue, node)
	}
	f.members[node.board.Key()] = struct{}{}
}

// pop removes the next node in strategy order: head for BFS, tail for DFS,
// minimum f for A*.
func (f *frontier) pop() *searchNode {
	var node *searchNode
	switch f.strategy {
	case StrategyBFS:
		node = f.queue[0]
		f.queue = f.queue[1:]
	case StrategyDFS:
		last := len(f.queue) - 1
		node = f.queue[last]
		f.queue = f.queue[:last]
	default:
		node = heap.Pop(&f.byF).(*searchNode)
	}
	delete(f.members, node.board.Key())
	return node
}

// nodeHeap is a min-heap over f. Equal f values fall back to the insertion
// sequence number, so the expansion order on ties is deterministic.
type nodeHeap []*searchNode

func (h nodeHeap) Len() int { return len(h) }

func (h nodeHeap) Less(i, j int) bool {
	if h[i].f != h[j].f {
		return h[i].f < h[j].f
	}
	return h[i].seq < h[j].seq
}

func (h nodeHeap) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
	h[i].indexInHeap = i
	h[j].indexInHeap = j
}

func (h *nodeHeap) Push(x any) {
	node := x.(*searchNode)
	node.indexInHeap = len(*h)
	*h = append(*h, node)
}

func (h *nodeHeap) Pop() any {
	old := *h
	n := len(old)
	node := old[n-1]
	old[n-1] = nil
	*h = old[:n-1]
	return node
}
