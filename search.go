package npuzzle

import (
	"errors"
	"log/slog"
	"time"
)

// ErrNoSolution is returned when the frontier empties without reaching the
// goal: the board lies outside the solvable permutation-parity class. This
// is a normal terminal outcome, not a crash.
var ErrNoSolution = errors.New("no solution found")

// ErrSearchAborted is returned when the expansion limit set with
// WithExpansionLimit is exhausted before the search terminates. It is
// distinct from ErrNoSolution: nothing has been proven about the board.
var ErrSearchAborted = errors.New("search aborted: expansion limit reached")

// Result contains the outcome of a successful search.
type Result struct {
	// Path is the root-to-goal move sequence.
	Path []Move
	// CostOfPath is the path length.
	CostOfPath int
	// NodesExpanded counts the boards fully expanded before the goal was
	// removed from the frontier; the goal board itself is not counted.
	NodesExpanded int
	// SearchDepth is the goal node's depth, equal to CostOfPath.
	SearchDepth int
	// MaxSearchDepth is the deepest node generated during the search.
	MaxSearchDepth int
	// RunningTime is the wall-clock duration of the solve call.
	RunningTime time.Duration
}

// Options defines parameters for the search.
type Options struct {
	Logger         *slog.Logger
	ExpansionLimit int
}

// Option is a function that modifies Options.
type Option func(*Options)

// WithLogger routes the engine's per-expansion debug trace to logger.
// By default the trace is discarded.
func WithLogger(logger *slog.Logger) Option {
	return func(options *Options) { options.Logger = logger }
}

// WithExpansionLimit caps the number of node expansions. The core has no
// timeout of its own; a caller wanting bounded-time search sets a cap and
// treats ErrSearchAborted as its distinct failure outcome.
func WithExpansionLimit(limit int) Option {
	return func(options *Options) { options.ExpansionLimit = limit }
}

// Solve searches for a move sequence transforming initial into the
// canonical sorted configuration, exploring in the order the strategy
// dictates. Every call owns a fresh frontier and explored set, so
// consecutive calls never share state.
//
// Solve runs synchronously on the calling goroutine and returns
// ErrNoSolution when the state space is exhausted, or ErrSearchAborted
// when an expansion limit cuts the search short.
func Solve(initial *Board, strategy Strategy, options ...Option) (Result, error) {
	searchOptions := Options{
		Logger: slog.New(slog.DiscardHandler),
	}
	for _, option := range options {
		option(&searchOptions)
	}
	logger := searchOptions.Logger

	startTime := time.Now()

	root := &searchNode{board: initial}
	if strategy == StrategyAStar {
		root.h = Manhattan(initial)
		root.f = root.h
	}

	pending := newFrontier(strategy)
	pending.push(root)
	explored := make(map[string]struct{})
	maxDepthSeen := 0
	expanded := 0
	var sequence uint64

	for pending.len() > 0 {
		node := pending.pop()

		if node.board.IsGoal() {
			path := reconstructPath(node)
			return Result{
				Path:           path,
				CostOfPath:     len(path),
				NodesExpanded:  len(explored),
				SearchDepth:    node.depth,
				MaxSearchDepth: maxDepthSeen,
				RunningTime:    time.Since(startTime),
			}, nil
		}

		if searchOptions.ExpansionLimit > 0 && expanded >= searchOptions.ExpansionLimit {
			return Result{}, ErrSearchAborted
		}

		successors := node.board.Successors()
		if strategy == StrategyDFS {
			// Successors are generated in UDLR order; reversing before the
			// stack push keeps Up the first move expanded.
			for i, j := 0, len(successors)-1; i < j; i, j = i+1, j-1 {
				successors[i], successors[j] = successors[j], successors[i]
			}
		}

		for _, successor := range successors {
			key := successor.Board.Key()
			// Graph search: a configuration reached along a different move
			// sequence is expanded at most once.
			if _, seen := explored[key]; seen {
				continue
			}
			if pending.contains(key) {
				continue
			}
			sequence++
			child := &searchNode{
				board:   successor.Board,
				parent:  node,
				move:    successor.Move,
				hasMove: true,
				depth:   node.depth + 1,
				seq:     sequence,
			}
			if strategy == StrategyAStar {
				child.g = child.depth
				child.h = Manhattan(successor.Board)
				child.f = child.g + child.h
			}
			pending.push(child)
			if child.depth > maxDepthSeen {
				maxDepthSeen = child.depth
			}
		}

		explored[node.board.Key()] = struct{}{}
		expanded++
		logger.Debug("expanded node",
			"depth", node.depth,
			"frontier_size", pending.len(),
			"explored_size", len(explored))
	}

	return Result{}, ErrNoSolution
}

// reconstructPath walks the parent back-pointers from the goal node to the
// root, collecting each node's producing move, and reverses the collection
// into root-to-goal order. The result's length equals the goal node's depth.
func reconstructPath(goal *searchNode) []Move {
	path := make([]Move, 0, goal.depth)
	for node := goal; node.hasMove; node = node.parent {
		path = append(path, node.move)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}
