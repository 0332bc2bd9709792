package npuzzle

// StepSnapshot exposes the per-iteration state of the search.
type StepSnapshot struct {
	// Current is the board expanded (or recognized as the goal) by this
	// step; nil once the search has finished.
	Current        *Board
	Depth          int
	FrontierSize   int
	ExploredSize   int
	MaxSearchDepth int
	StepIndex      int
	Done           bool
	Found          bool
	// Path is the solving move sequence; set only when Found.
	Path []Move
}

// Stepper drives the same search loop as Solve one expansion at a time,
// for UIs and debugging tools that want to observe the frontier evolve.
// It is not safe for concurrent use.
type Stepper struct {
	strategy Strategy

	pending      *frontier
	explored     map[string]struct{}
	maxDepthSeen int
	sequence     uint64

	stepCount int
	done      bool
	found     bool
	path      []Move
}

// NewStepper prepares a step-by-step search from initial. Like Solve, every
// stepper owns fresh frontier and explored structures.
func NewStepper(initial *Board, strategy Strategy) *Stepper {
	root := &searchNode{board: initial}
	if strategy == StrategyAStar {
		root.h = Manhattan(initial)
		root.f = root.h
	}
	s := &Stepper{
		strategy: strategy,
		pending:  newFrontier(strategy),
		explored: make(map[string]struct{}),
	}
	s.pending.push(root)
	return s
}

// Step advances the search by one node expansion and returns a snapshot.
// After the search finishes, further calls keep returning the terminal
// snapshot.
func (s *Stepper) Step() StepSnapshot {
	if s.done {
		return s.snapshot(nil, 0)
	}
	if s.pending.len() == 0 {
		s.done = true
		return s.snapshot(nil, 0)
	}

	s.stepCount++
	node := s.pending.pop()

	if node.board.IsGoal() {
		s.done = true
		s.found = true
		s.path = reconstructPath(node)
		return s.snapshot(node.board, node.depth)
	}

	successors := node.board.Successors()
	if s.strategy == StrategyDFS {
		for i, j := 0, len(successors)-1; i < j; i, j = i+1, j-1 {
			successors[i], successors[j] = successors[j], successors[i]
		}
	}
	for _, successor := range successors {
		key := successor.Board.Key()
		if _, seen := s.explored[key]; seen {
			continue
		}
		if s.pending.contains(key) {
			continue
		}
		s.sequence++
		child := &searchNode{
			board:   successor.Board,
			parent:  node,
			move:    successor.Move,
			hasMove: true,
			depth:   node.depth + 1,
			seq:     s.sequence,
		}
		if s.strategy == StrategyAStar {
			child.g = child.depth
			child.h = Manhattan(successor.Board)
			child.f = child.g + child.h
		}
		s.pending.push(child)
		if child.depth > s.maxDepthSeen {
			s.maxDepthSeen = child.depth
		}
	}
	s.explored[node.board.Key()] = struct{}{}

	return s.snapshot(node.board, node.depth)
}

func (s *Stepper) snapshot(current *Board, depth int) StepSnapshot {
	snap := StepSnapshot{
		Current:        current,
		Depth:          depth,
		FrontierSize:   s.pending.len(),
		ExploredSize:   len(s.explored),
		MaxSearchDepth: s.maxDepthSeen,
		StepIndex:      s.stepCount,
		Done:           s.done,
		Found:          s.found,
	}
	if s.found {
		snap.Path = append([]Move(nil), s.path...)
	}
	return snap
}
