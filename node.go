package npuzzle

// searchNode wraps a board with search bookkeeping. Nodes form a tree;
// the parent pointer is a plain back-reference for path reconstruction,
// never an ownership edge, so the structure stays cycle-free.
type searchNode struct {
	board  *Board
	parent *searchNode

	// move produced this node from its parent; meaningless at the root,
	// where hasMove is false.
	move    Move
	hasMove bool

	depth int

	// A* ordering: g is the path cost so far (equal to depth, since every
	// move costs one), h the heuristic estimate, f their sum.
	g int
	h int
	f int

	// seq is the node's insertion sequence number, used by the priority
	// frontier as a deterministic tie-break between equal f values.
	seq uint64

	// indexInHeap is maintained by the priority frontier.
	indexInHeap int
}
