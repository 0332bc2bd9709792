// Package npuzzle solves the n-tile sliding puzzle by exploring its state
// space with one of three interchangeable strategies.
//
// It exposes two main entry points:
//
//   - Solve: run a search to completion and get a Result with the solving
//     move sequence and exploration statistics.
//   - Stepper: iterate the search one expansion at a time to drive UIs or debugging tools.
//
// A single driver owns the frontier; the chosen Strategy only decides the
// frontier's removal order: FIFO for breadth-first, LIFO for depth-first,
// and a min-f priority queue for A* under the Manhattan-distance heuristic.
package npuzzle
