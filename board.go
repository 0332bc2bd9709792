package npuzzle

import (
	"fmt"
	"strconv"
	"strings"
)

// Move identifies one slide of the blank cell.
type Move uint8

const (
	MoveUp Move = iota
	MoveDown
	MoveLeft
	MoveRight
)

var moveNames = [...]string{"Up", "Down", "Left", "Right"}

// moveDeltas holds the row/column offset of each move, indexed by Move.
// The array order is the fixed Up, Down, Left, Right generation order.
var moveDeltas = [...][2]int{
	{-1, 0},
	{1, 0},
	{0, -1},
	{0, 1},
}

// String returns the canonical move label ("Up", "Down", "Left" or "Right").
func (m Move) String() string {
	if int(m) >= len(moveNames) {
		return fmt.Sprintf("Move(%d)", uint8(m))
	}
	return moveNames[m]
}

// Inverse returns the move that undoes m.
func (m Move) Inverse() Move {
	switch m {
	case MoveUp:
		return MoveDown
	case MoveDown:
		return MoveUp
	case MoveLeft:
		return MoveRight
	default:
		return MoveLeft
	}
}

// Board is one tile configuration of the puzzle. The zero value is not
// usable; construct boards with NewBoard or Parse. A Board is immutable
// after construction, so it can be shared freely between search structures.
type Board struct {
	tiles    []int
	side     int
	blankRow int
	blankCol int
}

// Successor is one board reachable from its parent, together with the
// blank move that produced it.
type Successor struct {
	Board *Board
	Move  Move
}

// NewBoard validates tiles as a row-major puzzle configuration and returns
// the corresponding Board. The sequence must be a permutation of
// {0, ..., len(tiles)-1} whose length is a perfect square of at least 2x2;
// the value 0 marks the blank cell.
func NewBoard(tiles []int) (*Board, error) {
	side := 0
	for side*side < len(tiles) {
		side++
	}
	if side < 2 || side*side != len(tiles) {
		return nil, fmt.Errorf("board has %d tiles, want a square of side >= 2", len(tiles))
	}
	seen := make([]bool, len(tiles))
	for _, value := range tiles {
		if value < 0 || value >= len(tiles) {
			return nil, fmt.Errorf("tile value %d out of range [0, %d)", value, len(tiles))
		}
		if seen[value] {
			return nil, fmt.Errorf("tile value %d appears more than once", value)
		}
		seen[value] = true
	}
	owned := make([]int, len(tiles))
	copy(owned, tiles)
	return newBoardUnchecked(owned, side), nil
}

// Parse reads a board from its comma-separated row-major form, for
// example "1,2,0,4,5,3,7,8,6".
func Parse(input string) (*Board, error) {
	fields := strings.Split(input, ",")
	tiles := make([]int, 0, len(fields))
	for _, field := range fields {
		value, err := strconv.Atoi(strings.TrimSpace(field))
		if err != nil {
			return nil, fmt.Errorf("parse tile %q: %w", field, err)
		}
		tiles = append(tiles, value)
	}
	return NewBoard(tiles)
}

// newBoardUnchecked takes ownership of tiles, which must already be a valid
// permutation for the given side. The blank position is always derived from
// the tile sequence, never carried independently.
func newBoardUnchecked(tiles []int, side int) *Board {
	blankIndex := 0
	for i, value := range tiles {
		if value == 0 {
			blankIndex = i
			break
		}
	}
	return &Board{
		tiles:    tiles,
		side:     side,
		blankRow: blankIndex / side,
		blankCol: blankIndex % side,
	}
}

// Side returns the board's edge length.
func (b *Board) Side() int { return b.side }

// Tiles returns a copy of the row-major tile sequence.
func (b *Board) Tiles() []int {
	out := make([]int, len(b.tiles))
	copy(out, b.tiles)
	return out
}

// IsGoal reports whether the board is in the canonical sorted
// configuration (0, 1, 2, ..., n-1). Only the first n-1 cells need
// checking: in a permutation the last cell is implied by the rest.
func (b *Board) IsGoal() bool {
	for i := 0; i < len(b.tiles)-1; i++ {
		if b.tiles[i] != i {
			return false
		}
	}
	return true
}

// Equal reports whether both boards hold the same tile sequence.
func (b *Board) Equal(other *Board) bool {
	if other == nil || len(b.tiles) != len(other.tiles) {
		return false
	}
	for i, value := range b.tiles {
		if other.tiles[i] != value {
			return false
		}
	}
	return true
}

// Key returns a deterministic identity string over the tile sequence,
// suitable as a set-membership key. Two boards have the same key exactly
// when they are Equal.
func (b *Board) Key() string {
	var builder strings.Builder
	builder.Grow(3 * len(b.tiles))
	for i, value := range b.tiles {
		if i > 0 {
			builder.WriteByte(',')
		}
		builder.WriteString(strconv.Itoa(value))
	}
	return builder.String()
}

// String renders the board as a grid, one row per line, the blank as "_".
func (b *Board) String() string {
	width := len(strconv.Itoa(len(b.tiles) - 1))
	var builder strings.Builder
	for row := 0; row < b.side; row++ {
		for col := 0; col < b.side; col++ {
			if col > 0 {
				builder.WriteByte(' ')
			}
			value := b.tiles[row*b.side+col]
			cell := "_"
			if value != 0 {
				cell = strconv.Itoa(value)
			}
			builder.WriteString(strings.Repeat(" ", width-len(cell)))
			builder.WriteString(cell)
		}
		builder.WriteByte('\n')
	}
	return builder.String()
}

// Apply slides the blank one cell in the direction of move, returning the
// resulting board. The second return value is false when the move would
// leave the grid; that is normal branching, not an error.
func (b *Board) Apply(move Move) (*Board, bool) {
	delta := moveDeltas[move]
	targetRow := b.blankRow + delta[0]
	targetCol := b.blankCol + delta[1]
	if targetRow < 0 || targetRow >= b.side || targetCol < 0 || targetCol >= b.side {
		return nil, false
	}
	tiles := make([]int, len(b.tiles))
	copy(tiles, b.tiles)
	blankIndex := b.blankRow*b.side + b.blankCol
	targetIndex := targetRow*b.side + targetCol
	tiles[blankIndex], tiles[targetIndex] = tiles[targetIndex], tiles[blankIndex]
	return newBoardUnchecked(tiles, b.side), true
}

// Successors generates every board reachable by one blank move, in the
// fixed Up, Down, Left, Right order. Moves that would leave the grid are
// silently omitted, so the result holds between two and four entries.
func (b *Board) Successors() []Successor {
	out := make([]Successor, 0, 4)
	for move := MoveUp; move <= MoveRight; move++ {
		if next, ok := b.Apply(move); ok {
			out = append(out, Successor{Board: next, Move: move})
		}
	}
	return out
}
