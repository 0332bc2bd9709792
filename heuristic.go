package npuzzle

// Manhattan returns the Manhattan-distance estimate of the number of moves
// separating the board from the goal: the sum, over every non-blank tile, of
// the row and column distance between the tile's cell and its goal cell.
// The estimate is admissible and consistent, since one move changes exactly
// one tile's distance by one.
func Manhattan(b *Board) int {
	distance := 0
	for i, value := range b.tiles {
		if value == 0 {
			continue
		}
		rowDelta := i/b.side - value/b.side
		if rowDelta < 0 {
			rowDelta = -rowDelta
		}
		colDelta := i%b.side - value%b.side
		if colDelta < 0 {
			colDelta = -colDelta
		}
		distance += rowDelta + colDelta
	}
	return distance
}
