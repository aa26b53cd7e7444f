package game

// Board is a snapshot of square occupancy.
type Board [BoardSize][BoardSize]PlayerMark

// DeriveBoard replays the log oldest to newest onto an empty board.
// The board is returned by value, so callers never share a grid.
func DeriveBoard(log TurnLog) Board {
	var board Board
	for i := log.Len() - 1; i >= 0; i-- {
		t := log.turns[i]
		board[t.Square.Row][t.Square.Col] = t.Player
	}
	return board
}

// DeriveActivePlayer returns the mark that moves next. It reflects the
// alternation already present in the log and does not enforce it.
func DeriveActivePlayer(log TurnLog) PlayerMark {
	latest, ok := log.Latest()
	if !ok {
		return FirstMark
	}
	return latest.Player.Opponent()
}

// At returns the mark at p.
func (b Board) At(p Position) PlayerMark {
	return b[p.Row][p.Col]
}

// IsOccupied reports whether p already holds a mark.
func (b Board) IsOccupied(p Position) bool {
	return b.At(p) != None
}

// Count returns the number of non-empty squares.
func (b Board) Count() int {
	n := 0
	for r := range BoardSize {
		for c := range BoardSize {
			if b[r][c] != None {
				n++
			}
		}
	}
	return n
}

// IsFull reports whether no empty square is left.
func (b Board) IsFull() bool {
	return b.Count() == MaxTurns
}

// Rows converts the board to a slice of slices for renderers.
func (b Board) Rows() [][]PlayerMark {
	rows := make([][]PlayerMark, BoardSize)
	for i := range BoardSize {
		rows[i] = make([]PlayerMark, BoardSize)
		copy(rows[i], b[i][:])
	}
	return rows
}
