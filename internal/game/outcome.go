package game

import "fmt"

// Triple is a line of three squares.
type Triple [3]Position

// WinningTriples lists rows, then columns, then the two diagonals.
var WinningTriples = [8]Triple{
	{{0, 0}, {0, 1}, {0, 2}},
	{{1, 0}, {1, 1}, {1, 2}},
	{{2, 0}, {2, 1}, {2, 2}},
	{{0, 0}, {1, 0}, {2, 0}},
	{{0, 1}, {1, 1}, {2, 1}},
	{{0, 2}, {1, 2}, {2, 2}},
	{{0, 0}, {1, 1}, {2, 2}},
	{{0, 2}, {1, 1}, {2, 0}},
}

// NameResolver maps a mark to a display name.
type NameResolver interface {
	Name(mark PlayerMark) string
}

// Outcome is the derived result of a board. The zero value means no winner yet.
type Outcome struct {
	Winner     PlayerMark `json:"winner,omitempty"`
	WinnerName string     `json:"winnerName"`
	Line       *Triple    `json:"line,omitempty"`
}

// HasWinner reports whether a line is complete.
func (o Outcome) HasWinner() bool {
	return o.Winner != None
}

// DeriveOutcome finds the first complete line in WinningTriples order and
// names its owner through names. Complete lines for both marks cannot come
// out of legal play, so that board panics with ErrConflictingWinners.
func DeriveOutcome(board Board, names NameResolver) Outcome {
	mark, line := winningLine(board)
	if mark == None {
		return Outcome{}
	}
	return Outcome{
		Winner:     mark,
		WinnerName: names.Name(mark),
		Line:       &line,
	}
}

func winningLine(board Board) (PlayerMark, Triple) {
	var (
		winner PlayerMark
		first  Triple
	)
	for _, triple := range WinningTriples {
		a, b, c := board.At(triple[0]), board.At(triple[1]), board.At(triple[2])
		if a == None || a != b || b != c {
			continue
		}
		if winner == None {
			winner, first = a, triple
			continue
		}
		if a != winner {
			panic(fmt.Errorf("%w: %s and %s", ErrConflictingWinners, winner, a))
		}
	}
	return winner, first
}
