package game

import "errors"

var (
	ErrInvalidPosition     = errors.New("position is outside the board")
	ErrOccupiedSquare      = errors.New("square is already occupied")
	ErrMoveAfterConclusion = errors.New("game already finished")

	// ErrConflictingWinners means the board was not produced by legal play.
	ErrConflictingWinners = errors.New("board has winning lines for both marks")
)
