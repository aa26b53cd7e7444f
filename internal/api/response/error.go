package response

import (
	"ctchen222/hotseat-tictactoe/internal/game"
	"ctchen222/hotseat-tictactoe/internal/player"
	"errors"
	"net/http"
)

// StatusError carries its own HTTP status through StatusFor.
type StatusError struct {
	Code    int
	Message string
}

func (e StatusError) Error() string {
	return e.Message
}

var statusByError = []struct {
	err  error
	code int
}{
	{game.ErrInvalidPosition, http.StatusBadRequest},
	{player.ErrUnknownMark, http.StatusBadRequest},
	{game.ErrOccupiedSquare, http.StatusConflict},
	{game.ErrMoveAfterConclusion, http.StatusConflict},
}

// StatusFor maps a game error to its HTTP status code.
func StatusFor(err error) int {
	for _, s := range statusByError {
		if errors.Is(err, s.err) {
			return s.code
		}
	}

	var se StatusError
	if errors.As(err, &se) {
		return se.Code
	}

	return http.StatusInternalServerError
}
