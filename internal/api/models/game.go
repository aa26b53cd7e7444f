package models

import (
	"ctchen222/hotseat-tictactoe/internal/game"
	"ctchen222/hotseat-tictactoe/internal/player"
	"ctchen222/hotseat-tictactoe/internal/room"
)

// MoveRequest defines the structure for a move submission.
type MoveRequest struct {
	Row *int `json:"row" binding:"required"`
	Col *int `json:"col" binding:"required"`
}

// RenameRequest defines the structure for a rename request.
type RenameRequest struct {
	Name *string `json:"name" binding:"required"`
}

// MarkURI binds the :mark path parameter.
type MarkURI struct {
	Mark string `uri:"mark" binding:"required,oneof=X O"`
}

// GameResponse is the derived state of the current game.
type GameResponse struct {
	GameID  string          `json:"gameId"`
	Board   game.Board      `json:"board"`
	Next    game.PlayerMark `json:"next"`
	Status  game.Status     `json:"status"`
	Outcome game.Outcome    `json:"outcome"`
	Message string          `json:"message,omitempty"`
	Turns   game.TurnLog    `json:"turns"`
	Log     []string        `json:"log"`
	Players []player.Player `json:"players"`
}

// NewGameResponse renders state for the API.
func NewGameResponse(state room.State) GameResponse {
	turns := state.Turns.Turns()
	log := make([]string, len(turns))
	for i, t := range turns {
		log[i] = t.String()
	}

	return GameResponse{
		GameID:  state.GameID,
		Board:   state.Board,
		Next:    state.Next,
		Status:  state.Status,
		Outcome: state.Outcome,
		Message: state.Message(),
		Turns:   state.Turns,
		Log:     log,
		Players: state.Players,
	}
}
