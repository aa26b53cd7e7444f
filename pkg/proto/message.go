package proto

import (
	"ctchen222/hotseat-tictactoe/internal/game"
	"ctchen222/hotseat-tictactoe/internal/player"
)

// Message types
const (
	TypeMove    = "move"
	TypeRename  = "rename"
	TypeRestart = "restart"

	TypeWelcome = "welcome"
	TypeUpdate  = "update"
	TypeError   = "error"
)

// ClientToServerMessage represents a message from the client to the server.
type ClientToServerMessage struct {
	Type     string  `json:"type" validate:"required,oneof=move rename restart"`
	Position []int   `json:"position,omitempty" validate:"omitempty,len=2"`
	Mark     string  `json:"mark,omitempty" validate:"omitempty,mark"`
	Name     *string `json:"name,omitempty"`
}

// ServerToClientMessage represents a message from the server to the client.
type ServerToClientMessage struct {
	Type       string              `json:"type" validate:"required"`
	Event      string              `json:"event,omitempty"`
	Reason     string              `json:"reason,omitempty"`
	GameID     string              `json:"gameId,omitempty"`
	Board      [][]game.PlayerMark `json:"board,omitempty"`
	Next       game.PlayerMark     `json:"next,omitempty"`
	Status     game.Status         `json:"status,omitempty"`
	Winner     game.PlayerMark     `json:"winner,omitempty"`
	WinnerName *string             `json:"winnerName,omitempty"`
	Line       *game.Triple        `json:"line,omitempty"`
	Message    string              `json:"message,omitempty"`
	LastTurn   *game.Turn          `json:"lastTurn,omitempty"`
	Turns      []string            `json:"turns,omitempty"`
	Players    []player.Player     `json:"players,omitempty"`
}

// WelcomeMessage tells a client the id it was registered under.
type WelcomeMessage struct {
	Type     string `json:"type"`
	ClientID string `json:"clientId"`
}
