package events

import (
	"ctchen222/hotseat-tictactoe/internal/game"
	"encoding/json"
	"fmt"
)

// Event types
const (
	TypeMoveRecorded  = "move_recorded"
	TypePlayerRenamed = "player_renamed"
	TypeGameRestarted = "game_restarted"
	TypeGameOver      = "game_over"
)

// Event represents a state change announced by a room.
type Event struct {
	Type    string          `json:"event"`
	Payload json.RawMessage `json:"payload"`
}

// New marshals payload into an event of the given type.
func New(eventType string, payload any) (Event, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return Event{}, fmt.Errorf("failed to marshal %s payload: %w", eventType, err)
	}
	return Event{Type: eventType, Payload: data}, nil
}

// Decode unmarshals the payload into v.
func (e Event) Decode(v any) error {
	if err := json.Unmarshal(e.Payload, v); err != nil {
		return fmt.Errorf("failed to unmarshal %s payload: %w", e.Type, err)
	}
	return nil
}

// MoveRecordedPayload is the payload for the "move_recorded" event.
type MoveRecordedPayload struct {
	GameID string    `json:"game_id"`
	Turn   game.Turn `json:"turn"`
	Number int       `json:"number"`
}

// PlayerRenamedPayload is the payload for the "player_renamed" event.
type PlayerRenamedPayload struct {
	GameID string          `json:"game_id"`
	Mark   game.PlayerMark `json:"mark"`
	Name   string          `json:"name"`
}

// GameRestartedPayload is the payload for the "game_restarted" event.
type GameRestartedPayload struct {
	GameID         string `json:"game_id"`
	PreviousGameID string `json:"previous_game_id"`
}

// GameOverPayload is the payload for the "game_over" event.
type GameOverPayload struct {
	GameID     string          `json:"game_id"`
	Status     game.Status     `json:"status"`
	Winner     game.PlayerMark `json:"winner,omitempty"`
	WinnerName string          `json:"winner_name"`
}
