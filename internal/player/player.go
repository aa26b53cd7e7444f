package player

import (
	"ctchen222/hotseat-tictactoe/internal/game"
	"errors"
	"fmt"
)

const (
	DefaultNameX = "Player 1"
	DefaultNameO = "Player 2"
)

var ErrUnknownMark = errors.New("unknown player mark")

// Player is a display name bound to a mark.
type Player struct {
	Mark game.PlayerMark `json:"mark"`
	Name string          `json:"name"`
}

// Registry maps each mark to a display name. It is not safe for concurrent
// use; the room that owns it serializes access.
type Registry struct {
	names map[game.PlayerMark]string
}

// NewRegistry creates a registry with the given starting names.
func NewRegistry(nameX, nameO string) *Registry {
	return &Registry{
		names: map[game.PlayerMark]string{
			game.PlayerX: nameX,
			game.PlayerO: nameO,
		},
	}
}

// DefaultRegistry creates a registry with "Player 1" and "Player 2".
func DefaultRegistry() *Registry {
	return NewRegistry(DefaultNameX, DefaultNameO)
}

// Name returns the display name for mark, or "" for an unknown mark.
func (r *Registry) Name(mark game.PlayerMark) string {
	return r.names[mark]
}

// Rename overwrites the display name for mark. Any name, including "", is accepted.
func (r *Registry) Rename(mark game.PlayerMark, name string) error {
	if !mark.Valid() {
		return fmt.Errorf("%w: %q", ErrUnknownMark, mark)
	}
	r.names[mark] = name
	return nil
}

// Clone returns an independent copy.
func (r *Registry) Clone() *Registry {
	return NewRegistry(r.names[game.PlayerX], r.names[game.PlayerO])
}

// Players lists both players in mark order.
func (r *Registry) Players() []Player {
	players := make([]Player, 0, len(game.Marks))
	for _, mark := range game.Marks {
		players = append(players, Player{Mark: mark, Name: r.names[mark]})
	}
	return players
}
