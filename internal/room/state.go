package room

import (
	"context"
	"ctchen222/hotseat-tictactoe/internal/events"
	"ctchen222/hotseat-tictactoe/internal/game"
	"ctchen222/hotseat-tictactoe/internal/player"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// State is everything a renderer needs, derived from one snapshot of the turn log.
type State struct {
	GameID  string          `json:"gameId"`
	Board   game.Board      `json:"board"`
	Next    game.PlayerMark `json:"next"`
	Status  game.Status     `json:"status"`
	Outcome game.Outcome    `json:"outcome"`
	Turns   game.TurnLog    `json:"turns"`
	Players []player.Player `json:"players"`
}

func deriveState(id string, turns game.TurnLog, players *player.Registry) State {
	board := game.DeriveBoard(turns)
	outcome := game.DeriveOutcome(board, players)
	return State{
		GameID:  id,
		Board:   board,
		Next:    game.DeriveActivePlayer(turns),
		Status:  game.DeriveStatus(turns, outcome),
		Outcome: outcome,
		Turns:   turns,
		Players: players.Players(),
	}
}

// Message is the game-over banner text, or "" while the game is in progress.
func (s State) Message() string {
	switch s.Status {
	case game.StatusWon:
		return fmt.Sprintf("%s won!", s.Outcome.WinnerName)
	case game.StatusDraw:
		return "It's a draw!"
	default:
		return ""
	}
}

// stateLocked must be called with r.mu held.
func (r *Room) stateLocked() State {
	return deriveState(r.id, r.turns, r.players)
}

// snapshot copies the mutable parts of the room so derivations can run unlocked.
func (r *Room) snapshot() (string, game.TurnLog, *player.Registry) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.id, r.turns, r.players.Clone()
}

// State returns the full derived state.
func (r *Room) State() State {
	return deriveState(r.snapshot())
}

// ID returns the identifier of the current game. It changes on restart.
func (r *Room) ID() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.id
}

// TurnLog returns the turn log, most recent first.
func (r *Room) TurnLog() game.TurnLog {
	_, turns, _ := r.snapshot()
	return turns
}

// Board derives the current board.
func (r *Room) Board() game.Board {
	return game.DeriveBoard(r.TurnLog())
}

// ActivePlayer derives whose move is next.
func (r *Room) ActivePlayer() game.PlayerMark {
	return game.DeriveActivePlayer(r.TurnLog())
}

// Outcome derives the winner, if any, with current display names.
func (r *Room) Outcome() game.Outcome {
	_, turns, players := r.snapshot()
	return game.DeriveOutcome(game.DeriveBoard(turns), players)
}

// Status derives the game phase.
func (r *Room) Status() game.Status {
	_, turns, players := r.snapshot()
	return game.DeriveStatus(turns, game.DeriveOutcome(game.DeriveBoard(turns), players))
}

// PlayerName returns the display name for mark.
func (r *Room) PlayerName(mark game.PlayerMark) string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.players.Name(mark)
}

// RenamePlayer changes a display name. It is accepted in every status and
// never changes it.
func (r *Room) RenamePlayer(ctx context.Context, mark game.PlayerMark, name string) (State, error) {
	ctx, span := tracer.Start(ctx, "room.RenamePlayer", trace.WithAttributes(
		attribute.String("player.mark", string(mark)),
	))
	defer span.End()

	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.players.Rename(mark, name); err != nil {
		slog.WarnContext(ctx, "rename rejected", "game.id", r.id, "player.mark", mark, "error", err)
		span.RecordError(err)
		span.SetStatus(codes.Error, "Rename rejected")
		return State{}, fmt.Errorf("failed to rename player: %w", err)
	}

	slog.InfoContext(ctx, "player renamed", "game.id", r.id, "player.mark", mark, "player.name", name)

	state := r.stateLocked()
	r.notify(ctx, events.TypePlayerRenamed, events.PlayerRenamedPayload{
		GameID: r.id,
		Mark:   mark,
		Name:   name,
	}, state)

	return state, nil
}

// Restart clears the turn log and starts a new game. Player names are kept.
func (r *Room) Restart(ctx context.Context) State {
	ctx, span := tracer.Start(ctx, "room.Restart")
	defer span.End()

	r.mu.Lock()
	defer r.mu.Unlock()

	previousID := r.id
	r.id = uuid.New().String()
	r.turns = game.TurnLog{}

	span.SetAttributes(
		attribute.String("game.id", r.id),
		attribute.String("game.previous_id", previousID),
	)
	slog.InfoContext(ctx, "game restarted", "game.id", r.id, "game.previous_id", previousID)

	state := r.stateLocked()
	r.notify(ctx, events.TypeGameRestarted, events.GameRestartedPayload{
		GameID:         r.id,
		PreviousGameID: previousID,
	}, state)

	return state
}

// SetListener installs the listener told about accepted commands.
func (r *Room) SetListener(l Listener) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.listener = l
}
