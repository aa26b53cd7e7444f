package room

import (
	"context"
	"ctchen222/hotseat-tictactoe/internal/events"
	"ctchen222/hotseat-tictactoe/internal/game"
	"ctchen222/hotseat-tictactoe/internal/player"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
	"go.opentelemetry.io/otel/trace"
)

var (
	tracer = otel.Tracer("room")
	meter  = otel.Meter("room")

	movesCounter metric.Int64Counter = noop.Int64Counter{}
	gamesCounter metric.Int64Counter = noop.Int64Counter{}
)

func init() {
	if c, err := meter.Int64Counter("tictactoe.moves",
		metric.WithDescription("Moves submitted to a room, by result."),
	); err == nil {
		movesCounter = c
	}
	if c, err := meter.Int64Counter("tictactoe.games.finished",
		metric.WithDescription("Games that reached a terminal status."),
	); err == nil {
		gamesCounter = c
	}
}

//go:generate mockgen -source=room.go -destination=mock_listener_test.go -package=room

// Listener is told about every accepted command. Notify runs while the room
// is locked and must not call back into it.
type Listener interface {
	Notify(ctx context.Context, event events.Event, state State)
}

// Room is the game controller for one hot-seat table. It owns the turn log
// and the player registry; every command runs under its lock, one at a time.
type Room struct {
	mu       sync.Mutex
	id       string
	turns    game.TurnLog
	players  *player.Registry
	listener Listener
}

// NewRoom creates a room with an empty turn log.
func NewRoom(players *player.Registry) *Room {
	return &Room{
		id:      uuid.New().String(),
		players: players,
	}
}

// SubmitMove records a move for the active player at (row, col).
func (r *Room) SubmitMove(ctx context.Context, row, col int) (State, error) {
	ctx, span := tracer.Start(ctx, "room.SubmitMove", trace.WithAttributes(
		attribute.Int("move.row", row),
		attribute.Int("move.col", col),
	))
	defer span.End()

	r.mu.Lock()
	defer r.mu.Unlock()

	span.SetAttributes(attribute.String("game.id", r.id))

	turn, err := r.acceptMove(game.Position{Row: row, Col: col})
	if err != nil {
		slog.WarnContext(ctx, "move rejected", "game.id", r.id, "move.row", row, "move.col", col, "error", err)
		span.SetAttributes(attribute.Bool("move.valid", false))
		span.RecordError(err)
		span.SetStatus(codes.Error, "Invalid move")
		movesCounter.Add(ctx, 1, metric.WithAttributes(attribute.String("result", rejectReason(err))))
		return State{}, fmt.Errorf("failed to record move: %w", err)
	}

	r.turns = r.turns.Record(turn)
	span.SetAttributes(attribute.Bool("move.valid", true), attribute.String("player.mark", string(turn.Player)))
	movesCounter.Add(ctx, 1, metric.WithAttributes(attribute.String("result", "accepted")))

	state := r.stateLocked()
	slog.InfoContext(ctx, "move recorded", "game.id", r.id, "player.mark", turn.Player, "move.row", row, "move.col", col, "turn", r.turns.Len())

	r.notify(ctx, events.TypeMoveRecorded, events.MoveRecordedPayload{
		GameID: r.id,
		Turn:   turn,
		Number: r.turns.Len(),
	}, state)

	if state.Status.IsOver() {
		slog.InfoContext(ctx, "game over", "game.id", r.id, "game.status", state.Status, "game.winner", state.Outcome.WinnerName)
		span.SetAttributes(attribute.String("game.status", string(state.Status)))
		gamesCounter.Add(ctx, 1, metric.WithAttributes(attribute.String("status", string(state.Status))))
		r.notify(ctx, events.TypeGameOver, events.GameOverPayload{
			GameID:     r.id,
			Status:     state.Status,
			Winner:     state.Outcome.Winner,
			WinnerName: state.Outcome.WinnerName,
		}, state)
	}

	return state, nil
}

// acceptMove validates pos against the current log and returns the turn to
// record. Nothing is mutated here.
func (r *Room) acceptMove(pos game.Position) (game.Turn, error) {
	if !pos.Valid() {
		return game.Turn{}, fmt.Errorf("%w: row %d, col %d", game.ErrInvalidPosition, pos.Row, pos.Col)
	}

	board := game.DeriveBoard(r.turns)
	outcome := game.DeriveOutcome(board, r.players)
	if game.DeriveStatus(r.turns, outcome).IsOver() {
		return game.Turn{}, game.ErrMoveAfterConclusion
	}

	if board.IsOccupied(pos) {
		return game.Turn{}, fmt.Errorf("%w: row %d, col %d", game.ErrOccupiedSquare, pos.Row, pos.Col)
	}

	return game.Turn{Square: pos, Player: game.DeriveActivePlayer(r.turns)}, nil
}

// notify must be called with r.mu held.
func (r *Room) notify(ctx context.Context, eventType string, payload any, state State) {
	if r.listener == nil {
		return
	}

	event, err := events.New(eventType, payload)
	if err != nil {
		slog.ErrorContext(ctx, "failed to build event", "game.id", r.id, "event.type", eventType, "error", err)
		trace.SpanFromContext(ctx).RecordError(err)
		return
	}

	r.listener.Notify(ctx, event, state)
}

func rejectReason(err error) string {
	switch {
	case errors.Is(err, game.ErrInvalidPosition):
		return "invalid_position"
	case errors.Is(err, game.ErrOccupiedSquare):
		return "occupied_square"
	case errors.Is(err, game.ErrMoveAfterConclusion):
		return "move_after_conclusion"
	default:
		return "unknown"
	}
}
