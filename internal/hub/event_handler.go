package hub

import (
	"context"
	"ctchen222/hotseat-tictactoe/internal/events"
	"ctchen222/hotseat-tictactoe/internal/room"
	"ctchen222/hotseat-tictactoe/pkg/proto"
	"log/slog"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// handleEvent turns a room event into the update pushed to clients.
func (h *Hub) handleEvent(ctx context.Context, event events.Event, state room.State) *proto.ServerToClientMessage {
	ctx, span := tracer.Start(ctx, "hub.handleEvent", trace.WithAttributes(
		attribute.String("event.type", event.Type),
		attribute.String("game.id", state.GameID),
	))
	defer span.End()

	msg := newUpdateMessage(state, event.Type)

	switch event.Type {
	case events.TypeMoveRecorded:
		var payload events.MoveRecordedPayload
		if err := event.Decode(&payload); err != nil {
			slog.ErrorContext(ctx, "could not decode move_recorded payload", "error", err)
			span.RecordError(err)
			span.SetStatus(codes.Error, "Could not decode move_recorded payload")
			break
		}
		msg.LastTurn = &payload.Turn

	case events.TypeGameOver:
		slog.InfoContext(ctx, "announcing game over", "game.id", state.GameID, "game.status", state.Status)

	case events.TypePlayerRenamed, events.TypeGameRestarted:
		// the state already says everything

	default:
		slog.WarnContext(ctx, "unknown event type", "event.type", event.Type)
	}

	return msg
}
