package hub

import (
	"context"
	"ctchen222/hotseat-tictactoe/internal/hub/types"
	"ctchen222/hotseat-tictactoe/internal/room"
	"ctchen222/hotseat-tictactoe/pkg/proto"
	"encoding/json"
	"log/slog"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

func newUpdateMessage(state room.State, event string) *proto.ServerToClientMessage {
	turns := state.Turns.Turns()
	lines := make([]string, len(turns))
	for i, t := range turns {
		lines[i] = t.String()
	}

	msg := &proto.ServerToClientMessage{
		Type:    proto.TypeUpdate,
		Event:   event,
		GameID:  state.GameID,
		Board:   state.Board.Rows(),
		Next:    state.Next,
		Status:  state.Status,
		Winner:  state.Outcome.Winner,
		Line:    state.Outcome.Line,
		Message: state.Message(),
		Turns:   lines,
		Players: state.Players,
	}
	if state.Outcome.HasWinner() {
		name := state.Outcome.WinnerName
		msg.WinnerName = &name
	}
	return msg
}

// sendInitialState greets a new client and queues the latest broadcast state.
func (h *Hub) sendInitialState(ctx context.Context, c *types.Client) {
	ctx, span := tracer.Start(ctx, "hub.sendInitialState", trace.WithAttributes(
		attribute.String("client.id", c.ID),
	))
	defer span.End()

	welcome, err := json.Marshal(proto.WelcomeMessage{Type: proto.TypeWelcome, ClientID: c.ID})
	if err != nil {
		slog.ErrorContext(ctx, "error marshalling welcome message", "error", err)
		span.RecordError(err)
		span.SetStatus(codes.Error, "Error marshalling welcome message")
		return
	}
	update, err := json.Marshal(h.latest)
	if err != nil {
		slog.ErrorContext(ctx, "error marshalling initial state", "error", err)
		span.RecordError(err)
		span.SetStatus(codes.Error, "Error marshalling initial state")
		return
	}

	for _, data := range [][]byte{welcome, update} {
		if !c.Send(data) {
			slog.WarnContext(ctx, "could not queue initial state for client", "client.id", c.ID)
			span.SetStatus(codes.Error, "Could not queue initial state")
			return
		}
	}
}

// sendError tells a single client its command was refused.
func sendError(ctx context.Context, c *types.Client, reason string) {
	span := trace.SpanFromContext(ctx)

	data, err := json.Marshal(proto.ServerToClientMessage{Type: proto.TypeError, Reason: reason})
	if err != nil {
		slog.ErrorContext(ctx, "error marshalling rejection", "client.id", c.ID, "error", err)
		span.RecordError(err)
		return
	}
	if !c.Send(data) {
		slog.WarnContext(ctx, "could not queue rejection for client", "client.id", c.ID)
	}
}
