package hub

import (
	"context"
	"ctchen222/hotseat-tictactoe/internal/game"
	"ctchen222/hotseat-tictactoe/internal/hub/types"
	"ctchen222/hotseat-tictactoe/internal/validator"
	"ctchen222/hotseat-tictactoe/pkg/proto"
	"encoding/json"
	"errors"
	"log/slog"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

var (
	errMissingPosition = errors.New("move requires a position")
	errMissingRename   = errors.New("rename requires a mark and a name")
)

// HandleMessage handles a message from a client. It acts as a dispatcher.
// Accepted commands reach clients through the room's listener; rejections
// are answered to the sender only.
func (h *Hub) HandleMessage(ctx context.Context, c *types.Client, rawMessage []byte) {
	ctx, span := tracer.Start(ctx, "hub.HandleMessage", trace.WithAttributes(
		attribute.String("client.id", c.ID),
	))
	defer span.End()

	var message proto.ClientToServerMessage
	if err := json.Unmarshal(rawMessage, &message); err != nil {
		slog.WarnContext(ctx, "error unmarshalling message", "client.id", c.ID, "error", err)
		span.RecordError(err)
		span.SetStatus(codes.Error, "Error unmarshalling message")
		sendError(ctx, c, "malformed message")
		return
	}

	if err := validator.GetValidator().Struct(message); err != nil {
		slog.WarnContext(ctx, "invalid message from client", "client.id", c.ID, "error", err)
		span.RecordError(err)
		span.SetStatus(codes.Error, "Invalid message format")
		sendError(ctx, c, err.Error())
		return
	}

	span.SetAttributes(attribute.String("message.type", message.Type))

	var err error
	switch message.Type {
	case proto.TypeMove:
		err = h.handleMove(ctx, &message)
	case proto.TypeRename:
		err = h.handleRename(ctx, &message)
	case proto.TypeRestart:
		h.game.Restart(ctx)
	}

	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Command rejected")
		sendError(ctx, c, err.Error())
	}
}

func (h *Hub) handleMove(ctx context.Context, message *proto.ClientToServerMessage) error {
	if len(message.Position) != 2 {
		return errMissingPosition
	}

	_, err := h.game.SubmitMove(ctx, message.Position[0], message.Position[1])
	return err
}

func (h *Hub) handleRename(ctx context.Context, message *proto.ClientToServerMessage) error {
	if message.Mark == "" || message.Name == nil {
		return errMissingRename
	}

	_, err := h.game.RenamePlayer(ctx, game.PlayerMark(message.Mark), *message.Name)
	return err
}
