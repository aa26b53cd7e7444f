package hub

import (
	"context"
	"ctchen222/hotseat-tictactoe/internal/hub/types"
	"ctchen222/hotseat-tictactoe/pkg/proto"
	"encoding/json"
	"log/slog"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// Broadcast queues a message for all connected clients. It runs on the Run
// goroutine and never waits on a connection.
func (h *Hub) Broadcast(ctx context.Context, message *proto.ServerToClientMessage) {
	ctx, span := tracer.Start(ctx, "hub.Broadcast", trace.WithAttributes(
		attribute.String("message.type", message.Type),
		attribute.String("message.event", message.Event),
		attribute.Int("clients.count", len(h.clients)),
	))
	defer span.End()

	data, err := json.Marshal(message)
	if err != nil {
		slog.ErrorContext(ctx, "error marshalling message", "error", err)
		span.RecordError(err)
		span.SetStatus(codes.Error, "Error marshalling message")
		return
	}

	for id, c := range h.clients {
		if !c.Send(data) {
			slog.WarnContext(ctx, "dropping client that fell behind", "client.id", id)
			span.AddEvent("client dropped", trace.WithAttributes(attribute.String("client.id", id)))
			delete(h.clients, id)
			c.Close()
		}
	}
}

// ReadPump pumps messages from the websocket connection into HandleMessage
// until the connection fails, then unregisters the client.
func (h *Hub) ReadPump(ctx context.Context, c *types.Client) {
	ctx, span := tracer.Start(ctx, "hub.ReadPump", trace.WithAttributes(
		attribute.String("client.id", c.ID),
	))
	defer span.End()

	defer h.Leave(c)

	for {
		_, msg, err := c.Conn.ReadMessage()
		if err != nil {
			slog.InfoContext(ctx, "client connection closed", "client.id", c.ID, "error", err)
			return
		}
		h.HandleMessage(ctx, c, msg)
	}
}
