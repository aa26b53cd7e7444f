package hub

import (
	"context"
	"ctchen222/hotseat-tictactoe/internal/events"
	"ctchen222/hotseat-tictactoe/internal/game"
	"ctchen222/hotseat-tictactoe/internal/hub/types"
	"ctchen222/hotseat-tictactoe/internal/room"
	"ctchen222/hotseat-tictactoe/pkg/proto"
	"errors"
	"log/slog"

	"go.opentelemetry.io/otel"
)

const broadcastBuffer = 16

var tracer = otel.Tracer("hub")

// ErrClosed is returned when the hub has stopped running.
var ErrClosed = errors.New("hub is closed")

// Game is the part of a room the hub drives.
type Game interface {
	SubmitMove(ctx context.Context, row, col int) (room.State, error)
	RenamePlayer(ctx context.Context, mark game.PlayerMark, name string) (room.State, error)
	Restart(ctx context.Context) room.State
	State() room.State
}

// Hub fans the room's state out to every connected client. Client
// bookkeeping and broadcasts happen on the Run goroutine only; each client
// has its own write pump and is dropped when it falls behind.
type Hub struct {
	game       Game
	clients    map[string]*types.Client
	latest     *proto.ServerToClientMessage
	register   chan *types.RegistrationRequest
	unregister chan *types.Client
	broadcast  chan *proto.ServerToClientMessage
	done       chan struct{}
}

// NewHub creates a new hub. The room's current state is captured here so the
// Run loop never has to call back into the room.
func NewHub(g Game) *Hub {
	return &Hub{
		game:       g,
		clients:    make(map[string]*types.Client),
		latest:     newUpdateMessage(g.State(), ""),
		register:   make(chan *types.RegistrationRequest),
		unregister: make(chan *types.Client),
		broadcast:  make(chan *proto.ServerToClientMessage, broadcastBuffer),
		done:       make(chan struct{}),
	}
}

// Run starts the hub and blocks until ctx is cancelled.
func (h *Hub) Run(ctx context.Context) {
	defer close(h.done)

	for {
		select {
		case <-ctx.Done():
			for id, c := range h.clients {
				c.Close()
				delete(h.clients, id)
			}
			slog.InfoContext(ctx, "hub stopped")
			return

		case req := <-h.register:
			h.clients[req.Client.ID] = req.Client
			go req.Client.WritePump()
			slog.InfoContext(req.Ctx, "client connected", "client.id", req.Client.ID, "clients.count", len(h.clients))
			h.sendInitialState(req.Ctx, req.Client)

		case c := <-h.unregister:
			if _, ok := h.clients[c.ID]; ok {
				delete(h.clients, c.ID)
				slog.InfoContext(ctx, "client disconnected", "client.id", c.ID, "clients.count", len(h.clients))
			}
			c.Close()

		case msg := <-h.broadcast:
			h.latest = msg
			h.Broadcast(ctx, msg)
		}
	}
}

// Notify implements room.Listener. The room calls it under its lock; it
// waits only for the Run loop, which never blocks on a client.
func (h *Hub) Notify(ctx context.Context, event events.Event, state room.State) {
	msg := h.handleEvent(ctx, event, state)

	select {
	case h.broadcast <- msg:
	case <-h.done:
	}
}

// Join registers c with the running hub.
func (h *Hub) Join(ctx context.Context, c *types.Client) error {
	select {
	case h.register <- &types.RegistrationRequest{Client: c, Ctx: ctx}:
		return nil
	case <-h.done:
		return ErrClosed
	}
}

// Leave unregisters c and closes its connection.
func (h *Hub) Leave(c *types.Client) {
	select {
	case h.unregister <- c:
	case <-h.done:
		c.Close()
	}
}

// Done is closed once Run has returned.
func (h *Hub) Done() <-chan struct{} {
	return h.done
}
