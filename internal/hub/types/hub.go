package types

import (
	"context"
	"sync"
	"time"
)

const (
	// TextMessage matches websocket.TextMessage.
	TextMessage = 1

	// SendBuffer is how many messages a client may fall behind before it is dropped.
	SendBuffer = 16

	// WriteWait bounds a single websocket write.
	WriteWait = 10 * time.Second
)

// Connection is an interface that abstracts the websocket connection.
type Connection interface {
	WriteMessage(messageType int, data []byte) error
	ReadMessage() (int, []byte, error)
	SetWriteDeadline(t time.Time) error
	Close() error
}

// Client is one browser tab viewing the table. Messages are queued with Send
// and written by WritePump, so a slow tab never blocks the sender.
type Client struct {
	ID   string
	Conn Connection

	send      chan []byte
	done      chan struct{}
	closeOnce sync.Once
}

// NewClient wraps conn.
func NewClient(id string, conn Connection) *Client {
	return &Client{
		ID:   id,
		Conn: conn,
		send: make(chan []byte, SendBuffer),
		done: make(chan struct{}),
	}
}

// Send queues data for the write pump. It reports false when the client is
// closed or its queue is full.
func (c *Client) Send(data []byte) bool {
	select {
	case <-c.done:
		return false
	default:
	}

	select {
	case c.send <- data:
		return true
	default:
		return false
	}
}

// WritePump writes queued messages until the client is closed or a write fails.
func (c *Client) WritePump() {
	defer c.Close()

	for {
		select {
		case <-c.done:
			return
		case data := <-c.send:
			if err := c.Conn.SetWriteDeadline(time.Now().Add(WriteWait)); err != nil {
				return
			}
			if err := c.Conn.WriteMessage(TextMessage, data); err != nil {
				return
			}
		}
	}
}

// Close stops the write pump and closes the connection. It is safe to call more than once.
func (c *Client) Close() {
	c.closeOnce.Do(func() {
		close(c.done)
		c.Conn.Close()
	})
}

// Done is closed once the client has been closed.
func (c *Client) Done() <-chan struct{} {
	return c.done
}

// RegistrationRequest represents a request to register a client.
type RegistrationRequest struct {
	Client *Client
	Ctx    context.Context
}
