package realtime

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

const (
	writeWait  = 10 * time.Second
	pingPeriod = 30 * time.Second
)

var (
	// ErrConnectionClosed is returned by Send once the connection terminated.
	ErrConnectionClosed = errors.New("realtime: connection closed")
	// ErrSendBufferFull is returned when a slow client exhausted its buffer.
	ErrSendBufferFull = errors.New("realtime: send buffer exceeded")
)

// Connection wraps a websocket bound to one authenticated user and
// coordinates outbound writes via a buffered channel. A user may own many
// concurrent connections (multiple tabs/devices); each gets its own id.
// A connection is safe for concurrent use.
//
// Termination is signalled solely through the done channel. The send channel
// is never closed: senders racing a close at worst enqueue into a buffer
// nobody drains, never panic. Broadcast fan-out must survive any member
// closing mid-iteration.
type Connection struct {
	ID       string
	UserID   string
	Username string

	ws        *websocket.Conn
	send      chan []byte
	done      chan struct{}
	closeOnce sync.Once
}

// NewConnection constructs a Connection for an authenticated user identity.
func NewConnection(userID, username string, ws *websocket.Conn) *Connection {
	return &Connection{
		ID:       uuid.NewString(),
		UserID:   userID,
		Username: username,
		ws:       ws,
		send:     make(chan []byte, 128),
		done:     make(chan struct{}),
	}
}

// Start launches the write loop. It must be called exactly once per connection.
func (c *Connection) Start() {
	go c.writeLoop()
}

// Send enqueues payload for delivery. Returns ErrConnectionClosed after the
// connection terminated. If the client is slow and the buffer is full, the
// connection is closed to keep backpressure bounded and ErrSendBufferFull is
// returned; the caller's fan-out continues with its remaining targets.
func (c *Connection) Send(payload []byte) error {
	select {
	case <-c.done:
		return ErrConnectionClosed
	default:
	}

	select {
	case c.send <- payload:
		return nil
	case <-c.done:
		return ErrConnectionClosed
	default:
		c.Close(websocket.CloseGoingAway, "send buffer full")
		return ErrSendBufferFull
	}
}

// Close terminates the connection and stops the write loop. Idempotent and
// safe to race with Send.
func (c *Connection) Close(code int, reason string) {
	c.closeOnce.Do(func() {
		close(c.done)
		if c.ws == nil {
			return
		}
		_ = c.ws.SetWriteDeadline(time.Now().Add(writeWait))
		_ = c.ws.WriteControl(websocket.CloseMessage, websocket.FormatCloseMessage(code, reason), time.Now().Add(writeWait))
		_ = c.ws.Close()
	})
}

func (c *Connection) writeLoop() {
	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()

	for {
		select {
		case <-c.done:
			return
		case msg := <-c.send:
			if err := c.writeMessage(msg); err != nil {
				return
			}
		case <-ticker.C:
			if err := c.writePing(); err != nil {
				return
			}
		}
	}
}

func (c *Connection) writeMessage(payload []byte) error {
	if err := c.ws.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
		return err
	}
	return c.ws.WriteMessage(websocket.TextMessage, payload)
}

func (c *Connection) writePing() error {
	if err := c.ws.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
		return err
	}
	return c.ws.WriteMessage(websocket.PingMessage, nil)
}
