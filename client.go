package main

import (
	"net"

	"github.com/gobwas/ws/wsutil"
	"github.com/google/uuid"
)

// ConnID identifies one transport connection. It is generated server-side at
// accept time and passed explicitly through every core operation.
type ConnID string

const sendBufferSize = 32

// Client wraps one WebSocket connection. All outbound frames go through the
// send channel so that relays originating on other connections' read loops
// never interleave writes.
type Client struct {
	ID     ConnID
	conn   net.Conn
	send   chan []byte
	roomID string
}

func NewClient(conn net.Conn) *Client {
	return &Client{
		ID:   ConnID(uuid.NewString()),
		conn: conn,
		send: make(chan []byte, sendBufferSize),
	}
}

// WritePump drains the send channel onto the connection until the channel is
// closed or a write fails.
func (c *Client) WritePump() {
	defer c.conn.Close()
	for message := range c.send {
		if err := wsutil.WriteServerText(c.conn, message); err != nil {
			return
		}
	}
}

// enqueue hands a frame to the write pump. A full buffer means the consumer
// stopped draining; the frame is dropped and the caller decides whether that
// matters.
func (c *Client) enqueue(data []byte) bool {
	select {
	case c.send <- data:
		return true
	default:
		return false
	}
}
