package ws

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"golang.org/x/time/rate"

	"github.com/React-Acme-Solutions/pictionary-clash-ai-backend/internal/shared/logger"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = time.Minute
	pingPeriod     = 30 * time.Second
	maxMessageSize = 1 << 20 // canvas snapshots are the largest inbound payload
	sendBuffer     = 256
)

// Client is one websocket connection. Its generated id is the opaque caller
// identifier the coordinator sees; nothing else about the peer's identity is
// tracked.
type Client struct {
	id      string
	conn    *websocket.Conn
	hub     *Hub
	send    chan []byte
	limiter *rate.Limiter

	mu     sync.Mutex
	closed bool
}

func newClient(hub *Hub, conn *websocket.Conn) *Client {
	return &Client{
		id:      uuid.NewString(),
		conn:    conn,
		hub:     hub,
		send:    make(chan []byte, sendBuffer),
		limiter: rate.NewLimiter(rate.Limit(hub.eventRate), hub.eventBurst),
	}
}

func (c *Client) ID() string {
	return c.id
}

// enqueue hands a frame to the write pump without blocking. Frames for a
// slow or closed client are dropped.
func (c *Client) enqueue(frame []byte) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	select {
	case c.send <- frame:
	default:
	}
}

func (c *Client) shutdown() {
	c.mu.Lock()
	if !c.closed {
		c.closed = true
		close(c.send)
	}
	c.mu.Unlock()
}

// readPump pulls frames off the connection, applies the inbound rate limit
// and dispatches decoded events. It owns the disconnect path: a player who
// disconnects mid-game stays in the session's player list and scores, the
// hub just stops delivering to them.
func (c *Client) readPump() {
	defer func() {
		c.hub.unregister(c)
		c.conn.Close()
		logger.Infof("client %s disconnected", c.id)
	}()

	c.conn.SetReadLimit(maxMessageSize)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		_, frame, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				logger.Warningf("client %s read error: %v", c.id, err)
			}
			return
		}

		if !c.limiter.Allow() {
			logger.Debugf("client %s rate limited, dropping event", c.id)
			continue
		}

		var env Envelope
		if err := json.Unmarshal(frame, &env); err != nil {
			logger.Debugf("client %s sent malformed frame: %v", c.id, err)
			c.hub.deliverError(c.id, errMalformedEvent)
			continue
		}
		c.handleEvent(env)
	}
}

// writePump serializes all writes to the connection and keeps it alive with
// periodic pings.
func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case frame, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, frame); err != nil {
				return
			}
		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
