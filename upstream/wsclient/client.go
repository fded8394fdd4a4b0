// Package wsclient implements upstream.Client over a JSON websocket.
package wsclient

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"room-bot/errors"
	"room-bot/upstream"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

var _ upstream.Client = (*Client)(nil)

const writeTimeout = 5 * time.Second

type Client struct {
	log          *slog.Logger
	url          string
	pingInterval time.Duration

	conn    *websocket.Conn
	wmu     sync.Mutex // serializes writes
	mu      sync.Mutex
	pending map[string]func(frame)
	closed  atomic.Bool
	done    chan struct{}

	handler  atomic.Pointer[upstream.Handler]
	snapMu   sync.RWMutex
	snapshot Snapshot
}

func New(log *slog.Logger, url string, pingInterval time.Duration) *Client {
	return &Client{
		log:          log,
		url:          url,
		pingInterval: pingInterval,
		pending:      make(map[string]func(frame)),
		done:         make(chan struct{}),
	}
}

func (c *Client) OnEvent(handler upstream.Handler) {
	c.handler.Store(&handler)
}

// Connect dials, joins room and waits for the server to accept.
// The room snapshot sent before the acceptance is already cached on return.
func (c *Client) Connect(ctx context.Context, room string) error {
	conn, _, err := websocket.DefaultDialer.DialContext(ctx, c.url, nil)
	if err != nil {
		return fmt.Errorf("dial %s: %w", c.url, err)
	}
	conn.SetReadLimit(8 << 20)
	c.conn = conn
	go c.readLoop()
	if c.pingInterval > 0 {
		go c.ping()
	}

	joined := make(chan bool, 1)
	if !c.send("join", map[string]string{"room": room}, func(f frame) { joined <- f.OK }) {
		_ = c.Close()
		return errors.ErrNotConnected
	}
	select {
	case <-ctx.Done():
		_ = c.Close()
		return ctx.Err()
	case ok := <-joined:
		if !ok {
			_ = c.Close()
			return fmt.Errorf("%w: join %s", errors.ErrActionRejected, room)
		}
	}
	c.log.Info("Connected to room", "room", room, "url", c.url)
	return nil
}

func (c *Client) Close() error {
	if !c.closed.CompareAndSwap(false, true) {
		return nil
	}
	if c.conn == nil {
		return nil
	}
	c.wmu.Lock()
	_ = c.conn.WriteControl(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, "closing"),
		time.Now().Add(500*time.Millisecond))
	c.wmu.Unlock()
	return c.conn.Close()
}

func (c *Client) SendChat(message string) bool {
	return c.send("chat", map[string]string{"message": message}, nil)
}

func (c *Client) Ban(userID int, reason int, duration string, cb upstream.Callback) bool {
	return c.send("ban", banParams{UserID: userID, Reason: reason, Duration: duration}, ack(cb))
}

func (c *Client) ForceSkip(cb upstream.Callback) bool { return c.send("skip", nil, ack(cb)) }

func (c *Client) Grab(cb upstream.Callback) bool { return c.send("grab", nil, ack(cb)) }

func (c *Client) JoinWaitList(cb upstream.Callback) bool {
	return c.send("joinWaitList", nil, ack(cb))
}

func (c *Client) LeaveWaitList(cb upstream.Callback) bool {
	return c.send("leaveWaitList", nil, ack(cb))
}

func (c *Client) Woot(cb upstream.Callback) bool { return c.send("woot", nil, ack(cb)) }

func (c *Client) Meh(cb upstream.Callback) bool { return c.send("meh", nil, ack(cb)) }

func (c *Client) History(cb upstream.HistoryCallback) {
	ok := c.send("history", nil, func(f frame) {
		if !f.OK {
			cb(nil, fmt.Errorf("%w: history", errors.ErrActionRejected))
			return
		}
		var entries []upstream.HistoryEntry
		if err := json.Unmarshal(f.Payload, &entries); err != nil {
			cb(nil, fmt.Errorf("%w: %w", errors.ErrInvalidPayload, err))
			return
		}
		cb(entries, nil)
	})
	if !ok {
		cb(nil, errors.ErrNotConnected)
	}
}

func (c *Client) Media() *upstream.Media {
	c.snapMu.RLock()
	defer c.snapMu.RUnlock()
	if c.snapshot.Media == nil {
		return nil
	}
	m := *c.snapshot.Media
	return &m
}

func (c *Client) DJ() *upstream.User {
	c.snapMu.RLock()
	defer c.snapMu.RUnlock()
	if c.snapshot.DJ == nil {
		return nil
	}
	u := *c.snapshot.DJ
	return &u
}

func (c *Client) Users() []upstream.User {
	c.snapMu.RLock()
	defer c.snapMu.RUnlock()
	return append([]upstream.User(nil), c.snapshot.Users...)
}

func (c *Client) WaitList() []upstream.User {
	c.snapMu.RLock()
	defer c.snapMu.RUnlock()
	return append([]upstream.User(nil), c.snapshot.WaitList...)
}

func (c *Client) TimeElapsed() int {
	c.snapMu.RLock()
	defer c.snapMu.RUnlock()
	return c.snapshot.Elapsed
}

func ack(cb upstream.Callback) func(frame) {
	if cb == nil {
		return nil
	}
	return func(f frame) { cb(f.OK) }
}

// send writes an action frame. onReply, when set, is called exactly once:
// with the server reply, or with a failed frame if the connection drops.
func (c *Client) send(action string, params any, onReply func(frame)) bool {
	if c.conn == nil || c.closed.Load() || c.disconnected() {
		return false
	}
	id := uuid.NewString()
	if onReply != nil {
		c.mu.Lock()
		c.pending[id] = onReply
		c.mu.Unlock()
	}

	data, err := json.Marshal(request{Type: frameAction, ID: id, Action: action, Params: params})
	if err == nil {
		c.wmu.Lock()
		_ = c.conn.SetWriteDeadline(time.Now().Add(writeTimeout))
		err = c.conn.WriteMessage(websocket.TextMessage, data)
		c.wmu.Unlock()
	}
	if err != nil {
		c.log.Error("Failed to send action", "action", action, "error", err)
		if onReply == nil {
			return false
		}
		return !c.abandon(id)
	}
	return true
}

// abandon drops a pending request and reports whether it was still pending.
// When it was not, failPending already delivered its callback.
func (c *Client) abandon(id string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, ok := c.pending[id]
	delete(c.pending, id)
	return ok
}

func (c *Client) readLoop() {
	defer func() {
		close(c.done)
		c.failPending()
	}()
	for {
		_, data, err := c.conn.ReadMessage()
		if err != nil {
			if !c.closed.Load() {
				c.log.Error("Connection lost", "error", err)
			}
			return
		}
		var f frame
		if err = json.Unmarshal(data, &f); err != nil {
			c.log.Error("Dropping frame", "error", fmt.Errorf("%w: %w", errors.ErrInvalidPayload, err))
			continue
		}
		c.route(f)
	}
}

func (c *Client) route(f frame) {
	switch f.Type {
	case frameEvent:
		if h := c.handler.Load(); h != nil && *h != nil {
			(*h)(upstream.Event{Kind: f.Kind, Payload: f.Payload})
		}
	case frameRoom:
		var snap Snapshot
		if err := json.Unmarshal(f.Payload, &snap); err != nil {
			c.log.Error("Dropping room snapshot", "error", fmt.Errorf("%w: %w", errors.ErrInvalidPayload, err))
			return
		}
		c.snapMu.Lock()
		c.snapshot = snap
		c.snapMu.Unlock()
	case frameReply:
		c.mu.Lock()
		cb, ok := c.pending[f.ID]
		delete(c.pending, f.ID)
		c.mu.Unlock()
		if ok {
			cb(f)
		}
	default:
		c.log.Warn("Unknown frame type", "type", f.Type)
	}
}

func (c *Client) disconnected() bool {
	select {
	case <-c.done:
		return true
	default:
		return false
	}
}

func (c *Client) failPending() {
	c.mu.Lock()
	pending := c.pending
	c.pending = make(map[string]func(frame))
	c.mu.Unlock()
	for _, cb := range pending {
		cb(frame{Type: frameReply, OK: false})
	}
}

func (c *Client) ping() {
	t := time.NewTicker(c.pingInterval)
	defer t.Stop()
	for {
		select {
		case <-c.done:
			return
		case <-t.C:
			c.wmu.Lock()
			err := c.conn.WriteControl(websocket.PingMessage, []byte("ping"), time.Now().Add(writeTimeout))
			c.wmu.Unlock()
			if err != nil {
				c.log.Warn("Ping failed", "error", err)
			}
		}
	}
}
