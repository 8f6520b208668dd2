package websocket

import (
	"log/slog"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/rocketscienceinc/counter-backend/internal/apperror"
	"github.com/rocketscienceinc/counter-backend/internal/changefeed"
	"github.com/rocketscienceinc/counter-backend/internal/entity"
	"github.com/rocketscienceinc/counter-backend/internal/metrics"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = 50 * time.Second
	maxMessageSize = 4096
	sendBuffer     = 64
)

// connection is one authenticated socket and its single game subscription.
type connection struct {
	ws       *websocket.Conn
	identity *entity.Identity
	metrics  *metrics.Metrics

	send      chan Message
	done      chan struct{}
	closeOnce sync.Once

	mu           sync.Mutex
	subscription changefeed.Subscription
	gameID       string
}

func newConnection(ws *websocket.Conn, identity *entity.Identity, m *metrics.Metrics) *connection {
	return &connection{
		ws:       ws,
		identity: identity,
		metrics:  m,
		send:     make(chan Message, sendBuffer),
		done:     make(chan struct{}),
	}
}

// writePump - the only goroutine writing to the socket.
func (that *connection) writePump(logger *slog.Logger) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		_ = that.ws.Close()
	}()

	for {
		select {
		case message := <-that.send:
			_ = that.ws.SetWriteDeadline(time.Now().Add(writeWait))
			if err := that.ws.WriteJSON(message); err != nil {
				logger.Warn("failed to write message", "user_id", that.identity.UserID, "error", err)
				return
			}
		case <-ticker.C:
			_ = that.ws.SetWriteDeadline(time.Now().Add(writeWait))
			if err := that.ws.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		case <-that.done:
			_ = that.ws.SetWriteDeadline(time.Now().Add(writeWait))
			_ = that.ws.WriteMessage(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
			return
		}
	}
}

func (that *connection) enqueue(action string, payload Payload) {
	message, err := NewMessage(action, payload)
	if err != nil {
		return
	}

	select {
	case that.send <- message:
	case <-that.done:
	}
}

func (that *connection) sendError(action string, err error) {
	code := apperror.Code(err)

	text := err.Error()
	if code == apperror.CodeWriteFailed {
		text = "internal error"
	}

	that.enqueue(ActionError, Payload{Action: action, Error: text, Code: code})
}

// replace - swaps the active subscription, closing the previous one.
func (that *connection) replace(gameID string, sub changefeed.Subscription) {
	that.mu.Lock()
	previous := that.subscription
	that.subscription, that.gameID = sub, gameID
	that.mu.Unlock()

	if sub != nil {
		that.metrics.Subscriptions.Inc()
	}

	if previous != nil {
		_ = previous.Close()
		that.metrics.Subscriptions.Dec()
	}
}

func (that *connection) current() (string, changefeed.Subscription) {
	that.mu.Lock()
	defer that.mu.Unlock()

	return that.gameID, that.subscription
}

func (that *connection) close() {
	that.closeOnce.Do(func() {
		close(that.done)
		that.replace("", nil)
	})
}
