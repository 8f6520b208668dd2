package websocket

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"slices"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/rocketscienceinc/counter-backend/internal/apperror"
	"github.com/rocketscienceinc/counter-backend/internal/changefeed"
	"github.com/rocketscienceinc/counter-backend/internal/entity"
	"github.com/rocketscienceinc/counter-backend/internal/metrics"
	"github.com/rocketscienceinc/counter-backend/transport/rest"
)

type authenticator interface {
	Authenticate(ctx context.Context, token string) (*entity.Identity, error)
}

type gameReader interface {
	Get(ctx context.Context, actor, id string) (*entity.Game, error)
}

type subscriber interface {
	Subscribe(ctx context.Context, gameID string) (changefeed.Subscription, error)
}

type Options struct {
	Port           string
	AllowedOrigins []string
}

type Server struct {
	logger  *slog.Logger
	auth    authenticator
	games   gameReader
	feed    subscriber
	metrics *metrics.Metrics

	upgrader   websocket.Upgrader
	httpServer *http.Server

	handlers map[string]func(ctx context.Context, conn *connection, message *Message) error

	connectionsMutex sync.Mutex
	connections      map[*connection]struct{}
}

func New(logger *slog.Logger, options Options, auth authenticator, games gameReader, feed subscriber, m *metrics.Metrics) *Server {
	server := &Server{
		logger:  logger.With("component", "websocket"),
		auth:    auth,
		games:   games,
		feed:    feed,
		metrics: m,

		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     originChecker(options.AllowedOrigins),
		},

		handlers:    make(map[string]func(context.Context, *connection, *Message) error),
		connections: make(map[*connection]struct{}),
	}

	server.handlers[ActionSubscribe] = server.handleSubscribe
	server.handlers[ActionUnsubscribe] = server.handleUnsubscribe

	server.httpServer = &http.Server{
		Addr:              ":" + options.Port,
		Handler:           server.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	return server
}

func (that *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", that.upgradeToWebSocket)

	return mux
}

// Start - starts WebSocket server.
func (that *Server) Start() error {
	that.logger.Info("Starting WebSocket server", "addr", that.httpServer.Addr)

	if err := that.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

// Shutdown - stops accepting upgrades and closes every live connection.
func (that *Server) Shutdown(ctx context.Context) error {
	err := that.httpServer.Shutdown(ctx)

	that.connectionsMutex.Lock()
	for conn := range that.connections {
		conn.close()
	}
	that.connectionsMutex.Unlock()

	if err != nil {
		return fmt.Errorf("failed to shutdown WebSocket server: %w", err)
	}

	return nil
}

// upgradeToWebSocket - authenticates the caller and upgrades the connection.
func (that *Server) upgradeToWebSocket(w http.ResponseWriter, r *http.Request) {
	log := that.logger.With("method", "upgradeToWebSocket")

	identity, err := that.auth.Authenticate(r.Context(), rest.BearerToken(r))
	if err != nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	ws, err := that.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// the upgrader has already replied with an HTTP error
		log.Warn("failed to upgrade connection", "error", err)
		return
	}

	// the request context ends with the handler, the connection outlives it
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	conn := newConnection(ws, identity, that.metrics)

	that.connectionsMutex.Lock()
	that.connections[conn] = struct{}{}
	that.connectionsMutex.Unlock()

	log.Info("WebSocket connection established", "user_id", identity.UserID)

	go conn.writePump(that.logger)

	that.handleMessages(ctx, conn)

	that.connectionsMutex.Lock()
	delete(that.connections, conn)
	that.connectionsMutex.Unlock()

	conn.close()

	log.Info("WebSocket connection closed", "user_id", identity.UserID)
}

// handleMessages - processes messages from the client until it disconnects.
func (that *Server) handleMessages(ctx context.Context, conn *connection) {
	log := that.logger.With("method", "handleMessages", "user_id", conn.identity.UserID)

	conn.ws.SetReadLimit(maxMessageSize)
	_ = conn.ws.SetReadDeadline(time.Now().Add(pongWait))
	conn.ws.SetPongHandler(func(string) error {
		return conn.ws.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		var message Message
		if err := conn.ws.ReadJSON(&message); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Warn("error reading message", "error", err)
			}
			return
		}

		handler, ok := that.handlers[message.Action]
		if !ok {
			conn.sendError(message.Action, fmt.Errorf("unknown action %q: %w", message.Action, apperror.ErrInvalidInput))
			continue
		}

		if err := handler(ctx, conn, &message); err != nil {
			log.Warn("error processing message", "action", message.Action, "error", err)
			conn.sendError(message.Action, err)
		}
	}
}

func originChecker(allowed []string) func(r *http.Request) bool {
	if len(allowed) == 0 || slices.Contains(allowed, "*") {
		return func(*http.Request) bool { return true }
	}

	return func(r *http.Request) bool {
		origin := r.Header.Get("Origin")
		return origin == "" || slices.Contains(allowed, origin)
	}
}
