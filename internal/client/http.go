package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/gorilla/websocket"

	"github.com/rocketscienceinc/counter-backend/internal/apperror"
	"github.com/rocketscienceinc/counter-backend/internal/counter"
	"github.com/rocketscienceinc/counter-backend/internal/entity"
	socket "github.com/rocketscienceinc/counter-backend/transport/websocket"
)

type HTTPBackend struct {
	apiURL    string
	socketURL string
	client    *http.Client
	dialer    *websocket.Dialer
}

func NewHTTPBackend(apiURL, socketURL string) *HTTPBackend {
	return &HTTPBackend{
		apiURL:    strings.TrimRight(apiURL, "/"),
		socketURL: socketURL,
		client:    &http.Client{Timeout: 10 * time.Second},
		dialer:    &websocket.Dialer{HandshakeTimeout: 10 * time.Second},
	}
}

type credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type apiError struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

func (that *HTTPBackend) SignUp(ctx context.Context, email, password string) (*entity.Session, error) {
	var session entity.Session
	if err := that.do(ctx, http.MethodPost, "/auth/signup", "", credentials{email, password}, &session); err != nil {
		return nil, fmt.Errorf("failed to sign up: %w", err)
	}

	return &session, nil
}

func (that *HTTPBackend) SignIn(ctx context.Context, email, password string) (*entity.Session, error) {
	var session entity.Session
	if err := that.do(ctx, http.MethodPost, "/auth/signin", "", credentials{email, password}, &session); err != nil {
		return nil, fmt.Errorf("failed to sign in: %w", err)
	}

	return &session, nil
}

func (that *HTTPBackend) SignOut(ctx context.Context, token string) error {
	if err := that.do(ctx, http.MethodPost, "/auth/signout", token, nil, nil); err != nil {
		return fmt.Errorf("failed to sign out: %w", err)
	}

	return nil
}

func (that *HTTPBackend) Lobby(ctx context.Context, token string, limit int) (*entity.Lobby, error) {
	path := "/games/lobby"
	if limit > 0 {
		path += "?limit=" + strconv.Itoa(limit)
	}

	var lobby entity.Lobby
	if err := that.do(ctx, http.MethodGet, path, token, nil, &lobby); err != nil {
		return nil, fmt.Errorf("failed to load lobby: %w", err)
	}

	return &lobby, nil
}

func (that *HTTPBackend) CreateGame(ctx context.Context, token string) (*entity.Game, error) {
	return that.game(ctx, http.MethodPost, "/games", token, nil)
}

func (that *HTTPBackend) GetGame(ctx context.Context, token, id string) (*entity.Game, error) {
	return that.game(ctx, http.MethodGet, "/games/"+url.PathEscape(id), token, nil)
}

func (that *HTTPBackend) JoinGame(ctx context.Context, token, id string) (*entity.Game, error) {
	return that.game(ctx, http.MethodPost, "/games/"+url.PathEscape(id)+"/join", token, nil)
}

func (that *HTTPBackend) Move(ctx context.Context, token, id string, move counter.Move) (*entity.Game, error) {
	body := map[string]string{"move": move.String()}

	return that.game(ctx, http.MethodPost, "/games/"+url.PathEscape(id)+"/moves", token, body)
}

func (that *HTTPBackend) game(ctx context.Context, method, path, token string, body any) (*entity.Game, error) {
	var game entity.Game
	if err := that.do(ctx, method, path, token, body, &game); err != nil {
		return nil, fmt.Errorf("%s %s: %w", method, path, err)
	}

	return &game, nil
}

// do - sends one JSON request. Error bodies are mapped back onto apperror sentinels.
func (that *HTTPBackend) do(ctx context.Context, method, path, token string, body, target any) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	request, err := http.NewRequestWithContext(ctx, method, that.apiURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}

	request.Header.Set("Accept", "application/json")
	if body != nil {
		request.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		request.Header.Set("Authorization", "Bearer "+token)
	}

	response, err := that.client.Do(request)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer response.Body.Close()

	if response.StatusCode >= http.StatusBadRequest {
		return decodeAPIError(response)
	}

	if target == nil || response.StatusCode == http.StatusNoContent {
		return nil
	}

	if err = json.NewDecoder(response.Body).Decode(target); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	return nil
}

func decodeAPIError(response *http.Response) error {
	var body apiError
	if err := json.NewDecoder(response.Body).Decode(&body); err != nil {
		return fmt.Errorf("unexpected status %d", response.StatusCode)
	}

	if sentinel := apperror.FromCode(body.Code); sentinel != nil {
		return sentinel
	}

	return errors.New(body.Error)
}

// Subscribe - opens a socket and subscribes it to one game.
func (that *HTTPBackend) Subscribe(ctx context.Context, token, gameID string) (Feed, error) {
	endpoint, err := url.Parse(that.socketURL)
	if err != nil {
		return nil, fmt.Errorf("invalid socket url: %w", err)
	}

	query := endpoint.Query()
	query.Set("access_token", token)
	endpoint.RawQuery = query.Encode()

	conn, response, err := that.dialer.DialContext(ctx, endpoint.String(), nil)
	if response != nil && response.StatusCode == http.StatusUnauthorized {
		return nil, apperror.ErrUnauthorized
	}
	if err != nil {
		return nil, fmt.Errorf("failed to dial socket: %w", err)
	}

	message, err := socket.NewMessage(socket.ActionSubscribe, socket.Payload{GameID: gameID})
	if err != nil {
		_ = conn.Close()
		return nil, err
	}

	if err = conn.WriteJSON(message); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("failed to send subscribe: %w", err)
	}

	feed := &socketFeed{conn: conn, events: make(chan FeedEvent, 16)}
	go feed.read()

	return feed, nil
}

type socketFeed struct {
	conn   *websocket.Conn
	events chan FeedEvent
}

func (that *socketFeed) Events() <-chan FeedEvent {
	return that.events
}

func (that *socketFeed) Close() error {
	return that.conn.Close()
}

func (that *socketFeed) read() {
	defer close(that.events)

	for {
		var message socket.Message
		if err := that.conn.ReadJSON(&message); err != nil {
			return
		}

		payload, err := message.Decode()
		if err != nil {
			continue
		}

		event := FeedEvent{Action: message.Action, Game: payload.Game}
		if message.Action == socket.ActionError {
			event.Err = errors.New(payload.Error)
			if sentinel := apperror.FromCode(payload.Code); sentinel != nil {
				event.Err = sentinel
			}
		}

		that.events <- event
	}
}
