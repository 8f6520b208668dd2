package rest

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/counter-backend/internal/apperror"
	"github.com/rocketscienceinc/counter-backend/internal/counter"
	"github.com/rocketscienceinc/counter-backend/internal/entity"
	"github.com/rocketscienceinc/counter-backend/internal/metrics"
	mockedRest "github.com/rocketscienceinc/counter-backend/mocks/rest"
)

const testToken = "token-alice"

var alice = &entity.Identity{UserID: "alice", Email: "alice@example.com", TokenID: "jti-1"}

type testServer struct {
	handler http.Handler
	auth    *mockedRest.MockauthService
	games   *mockedRest.MockgameManager
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	auth := mockedRest.NewMockauthService(t)
	games := mockedRest.NewMockgameManager(t)

	options := Options{AllowedOrigins: []string{"*"}, JoinableLimit: 20}

	return &testServer{
		handler: NewRouter(logger, options, auth, games, metrics.NewNop()),
		auth:    auth,
		games:   games,
	}
}

func (that *testServer) signedIn() {
	that.auth.EXPECT().Authenticate(mock.Anything, testToken).Return(alice, nil).Once()
}

func (that *testServer) do(method, path, body string, authorized bool) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}

	request := httptest.NewRequest(method, path, reader)
	if authorized {
		request.Header.Set("Authorization", "Bearer "+testToken)
	}

	recorder := httptest.NewRecorder()
	that.handler.ServeHTTP(recorder, request)

	return recorder
}

func decodeError(t *testing.T, recorder *httptest.ResponseRecorder) errorResponse {
	t.Helper()

	var body errorResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))

	return body
}

func TestNew_RequestTimeoutFitsWriteTimeout(t *testing.T) {
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))

	server := New(logger, Options{Port: "0"}, mockedRest.NewMockauthService(t), mockedRest.NewMockgameManager(t), metrics.NewNop())

	// the connection must outlive the handler deadline, or the 504 is never written
	assert.Equal(t, writeTimeout, server.httpServer.WriteTimeout)
	assert.Less(t, requestTimeout, server.httpServer.WriteTimeout)
}

func TestPing(t *testing.T) {
	server := newTestServer(t)

	recorder := server.do(http.MethodGet, "/ping", "", false)

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "pong", recorder.Body.String())
}

func TestAuthRoutes(t *testing.T) {
	session := &entity.Session{AccessToken: testToken, TokenType: "bearer", User: entity.SessionUser{ID: "alice"}}

	t.Run("Sign up returns 201 with the session", func(t *testing.T) {
		server := newTestServer(t)
		server.auth.EXPECT().SignUp(mock.Anything, "alice@example.com", "secret1").Return(session, nil).Once()

		recorder := server.do(http.MethodPost, "/auth/signup", `{"email":"alice@example.com","password":"secret1"}`, false)

		require.Equal(t, http.StatusCreated, recorder.Code)

		var body entity.Session
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
		assert.Equal(t, testToken, body.AccessToken)
	})

	t.Run("Sign in with bad credentials is 401", func(t *testing.T) {
		server := newTestServer(t)
		server.auth.EXPECT().SignIn(mock.Anything, "alice@example.com", "nope").Return(nil, apperror.ErrInvalidCredentials).Once()

		recorder := server.do(http.MethodPost, "/auth/signin", `{"email":"alice@example.com","password":"nope"}`, false)

		require.Equal(t, http.StatusUnauthorized, recorder.Code)
		assert.Equal(t, apperror.CodeInvalidCredentials, decodeError(t, recorder).Code)
	})

	t.Run("Malformed body is 400", func(t *testing.T) {
		server := newTestServer(t)

		recorder := server.do(http.MethodPost, "/auth/signup", `{"email":`, false)

		require.Equal(t, http.StatusBadRequest, recorder.Code)
		assert.Equal(t, apperror.CodeInvalidRequest, decodeError(t, recorder).Code)
	})

	t.Run("Sign out revokes the caller's session", func(t *testing.T) {
		server := newTestServer(t)
		server.signedIn()
		server.auth.EXPECT().SignOut(mock.Anything, alice).Return(nil).Once()

		recorder := server.do(http.MethodPost, "/auth/signout", "", true)

		require.Equal(t, http.StatusNoContent, recorder.Code)
	})
}

func TestGameRoutes_RequireAuthentication(t *testing.T) {
	t.Run("Missing token", func(t *testing.T) {
		server := newTestServer(t)

		recorder := server.do(http.MethodGet, "/games/active", "", false)

		require.Equal(t, http.StatusUnauthorized, recorder.Code)
		assert.Equal(t, apperror.CodeUnauthorized, decodeError(t, recorder).Code)
	})

	t.Run("Rejected token", func(t *testing.T) {
		server := newTestServer(t)
		server.auth.EXPECT().Authenticate(mock.Anything, testToken).Return(nil, apperror.ErrUnauthorized).Once()

		recorder := server.do(http.MethodPost, "/games", "", true)

		require.Equal(t, http.StatusUnauthorized, recorder.Code)
	})
}

func TestGameRoutes(t *testing.T) {
	game := &entity.Game{ID: "ABC234", Players: []string{"alice"}, CurrentPlayer: "alice"}

	t.Run("No active game is 204", func(t *testing.T) {
		server := newTestServer(t)
		server.signedIn()
		server.games.EXPECT().ActiveGame(mock.Anything, "alice").Return(nil, apperror.ErrGameNotFound).Once()

		recorder := server.do(http.MethodGet, "/games/active", "", true)

		assert.Equal(t, http.StatusNoContent, recorder.Code)
	})

	t.Run("Lobby returns the discovery result", func(t *testing.T) {
		server := newTestServer(t)
		server.signedIn()
		lobby := &entity.Lobby{Joinable: []*entity.Game{game}}
		server.games.EXPECT().Discover(mock.Anything, "alice", 20).Return(lobby, nil).Once()

		recorder := server.do(http.MethodGet, "/games/lobby", "", true)

		require.Equal(t, http.StatusOK, recorder.Code)

		var body entity.Lobby
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
		assert.Nil(t, body.Active)
		require.Len(t, body.Joinable, 1)
		assert.Equal(t, "ABC234", body.Joinable[0].ID)
	})

	t.Run("Lobby rejects a bad limit", func(t *testing.T) {
		server := newTestServer(t)
		server.signedIn()

		recorder := server.do(http.MethodGet, "/games/lobby?limit=abc", "", true)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})

	t.Run("Joinable passes the limit", func(t *testing.T) {
		server := newTestServer(t)
		server.signedIn()
		server.games.EXPECT().JoinableGames(mock.Anything, "alice", 5).Return([]*entity.Game{game}, nil).Once()

		recorder := server.do(http.MethodGet, "/games/joinable?limit=5", "", true)

		require.Equal(t, http.StatusOK, recorder.Code)

		var body []*entity.Game
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
		require.Len(t, body, 1)
		assert.Equal(t, "ABC234", body[0].ID)
	})

	t.Run("Joinable rejects a bad limit", func(t *testing.T) {
		server := newTestServer(t)
		server.signedIn()

		recorder := server.do(http.MethodGet, "/games/joinable?limit=-1", "", true)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})

	t.Run("Create is 201", func(t *testing.T) {
		server := newTestServer(t)
		server.signedIn()
		server.games.EXPECT().Create(mock.Anything, "alice").Return(game, nil).Once()

		recorder := server.do(http.MethodPost, "/games", "", true)

		assert.Equal(t, http.StatusCreated, recorder.Code)
	})

	t.Run("Unknown game is 404", func(t *testing.T) {
		server := newTestServer(t)
		server.signedIn()
		server.games.EXPECT().Get(mock.Anything, "alice", "ZZZZZZ").Return(nil, apperror.ErrGameNotFound).Once()

		recorder := server.do(http.MethodGet, "/games/ZZZZZZ", "", true)

		require.Equal(t, http.StatusNotFound, recorder.Code)
		assert.Equal(t, apperror.CodeNotFound, decodeError(t, recorder).Code)
	})

	t.Run("Full game join is 409 game_full", func(t *testing.T) {
		server := newTestServer(t)
		server.signedIn()
		server.games.EXPECT().Join(mock.Anything, "alice", "ABC234").Return(nil, apperror.ErrGameFull).Once()

		recorder := server.do(http.MethodPost, "/games/ABC234/join", "", true)

		require.Equal(t, http.StatusConflict, recorder.Code)
		assert.Equal(t, apperror.CodeGameFull, decodeError(t, recorder).Code)
	})

	t.Run("Policy rejection is 403", func(t *testing.T) {
		server := newTestServer(t)
		server.signedIn()
		server.games.EXPECT().Join(mock.Anything, "alice", "ABC234").Return(nil, apperror.ErrForbidden).Once()

		recorder := server.do(http.MethodPost, "/games/ABC234/join", "", true)

		assert.Equal(t, http.StatusForbidden, recorder.Code)
	})

	t.Run("Move is parsed and applied", func(t *testing.T) {
		server := newTestServer(t)
		server.signedIn()
		moved := &entity.Game{ID: "ABC234", Players: []string{"alice"}, CurrentPlayer: "alice", CurrentNumber: -1}
		server.games.EXPECT().Move(mock.Anything, "alice", "ABC234", counter.Decrement).Return(moved, nil).Once()

		recorder := server.do(http.MethodPost, "/games/ABC234/moves", `{"move":"decrement"}`, true)

		require.Equal(t, http.StatusOK, recorder.Code)

		var body entity.Game
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
		assert.Equal(t, -1, body.CurrentNumber)
	})

	t.Run("Unknown move is 400 without calling the manager", func(t *testing.T) {
		server := newTestServer(t)
		server.signedIn()

		recorder := server.do(http.MethodPost, "/games/ABC234/moves", `{"move":"double"}`, true)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})

	t.Run("Out of turn is 409 not_your_turn", func(t *testing.T) {
		server := newTestServer(t)
		server.signedIn()
		server.games.EXPECT().Move(mock.Anything, "alice", "ABC234", counter.Increment).Return(nil, apperror.ErrNotYourTurn).Once()

		recorder := server.do(http.MethodPost, "/games/ABC234/moves", `{"move":"increment"}`, true)

		require.Equal(t, http.StatusConflict, recorder.Code)
		assert.Equal(t, apperror.CodeNotYourTurn, decodeError(t, recorder).Code)
	})

	t.Run("Infrastructure failure hides details", func(t *testing.T) {
		server := newTestServer(t)
		server.signedIn()
		server.games.EXPECT().Create(mock.Anything, "alice").Return(nil, io.ErrUnexpectedEOF).Once()

		recorder := server.do(http.MethodPost, "/games", "", true)

		require.Equal(t, http.StatusInternalServerError, recorder.Code)
		body := decodeError(t, recorder)
		assert.Equal(t, apperror.CodeWriteFailed, body.Code)
		assert.NotContains(t, body.Error, "EOF")
	})
}

func TestBearerToken(t *testing.T) {
	request := httptest.NewRequest(http.MethodGet, "/ws?access_token=from-query", nil)
	assert.Equal(t, "from-query", BearerToken(request))

	request.Header.Set("Authorization", "Bearer from-header")
	assert.Equal(t, "from-header", BearerToken(request))
}
