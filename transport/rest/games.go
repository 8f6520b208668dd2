package rest

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi"

	"github.com/rocketscienceinc/counter-backend/internal/apperror"
	"github.com/rocketscienceinc/counter-backend/internal/counter"
	"github.com/rocketscienceinc/counter-backend/internal/entity"
)

type gameManager interface {
	Discover(ctx context.Context, actor string, limit int) (*entity.Lobby, error)
	ActiveGame(ctx context.Context, actor string) (*entity.Game, error)
	JoinableGames(ctx context.Context, actor string, limit int) ([]*entity.Game, error)
	Create(ctx context.Context, actor string) (*entity.Game, error)
	Get(ctx context.Context, actor, id string) (*entity.Game, error)
	Join(ctx context.Context, actor, id string) (*entity.Game, error)
	Move(ctx context.Context, actor, id string, move counter.Move) (*entity.Game, error)
}

type moveRequest struct {
	Move string `json:"move"`
}

type GameHandler interface {
	Lobby(w http.ResponseWriter, r *http.Request)
	Active(w http.ResponseWriter, r *http.Request)
	Joinable(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Join(w http.ResponseWriter, r *http.Request)
	Move(w http.ResponseWriter, r *http.Request)
}

type gameHandler struct {
	logger       *slog.Logger
	games        gameManager
	defaultLimit int
}

func NewGameHandler(logger *slog.Logger, games gameManager, defaultLimit int) GameHandler {
	return &gameHandler{
		logger:       logger.With("component", "game-handler"),
		games:        games,
		defaultLimit: defaultLimit,
	}
}

func (that *gameHandler) Active(w http.ResponseWriter, r *http.Request) {
	identity := identityFrom(r.Context())

	game, err := that.games.ActiveGame(r.Context(), identity.UserID)
	if errors.Is(err, apperror.ErrGameNotFound) {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	if err != nil {
		that.fail(w, "Active", err)
		return
	}

	writeJSON(w, http.StatusOK, game)
}

// Lobby - the active game, or else the joinable list, in one call.
func (that *gameHandler) Lobby(w http.ResponseWriter, r *http.Request) {
	identity := identityFrom(r.Context())

	limit, err := that.limit(r)
	if err != nil {
		writeError(w, err)
		return
	}

	lobby, err := that.games.Discover(r.Context(), identity.UserID, limit)
	if err != nil {
		that.fail(w, "Lobby", err)
		return
	}

	writeJSON(w, http.StatusOK, lobby)
}

func (that *gameHandler) Joinable(w http.ResponseWriter, r *http.Request) {
	identity := identityFrom(r.Context())

	limit, err := that.limit(r)
	if err != nil {
		writeError(w, err)
		return
	}

	games, err := that.games.JoinableGames(r.Context(), identity.UserID, limit)
	if err != nil {
		that.fail(w, "Joinable", err)
		return
	}

	writeJSON(w, http.StatusOK, games)
}

func (that *gameHandler) Create(w http.ResponseWriter, r *http.Request) {
	identity := identityFrom(r.Context())

	game, err := that.games.Create(r.Context(), identity.UserID)
	if err != nil {
		that.fail(w, "Create", err)
		return
	}

	writeJSON(w, http.StatusCreated, game)
}

func (that *gameHandler) Get(w http.ResponseWriter, r *http.Request) {
	identity := identityFrom(r.Context())

	game, err := that.games.Get(r.Context(), identity.UserID, chi.URLParam(r, "id"))
	if err != nil {
		that.fail(w, "Get", err)
		return
	}

	writeJSON(w, http.StatusOK, game)
}

func (that *gameHandler) Join(w http.ResponseWriter, r *http.Request) {
	identity := identityFrom(r.Context())

	game, err := that.games.Join(r.Context(), identity.UserID, chi.URLParam(r, "id"))
	if err != nil {
		that.fail(w, "Join", err)
		return
	}

	writeJSON(w, http.StatusOK, game)
}

func (that *gameHandler) Move(w http.ResponseWriter, r *http.Request) {
	identity := identityFrom(r.Context())

	var body moveRequest
	if err := decodeJSON(r, &body); err != nil {
		writeError(w, err)
		return
	}

	move, err := counter.ParseMove(body.Move)
	if err != nil {
		writeError(w, err)
		return
	}

	game, err := that.games.Move(r.Context(), identity.UserID, chi.URLParam(r, "id"), move)
	if err != nil {
		that.fail(w, "Move", err)
		return
	}

	writeJSON(w, http.StatusOK, game)
}

func (that *gameHandler) limit(r *http.Request) (int, error) {
	raw := r.URL.Query().Get("limit")
	if raw == "" {
		return that.defaultLimit, nil
	}

	limit, err := strconv.Atoi(raw)
	if err != nil || limit <= 0 {
		return 0, apperror.ErrInvalidInput
	}

	return limit, nil
}

func (that *gameHandler) fail(w http.ResponseWriter, method string, err error) {
	log := that.logger.With("method", method)

	if apperror.Code(err) == apperror.CodeWriteFailed {
		log.Error("request failed", "error", err)
	} else {
		log.Debug("request rejected", "error", err, "code", apperror.Code(err))
	}

	writeError(w, err)
}
