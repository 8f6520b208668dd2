package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/rocketscienceinc/counter-backend/internal/entity"
)

type authService interface {
	SignUp(ctx context.Context, email, password string) (*entity.Session, error)
	SignIn(ctx context.Context, email, password string) (*entity.Session, error)
	SignOut(ctx context.Context, identity *entity.Identity) error
	Authenticate(ctx context.Context, token string) (*entity.Identity, error)
}

type credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type AuthHandler interface {
	SignUp(w http.ResponseWriter, r *http.Request)
	SignIn(w http.ResponseWriter, r *http.Request)
	SignOut(w http.ResponseWriter, r *http.Request)
}

type authHandler struct {
	logger *slog.Logger
	auth   authService
}

func NewAuthHandler(logger *slog.Logger, auth authService) AuthHandler {
	return &authHandler{
		logger: logger.With("component", "auth-handler"),
		auth:   auth,
	}
}

func (that *authHandler) SignUp(w http.ResponseWriter, r *http.Request) {
	log := that.logger.With("method", "SignUp")

	var body credentials
	if err := decodeJSON(r, &body); err != nil {
		writeError(w, err)
		return
	}

	session, err := that.auth.SignUp(r.Context(), body.Email, body.Password)
	if err != nil {
		log.Warn("sign up failed", "error", err)
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, session)
}

func (that *authHandler) SignIn(w http.ResponseWriter, r *http.Request) {
	log := that.logger.With("method", "SignIn")

	var body credentials
	if err := decodeJSON(r, &body); err != nil {
		writeError(w, err)
		return
	}

	session, err := that.auth.SignIn(r.Context(), body.Email, body.Password)
	if err != nil {
		log.Warn("sign in failed", "error", err)
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, session)
}

func (that *authHandler) SignOut(w http.ResponseWriter, r *http.Request) {
	log := that.logger.With("method", "SignOut")

	if err := that.auth.SignOut(r.Context(), identityFrom(r.Context())); err != nil {
		log.Error("sign out failed", "error", err)
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
