package apperror

import "errors"

var (
	ErrUnauthorized       = errors.New("unauthorized")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailTaken         = errors.New("email is already registered")
	ErrInvalidInput       = errors.New("invalid input")

	ErrForbidden     = errors.New("write rejected by access policy")
	ErrConflict      = errors.New("record was modified concurrently")
	ErrGameNotFound  = errors.New("game not found")
	ErrUserNotFound  = errors.New("user not found")
	ErrAlreadyJoined = errors.New("already joined this game")
	ErrNotYourTurn   = errors.New("it's not your turn")
	ErrGameFull      = errors.New("game is full")
	ErrGameOver      = errors.New("game is already over")
	ErrInvalidMove   = errors.New("invalid move")

	ErrPlayerNotInGame = errors.New("player is not part of the game")
	ErrGameExists      = errors.New("game already exists")
)
