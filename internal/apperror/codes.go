package apperror

import "errors"

const (
	CodeInvalidRequest     = "invalid_request"
	CodeUnauthorized       = "unauthorized"
	CodeInvalidCredentials = "invalid_credentials"
	CodeForbidden          = "forbidden"
	CodeNotFound           = "not_found"
	CodeAlreadyJoined      = "already_joined"
	CodeNotYourTurn        = "not_your_turn"
	CodeGameFull           = "game_full"
	CodeGameOver           = "game_over"
	CodeEmailTaken         = "email_taken"
	CodeConflict           = "conflict"
	CodeWriteFailed        = "write_failed"
)

var codes = []struct {
	err  error
	code string
}{
	{ErrInvalidInput, CodeInvalidRequest},
	{ErrInvalidMove, CodeInvalidRequest},
	{ErrUnauthorized, CodeUnauthorized},
	{ErrInvalidCredentials, CodeInvalidCredentials},
	{ErrForbidden, CodeForbidden},
	{ErrGameNotFound, CodeNotFound},
	{ErrUserNotFound, CodeNotFound},
	{ErrAlreadyJoined, CodeAlreadyJoined},
	{ErrNotYourTurn, CodeNotYourTurn},
	{ErrGameFull, CodeGameFull},
	{ErrGameOver, CodeGameOver},
	{ErrEmailTaken, CodeEmailTaken},
	{ErrConflict, CodeConflict},
	{ErrGameExists, CodeConflict},
}

// Code - maps err onto the wire error code. Unknown errors are write failures.
func Code(err error) string {
	for _, c := range codes {
		if errors.Is(err, c.err) {
			return c.code
		}
	}

	return CodeWriteFailed
}

// FromCode - the sentinel a wire code was produced from, or nil for unknown codes.
func FromCode(code string) error {
	for _, c := range codes {
		if c.code == code {
			return c.err
		}
	}

	return nil
}
