package rest

import (
	"encoding/json"
	"net/http"

	"github.com/rocketscienceinc/counter-backend/internal/apperror"
)

type errorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

var statusByCode = map[string]int{
	apperror.CodeInvalidRequest:     http.StatusBadRequest,
	apperror.CodeUnauthorized:       http.StatusUnauthorized,
	apperror.CodeInvalidCredentials: http.StatusUnauthorized,
	apperror.CodeForbidden:          http.StatusForbidden,
	apperror.CodeNotFound:           http.StatusNotFound,
	apperror.CodeAlreadyJoined:      http.StatusConflict,
	apperror.CodeNotYourTurn:        http.StatusConflict,
	apperror.CodeGameFull:           http.StatusConflict,
	apperror.CodeGameOver:           http.StatusConflict,
	apperror.CodeEmailTaken:         http.StatusConflict,
	apperror.CodeConflict:           http.StatusConflict,
	apperror.CodeWriteFailed:        http.StatusInternalServerError,
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	_ = json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, err error) {
	code := apperror.Code(err)

	message := err.Error()
	if code == apperror.CodeWriteFailed {
		// infrastructure details stay in the logs
		message = "internal error"
	}

	writeJSON(w, statusByCode[code], errorResponse{Error: message, Code: code})
}

func decodeJSON(r *http.Request, target any) error {
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()

	if err := decoder.Decode(target); err != nil {
		return apperror.ErrInvalidInput
	}

	return nil
}
