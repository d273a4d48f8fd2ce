package httpapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/dmitrijs2005/portfolio/internal/common"
)

const maxJSONBody = 1 << 20

// Envelope is the body of every JSON API response.
type Envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
}

var errInvalidBody = &common.ValidationError{Message: "Invalid request body"}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeSuccess(w http.ResponseWriter, status int, message string, data any) {
	writeJSON(w, status, Envelope{Success: true, Message: message, Data: data})
}

func writeFail(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, Envelope{Success: false, Message: message})
}

// writeError maps service errors to status codes. Unexpected errors are
// logged and answered with a generic message; in development the error
// text is added.
func (h *handlers) writeError(w http.ResponseWriter, r *http.Request, err error) {
	var ve *common.ValidationError
	switch {
	case errors.As(err, &ve):
		writeFail(w, http.StatusBadRequest, ve.Message)
	case errors.Is(err, common.ErrInvalidCredentials):
		writeFail(w, http.StatusUnauthorized, "Invalid email or password")
	case errors.Is(err, common.ErrUnauthorized),
		errors.Is(err, common.ErrInvalidToken),
		errors.Is(err, common.ErrTokenExpired):
		writeFail(w, http.StatusUnauthorized, "Invalid or expired token")
	case errors.Is(err, common.ErrNotFound):
		writeFail(w, http.StatusNotFound, "Resource not found")
	case errors.Is(err, common.ErrStorageDisabled):
		writeFail(w, http.StatusServiceUnavailable, "Image storage is not configured")
	case errors.Is(err, common.ErrTooManyRequests):
		writeFail(w, http.StatusTooManyRequests, "Too many login attempts, please try again later")
	default:
		h.Logger.Error(r.Context(), "request failed", "method", r.Method, "path", r.URL.Path, "error", err)
		env := Envelope{Success: false, Message: "Internal server error"}
		if h.opts.Development {
			env.Error = err.Error()
		}
		writeJSON(w, http.StatusInternalServerError, env)
	}
}

// decodeJSON reads exactly one JSON value with no unknown fields.
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxJSONBody))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		var ute *json.UnmarshalTypeError
		if errors.As(err, &ute) && ute.Field != "" {
			return &common.ValidationError{Field: ute.Field, Message: fmt.Sprintf("Invalid value for %s", ute.Field)}
		}
		return errInvalidBody
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return errInvalidBody
	}
	return nil
}
