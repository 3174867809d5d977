// BlogHub | 2026
// response.go

package core

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
)

const internalErrorMessage = "Internal Server Error"

type envelope struct {
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	//nolint:errcheck // best-effort response write
	_ = json.NewEncoder(w).Encode(body)
}

func OK(w http.ResponseWriter, message string, data any) {
	writeJSON(w, http.StatusOK, envelope{Message: message, Data: data})
}

func Created(w http.ResponseWriter, message string, data any) {
	writeJSON(w, http.StatusCreated, envelope{Message: message, Data: data})
}

func NoContent(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNoContent)
}

func BadRequest(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusBadRequest, envelope{Message: message})
}

func Unauthorized(w http.ResponseWriter, message string) {
	if message == "" {
		message = "Unauthorized"
	}
	writeJSON(w, http.StatusUnauthorized, envelope{Message: message})
}

func Forbidden(w http.ResponseWriter, message string) {
	if message == "" {
		message = "Forbidden"
	}
	writeJSON(w, http.StatusForbidden, envelope{Message: message})
}

func NotFound(w http.ResponseWriter, message string) {
	if message == "" {
		message = "Not Found"
	}
	writeJSON(w, http.StatusNotFound, envelope{Message: message})
}

// InternalServerError logs the original error and responds with the
// fixed generic message. Raw database or library errors never reach
// the client.
func InternalServerError(w http.ResponseWriter, err error) {
	slog.Error("internal server error", "error", err)
	writeJSON(
		w,
		http.StatusInternalServerError,
		envelope{Message: internalErrorMessage},
	)
}

// JSONError surfaces a status-carrying error: the message passes
// through for every status except 500.
func JSONError(w http.ResponseWriter, err error) {
	status := StatusOf(err)

	if status == http.StatusInternalServerError {
		InternalServerError(w, err)
		return
	}

	message := err.Error()
	if appErr, ok := AsAppError(err); ok {
		message = appErr.Message
	}

	writeJSON(w, status, envelope{Message: message})
}

// JSONErrorStatus writes an explicit status with the envelope shape.
func JSONErrorStatus(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, envelope{Message: message})
}

// FormatValidationError condenses validator failures into the
// missing-fields style message the API has always returned.
func FormatValidationError(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return "invalid request body"
	}

	var missing []string
	var invalid []string

	for _, fe := range verrs {
		name := strings.ToLower(fe.Field())
		if fe.Tag() == "required" {
			missing = append(missing, name)
		} else {
			invalid = append(invalid, name)
		}
	}

	switch {
	case len(missing) > 0 && len(invalid) > 0:
		return "missing required fields: " + strings.Join(missing, ", ") +
			"; invalid fields: " + strings.Join(invalid, ", ")
	case len(missing) > 0:
		return "missing required fields: " + strings.Join(missing, ", ")
	case len(invalid) > 0:
		return "invalid fields: " + strings.Join(invalid, ", ")
	default:
		return "invalid request body"
	}
}
