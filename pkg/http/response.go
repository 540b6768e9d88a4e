package http

import (
	"encoding/json"
	"net/http"

	apperrors "travelease/pkg/errors"
)

// ErrorResponse is the failure shape for read endpoints.
type ErrorResponse struct {
	Message string `json:"message"`
}

// MutationResponse is the envelope for create/update/delete endpoints.
type MutationResponse struct {
	Success    bool   `json:"success"`
	Message    string `json:"message"`
	InsertedID string `json:"insertedId,omitempty"`
}

func WriteJSON(w http.ResponseWriter, statusCode int, data any) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		// No recovery possible after WriteHeader; caller logs.
		return err
	}
	return nil
}

// WriteError surfaces a read-path failure. The status code comes from the
// AppError; its message is the only detail exposed.
func WriteError(w http.ResponseWriter, err error) error {
	appErr := apperrors.AsAppError(err)
	return WriteJSON(w, appErr.StatusCode(), ErrorResponse{Message: appErr.Message})
}

// WriteMutationError surfaces a mutation-path failure in the mutation envelope.
func WriteMutationError(w http.ResponseWriter, err error) error {
	appErr := apperrors.AsAppError(err)
	return WriteJSON(w, appErr.StatusCode(), MutationResponse{
		Success: false,
		Message: appErr.Message,
	})
}

// WriteSuccess writes the payload as-is with 200. A nil payload encodes as
// JSON null, which callers treat as "not found".
func WriteSuccess(w http.ResponseWriter, data any) error {
	return WriteJSON(w, http.StatusOK, data)
}

func WriteMutation(w http.ResponseWriter, resp MutationResponse) error {
	return WriteJSON(w, http.StatusOK, resp)
}

func WriteText(w http.ResponseWriter, statusCode int, body string) error {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(statusCode)
	_, err := w.Write([]byte(body))
	return err
}
