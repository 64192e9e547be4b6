// Package handlers holds the JSON helpers shared by the per-route handler
// packages. Errors go out in the API's {"erro": ...} envelope.
package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
)

const msgInternalError = "Erro interno do servidor"

// ErrorResponse is the error envelope of the API.
type ErrorResponse struct {
	Error string `json:"erro"`
}

// DecodeJSON decodes the request body into v.
func DecodeJSON(r *http.Request, v interface{}) error {
	if r.Body == nil {
		return fmt.Errorf("handlers: empty request body")
	}
	return json.NewDecoder(r.Body).Decode(v)
}

// RespondJSON writes v with the given status. A nil v writes only headers.
func RespondJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v != nil {
		_ = json.NewEncoder(w).Encode(v)
	}
}

// RespondError writes the {"erro": message} envelope with the given status.
func RespondError(w http.ResponseWriter, status int, message string) {
	RespondJSON(w, status, ErrorResponse{Error: message})
}

// RespondBadRequest writes a 400 with the error envelope.
func RespondBadRequest(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusBadRequest, message)
}

// RespondNotFound writes a 404 with the error envelope.
func RespondNotFound(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusNotFound, message)
}

// RespondInternalError writes a 500 with the error envelope.
func RespondInternalError(w http.ResponseWriter) {
	RespondError(w, http.StatusInternalServerError, msgInternalError)
}
