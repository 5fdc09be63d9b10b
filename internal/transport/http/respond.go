package http

import (
	"encoding/json"
	"net/http"
)

// ErrorResponse is the body of every non-validation error reply.
type ErrorResponse struct {
	// a human readable description of the failure
	Message string `json:"message"`
}

// writeJSON renders v with the given status. Encoding failures at this
// point cannot be reported to the client anymore, so they are dropped.
func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, &ErrorResponse{Message: message})
}
