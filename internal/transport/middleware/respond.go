package middleware

import (
	"encoding/json"
	"net/http"
)

// errorBody is the JSON envelope used for responses written from middleware,
// matching the shape the REST handlers produce.
type errorBody struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

func writeError(w http.ResponseWriter, code int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(errorBody{Status: "error", Message: message})
}
