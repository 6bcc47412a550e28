// Package errors writes the service's error wire shape: a machine-readable
// reason string under a stable envelope.
package errors

import (
	"encoding/json"
	"net/http"
)

// Reason strings carried in error responses.
const (
	ReasonInvalidCategories = "invalid-categories"
	ReasonInvalidCategory   = "invalid-category"
	ReasonInvalidIndex      = "invalid-index"
	ReasonNoSession         = "no-session"
	ReasonNotFound          = "notfound"
	ReasonCorpusUnavailable = "corpus-unavailable"
	ReasonInternal          = "internal"
)

// Response is the error envelope clients receive.
type Response struct {
	Error bool   `json:"error"`
	Msg   string `json:"msg"`
}

// Respond writes an error response with the given status and reason.
func Respond(w http.ResponseWriter, status int, reason string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(Response{Error: true, Msg: reason})
}

// Status maps a reason to its HTTP status: user input and session lifecycle
// problems are the client's fault, storage failures are retryable.
func Status(reason string) int {
	switch reason {
	case ReasonInvalidCategories, ReasonInvalidCategory, ReasonInvalidIndex, ReasonNoSession:
		return http.StatusBadRequest
	case ReasonNotFound:
		return http.StatusNotFound
	case ReasonCorpusUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
