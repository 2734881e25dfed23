package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
)

// Meta holds metadata for every API response.
type Meta struct {
	RequestID string `json:"requestId"`
	Timestamp string `json:"timestamp"`
}

// Error represents a structured API error.
type Error struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Envelope is the standard API response wrapper.
type Envelope struct {
	Data  any    `json:"data"`
	Error *Error `json:"error"`
	Meta  Meta   `json:"meta"`
}

func newMeta(requestID string) Meta {
	return Meta{
		RequestID: requestID,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
}

func writeJSON(w http.ResponseWriter, logger *logrus.Logger, status int, env Envelope) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(env); err != nil {
		logger.WithError(err).Error("Failed to encode response")
	}
}

func success(w http.ResponseWriter, r *http.Request, logger *logrus.Logger, data any) {
	writeJSON(w, logger, http.StatusOK, Envelope{
		Data: data,
		Meta: newMeta(RequestIDFrom(r.Context())),
	})
}

func failure(w http.ResponseWriter, r *http.Request, logger *logrus.Logger, status int, code, message string) {
	writeJSON(w, logger, status, Envelope{
		Error: &Error{Code: code, Message: message},
		Meta:  newMeta(RequestIDFrom(r.Context())),
	})
}
