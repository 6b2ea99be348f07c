// Package response provides helpers for writing consistent JSON HTTP responses.
//
// Every API response, success or failure, is an Envelope:
//
//	{ "success": true, "count": 1, "total": 3, "data": [ ... ] }
//	{ "success": false, "message": "Course not found" }
//
// Centralising the shape here means handlers never hand-roll JSON and
// clients can always branch on "success".
package response

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/aanand-mishra/edulearn/internal/catalog"
	"github.com/aanand-mishra/edulearn/internal/storage"
	"github.com/aanand-mishra/edulearn/internal/types"
)

// ─────────────────────────────────────────────────────────────────────────────
// Envelope is the uniform response wrapper.
//
// Count and Total are pointers so list endpoints can emit an explicit 0
// while every other endpoint omits them. User and Token are only set by
// the auth endpoints, Endpoints only by the service banner.
// ─────────────────────────────────────────────────────────────────────────────
type Envelope struct {
	Success   bool              `json:"success"`
	Message   string            `json:"message,omitempty"`
	Count     *int              `json:"count,omitempty"`
	Total     *int              `json:"total,omitempty"`
	Data      any               `json:"data,omitempty"`
	User      *types.UserView   `json:"user,omitempty"`
	Token     string            `json:"token,omitempty"`
	Endpoints map[string]string `json:"endpoints,omitempty"`
}

// WriteJSON writes data as JSON with the given HTTP status code.
//
// IMPORTANT ORDER: Header() → WriteHeader() → body writes.
func WriteJSON(w http.ResponseWriter, status int, data any) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	return json.NewEncoder(w).Encode(data)
}

// OK writes a 200 envelope carrying data.
func OK(w http.ResponseWriter, message string, data any) {
	WriteJSON(w, http.StatusOK, Envelope{Success: true, Message: message, Data: data})
}

// List writes a 200 envelope for a page of items. items must be a
// non-nil slice so it encodes as [] when empty.
func List[T any](w http.ResponseWriter, page catalog.Page[T]) {
	items := page.Items
	if items == nil {
		items = []T{}
	}
	count, total := page.Count, page.Total
	WriteJSON(w, http.StatusOK, Envelope{Success: true, Count: &count, Total: &total, Data: items})
}

// Session writes the register/login payload.
func Session(w http.ResponseWriter, s catalog.Session) {
	user := s.User
	WriteJSON(w, http.StatusOK, Envelope{Success: true, User: &user, Token: s.Token})
}

// Fail writes a failure envelope with the given status and message.
func Fail(w http.ResponseWriter, status int, message string) {
	WriteJSON(w, status, Envelope{Success: false, Message: message})
}

// ─────────────────────────────────────────────────────────────────────────────
// Error maps a service error onto a status code and failure envelope.
//
//	*catalog.ValidationError   → 400, its message
//	storage.ErrConflict        → 400, the error text ("User already exists")
//	storage.ErrNotFound        → 404, notFound
//	anything else              → 500, generic message (details are logged)
//
// ─────────────────────────────────────────────────────────────────────────────
func Error(w http.ResponseWriter, r *http.Request, err error, notFound string) {
	var verr *catalog.ValidationError
	switch {
	case errors.As(err, &verr):
		Fail(w, http.StatusBadRequest, verr.Message)
	case errors.Is(err, storage.ErrConflict):
		Fail(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, storage.ErrNotFound):
		Fail(w, http.StatusNotFound, notFound)
	default:
		slog.ErrorContext(r.Context(), "request failed",
			slog.String("path", r.URL.Path),
			slog.String("error", err.Error()))
		Fail(w, http.StatusInternalServerError, "Internal server error")
	}
}
