// Package index serves the API banner and the health probe.
package index

import (
	"net/http"

	"github.com/aanand-mishra/edulearn/internal/utils/response"
)

// Endpoints is the index advertised by the banner.
var Endpoints = map[string]string{
	"courses":  "/api/courses",
	"videos":   "/api/videos",
	"register": "/api/auth/register",
	"login":    "/api/auth/login",
}

// Banner handles GET /.
func Banner() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		response.WriteJSON(w, http.StatusOK, response.Envelope{
			Success:   true,
			Message:   "EduLearn API is running!",
			Endpoints: Endpoints,
		})
	}
}

// Health handles GET /health.
func Health() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		response.WriteJSON(w, http.StatusOK, response.Envelope{Success: true, Message: "ok"})
	}
}

// NotFound answers any route the router does not know.
func NotFound() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		response.Fail(w, http.StatusNotFound, "Route not found")
	}
}
