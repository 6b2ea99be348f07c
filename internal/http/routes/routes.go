// Package routes wires the catalog API handlers into a router.
//
// Route table:
//
//	GET  /                          → service banner + endpoint index
//	GET  /health                    → liveness probe
//	POST /api/auth/register         → create a user
//	POST /api/auth/login            → log in (creates unknown users)
//	GET  /api/courses               → list/filter/paginate courses
//	GET  /api/courses/{id}          → one course
//	POST /api/courses/{id}/enroll   → enroll in a course
//	GET  /api/videos                → list/filter/paginate videos
//	GET  /api/videos/{id}           → one video (counts a view)
package routes

import (
	"log/slog"
	"net/http"

	"github.com/aanand-mishra/edulearn/internal/catalog"
	"github.com/aanand-mishra/edulearn/internal/http/handlers/auth"
	"github.com/aanand-mishra/edulearn/internal/http/handlers/course"
	"github.com/aanand-mishra/edulearn/internal/http/handlers/index"
	"github.com/aanand-mishra/edulearn/internal/http/handlers/video"
	"github.com/aanand-mishra/edulearn/internal/http/middleware"
)

// New returns the API handler with its middleware stack applied.
func New(svc *catalog.Service, log *slog.Logger) http.Handler {
	router := http.NewServeMux()

	router.HandleFunc("GET /{$}", index.Banner())
	router.HandleFunc("GET /health", index.Health())

	router.HandleFunc("POST /api/auth/register", auth.Register(svc))
	router.HandleFunc("POST /api/auth/login", auth.Login(svc))

	router.HandleFunc("GET /api/courses", course.List(svc))
	router.HandleFunc("GET /api/courses/{id}", course.GetByID(svc))
	router.HandleFunc("POST /api/courses/{id}/enroll", course.Enroll(svc))

	router.HandleFunc("GET /api/videos", video.List(svc))
	router.HandleFunc("GET /api/videos/{id}", video.GetByID(svc))

	router.HandleFunc("/", index.NotFound())

	return middleware.Chain(router,
		middleware.Recover(log),
		middleware.RequestID,
		middleware.Logger(log),
		middleware.CORS(),
	)
}
