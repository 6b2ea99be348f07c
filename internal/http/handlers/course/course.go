// Package course contains the HTTP handlers for the course catalog.
//
// Handlers are factories: each takes its dependency once at startup and
// returns the http.HandlerFunc the router calls on every request.
//
//	router.HandleFunc("GET /api/courses", course.List(svc))
package course

import (
	"log/slog"
	"net/http"

	"github.com/aanand-mishra/edulearn/internal/catalog"
	"github.com/aanand-mishra/edulearn/internal/http/request"
	"github.com/aanand-mishra/edulearn/internal/types"
	"github.com/aanand-mishra/edulearn/internal/utils/response"
)

const notFound = "Course not found"

// Service is the part of the catalog these handlers need.
type Service interface {
	ListCourses(q catalog.ListQuery) (catalog.Page[types.Course], error)
	GetCourse(id string) (types.Course, error)
	Enroll(courseID string) (types.Enrollment, error)
}

// ─────────────────────────────────────────────────────────────────────────────
// List handles GET /api/courses?category=&page=&limit=
//
//	{ "success": true, "count": 1, "total": 3, "data": [ { "_id": "2", ... } ] }
//
// category matches case-insensitively; page defaults to 1, limit to 10.
// ─────────────────────────────────────────────────────────────────────────────
func List(svc Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := request.ListQuery(r)
		slog.Debug("listing courses",
			slog.String("category", q.Category),
			slog.Int("page", q.Page),
			slog.Int("limit", q.Limit))

		page, err := svc.ListCourses(q)
		if err != nil {
			response.Error(w, r, err, notFound)
			return
		}
		response.List(w, page)
	}
}

// GetByID handles GET /api/courses/{id}. Unknown ids answer 404.
func GetByID(svc Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := r.PathValue("id")

		c, err := svc.GetCourse(id)
		if err != nil {
			response.Error(w, r, err, notFound)
			return
		}
		response.OK(w, "", c)
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Enroll handles POST /api/courses/{id}/enroll
//
//	{ "success": true, "message": "Successfully enrolled in course!",
//	  "data": { "_id": "...", "courseId": "1", "studentId": "mock_student_id",
//	            "enrolledAt": "...", "progress": 0 } }
//
// The enrollment is not tied to the caller: every enrollment belongs to
// the placeholder student.
// ─────────────────────────────────────────────────────────────────────────────
func Enroll(svc Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := r.PathValue("id")

		e, err := svc.Enroll(id)
		if err != nil {
			response.Error(w, r, err, notFound)
			return
		}
		response.OK(w, "Successfully enrolled in course!", e)
	}
}
