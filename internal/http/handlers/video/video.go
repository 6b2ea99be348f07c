// Package video contains the HTTP handlers for instructional videos.
package video

import (
	"log/slog"
	"net/http"

	"github.com/aanand-mishra/edulearn/internal/catalog"
	"github.com/aanand-mishra/edulearn/internal/http/request"
	"github.com/aanand-mishra/edulearn/internal/types"
	"github.com/aanand-mishra/edulearn/internal/utils/response"
)

const notFound = "Video not found"

type Service interface {
	ListVideos(q catalog.ListQuery) (catalog.Page[types.Video], error)
	GetVideo(id string) (types.Video, error)
}

// List handles GET /api/videos?category=&page=&limit= (limit defaults
// to 12).
func List(svc Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := request.ListQuery(r)
		slog.Debug("listing videos", slog.String("category", q.Category))

		page, err := svc.ListVideos(q)
		if err != nil {
			response.Error(w, r, err, notFound)
			return
		}
		response.List(w, page)
	}
}

// GetByID handles GET /api/videos/{id}. Every successful call counts as
// a view, so the returned "views" already includes this request.
func GetByID(svc Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := r.PathValue("id")

		v, err := svc.GetVideo(id)
		if err != nil {
			response.Error(w, r, err, notFound)
			return
		}
		response.OK(w, "", v)
	}
}
