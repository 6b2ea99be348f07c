// Package auth contains the demo register and login handlers.
//
// Neither handler authenticates anything: register refuses duplicate
// emails, login accepts any password and creates unknown users on the
// fly. Both answer with the user and a fresh token:
//
//	{ "success": true,
//	  "user": { "id": "1700000000000", "name": "Ada", "email": "...", "role": "student" },
//	  "token": "eyJ..." }
package auth

import (
	"log/slog"
	"net/http"

	"github.com/aanand-mishra/edulearn/internal/catalog"
	"github.com/aanand-mishra/edulearn/internal/http/request"
	"github.com/aanand-mishra/edulearn/internal/types"
	"github.com/aanand-mishra/edulearn/internal/utils/response"
)

type Service interface {
	Register(req types.RegisterRequest) (catalog.Session, error)
	Login(req types.LoginRequest) (catalog.Session, error)
}

// Register handles POST /api/auth/register.
//
// Error responses:
//
//	400: malformed JSON, a missing field, or an email already registered
func Register(svc Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req types.RegisterRequest
		if err := request.DecodeJSON(r, &req); err != nil {
			response.Fail(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		session, err := svc.Register(req)
		if err != nil {
			slog.Info("registration rejected", slog.String("error", err.Error()))
			response.Error(w, r, err, "")
			return
		}
		response.Session(w, session)
	}
}

// Login handles POST /api/auth/login.
func Login(svc Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req types.LoginRequest
		if err := request.DecodeJSON(r, &req); err != nil {
			response.Fail(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		session, err := svc.Login(req)
		if err != nil {
			response.Error(w, r, err, "")
			return
		}
		response.Session(w, session)
	}
}
