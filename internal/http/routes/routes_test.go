package routes

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/aanand-mishra/edulearn/internal/auth"
	"github.com/aanand-mishra/edulearn/internal/catalog"
	"github.com/aanand-mishra/edulearn/internal/storage/memory"
	"github.com/aanand-mishra/edulearn/internal/types"
)

// envelope mirrors response.Envelope with concrete data for decoding.
type envelope[T any] struct {
	Success   bool              `json:"success"`
	Message   string            `json:"message"`
	Count     *int              `json:"count"`
	Total     *int              `json:"total"`
	Data      T                 `json:"data"`
	User      *types.UserView   `json:"user"`
	Token     string            `json:"token"`
	Endpoints map[string]string `json:"endpoints"`
}

func newTestAPI(t *testing.T) http.Handler {
	t.Helper()
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc := catalog.New(memory.New(), auth.NewIssuer("test-secret", time.Hour), log)
	return New(svc, log)
}

func do[T any](t *testing.T, h http.Handler, method, target, body string) (int, envelope[T]) {
	t.Helper()
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, r)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Fatalf("%s %s: unexpected content type %q", method, target, ct)
	}
	var env envelope[T]
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("%s %s: decode body: %v (%s)", method, target, err, rec.Body.String())
	}
	return rec.Code, env
}

func TestBanner(t *testing.T) {
	h := newTestAPI(t)
	code, env := do[any](t, h, http.MethodGet, "/", "")
	if code != http.StatusOK || !env.Success || env.Message != "EduLearn API is running!" {
		t.Fatalf("unexpected banner: code=%d env=%+v", code, env)
	}
	if env.Endpoints["courses"] != "/api/courses" || env.Endpoints["login"] != "/api/auth/login" {
		t.Fatalf("unexpected endpoints: %v", env.Endpoints)
	}
}

func TestUnknownRoute(t *testing.T) {
	h := newTestAPI(t)
	code, env := do[any](t, h, http.MethodGet, "/api/nothing", "")
	if code != http.StatusNotFound || env.Success {
		t.Fatalf("unexpected response: code=%d env=%+v", code, env)
	}
}

func TestListCourses(t *testing.T) {
	h := newTestAPI(t)

	tests := []struct {
		name      string
		target    string
		wantIDs   []string
		wantTotal int
	}{
		{"all", "/api/courses", []string{"1", "2", "3"}, 3},
		{"category", "/api/courses?category=marketing", []string{"3"}, 1},
		{"unmatched category", "/api/courses?category=Cooking", []string{}, 0},
		{"second page", "/api/courses?limit=1&page=2", []string{"2"}, 3},
		{"past the end", "/api/courses?page=9", []string{}, 3},
		{"garbage params", "/api/courses?limit=abc&page=xyz", []string{"1", "2", "3"}, 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, env := do[[]types.Course](t, h, http.MethodGet, tt.target, "")
			if code != http.StatusOK || !env.Success {
				t.Fatalf("unexpected response: code=%d env=%+v", code, env)
			}
			if env.Total == nil || *env.Total != tt.wantTotal {
				t.Fatalf("unexpected total: got=%v want=%d", env.Total, tt.wantTotal)
			}
			if env.Count == nil || *env.Count != len(tt.wantIDs) {
				t.Fatalf("unexpected count: got=%v want=%d", env.Count, len(tt.wantIDs))
			}
			if env.Data == nil {
				t.Fatal("data must be an array, got null")
			}
			for i, id := range tt.wantIDs {
				if env.Data[i].ID != id {
					t.Fatalf("item %d: got id=%q want=%q", i, env.Data[i].ID, id)
				}
			}
		})
	}
}

func TestListVideosDefaultLimit(t *testing.T) {
	h := newTestAPI(t)
	code, env := do[[]types.Video](t, h, http.MethodGet, "/api/videos?category=DEVELOPMENT", "")
	if code != http.StatusOK || *env.Count != 3 || *env.Total != 3 {
		t.Fatalf("unexpected response: code=%d env=%+v", code, env)
	}
}

func TestGetNotFound(t *testing.T) {
	h := newTestAPI(t)
	for target, msg := range map[string]string{
		"/api/courses/404": "Course not found",
		"/api/videos/404":  "Video not found",
	} {
		code, env := do[any](t, h, http.MethodGet, target, "")
		if code != http.StatusNotFound || env.Success || env.Message != msg {
			t.Fatalf("%s: unexpected response: code=%d env=%+v", target, code, env)
		}
	}
	code, env := do[any](t, h, http.MethodPost, "/api/courses/404/enroll", "")
	if code != http.StatusNotFound || env.Success || env.Message != "Course not found" {
		t.Fatalf("enroll: unexpected response: code=%d env=%+v", code, env)
	}
}

func TestVideoViewsIncrement(t *testing.T) {
	h := newTestAPI(t)
	var last envelope[types.Video]
	for i := 0; i < 2; i++ {
		code, env := do[types.Video](t, h, http.MethodGet, "/api/videos/2", "")
		if code != http.StatusOK || !env.Success {
			t.Fatalf("unexpected response: code=%d env=%+v", code, env)
		}
		last = env
	}
	if last.Data.Views != 18000+2 {
		t.Fatalf("unexpected views: got=%d want=%d", last.Data.Views, 18002)
	}
	if last.Data.YoutubeID != "DLX62G4lc44" {
		t.Fatalf("unexpected youtube id: %q", last.Data.YoutubeID)
	}
}

func TestEnroll(t *testing.T) {
	h := newTestAPI(t)

	code, env := do[types.Enrollment](t, h, http.MethodPost, "/api/courses/1/enroll", "")
	if code != http.StatusOK || !env.Success || env.Message != "Successfully enrolled in course!" {
		t.Fatalf("unexpected response: code=%d env=%+v", code, env)
	}
	if env.Data.Progress != 0 || env.Data.CourseID != "1" || env.Data.StudentID != "mock_student_id" {
		t.Fatalf("unexpected enrollment: %+v", env.Data)
	}

	_, course := do[types.Course](t, h, http.MethodGet, "/api/courses/1", "")
	if course.Data.StudentsEnrolled != 1501 {
		t.Fatalf("unexpected studentsEnrolled: got=%d want=1501", course.Data.StudentsEnrolled)
	}
}

func TestRegisterTwice(t *testing.T) {
	h := newTestAPI(t)
	body := `{"name":"Ada","email":"ada@example.com","password":"pw"}`

	code, env := do[any](t, h, http.MethodPost, "/api/auth/register", body)
	if code != http.StatusOK || !env.Success || env.User == nil || env.Token == "" {
		t.Fatalf("unexpected response: code=%d env=%+v", code, env)
	}
	if env.User.Name != "Ada" || env.User.Role != "student" || env.User.ID == "" {
		t.Fatalf("unexpected user: %+v", env.User)
	}

	code, env = do[any](t, h, http.MethodPost, "/api/auth/register", body)
	if code != http.StatusBadRequest || env.Success || env.Message != "User already exists" {
		t.Fatalf("unexpected response: code=%d env=%+v", code, env)
	}
}

func TestRegisterValidation(t *testing.T) {
	h := newTestAPI(t)
	for _, body := range []string{"", `{}`, `{"name":"A","email":"a@b.c"}`, `{"name":"","email":"a@b.c","password":"x"}`} {
		code, env := do[any](t, h, http.MethodPost, "/api/auth/register", body)
		if code != http.StatusBadRequest || env.Success || env.Message != "Please provide name, email and password" {
			t.Fatalf("body %q: unexpected response: code=%d env=%+v", body, code, env)
		}
	}

	code, env := do[any](t, h, http.MethodPost, "/api/auth/register", `{"name":`)
	if code != http.StatusBadRequest || env.Success {
		t.Fatalf("malformed body: unexpected response: code=%d env=%+v", code, env)
	}
}

func TestLoginUnknownEmail(t *testing.T) {
	h := newTestAPI(t)

	code, env := do[any](t, h, http.MethodPost, "/api/auth/login", `{"email":"ghost@example.com","password":"x"}`)
	if code != http.StatusOK || !env.Success || env.Token == "" {
		t.Fatalf("unexpected response: code=%d env=%+v", code, env)
	}
	if env.User == nil || env.User.Name != "Demo User" || env.User.Email != "ghost@example.com" {
		t.Fatalf("unexpected user: %+v", env.User)
	}

	code, env = do[any](t, h, http.MethodPost, "/api/auth/login", `{"email":"ghost@example.com"}`)
	if code != http.StatusBadRequest || env.Message != "Please provide email and password" {
		t.Fatalf("unexpected response: code=%d env=%+v", code, env)
	}
}

func TestCORSAndRequestID(t *testing.T) {
	h := newTestAPI(t)

	req := httptest.NewRequest(http.MethodOptions, "/api/auth/login", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Fatalf("unexpected allow-origin header: got=%q want=%q", got, "*")
	}

	req = httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("X-Request-ID", "abc-123")
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	if got := rec.Header().Get("X-Request-ID"); got != "abc-123" {
		t.Fatalf("unexpected request id: got=%q want=%q", got, "abc-123")
	}
}
