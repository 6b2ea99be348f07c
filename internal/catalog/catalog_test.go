package catalog

import (
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/aanand-mishra/edulearn/internal/auth"
	"github.com/aanand-mishra/edulearn/internal/storage"
	"github.com/aanand-mishra/edulearn/internal/storage/memory"
	"github.com/aanand-mishra/edulearn/internal/types"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	return New(memory.New(), auth.NewIssuer("test-secret", time.Hour), log)
}

func TestListDefaults(t *testing.T) {
	s := newTestService(t)

	courses, err := s.ListCourses(ListQuery{})
	if err != nil {
		t.Fatalf("ListCourses: %v", err)
	}
	if courses.Count != 3 || courses.Total != 3 {
		t.Fatalf("unexpected page: count=%d total=%d", courses.Count, courses.Total)
	}

	videos, err := s.ListVideos(ListQuery{Page: -4, Limit: 0})
	if err != nil {
		t.Fatalf("ListVideos: %v", err)
	}
	if videos.Count != 3 || videos.Total != 3 {
		t.Fatalf("unexpected page: count=%d total=%d", videos.Count, videos.Total)
	}
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		q         ListQuery
		def       int
		wantPage  int
		wantLimit int
	}{
		{ListQuery{}, DefaultCourseLimit, 1, 10},
		{ListQuery{}, DefaultVideoLimit, 1, 12},
		{ListQuery{Page: 3, Limit: 2}, DefaultVideoLimit, 3, 2},
		{ListQuery{Page: -1, Limit: -5}, DefaultCourseLimit, 1, 10},
	}
	for _, tt := range tests {
		page, limit := normalize(tt.q, tt.def)
		if page != tt.wantPage || limit != tt.wantLimit {
			t.Fatalf("normalize(%+v, %d): got=%d/%d want=%d/%d", tt.q, tt.def, page, limit, tt.wantPage, tt.wantLimit)
		}
	}
}

func TestEnroll(t *testing.T) {
	s := newTestService(t)

	e, err := s.Enroll("2")
	if err != nil {
		t.Fatalf("Enroll: %v", err)
	}
	if e.Progress != 0 || e.StudentID != types.PlaceholderStudentID || e.CourseID != "2" {
		t.Fatalf("unexpected enrollment: %+v", e)
	}
	c, _ := s.GetCourse("2")
	if c.StudentsEnrolled != 1201 {
		t.Fatalf("unexpected counter: got=%d want=1201", c.StudentsEnrolled)
	}

	if _, err := s.Enroll("99"); !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("unexpected error: got=%v want=%v", err, storage.ErrNotFound)
	}
}

func TestGetVideoCountsViews(t *testing.T) {
	s := newTestService(t)
	for i := 0; i < 2; i++ {
		if _, err := s.GetVideo("3"); err != nil {
			t.Fatalf("GetVideo: %v", err)
		}
	}
	page, _ := s.ListVideos(ListQuery{Page: 3, Limit: 1})
	if page.Items[0].Views != 25002 {
		t.Fatalf("unexpected views: got=%d want=25002", page.Items[0].Views)
	}
}

func TestRegister(t *testing.T) {
	s := newTestService(t)
	req := types.RegisterRequest{Name: "Ada", Email: "ada@example.com", Password: "pw"}

	first, err := s.Register(req)
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if first.User.Name != "Ada" || first.User.Role != types.RoleStudent || first.Token == "" {
		t.Fatalf("unexpected session: %+v", first)
	}

	_, err = s.Register(req)
	if !errors.Is(err, ErrUserExists) || !errors.Is(err, storage.ErrConflict) {
		t.Fatalf("unexpected error: got=%v want=%v", err, ErrUserExists)
	}
	if err.Error() != "User already exists" {
		t.Fatalf("unexpected message: %q", err.Error())
	}
}

func TestRegisterValidation(t *testing.T) {
	s := newTestService(t)
	tests := []types.RegisterRequest{
		{Email: "a@b.c", Password: "pw"},
		{Name: "A", Password: "pw"},
		{Name: "A", Email: "a@b.c"},
		{},
	}
	for _, req := range tests {
		_, err := s.Register(req)
		var verr *ValidationError
		if !errors.As(err, &verr) {
			t.Fatalf("Register(%+v): got=%v want ValidationError", req, err)
		}
		if verr.Message != "Please provide name, email and password" {
			t.Fatalf("unexpected message: %q", verr.Message)
		}
	}
}

func TestLoginCreatesDemoUser(t *testing.T) {
	s := newTestService(t)

	sess, err := s.Login(types.LoginRequest{Email: "new@example.com", Password: "whatever"})
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if sess.User.Name != DemoUserName || sess.User.Email != "new@example.com" {
		t.Fatalf("unexpected user: %+v", sess.User)
	}

	again, err := s.Login(types.LoginRequest{Email: "new@example.com", Password: "other"})
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if again.User.ID != sess.User.ID {
		t.Fatalf("second login created another user: got=%s want=%s", again.User.ID, sess.User.ID)
	}
	if again.Token == sess.Token {
		t.Fatal("expected a fresh token per login")
	}
}

func TestLoginKeepsRegisteredName(t *testing.T) {
	s := newTestService(t)
	if _, err := s.Register(types.RegisterRequest{Name: "Ada", Email: "ada@example.com", Password: "pw"}); err != nil {
		t.Fatalf("Register: %v", err)
	}
	sess, err := s.Login(types.LoginRequest{Email: "ada@example.com", Password: "wrong"})
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if sess.User.Name != "Ada" {
		t.Fatalf("unexpected name: got=%q want=%q", sess.User.Name, "Ada")
	}
}

func TestLoginValidation(t *testing.T) {
	s := newTestService(t)
	_, err := s.Login(types.LoginRequest{Email: "a@b.c"})
	var verr *ValidationError
	if !errors.As(err, &verr) || verr.Message != "Please provide email and password" {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestIDGeneratorIsMonotonic(t *testing.T) {
	var g idGenerator
	now := time.UnixMilli(1_700_000_000_000)

	a := g.next(now)
	b := g.next(now)
	c := g.next(now.Add(-time.Second))
	if a != "1700000000000" || b != "1700000000001" || c != "1700000000002" {
		t.Fatalf("unexpected ids: %s %s %s", a, b, c)
	}
}
