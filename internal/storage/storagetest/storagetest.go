// Package storagetest holds the behavioural contract every
// storage.Storage backend must satisfy. Backend packages call Run from
// their own tests.
package storagetest

import (
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/aanand-mishra/edulearn/internal/storage"
	"github.com/aanand-mishra/edulearn/internal/types"
)

// Run executes the contract against fresh stores built by newStore.
func Run(t *testing.T, newStore func(tb testing.TB) storage.Storage) {
	t.Run("ListCoursesAll", func(t *testing.T) {
		s := newStore(t)
		courses, total, err := s.ListCourses("", 1, 10)
		if err != nil {
			t.Fatalf("ListCourses: %v", err)
		}
		if total != 3 || len(courses) != 3 {
			t.Fatalf("unexpected size: got total=%d len=%d want 3/3", total, len(courses))
		}
		for i, want := range []string{"1", "2", "3"} {
			if courses[i].ID != want {
				t.Fatalf("course %d: got id=%q want=%q", i, courses[i].ID, want)
			}
		}
	})

	t.Run("ListCoursesCategory", func(t *testing.T) {
		s := newStore(t)
		tests := []struct {
			category string
			total    int
		}{
			{"marketing", 1},
			{"DATA SCIENCE", 1},
			{"Development", 1},
			{"Cooking", 0},
		}
		for _, tt := range tests {
			courses, total, err := s.ListCourses(tt.category, 1, 10)
			if err != nil {
				t.Fatalf("ListCourses(%q): %v", tt.category, err)
			}
			if total != tt.total || len(courses) != tt.total {
				t.Fatalf("ListCourses(%q): got total=%d len=%d want=%d", tt.category, total, len(courses), tt.total)
			}
			if courses == nil {
				t.Fatalf("ListCourses(%q): got nil slice", tt.category)
			}
		}
	})

	t.Run("Pagination", func(t *testing.T) {
		s := newStore(t)
		courses, total, err := s.ListCourses("", 2, 1)
		if err != nil {
			t.Fatalf("ListCourses: %v", err)
		}
		if total != 3 || len(courses) != 1 || courses[0].ID != "2" {
			t.Fatalf("unexpected page: total=%d courses=%+v", total, courses)
		}

		videos, total, err := s.ListVideos("development", 2, 2)
		if err != nil {
			t.Fatalf("ListVideos: %v", err)
		}
		if total != 3 || len(videos) != 1 || videos[0].ID != "3" {
			t.Fatalf("unexpected page: total=%d videos=%+v", total, videos)
		}

		empty, total, err := s.ListVideos("", 5, 12)
		if err != nil {
			t.Fatalf("ListVideos: %v", err)
		}
		if total != 3 || empty == nil || len(empty) != 0 {
			t.Fatalf("out-of-range page: total=%d videos=%+v", total, empty)
		}
	})

	t.Run("GetCourseByID", func(t *testing.T) {
		s := newStore(t)
		c, err := s.GetCourseByID("2")
		if err != nil {
			t.Fatalf("GetCourseByID: %v", err)
		}
		if c.Title != "Data Science & Machine Learning" || c.Instructor.Name != "Jane Smith" {
			t.Fatalf("unexpected course: %+v", c)
		}
		if _, err := s.GetCourseByID("42"); !errors.Is(err, storage.ErrNotFound) {
			t.Fatalf("unexpected error: got=%v want=%v", err, storage.ErrNotFound)
		}
	})

	t.Run("EnrollInCourse", func(t *testing.T) {
		s := newStore(t)
		before, _ := s.GetCourseByID("1")
		e := types.Enrollment{
			ID:         "1700000000000",
			CourseID:   "1",
			StudentID:  types.PlaceholderStudentID,
			EnrolledAt: time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC),
		}
		got, err := s.EnrollInCourse(e)
		if err != nil {
			t.Fatalf("EnrollInCourse: %v", err)
		}
		if got.ID != e.ID || got.CourseID != "1" || got.Progress != 0 {
			t.Fatalf("unexpected enrollment: %+v", got)
		}
		after, _ := s.GetCourseByID("1")
		if after.StudentsEnrolled != before.StudentsEnrolled+1 {
			t.Fatalf("unexpected counter: got=%d want=%d", after.StudentsEnrolled, before.StudentsEnrolled+1)
		}

		e.CourseID = "missing"
		if _, err := s.EnrollInCourse(e); !errors.Is(err, storage.ErrNotFound) {
			t.Fatalf("unexpected error: got=%v want=%v", err, storage.ErrNotFound)
		}
	})

	t.Run("ViewVideo", func(t *testing.T) {
		s := newStore(t)
		first, err := s.ViewVideo("1")
		if err != nil {
			t.Fatalf("ViewVideo: %v", err)
		}
		second, err := s.ViewVideo("1")
		if err != nil {
			t.Fatalf("ViewVideo: %v", err)
		}
		if first.Views != 12001 || second.Views != 12002 {
			t.Fatalf("unexpected views: got=%d,%d want=12001,12002", first.Views, second.Views)
		}
		if _, err := s.ViewVideo("nope"); !errors.Is(err, storage.ErrNotFound) {
			t.Fatalf("unexpected error: got=%v want=%v", err, storage.ErrNotFound)
		}
	})

	t.Run("CreateUser", func(t *testing.T) {
		s := newStore(t)
		u := newUser("1", "Ada", "ada@example.com")
		if _, err := s.CreateUser(u); err != nil {
			t.Fatalf("CreateUser: %v", err)
		}
		if _, err := s.CreateUser(newUser("2", "Ada again", "ada@example.com")); !errors.Is(err, storage.ErrConflict) {
			t.Fatalf("unexpected error: got=%v want=%v", err, storage.ErrConflict)
		}
		// Email equality is case-sensitive.
		if _, err := s.CreateUser(newUser("3", "Ada upper", "ADA@example.com")); err != nil {
			t.Fatalf("CreateUser with different case: %v", err)
		}
	})

	t.Run("FirstOrCreateUser", func(t *testing.T) {
		s := newStore(t)
		created, ok, err := s.FirstOrCreateUser(newUser("10", "Demo User", "demo@example.com"))
		if err != nil {
			t.Fatalf("FirstOrCreateUser: %v", err)
		}
		if !ok || created.ID != "10" {
			t.Fatalf("expected creation: ok=%v user=%+v", ok, created)
		}
		existing, ok, err := s.FirstOrCreateUser(newUser("11", "Other", "demo@example.com"))
		if err != nil {
			t.Fatalf("FirstOrCreateUser: %v", err)
		}
		if ok || existing.ID != "10" || existing.Name != "Demo User" {
			t.Fatalf("expected existing user: ok=%v user=%+v", ok, existing)
		}
		if !existing.CreatedAt.Equal(created.CreatedAt) {
			t.Fatalf("unexpected created_at: got=%v want=%v", existing.CreatedAt, created.CreatedAt)
		}
	})

	t.Run("ConcurrentCounters", func(t *testing.T) {
		s := newStore(t)
		const n = 50
		var wg sync.WaitGroup
		errs := make(chan error, 2*n)
		for i := 0; i < n; i++ {
			wg.Add(2)
			go func(i int) {
				defer wg.Done()
				_, err := s.EnrollInCourse(types.Enrollment{ID: fmt.Sprint(i), CourseID: "3", StudentID: types.PlaceholderStudentID, EnrolledAt: time.Now().UTC()})
				errs <- err
			}(i)
			go func() {
				defer wg.Done()
				_, err := s.ViewVideo("2")
				errs <- err
			}()
		}
		wg.Wait()
		close(errs)
		for err := range errs {
			if err != nil {
				t.Fatalf("concurrent update: %v", err)
			}
		}

		c, _ := s.GetCourseByID("3")
		if c.StudentsEnrolled != 800+n {
			t.Fatalf("lost enrollments: got=%d want=%d", c.StudentsEnrolled, 800+n)
		}
		v, _ := s.ViewVideo("2")
		if v.Views != 18000+n+1 {
			t.Fatalf("lost views: got=%d want=%d", v.Views, 18000+n+1)
		}
	})
}

func newUser(id, name, email string) types.User {
	return types.User{
		ID:        id,
		Name:      name,
		Email:     email,
		Role:      types.RoleStudent,
		CreatedAt: time.Date(2024, 5, 6, 7, 8, 9, 0, time.UTC),
	}
}
