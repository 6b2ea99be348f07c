// Package memory provides the default, in-process implementation of
// storage.Storage.
//
// All four collections live in plain slices owned by a Memory value and
// guarded by a single RWMutex: lookups and listings take the read lock,
// every read-modify-write (enroll, view, user creation) takes the write
// lock, so concurrent requests never lose a counter update. State is lost
// when the process exits.
package memory

import (
	"fmt"
	"strings"
	"sync"

	"github.com/aanand-mishra/edulearn/internal/storage"
	"github.com/aanand-mishra/edulearn/internal/types"
)

// Memory is the in-memory storage.Storage.
type Memory struct {
	mu          sync.RWMutex
	courses     []types.Course
	videos      []types.Video
	users       []types.User
	enrollments []types.Enrollment
}

// New returns a store seeded with the course and video fixtures.
func New() *Memory {
	return &Memory{
		courses:     storage.SeedCourses(),
		videos:      storage.SeedVideos(),
		users:       make([]types.User, 0),
		enrollments: make([]types.Enrollment, 0),
	}
}

func (m *Memory) ListCourses(category string, page, limit int) ([]types.Course, int, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	filtered := filterByCategory(m.courses, category, func(c types.Course) string { return c.Category })
	return storage.Paginate(filtered, page, limit), len(filtered), nil
}

func (m *Memory) GetCourseByID(id string) (types.Course, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	i := m.courseIndex(id)
	if i < 0 {
		return types.Course{}, fmt.Errorf("course %q: %w", id, storage.ErrNotFound)
	}
	return m.courses[i], nil
}

func (m *Memory) EnrollInCourse(e types.Enrollment) (types.Enrollment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	i := m.courseIndex(e.CourseID)
	if i < 0 {
		return types.Enrollment{}, fmt.Errorf("course %q: %w", e.CourseID, storage.ErrNotFound)
	}
	m.enrollments = append(m.enrollments, e)
	m.courses[i].StudentsEnrolled++
	return e, nil
}

func (m *Memory) ListVideos(category string, page, limit int) ([]types.Video, int, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	filtered := filterByCategory(m.videos, category, func(v types.Video) string { return v.Category })
	return storage.Paginate(filtered, page, limit), len(filtered), nil
}

func (m *Memory) ViewVideo(id string) (types.Video, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i := range m.videos {
		if m.videos[i].ID == id {
			m.videos[i].Views++
			return m.videos[i], nil
		}
	}
	return types.Video{}, fmt.Errorf("video %q: %w", id, storage.ErrNotFound)
}

func (m *Memory) CreateUser(u types.User) (types.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.userByEmail(u.Email); ok {
		return types.User{}, fmt.Errorf("user %q: %w", u.Email, storage.ErrConflict)
	}
	m.users = append(m.users, u)
	return u, nil
}

func (m *Memory) FirstOrCreateUser(u types.User) (types.User, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if existing, ok := m.userByEmail(u.Email); ok {
		return existing, false, nil
	}
	m.users = append(m.users, u)
	return u, true, nil
}

// Close is a no-op; there is nothing to release.
func (m *Memory) Close() error { return nil }

// courseIndex and userByEmail expect m.mu to be held.
func (m *Memory) courseIndex(id string) int {
	for i := range m.courses {
		if m.courses[i].ID == id {
			return i
		}
	}
	return -1
}

func (m *Memory) userByEmail(email string) (types.User, bool) {
	for _, u := range m.users {
		if u.Email == email {
			return u, true
		}
	}
	return types.User{}, false
}

func filterByCategory[T any](items []T, category string, categoryOf func(T) string) []T {
	if category == "" {
		return items
	}
	out := make([]T, 0, len(items))
	for _, item := range items {
		if strings.EqualFold(categoryOf(item), category) {
			out = append(out, item)
		}
	}
	return out
}
