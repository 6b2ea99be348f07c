// Package storage defines the Storage interface: the contract every
// backend must satisfy to hold the catalog (courses, videos) and the
// append-only demo collections (users, enrollments).
//
// Handlers never talk to a backend directly. They go through the catalog
// service, which depends only on this interface, so the in-memory store
// and the SQLite store are interchangeable (see config storage.driver).
package storage

import (
	"errors"

	"github.com/aanand-mishra/edulearn/internal/types"
)

// Sentinel errors returned by every backend. Callers match them with
// errors.Is; backends may wrap them with extra context.
var (
	ErrNotFound = errors.New("not found")
	ErrConflict = errors.New("already exists")
)

// Storage is the persistence contract.
//
// Pagination arguments are already normalized by the caller: page >= 1
// and limit >= 1. A page past the end yields an empty, non-nil slice.
type Storage interface {
	// ListCourses returns the requested page of courses whose category
	// equals category case-insensitively (all courses when category is
	// empty), in seed order, together with the filtered total.
	ListCourses(category string, page, limit int) ([]types.Course, int, error)

	// GetCourseByID returns ErrNotFound when no course has the given id.
	GetCourseByID(id string) (types.Course, error)

	// EnrollInCourse stores e and increments the enrolled counter of
	// course e.CourseID as one atomic step. Returns ErrNotFound when the
	// course does not exist.
	EnrollInCourse(e types.Enrollment) (types.Enrollment, error)

	// ListVideos has the same contract as ListCourses.
	ListVideos(category string, page, limit int) ([]types.Video, int, error)

	// ViewVideo increments the view counter of the video and returns the
	// updated record. Returns ErrNotFound when it does not exist.
	ViewVideo(id string) (types.Video, error)

	// CreateUser stores u. Returns ErrConflict when a user with the same
	// email (exact, case-sensitive match) already exists.
	CreateUser(u types.User) (types.User, error)

	// FirstOrCreateUser returns the user registered under u.Email, or
	// stores u when there is none. created reports which happened.
	FirstOrCreateUser(u types.User) (user types.User, created bool, err error)

	// Close releases backend resources.
	Close() error
}
