// Package types holds the shared data structures (models) used across
// the application. Keeping them in one place prevents import cycles:
// handlers, the catalog service and every storage backend import types
// without depending on each other.
//
// JSON keys follow the wire format the EduLearn front-end already
// consumes ("_id", "studentsEnrolled", "youtubeId", ...).
package types

import "time"

// RoleStudent is the only role ever assigned to a created user.
const RoleStudent = "student"

// PlaceholderStudentID is recorded on every enrollment. Enrollments are
// not bound to the caller's session.
const PlaceholderStudentID = "mock_student_id"

// Instructor is embedded in both courses and videos.
type Instructor struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Course is a catalog entry. StudentsEnrolled is the only field that
// changes after seeding and it only ever grows.
type Course struct {
	ID               string     `json:"_id"`
	Title            string     `json:"title"`
	Description      string     `json:"description"`
	Category         string     `json:"category"`
	Price            float64    `json:"price"`
	OriginalPrice    float64    `json:"originalPrice"`
	Duration         int        `json:"duration"` // minutes
	Rating           float64    `json:"rating"`
	StudentsEnrolled int        `json:"studentsEnrolled"`
	Instructor       Instructor `json:"instructor"`
}

// Video points at media hosted on YouTube; only the external id is kept.
// Views grows by one on every fetch by id.
type Video struct {
	ID          string     `json:"_id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	YoutubeID   string     `json:"youtubeId"`
	Duration    int        `json:"duration"` // minutes
	Views       int        `json:"views"`
	Category    string     `json:"category"`
	Instructor  Instructor `json:"instructor"`
}

// User is a demo account. Passwords are accepted at the API boundary but
// never stored.
type User struct {
	ID        string    `json:"_id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}

// UserView is the projection of a User returned by the auth endpoints.
type UserView struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// View projects u into the shape returned to clients.
func (u User) View() UserView {
	return UserView{ID: u.ID, Name: u.Name, Email: u.Email, Role: u.Role}
}

// Enrollment records a (placeholder) student joining a course. Progress
// starts at zero and no endpoint advances it.
type Enrollment struct {
	ID         string    `json:"_id"`
	CourseID   string    `json:"courseId"`
	StudentID  string    `json:"studentId"`
	EnrolledAt time.Time `json:"enrolledAt"`
	Progress   int       `json:"progress"`
}

// RegisterRequest is the body of POST /api/auth/register.
//
// validate:"required" is checked by go-playground/validator; an empty
// string counts as missing.
type RegisterRequest struct {
	Name     string `json:"name"     validate:"required"`
	Email    string `json:"email"    validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginRequest is the body of POST /api/auth/login.
type LoginRequest struct {
	Email    string `json:"email"    validate:"required"`
	Password string `json:"password" validate:"required"`
}
