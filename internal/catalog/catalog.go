// Package catalog implements the EduLearn operations on top of a
// storage.Storage: listing and paginating the catalog, enrolling, viewing
// videos, and the demo register/login flow.
package catalog

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/aanand-mishra/edulearn/internal/storage"
	"github.com/aanand-mishra/edulearn/internal/types"
)

// Default page sizes. Videos page by 12, courses by 10.
const (
	DefaultPage        = 1
	DefaultCourseLimit = 10
	DefaultVideoLimit  = 12
)

// DemoUserName is given to users created implicitly by Login.
const DemoUserName = "Demo User"

const (
	registerFieldsMessage = "Please provide name, email and password"
	loginFieldsMessage    = "Please provide email and password"
)

// ErrUserExists is returned by Register for an email already on file.
// It matches storage.ErrConflict under errors.Is.
var ErrUserExists error = userExistsError{}

type userExistsError struct{}

func (userExistsError) Error() string        { return "User already exists" }
func (userExistsError) Is(target error) bool { return target == storage.ErrConflict }

// ValidationError reports missing request fields.
type ValidationError struct {
	Message string
	Fields  validator.ValidationErrors
}

func (e *ValidationError) Error() string { return e.Message }

// TokenIssuer produces the opaque token handed back on register/login.
type TokenIssuer interface {
	Issue(u types.User) (string, error)
}

// ListQuery selects a page of the catalog. Zero or negative Page/Limit
// fall back to the defaults.
type ListQuery struct {
	Category string
	Page     int
	Limit    int
}

// Page is one window of a filtered listing. Count is len(Items); Total
// is the size of the filtered sequence.
type Page[T any] struct {
	Items []T
	Count int
	Total int
}

// Session is what register and login return.
type Session struct {
	User  types.UserView
	Token string
}

// Service is the catalog. It is safe for concurrent use as long as the
// underlying storage is.
type Service struct {
	store    storage.Storage
	tokens   TokenIssuer
	validate *validator.Validate
	ids      *idGenerator
	now      func() time.Time
	log      *slog.Logger
}

func New(store storage.Storage, tokens TokenIssuer, log *slog.Logger) *Service {
	return &Service{
		store:    store,
		tokens:   tokens,
		validate: validator.New(),
		ids:      &idGenerator{},
		now:      func() time.Time { return time.Now().UTC() },
		log:      log.With(slog.String("component", "catalog")),
	}
}

func (s *Service) ListCourses(q ListQuery) (Page[types.Course], error) {
	page, limit := normalize(q, DefaultCourseLimit)
	items, total, err := s.store.ListCourses(q.Category, page, limit)
	if err != nil {
		return Page[types.Course]{}, fmt.Errorf("list courses: %w", err)
	}
	return Page[types.Course]{Items: items, Count: len(items), Total: total}, nil
}

func (s *Service) GetCourse(id string) (types.Course, error) {
	return s.store.GetCourseByID(id)
}

// Enroll records an enrollment for the placeholder student and bumps the
// course's enrolled counter.
func (s *Service) Enroll(courseID string) (types.Enrollment, error) {
	now := s.now()
	e, err := s.store.EnrollInCourse(types.Enrollment{
		ID:         s.ids.next(now),
		CourseID:   courseID,
		StudentID:  types.PlaceholderStudentID,
		EnrolledAt: now,
		Progress:   0,
	})
	if err != nil {
		return types.Enrollment{}, err
	}
	s.log.Info("enrolled", slog.String("course_id", courseID), slog.String("enrollment_id", e.ID))
	return e, nil
}

func (s *Service) ListVideos(q ListQuery) (Page[types.Video], error) {
	page, limit := normalize(q, DefaultVideoLimit)
	items, total, err := s.store.ListVideos(q.Category, page, limit)
	if err != nil {
		return Page[types.Video]{}, fmt.Errorf("list videos: %w", err)
	}
	return Page[types.Video]{Items: items, Count: len(items), Total: total}, nil
}

// GetVideo returns the video and counts the fetch as a view.
func (s *Service) GetVideo(id string) (types.Video, error) {
	return s.store.ViewVideo(id)
}

// Register creates a student account. The password is required but
// discarded.
func (s *Service) Register(req types.RegisterRequest) (Session, error) {
	if err := s.check(req, registerFieldsMessage); err != nil {
		return Session{}, err
	}

	user, err := s.store.CreateUser(s.newUser(req.Name, req.Email))
	if errors.Is(err, storage.ErrConflict) {
		return Session{}, ErrUserExists
	}
	if err != nil {
		return Session{}, fmt.Errorf("register: %w", err)
	}

	s.log.Info("user registered", slog.String("user_id", user.ID), slog.String("email", user.Email))
	return s.session(user)
}

// Login never fails on an unknown email: it silently creates a
// "Demo User" account instead. The password is not checked.
func (s *Service) Login(req types.LoginRequest) (Session, error) {
	if err := s.check(req, loginFieldsMessage); err != nil {
		return Session{}, err
	}

	user, created, err := s.store.FirstOrCreateUser(s.newUser(DemoUserName, req.Email))
	if err != nil {
		return Session{}, fmt.Errorf("login: %w", err)
	}
	if created {
		s.log.Info("demo user created on login", slog.String("user_id", user.ID), slog.String("email", user.Email))
	}
	return s.session(user)
}

func (s *Service) check(req any, message string) error {
	err := s.validate.Struct(req)
	if err == nil {
		return nil
	}
	var fields validator.ValidationErrors
	if errors.As(err, &fields) {
		return &ValidationError{Message: message, Fields: fields}
	}
	return fmt.Errorf("validate: %w", err)
}

func (s *Service) newUser(name, email string) types.User {
	now := s.now()
	return types.User{
		ID:        s.ids.next(now),
		Name:      name,
		Email:     email,
		Role:      types.RoleStudent,
		CreatedAt: now,
	}
}

func (s *Service) session(u types.User) (Session, error) {
	token, err := s.tokens.Issue(u)
	if err != nil {
		return Session{}, err
	}
	return Session{User: u.View(), Token: token}, nil
}

func normalize(q ListQuery, defaultLimit int) (page, limit int) {
	page, limit = q.Page, q.Limit
	if page < 1 {
		page = DefaultPage
	}
	if limit < 1 {
		limit = defaultLimit
	}
	return page, limit
}
