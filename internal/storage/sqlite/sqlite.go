// Package sqlite provides a SQLite-backed implementation of the
// storage.Storage interface using Go's standard database/sql package.
//
// WHY SQLite HERE?
// ────────────────
// The catalog does not need durability, but running the same contract on
// a real SQL engine keeps the counters honest: enrollment and view
// updates happen inside transactions instead of behind a Go mutex.
//
// The default DSN is ":memory:", so state is still volatile. An in-memory
// SQLite database lives inside ONE connection; the pool is therefore
// pinned to a single open connection, otherwise every new pooled
// connection would see its own empty database.
//
// The blank import below registers the sqlite3 driver with database/sql.
package sqlite

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/aanand-mishra/edulearn/internal/config"
	"github.com/aanand-mishra/edulearn/internal/storage"
	"github.com/aanand-mishra/edulearn/internal/types"

	"github.com/mattn/go-sqlite3"
)

// SQLite is the concrete implementation of storage.Storage.
type SQLite struct {
	Db *sql.DB
}

const schema = `
	CREATE TABLE IF NOT EXISTS courses (
		seq               INTEGER PRIMARY KEY AUTOINCREMENT,
		id                TEXT    NOT NULL UNIQUE,
		title             TEXT    NOT NULL,
		description       TEXT    NOT NULL,
		category          TEXT    NOT NULL,
		price             REAL    NOT NULL,
		original_price    REAL    NOT NULL,
		duration          INTEGER NOT NULL,
		rating            REAL    NOT NULL,
		students_enrolled INTEGER NOT NULL,
		instructor_name   TEXT    NOT NULL,
		instructor_email  TEXT    NOT NULL
	);
	CREATE TABLE IF NOT EXISTS videos (
		seq              INTEGER PRIMARY KEY AUTOINCREMENT,
		id               TEXT    NOT NULL UNIQUE,
		title            TEXT    NOT NULL,
		description      TEXT    NOT NULL,
		youtube_id       TEXT    NOT NULL,
		duration         INTEGER NOT NULL,
		views            INTEGER NOT NULL,
		category         TEXT    NOT NULL,
		instructor_name  TEXT    NOT NULL,
		instructor_email TEXT    NOT NULL
	);
	CREATE TABLE IF NOT EXISTS users (
		seq        INTEGER  PRIMARY KEY AUTOINCREMENT,
		id         TEXT     NOT NULL,
		name       TEXT     NOT NULL,
		email      TEXT     NOT NULL UNIQUE,
		role       TEXT     NOT NULL,
		created_at DATETIME NOT NULL
	);
	CREATE TABLE IF NOT EXISTS enrollments (
		seq         INTEGER  PRIMARY KEY AUTOINCREMENT,
		id          TEXT     NOT NULL,
		course_id   TEXT     NOT NULL,
		student_id  TEXT     NOT NULL,
		enrolled_at DATETIME NOT NULL,
		progress    INTEGER  NOT NULL
	);
`

const (
	courseColumns = `id, title, description, category, price, original_price, duration,
		rating, students_enrolled, instructor_name, instructor_email`
	videoColumns = `id, title, description, youtube_id, duration, views, category,
		instructor_name, instructor_email`
	userColumns = `id, name, email, role, created_at`
)

// New opens the SQLite database at cfg.Storage.Path, creates the tables
// if needed and inserts the fixtures (existing rows are left untouched).
func New(cfg *config.Config) (*SQLite, error) {
	db, err := sql.Open("sqlite3", cfg.Storage.Path)
	if err != nil {
		return nil, fmt.Errorf("sqlite.New: open db: %w", err)
	}
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("sqlite.New: create tables: %w", err)
	}

	s := &SQLite{Db: db}
	if err := s.seed(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

// seed inserts the fixtures in one transaction. INSERT OR IGNORE keeps
// the counters of a file-backed database that is reopened.
func (s *SQLite) seed() error {
	tx, err := s.Db.Begin()
	if err != nil {
		return fmt.Errorf("sqlite.seed: begin: %w", err)
	}
	defer tx.Rollback()

	for _, c := range storage.SeedCourses() {
		_, err := tx.Exec(
			"INSERT OR IGNORE INTO courses ("+courseColumns+") VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)",
			c.ID, c.Title, c.Description, c.Category, c.Price, c.OriginalPrice, c.Duration,
			c.Rating, c.StudentsEnrolled, c.Instructor.Name, c.Instructor.Email,
		)
		if err != nil {
			return fmt.Errorf("sqlite.seed: course %s: %w", c.ID, err)
		}
	}
	for _, v := range storage.SeedVideos() {
		_, err := tx.Exec(
			"INSERT OR IGNORE INTO videos ("+videoColumns+") VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)",
			v.ID, v.Title, v.Description, v.YoutubeID, v.Duration, v.Views, v.Category,
			v.Instructor.Name, v.Instructor.Email,
		)
		if err != nil {
			return fmt.Errorf("sqlite.seed: video %s: %w", v.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("sqlite.seed: commit: %w", err)
	}
	return nil
}

// ─────────────────────────────────────────────────────────────────────────────
// Courses
// ─────────────────────────────────────────────────────────────────────────────

func (s *SQLite) ListCourses(category string, page, limit int) ([]types.Course, int, error) {
	where, args := categoryFilter(category)

	var total int
	if err := s.Db.QueryRow("SELECT COUNT(*) FROM courses"+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("ListCourses: count: %w", err)
	}

	start, end := storage.Window(total, page, limit)
	rows, err := s.Db.Query(
		"SELECT "+courseColumns+" FROM courses"+where+" ORDER BY seq LIMIT ? OFFSET ?",
		append(args, end-start, start)...,
	)
	if err != nil {
		return nil, 0, fmt.Errorf("ListCourses: query: %w", err)
	}
	defer rows.Close()

	courses := make([]types.Course, 0, end-start)
	for rows.Next() {
		c, err := scanCourse(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("ListCourses: scan row: %w", err)
		}
		courses = append(courses, c)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("ListCourses: rows iteration: %w", err)
	}

	return courses, total, nil
}

func (s *SQLite) GetCourseByID(id string) (types.Course, error) {
	row := s.Db.QueryRow("SELECT "+courseColumns+" FROM courses WHERE id = ? LIMIT 1", id)
	c, err := scanCourse(row)
	if errors.Is(err, sql.ErrNoRows) {
		return types.Course{}, fmt.Errorf("course %q: %w", id, storage.ErrNotFound)
	}
	if err != nil {
		return types.Course{}, fmt.Errorf("GetCourseByID: scan: %w", err)
	}
	return c, nil
}

// EnrollInCourse bumps the counter first: zero affected rows means the
// course does not exist and nothing is inserted.
func (s *SQLite) EnrollInCourse(e types.Enrollment) (types.Enrollment, error) {
	tx, err := s.Db.Begin()
	if err != nil {
		return types.Enrollment{}, fmt.Errorf("EnrollInCourse: begin: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.Exec("UPDATE courses SET students_enrolled = students_enrolled + 1 WHERE id = ?", e.CourseID)
	if err != nil {
		return types.Enrollment{}, fmt.Errorf("EnrollInCourse: update course: %w", err)
	}
	if n, err := res.RowsAffected(); err != nil {
		return types.Enrollment{}, fmt.Errorf("EnrollInCourse: rows affected: %w", err)
	} else if n == 0 {
		return types.Enrollment{}, fmt.Errorf("course %q: %w", e.CourseID, storage.ErrNotFound)
	}

	_, err = tx.Exec(
		"INSERT INTO enrollments (id, course_id, student_id, enrolled_at, progress) VALUES (?, ?, ?, ?, ?)",
		e.ID, e.CourseID, e.StudentID, e.EnrolledAt, e.Progress,
	)
	if err != nil {
		return types.Enrollment{}, fmt.Errorf("EnrollInCourse: insert: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return types.Enrollment{}, fmt.Errorf("EnrollInCourse: commit: %w", err)
	}
	return e, nil
}

// ─────────────────────────────────────────────────────────────────────────────
// Videos
// ─────────────────────────────────────────────────────────────────────────────

func (s *SQLite) ListVideos(category string, page, limit int) ([]types.Video, int, error) {
	where, args := categoryFilter(category)

	var total int
	if err := s.Db.QueryRow("SELECT COUNT(*) FROM videos"+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("ListVideos: count: %w", err)
	}

	start, end := storage.Window(total, page, limit)
	rows, err := s.Db.Query(
		"SELECT "+videoColumns+" FROM videos"+where+" ORDER BY seq LIMIT ? OFFSET ?",
		append(args, end-start, start)...,
	)
	if err != nil {
		return nil, 0, fmt.Errorf("ListVideos: query: %w", err)
	}
	defer rows.Close()

	videos := make([]types.Video, 0, end-start)
	for rows.Next() {
		v, err := scanVideo(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("ListVideos: scan row: %w", err)
		}
		videos = append(videos, v)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("ListVideos: rows iteration: %w", err)
	}

	return videos, total, nil
}

func (s *SQLite) ViewVideo(id string) (types.Video, error) {
	tx, err := s.Db.Begin()
	if err != nil {
		return types.Video{}, fmt.Errorf("ViewVideo: begin: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.Exec("UPDATE videos SET views = views + 1 WHERE id = ?", id)
	if err != nil {
		return types.Video{}, fmt.Errorf("ViewVideo: update: %w", err)
	}
	if n, err := res.RowsAffected(); err != nil {
		return types.Video{}, fmt.Errorf("ViewVideo: rows affected: %w", err)
	} else if n == 0 {
		return types.Video{}, fmt.Errorf("video %q: %w", id, storage.ErrNotFound)
	}

	v, err := scanVideo(tx.QueryRow("SELECT "+videoColumns+" FROM videos WHERE id = ?", id))
	if err != nil {
		return types.Video{}, fmt.Errorf("ViewVideo: scan: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return types.Video{}, fmt.Errorf("ViewVideo: commit: %w", err)
	}
	return v, nil
}

// ─────────────────────────────────────────────────────────────────────────────
// Users
// ─────────────────────────────────────────────────────────────────────────────

// CreateUser relies on the UNIQUE constraint on users.email (BINARY
// collation, so the comparison is case-sensitive).
func (s *SQLite) CreateUser(u types.User) (types.User, error) {
	_, err := s.Db.Exec(
		"INSERT INTO users ("+userColumns+") VALUES (?, ?, ?, ?, ?)",
		u.ID, u.Name, u.Email, u.Role, u.CreatedAt,
	)
	if isUniqueViolation(err) {
		return types.User{}, fmt.Errorf("user %q: %w", u.Email, storage.ErrConflict)
	}
	if err != nil {
		return types.User{}, fmt.Errorf("CreateUser: exec: %w", err)
	}
	return u, nil
}

func (s *SQLite) FirstOrCreateUser(u types.User) (types.User, bool, error) {
	tx, err := s.Db.Begin()
	if err != nil {
		return types.User{}, false, fmt.Errorf("FirstOrCreateUser: begin: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.Exec(
		"INSERT INTO users ("+userColumns+") VALUES (?, ?, ?, ?, ?) ON CONFLICT(email) DO NOTHING",
		u.ID, u.Name, u.Email, u.Role, u.CreatedAt,
	)
	if err != nil {
		return types.User{}, false, fmt.Errorf("FirstOrCreateUser: insert: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return types.User{}, false, fmt.Errorf("FirstOrCreateUser: rows affected: %w", err)
	}

	var user types.User
	err = tx.QueryRow("SELECT "+userColumns+" FROM users WHERE email = ?", u.Email).
		Scan(&user.ID, &user.Name, &user.Email, &user.Role, &user.CreatedAt)
	if err != nil {
		return types.User{}, false, fmt.Errorf("FirstOrCreateUser: scan: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return types.User{}, false, fmt.Errorf("FirstOrCreateUser: commit: %w", err)
	}
	return user, n == 1, nil
}

func (s *SQLite) Close() error {
	return s.Db.Close()
}

// ─────────────────────────────────────────────────────────────────────────────
// helpers
// ─────────────────────────────────────────────────────────────────────────────

// scanner is satisfied by both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanCourse(row scanner) (types.Course, error) {
	var c types.Course
	err := row.Scan(
		&c.ID, &c.Title, &c.Description, &c.Category, &c.Price, &c.OriginalPrice,
		&c.Duration, &c.Rating, &c.StudentsEnrolled, &c.Instructor.Name, &c.Instructor.Email,
	)
	return c, err
}

func scanVideo(row scanner) (types.Video, error) {
	var v types.Video
	err := row.Scan(
		&v.ID, &v.Title, &v.Description, &v.YoutubeID, &v.Duration, &v.Views, &v.Category,
		&v.Instructor.Name, &v.Instructor.Email,
	)
	return v, err
}

// categoryFilter builds the WHERE clause for a case-insensitive category
// match. Empty category means no filter.
func categoryFilter(category string) (string, []any) {
	if category == "" {
		return "", nil
	}
	return " WHERE LOWER(category) = ?", []any{strings.ToLower(category)}
}

func isUniqueViolation(err error) bool {
	var sqliteErr sqlite3.Error
	return errors.As(err, &sqliteErr) && sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique
}
