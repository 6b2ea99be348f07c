// Package web serves the single-page front-end from a directory.
//
// Unlike http.FileServer, a path that does not exist is answered with the
// index document so client-side routes (/courses/2, /login, ...) load the
// app instead of a 404. Any other read failure is reported as a 500 with
// the errno name:
//
//	Sorry, check with the site admin for error: EACCES ..
package web

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"
	"syscall"
)

const defaultContentType = "application/octet-stream"

var contentTypes = map[string]string{
	".html":  "text/html",
	".js":    "text/javascript",
	".css":   "text/css",
	".json":  "application/json",
	".png":   "image/png",
	".jpg":   "image/jpeg",
	".gif":   "image/gif",
	".ico":   "image/x-icon",
	".svg":   "image/svg+xml",
	".webp":  "image/webp",
	".woff":  "font/woff",
	".woff2": "font/woff2",
	".txt":   "text/plain",
	".map":   "application/json",
}

var errnoNames = map[syscall.Errno]string{
	syscall.EACCES:       "EACCES",
	syscall.EPERM:        "EPERM",
	syscall.EISDIR:       "EISDIR",
	syscall.ENOTDIR:      "ENOTDIR",
	syscall.ENAMETOOLONG: "ENAMETOOLONG",
	syscall.ELOOP:        "ELOOP",
	syscall.EMFILE:       "EMFILE",
	syscall.EIO:          "EIO",
}

// ContentType returns the media type served for name, matched on its
// extension case-insensitively.
func ContentType(name string) string {
	if ct, ok := contentTypes[strings.ToLower(path.Ext(name))]; ok {
		return ct
	}
	return defaultContentType
}

// Handler serves files below Root. Index is the document returned for "/"
// and for every path that does not exist.
type Handler struct {
	Root  string
	Index string
	Log   *slog.Logger
}

// New returns a Handler for root with the given index document name.
func New(root, index string, log *slog.Logger) *Handler {
	if log == nil {
		log = slog.Default()
	}
	return &Handler{Root: root, Index: index, Log: log}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	name := h.resolve(r.URL.Path)

	body, err := os.ReadFile(filepath.Join(h.Root, filepath.FromSlash(name)))
	if err == nil {
		w.Header().Set("Content-Type", ContentType(name))
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.WriteHeader(http.StatusOK)
		w.Write(body)
		return
	}

	if !errors.Is(err, fs.ErrNotExist) {
		h.fail(w, r, err)
		return
	}

	index, err := os.ReadFile(filepath.Join(h.Root, h.Index))
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.Log.Debug("serving index for missing file", slog.String("path", r.URL.Path))
	w.Header().Set("Content-Type", "text/html")
	w.WriteHeader(http.StatusOK)
	w.Write(index)
}

// resolve maps a URL path to a slash-separated name relative to Root.
// Cleaning a rooted path drops every "..", so the result never escapes
// Root.
func (h *Handler) resolve(urlPath string) string {
	clean := path.Clean("/" + urlPath)
	if clean == "/" {
		return h.Index
	}
	return strings.TrimPrefix(clean, "/")
}

func (h *Handler) fail(w http.ResponseWriter, r *http.Request, err error) {
	code := ErrorCode(err)
	h.Log.Error("static file read failed",
		slog.String("path", r.URL.Path),
		slog.String("code", code),
		slog.String("error", err.Error()))
	w.Header().Set("Content-Type", "text/plain")
	w.WriteHeader(http.StatusInternalServerError)
	fmt.Fprintf(w, "Sorry, check with the site admin for error: %s ..\n", code)
}

// ErrorCode names the errno behind err, or EUNKNOWN.
func ErrorCode(err error) string {
	if errors.Is(err, fs.ErrNotExist) {
		return "ENOENT"
	}
	var errno syscall.Errno
	if errors.As(err, &errno) {
		if name, ok := errnoNames[errno]; ok {
			return name
		}
	}
	return "EUNKNOWN"
}
