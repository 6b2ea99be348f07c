// Package logger builds the *slog.Logger shared by both binaries.
//
// Development (dev): human-readable text output at DEBUG level.
// Staging: JSON at DEBUG. Production (prod): JSON at INFO.
//
// Attributes whose key names a credential (token, password, secret,
// authorization) are replaced with [REDACTED]; email values keep only
// their domain.
package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

const redacted = "[REDACTED]"

// New returns a logger writing to stdout for the given environment.
func New(env string) *slog.Logger {
	return NewWithWriter(env, os.Stdout)
}

// NewWithWriter is New with an explicit destination.
func NewWithWriter(env string, w io.Writer) *slog.Logger {
	switch env {
	case "prod":
		return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{
			Level:       slog.LevelInfo,
			ReplaceAttr: sanitize,
		}))
	case "staging":
		return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{
			Level:       slog.LevelDebug,
			ReplaceAttr: sanitize,
		}))
	default: // "dev" and anything unrecognised
		return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
			Level:       slog.LevelDebug,
			ReplaceAttr: sanitize,
		}))
	}
}

func sanitize(_ []string, a slog.Attr) slog.Attr {
	key := strings.ToLower(a.Key)
	switch {
	case isSecretKey(key):
		return slog.String(a.Key, redacted)
	case strings.Contains(key, "email"):
		return slog.String(a.Key, MaskEmail(a.Value.String()))
	}
	return a
}

func isSecretKey(key string) bool {
	for _, s := range []string{"token", "password", "secret", "authorization"} {
		if strings.Contains(key, s) {
			return true
		}
	}
	return false
}

// MaskEmail hides the local part of an address: "ada@example.com"
// becomes "***@example.com". Values without an @ are fully redacted.
func MaskEmail(email string) string {
	at := strings.LastIndexByte(email, '@')
	if at < 0 {
		return redacted
	}
	return "***" + email[at:]
}
