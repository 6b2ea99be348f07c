package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/aanand-mishra/edulearn/internal/types"
)

func TestIssueAndParse(t *testing.T) {
	issuer := NewIssuer("test-secret", time.Hour)
	user := types.User{ID: "1700000000000", Email: "ada@example.com", Role: types.RoleStudent}

	token, err := issuer.Issue(user)
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	claims, err := issuer.Parse(token)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if claims.UserID != user.ID || claims.Email != user.Email || claims.Role != types.RoleStudent {
		t.Fatalf("unexpected claims: %+v", claims)
	}
	if claims.ID == "" {
		t.Fatal("missing jti")
	}
}

func TestIssueIsUniquePerCall(t *testing.T) {
	issuer := NewIssuer("test-secret", time.Hour)
	fixed := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	issuer.now = func() time.Time { return fixed }

	user := types.User{ID: "1", Email: "a@b.c", Role: types.RoleStudent}
	seen := make(map[string]bool)
	for i := 0; i < 20; i++ {
		token, err := issuer.Issue(user)
		if err != nil {
			t.Fatalf("Issue: %v", err)
		}
		if seen[token] {
			t.Fatalf("duplicate token on call %d", i)
		}
		seen[token] = true
	}
}

func TestParseRejectsForeignSecret(t *testing.T) {
	token, err := NewIssuer("one", time.Hour).Issue(types.User{ID: "1"})
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	if _, err := NewIssuer("two", time.Hour).Parse(token); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("unexpected error: got=%v want=%v", err, ErrInvalidToken)
	}
}
