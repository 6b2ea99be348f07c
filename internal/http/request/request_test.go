package request

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/aanand-mishra/edulearn/internal/types"
)

func TestListQuery(t *testing.T) {
	tests := []struct {
		target              string
		category            string
		wantPage, wantLimit int
	}{
		{"/api/courses", "", 0, 0},
		{"/api/courses?category=Marketing&page=2&limit=1", "Marketing", 2, 1},
		{"/api/courses?page=abc&limit=1.5", "", 0, 0},
		{"/api/courses?page=-3&limit=0", "", 0, 0},
		{"/api/videos?category=data%20science", "data science", 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.target, func(t *testing.T) {
			q := ListQuery(httptest.NewRequest("GET", tt.target, nil))
			if q.Category != tt.category || q.Page != tt.wantPage || q.Limit != tt.wantLimit {
				t.Fatalf("unexpected query: got=%+v want category=%q page=%d limit=%d",
					q, tt.category, tt.wantPage, tt.wantLimit)
			}
		})
	}
}

func TestDecodeJSON(t *testing.T) {
	var req types.LoginRequest
	if err := DecodeJSON(httptest.NewRequest("POST", "/", strings.NewReader("")), &req); err != nil {
		t.Fatalf("empty body: %v", err)
	}
	if err := DecodeJSON(httptest.NewRequest("POST", "/", strings.NewReader(`{"email":"a@b.c","password":"x"}`)), &req); err != nil {
		t.Fatalf("valid body: %v", err)
	}
	if req.Email != "a@b.c" || req.Password != "x" {
		t.Fatalf("unexpected decode: %+v", req)
	}
	if err := DecodeJSON(httptest.NewRequest("POST", "/", strings.NewReader(`{"email":`)), &req); err == nil {
		t.Fatal("expected error for malformed body")
	}
}
