package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/devsocial/social-api/internal/core/domain"
)

func renderError(t *testing.T, err error) (int, string) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	NewHTTPErrorHandler(zerolog.Nop())(err, c)

	var resp map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json body: %v", err)
	}
	return rec.Code, resp["msg"]
}

func TestErrorHandler_DomainErrors(t *testing.T) {
	cases := []struct {
		err     error
		code    int
		message string
	}{
		{domain.ErrInvalidCredentials, http.StatusBadRequest, "Invalid Credentials"},
		{domain.ErrUserExists, http.StatusBadRequest, "User already exists"},
		{domain.ErrPostNotFound, http.StatusNotFound, "Post not found"},
		{domain.ErrCommentNotFound, http.StatusNotFound, "Comment does not exist"},
		{domain.ErrEntryNotFound, http.StatusNotFound, "Entry not found"},
		{domain.ErrForbidden, http.StatusForbidden, "User not authorized"},
		{domain.ErrAlreadyLiked, http.StatusConflict, "Post already liked"},
		{domain.ErrNotLiked, http.StatusConflict, "Post has not yet been liked"},
		{domain.ErrStorageUnavailable, http.StatusServiceUnavailable, "Service temporarily unavailable"},
	}

	for _, tc := range cases {
		code, msg := renderError(t, tc.err)
		if code != tc.code || msg != tc.message {
			t.Fatalf("%v: expected %d %q, got %d %q", tc.err, tc.code, tc.message, code, msg)
		}
	}
}

func TestErrorHandler_WrappedDomainError(t *testing.T) {
	wrapped := errors.Join(errors.New("remove like"), domain.ErrNotLiked)
	code, msg := renderError(t, wrapped)
	if code != http.StatusConflict || msg != "Post has not yet been liked" {
		t.Fatalf("wrapped sentinel not unwrapped: %d %q", code, msg)
	}
}

func TestErrorHandler_UnknownErrorIsOpaque(t *testing.T) {
	code, msg := renderError(t, errors.New("pq: connection reset"))
	if code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", code)
	}
	if msg != "Server Error" {
		t.Fatalf("internal detail leaked: %q", msg)
	}
}

func TestErrorHandler_EchoHTTPError(t *testing.T) {
	code, msg := renderError(t, echo.NewHTTPError(http.StatusUnauthorized, "Token is not valid"))
	if code != http.StatusUnauthorized || msg != "Token is not valid" {
		t.Fatalf("unexpected: %d %q", code, msg)
	}
}
