package gdrive_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/Jumpaku/go-gdrive"
	gerrors "github.com/Jumpaku/go-gdrive/errors"
)

func TestHTTPStatus(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, http.StatusOK},
		{"not-found", gerrors.NewNotFoundError("x"), http.StatusNotFound},
		{"not-accessible", gerrors.NewNotAccessibleError("x"), http.StatusForbidden},
		{"conflict", fmt.Errorf("rename: %w", gerrors.NewConflictError("x")), http.StatusBadRequest},
		{"invalid-argument", gerrors.NewInvalidArgumentError("x"), http.StatusBadRequest},
		{"api", gerrors.NewAPIError("x", errors.New("boom")), http.StatusBadGateway},
		{"other", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, c := range cases {
		c := c
		t.Run(c.name, func(t *testing.T) {
			if got := gdrive.HTTPStatus(c.err); got != c.want {
				t.Fatalf("HTTPStatus(%v) = %d, want %d", c.err, got, c.want)
			}
		})
	}
}

func TestErrVars_ReExported(t *testing.T) {
	cases := []struct {
		name string
		got  error
		want error
	}{
		{"ErrNotFound", gdrive.ErrNotFound, gerrors.ErrNotFound},
		{"ErrNotAccessible", gdrive.ErrNotAccessible, gerrors.ErrNotAccessible},
		{"ErrConflict", gdrive.ErrConflict, gerrors.ErrConflict},
		{"ErrInvalidArgument", gdrive.ErrInvalidArgument, gerrors.ErrInvalidArgument},
		{"ErrAPIError", gdrive.ErrAPIError, gerrors.ErrAPIError},
		{"ErrIOError", gdrive.ErrIOError, gerrors.ErrIOError},
	}

	for _, c := range cases {
		c := c
		t.Run(c.name, func(t *testing.T) {
			if !errors.Is(c.got, c.want) {
				t.Fatalf("errors.Is(%v, %v) = false, want true", c.got, c.want)
			}
		})
	}
}
