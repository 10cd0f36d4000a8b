package gdrive

import (
	"errors"
	"net/http"

	gerrors "github.com/Jumpaku/go-gdrive/errors"
)

var (
	ErrNotFound        = gerrors.ErrNotFound
	ErrNotAccessible   = gerrors.ErrNotAccessible
	ErrConflict        = gerrors.ErrConflict
	ErrInvalidArgument = gerrors.ErrInvalidArgument
	ErrAPIError        = gerrors.ErrAPIError
	ErrIOError         = gerrors.ErrIOError
)

// HTTPStatus maps an error returned by this package to the HTTP status code a web-facing caller should answer with.
func HTTPStatus(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrNotAccessible):
		return http.StatusForbidden
	case errors.Is(err, ErrConflict), errors.Is(err, ErrInvalidArgument):
		return http.StatusBadRequest
	case errors.Is(err, ErrAPIError):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
