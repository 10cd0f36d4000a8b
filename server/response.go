package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/Jumpaku/go-gdrive"
	"github.com/Jumpaku/go-gdrive/internal/logging"
	"go.uber.org/zap"
)

// errorPayload defines the standardized error response body.
type errorPayload struct {
	RequestID string        `json:"request_id"`
	Error     errorEnvelope `json:"error"`
}

type errorEnvelope struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type fileResponse struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Parents     []string `json:"parents"`
	Size        int64    `json:"size"`
	MimeType    string   `json:"mime_type"`
	WebViewLink string   `json:"web_view_link,omitempty"`
	IsFolder    bool     `json:"is_folder"`
}

type listResponse struct {
	Files         []fileResponse `json:"files"`
	NextPageToken string         `json:"next_page_token,omitempty"`
}

func newFileResponse(f gdrive.RemoteFile) fileResponse {
	parents := make([]string, 0, len(f.Parents))
	for _, p := range f.Parents {
		parents = append(parents, string(p))
	}
	return fileResponse{
		ID:          string(f.ID),
		Name:        f.Name,
		Parents:     parents,
		Size:        f.Size,
		MimeType:    f.MimeType,
		WebViewLink: f.WebViewLink,
		IsFolder:    f.IsFolder(),
	}
}

func newListResponse(res gdrive.PaginatedResult) listResponse {
	files := make([]fileResponse, 0, len(res.Files))
	for _, f := range res.Files {
		files = append(files, newFileResponse(f))
	}
	return listResponse{Files: files, NextPageToken: res.NextPageToken}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError writes a standardized JSON error response.
// Messages of provider and internal failures are replaced by safe ones and only logged.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := gdrive.HTTPStatus(err)
	code, message := "INTERNAL_ERROR", "internal server error"
	switch {
	case errors.Is(err, gdrive.ErrNotFound):
		code, message = "NOT_FOUND", err.Error()
	case errors.Is(err, gdrive.ErrNotAccessible):
		code, message = "NOT_ACCESSIBLE", err.Error()
	case errors.Is(err, gdrive.ErrConflict):
		code, message = "CONFLICT", err.Error()
	case errors.Is(err, gdrive.ErrInvalidArgument):
		code, message = "INVALID_ARGUMENT", err.Error()
	case errors.Is(err, gdrive.ErrAPIError):
		code, message = "UPSTREAM_ERROR", "storage provider request failed"
	}
	if status >= http.StatusInternalServerError {
		logging.FromContext(r.Context()).Error("request failed", zap.Int("status", status), zap.Error(err))
	}
	writeErrorCode(w, r, status, code, message)
}

func writeErrorCode(w http.ResponseWriter, r *http.Request, status int, code, message string) {
	writeJSON(w, status, errorPayload{
		RequestID: requestIDFromContext(r.Context()),
		Error:     errorEnvelope{Code: code, Message: message},
	})
}
