// Package server provides the HTTP transport of the gdrive facade.
package server

import (
	"net/http"

	"github.com/Jumpaku/go-gdrive"
	"github.com/Jumpaku/go-gdrive/internal/metrics"
	"go.uber.org/zap"
)

// DefaultMaxUploadSize bounds the multipart body of POST /files when Options.MaxUploadSize is not set.
const DefaultMaxUploadSize int64 = 512 << 20

// multipartMemory is the part of an upload kept in memory before spilling to temporary files.
const multipartMemory int64 = 32 << 20

// rootFolderAlias selects the default folder in GET /folders/{id}/files.
const rootFolderAlias = "root"

// Options holds the optional settings of a Server.
type Options struct {
	Logger        *zap.Logger
	MaxUploadSize int64
}

// Server is the HTTP server.
type Server struct {
	drive         gdrive.Drive
	logger        *zap.Logger
	maxUploadSize int64
}

// New creates a server exposing d.
func New(d gdrive.Drive, opts Options) *Server {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	maxUploadSize := opts.MaxUploadSize
	if maxUploadSize <= 0 {
		maxUploadSize = DefaultMaxUploadSize
	}
	return &Server{
		drive:         d,
		logger:        logger.Named("server"),
		maxUploadSize: maxUploadSize,
	}
}

// Handler returns the HTTP handler with request id, logging and metrics middleware.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /healthz", s.handleHealth)
	mux.Handle("GET /metrics", metrics.Handler())

	mux.HandleFunc("POST /files", s.handleUpload)
	mux.HandleFunc("GET /files/{id}", s.handleGetFile)
	mux.HandleFunc("PATCH /files/{id}", s.handleRename)
	mux.HandleFunc("DELETE /files/{id}", s.handleDelete)
	mux.HandleFunc("PUT /files/{id}/public", s.handleMakePublic)
	mux.HandleFunc("DELETE /files/{id}/public", s.handleMakePrivate)

	mux.HandleFunc("POST /folders", s.handleMkdir)
	mux.HandleFunc("GET /folders/{id}/files", s.handleListFiles)
	mux.HandleFunc("GET /search", s.handleSearch)

	return requestID(s.logRequests(metrics.Middleware(mux)))
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
