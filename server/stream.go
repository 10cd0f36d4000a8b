package server

import (
	"errors"
	"net/http"

	"github.com/Jumpaku/go-gdrive"
	"github.com/Jumpaku/go-gdrive/internal/logging"
	"github.com/Jumpaku/go-gdrive/internal/metrics"
	"go.uber.org/zap"
)

// handleGetFile handles GET /files/{id}?mode=inline|download.
// If-None-Match and Range are forwarded to the facade.
func (s *Server) handleGetFile(w http.ResponseWriter, r *http.Request) {
	mode, err := gdrive.ParseStreamMode(r.URL.Query().Get("mode"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	fileID := gdrive.FileID(r.PathValue("id"))
	res, err := s.drive.Get(r.Context(), fileID, mode, gdrive.StreamRequestFromHTTP(r))
	metrics.RecordOperation("get", err)
	if err != nil {
		writeError(w, r, err)
		return
	}

	for key, values := range res.Header() {
		w.Header()[key] = values
	}
	switch res := res.(type) {
	case gdrive.NotModified:
		w.WriteHeader(res.StatusCode())
		metrics.RecordStream("not_modified", 0)
	case *gdrive.Stream:
		s.writeStream(w, r, fileID, res)
	}
}

// writeStream copies the stream to w, flushing after every chunk, until the client goes away.
func (s *Server) writeStream(w http.ResponseWriter, r *http.Request, fileID gdrive.FileID, stream *gdrive.Stream) {
	w.WriteHeader(stream.StatusCode())
	rc := http.NewResponseController(w)

	var written int64
	err := stream.Send(r.Context(), func(chunk []byte) error {
		n, err := w.Write(chunk)
		written += int64(n)
		if err != nil {
			return err
		}
		if err := rc.Flush(); err != nil && !errors.Is(err, http.ErrNotSupported) {
			return err
		}
		return nil
	})
	if err != nil {
		logging.FromContext(r.Context()).Warn("stream aborted",
			zap.String("file_id", string(fileID)), zap.Int64("bytes", written), zap.Error(err))
		metrics.RecordStream("aborted", written)
		return
	}
	metrics.RecordStream("complete", written)
}
