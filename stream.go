package gdrive

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"net/http"
	"path"
	"strconv"
	"strings"
	"sync"

	gerrors "github.com/Jumpaku/go-gdrive/errors"
	"go.uber.org/zap"
	"google.golang.org/api/googleapi"
)

// ChunkSize is the maximum size of a chunk produced by Stream.Send.
const ChunkSize = 8 * 1024

const cacheDirectives = "public, max-age=31536000, immutable"

// StreamRequest carries the conditional and partial request headers of a client.
type StreamRequest struct {
	// IfNoneMatch is a validator previously returned as ETag.
	IfNoneMatch string
	// Range is forwarded verbatim to the provider, e.g. "bytes=0-1023".
	Range string
}

// StreamRequestFromHTTP extracts the If-None-Match and Range headers of r.
func StreamRequestFromHTTP(r *http.Request) StreamRequest {
	return StreamRequest{
		IfNoneMatch: r.Header.Get("If-None-Match"),
		Range:       r.Header.Get("Range"),
	}
}

// StreamResult is the result of Get: either *Stream or NotModified.
// This is a sealed interface; callers switch on the concrete type.
type StreamResult interface {
	StatusCode() int
	Header() http.Header
	doNotImplement(StreamResult)
}

// NotModified is returned when the client validator matches the file. It has no body.
type NotModified struct {
	header http.Header
}

func (NotModified) StatusCode() int {
	return http.StatusNotModified
}

func (r NotModified) Header() http.Header {
	return r.header
}

func (NotModified) doNotImplement(StreamResult) {}

// Stream is a file content response whose body is produced chunk by chunk.
// The upstream body is released by Send or Close, whichever comes first.
type Stream struct {
	status    int
	header    http.Header
	body      io.ReadCloser
	closeOnce sync.Once
	closeErr  error
}

func (s *Stream) StatusCode() int {
	return s.status
}

func (s *Stream) Header() http.Header {
	return s.header
}

func (*Stream) doNotImplement(StreamResult) {}

// Send reads the content and passes it to sink in chunks of at most ChunkSize bytes.
// The chunk is only valid until sink returns. Send stops when ctx is done or sink fails,
// and closes the upstream body on every return.
func (s *Stream) Send(ctx context.Context, sink func(chunk []byte) error) (err error) {
	defer func() {
		err = errors.Join(err, s.Close())
	}()

	buf := make([]byte, ChunkSize)
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		n, readErr := s.body.Read(buf)
		if n > 0 {
			if err := sink(buf[:n]); err != nil {
				return err
			}
		}
		if errors.Is(readErr, io.EOF) {
			return nil
		}
		if readErr != nil {
			return gerrors.NewIOError("failed to read file content", readErr)
		}
	}
}

// Close releases the upstream body. It is safe to call more than once.
func (s *Stream) Close() error {
	s.closeOnce.Do(func() {
		if err := s.body.Close(); err != nil {
			s.closeErr = gerrors.NewIOError("failed to close file body", err)
		}
	})
	return s.closeErr
}

// Get streams the content of the file.
// It fails with ErrInvalidArgument for an unknown mode, ErrNotFound when the file does not exist
// and ErrNotAccessible for any other provider error.
func (a *Adapter) Get(ctx context.Context, fileID FileID, mode StreamMode, req StreamRequest) (StreamResult, error) {
	if !mode.Valid() {
		return nil, gerrors.NewInvalidArgumentError(fmt.Sprintf("invalid streaming mode: %q", mode))
	}

	a.logger.Debug("fetching file metadata", zap.String("file_id", string(fileID)))
	meta, err := a.client.GetFile(ctx, string(fileID), streamFileFields)
	if err != nil {
		return nil, readError(fileID, err)
	}

	etag := makeETag(fileID, meta.MimeType, meta.Size)
	if isNotModified(req.IfNoneMatch, etag) {
		return NotModified{header: notModifiedHeader(etag)}, nil
	}

	a.logger.Debug("downloading file", zap.String("file_id", string(fileID)), zap.String("range", req.Range))
	resp, err := a.client.DownloadFile(ctx, string(fileID), req.Range)
	if err != nil {
		return nil, readError(fileID, err)
	}

	status := http.StatusOK
	if req.Range != "" {
		status = http.StatusPartialContent
	}
	return &Stream{
		status: status,
		header: streamHeader(meta.Name, meta.MimeType, mode, resp.Header, etag),
		body:   resp.Body,
	}, nil
}

func readError(fileID FileID, err error) error {
	var gErr *googleapi.Error
	if errors.As(err, &gErr) && gErr.Code == http.StatusNotFound {
		return gerrors.NewNotFoundError(fmt.Sprintf("file '%s'", fileID))
	}
	return gerrors.NewNotAccessibleError(fmt.Sprintf("file '%s'", fileID))
}

func makeETag(fileID FileID, mime string, size int64) string {
	sum := sha1.Sum([]byte(string(fileID) + "|" + mime + "|" + strconv.FormatInt(size, 10)))
	return `"` + hex.EncodeToString(sum[:]) + `"`
}

func isNotModified(clientETag, etag string) bool {
	clientETag = strings.TrimSpace(clientETag)
	return clientETag != "" && clientETag == etag
}

func notModifiedHeader(etag string) http.Header {
	h := http.Header{}
	h.Set("ETag", etag)
	h.Set("Cache-Control", cacheDirectives)
	h.Set("CDN-Cache-Control", cacheDirectives)
	return h
}

func streamHeader(name, mime string, mode StreamMode, upstream http.Header, etag string) http.Header {
	h := notModifiedHeader(etag)
	h.Set("Vary", "Accept-Encoding")
	h.Set("Accept-Ranges", "bytes")
	for _, key := range []string{"Content-Range", "Content-Length"} {
		if v := upstream.Get(key); v != "" {
			h.Set(key, v)
		}
	}

	switch mode {
	case ModeDownload:
		h.Set("Content-Type", mimeTypeOctetStream)
		h.Set("Content-Disposition", `attachment; filename="`+quoteEscaper.Replace(downloadFileName(name, mime))+`"`)
	default:
		if mime == "" {
			mime = mimeTypeOctetStream
		}
		h.Set("Content-Type", mime)
		h.Set("Content-Disposition", "inline")
	}
	return h
}

var quoteEscaper = strings.NewReplacer(`\`, `\\`, `"`, `\"`)

// downloadFileName appends the mime subtype as an extension when name has none and the subtype is a plain word, e.g. "pdf".
func downloadFileName(name, mime string) string {
	if path.Ext(name) != "" {
		return name
	}
	_, subtype, ok := strings.Cut(mime, "/")
	if !ok {
		return name
	}
	subtype, _, _ = strings.Cut(subtype, ";")
	subtype = strings.ToLower(strings.TrimSpace(subtype))
	if subtype == "" || strings.IndexFunc(subtype, func(r rune) bool {
		return !('a' <= r && r <= 'z' || '0' <= r && r <= '9')
	}) >= 0 {
		return name
	}
	return name + "." + subtype
}
