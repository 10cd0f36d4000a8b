package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/Jumpaku/go-gdrive"
	gerrors "github.com/Jumpaku/go-gdrive/errors"
	"github.com/Jumpaku/go-gdrive/internal/metrics"
)

type renameRequest struct {
	Name     string `json:"name"`
	ParentID string `json:"parent_id"`
	Strict   *bool  `json:"strict"`
}

type mkdirRequest struct {
	Name     string `json:"name"`
	ParentID string `json:"parent_id"`
	Strict   *bool  `json:"strict"`
	Public   bool   `json:"public"`
}

// handleUpload handles POST /files with a multipart body holding "file" and the optional
// fields "folder_id", "name", "strict" and "public".
func (s *Server) handleUpload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, s.maxUploadSize)
	if err := r.ParseMultipartForm(multipartMemory); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeErrorCode(w, r, http.StatusRequestEntityTooLarge, "PAYLOAD_TOO_LARGE",
				fmt.Sprintf("upload exceeds %d bytes", tooLarge.Limit))
			return
		}
		writeError(w, r, gerrors.NewInvalidArgumentError("invalid multipart form"))
		return
	}
	defer func() { _ = r.MultipartForm.RemoveAll() }()

	headers := r.MultipartForm.File["file"]
	if len(headers) == 0 {
		writeError(w, r, gerrors.NewInvalidArgumentError("form field 'file' is required"))
		return
	}
	strict, err := parseBool("strict", r.FormValue("strict"), true)
	if err != nil {
		writeError(w, r, err)
		return
	}
	public, err := parseBool("public", r.FormValue("public"), false)
	if err != nil {
		writeError(w, r, err)
		return
	}

	payload, closer, err := gdrive.PayloadFromFileHeader(headers[0])
	if err != nil {
		writeError(w, r, gerrors.NewIOError("failed to open uploaded file", err))
		return
	}
	defer closer.Close()

	opts := []gdrive.Option{gdrive.Strict(strict), gdrive.Public(public)}
	opts = appendFolder(opts, r.FormValue("folder_id"))
	if name := r.FormValue("name"); name != "" {
		opts = append(opts, gdrive.WithFileName(name))
	}

	file, err := s.drive.Put(r.Context(), payload, opts...)
	metrics.RecordOperation("put", err)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, newFileResponse(file))
}

// handleRename handles PATCH /files/{id}.
func (s *Server) handleRename(w http.ResponseWriter, r *http.Request) {
	var req renameRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	if req.Name == "" {
		writeError(w, r, gerrors.NewInvalidArgumentError("name is required"))
		return
	}

	opts := appendFolder(nil, req.ParentID)
	if req.Strict != nil {
		opts = append(opts, gdrive.Strict(*req.Strict))
	}
	file, err := s.drive.Rename(r.Context(), gdrive.FileID(r.PathValue("id")), req.Name, opts...)
	metrics.RecordOperation("rename", err)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, newFileResponse(file))
}

// handleDelete handles DELETE /files/{id}.
func (s *Server) handleDelete(w http.ResponseWriter, r *http.Request) {
	deleted, err := s.drive.Delete(r.Context(), gdrive.FileID(r.PathValue("id")))
	metrics.RecordOperation("delete", err)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"deleted": deleted})
}

// handleMakePublic handles PUT /files/{id}/public.
func (s *Server) handleMakePublic(w http.ResponseWriter, r *http.Request) {
	ok, err := s.drive.MakeFilePublic(r.Context(), gdrive.FileID(r.PathValue("id")))
	metrics.RecordOperation("make_public", err)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"updated": ok})
}

// handleMakePrivate handles DELETE /files/{id}/public.
func (s *Server) handleMakePrivate(w http.ResponseWriter, r *http.Request) {
	ok, err := s.drive.MakeFilePrivate(r.Context(), gdrive.FileID(r.PathValue("id")))
	metrics.RecordOperation("make_private", err)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"updated": ok})
}

// handleMkdir handles POST /folders.
func (s *Server) handleMkdir(w http.ResponseWriter, r *http.Request) {
	var req mkdirRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	if req.Name == "" {
		writeError(w, r, gerrors.NewInvalidArgumentError("name is required"))
		return
	}

	opts := appendFolder([]gdrive.Option{gdrive.Public(req.Public)}, req.ParentID)
	if req.Strict != nil {
		opts = append(opts, gdrive.Strict(*req.Strict))
	}
	dir, err := s.drive.Mkdir(r.Context(), req.Name, opts...)
	metrics.RecordOperation("mkdir", err)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, newFileResponse(dir))
}

// handleListFiles handles GET /folders/{id}/files. The id "root" selects the default folder.
func (s *Server) handleListFiles(w http.ResponseWriter, r *http.Request) {
	opts, err := pageOptions(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	if id := r.PathValue("id"); id != rootFolderAlias {
		opts = appendFolder(opts, id)
	}
	res, err := s.drive.ListFiles(r.Context(), opts...)
	metrics.RecordOperation("list", err)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, newListResponse(res))
}

// handleSearch handles GET /search?name=...&parent_id=...
func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	name := q.Get("name")
	if name == "" {
		writeError(w, r, gerrors.NewInvalidArgumentError("query parameter 'name' is required"))
		return
	}
	opts, err := pageOptions(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	opts = appendFolder(opts, q.Get("parent_id"))
	res, err := s.drive.Find(r.Context(), name, opts...)
	metrics.RecordOperation("find", err)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, newListResponse(res))
}

func appendFolder(opts []gdrive.Option, folderID string) []gdrive.Option {
	if folderID == "" {
		return opts
	}
	return append(opts, gdrive.InFolder(gdrive.FileID(folderID)))
}

func pageOptions(r *http.Request) ([]gdrive.Option, error) {
	q := r.URL.Query()
	var opts []gdrive.Option
	if v := q.Get("page_size"); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil || n < 0 {
			return nil, gerrors.NewInvalidArgumentError(fmt.Sprintf("invalid page_size: %q", v))
		}
		opts = append(opts, gdrive.PageSize(n))
	}
	if v := q.Get("page_token"); v != "" {
		opts = append(opts, gdrive.PageToken(v))
	}
	return opts, nil
}

func parseBool(field, value string, fallback bool) (bool, error) {
	if value == "" {
		return fallback, nil
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		return false, gerrors.NewInvalidArgumentError(fmt.Sprintf("invalid %s: %q", field, value))
	}
	return b, nil
}

func decodeJSON(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return gerrors.NewInvalidArgumentError("invalid JSON body")
	}
	return nil
}
