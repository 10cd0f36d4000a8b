package gdrive_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"mime"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Jumpaku/go-gdrive"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/drive/v3"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
)

// fakeDrive serves the subset of the Drive v3 REST API used by the remote client.
type fakeDrive struct {
	t        *testing.T
	uploaded struct {
		name    string
		parents []string
		content string
	}
	lastQuery  map[string]string
	lastRange  string
	lastUpdate map[string]any
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeDriveError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]any{"error": map[string]any{"code": status, "message": msg}})
}

func (f *fakeDrive) handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /files", func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		f.lastQuery = map[string]string{
			"q":                         q.Get("q"),
			"pageSize":                  q.Get("pageSize"),
			"pageToken":                 q.Get("pageToken"),
			"spaces":                    q.Get("spaces"),
			"supportsAllDrives":         q.Get("supportsAllDrives"),
			"includeItemsFromAllDrives": q.Get("includeItemsFromAllDrives"),
		}
		writeJSON(w, http.StatusOK, map[string]any{
			"nextPageToken": "tok-2",
			"files": []map[string]any{
				{"id": "f1", "name": "a.txt", "parents": []string{"folder-1"}, "size": "3"},
			},
		})
	})
	mux.HandleFunc("GET /files/{id}", func(w http.ResponseWriter, r *http.Request) {
		if r.PathValue("id") == "missing" {
			writeDriveError(w, http.StatusNotFound, "File not found")
			return
		}
		if r.URL.Query().Get("alt") == "media" {
			f.lastRange = r.Header.Get("Range")
			if f.lastRange != "" {
				w.Header().Set("Content-Range", "bytes 0-1/3")
				w.WriteHeader(http.StatusPartialContent)
				_, _ = io.WriteString(w, "ab")
				return
			}
			_, _ = io.WriteString(w, "abc")
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{
			"id":       r.PathValue("id"),
			"name":     "a.txt",
			"mimeType": "text/plain",
			"size":     "3",
		})
	})
	mux.HandleFunc("PATCH /files/{id}", func(w http.ResponseWriter, r *http.Request) {
		f.lastUpdate = map[string]any{}
		_ = json.NewDecoder(r.Body).Decode(&f.lastUpdate)
		writeJSON(w, http.StatusOK, map[string]any{"id": r.PathValue("id"), "name": f.lastUpdate["name"]})
	})
	mux.HandleFunc("DELETE /files/{id}", func(w http.ResponseWriter, r *http.Request) {
		switch r.PathValue("id") {
		case "gone":
			writeDriveError(w, http.StatusNotFound, "File not found")
		case "odd":
			writeJSON(w, http.StatusOK, map[string]any{"kind": "drive#file"})
		default:
			w.WriteHeader(http.StatusNoContent)
		}
	})
	mux.HandleFunc("POST /files/{id}/permissions", func(w http.ResponseWriter, r *http.Request) {
		var perm map[string]any
		_ = json.NewDecoder(r.Body).Decode(&perm)
		writeJSON(w, http.StatusOK, map[string]any{"id": "anyoneWithLink", "type": perm["type"], "role": perm["role"]})
	})
	mux.HandleFunc("DELETE /files/{id}/permissions/{permissionId}", func(w http.ResponseWriter, r *http.Request) {
		if r.PathValue("permissionId") != gdrive.PermissionIDAnyoneWithLink {
			writeDriveError(w, http.StatusNotFound, "Permission not found")
			return
		}
		w.WriteHeader(http.StatusNoContent)
	})
	// Creation without media goes to /files and with media to the upload endpoint.
	mux.HandleFunc("POST /", func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasSuffix(r.URL.Path, "/files") {
			http.NotFound(w, r)
			return
		}
		meta := map[string]any{}
		mediaType, params, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
		if strings.HasPrefix(mediaType, "multipart/") {
			mr := multipart.NewReader(r.Body, params["boundary"])
			part, err := mr.NextPart()
			if !assert.NoError(f.t, err) || !assert.NoError(f.t, json.NewDecoder(part).Decode(&meta)) {
				return
			}
			part, err = mr.NextPart()
			if !assert.NoError(f.t, err) {
				return
			}
			content, err := io.ReadAll(part)
			if !assert.NoError(f.t, err) {
				return
			}
			f.uploaded.content = string(content)
		} else if !assert.NoError(f.t, json.NewDecoder(r.Body).Decode(&meta)) {
			return
		}
		name, _ := meta["name"].(string)
		f.uploaded.name = name
		f.uploaded.parents = nil
		if parents, ok := meta["parents"].([]any); ok {
			for _, p := range parents {
				f.uploaded.parents = append(f.uploaded.parents, p.(string))
			}
		}
		writeJSON(w, http.StatusOK, map[string]any{
			"id":       "new-1",
			"name":     name,
			"mimeType": meta["mimeType"],
			"parents":  meta["parents"],
		})
	})
	return mux
}

func newFakeRemoteClient(t *testing.T) (gdrive.RemoteClient, *fakeDrive) {
	t.Helper()
	fake := &fakeDrive{t: t}
	srv := httptest.NewServer(fake.handler())
	t.Cleanup(srv.Close)

	svc, err := drive.NewService(context.Background(),
		option.WithEndpoint(srv.URL+"/"),
		option.WithHTTPClient(srv.Client()),
	)
	require.NoError(t, err)
	return gdrive.NewRemoteClient(svc, srv.Client()), fake
}

func TestRemoteClient_CreateFile(t *testing.T) {
	ctx := context.Background()

	t.Run("media upload", func(t *testing.T) {
		client, fake := newFakeRemoteClient(t)
		f, err := client.CreateFile(ctx, &drive.File{Name: "a.txt", Parents: []string{"folder-1"}}, strings.NewReader("hello"))
		require.NoError(t, err)
		assert.Equal(t, "new-1", f.Id)
		assert.Equal(t, "a.txt", fake.uploaded.name)
		assert.Equal(t, []string{"folder-1"}, fake.uploaded.parents)
		assert.Equal(t, "hello", fake.uploaded.content)
	})

	t.Run("folder", func(t *testing.T) {
		client, fake := newFakeRemoteClient(t)
		f, err := client.CreateFile(ctx, &drive.File{
			Name:     "docs",
			MimeType: "application/vnd.google-apps.folder",
			Parents:  []string{"folder-1"},
		}, nil)
		require.NoError(t, err)
		assert.Equal(t, "application/vnd.google-apps.folder", f.MimeType)
		assert.Equal(t, "docs", fake.uploaded.name)
		assert.Empty(t, fake.uploaded.content)
	})
}

func TestRemoteClient_GetFile(t *testing.T) {
	client, _ := newFakeRemoteClient(t)

	f, err := client.GetFile(context.Background(), "file-1", gdrive.StreamFileFields)
	require.NoError(t, err)
	assert.Equal(t, int64(3), f.Size)
	assert.Equal(t, "text/plain", f.MimeType)

	_, err = client.GetFile(context.Background(), "missing", gdrive.StreamFileFields)
	var gErr *googleapi.Error
	require.True(t, errors.As(err, &gErr))
	assert.Equal(t, http.StatusNotFound, gErr.Code)
}

func TestRemoteClient_DownloadFile(t *testing.T) {
	client, fake := newFakeRemoteClient(t)

	resp, err := client.DownloadFile(context.Background(), "file-1", "bytes=0-1")
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, "ab", string(body))
	assert.Equal(t, http.StatusPartialContent, resp.StatusCode)
	assert.Equal(t, "bytes 0-1/3", resp.Header.Get("Content-Range"))
	assert.Equal(t, "bytes=0-1", fake.lastRange)
}

func TestRemoteClient_UpdateFile(t *testing.T) {
	client, fake := newFakeRemoteClient(t)

	f, err := client.UpdateFile(context.Background(), "file-1", &drive.File{Name: "b.txt"})
	require.NoError(t, err)
	assert.Equal(t, "b.txt", f.Name)
	assert.Equal(t, map[string]any{"name": "b.txt"}, fake.lastUpdate)
}

func TestRemoteClient_DeleteFile(t *testing.T) {
	client, _ := newFakeRemoteClient(t)
	ctx := context.Background()

	body, err := client.DeleteFile(ctx, "file-1")
	require.NoError(t, err)
	assert.Empty(t, body)

	body, err = client.DeleteFile(ctx, "odd")
	require.NoError(t, err)
	assert.NotEmpty(t, body)

	_, err = client.DeleteFile(ctx, "gone")
	var gErr *googleapi.Error
	require.True(t, errors.As(err, &gErr))
	assert.Equal(t, http.StatusNotFound, gErr.Code)
}

func TestRemoteClient_Permissions(t *testing.T) {
	client, _ := newFakeRemoteClient(t)
	ctx := context.Background()

	perm, err := client.CreatePermission(ctx, "file-1", &drive.Permission{Type: "anyone", Role: "reader"})
	require.NoError(t, err)
	assert.Equal(t, "anyone", perm.Type)
	assert.Equal(t, "reader", perm.Role)

	status, err := client.DeletePermission(ctx, "file-1", gdrive.PermissionIDAnyoneWithLink)
	require.NoError(t, err)
	assert.Equal(t, http.StatusNoContent, status)

	_, err = client.DeletePermission(ctx, "file-1", "someone-else")
	assert.Error(t, err)
}

func TestRemoteClient_ListFiles(t *testing.T) {
	client, fake := newFakeRemoteClient(t)

	list, err := client.ListFiles(context.Background(), "'folder-1' in parents and trashed = false", 2, "tok-1")
	require.NoError(t, err)
	require.Len(t, list.Files, 1)
	assert.Equal(t, "tok-2", list.NextPageToken)
	assert.Equal(t, []string{"folder-1"}, list.Files[0].Parents)
	assert.Equal(t, map[string]string{
		"q":                         "'folder-1' in parents and trashed = false",
		"pageSize":                  "2",
		"pageToken":                 "tok-1",
		"spaces":                    "drive",
		"supportsAllDrives":         "true",
		"includeItemsFromAllDrives": "true",
	}, fake.lastQuery)
}
