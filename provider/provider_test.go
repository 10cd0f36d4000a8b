package provider_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Jumpaku/go-gdrive"
	gerrors "github.com/Jumpaku/go-gdrive/errors"
	"github.com/Jumpaku/go-gdrive/provider"
	"github.com/Jumpaku/go-gdrive/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/option"
)

func TestRegistered(t *testing.T) {
	assert.Contains(t, storage.Drivers(), provider.DriverName)
}

func TestOpen_InvalidCredentials(t *testing.T) {
	cases := []struct {
		name  string
		creds []byte
	}{
		{"missing", nil},
		{"not json", []byte("not json")},
		{"not a service account", []byte(`{"type":"authorized_user"}`)},
	}
	for _, c := range cases {
		c := c
		t.Run(c.name, func(t *testing.T) {
			_, err := storage.Open(context.Background(), provider.DriverName, storage.Config{
				FolderID:    "folder-1",
				Credentials: c.creds,
			})
			assert.ErrorIs(t, err, gerrors.ErrConfig)
		})
	}
}

func TestNewWithClient_MissingFolder(t *testing.T) {
	_, err := provider.NewWithClient(context.Background(), http.DefaultClient, storage.Config{})
	assert.ErrorIs(t, err, gerrors.ErrConfig)
}

func TestNewWithClient_ListsRootFolder(t *testing.T) {
	var gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query().Get("q")
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"files": []map[string]any{{"id": "f1", "name": "a.txt", "parents": []string{"folder-1"}}},
		})
	}))
	defer srv.Close()

	d, err := provider.NewWithClient(context.Background(), srv.Client(), storage.Config{FolderID: "folder-1"},
		option.WithEndpoint(srv.URL+"/"))
	require.NoError(t, err)

	res, err := d.ListFiles(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []gdrive.RemoteFile{{ID: "f1", Name: "a.txt", Parents: []gdrive.FileID{"folder-1"}}}, res.Files)
	assert.Equal(t, "'folder-1' in parents and trashed = false", gotQuery)
}
