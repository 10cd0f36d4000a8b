package gdrive_test

import (
	"context"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/Jumpaku/go-gdrive"
	"github.com/Jumpaku/go-gdrive/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/drive/v3"
)

func TestGoogleDrive_Delegates(t *testing.T) {
	ctx := context.Background()
	client := &mocks.MockRemoteClient{}
	defer client.AssertExpectations(t)

	var d gdrive.Drive = gdrive.NewFromAdapter(gdrive.NewAdapter(client, gdrive.AdapterConfig{RootFolderID: rootID}))

	client.On("CreateFile", mock.Anything, mock.MatchedBy(func(f *drive.File) bool { return f.MimeType == "" }), mock.Anything).
		Return(&drive.File{Id: "file-1", Name: "a.txt", Parents: []string{string(rootID)}}, nil).Once()
	client.On("CreateFile", mock.Anything, mock.MatchedBy(func(f *drive.File) bool { return f.MimeType != "" }), nil).
		Return(&drive.File{Id: "dir-1", Name: "docs", MimeType: "application/vnd.google-apps.folder"}, nil).Once()
	client.On("ListFiles", mock.Anything, gdrive.FindByNameQuery("a.txt", rootID), gdrive.DefaultPageSize, "").
		Return(&drive.FileList{Files: []*drive.File{{Id: "file-1", Parents: []string{string(rootID)}}}}, nil).Once()
	client.On("ListFiles", mock.Anything, gdrive.ListChildrenQuery(rootID), gdrive.DefaultPageSize, "").
		Return(&drive.FileList{Files: []*drive.File{{Id: "file-1", Parents: []string{string(rootID)}}}}, nil).Once()
	client.On("UpdateFile", mock.Anything, "file-1", mock.Anything).
		Return(&drive.File{Id: "file-1", Name: "b.txt"}, nil).Once()
	client.On("GetFile", mock.Anything, "file-1", gdrive.StreamFileFields).
		Return(&drive.File{Name: "b.txt", MimeType: "text/plain", Size: 1}, nil).Once()
	client.On("DownloadFile", mock.Anything, "file-1", "").
		Return(&http.Response{Header: http.Header{}, Body: io.NopCloser(strings.NewReader("x"))}, nil).Once()
	client.On("CreatePermission", mock.Anything, "file-1", mock.Anything).
		Return(&drive.Permission{}, nil).Once()
	client.On("DeletePermission", mock.Anything, "file-1", gdrive.PermissionIDAnyoneWithLink).
		Return(http.StatusNoContent, nil).Once()
	client.On("DeleteFile", mock.Anything, "file-1").Return([]byte(nil), nil).Once()

	put, err := d.Put(ctx, gdrive.Payload{Name: "a.txt", Content: strings.NewReader("x")}, gdrive.Strict(false))
	require.NoError(t, err)
	assert.Equal(t, gdrive.FileID("file-1"), put.ID)

	dir, err := d.Mkdir(ctx, "docs", gdrive.Strict(false))
	require.NoError(t, err)
	assert.True(t, dir.IsFolder())

	found, err := d.Find(ctx, "a.txt")
	require.NoError(t, err)
	assert.Len(t, found.Files, 1)

	listed, err := d.ListFiles(ctx)
	require.NoError(t, err)
	assert.Len(t, listed.Files, 1)

	renamed, err := d.Rename(ctx, "file-1", "b.txt", gdrive.Strict(false))
	require.NoError(t, err)
	assert.Equal(t, "b.txt", renamed.Name)

	res, err := d.Get(ctx, "file-1", gdrive.ModeInline, gdrive.StreamRequest{})
	require.NoError(t, err)
	require.NoError(t, res.(*gdrive.Stream).Close())

	ok, err := d.MakeFilePublic(ctx, "file-1")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = d.MakeFilePrivate(ctx, "file-1")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = d.Delete(ctx, "file-1")
	require.NoError(t, err)
	assert.True(t, ok)
}
