package gdrive

import (
	"io"
	"mime/multipart"
	"slices"
	"strings"

	"google.golang.org/api/drive/v3"
)

const (
	mimeTypeGoogleAppFolder = "application/vnd.google-apps.folder"
	mimeTypePrefixGoogleApp = "application/vnd.google-apps."
	mimeTypeOctetStream     = "application/octet-stream"
)

// FileID identifies a file or folder in Google Drive.
type FileID string

// RemoteFile is a read copy of a Google Drive file or folder.
// Size is zero when the provider omits it, which is always the case for folders.
type RemoteFile struct {
	ID          FileID
	Name        string
	Parents     []FileID
	Size        int64
	MimeType    string
	WebViewLink string
}

func (f RemoteFile) IsFolder() bool {
	return f.MimeType == mimeTypeGoogleAppFolder
}

func (f RemoteFile) IsAppFile() bool {
	return strings.HasPrefix(f.MimeType, mimeTypePrefixGoogleApp)
}

// HasParent reports whether parentID is one of the containers of the file.
func (f RemoteFile) HasParent(parentID FileID) bool {
	return slices.Contains(f.Parents, parentID)
}

// PaginatedResult is one page of a search or listing.
// An empty NextPageToken means there are no more pages.
type PaginatedResult struct {
	Files         []RemoteFile
	NextPageToken string
}

func (r PaginatedResult) HasNextPage() bool {
	return r.NextPageToken != ""
}

// Payload is the content of an upload together with its original file name.
type Payload struct {
	Name    string
	Content io.Reader
}

// PayloadFromFileHeader opens an uploaded multipart file.
// The returned closer must be called once the upload has finished.
func PayloadFromFileHeader(fh *multipart.FileHeader) (payload Payload, closer io.Closer, err error) {
	f, err := fh.Open()
	if err != nil {
		return Payload{}, nil, err
	}
	return Payload{Name: fh.Filename, Content: f}, f, nil
}

func newRemoteFile(f *drive.File) RemoteFile {
	parents := make([]FileID, 0, len(f.Parents))
	for _, p := range f.Parents {
		parents = append(parents, FileID(p))
	}
	return RemoteFile{
		ID:          FileID(f.Id),
		Name:        f.Name,
		Parents:     parents,
		Size:        f.Size,
		MimeType:    f.MimeType,
		WebViewLink: f.WebViewLink,
	}
}
