// Package gdrive exposes Google Drive file operations through a narrow facade.
//
// The facade uploads, streams, renames, lists, searches and deletes files in a Drive folder,
// and toggles the "anyone with the link" read permission on them.
// Build it with New from an Adapter, or open it by name through the storage package.
package gdrive

import "context"

// Drive is the storage surface implemented by GoogleDrive.
// It is small enough to be mocked by callers.
type Drive interface {
	Put(ctx context.Context, payload Payload, opts ...Option) (RemoteFile, error)
	Mkdir(ctx context.Context, name string, opts ...Option) (RemoteFile, error)
	Find(ctx context.Context, name string, opts ...Option) (PaginatedResult, error)
	ListFiles(ctx context.Context, opts ...Option) (PaginatedResult, error)
	Rename(ctx context.Context, fileID FileID, newName string, opts ...Option) (RemoteFile, error)
	Get(ctx context.Context, fileID FileID, mode StreamMode, req StreamRequest) (StreamResult, error)
	Delete(ctx context.Context, fileID FileID) (bool, error)
	MakeFilePublic(ctx context.Context, fileID FileID) (bool, error)
	MakeFilePrivate(ctx context.Context, fileID FileID) (bool, error)
}

// GoogleDrive is the entry point of the package. Every method delegates to the Handler it was built with.
type GoogleDrive struct {
	handler *Handler
}

var _ Drive = (*GoogleDrive)(nil)

// New creates a GoogleDrive serving its operations through handler.
func New(handler *Handler) *GoogleDrive {
	return &GoogleDrive{handler: handler}
}

// NewFromAdapter creates a GoogleDrive with every operation group built on adapter.
func NewFromAdapter(adapter *Adapter) *GoogleDrive {
	return New(NewHandlerFromAdapter(adapter))
}

// Put uploads the content of payload into a folder and returns the created file.
//
// Options:
//   - InFolder selects the target folder. The root folder is used by default.
//   - WithFileName overrides the name of payload.
//   - Strict, enabled by default, makes Put return an existing file with the same name in the folder
//     instead of uploading a duplicate.
//   - Public grants read access to anyone with the link after the upload.
//
// When the public grant fails, the file is returned together with an error wrapping ErrAPIError.
// Upload failures are reported as ErrAPIError.
func (d *GoogleDrive) Put(ctx context.Context, payload Payload, opts ...Option) (RemoteFile, error) {
	return d.handler.Put(ctx, payload, opts...)
}

// Mkdir creates a folder and returns it.
// It reads InFolder, Strict and Public with the same meaning as Put.
func (d *GoogleDrive) Mkdir(ctx context.Context, name string, opts ...Option) (RemoteFile, error) {
	return d.handler.Mkdir(ctx, name, opts...)
}

// Find returns one page of the entries named exactly name in a folder.
//
// Options:
//   - InFolder selects the folder to search. The root folder is used by default.
//   - PageSize sets the maximum number of entries requested from Drive. It defaults to DefaultPageSize.
//   - PageToken continues a previous search with its NextPageToken.
//
// Only direct children of the folder are returned, so a page may hold fewer entries than requested
// while NextPageToken is not empty. An unknown folder yields an empty result.
func (d *GoogleDrive) Find(ctx context.Context, name string, opts ...Option) (PaginatedResult, error) {
	return d.handler.Find(ctx, name, opts...)
}

// ListFiles returns one page of the direct children of a folder.
// It reads InFolder, PageSize and PageToken with the same meaning as Find.
func (d *GoogleDrive) ListFiles(ctx context.Context, opts ...Option) (PaginatedResult, error) {
	return d.handler.ListFiles(ctx, opts...)
}

// Rename changes the name of the file with the given fileID.
//
// Options:
//   - Strict, enabled by default, makes Rename fail with ErrConflict when newName is already taken.
//   - InFolder selects the folder checked by Strict. The root folder is used by default.
func (d *GoogleDrive) Rename(ctx context.Context, fileID FileID, newName string, opts ...Option) (RemoteFile, error) {
	return d.handler.Rename(ctx, fileID, newName, opts...)
}

// Get streams the content of the file with the given fileID.
//
// The result is either NotModified, when req.IfNoneMatch matches the file's ETag,
// or *Stream, whose body must be consumed with Send or released with Close.
// The mode decides whether the headers ask the client to render or to save the file.
//
// It fails with ErrInvalidArgument for an unknown mode, ErrNotFound when the file does not exist
// and ErrNotAccessible for other Drive errors.
func (d *GoogleDrive) Get(ctx context.Context, fileID FileID, mode StreamMode, req StreamRequest) (StreamResult, error) {
	return d.handler.Get(ctx, fileID, mode, req)
}

// Delete permanently deletes the file with the given fileID, bypassing the trash.
// It returns false with a nil error when Drive accepts the request but answers with a body.
func (d *GoogleDrive) Delete(ctx context.Context, fileID FileID) (bool, error) {
	return d.handler.Delete(ctx, fileID)
}

// MakeFilePublic grants read access to anyone with the link.
func (d *GoogleDrive) MakeFilePublic(ctx context.Context, fileID FileID) (bool, error) {
	return d.handler.MakeFilePublic(ctx, fileID)
}

// MakeFilePrivate revokes the access granted by MakeFilePublic.
// It returns false with a nil error when Drive accepts the request without answering 204 No Content.
func (d *GoogleDrive) MakeFilePrivate(ctx context.Context, fileID FileID) (bool, error) {
	return d.handler.MakeFilePrivate(ctx, fileID)
}
