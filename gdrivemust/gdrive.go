// Package gdrivemust wraps the gdrive facade with panic-based error handling.
//
// It provides the same operations as gdrive.GoogleDrive,
// but instead of returning errors, all exported methods panic on failure.
// It is meant for scripts and tests where a failed Drive call ends the program.
package gdrivemust

import (
	"context"

	"github.com/Jumpaku/go-gdrive"
)

// Drive provides the operations of a gdrive.Drive.
//
// All methods of Drive panic on error instead of returning an error value.
type Drive struct {
	drive gdrive.Drive
}

// New creates a Drive delegating to d.
func New(d gdrive.Drive) *Drive {
	return &Drive{drive: d}
}

// Put uploads payload and returns the created or already existing file.
//
// It panics if the upload fails, or if the file was stored but could not be made public.
func (d *Drive) Put(ctx context.Context, payload gdrive.Payload, opts ...gdrive.Option) (file gdrive.RemoteFile) {
	return must1(d.drive.Put(ctx, payload, opts...))
}

// Mkdir creates a folder and returns it.
//
// It panics if the folder cannot be created.
func (d *Drive) Mkdir(ctx context.Context, name string, opts ...gdrive.Option) (dir gdrive.RemoteFile) {
	return must1(d.drive.Mkdir(ctx, name, opts...))
}

// Find returns one page of the entries named exactly name.
//
// It panics if listing fails.
func (d *Drive) Find(ctx context.Context, name string, opts ...gdrive.Option) (result gdrive.PaginatedResult) {
	return must1(d.drive.Find(ctx, name, opts...))
}

// ListFiles returns one page of the children of a folder.
//
// It panics if listing fails.
func (d *Drive) ListFiles(ctx context.Context, opts ...gdrive.Option) (result gdrive.PaginatedResult) {
	return must1(d.drive.ListFiles(ctx, opts...))
}

// Rename changes the name of the file with the given fileID.
//
// It panics if the name is taken in strict mode or if the update fails.
func (d *Drive) Rename(ctx context.Context, fileID gdrive.FileID, newName string, opts ...gdrive.Option) (file gdrive.RemoteFile) {
	return must1(d.drive.Rename(ctx, fileID, newName, opts...))
}

// Get streams the content of the file with the given fileID.
//
// It panics if the mode is invalid or the file cannot be read.
func (d *Drive) Get(ctx context.Context, fileID gdrive.FileID, mode gdrive.StreamMode, req gdrive.StreamRequest) (result gdrive.StreamResult) {
	return must1(d.drive.Get(ctx, fileID, mode, req))
}

// Delete permanently deletes the file with the given fileID.
// It reports whether Drive confirmed the deletion.
//
// It panics if the request fails.
func (d *Drive) Delete(ctx context.Context, fileID gdrive.FileID) (deleted bool) {
	return must1(d.drive.Delete(ctx, fileID))
}

// MakeFilePublic grants read access to anyone with the link.
//
// It panics if the permission cannot be created.
func (d *Drive) MakeFilePublic(ctx context.Context, fileID gdrive.FileID) (ok bool) {
	return must1(d.drive.MakeFilePublic(ctx, fileID))
}

// MakeFilePrivate revokes the access granted by MakeFilePublic.
// It reports whether Drive confirmed the revocation.
//
// It panics if the request fails.
func (d *Drive) MakeFilePrivate(ctx context.Context, fileID gdrive.FileID) (ok bool) {
	return must1(d.drive.MakeFilePrivate(ctx, fileID))
}
