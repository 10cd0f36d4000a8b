package gdrive

import "context"

// Uploader groups the write operations of an Adapter.
type Uploader struct {
	adapter *Adapter
}

func NewUploader(adapter *Adapter) *Uploader {
	return &Uploader{adapter: adapter}
}

func (u *Uploader) Put(ctx context.Context, payload Payload, opts ...Option) (RemoteFile, error) {
	return u.adapter.Put(ctx, payload, opts...)
}

func (u *Uploader) Rename(ctx context.Context, fileID FileID, newName string, opts ...Option) (RemoteFile, error) {
	return u.adapter.Rename(ctx, fileID, newName, opts...)
}

func (u *Uploader) MakeFilePublic(ctx context.Context, fileID FileID) (bool, error) {
	return u.adapter.MakeFilePublic(ctx, fileID)
}

func (u *Uploader) MakeFilePrivate(ctx context.Context, fileID FileID) (bool, error) {
	return u.adapter.MakeFilePrivate(ctx, fileID)
}
