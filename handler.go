package gdrive

import "context"

// Handler aggregates the operation groups into one implementation of Drive.
type Handler struct {
	uploader  *Uploader
	getter    *Getter
	deleter   *Deleter
	directory *DirectoryManager
}

var _ Drive = (*Handler)(nil)

func NewHandler(uploader *Uploader, getter *Getter, deleter *Deleter, directory *DirectoryManager) *Handler {
	return &Handler{
		uploader:  uploader,
		getter:    getter,
		deleter:   deleter,
		directory: directory,
	}
}

// NewHandlerFromAdapter builds every operation group on top of adapter.
func NewHandlerFromAdapter(adapter *Adapter) *Handler {
	return NewHandler(
		NewUploader(adapter),
		NewGetter(adapter),
		NewDeleter(adapter),
		NewDirectoryManager(adapter),
	)
}

func (h *Handler) Put(ctx context.Context, payload Payload, opts ...Option) (RemoteFile, error) {
	return h.uploader.Put(ctx, payload, opts...)
}

func (h *Handler) Mkdir(ctx context.Context, name string, opts ...Option) (RemoteFile, error) {
	return h.directory.Mkdir(ctx, name, opts...)
}

func (h *Handler) Find(ctx context.Context, name string, opts ...Option) (PaginatedResult, error) {
	return h.getter.Find(ctx, name, opts...)
}

func (h *Handler) ListFiles(ctx context.Context, opts ...Option) (PaginatedResult, error) {
	return h.getter.ListFiles(ctx, opts...)
}

func (h *Handler) Rename(ctx context.Context, fileID FileID, newName string, opts ...Option) (RemoteFile, error) {
	return h.uploader.Rename(ctx, fileID, newName, opts...)
}

func (h *Handler) Get(ctx context.Context, fileID FileID, mode StreamMode, req StreamRequest) (StreamResult, error) {
	return h.getter.Get(ctx, fileID, mode, req)
}

func (h *Handler) Delete(ctx context.Context, fileID FileID) (bool, error) {
	return h.deleter.Delete(ctx, fileID)
}

func (h *Handler) MakeFilePublic(ctx context.Context, fileID FileID) (bool, error) {
	return h.uploader.MakeFilePublic(ctx, fileID)
}

func (h *Handler) MakeFilePrivate(ctx context.Context, fileID FileID) (bool, error) {
	return h.uploader.MakeFilePrivate(ctx, fileID)
}
