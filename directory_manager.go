package gdrive

import "context"

// DirectoryManager groups the folder operations of an Adapter.
type DirectoryManager struct {
	adapter *Adapter
}

func NewDirectoryManager(adapter *Adapter) *DirectoryManager {
	return &DirectoryManager{adapter: adapter}
}

func (m *DirectoryManager) Mkdir(ctx context.Context, name string, opts ...Option) (RemoteFile, error) {
	return m.adapter.Mkdir(ctx, name, opts...)
}
