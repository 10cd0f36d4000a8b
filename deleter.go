package gdrive

import "context"

// Deleter groups the delete operation of an Adapter.
type Deleter struct {
	adapter *Adapter
}

func NewDeleter(adapter *Adapter) *Deleter {
	return &Deleter{adapter: adapter}
}

func (d *Deleter) Delete(ctx context.Context, fileID FileID) (bool, error) {
	return d.adapter.Delete(ctx, fileID)
}
