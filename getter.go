package gdrive

import "context"

// Getter groups the read operations of an Adapter.
type Getter struct {
	adapter *Adapter
}

func NewGetter(adapter *Adapter) *Getter {
	return &Getter{adapter: adapter}
}

func (g *Getter) Get(ctx context.Context, fileID FileID, mode StreamMode, req StreamRequest) (StreamResult, error) {
	return g.adapter.Get(ctx, fileID, mode, req)
}

func (g *Getter) Find(ctx context.Context, name string, opts ...Option) (PaginatedResult, error) {
	return g.adapter.Find(ctx, name, opts...)
}

func (g *Getter) ListFiles(ctx context.Context, opts ...Option) (PaginatedResult, error) {
	return g.adapter.ListFiles(ctx, opts...)
}
