// Package storage is a registry of named storage drivers.
//
// Drivers register a Factory from an init function, the way database/sql drivers do,
// and callers open them by name.
package storage

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/Jumpaku/go-gdrive"
	"go.uber.org/zap"
)

// Config is passed to a Factory when a driver is opened.
type Config struct {
	// FolderID is the default folder of the opened storage.
	FolderID string
	// Credentials is the raw service account JSON.
	Credentials []byte
	// Logger receives the driver logs. Nil disables logging.
	Logger *zap.Logger
}

// Factory creates a storage from cfg.
type Factory func(ctx context.Context, cfg Config) (gdrive.Drive, error)

var (
	driversMu sync.RWMutex
	drivers   = map[string]Factory{}
)

// Register makes a driver available under name.
// It panics if factory is nil or if Register is called twice with the same name.
func Register(name string, factory Factory) {
	driversMu.Lock()
	defer driversMu.Unlock()
	if factory == nil {
		panic("storage: Register factory is nil")
	}
	if _, dup := drivers[name]; dup {
		panic("storage: Register called twice for driver " + name)
	}
	drivers[name] = factory
}

// Drivers returns the sorted names of the registered drivers.
func Drivers() []string {
	driversMu.RLock()
	defer driversMu.RUnlock()
	names := make([]string, 0, len(drivers))
	for name := range drivers {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Open creates a storage with the driver registered under name.
func Open(ctx context.Context, name string, cfg Config) (gdrive.Drive, error) {
	driversMu.RLock()
	factory, ok := drivers[name]
	driversMu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("unknown storage driver %q (forgotten import?)", name)
	}
	d, err := factory(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to open storage driver %q: %w", name, err)
	}
	return d, nil
}
