// Package provider registers the Google Drive storage driver.
//
// Import it for its side effect to make the "google" driver available to storage.Open:
//
//	import _ "github.com/Jumpaku/go-gdrive/provider"
package provider

import (
	"context"
	"net/http"

	"github.com/Jumpaku/go-gdrive"
	gerrors "github.com/Jumpaku/go-gdrive/errors"
	"github.com/Jumpaku/go-gdrive/storage"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/drive/v3"
	"google.golang.org/api/option"
)

// DriverName is the name the Google Drive driver is registered under.
const DriverName = "google"

func init() {
	storage.Register(DriverName, func(ctx context.Context, cfg storage.Config) (gdrive.Drive, error) {
		return Open(ctx, cfg)
	})
}

// Open authenticates with the service account credentials of cfg and builds the facade.
func Open(ctx context.Context, cfg storage.Config) (*gdrive.GoogleDrive, error) {
	if len(cfg.Credentials) == 0 {
		return nil, gerrors.NewConfigError("service account credentials are required", nil)
	}
	jwtConfig, err := google.JWTConfigFromJSON(cfg.Credentials, drive.DriveScope)
	if err != nil {
		return nil, gerrors.NewConfigError("failed to parse service account credentials", err)
	}
	return NewWithClient(ctx, oauth2.NewClient(ctx, jwtConfig.TokenSource(ctx)), cfg)
}

// NewWithClient builds the facade on an already authenticated httpClient.
// opts are passed to drive.NewService after the client option.
func NewWithClient(ctx context.Context, httpClient *http.Client, cfg storage.Config, opts ...option.ClientOption) (*gdrive.GoogleDrive, error) {
	if cfg.FolderID == "" {
		return nil, gerrors.NewConfigError("root folder id is required", nil)
	}
	service, err := drive.NewService(ctx, append([]option.ClientOption{option.WithHTTPClient(httpClient)}, opts...)...)
	if err != nil {
		return nil, gerrors.NewAPIError("failed to create drive service", err)
	}

	adapter := gdrive.NewAdapter(gdrive.NewRemoteClient(service, httpClient), gdrive.AdapterConfig{
		RootFolderID: gdrive.FileID(cfg.FolderID),
		Logger:       cfg.Logger,
	})
	handler := gdrive.NewHandler(
		gdrive.NewUploader(adapter),
		gdrive.NewGetter(adapter),
		gdrive.NewDeleter(adapter),
		gdrive.NewDirectoryManager(adapter),
	)
	return gdrive.New(handler), nil
}
