package gdrive

import (
	"context"
	"fmt"
	"net/http"

	gerrors "github.com/Jumpaku/go-gdrive/errors"
	"go.uber.org/zap"
	"google.golang.org/api/drive/v3"
)

// AdapterConfig holds the settings of an Adapter.
type AdapterConfig struct {
	// RootFolderID is the folder used by every operation that is not given InFolder.
	RootFolderID FileID
	// Logger receives debug entries for remote calls. Nil disables logging.
	Logger *zap.Logger
}

// Adapter translates facade calls into RemoteClient calls.
// It holds no mutable state and is safe for concurrent use.
type Adapter struct {
	client RemoteClient
	rootID FileID
	logger *zap.Logger
}

// NewAdapter creates an Adapter sending its requests through client.
func NewAdapter(client RemoteClient, cfg AdapterConfig) *Adapter {
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Adapter{
		client: client,
		rootID: cfg.RootFolderID,
		logger: logger.Named("gdrive"),
	}
}

// RootFolderID returns the folder used when no folder is given.
func (a *Adapter) RootFolderID() FileID {
	return a.rootID
}

func (a *Adapter) folderOr(folderID FileID) FileID {
	if folderID == "" {
		return a.rootID
	}
	return folderID
}

// Put uploads payload. It reads InFolder, WithFileName, Strict and Public.
// If the public grant fails the uploaded file is returned together with the error.
func (a *Adapter) Put(ctx context.Context, payload Payload, opts ...Option) (file RemoteFile, err error) {
	o := newOptions(opts)
	parentID := a.folderOr(o.folderID)
	name := o.fileName
	if name == "" {
		name = payload.Name
	}
	if payload.Content == nil {
		return RemoteFile{}, gerrors.NewInvalidArgumentError("payload has no content")
	}

	if o.strict {
		existing, found, err := a.findFirst(ctx, name, parentID)
		if err != nil {
			return RemoteFile{}, fmt.Errorf("failed to check for an existing file '%s' in '%s': %w", name, parentID, err)
		}
		if found {
			a.logger.Info("file already exists, skipping upload",
				zap.String("file_id", string(existing.ID)), zap.String("folder_id", string(parentID)))
			return a.grantIfPublic(ctx, existing, o.public)
		}
	}

	a.logger.Debug("uploading file", zap.String("name", name), zap.String("folder_id", string(parentID)))
	f, err := a.client.CreateFile(ctx, &drive.File{
		Name:    name,
		Parents: []string{string(parentID)},
	}, payload.Content)
	if err != nil {
		return RemoteFile{}, gerrors.NewAPIError("failed to upload file", err)
	}
	return a.grantIfPublic(ctx, newRemoteFile(f), o.public)
}

// Mkdir creates a folder. It reads InFolder, Strict and Public.
// If the public grant fails the folder is returned together with the error.
func (a *Adapter) Mkdir(ctx context.Context, name string, opts ...Option) (dir RemoteFile, err error) {
	o := newOptions(opts)
	parentID := a.folderOr(o.folderID)

	if o.strict {
		existing, found, err := a.findFirst(ctx, name, parentID)
		if err != nil {
			return RemoteFile{}, fmt.Errorf("failed to check for an existing directory '%s' in '%s': %w", name, parentID, err)
		}
		if found {
			a.logger.Info("directory already exists, skipping creation",
				zap.String("file_id", string(existing.ID)), zap.String("folder_id", string(parentID)))
			return a.grantIfPublic(ctx, existing, o.public)
		}
	}

	a.logger.Debug("creating directory", zap.String("name", name), zap.String("folder_id", string(parentID)))
	f, err := a.client.CreateFile(ctx, &drive.File{
		Name:     name,
		MimeType: mimeTypeGoogleAppFolder,
		Parents:  []string{string(parentID)},
	}, nil)
	if err != nil {
		return RemoteFile{}, gerrors.NewAPIError("failed to create directory", err)
	}
	return a.grantIfPublic(ctx, newRemoteFile(f), o.public)
}

// Rename changes the name of the file. It reads InFolder and Strict.
// In strict mode an entry already named newName in the folder makes it fail with ErrConflict.
func (a *Adapter) Rename(ctx context.Context, fileID FileID, newName string, opts ...Option) (file RemoteFile, err error) {
	o := newOptions(opts)
	parentID := a.folderOr(o.folderID)

	if o.strict {
		_, found, err := a.findFirst(ctx, newName, parentID)
		if err != nil {
			return RemoteFile{}, fmt.Errorf("failed to check for an existing file '%s' in '%s': %w", newName, parentID, err)
		}
		if found {
			return RemoteFile{}, gerrors.NewConflictError(fmt.Sprintf("the name '%s' is already taken in '%s'", newName, parentID))
		}
	}

	a.logger.Debug("renaming file", zap.String("file_id", string(fileID)), zap.String("name", newName))
	f, err := a.client.UpdateFile(ctx, string(fileID), &drive.File{Name: newName})
	if err != nil {
		return RemoteFile{}, gerrors.NewAPIError("failed to rename file", err)
	}
	return newRemoteFile(f), nil
}

// Delete permanently deletes the file.
// It reports false without an error when the provider answers with a non-empty body.
func (a *Adapter) Delete(ctx context.Context, fileID FileID) (deleted bool, err error) {
	a.logger.Debug("deleting file", zap.String("file_id", string(fileID)))
	body, err := a.client.DeleteFile(ctx, string(fileID))
	if err != nil {
		return false, gerrors.NewAPIError("failed to delete file", err)
	}
	return len(body) == 0, nil
}

// MakeFilePublic grants read access to anyone with the link.
func (a *Adapter) MakeFilePublic(ctx context.Context, fileID FileID) (ok bool, err error) {
	a.logger.Debug("granting public access", zap.String("file_id", string(fileID)))
	if _, err := a.client.CreatePermission(ctx, string(fileID), publicGrant()); err != nil {
		return false, gerrors.NewAPIError("failed to make file public", err)
	}
	return true, nil
}

// MakeFilePrivate removes the "anyone with the link" grant.
// It reports false without an error when the provider answers with a status other than 204.
func (a *Adapter) MakeFilePrivate(ctx context.Context, fileID FileID) (ok bool, err error) {
	a.logger.Debug("revoking public access", zap.String("file_id", string(fileID)))
	status, err := a.client.DeletePermission(ctx, string(fileID), PermissionIDAnyoneWithLink)
	if err != nil {
		return false, gerrors.NewAPIError("failed to make file private", err)
	}
	return status == http.StatusNoContent, nil
}

func (a *Adapter) grantIfPublic(ctx context.Context, file RemoteFile, public bool) (RemoteFile, error) {
	if !public {
		return file, nil
	}
	if _, err := a.MakeFilePublic(ctx, file.ID); err != nil {
		a.logger.Warn("file exists but could not be made public", zap.String("file_id", string(file.ID)), zap.Error(err))
		return file, fmt.Errorf("file '%s' exists but is not public: %w", file.ID, err)
	}
	return file, nil
}
