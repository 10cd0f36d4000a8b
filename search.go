package gdrive

import (
	"context"
	"fmt"
	"strings"

	gerrors "github.com/Jumpaku/go-gdrive/errors"
	"go.uber.org/zap"
)

// Find searches the folder for entries named exactly name. It reads InFolder, PageSize and PageToken.
func (a *Adapter) Find(ctx context.Context, name string, opts ...Option) (PaginatedResult, error) {
	o := newOptions(opts)
	parentID := a.folderOr(o.folderID)
	return a.search(ctx, findByNameQuery(name, parentID), parentID, o.pageSize, o.pageToken)
}

// ListFiles lists the direct children of the folder. It reads InFolder, PageSize and PageToken.
func (a *Adapter) ListFiles(ctx context.Context, opts ...Option) (PaginatedResult, error) {
	o := newOptions(opts)
	parentID := a.folderOr(o.folderID)
	return a.search(ctx, listChildrenQuery(parentID), parentID, o.pageSize, o.pageToken)
}

func (a *Adapter) findFirst(ctx context.Context, name string, parentID FileID) (file RemoteFile, found bool, err error) {
	res, err := a.search(ctx, findByNameQuery(name, parentID), parentID, DefaultPageSize, "")
	if err != nil {
		return RemoteFile{}, false, err
	}
	if len(res.Files) == 0 {
		return RemoteFile{}, false, nil
	}
	return res.Files[0], true, nil
}

// search runs one page of the query and keeps only the entries that are direct children of parentID.
// The provider's next page token is returned as is.
func (a *Adapter) search(ctx context.Context, query string, parentID FileID, pageSize int64, pageToken string) (PaginatedResult, error) {
	a.logger.Debug("listing files", zap.String("query", query), zap.Int64("page_size", pageSize))
	list, err := a.client.ListFiles(ctx, query, pageSize, pageToken)
	if err != nil {
		return PaginatedResult{}, gerrors.NewAPIError("failed to list files", err)
	}

	files := []RemoteFile{}
	for _, f := range list.Files {
		file := newRemoteFile(f)
		if file.HasParent(parentID) {
			files = append(files, file)
		}
	}
	return PaginatedResult{Files: files, NextPageToken: list.NextPageToken}, nil
}

func findByNameQuery(name string, parentID FileID) string {
	return fmt.Sprintf("name = '%s' and '%s' in parents and trashed = false", escapeQuery(name), escapeQuery(string(parentID)))
}

func listChildrenQuery(parentID FileID) string {
	return fmt.Sprintf("'%s' in parents and trashed = false", escapeQuery(string(parentID)))
}

func escapeQuery(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, "'", `\'`)
	s = strings.ReplaceAll(s, `"`, `\"`)
	return s
}
