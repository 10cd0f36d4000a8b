package gdrive

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/url"

	gerrors "github.com/Jumpaku/go-gdrive/errors"
	"google.golang.org/api/drive/v3"
	"google.golang.org/api/googleapi"
)

// RemoteClient is the part of the Google Drive API the Adapter depends on.
// Implementations must be safe for concurrent use and must not retry.
type RemoteClient interface {
	// CreateFile creates file. When media is not nil its bytes are sent as a single multipart upload.
	CreateFile(ctx context.Context, file *drive.File, media io.Reader) (*drive.File, error)
	// GetFile fetches the metadata of the file restricted to the given field projection.
	GetFile(ctx context.Context, fileID string, fields string) (*drive.File, error)
	// DownloadFile fetches the content of the file with alt=media. A non-empty byteRange is forwarded as the Range header.
	// The caller must close the response body.
	DownloadFile(ctx context.Context, fileID string, byteRange string) (*http.Response, error)
	// UpdateFile patches the metadata of the file.
	UpdateFile(ctx context.Context, fileID string, file *drive.File) (*drive.File, error)
	// DeleteFile permanently deletes the file and returns the raw response body.
	DeleteFile(ctx context.Context, fileID string) (body []byte, err error)
	// CreatePermission grants perm on the file.
	CreatePermission(ctx context.Context, fileID string, perm *drive.Permission) (*drive.Permission, error)
	// DeletePermission deletes the permission and returns the HTTP status code of the response.
	DeletePermission(ctx context.Context, fileID, permissionID string) (statusCode int, err error)
	// ListFiles runs one page of the query.
	ListFiles(ctx context.Context, query string, pageSize int64, pageToken string) (*drive.FileList, error)
}

const (
	driveFileFields       = "id,name,mimeType,size,parents,webViewLink"
	driveFilesFields      = "nextPageToken,files(id,name,mimeType,size,parents,webViewLink)"
	renamedFileFields     = "id,name"
	streamFileFields      = "name,mimeType,size"
	drivePermissionFields = "id,type,role"
)

type driveClient struct {
	service    *drive.Service
	httpClient *http.Client
}

var _ RemoteClient = (*driveClient)(nil)

// NewRemoteClient creates a RemoteClient backed by service.
// httpClient must be the authenticated client service was built with; it sends the requests whose raw response is inspected.
// A nil httpClient selects http.DefaultClient.
func NewRemoteClient(service *drive.Service, httpClient *http.Client) RemoteClient {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &driveClient{service: service, httpClient: httpClient}
}

func (c *driveClient) CreateFile(ctx context.Context, file *drive.File, media io.Reader) (*drive.File, error) {
	call := c.service.Files.Create(file).
		SupportsAllDrives(true).
		Fields(driveFileFields).
		Context(ctx)
	if media != nil {
		call = call.Media(media, googleapi.ChunkSize(0))
	}
	return call.Do()
}

func (c *driveClient) GetFile(ctx context.Context, fileID string, fields string) (*drive.File, error) {
	return c.service.Files.Get(fileID).
		SupportsAllDrives(true).
		Fields(googleapi.Field(fields)).
		Context(ctx).
		Do()
}

func (c *driveClient) DownloadFile(ctx context.Context, fileID string, byteRange string) (*http.Response, error) {
	call := c.service.Files.Get(fileID).
		SupportsAllDrives(true).
		Context(ctx)
	if byteRange != "" {
		call.Header().Set("Range", byteRange)
	}
	return call.Download()
}

func (c *driveClient) UpdateFile(ctx context.Context, fileID string, file *drive.File) (*drive.File, error) {
	return c.service.Files.Update(fileID, file).
		SupportsAllDrives(true).
		Fields(renamedFileFields).
		Context(ctx).
		Do()
}

func (c *driveClient) DeleteFile(ctx context.Context, fileID string) (body []byte, err error) {
	_, body, err = c.sendDelete(ctx, "files/{fileId}", map[string]string{"fileId": fileID})
	return body, err
}

func (c *driveClient) CreatePermission(ctx context.Context, fileID string, perm *drive.Permission) (*drive.Permission, error) {
	return c.service.Permissions.Create(fileID, perm).
		SupportsAllDrives(true).
		Fields(drivePermissionFields).
		Context(ctx).
		Do()
}

func (c *driveClient) DeletePermission(ctx context.Context, fileID, permissionID string) (statusCode int, err error) {
	statusCode, _, err = c.sendDelete(ctx, "files/{fileId}/permissions/{permissionId}", map[string]string{
		"fileId":       fileID,
		"permissionId": permissionID,
	})
	return statusCode, err
}

func (c *driveClient) ListFiles(ctx context.Context, query string, pageSize int64, pageToken string) (*drive.FileList, error) {
	call := c.service.Files.List().
		Spaces("drive").
		SupportsAllDrives(true).
		IncludeItemsFromAllDrives(true).
		Q(query).
		PageSize(pageSize).
		Fields(driveFilesFields).
		Context(ctx)
	if pageToken != "" {
		call = call.PageToken(pageToken)
	}
	return call.Do()
}

// sendDelete issues a DELETE the way the generated client does, but keeps the status code and body of the response.
func (c *driveClient) sendDelete(ctx context.Context, path string, expansions map[string]string) (statusCode int, body []byte, err error) {
	urls := googleapi.ResolveRelative(c.service.BasePath, path)
	urls += "?" + url.Values{"supportsAllDrives": {"true"}}.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, urls, nil)
	if err != nil {
		return 0, nil, err
	}
	googleapi.Expand(req.URL, expansions)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, nil, err
	}
	defer func() {
		closeErr := resp.Body.Close()
		if closeErr != nil {
			closeErr = gerrors.NewIOError("failed to close response body", closeErr)
		}
		err = errors.Join(err, closeErr)
	}()

	if err := googleapi.CheckResponse(resp); err != nil {
		return resp.StatusCode, nil, err
	}
	body, err = io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, nil, gerrors.NewIOError("failed to read response body", err)
	}
	return resp.StatusCode, body, nil
}
