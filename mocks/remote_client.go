package mocks

import (
	"context"
	"io"
	"net/http"

	"github.com/Jumpaku/go-gdrive"
	"github.com/stretchr/testify/mock"
	"google.golang.org/api/drive/v3"
)

type MockRemoteClient struct {
	mock.Mock
}

var _ gdrive.RemoteClient = (*MockRemoteClient)(nil)

func (m *MockRemoteClient) CreateFile(ctx context.Context, file *drive.File, media io.Reader) (*drive.File, error) {
	args := m.Called(ctx, file, media)
	f, _ := args.Get(0).(*drive.File)
	return f, args.Error(1)
}

func (m *MockRemoteClient) GetFile(ctx context.Context, fileID string, fields string) (*drive.File, error) {
	args := m.Called(ctx, fileID, fields)
	f, _ := args.Get(0).(*drive.File)
	return f, args.Error(1)
}

func (m *MockRemoteClient) DownloadFile(ctx context.Context, fileID string, byteRange string) (*http.Response, error) {
	args := m.Called(ctx, fileID, byteRange)
	resp, _ := args.Get(0).(*http.Response)
	return resp, args.Error(1)
}

func (m *MockRemoteClient) UpdateFile(ctx context.Context, fileID string, file *drive.File) (*drive.File, error) {
	args := m.Called(ctx, fileID, file)
	f, _ := args.Get(0).(*drive.File)
	return f, args.Error(1)
}

func (m *MockRemoteClient) DeleteFile(ctx context.Context, fileID string) ([]byte, error) {
	args := m.Called(ctx, fileID)
	body, _ := args.Get(0).([]byte)
	return body, args.Error(1)
}

func (m *MockRemoteClient) CreatePermission(ctx context.Context, fileID string, perm *drive.Permission) (*drive.Permission, error) {
	args := m.Called(ctx, fileID, perm)
	p, _ := args.Get(0).(*drive.Permission)
	return p, args.Error(1)
}

func (m *MockRemoteClient) DeletePermission(ctx context.Context, fileID, permissionID string) (int, error) {
	args := m.Called(ctx, fileID, permissionID)
	return args.Int(0), args.Error(1)
}

func (m *MockRemoteClient) ListFiles(ctx context.Context, query string, pageSize int64, pageToken string) (*drive.FileList, error) {
	args := m.Called(ctx, query, pageSize, pageToken)
	l, _ := args.Get(0).(*drive.FileList)
	return l, args.Error(1)
}
