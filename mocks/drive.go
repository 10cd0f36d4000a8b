package mocks

import (
	"context"

	"github.com/Jumpaku/go-gdrive"
	"github.com/stretchr/testify/mock"
)

type MockDrive struct {
	mock.Mock
}

var _ gdrive.Drive = (*MockDrive)(nil)

func (m *MockDrive) Put(ctx context.Context, payload gdrive.Payload, opts ...gdrive.Option) (gdrive.RemoteFile, error) {
	args := m.Called(ctx, payload, opts)
	return args.Get(0).(gdrive.RemoteFile), args.Error(1)
}

func (m *MockDrive) Mkdir(ctx context.Context, name string, opts ...gdrive.Option) (gdrive.RemoteFile, error) {
	args := m.Called(ctx, name, opts)
	return args.Get(0).(gdrive.RemoteFile), args.Error(1)
}

func (m *MockDrive) Find(ctx context.Context, name string, opts ...gdrive.Option) (gdrive.PaginatedResult, error) {
	args := m.Called(ctx, name, opts)
	return args.Get(0).(gdrive.PaginatedResult), args.Error(1)
}

func (m *MockDrive) ListFiles(ctx context.Context, opts ...gdrive.Option) (gdrive.PaginatedResult, error) {
	args := m.Called(ctx, opts)
	return args.Get(0).(gdrive.PaginatedResult), args.Error(1)
}

func (m *MockDrive) Rename(ctx context.Context, fileID gdrive.FileID, newName string, opts ...gdrive.Option) (gdrive.RemoteFile, error) {
	args := m.Called(ctx, fileID, newName, opts)
	return args.Get(0).(gdrive.RemoteFile), args.Error(1)
}

func (m *MockDrive) Get(ctx context.Context, fileID gdrive.FileID, mode gdrive.StreamMode, req gdrive.StreamRequest) (gdrive.StreamResult, error) {
	args := m.Called(ctx, fileID, mode, req)
	res, _ := args.Get(0).(gdrive.StreamResult)
	return res, args.Error(1)
}

func (m *MockDrive) Delete(ctx context.Context, fileID gdrive.FileID) (bool, error) {
	args := m.Called(ctx, fileID)
	return args.Bool(0), args.Error(1)
}

func (m *MockDrive) MakeFilePublic(ctx context.Context, fileID gdrive.FileID) (bool, error) {
	args := m.Called(ctx, fileID)
	return args.Bool(0), args.Error(1)
}

func (m *MockDrive) MakeFilePrivate(ctx context.Context, fileID gdrive.FileID) (bool, error) {
	args := m.Called(ctx, fileID)
	return args.Bool(0), args.Error(1)
}
