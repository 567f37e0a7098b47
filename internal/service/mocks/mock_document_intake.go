package mocks

import (
	"context"
	"io"

	"gemtrade/internal/storage"

	"github.com/stretchr/testify/mock"
)

type MockDocumentIntake struct {
	mock.Mock
}

func (m *MockDocumentIntake) Accept(ctx context.Context, r io.Reader, originalFilename string, contentType string, size int64) (string, error) {
	args := m.Called(ctx, r, originalFilename, contentType, size)
	return args.String(0), args.Error(1)
}

func (m *MockDocumentIntake) Open(ctx context.Context, name string) (io.ReadCloser, storage.ObjectInfo, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Get(1).(storage.ObjectInfo), args.Error(2)
	}
	return args.Get(0).(io.ReadCloser), args.Get(1).(storage.ObjectInfo), args.Error(2)
}
