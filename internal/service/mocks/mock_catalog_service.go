package mocks

import (
	"context"

	"gemtrade/internal/model"
	"gemtrade/internal/repository"
	"gemtrade/internal/service"

	"github.com/stretchr/testify/mock"
)

type MockCatalogService struct {
	mock.Mock
}

func (m *MockCatalogService) List(ctx context.Context, f repository.GemstoneFilter, limit, offset int) (*service.GemstoneListResult, error) {
	args := m.Called(ctx, f, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.GemstoneListResult), args.Error(1)
}

func (m *MockCatalogService) Get(ctx context.Context, id string) (*model.Gemstone, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Gemstone), args.Error(1)
}
