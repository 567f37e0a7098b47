package mocks

import (
	"context"

	"gemtrade/internal/model"
	"gemtrade/internal/repository"

	"github.com/stretchr/testify/mock"
)

type MockGemstoneRepository struct {
	mock.Mock
}

func (m *MockGemstoneRepository) FindByID(ctx context.Context, id string) (*model.Gemstone, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Gemstone), args.Error(1)
}

func (m *MockGemstoneRepository) List(ctx context.Context, f repository.GemstoneFilter, pq repository.PageQuery) (*repository.PageResult[model.Gemstone], error) {
	args := m.Called(ctx, f, pq)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.PageResult[model.Gemstone]), args.Error(1)
}
