package service

import (
	"context"
	"database/sql"
	"errors"

	"gemtrade/internal/model"
	"gemtrade/internal/repository"
)

var (
	ErrIDRequired = errors.New("id is required")
	ErrNotFound   = errors.New("gemstone not found")
)

// GemstoneListResult is the service-level DTO for paginated catalog pages.
type GemstoneListResult struct {
	Items []model.Gemstone `json:"data"`
	Total int              `json:"total"`
}

// CatalogService exposes the gemstone catalog to the HTTP layer.
type CatalogService interface {
	// List returns gemstones matching the filter using limit/offset paging.
	List(ctx context.Context, f repository.GemstoneFilter, limit, offset int) (*GemstoneListResult, error)

	// Get returns a single gemstone by its ID.
	Get(ctx context.Context, id string) (*model.Gemstone, error)
}

type catalogService struct {
	repo repository.GemstoneRepository
}

// NewCatalogService constructs a CatalogService.
func NewCatalogService(repo repository.GemstoneRepository) CatalogService {
	return &catalogService{repo: repo}
}

func (s *catalogService) List(ctx context.Context, f repository.GemstoneFilter, limit, offset int) (*GemstoneListResult, error) {
	if limit <= 0 {
		limit = 10
	}
	if offset < 0 {
		offset = 0
	}

	res, err := s.repo.List(ctx, f, repository.PageQuery{Limit: limit, Offset: offset})
	if err != nil {
		return nil, err
	}
	return &GemstoneListResult{Items: res.Items, Total: res.Total}, nil
}

func (s *catalogService) Get(ctx context.Context, id string) (*model.Gemstone, error) {
	if id == "" {
		return nil, ErrIDRequired
	}
	g, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return g, nil
}
