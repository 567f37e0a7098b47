package repository

import (
	"context"

	"gemtrade/internal/model"
)

// GemstoneFilter narrows catalog listings. Zero values mean "no constraint";
// sold stones are excluded unless ShowSold is set.
type GemstoneFilter struct {
	Type      string
	Color     string
	MinPrice  float64
	MaxPrice  float64
	MinWeight float64
	MaxWeight float64
	ShowSold  bool
}

// GemstoneRepository defines data access for the gemstone catalog.
type GemstoneRepository interface {
	// FindByID returns a gemstone by its ID, or sql.ErrNoRows when absent.
	FindByID(ctx context.Context, id string) (*model.Gemstone, error)

	// List returns a filtered, paginated page of gemstones plus the total
	// number of rows matching the filter.
	List(ctx context.Context, f GemstoneFilter, pq PageQuery) (*PageResult[model.Gemstone], error)
}
