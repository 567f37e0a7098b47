package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"gemtrade/internal/model"
	"gemtrade/internal/repository"
)

// GemstonePostgres is a PostgreSQL implementation of repository.GemstoneRepository.
type GemstonePostgres struct {
	db *sql.DB
}

// NewGemstonePostgres creates a new GemstonePostgres repository.
func NewGemstonePostgres(db *sql.DB) *GemstonePostgres {
	return &GemstonePostgres{db: db}
}

var _ repository.GemstoneRepository = (*GemstonePostgres)(nil)

const gemstoneColumns = "id, name, type, color, weight_carats, price, is_sold, image_url, created_at"

// FindByID fetches a single gemstone by its ID.
func (r *GemstonePostgres) FindByID(ctx context.Context, id string) (*model.Gemstone, error) {
	q := fmt.Sprintf("SELECT %s FROM gemstones WHERE id = $1", gemstoneColumns)
	row := r.db.QueryRowContext(ctx, q, id)
	var g model.Gemstone
	if err := scanGemstone(row.Scan, &g); err != nil {
		return nil, err
	}
	return &g, nil
}

// List returns gemstones matching the filter using LIMIT/OFFSET pagination
// and a total count over the same predicate.
func (r *GemstonePostgres) List(ctx context.Context, f repository.GemstoneFilter, pq repository.PageQuery) (*repository.PageResult[model.Gemstone], error) {
	where, args := buildGemstoneWhere(f)

	var total int
	qCount := "SELECT COUNT(*) FROM gemstones" + where
	if err := r.db.QueryRowContext(ctx, qCount, args...).Scan(&total); err != nil {
		return nil, err
	}

	qList := fmt.Sprintf(
		"SELECT %s FROM gemstones%s ORDER BY created_at DESC, id DESC LIMIT $%d OFFSET $%d",
		gemstoneColumns, where, len(args)+1, len(args)+2,
	)
	rows, err := r.db.QueryContext(ctx, qList, append(args, pq.Limit, pq.Offset)...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.Gemstone, 0)
	for rows.Next() {
		var g model.Gemstone
		if err := scanGemstone(rows.Scan, &g); err != nil {
			return nil, err
		}
		items = append(items, g)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return &repository.PageResult[model.Gemstone]{
		Items: items,
		Total: total,
	}, nil
}

// buildGemstoneWhere assembles the WHERE clause with positional arguments.
// Text filters match case-insensitively to mirror how buyers search.
func buildGemstoneWhere(f repository.GemstoneFilter) (string, []any) {
	conds := make([]string, 0, 7)
	args := make([]any, 0, 6)

	add := func(cond string, arg any) {
		args = append(args, arg)
		conds = append(conds, fmt.Sprintf(cond, len(args)))
	}

	if f.Type != "" {
		add("LOWER(type) = LOWER($%d)", f.Type)
	}
	if f.Color != "" {
		add("LOWER(color) = LOWER($%d)", f.Color)
	}
	if f.MinPrice > 0 {
		add("price >= $%d", f.MinPrice)
	}
	if f.MaxPrice > 0 {
		add("price <= $%d", f.MaxPrice)
	}
	if f.MinWeight > 0 {
		add("weight_carats >= $%d", f.MinWeight)
	}
	if f.MaxWeight > 0 {
		add("weight_carats <= $%d", f.MaxWeight)
	}
	if !f.ShowSold {
		conds = append(conds, "is_sold = false")
	}

	if len(conds) == 0 {
		return "", args
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

func scanGemstone(scan func(dest ...any) error, g *model.Gemstone) error {
	return scan(
		&g.ID,
		&g.Name,
		&g.Type,
		&g.Color,
		&g.WeightCarats,
		&g.Price,
		&g.IsSold,
		&g.ImageURL,
		&g.CreatedAt,
	)
}
