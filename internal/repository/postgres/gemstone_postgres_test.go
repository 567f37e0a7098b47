package postgres

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"

	"gemtrade/internal/repository"
)

var gemstoneCols = []string{"id", "name", "type", "color", "weight_carats", "price", "is_sold", "image_url", "created_at"}

func TestGemstonePostgres_FindByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewGemstonePostgres(db)
	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		rows := sqlmock.NewRows(gemstoneCols).
			AddRow("gem-1", "Blue Sapphire", "Sapphire", "Blue", 2.5, 2500.0, false, "", time.Now())

		mock.ExpectQuery("SELECT (.+) FROM gemstones WHERE id = ?").
			WithArgs("gem-1").
			WillReturnRows(rows)

		g, err := repo.FindByID(ctx, "gem-1")

		assert.NoError(t, err)
		assert.NotNil(t, g)
		assert.Equal(t, "Blue Sapphire", g.Name)
		assert.Equal(t, 2.5, g.WeightCarats)
	})

	t.Run("not found", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM gemstones WHERE id = ?").
			WithArgs("missing").
			WillReturnError(sql.ErrNoRows)

		g, err := repo.FindByID(ctx, "missing")

		assert.Nil(t, g)
		assert.ErrorIs(t, err, sql.ErrNoRows)
	})
}

func TestGemstonePostgres_List(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewGemstonePostgres(db)
	ctx := context.Background()

	t.Run("unfiltered hides sold stones", func(t *testing.T) {
		mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM gemstones WHERE is_sold = false").
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

		rows := sqlmock.NewRows(gemstoneCols).
			AddRow("gem-1", "Ruby Heart", "Ruby", "Red", 1.5, 3500.0, false, "", time.Now())

		mock.ExpectQuery("SELECT (.+) FROM gemstones WHERE is_sold = false ORDER BY").
			WithArgs(10, 0).
			WillReturnRows(rows)

		res, err := repo.List(ctx, repository.GemstoneFilter{}, repository.PageQuery{Limit: 10, Offset: 0})

		assert.NoError(t, err)
		assert.Equal(t, 1, res.Total)
		assert.Len(t, res.Items, 1)
	})

	t.Run("filtered by type and price range", func(t *testing.T) {
		f := repository.GemstoneFilter{Type: "Sapphire", MinPrice: 1000, MaxPrice: 5000, ShowSold: true}

		mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM gemstones WHERE").
			WithArgs("Sapphire", 1000.0, 5000.0).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

		rows := sqlmock.NewRows(gemstoneCols).
			AddRow("gem-1", "Blue Sapphire", "Sapphire", "Blue", 2.5, 2500.0, false, "", time.Now())

		mock.ExpectQuery("SELECT (.+) FROM gemstones WHERE (.+) ORDER BY").
			WithArgs("Sapphire", 1000.0, 5000.0, 10, 0).
			WillReturnRows(rows)

		res, err := repo.List(ctx, f, repository.PageQuery{Limit: 10, Offset: 0})

		assert.NoError(t, err)
		assert.Equal(t, 1, res.Total)
		assert.Equal(t, "Sapphire", res.Items[0].Type)
	})
}

func TestBuildGemstoneWhere(t *testing.T) {
	tests := []struct {
		name      string
		filter    repository.GemstoneFilter
		wantWhere string
		wantArgs  int
	}{
		{
			name:      "empty filter still hides sold",
			filter:    repository.GemstoneFilter{},
			wantWhere: " WHERE is_sold = false",
			wantArgs:  0,
		},
		{
			name:      "show sold removes predicate entirely",
			filter:    repository.GemstoneFilter{ShowSold: true},
			wantWhere: "",
			wantArgs:  0,
		},
		{
			name:      "all numeric bounds",
			filter:    repository.GemstoneFilter{MinPrice: 1, MaxPrice: 2, MinWeight: 3, MaxWeight: 4, ShowSold: true},
			wantWhere: " WHERE price >= $1 AND price <= $2 AND weight_carats >= $3 AND weight_carats <= $4",
			wantArgs:  4,
		},
		{
			name:      "type and color are case-insensitive",
			filter:    repository.GemstoneFilter{Type: "ruby", Color: "red", ShowSold: true},
			wantWhere: " WHERE LOWER(type) = LOWER($1) AND LOWER(color) = LOWER($2)",
			wantArgs:  2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			where, args := buildGemstoneWhere(tt.filter)
			assert.Equal(t, tt.wantWhere, where)
			assert.Len(t, args, tt.wantArgs)
		})
	}
}
