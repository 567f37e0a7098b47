package migration

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log"
	"time"
)

type migrationStep struct {
	Name string
	SQL  string
}

var steps = []migrationStep{
	{
		Name: "create_extension_uuid_ossp",
		SQL:  `CREATE EXTENSION IF NOT EXISTS "uuid-ossp";`,
	},
	{
		Name: "create_table_users",
		SQL: `CREATE TABLE IF NOT EXISTS users (
  id               BIGSERIAL   PRIMARY KEY,
  full_name        TEXT        NOT NULL,
  email            TEXT        NOT NULL UNIQUE,
  username         TEXT        NOT NULL,
  password_hash    TEXT        NOT NULL,
  id_document_path TEXT,
  created_at       TIMESTAMPTZ NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "create_index_users_username",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_users_username ON users (username);`,
	},
	{
		Name: "create_table_gemstones",
		SQL: `CREATE TABLE IF NOT EXISTS gemstones (
  id            UUID        PRIMARY KEY DEFAULT uuid_generate_v4(),
  name          TEXT        NOT NULL,
  type          TEXT        NOT NULL,
  color         TEXT        NOT NULL,
  weight_carats NUMERIC     NOT NULL CHECK (weight_carats > 0),
  price         NUMERIC     NOT NULL CHECK (price >= 0),
  is_sold       BOOLEAN     NOT NULL DEFAULT false,
  image_url     TEXT        NOT NULL DEFAULT '',
  created_at    TIMESTAMPTZ NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "create_index_gemstones_type",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_gemstones_type ON gemstones (type);`,
	},
	{
		Name: "create_index_gemstones_color",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_gemstones_color ON gemstones (color);`,
	},
	{
		Name: "create_index_gemstones_created_at",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_gemstones_created_at ON gemstones (created_at);`,
	},
	{
		Name: "seed_gemstones",
		SQL: `INSERT INTO gemstones (name, type, color, weight_carats, price, is_sold, image_url)
VALUES
  ('Blue Sapphire',   'Sapphire',     'Blue',           2.5,  2500, false, ''),
  ('Pink Tourmaline', 'Tourmaline',   'Pink',           3.2,  1800, false, ''),
  ('Emerald Cut',     'Emerald',      'Green',          1.8,  4200, true,  ''),
  ('Ruby Heart',      'Ruby',         'Red',            1.5,  3500, false, ''),
  ('Yellow Citrine',  'Citrine',      'Yellow',         4.5,  1200, false, ''),
  ('Alexandrite',     'Alexandrite',  'Color-changing', 0.95, 8500, false, '');`,
	},
}

// EnsureMigrated checks if the 'users' table exists and runs migrations if it doesn't.
// The seed step only runs on first creation, so existing catalogs are never touched.
func EnsureMigrated(ctx context.Context, db *sql.DB, loc *time.Location, dbHost string) error {
	start := time.Now()

	logJSON(loc, map[string]any{
		"component": "database",
		"event":     "db_migration_check",
		"status":    "starting",
		"db_host":   dbHost,
	})

	var exists bool
	query := "SELECT to_regclass('public.users') IS NOT NULL"
	err := db.QueryRowContext(ctx, query).Scan(&exists)
	if err != nil {
		logJSON(loc, map[string]any{
			"component":     "database",
			"event":         "db_migration_failed",
			"status":        "error",
			"error_message": fmt.Sprintf("failed to check sentinel table: %v", err),
			"db_host":       dbHost,
			"duration_ms":   time.Since(start).Milliseconds(),
		})
		return fmt.Errorf("failed to check sentinel table: %w", err)
	}

	if exists {
		logJSON(loc, map[string]any{
			"component":   "database",
			"event":       "db_migration_skip",
			"status":      "success",
			"msg":         "schema already exists, skipping migration",
			"db_host":     dbHost,
			"duration_ms": time.Since(start).Milliseconds(),
		})
		return nil
	}

	logJSON(loc, map[string]any{
		"component": "database",
		"event":     "db_migration_start",
		"status":    "in_progress",
		"db_host":   dbHost,
	})

	for _, step := range steps {
		stepStart := time.Now()
		_, err := db.ExecContext(ctx, step.SQL)
		if err != nil {
			logJSON(loc, map[string]any{
				"component":        "database",
				"event":            "db_migration_failed",
				"status":           "error",
				"migration_step":   step.Name,
				"error_message":    err.Error(),
				"db_host":          dbHost,
				"duration_ms":      time.Since(start).Milliseconds(),
				"step_duration_ms": time.Since(stepStart).Milliseconds(),
			})
			return fmt.Errorf("migration step %s failed: %w", step.Name, err)
		}

		logJSON(loc, map[string]any{
			"component":        "database",
			"event":            "db_migration_step",
			"status":           "success",
			"migration_step":   step.Name,
			"db_host":          dbHost,
			"step_duration_ms": time.Since(stepStart).Milliseconds(),
		})
	}

	logJSON(loc, map[string]any{
		"component":   "database",
		"event":       "db_migration_success",
		"status":      "success",
		"db_host":     dbHost,
		"duration_ms": time.Since(start).Milliseconds(),
	})

	return nil
}

func logJSON(loc *time.Location, data map[string]any) {
	data["ts"] = time.Now().In(loc).Format(time.RFC3339Nano)
	if _, ok := data["level"]; !ok {
		if data["status"] == "error" {
			data["level"] = "error"
		} else {
			data["level"] = "info"
		}
	}

	b, err := json.Marshal(data)
	if err != nil {
		log.Printf("failed to marshal migration log: %v", err)
		return
	}
	log.SetFlags(0)
	log.Println(string(b))
}
