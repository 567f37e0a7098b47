package repository

import (
	"context"

	"gemtrade/internal/model"
)

// UserRepository defines data access for user accounts using SQL queries only.
// No business logic here — strictly persistence operations.
type UserRepository interface {
	// Create inserts a new user record and returns it with the DB-assigned
	// id and creation timestamp. Returns ErrDuplicateEmail when the email
	// uniqueness constraint is violated.
	Create(ctx context.Context, user *model.User) (*model.User, error)

	// FindByEmail returns a user by email, or sql.ErrNoRows when absent.
	FindByEmail(ctx context.Context, email string) (*model.User, error)

	// FindByUsername returns a user by username, or sql.ErrNoRows when absent.
	FindByUsername(ctx context.Context, username string) (*model.User, error)
}
