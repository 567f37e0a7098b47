// Package repository contains data access layer abstractions.
// Implementations live in subpackages (e.g., postgres) inside this directory.
package repository

import "errors"

// ErrDuplicateEmail is returned by UserRepository.Create when the email
// uniqueness constraint is violated at the storage layer. The registration
// workflow pre-checks by email, but the constraint is the authoritative
// guard when concurrent registrations race past the pre-check.
var ErrDuplicateEmail = errors.New("email already registered")

// PageQuery holds limit/offset pagination parameters.
type PageQuery struct {
	Limit  int
	Offset int
}

// PageResult is a generic pagination result wrapper.
// T is typically a model type.
type PageResult[T any] struct {
	Items []T
	Total int
}
