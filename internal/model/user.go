package model

import "time"

// User represents a registered marketplace account.
// This is a pure domain model with no database-specific dependencies or tags.
// PasswordHash is never serialized; plaintext passwords never reach this type.
type User struct {
	ID             int64     `json:"id"`
	FullName       string    `json:"full_name"`
	Email          string    `json:"email"`
	Username       string    `json:"username"`
	PasswordHash   string    `json:"-"`
	IDDocumentPath *string   `json:"id_document_path,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}

// PublicUser is the profile shape returned to clients after login.
// It deliberately omits the password hash and document path.
type PublicUser struct {
	ID       int64  `json:"id"`
	Email    string `json:"email"`
	FullName string `json:"full_name"`
	Username string `json:"username"`
}

// Public returns the client-safe view of the user.
func (u *User) Public() PublicUser {
	return PublicUser{
		ID:       u.ID,
		Email:    u.Email,
		FullName: u.FullName,
		Username: u.Username,
	}
}
