package service

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"strings"

	"gemtrade/internal/auth"
	"gemtrade/internal/model"
	"gemtrade/internal/repository"
)

var (
	ErrFieldsRequired     = errors.New("all fields are required")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// DocumentUpload carries an optional verification file through registration.
type DocumentUpload struct {
	Reader      io.Reader
	Filename    string
	ContentType string
	Size        int64
}

// RegisterInput is the typed registration form. Password is plaintext here
// and nowhere else; it is hashed before any persistence.
type RegisterInput struct {
	FullName string
	Email    string
	Username string
	Password string
	Document *DocumentUpload
}

// LoginResult is returned on successful authentication.
type LoginResult struct {
	Token string           `json:"token"`
	User  model.PublicUser `json:"user"`
}

// AuthService implements the registration and authentication workflows.
type AuthService interface {
	// Register validates the input, stores the optional verification
	// document, hashes the password, and persists the user. Returns the new
	// user id. Duplicate emails yield ErrEmailTaken whether caught by the
	// pre-check or by the store's uniqueness constraint.
	Register(ctx context.Context, in RegisterInput) (int64, error)

	// Login verifies the credentials and issues a session token. Unknown
	// email and wrong password are indistinguishable to the caller.
	Login(ctx context.Context, email, password string) (*LoginResult, error)
}

type authService struct {
	users  repository.UserRepository
	intake DocumentIntake
	hasher auth.PasswordHasher
	tokens auth.TokenIssuer
}

// NewAuthService constructs an AuthService. All collaborators are injected so
// tests can substitute doubles.
func NewAuthService(users repository.UserRepository, intake DocumentIntake, hasher auth.PasswordHasher, tokens auth.TokenIssuer) AuthService {
	return &authService{users: users, intake: intake, hasher: hasher, tokens: tokens}
}

func (s *authService) Register(ctx context.Context, in RegisterInput) (int64, error) {
	fullName := strings.TrimSpace(in.FullName)
	email := strings.ToLower(strings.TrimSpace(in.Email))
	username := strings.TrimSpace(in.Username)
	if fullName == "" || email == "" || username == "" || in.Password == "" {
		return 0, ErrFieldsRequired
	}

	// Pre-check for an existing account. The UNIQUE constraint remains the
	// authoritative guard; this just gives the common case a clean error
	// before any document is written.
	if _, err := s.users.FindByEmail(ctx, email); err == nil {
		return 0, ErrEmailTaken
	} else if !errors.Is(err, sql.ErrNoRows) {
		return 0, fmt.Errorf("lookup email: %w", err)
	}

	// Document intake runs before any user row exists so a rejected file
	// never leaves a partial registration behind.
	var docPath *string
	if in.Document != nil {
		ref, err := s.intake.Accept(ctx, in.Document.Reader, in.Document.Filename, in.Document.ContentType, in.Document.Size)
		if err != nil {
			return 0, err
		}
		docPath = &ref
	}

	digest, err := s.hasher.Hash(in.Password)
	if err != nil {
		return 0, fmt.Errorf("hash password: %w", err)
	}

	stored, err := s.users.Create(ctx, &model.User{
		FullName:       fullName,
		Email:          email,
		Username:       username,
		PasswordHash:   digest,
		IDDocumentPath: docPath,
	})
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			// The pre-check raced with a concurrent registration.
			return 0, ErrEmailTaken
		}
		// The document (if any) is now orphaned in storage. No distributed
		// transaction spans both writes; log and surface the insert failure.
		if docPath != nil {
			if entry, mErr := json.Marshal(map[string]any{
				"level": "warn",
				"msg":   "orphaned verification document",
				"path":  *docPath,
			}); mErr == nil {
				log.Println(string(entry))
			}
		}
		return 0, fmt.Errorf("create user: %w", err)
	}

	return stored.ID, nil
}

func (s *authService) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return nil, ErrFieldsRequired
	}

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			// Same error as a bad password so responses never reveal
			// whether an email is registered.
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("lookup email: %w", err)
	}

	if !s.hasher.Verify(password, user.PasswordHash) {
		return nil, ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user.ID, user.Email)
	if err != nil {
		return nil, fmt.Errorf("issue token: %w", err)
	}

	return &LoginResult{Token: token, User: user.Public()}, nil
}
