package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"gemtrade/internal/storage"
)

// MaxDocumentSize is the upload ceiling for verification documents (5 MiB).
const MaxDocumentSize = 5 << 20

// documentPrefix is the object-key namespace for verification documents.
const documentPrefix = "uploads"

var (
	ErrReaderNil            = errors.New("reader is nil")
	ErrDocumentNameRequired = errors.New("document name is required")
	ErrUnsupportedMediaType = errors.New("only images and PDF files are allowed")
	ErrDocumentTooLarge     = errors.New("file exceeds the 5MB limit")
)

// DocumentIntake accepts uploaded verification documents, enforces the
// type/size policy, and stores them under collision-free names.
type DocumentIntake interface {
	// Accept validates the upload and writes it to object storage, returning
	// the stored reference. On any failure no reference is returned and
	// nothing is left referenced-but-missing.
	Accept(ctx context.Context, r io.Reader, originalFilename string, contentType string, size int64) (string, error)

	// Open streams a previously stored document by its public name (the last
	// path segment of the stored reference).
	Open(ctx context.Context, name string) (io.ReadCloser, storage.ObjectInfo, error)
}

type documentIntake struct {
	store storage.Storage
}

// NewDocumentIntake constructs a DocumentIntake backed by the given storage.
func NewDocumentIntake(store storage.Storage) DocumentIntake {
	return &documentIntake{store: store}
}

// allowedContentType implements the verification-document policy:
// any image type, or PDF.
func allowedContentType(ct string) bool {
	return strings.HasPrefix(ct, "image/") || ct == "application/pdf"
}

func (s *documentIntake) Accept(ctx context.Context, r io.Reader, originalFilename string, contentType string, size int64) (string, error) {
	if r == nil {
		return "", ErrReaderNil
	}
	if !allowedContentType(contentType) {
		return "", ErrUnsupportedMediaType
	}
	if size > MaxDocumentSize {
		return "", ErrDocumentTooLarge
	}

	// Strip any path segments from the client-supplied name, then prefix a
	// random suffix so concurrent uploads of the same file never collide.
	base := filepath.Base(filepath.Clean(originalFilename))
	if base == "." || base == string(filepath.Separator) || base == "" {
		return "", ErrDocumentNameRequired
	}
	genName := uuid.New().String() + "-" + base
	key := documentPrefix + "/" + genName

	// LimitReader caps the write even if the declared size was understated.
	limited := io.LimitReader(r, MaxDocumentSize)
	if _, err := s.store.Put(ctx, key, limited, storage.PutObjectOptions{
		Size:        size,
		ContentType: contentType,
		Metadata: map[string]string{
			"original-filename": base,
		},
	}); err != nil {
		return "", fmt.Errorf("store document: %w", err)
	}

	return key, nil
}

func (s *documentIntake) Open(ctx context.Context, name string) (io.ReadCloser, storage.ObjectInfo, error) {
	if name == "" {
		return nil, storage.ObjectInfo{}, ErrDocumentNameRequired
	}
	// Reject traversal attempts; stored names never contain separators.
	if strings.ContainsAny(name, "/\\") || name == "." || name == ".." {
		return nil, storage.ObjectInfo{}, ErrDocumentNameRequired
	}
	return s.store.Get(ctx, documentPrefix+"/"+name)
}
