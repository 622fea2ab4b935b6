// Package filestore persists uploaded certificate documents on the local
// filesystem, one directory per user.
package filestore

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// Store writes documents under a base directory. The reference it returns
// is a path relative to that directory, safe to persist in the database.
type Store struct {
	baseDir string
}

// New creates a document store rooted at baseDir, creating the directory
// if it does not exist.
func New(baseDir string) (*Store, error) {
	if err := os.MkdirAll(baseDir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &Store{baseDir: baseDir}, nil
}

// Save writes the document into the user's directory under a unique name
// and returns the relative reference.
func (s *Store) Save(ctx context.Context, userID uuid.UUID, filename string, data []byte) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	userDir := filepath.Join(s.baseDir, userID.String())
	if err := os.MkdirAll(userDir, 0o755); err != nil {
		return "", fmt.Errorf("create user dir: %w", err)
	}

	name := uuid.New().String()[:8] + "_" + sanitizeFilename(filename)
	path := filepath.Join(userDir, name)

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("write document: %w", err)
	}

	return filepath.ToSlash(filepath.Join(userID.String(), name)), nil
}

// Open returns the stored document for a reference previously returned by
// Save. References pointing outside the base directory are rejected.
func (s *Store) Open(ctx context.Context, ref string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	clean := filepath.Clean(filepath.FromSlash(ref))
	if strings.HasPrefix(clean, "..") || filepath.IsAbs(clean) {
		return nil, fmt.Errorf("invalid document ref %q", ref)
	}

	data, err := os.ReadFile(filepath.Join(s.baseDir, clean))
	if err != nil {
		return nil, fmt.Errorf("read document: %w", err)
	}
	return data, nil
}

// sanitizeFilename strips path separators and control characters, keeping
// only the base name. Empty results fall back to "document".
func sanitizeFilename(filename string) string {
	base := filepath.Base(filepath.FromSlash(filename))
	var b strings.Builder
	for _, r := range base {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '.' || r == '-' || r == '_':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}
	out := strings.Trim(b.String(), "._")
	if out == "" {
		return "document"
	}
	return out
}
