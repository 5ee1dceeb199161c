// Package imagestore persists recipe images on the local filesystem.
// Images arrive from clients as base64 data URIs and are stored under
// a configured media root; the relative path is what the recipe keeps.
package imagestore

import (
	"encoding/base64"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/tWoAlex/foodgram-project-react/internal/domain"
)

// extByMIME maps accepted image MIME types to file extensions.
var extByMIME = map[string]string{
	"image/png":  ".png",
	"image/jpeg": ".jpg",
	"image/gif":  ".gif",
	"image/webp": ".webp",
}

// Store writes decoded images under Root and hands back paths
// relative to it.
type Store struct {
	root    string
	maxSize int64
}

// New creates a Store rooted at root. The directory is created if missing.
func New(root string, maxSize int64) (*Store, error) {
	if err := os.MkdirAll(filepath.Join(root, "recipes"), 0o755); err != nil {
		return nil, fmt.Errorf("create media root: %w", err)
	}
	return &Store{root: root, maxSize: maxSize}, nil
}

// SaveDataURI decodes a "data:image/...;base64,..." payload and writes it
// to a new file under recipes/. Returns the path relative to the media root.
// Malformed or oversized payloads fail with domain.ErrValidation.
func (s *Store) SaveDataURI(dataURI string) (string, error) {
	mime, payload, ok := splitDataURI(dataURI)
	if !ok {
		return "", domain.NewValidationError("image", "must be a base64 data URI")
	}

	ext, ok := extByMIME[mime]
	if !ok {
		return "", domain.NewValidationError("image", fmt.Sprintf("unsupported image type %q", mime))
	}

	raw, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return "", domain.NewValidationError("image", "invalid base64 payload")
	}
	if len(raw) == 0 {
		return "", domain.NewValidationError("image", "empty image")
	}
	if s.maxSize > 0 && int64(len(raw)) > s.maxSize {
		return "", domain.NewValidationError("image", fmt.Sprintf("image exceeds %d bytes", s.maxSize))
	}

	relPath := filepath.Join("recipes", uuid.New().String()+ext)
	if err := os.WriteFile(filepath.Join(s.root, relPath), raw, 0o644); err != nil {
		return "", fmt.Errorf("write image: %w", err)
	}

	return relPath, nil
}

// Release deletes a previously saved image. A missing file is not an error:
// release runs after commit and must tolerate repeats.
func (s *Store) Release(relPath string) error {
	if relPath == "" {
		return nil
	}

	err := os.Remove(filepath.Join(s.root, relPath))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove image: %w", err)
	}
	return nil
}

// splitDataURI extracts the MIME type and base64 payload from a data URI.
func splitDataURI(dataURI string) (mime, payload string, ok bool) {
	rest, found := strings.CutPrefix(dataURI, "data:")
	if !found {
		return "", "", false
	}

	meta, payload, found := strings.Cut(rest, ",")
	if !found {
		return "", "", false
	}

	mime, found = strings.CutSuffix(meta, ";base64")
	if !found {
		return "", "", false
	}

	return mime, payload, true
}
