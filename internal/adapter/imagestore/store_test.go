package imagestore

import (
	"encoding/base64"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/tWoAlex/foodgram-project-react/internal/domain"
)

// 1x1 transparent PNG.
var pngBytes = []byte{
	0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A,
	0x00, 0x00, 0x00, 0x0D, 0x49, 0x48, 0x44, 0x52,
	0x00, 0x00, 0x00, 0x01, 0x00, 0x00, 0x00, 0x01,
	0x08, 0x06, 0x00, 0x00, 0x00, 0x1F, 0x15, 0xC4,
	0x89, 0x00, 0x00, 0x00, 0x0A, 0x49, 0x44, 0x41,
	0x54, 0x78, 0x9C, 0x63, 0x00, 0x01, 0x00, 0x00,
	0x05, 0x00, 0x01, 0x0D, 0x0A, 0x2D, 0xB4, 0x00,
	0x00, 0x00, 0x00, 0x49, 0x45, 0x4E, 0x44, 0xAE,
	0x42, 0x60, 0x82,
}

func pngDataURI() string {
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(pngBytes)
}

func newStore(t *testing.T, maxSize int64) *Store {
	t.Helper()
	store, err := New(t.TempDir(), maxSize)
	if err != nil {
		t.Fatalf("New: unexpected error: %v", err)
	}
	return store
}

func TestStore_SaveDataURI(t *testing.T) {
	t.Parallel()
	store := newStore(t, 0)

	relPath, err := store.SaveDataURI(pngDataURI())
	if err != nil {
		t.Fatalf("SaveDataURI: unexpected error: %v", err)
	}
	if !strings.HasPrefix(relPath, "recipes"+string(filepath.Separator)) {
		t.Errorf("expected path under recipes/, got %q", relPath)
	}
	if filepath.Ext(relPath) != ".png" {
		t.Errorf("expected .png extension, got %q", relPath)
	}

	raw, err := os.ReadFile(filepath.Join(store.root, relPath))
	if err != nil {
		t.Fatalf("read saved image: %v", err)
	}
	if len(raw) != len(pngBytes) {
		t.Errorf("size mismatch: got %d, want %d", len(raw), len(pngBytes))
	}
}

func TestStore_SaveDataURI_Malformed(t *testing.T) {
	t.Parallel()
	store := newStore(t, 0)

	for _, input := range []string{
		"",
		"not a data uri",
		"data:image/png,missing-base64-marker",
		"data:image/png;base64",
		"data:image/png;base64,!!!not-base64!!!",
		"data:image/png;base64,", // empty payload
	} {
		if _, err := store.SaveDataURI(input); !errors.Is(err, domain.ErrValidation) {
			t.Errorf("input %q: expected ErrValidation, got: %v", input, err)
		}
	}
}

func TestStore_SaveDataURI_UnsupportedType(t *testing.T) {
	t.Parallel()
	store := newStore(t, 0)

	uri := "data:application/pdf;base64," + base64.StdEncoding.EncodeToString([]byte("pdf"))
	if _, err := store.SaveDataURI(uri); !errors.Is(err, domain.ErrValidation) {
		t.Errorf("expected ErrValidation for unsupported type, got: %v", err)
	}
}

func TestStore_SaveDataURI_TooLarge(t *testing.T) {
	t.Parallel()
	store := newStore(t, 8)

	if _, err := store.SaveDataURI(pngDataURI()); !errors.Is(err, domain.ErrValidation) {
		t.Errorf("expected ErrValidation for oversized image, got: %v", err)
	}
}

func TestStore_Release(t *testing.T) {
	t.Parallel()
	store := newStore(t, 0)

	relPath, err := store.SaveDataURI(pngDataURI())
	if err != nil {
		t.Fatalf("SaveDataURI: %v", err)
	}

	if err := store.Release(relPath); err != nil {
		t.Fatalf("Release: unexpected error: %v", err)
	}
	if _, err := os.Stat(filepath.Join(store.root, relPath)); !os.IsNotExist(err) {
		t.Error("expected file to be gone after Release")
	}

	// Releasing twice, or an empty path, is a no-op.
	if err := store.Release(relPath); err != nil {
		t.Errorf("Release repeat: unexpected error: %v", err)
	}
	if err := store.Release(""); err != nil {
		t.Errorf("Release empty: unexpected error: %v", err)
	}
}
