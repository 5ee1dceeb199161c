package seeder

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tWoAlex/foodgram-project-react/internal/domain"
)

type mockIngredientRepo struct {
	batches [][]domain.Ingredient
}

func (m *mockIngredientRepo) BatchCreate(ctx context.Context, ingredients []domain.Ingredient) (int, error) {
	batch := make([]domain.Ingredient, len(ingredients))
	copy(batch, ingredients)
	m.batches = append(m.batches, batch)
	return len(ingredients), nil
}

type mockTagRepo struct {
	created  []domain.Tag
	existing map[string]bool
}

func (m *mockTagRepo) Create(ctx context.Context, t *domain.Tag) (*domain.Tag, error) {
	if m.existing[t.Slug] {
		return nil, domain.ErrAlreadyExists
	}
	m.created = append(m.created, *t)
	return t, nil
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestSeedIngredients(t *testing.T) {
	path := writeFile(t, "ingredients.csv", "wheat flour,g\neggs,pcs\nmilk,ml\n")

	repo := &mockIngredientRepo{}
	s := New(slog.Default(), repo, &mockTagRepo{})

	inserted, err := s.SeedIngredients(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, 3, inserted)

	require.Len(t, repo.batches, 1)
	assert.Equal(t, "wheat flour", repo.batches[0][0].Name)
	assert.Equal(t, "g", repo.batches[0][0].MeasurementUnit)
	for _, ing := range repo.batches[0] {
		assert.NotEqual(t, [16]byte{}, [16]byte(ing.ID))
	}
}

func TestSeedIngredients_SkipsBlankFields(t *testing.T) {
	path := writeFile(t, "ingredients.csv", "wheat flour,g\n ,g\nsalt, \n")

	repo := &mockIngredientRepo{}
	s := New(slog.Default(), repo, &mockTagRepo{})

	inserted, err := s.SeedIngredients(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, 1, inserted)
}

func TestSeedIngredients_MissingFile(t *testing.T) {
	s := New(slog.Default(), &mockIngredientRepo{}, &mockTagRepo{})

	_, err := s.SeedIngredients(context.Background(), filepath.Join(t.TempDir(), "absent.csv"))
	assert.Error(t, err)
}

func TestSeedTags(t *testing.T) {
	path := writeFile(t, "tags.json", `[
		{"name": "breakfast", "slug": "breakfast", "color": "#E26C2D"},
		{"name": "lunch", "slug": "lunch", "color": "#49B64E"},
		{"name": "dinner", "slug": "dinner", "color": "#8775D2"}
	]`)

	repo := &mockTagRepo{}
	s := New(slog.Default(), &mockIngredientRepo{}, repo)

	created, err := s.SeedTags(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, 3, created)
	assert.Equal(t, "breakfast", repo.created[0].Slug)
}

func TestSeedTags_SkipsExisting(t *testing.T) {
	path := writeFile(t, "tags.json", `[
		{"name": "breakfast", "slug": "breakfast", "color": "#E26C2D"},
		{"name": "lunch", "slug": "lunch", "color": "#49B64E"}
	]`)

	repo := &mockTagRepo{existing: map[string]bool{"breakfast": true}}
	s := New(slog.Default(), &mockIngredientRepo{}, repo)

	created, err := s.SeedTags(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, 1, created)
}

func TestSeedTags_MalformedJSON(t *testing.T) {
	path := writeFile(t, "tags.json", "{not json")

	s := New(slog.Default(), &mockIngredientRepo{}, &mockTagRepo{})

	_, err := s.SeedTags(context.Background(), path)
	assert.Error(t, err)
}
