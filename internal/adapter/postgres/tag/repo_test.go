package tag_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tWoAlex/foodgram-project-react/internal/adapter/postgres/tag"
	"github.com/tWoAlex/foodgram-project-react/internal/adapter/postgres/testhelper"
	"github.com/tWoAlex/foodgram-project-react/internal/domain"
)

func newRepo(t *testing.T) (*tag.Repo, *pgxpool.Pool) {
	t.Helper()
	pool := testhelper.SetupTestDB(t)
	return tag.New(pool), pool
}

func TestRepo_Create_AndGetByID(t *testing.T) {
	t.Parallel()
	repo, _ := newRepo(t)
	ctx := context.Background()

	suffix := uuid.New().String()[:8]
	created, err := repo.Create(ctx, &domain.Tag{
		Name:  "Breakfast-" + suffix,
		Slug:  "breakfast-" + suffix,
		Color: "#E26C2D",
	})
	if err != nil {
		t.Fatalf("Create: unexpected error: %v", err)
	}
	if created.ID == uuid.Nil {
		t.Error("expected non-nil tag ID")
	}

	got, err := repo.GetByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("GetByID: unexpected error: %v", err)
	}
	if got.Slug != created.Slug || got.Color != "#E26C2D" {
		t.Errorf("mismatch: got %+v, want %+v", got, created)
	}
}

func TestRepo_Create_DuplicateSlug(t *testing.T) {
	t.Parallel()
	repo, pool := newRepo(t)
	ctx := context.Background()

	existing := testhelper.SeedTag(t, pool)

	_, err := repo.Create(ctx, &domain.Tag{
		Name:  "other-" + uuid.New().String()[:8],
		Slug:  existing.Slug,
		Color: "#000001",
	})
	if !errors.Is(err, domain.ErrAlreadyExists) {
		t.Fatalf("expected ErrAlreadyExists, got: %v", err)
	}
}

func TestRepo_GetByID_Missing_NotFound(t *testing.T) {
	t.Parallel()
	repo, _ := newRepo(t)

	_, err := repo.GetByID(context.Background(), uuid.New())
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got: %v", err)
	}
}

func TestRepo_CountByIDs(t *testing.T) {
	t.Parallel()
	repo, pool := newRepo(t)
	ctx := context.Background()

	a := testhelper.SeedTag(t, pool)
	b := testhelper.SeedTag(t, pool)

	count, err := repo.CountByIDs(ctx, []uuid.UUID{a.ID, b.ID, uuid.New()})
	if err != nil {
		t.Fatalf("CountByIDs: unexpected error: %v", err)
	}
	if count != 2 {
		t.Errorf("expected 2 known tags, got %d", count)
	}
}

func TestRepo_GetByRecipeIDs(t *testing.T) {
	t.Parallel()
	repo, pool := newRepo(t)
	ctx := context.Background()

	author := testhelper.SeedUser(t, pool)
	recipe1 := testhelper.SeedRecipe(t, pool, author.ID)
	recipe2 := testhelper.SeedRecipe(t, pool, author.ID)

	tagA := testhelper.SeedTag(t, pool)
	tagB := testhelper.SeedTag(t, pool)
	testhelper.SeedTagLink(t, pool, recipe1.ID, tagA.ID)
	testhelper.SeedTagLink(t, pool, recipe1.ID, tagB.ID)
	testhelper.SeedTagLink(t, pool, recipe2.ID, tagA.ID)

	got, err := repo.GetByRecipeIDs(ctx, []uuid.UUID{recipe1.ID, recipe2.ID})
	if err != nil {
		t.Fatalf("GetByRecipeIDs: unexpected error: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("expected 3 links, got %d", len(got))
	}

	perRecipe := map[uuid.UUID]int{}
	for _, link := range got {
		perRecipe[link.RecipeID]++
	}
	if perRecipe[recipe1.ID] != 2 || perRecipe[recipe2.ID] != 1 {
		t.Errorf("link distribution mismatch: %+v", perRecipe)
	}
}
