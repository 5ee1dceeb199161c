// Package tag implements the Tag repository using PostgreSQL.
// Tags are managed administratively; end users only attach them to recipes
// through the recipe_tags join table.
package tag

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/tWoAlex/foodgram-project-react/internal/adapter/postgres"
	"github.com/tWoAlex/foodgram-project-react/internal/domain"
)

// TagWithRecipeID is the batch result type for GetByRecipeIDs.
// It embeds domain.Tag and adds RecipeID for grouping by the caller.
type TagWithRecipeID struct {
	RecipeID uuid.UUID
	domain.Tag
}

// Repo provides tag persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new tag repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const getByIDSQL = `
SELECT id, name, slug, color
FROM tags
WHERE id = $1`

const listSQL = `
SELECT id, name, slug, color
FROM tags
ORDER BY name`

const countByIDsSQL = `SELECT count(*) FROM tags WHERE id = ANY($1::uuid[])`

const getByRecipeIDsSQL = `
SELECT rt.recipe_id, t.id, t.name, t.slug, t.color
FROM recipe_tags rt
JOIN tags t ON rt.tag_id = t.id
WHERE rt.recipe_id = ANY($1::uuid[])
ORDER BY rt.recipe_id, t.name`

const createSQL = `
INSERT INTO tags (id, name, slug, color)
VALUES ($1, $2, $3, $4)
RETURNING id, name, slug, color`

// GetByID returns a tag by primary key.
// Returns domain.ErrNotFound if the tag does not exist.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Tag, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	var t domain.Tag
	err := querier.QueryRow(ctx, getByIDSQL, id).Scan(&t.ID, &t.Name, &t.Slug, &t.Color)
	if err != nil {
		return nil, postgres.MapError(err, "tag")
	}

	return &t, nil
}

// List returns all tags ordered by name.
func (r *Repo) List(ctx context.Context) ([]domain.Tag, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, listSQL)
	if err != nil {
		return nil, fmt.Errorf("list tags: %w", err)
	}
	defer rows.Close()

	return scanTags(rows)
}

// CountByIDs returns how many of the given ids reference existing tags.
// Used to validate a tag set before writing recipe links.
func (r *Repo) CountByIDs(ctx context.Context, ids []uuid.UUID) (int, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	querier := postgres.QuerierFromCtx(ctx, r.pool)

	var count int
	if err := querier.QueryRow(ctx, countByIDsSQL, ids).Scan(&count); err != nil {
		return 0, fmt.Errorf("count tags by ids: %w", err)
	}

	return count, nil
}

// GetByRecipeIDs returns tags for multiple recipes via the M2M table.
// Results include RecipeID for grouping by the caller.
func (r *Repo) GetByRecipeIDs(ctx context.Context, recipeIDs []uuid.UUID) ([]TagWithRecipeID, error) {
	if len(recipeIDs) == 0 {
		return []TagWithRecipeID{}, nil
	}

	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, getByRecipeIDsSQL, recipeIDs)
	if err != nil {
		return nil, fmt.Errorf("get tags by recipe_ids: %w", err)
	}
	defer rows.Close()

	var result []TagWithRecipeID
	for rows.Next() {
		var item TagWithRecipeID
		if err := rows.Scan(&item.RecipeID, &item.ID, &item.Name, &item.Slug, &item.Color); err != nil {
			return nil, err
		}
		result = append(result, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if result == nil {
		result = []TagWithRecipeID{}
	}

	return result, nil
}

// Create inserts a new tag.
// Returns domain.ErrAlreadyExists on a name, slug, or color collision.
func (r *Repo) Create(ctx context.Context, t *domain.Tag) (*domain.Tag, error) {
	id := t.ID
	if id == uuid.Nil {
		id = uuid.New()
	}

	querier := postgres.QuerierFromCtx(ctx, r.pool)

	var created domain.Tag
	err := querier.QueryRow(ctx, createSQL, id, t.Name, t.Slug, t.Color).
		Scan(&created.ID, &created.Name, &created.Slug, &created.Color)
	if err != nil {
		return nil, postgres.MapError(err, "tag")
	}

	return &created, nil
}

func scanTags(rows pgx.Rows) ([]domain.Tag, error) {
	var result []domain.Tag
	for rows.Next() {
		var t domain.Tag
		if err := rows.Scan(&t.ID, &t.Name, &t.Slug, &t.Color); err != nil {
			return nil, err
		}
		result = append(result, t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if result == nil {
		result = []domain.Tag{}
	}

	return result, nil
}
