// Package recipe implements the Recipe repository using PostgreSQL.
// Listing queries are built with squirrel (dynamic filters, viewer-relative
// EXISTS annotations); writes use fixed SQL. Component and tag sets are
// written with full-replace semantics: delete everything, insert the new set.
package recipe

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/tWoAlex/foodgram-project-react/internal/adapter/postgres"
	"github.com/tWoAlex/foodgram-project-react/internal/domain"
)

// Repo provides recipe persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new recipe repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const createSQL = `
INSERT INTO recipes (id, author_id, name, description, image_path, cooking_time, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $7)`

const updateSQL = `
UPDATE recipes
SET name = $2, description = $3, image_path = $4, cooking_time = $5, updated_at = $6
WHERE id = $1`

const deleteSQL = `DELETE FROM recipes WHERE id = $1`

const getImagePathSQL = `SELECT image_path FROM recipes WHERE id = $1`

const existsByAuthorAndNameSQL = `
SELECT EXISTS (
    SELECT 1 FROM recipes
    WHERE author_id = $1 AND name = $2 AND id <> $3
)`

const deleteComponentsSQL = `DELETE FROM recipe_components WHERE recipe_id = $1`

const insertComponentsSQL = `
INSERT INTO recipe_components (recipe_id, ingredient_id, amount)
SELECT $1, unnest($2::uuid[]), unnest($3::int[])`

const deleteTagsSQL = `DELETE FROM recipe_tags WHERE recipe_id = $1`

const insertTagsSQL = `
INSERT INTO recipe_tags (recipe_id, tag_id)
SELECT $1, unnest($2::uuid[])`

const componentsByRecipeIDsSQL = `
SELECT rc.recipe_id, rc.ingredient_id, rc.amount,
       i.name, i.measurement_unit
FROM recipe_components rc
JOIN ingredients i ON i.id = rc.ingredient_id
WHERE rc.recipe_id = ANY($1::uuid[])
ORDER BY rc.recipe_id, i.name`

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts the recipe row. Component and tag sets are written
// separately via ReplaceComponents / ReplaceTags inside the same transaction.
// Returns domain.ErrAlreadyExists on an (author, name) collision.
func (r *Repo) Create(ctx context.Context, rec *domain.Recipe) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	_, err := querier.Exec(ctx, createSQL,
		rec.ID, rec.AuthorID, rec.Name, rec.Description, rec.ImagePath,
		rec.CookingTime, rec.CreatedAt,
	)
	if err != nil {
		return postgres.MapError(err, "recipe")
	}

	return nil
}

// Update rewrites the recipe's scalar fields.
// Returns domain.ErrNotFound if the recipe no longer exists and
// domain.ErrAlreadyExists on an (author, name) collision.
func (r *Repo) Update(ctx context.Context, rec *domain.Recipe) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := querier.Exec(ctx, updateSQL,
		rec.ID, rec.Name, rec.Description, rec.ImagePath, rec.CookingTime, time.Now().UTC(),
	)
	if err != nil {
		return postgres.MapError(err, "recipe")
	}

	if tag.RowsAffected() == 0 {
		return fmt.Errorf("recipe %s: %w", rec.ID, domain.ErrNotFound)
	}

	return nil
}

// Delete removes the recipe. Components, tag links, favorites, and cart
// entries referencing it go with it via ON DELETE CASCADE.
// Returns domain.ErrNotFound if the recipe does not exist.
func (r *Repo) Delete(ctx context.Context, recipeID uuid.UUID) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := querier.Exec(ctx, deleteSQL, recipeID)
	if err != nil {
		return postgres.MapError(err, "recipe")
	}

	if tag.RowsAffected() == 0 {
		return fmt.Errorf("recipe %s: %w", recipeID, domain.ErrNotFound)
	}

	return nil
}

// ExistsByAuthorAndName reports whether the author already has another
// recipe with the given name. excludeID skips the recipe being replaced
// so its own name never counts as a collision.
func (r *Repo) ExistsByAuthorAndName(ctx context.Context, authorID uuid.UUID, name string, excludeID uuid.UUID) (bool, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	var exists bool
	if err := querier.QueryRow(ctx, existsByAuthorAndNameSQL, authorID, name, excludeID).Scan(&exists); err != nil {
		return false, fmt.Errorf("recipe name exists: %w", err)
	}

	return exists, nil
}

// ReplaceComponents discards the recipe's current component set and inserts
// the new one. Must run inside a transaction together with the recipe write.
// Returns domain.ErrNotFound if an ingredient id does not exist and
// domain.ErrValidation if the amount check fails.
func (r *Repo) ReplaceComponents(ctx context.Context, recipeID uuid.UUID, components []domain.Component) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	if _, err := querier.Exec(ctx, deleteComponentsSQL, recipeID); err != nil {
		return postgres.MapError(err, "recipe_component")
	}

	if len(components) == 0 {
		return nil
	}

	ingredientIDs := make([]uuid.UUID, len(components))
	amounts := make([]int32, len(components))
	for i, c := range components {
		ingredientIDs[i] = c.IngredientID
		amounts[i] = int32(c.Amount)
	}

	if _, err := querier.Exec(ctx, insertComponentsSQL, recipeID, ingredientIDs, amounts); err != nil {
		return postgres.MapError(err, "recipe_component")
	}

	return nil
}

// ReplaceTags discards the recipe's current tag links and inserts the new
// set. Must run inside a transaction together with the recipe write.
// Returns domain.ErrNotFound if a tag id does not exist.
func (r *Repo) ReplaceTags(ctx context.Context, recipeID uuid.UUID, tagIDs []uuid.UUID) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	if _, err := querier.Exec(ctx, deleteTagsSQL, recipeID); err != nil {
		return postgres.MapError(err, "recipe_tag")
	}

	if len(tagIDs) == 0 {
		return nil
	}

	if _, err := querier.Exec(ctx, insertTagsSQL, recipeID, tagIDs); err != nil {
		return postgres.MapError(err, "recipe_tag")
	}

	return nil
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// Find returns recipes matching the filter, annotated relative to the
// viewer, plus the total count of matching rows (before limit/offset).
// viewerID == nil means an anonymous viewer: both flags are false.
func (r *Repo) Find(ctx context.Context, viewerID *uuid.UUID, filter domain.RecipeFilter) ([]domain.AnnotatedRecipe, int, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := findQuery(viewerID, filter).ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build find: %w", err)
	}

	rows, err := querier.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("find recipes: %w", err)
	}
	defer rows.Close()

	recipes, err := scanAnnotatedRecipes(rows)
	if err != nil {
		return nil, 0, fmt.Errorf("find recipes: %w", err)
	}

	countSQL, countArgs, err := countQuery(viewerID, filter).ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build count: %w", err)
	}

	var total int
	if err := querier.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count recipes: %w", err)
	}

	return recipes, total, nil
}

// GetAnnotatedByID returns a single recipe annotated relative to the viewer.
// Returns domain.ErrNotFound if the recipe does not exist.
func (r *Repo) GetAnnotatedByID(ctx context.Context, viewerID *uuid.UUID, recipeID uuid.UUID) (*domain.AnnotatedRecipe, error) {
	builder := qb.Select(selectColumns(viewerID)...).
		From("recipes r").
		Join("users u ON u.id = r.author_id")
	if viewerID != nil {
		builder = builder.CrossJoin("(SELECT ?::uuid AS id) v", *viewerID)
	}
	builder = builder.Where(sq.Eq{"r.id": recipeID})

	sql, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get: %w", err)
	}

	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rec, err := scanAnnotatedRecipe(querier.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "recipe")
	}

	return rec, nil
}

// GetComponentsByRecipeIDs returns components for multiple recipes with
// ingredient data resolved, ordered by recipe then ingredient name.
// Results carry RecipeID for grouping by the caller.
func (r *Repo) GetComponentsByRecipeIDs(ctx context.Context, recipeIDs []uuid.UUID) ([]domain.Component, error) {
	if len(recipeIDs) == 0 {
		return []domain.Component{}, nil
	}

	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, componentsByRecipeIDsSQL, recipeIDs)
	if err != nil {
		return nil, fmt.Errorf("get components by recipe_ids: %w", err)
	}
	defer rows.Close()

	var result []domain.Component
	for rows.Next() {
		var c domain.Component
		if err := rows.Scan(&c.RecipeID, &c.IngredientID, &c.Amount, &c.Ingredient.Name, &c.Ingredient.MeasurementUnit); err != nil {
			return nil, err
		}
		c.Ingredient.ID = c.IngredientID
		result = append(result, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if result == nil {
		result = []domain.Component{}
	}

	return result, nil
}

// ---------------------------------------------------------------------------
// Row scanning helpers
// ---------------------------------------------------------------------------

func scanAnnotatedRecipes(rows pgx.Rows) ([]domain.AnnotatedRecipe, error) {
	var result []domain.AnnotatedRecipe
	for rows.Next() {
		rec, err := scanAnnotatedRecipe(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if result == nil {
		result = []domain.AnnotatedRecipe{}
	}

	return result, nil
}

func scanAnnotatedRecipe(row pgx.Row) (*domain.AnnotatedRecipe, error) {
	var (
		rec    domain.AnnotatedRecipe
		author domain.User
	)

	err := row.Scan(
		&rec.ID, &rec.AuthorID, &rec.Name, &rec.Description, &rec.ImagePath,
		&rec.CookingTime, &rec.CreatedAt, &rec.UpdatedAt,
		&author.Email, &author.Username, &author.FirstName, &author.LastName,
		&rec.IsFavorited, &rec.IsInShoppingCart,
	)
	if err != nil {
		return nil, err
	}

	author.ID = rec.AuthorID
	rec.Author = &author

	return &rec, nil
}
