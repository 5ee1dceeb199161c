// Package ingredient implements the Ingredient repository using PostgreSQL.
// The catalog is read-mostly: rows are created by the offline seeder and
// referenced by recipe components.
package ingredient

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/tWoAlex/foodgram-project-react/internal/adapter/postgres"
	"github.com/tWoAlex/foodgram-project-react/internal/domain"
)

// Repo provides ingredient persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new ingredient repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const getByIDSQL = `
SELECT id, name, measurement_unit
FROM ingredients
WHERE id = $1`

const getByIDsSQL = `
SELECT id, name, measurement_unit
FROM ingredients
WHERE id = ANY($1::uuid[])
ORDER BY name`

const listSQL = `
SELECT id, name, measurement_unit
FROM ingredients
WHERE ($1 = '' OR name ILIKE '%' || $1 || '%')
ORDER BY name`

const batchCreateSQL = `
INSERT INTO ingredients (id, name, measurement_unit)
SELECT unnest($1::uuid[]), unnest($2::text[]), unnest($3::text[])
ON CONFLICT (name, measurement_unit) DO NOTHING`

// GetByID returns an ingredient by primary key.
// Returns domain.ErrNotFound if it does not exist.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Ingredient, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	var ing domain.Ingredient
	err := querier.QueryRow(ctx, getByIDSQL, id).Scan(&ing.ID, &ing.Name, &ing.MeasurementUnit)
	if err != nil {
		return nil, postgres.MapError(err, "ingredient")
	}

	return &ing, nil
}

// GetByIDs returns ingredients for the given ids, ordered by name.
// IDs that do not exist are simply absent from the result.
func (r *Repo) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.Ingredient, error) {
	if len(ids) == 0 {
		return []domain.Ingredient{}, nil
	}

	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, getByIDsSQL, ids)
	if err != nil {
		return nil, fmt.Errorf("get ingredients by ids: %w", err)
	}
	defer rows.Close()

	return scanIngredients(rows)
}

// List returns ingredients ordered by name, optionally filtered by a
// case-insensitive name substring.
func (r *Repo) List(ctx context.Context, search string) ([]domain.Ingredient, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, listSQL, search)
	if err != nil {
		return nil, fmt.Errorf("list ingredients: %w", err)
	}
	defer rows.Close()

	return scanIngredients(rows)
}

// BatchCreate inserts ingredients, skipping (name, measurement_unit) pairs
// that already exist. Returns the number of new rows.
func (r *Repo) BatchCreate(ctx context.Context, ingredients []domain.Ingredient) (int, error) {
	if len(ingredients) == 0 {
		return 0, nil
	}

	ids := make([]uuid.UUID, len(ingredients))
	names := make([]string, len(ingredients))
	units := make([]string, len(ingredients))
	for i, ing := range ingredients {
		id := ing.ID
		if id == uuid.Nil {
			id = uuid.New()
		}
		ids[i] = id
		names[i] = ing.Name
		units[i] = ing.MeasurementUnit
	}

	querier := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := querier.Exec(ctx, batchCreateSQL, ids, names, units)
	if err != nil {
		return 0, postgres.MapError(err, "ingredient")
	}

	return int(tag.RowsAffected()), nil
}

func scanIngredients(rows pgx.Rows) ([]domain.Ingredient, error) {
	var result []domain.Ingredient
	for rows.Next() {
		var ing domain.Ingredient
		if err := rows.Scan(&ing.ID, &ing.Name, &ing.MeasurementUnit); err != nil {
			return nil, err
		}
		result = append(result, ing)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if result == nil {
		result = []domain.Ingredient{}
	}

	return result, nil
}
