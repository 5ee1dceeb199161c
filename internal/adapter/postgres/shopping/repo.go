// Package shopping implements the read-side aggregation of a user's
// shopping cart: cart entries joined through recipe components down to
// ingredients, with amounts summed per ingredient identity.
package shopping

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/tWoAlex/foodgram-project-react/internal/adapter/postgres"
	"github.com/tWoAlex/foodgram-project-react/internal/domain"
)

// Repo provides the shopping list aggregate backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new shopping repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// The same ingredient appearing in several cart recipes sums its amounts;
// the GROUP BY key is the ingredient identity pair (name, unit is implied
// by the ingredient row, but grouping by id keeps distinct units apart).
const aggregateCartSQL = `
SELECT i.name, i.measurement_unit, SUM(rc.amount)::int AS total_amount
FROM shopping_cart sc
JOIN recipe_components rc ON rc.recipe_id = sc.recipe_id
JOIN ingredients i ON i.id = rc.ingredient_id
WHERE sc.user_id = $1
GROUP BY i.id, i.name, i.measurement_unit
ORDER BY i.name`

// AggregateCart returns the merged ingredient report for the user's cart,
// ordered by ingredient name. An empty cart yields an empty slice.
func (r *Repo) AggregateCart(ctx context.Context, userID uuid.UUID) ([]domain.PurchaseItem, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, aggregateCartSQL, userID)
	if err != nil {
		return nil, fmt.Errorf("aggregate cart: %w", err)
	}
	defer rows.Close()

	var items []domain.PurchaseItem
	for rows.Next() {
		var item domain.PurchaseItem
		if err := rows.Scan(&item.Name, &item.MeasurementUnit, &item.TotalAmount); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if items == nil {
		items = []domain.PurchaseItem{}
	}

	return items, nil
}
