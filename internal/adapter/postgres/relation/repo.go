// Package relation implements storage for the user-scoped toggle relations
// (favorites, shopping cart, subscriptions). One repository serves all three:
// the RelationKind enum supplies the table and key columns, and the
// unique-pair invariant is enforced by each table's primary key, so two
// concurrent adds of the same pair resolve to one success and one
// domain.ErrAlreadyExists without application-level locking.
package relation

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/tWoAlex/foodgram-project-react/internal/adapter/postgres"
	"github.com/tWoAlex/foodgram-project-react/internal/domain"
)

var qb = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// Repo provides toggle-relation persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new relation repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Add inserts the (left, right) pair for the given kind.
// Returns domain.ErrAlreadyExists if the pair is already present and
// domain.ErrNotFound if either side references a missing row.
func (r *Repo) Add(ctx context.Context, kind domain.RelationKind, leftID, rightID uuid.UUID) (*domain.RelationRecord, error) {
	if !kind.IsValid() {
		return nil, fmt.Errorf("relation kind %q: %w", kind, domain.ErrValidation)
	}

	sql, args, err := qb.Insert(kind.Table()).
		Columns(kind.LeftColumn(), kind.RightColumn()).
		Values(leftID, rightID).
		Suffix("RETURNING created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert: %w", err)
	}

	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rec := domain.RelationRecord{Kind: kind, LeftID: leftID, RightID: rightID}
	if err := querier.QueryRow(ctx, sql, args...).Scan(&rec.CreatedAt); err != nil {
		return nil, postgres.MapError(err, kind.Table())
	}

	return &rec, nil
}

// Remove deletes the (left, right) pair for the given kind.
// Returns domain.ErrNotFound if the pair does not exist.
func (r *Repo) Remove(ctx context.Context, kind domain.RelationKind, leftID, rightID uuid.UUID) error {
	if !kind.IsValid() {
		return fmt.Errorf("relation kind %q: %w", kind, domain.ErrValidation)
	}

	sql, args, err := qb.Delete(kind.Table()).
		Where(sq.Eq{kind.LeftColumn(): leftID, kind.RightColumn(): rightID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete: %w", err)
	}

	querier := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := querier.Exec(ctx, sql, args...)
	if err != nil {
		return postgres.MapError(err, kind.Table())
	}

	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s %s/%s: %w", kind.Table(), leftID, rightID, domain.ErrNotFound)
	}

	return nil
}

// Exists reports whether the (left, right) pair is present.
func (r *Repo) Exists(ctx context.Context, kind domain.RelationKind, leftID, rightID uuid.UUID) (bool, error) {
	if !kind.IsValid() {
		return false, fmt.Errorf("relation kind %q: %w", kind, domain.ErrValidation)
	}

	sql, args, err := qb.Select("1").
		From(kind.Table()).
		Where(sq.Eq{kind.LeftColumn(): leftID, kind.RightColumn(): rightID}).
		Prefix("SELECT EXISTS (").
		Suffix(")").
		ToSql()
	if err != nil {
		return false, fmt.Errorf("build exists: %w", err)
	}

	querier := postgres.QuerierFromCtx(ctx, r.pool)

	var exists bool
	if err := querier.QueryRow(ctx, sql, args...).Scan(&exists); err != nil {
		return false, fmt.Errorf("%s exists: %w", kind.Table(), err)
	}

	return exists, nil
}

// ListRightIDs returns the right-hand ids of every pair owned by leftID,
// oldest first. Used to list a user's subscriptions.
func (r *Repo) ListRightIDs(ctx context.Context, kind domain.RelationKind, leftID uuid.UUID, limit, offset int) ([]uuid.UUID, error) {
	if !kind.IsValid() {
		return nil, fmt.Errorf("relation kind %q: %w", kind, domain.ErrValidation)
	}

	builder := qb.Select(kind.RightColumn()).
		From(kind.Table()).
		Where(sq.Eq{kind.LeftColumn(): leftID}).
		OrderBy("created_at", kind.RightColumn())
	if limit > 0 {
		builder = builder.Limit(uint64(limit)).Offset(uint64(offset))
	}

	sql, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list: %w", err)
	}

	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", kind.Table(), err)
	}
	defer rows.Close()

	var ids []uuid.UUID
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if ids == nil {
		ids = []uuid.UUID{}
	}

	return ids, nil
}

// Count returns the number of pairs owned by leftID.
func (r *Repo) Count(ctx context.Context, kind domain.RelationKind, leftID uuid.UUID) (int, error) {
	if !kind.IsValid() {
		return 0, fmt.Errorf("relation kind %q: %w", kind, domain.ErrValidation)
	}

	sql, args, err := qb.Select("count(*)").
		From(kind.Table()).
		Where(sq.Eq{kind.LeftColumn(): leftID}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build count: %w", err)
	}

	querier := postgres.QuerierFromCtx(ctx, r.pool)

	var count int
	if err := querier.QueryRow(ctx, sql, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("count %s: %w", kind.Table(), err)
	}

	return count, nil
}
