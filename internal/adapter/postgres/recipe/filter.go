package recipe

import (
	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/tWoAlex/foodgram-project-react/internal/domain"
)

var qb = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// selectColumns builds the projection for listing queries. The two
// viewer-relative flags are EXISTS subqueries scoped to the viewer;
// for an anonymous viewer they are constant false so no per-user state
// can leak into the result.
func selectColumns(viewerID *uuid.UUID) []string {
	cols := []string{
		"r.id", "r.author_id", "r.name", "r.description", "r.image_path",
		"r.cooking_time", "r.created_at", "r.updated_at",
		"u.email", "u.username", "u.first_name", "u.last_name",
	}
	if viewerID == nil {
		return append(cols, "false AS is_favorited", "false AS is_in_shopping_cart")
	}
	return append(cols,
		"EXISTS (SELECT 1 FROM favorites f WHERE f.recipe_id = r.id AND f.user_id = v.id) AS is_favorited",
		"EXISTS (SELECT 1 FROM shopping_cart sc WHERE sc.recipe_id = r.id AND sc.user_id = v.id) AS is_in_shopping_cart",
	)
}

// applyFilter attaches WHERE clauses for the normalized filter.
// Tag slugs use AND semantics: one EXISTS subquery per requested slug.
// FavoritedOnly / InCartOnly require a viewer; the service layer clears
// them for anonymous requests before they reach this builder.
func applyFilter(builder sq.SelectBuilder, viewerID *uuid.UUID, f domain.RecipeFilter) sq.SelectBuilder {
	if f.AuthorID != nil {
		builder = builder.Where(sq.Eq{"r.author_id": *f.AuthorID})
	}

	for _, slug := range f.TagSlugs {
		builder = builder.Where(
			"EXISTS (SELECT 1 FROM recipe_tags rt JOIN tags t ON t.id = rt.tag_id WHERE rt.recipe_id = r.id AND t.slug = ?)",
			slug,
		)
	}

	if viewerID != nil {
		if f.FavoritedOnly {
			builder = builder.Where(
				"EXISTS (SELECT 1 FROM favorites f WHERE f.recipe_id = r.id AND f.user_id = ?)",
				*viewerID,
			)
		}
		if f.InCartOnly {
			builder = builder.Where(
				"EXISTS (SELECT 1 FROM shopping_cart sc WHERE sc.recipe_id = r.id AND sc.user_id = ?)",
				*viewerID,
			)
		}
	}

	return builder
}

// findQuery builds the full listing query. Ordering is newest first with
// id as tiebreaker and never depends on the filter combination.
func findQuery(viewerID *uuid.UUID, f domain.RecipeFilter) sq.SelectBuilder {
	builder := qb.Select(selectColumns(viewerID)...).
		From("recipes r").
		Join("users u ON u.id = r.author_id")

	// A one-row lateral source for the viewer id keeps the EXISTS
	// subqueries readable and the placeholder count stable.
	if viewerID != nil {
		builder = builder.CrossJoin("(SELECT ?::uuid AS id) v", *viewerID)
	}

	builder = applyFilter(builder, viewerID, f).
		OrderBy("r.created_at DESC", "r.id DESC").
		Limit(uint64(f.Limit)).
		Offset(uint64(f.Offset))

	return builder
}

// countQuery builds the matching-row count for the same filter.
func countQuery(viewerID *uuid.UUID, f domain.RecipeFilter) sq.SelectBuilder {
	builder := qb.Select("count(*)").From("recipes r")
	return applyFilter(builder, viewerID, f)
}
