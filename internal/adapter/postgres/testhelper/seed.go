package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tWoAlex/foodgram-project-react/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedUser creates a user with a unique email and username.
// Returns a filled domain.User.
func SeedUser(t *testing.T, pool *pgxpool.Pool) domain.User {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	user := domain.User{
		ID:           uuid.New(),
		Email:        "testuser-" + suffix + "@example.com",
		Username:     "testuser-" + suffix,
		FirstName:    "Test",
		LastName:     "User " + suffix,
		PasswordHash: "$2a$10$testhashplaceholder" + suffix,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO users (id, email, username, first_name, last_name, password_hash, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		user.ID, user.Email, user.Username, user.FirstName, user.LastName, user.PasswordHash, user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedUser insert user: %v", err)
	}

	return user
}

// SeedIngredient creates an ingredient with a unique name.
// Returns a filled domain.Ingredient.
func SeedIngredient(t *testing.T, pool *pgxpool.Pool, unit string) domain.Ingredient {
	t.Helper()
	ctx := context.Background()

	ing := domain.Ingredient{
		ID:              uuid.New(),
		Name:            "ingredient-" + uniqueSuffix(),
		MeasurementUnit: unit,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO ingredients (id, name, measurement_unit) VALUES ($1, $2, $3)`,
		ing.ID, ing.Name, ing.MeasurementUnit,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedIngredient insert: %v", err)
	}

	return ing
}

// SeedTag creates a tag with a unique name, slug, and color.
// Returns a filled domain.Tag.
func SeedTag(t *testing.T, pool *pgxpool.Pool) domain.Tag {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	tag := domain.Tag{
		ID:    uuid.New(),
		Name:  "tag-" + suffix,
		Slug:  "tag-" + suffix,
		Color: "#" + suffix[:6],
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO tags (id, name, slug, color) VALUES ($1, $2, $3, $4)`,
		tag.ID, tag.Name, tag.Slug, tag.Color,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedTag insert: %v", err)
	}

	return tag
}

// SeedRecipe creates a recipe for the author with one freshly seeded
// ingredient component (amount 1) and no tags.
// Returns a filled domain.Recipe with Components populated.
func SeedRecipe(t *testing.T, pool *pgxpool.Pool, authorID uuid.UUID) domain.Recipe {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	recipe := domain.Recipe{
		ID:          uuid.New(),
		AuthorID:    authorID,
		Name:        "recipe-" + suffix,
		Description: "Test recipe " + suffix,
		ImagePath:   "recipes/" + suffix + ".png",
		CookingTime: 10,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO recipes (id, author_id, name, description, image_path, cooking_time, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		recipe.ID, recipe.AuthorID, recipe.Name, recipe.Description, recipe.ImagePath, recipe.CookingTime, recipe.CreatedAt, recipe.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedRecipe insert recipe: %v", err)
	}

	ing := SeedIngredient(t, pool, "g")
	component := domain.Component{
		RecipeID:     recipe.ID,
		IngredientID: ing.ID,
		Amount:       1,
		Ingredient:   ing,
	}

	_, err = pool.Exec(ctx,
		`INSERT INTO recipe_components (recipe_id, ingredient_id, amount) VALUES ($1, $2, $3)`,
		component.RecipeID, component.IngredientID, component.Amount,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedRecipe insert component: %v", err)
	}

	recipe.Components = []domain.Component{component}
	return recipe
}

// SeedComponent adds an ingredient to an existing recipe with the given amount.
func SeedComponent(t *testing.T, pool *pgxpool.Pool, recipeID uuid.UUID, ing domain.Ingredient, amount int) domain.Component {
	t.Helper()
	ctx := context.Background()

	component := domain.Component{
		RecipeID:     recipeID,
		IngredientID: ing.ID,
		Amount:       amount,
		Ingredient:   ing,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO recipe_components (recipe_id, ingredient_id, amount) VALUES ($1, $2, $3)`,
		component.RecipeID, component.IngredientID, component.Amount,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedComponent insert: %v", err)
	}

	return component
}

// SeedTagLink attaches a tag to an existing recipe.
func SeedTagLink(t *testing.T, pool *pgxpool.Pool, recipeID, tagID uuid.UUID) {
	t.Helper()

	_, err := pool.Exec(context.Background(),
		`INSERT INTO recipe_tags (recipe_id, tag_id) VALUES ($1, $2)`,
		recipeID, tagID,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedTagLink insert: %v", err)
	}
}
