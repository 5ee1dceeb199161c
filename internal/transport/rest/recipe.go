package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/tWoAlex/foodgram-project-react/internal/domain"
	"github.com/tWoAlex/foodgram-project-react/internal/service/recipe"
	"github.com/tWoAlex/foodgram-project-react/internal/service/shopping"
)

type recipeService interface {
	Create(ctx context.Context, input recipe.ComposeInput) (*domain.AnnotatedRecipe, error)
	Replace(ctx context.Context, recipeID uuid.UUID, input recipe.ComposeInput) (*domain.AnnotatedRecipe, error)
	Delete(ctx context.Context, recipeID uuid.UUID) error
	Get(ctx context.Context, recipeID uuid.UUID) (*domain.AnnotatedRecipe, error)
	List(ctx context.Context, input recipe.ListInput) (*recipe.ListResult, error)
}

type shoppingService interface {
	Build(ctx context.Context) ([]domain.PurchaseItem, error)
}

// RecipeHandler serves the recipe catalog, per-recipe toggles and the
// shopping list download.
type RecipeHandler struct {
	recipes   recipeService
	relations relationService
	shopping  shoppingService
	log       *slog.Logger
}

// NewRecipeHandler creates a RecipeHandler.
func NewRecipeHandler(recipes recipeService, relations relationService, shoppingSvc shoppingService, logger *slog.Logger) *RecipeHandler {
	return &RecipeHandler{
		recipes:   recipes,
		relations: relations,
		shopping:  shoppingSvc,
		log:       logger.With("handler", "recipe"),
	}
}

type componentRequest struct {
	ID     uuid.UUID `json:"id"`
	Amount int       `json:"amount"`
}

type recipeRequest struct {
	Name        string             `json:"name"`
	Text        string             `json:"text"`
	Image       string             `json:"image"`
	CookingTime int                `json:"cooking_time"`
	Ingredients []componentRequest `json:"ingredients"`
	Tags        []uuid.UUID        `json:"tags"`
}

func (req recipeRequest) toInput() recipe.ComposeInput {
	components := make([]recipe.ComponentInput, 0, len(req.Ingredients))
	for _, c := range req.Ingredients {
		components = append(components, recipe.ComponentInput{
			IngredientID: c.ID,
			Amount:       c.Amount,
		})
	}
	return recipe.ComposeInput{
		Name:         req.Name,
		Description:  req.Text,
		ImageDataURI: req.Image,
		CookingTime:  req.CookingTime,
		Components:   components,
		TagIDs:       req.Tags,
	}
}

// List handles GET /api/recipes.
func (h *RecipeHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	input := recipe.ListInput{
		TagSlugs:      q["tags"],
		FavoritedOnly: boolParam(q.Get("is_favorited")),
		InCartOnly:    boolParam(q.Get("is_in_shopping_cart")),
	}
	if v := q.Get("author"); v != "" {
		authorID, err := uuid.Parse(v)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid author")
			return
		}
		input.AuthorID = &authorID
	}
	if v, err := strconv.Atoi(q.Get("page")); err == nil {
		input.Page = v
	}
	if v, err := strconv.Atoi(q.Get("limit")); err == nil {
		input.Limit = v
	}

	result, err := h.recipes.List(r.Context(), input)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	recipes := make([]recipeResponse, 0, len(result.Recipes))
	for i := range result.Recipes {
		recipes = append(recipes, toRecipeResponse(&result.Recipes[i]))
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"results": recipes,
		"meta":    toMetaResponse(result.Meta),
	})
}

// Get handles GET /api/recipes/{id}.
func (h *RecipeHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	rec, err := h.recipes.Get(r.Context(), id)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toRecipeResponse(rec))
}

// Create handles POST /api/recipes.
func (h *RecipeHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req recipeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	rec, err := h.recipes.Create(r.Context(), req.toInput())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, toRecipeResponse(rec))
}

// Replace handles PUT /api/recipes/{id}. The ingredient and tag sets are
// replaced wholesale; an empty image keeps the current one.
func (h *RecipeHandler) Replace(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	var req recipeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	rec, err := h.recipes.Replace(r.Context(), id, req.toInput())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toRecipeResponse(rec))
}

// Delete handles DELETE /api/recipes/{id}.
func (h *RecipeHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	if err := h.recipes.Delete(r.Context(), id); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Favorite handles POST /api/recipes/{id}/favorite.
func (h *RecipeHandler) Favorite(w http.ResponseWriter, r *http.Request) {
	h.addRelation(w, r, domain.RelationFavorite)
}

// Unfavorite handles DELETE /api/recipes/{id}/favorite.
func (h *RecipeHandler) Unfavorite(w http.ResponseWriter, r *http.Request) {
	h.removeRelation(w, r, domain.RelationFavorite)
}

// AddToCart handles POST /api/recipes/{id}/shopping_cart.
func (h *RecipeHandler) AddToCart(w http.ResponseWriter, r *http.Request) {
	h.addRelation(w, r, domain.RelationShoppingCart)
}

// RemoveFromCart handles DELETE /api/recipes/{id}/shopping_cart.
func (h *RecipeHandler) RemoveFromCart(w http.ResponseWriter, r *http.Request) {
	h.removeRelation(w, r, domain.RelationShoppingCart)
}

func (h *RecipeHandler) addRelation(w http.ResponseWriter, r *http.Request, kind domain.RelationKind) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	if err := h.relations.Add(r.Context(), kind, id); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	rec, err := h.recipes.Get(r.Context(), id)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, toRecipeShortResponse(rec))
}

func (h *RecipeHandler) removeRelation(w http.ResponseWriter, r *http.Request, kind domain.RelationKind) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	if err := h.relations.Remove(r.Context(), kind, id); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// DownloadShoppingCart handles GET /api/recipes/download_shopping_cart.
// The aggregated list is served as a plain-text attachment.
func (h *RecipeHandler) DownloadShoppingCart(w http.ResponseWriter, r *http.Request) {
	items, err := h.shopping.Build(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	report := shopping.FormatReport(items)

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="shopping_list.txt"`)
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(report)) //nolint:errcheck
}

// boolParam treats "1" and "true" as set, everything else as unset.
func boolParam(v string) bool {
	return v == "1" || strings.EqualFold(v, "true")
}
