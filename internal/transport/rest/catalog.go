package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/tWoAlex/foodgram-project-react/internal/domain"
)

type catalogService interface {
	ListTags(ctx context.Context) ([]domain.Tag, error)
	GetTag(ctx context.Context, id uuid.UUID) (*domain.Tag, error)
	SearchIngredients(ctx context.Context, name string) ([]domain.Ingredient, error)
	GetIngredient(ctx context.Context, id uuid.UUID) (*domain.Ingredient, error)
}

// CatalogHandler serves the read-only tag and ingredient catalogs.
type CatalogHandler struct {
	svc catalogService
	log *slog.Logger
}

// NewCatalogHandler creates a CatalogHandler.
func NewCatalogHandler(svc catalogService, logger *slog.Logger) *CatalogHandler {
	return &CatalogHandler{
		svc: svc,
		log: logger.With("handler", "catalog"),
	}
}

// ListTags handles GET /api/tags.
func (h *CatalogHandler) ListTags(w http.ResponseWriter, r *http.Request) {
	tags, err := h.svc.ListTags(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	resp := make([]tagResponse, 0, len(tags))
	for _, t := range tags {
		resp = append(resp, toTagResponse(t))
	}

	writeJSON(w, http.StatusOK, resp)
}

// GetTag handles GET /api/tags/{id}.
func (h *CatalogHandler) GetTag(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	t, err := h.svc.GetTag(r.Context(), id)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toTagResponse(*t))
}

// ListIngredients handles GET /api/ingredients?name=<substring>.
func (h *CatalogHandler) ListIngredients(w http.ResponseWriter, r *http.Request) {
	ingredients, err := h.svc.SearchIngredients(r.Context(), r.URL.Query().Get("name"))
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	resp := make([]ingredientResponse, 0, len(ingredients))
	for _, i := range ingredients {
		resp = append(resp, toIngredientResponse(i))
	}

	writeJSON(w, http.StatusOK, resp)
}

// GetIngredient handles GET /api/ingredients/{id}.
func (h *CatalogHandler) GetIngredient(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	ing, err := h.svc.GetIngredient(r.Context(), id)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toIngredientResponse(*ing))
}
