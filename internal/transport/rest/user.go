package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/tWoAlex/foodgram-project-react/internal/domain"
	"github.com/tWoAlex/foodgram-project-react/internal/service/relation"
	"github.com/tWoAlex/foodgram-project-react/pkg/pagination"
)

type userService interface {
	GetProfile(ctx context.Context) (*domain.User, error)
	GetUser(ctx context.Context, id uuid.UUID) (*domain.Author, error)
}

type relationService interface {
	Add(ctx context.Context, kind domain.RelationKind, targetID uuid.UUID) error
	Remove(ctx context.Context, kind domain.RelationKind, targetID uuid.UUID) error
	ListSubscriptions(ctx context.Context, params pagination.Params) (*relation.SubscriptionsResult, error)
}

// UserHandler serves user profiles and author subscriptions.
type UserHandler struct {
	users     userService
	relations relationService
	log       *slog.Logger
}

// NewUserHandler creates a UserHandler.
func NewUserHandler(users userService, relations relationService, logger *slog.Logger) *UserHandler {
	return &UserHandler{
		users:     users,
		relations: relations,
		log:       logger.With("handler", "user"),
	}
}

// Me handles GET /api/users/me.
func (h *UserHandler) Me(w http.ResponseWriter, r *http.Request) {
	u, err := h.users.GetProfile(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toUserResponse(u))
}

// Get handles GET /api/users/{id}.
func (h *UserHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	author, err := h.users.GetUser(r.Context(), id)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toAuthorResponse(author))
}

// Subscriptions handles GET /api/users/subscriptions.
func (h *UserHandler) Subscriptions(w http.ResponseWriter, r *http.Request) {
	params := pagination.FromQuery(r.URL.Query())

	result, err := h.relations.ListSubscriptions(r.Context(), params)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	authors := make([]subscribedAuthorResponse, 0, len(result.Authors))
	for _, a := range result.Authors {
		authors = append(authors, toSubscribedAuthorResponse(a))
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"results": authors,
		"meta":    toMetaResponse(result.Meta),
	})
}

// Subscribe handles POST /api/users/{id}/subscribe.
func (h *UserHandler) Subscribe(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	if err := h.relations.Add(r.Context(), domain.RelationSubscription, id); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	author, err := h.users.GetUser(r.Context(), id)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, toAuthorResponse(author))
}

// Unsubscribe handles DELETE /api/users/{id}/subscribe.
func (h *UserHandler) Unsubscribe(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	if err := h.relations.Remove(r.Context(), domain.RelationSubscription, id); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// pathUUID parses the named path segment as a UUID, writing a 400 on failure.
func pathUUID(w http.ResponseWriter, r *http.Request, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(r.PathValue(name))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid "+name)
		return uuid.Nil, false
	}
	return id, true
}
