package domain

import (
	"time"

	"github.com/google/uuid"
)

// RelationKind identifies one of the user-scoped toggle relations.
// Each kind carries its storage shape (table, key columns) and its
// self-reference policy as data, so the add/remove/exists state machine
// is implemented once for all three.
type RelationKind string

const (
	RelationFavorite     RelationKind = "FAVORITE"
	RelationShoppingCart RelationKind = "SHOPPING_CART"
	RelationSubscription RelationKind = "SUBSCRIPTION"
)

func (k RelationKind) String() string { return string(k) }

func (k RelationKind) IsValid() bool {
	switch k {
	case RelationFavorite, RelationShoppingCart, RelationSubscription:
		return true
	}
	return false
}

// Table returns the join table backing the relation.
func (k RelationKind) Table() string {
	switch k {
	case RelationFavorite:
		return "favorites"
	case RelationShoppingCart:
		return "shopping_cart"
	case RelationSubscription:
		return "subscriptions"
	}
	return ""
}

// LeftColumn is the column holding the owning user's id.
func (k RelationKind) LeftColumn() string {
	if k == RelationSubscription {
		return "subscriber_id"
	}
	return "user_id"
}

// RightColumn is the column holding the target's id: a recipe for
// Favorite and ShoppingCart, another user for Subscription.
func (k RelationKind) RightColumn() string {
	if k == RelationSubscription {
		return "author_id"
	}
	return "recipe_id"
}

// ForbidsSelf reports whether (x, x) pairs are rejected. Only
// Subscription forbids self-reference: a user cannot follow themselves.
func (k RelationKind) ForbidsSelf() bool {
	return k == RelationSubscription
}

// RelationRecord is a persisted toggle-relation pair.
type RelationRecord struct {
	Kind      RelationKind
	LeftID    uuid.UUID
	RightID   uuid.UUID
	CreatedAt time.Time
}
