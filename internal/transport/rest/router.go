package rest

import "net/http"

// Handlers bundles every REST handler the router mounts.
type Handlers struct {
	Auth    *AuthHandler
	Users   *UserHandler
	Catalog *CatalogHandler
	Recipes *RecipeHandler
	Health  *HealthHandler
}

// NewRouter mounts all routes. Method and path-value patterns rely on
// the net/http mux; literal segments win over wildcards, so /users/me
// and /recipes/download_shopping_cart shadow their {id} siblings.
func NewRouter(h Handlers, mediaRoot string) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", h.Health.Health)
	mux.HandleFunc("GET /live", h.Health.Live)
	mux.HandleFunc("GET /ready", h.Health.Ready)

	mux.HandleFunc("POST /api/auth/register", h.Auth.Register)
	mux.HandleFunc("POST /api/auth/login", h.Auth.Login)

	mux.HandleFunc("GET /api/users/me", h.Users.Me)
	mux.HandleFunc("GET /api/users/subscriptions", h.Users.Subscriptions)
	mux.HandleFunc("GET /api/users/{id}", h.Users.Get)
	mux.HandleFunc("POST /api/users/{id}/subscribe", h.Users.Subscribe)
	mux.HandleFunc("DELETE /api/users/{id}/subscribe", h.Users.Unsubscribe)

	mux.HandleFunc("GET /api/tags", h.Catalog.ListTags)
	mux.HandleFunc("GET /api/tags/{id}", h.Catalog.GetTag)
	mux.HandleFunc("GET /api/ingredients", h.Catalog.ListIngredients)
	mux.HandleFunc("GET /api/ingredients/{id}", h.Catalog.GetIngredient)

	mux.HandleFunc("GET /api/recipes", h.Recipes.List)
	mux.HandleFunc("POST /api/recipes", h.Recipes.Create)
	mux.HandleFunc("GET /api/recipes/download_shopping_cart", h.Recipes.DownloadShoppingCart)
	mux.HandleFunc("GET /api/recipes/{id}", h.Recipes.Get)
	mux.HandleFunc("PUT /api/recipes/{id}", h.Recipes.Replace)
	mux.HandleFunc("DELETE /api/recipes/{id}", h.Recipes.Delete)
	mux.HandleFunc("POST /api/recipes/{id}/favorite", h.Recipes.Favorite)
	mux.HandleFunc("DELETE /api/recipes/{id}/favorite", h.Recipes.Unfavorite)
	mux.HandleFunc("POST /api/recipes/{id}/shopping_cart", h.Recipes.AddToCart)
	mux.HandleFunc("DELETE /api/recipes/{id}/shopping_cart", h.Recipes.RemoveFromCart)

	mux.Handle("GET /media/", http.StripPrefix("/media/", http.FileServer(http.Dir(mediaRoot))))

	return mux
}
