// Package app wires configuration, storage, services and transport into
// a running HTTP server.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/tWoAlex/foodgram-project-react/internal/adapter/imagestore"
	"github.com/tWoAlex/foodgram-project-react/internal/adapter/postgres"
	ingredientrepo "github.com/tWoAlex/foodgram-project-react/internal/adapter/postgres/ingredient"
	reciperepo "github.com/tWoAlex/foodgram-project-react/internal/adapter/postgres/recipe"
	relationrepo "github.com/tWoAlex/foodgram-project-react/internal/adapter/postgres/relation"
	shoppingrepo "github.com/tWoAlex/foodgram-project-react/internal/adapter/postgres/shopping"
	tagrepo "github.com/tWoAlex/foodgram-project-react/internal/adapter/postgres/tag"
	userrepo "github.com/tWoAlex/foodgram-project-react/internal/adapter/postgres/user"
	"github.com/tWoAlex/foodgram-project-react/internal/auth"
	"github.com/tWoAlex/foodgram-project-react/internal/config"
	authsvc "github.com/tWoAlex/foodgram-project-react/internal/service/auth"
	catalogsvc "github.com/tWoAlex/foodgram-project-react/internal/service/catalog"
	recipesvc "github.com/tWoAlex/foodgram-project-react/internal/service/recipe"
	relationsvc "github.com/tWoAlex/foodgram-project-react/internal/service/relation"
	shoppingsvc "github.com/tWoAlex/foodgram-project-react/internal/service/shopping"
	usersvc "github.com/tWoAlex/foodgram-project-react/internal/service/user"
	"github.com/tWoAlex/foodgram-project-react/internal/transport/middleware"
	"github.com/tWoAlex/foodgram-project-react/internal/transport/rest"
)

// Run is the application entry point. It blocks until ctx is cancelled,
// then shuts the HTTP server down gracefully.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	txm := postgres.NewTxManager(pool)

	images, err := imagestore.New(cfg.Media.Root, cfg.Media.MaxImageSize)
	if err != nil {
		return fmt.Errorf("init image store: %w", err)
	}

	jwtManager := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)
	hasher := auth.NewHasher(cfg.Auth.PasswordHashCost)

	users := userrepo.New(pool)
	tags := tagrepo.New(pool)
	ingredients := ingredientrepo.New(pool)
	recipes := reciperepo.New(pool)
	relations := relationrepo.New(pool)
	carts := shoppingrepo.New(pool)

	authService := authsvc.NewService(logger, users, jwtManager, hasher)
	userService := usersvc.NewService(logger, users, relations)
	catalogService := catalogsvc.NewService(logger, tags, ingredients)
	recipeService := recipesvc.NewService(logger, recipes, tags, ingredients, images, txm, recipesvc.Limits{
		MaxComponents:        cfg.Catalog.MaxComponentsPerRecipe,
		MaxTags:              cfg.Catalog.MaxTagsPerRecipe,
		MaxNameLength:        cfg.Catalog.MaxNameLength,
		MaxDescriptionLength: cfg.Catalog.MaxDescriptionLength,
	})
	relationService := relationsvc.NewService(logger, relations, users, recipes)
	shoppingService := shoppingsvc.NewService(logger, carts)

	handlers := rest.Handlers{
		Auth:    rest.NewAuthHandler(authService, logger),
		Users:   rest.NewUserHandler(userService, relationService, logger),
		Catalog: rest.NewCatalogHandler(catalogService, logger),
		Recipes: rest.NewRecipeHandler(recipeService, relationService, shoppingService, logger),
		Health:  rest.NewHealthHandler(pool, BuildVersion()),
	}

	router := rest.NewRouter(handlers, cfg.Media.Root)

	mws := []middleware.Middleware{
		middleware.RequestID,
		middleware.Recovery(logger),
		middleware.Logger(logger),
		middleware.CORS(cfg.CORS),
	}

	var limiter *middleware.RateLimiter
	if cfg.RateLimit.Enabled {
		limiter = middleware.NewRateLimiter(cfg.RateLimit.CleanupInterval)
		defer limiter.Stop()
		mws = append(mws, limiter.Limit(cfg.RateLimit.PerMinute))
	}

	mws = append(mws, middleware.Auth(authService))

	server := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      middleware.Chain(mws...)(router),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown http server: %w", err)
	}

	return nil
}
