// Command seeder populates the ingredient and tag catalogs from fixture
// files. It is intended to be run offline, not as part of the main server.
//
// Flags:
//
//	--ingredients  path to a two-column CSV (name, measurement unit)
//	--tags         path to a JSON array of {name, slug, color}
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/tWoAlex/foodgram-project-react/internal/adapter/postgres"
	ingredientrepo "github.com/tWoAlex/foodgram-project-react/internal/adapter/postgres/ingredient"
	tagrepo "github.com/tWoAlex/foodgram-project-react/internal/adapter/postgres/tag"
	"github.com/tWoAlex/foodgram-project-react/internal/app"
	"github.com/tWoAlex/foodgram-project-react/internal/app/seeder"
	"github.com/tWoAlex/foodgram-project-react/internal/config"
)

// Compile-time interface assertions.
var (
	_ seeder.IngredientBulkRepo = (*ingredientrepo.Repo)(nil)
	_ seeder.TagRepo            = (*tagrepo.Repo)(nil)
)

func main() {
	ingredientsFlag := flag.String("ingredients", "", "path to ingredients CSV file")
	tagsFlag := flag.String("tags", "", "path to tags JSON file")
	flag.Parse()

	if *ingredientsFlag == "" && *tagsFlag == "" {
		log.Fatal("nothing to do: pass --ingredients and/or --tags")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	s := seeder.New(logger, ingredientrepo.New(pool), tagrepo.New(pool))

	if *ingredientsFlag != "" {
		if _, err := s.SeedIngredients(ctx, *ingredientsFlag); err != nil {
			logger.Error("seed ingredients", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}

	if *tagsFlag != "" {
		if _, err := s.SeedTags(ctx, *tagsFlag); err != nil {
			logger.Error("seed tags", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}

	logger.Info("seeding completed")
}
