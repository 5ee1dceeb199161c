// Package seeder populates the reference catalog from offline fixture
// files: ingredients from CSV and tags from JSON. It is run as a
// standalone command, never as part of the server.
package seeder

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/google/uuid"

	"github.com/tWoAlex/foodgram-project-react/internal/domain"
)

// batchSize bounds one ingredient insert statement.
const batchSize = 500

// IngredientBulkRepo inserts ingredients, skipping duplicates.
type IngredientBulkRepo interface {
	BatchCreate(ctx context.Context, ingredients []domain.Ingredient) (int, error)
}

// TagRepo creates tags one at a time.
type TagRepo interface {
	Create(ctx context.Context, t *domain.Tag) (*domain.Tag, error)
}

// Seeder loads fixture files into the catalog.
type Seeder struct {
	log         *slog.Logger
	ingredients IngredientBulkRepo
	tags        TagRepo
}

// New creates a Seeder.
func New(logger *slog.Logger, ingredients IngredientBulkRepo, tags TagRepo) *Seeder {
	return &Seeder{
		log:         logger.With("component", "seeder"),
		ingredients: ingredients,
		tags:        tags,
	}
}

// SeedIngredients reads a two-column CSV (name, measurement unit) and
// inserts the rows in batches. Rows already present are skipped by the
// store's conflict handling. Returns the number of rows inserted.
func (s *Seeder) SeedIngredients(ctx context.Context, path string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("open ingredients file: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = 2

	inserted := 0
	batch := make([]domain.Ingredient, 0, batchSize)

	flush := func() error {
		if len(batch) == 0 {
			return nil
		}
		n, err := s.ingredients.BatchCreate(ctx, batch)
		if err != nil {
			return fmt.Errorf("insert ingredients: %w", err)
		}
		inserted += n
		batch = batch[:0]
		return nil
	}

	line := 0
	for {
		record, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return inserted, fmt.Errorf("read ingredients csv: %w", err)
		}
		line++

		name := strings.TrimSpace(record[0])
		unit := strings.TrimSpace(record[1])
		if name == "" || unit == "" {
			s.log.Warn("skipping malformed ingredient row", slog.Int("line", line))
			continue
		}

		batch = append(batch, domain.Ingredient{
			ID:              uuid.New(),
			Name:            name,
			MeasurementUnit: unit,
		})
		if len(batch) == batchSize {
			if err := flush(); err != nil {
				return inserted, err
			}
		}
	}

	if err := flush(); err != nil {
		return inserted, err
	}

	s.log.Info("ingredients seeded", slog.Int("inserted", inserted), slog.Int("read", line))
	return inserted, nil
}

type tagFixture struct {
	Name  string `json:"name"`
	Slug  string `json:"slug"`
	Color string `json:"color"`
}

// SeedTags reads a JSON array of tags and creates each one. Tags whose
// name, slug or color already exist are skipped. Returns the number of
// tags created.
func (s *Seeder) SeedTags(ctx context.Context, path string) (int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("read tags file: %w", err)
	}

	var fixtures []tagFixture
	if err := json.Unmarshal(data, &fixtures); err != nil {
		return 0, fmt.Errorf("parse tags json: %w", err)
	}

	created := 0
	for _, fx := range fixtures {
		if fx.Name == "" || fx.Slug == "" || fx.Color == "" {
			s.log.Warn("skipping malformed tag fixture", slog.String("name", fx.Name))
			continue
		}

		_, err := s.tags.Create(ctx, &domain.Tag{
			ID:    uuid.New(),
			Name:  fx.Name,
			Slug:  fx.Slug,
			Color: fx.Color,
		})
		switch {
		case errors.Is(err, domain.ErrAlreadyExists):
			s.log.Debug("tag already present", slog.String("slug", fx.Slug))
		case err != nil:
			return created, fmt.Errorf("create tag %q: %w", fx.Slug, err)
		default:
			created++
		}
	}

	s.log.Info("tags seeded", slog.Int("created", created), slog.Int("read", len(fixtures)))
	return created, nil
}
