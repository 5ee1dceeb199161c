// Package shopping builds the merged shopping list for a user's cart and
// renders it as a flat text report.
package shopping

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/tWoAlex/foodgram-project-react/internal/domain"
	"github.com/tWoAlex/foodgram-project-react/pkg/ctxutil"
)

type cartAggregator interface {
	AggregateCart(ctx context.Context, userID uuid.UUID) ([]domain.PurchaseItem, error)
}

// Service provides the shopping list aggregate and its text rendering.
type Service struct {
	carts cartAggregator
	log   *slog.Logger
}

// NewService creates a new Shopping service.
func NewService(log *slog.Logger, carts cartAggregator) *Service {
	return &Service{
		carts: carts,
		log:   log.With("service", "shopping"),
	}
}

// Build returns the merged purchase list for the authenticated user's cart.
// An ingredient used by several cart recipes appears once with the summed
// amount. An empty cart yields an empty list.
func (s *Service) Build(ctx context.Context) ([]domain.PurchaseItem, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	items, err := s.carts.AggregateCart(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("aggregate cart: %w", err)
	}

	return items, nil
}

const reportHeader = "Shopping list:"

// FormatReport renders purchase items as plain text: a header, a ruler of
// '=' sized to the widest line, one "name amount unit" line per item, and
// a closing ruler.
func FormatReport(items []domain.PurchaseItem) string {
	lines := make([]string, 0, len(items))
	width := len(reportHeader)
	for _, item := range items {
		line := fmt.Sprintf("%s %d %s", item.Name, item.TotalAmount, item.MeasurementUnit)
		if len(line) > width {
			width = len(line)
		}
		lines = append(lines, line)
	}

	ruler := strings.Repeat("=", width)

	var b strings.Builder
	b.WriteString(reportHeader)
	b.WriteByte('\n')
	b.WriteString(ruler)
	for _, line := range lines {
		b.WriteByte('\n')
		b.WriteString(line)
	}
	b.WriteByte('\n')
	b.WriteString(ruler)

	return b.String()
}
