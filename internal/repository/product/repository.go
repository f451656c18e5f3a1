package product

import (
	"context"

	"nautiq-backend/internal/domain"
)

// Repository reads and writes the catering product catalog.
type Repository interface {
	// ListActive returns active products, optionally narrowed to a category
	// and a case-insensitive name/description search term.
	ListActive(ctx context.Context, category, search string) ([]domain.Product, error)
	GetByID(ctx context.Context, id string) (*domain.Product, error)
	Upsert(ctx context.Context, p domain.Product) (*domain.Product, error)
}
