package boat

import (
	"context"

	"nautiq-backend/internal/domain"
)

// Repository reads the charter fleet catalog.
type Repository interface {
	List(ctx context.Context) ([]domain.Boat, error)
	GetByID(ctx context.Context, id string) (*domain.Boat, error)
	Upsert(ctx context.Context, b domain.Boat) (*domain.Boat, error)
}
