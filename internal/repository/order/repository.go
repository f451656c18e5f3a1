package order

import (
	"context"

	"nautiq-backend/internal/domain"
)

// Repository is the order sink: one durable insert per placed order, no
// update path.
type Repository interface {
	Insert(ctx context.Context, o domain.Order) (*domain.Order, error)
}
