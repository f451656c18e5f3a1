package order

import (
	"context"
	"io"
	"log"

	"nautiq-backend/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

type postgresRepo struct {
	pool   *pgxpool.Pool
	logger *log.Logger
}

func NewPostgres(pool *pgxpool.Pool, logger *log.Logger) Repository {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &postgresRepo{pool: pool, logger: logger}
}

// Insert writes the order document. The database assigns the creation
// timestamp; the returned order carries it.
func (r *postgresRepo) Insert(ctx context.Context, o domain.Order) (*domain.Order, error) {
	const q = `
INSERT INTO orders (id, customer_name, email, phone, marina, delivery_date, delivery_time,
                    boat_company, boat_name, items, subtotal_cents, delivery_cents, total_cents,
                    collaborator_ref, status)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, NULLIF($14, ''), $15)
RETURNING id::text, status, created_at
`
	saved := o
	err := r.pool.QueryRow(ctx, q,
		o.ID, o.CustomerName, o.Email, o.Phone, o.Marina, o.DeliveryDate, o.DeliveryTime,
		o.BoatCompany, o.BoatName, o.Items, o.SubtotalCents, o.DeliveryCents, o.TotalCents,
		o.CollaboratorRef, o.Status,
	).Scan(&saved.ID, &saved.Status, &saved.CreatedAt)
	if err != nil {
		r.logger.Printf("order repo: insert id=%s error=%v", o.ID, err)
		return nil, err
	}
	r.logger.Printf("order repo: insert id=%s total_cents=%d items=%d", saved.ID, saved.TotalCents, len(saved.Items))
	return &saved, nil
}
