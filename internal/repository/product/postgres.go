package product

import (
	"context"
	"errors"
	"io"
	"log"

	"nautiq-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const productColumns = `id::text, name, COALESCE(description, ''), category, COALESCE(image_url, ''),
price_cents, stock, is_active, COALESCE(prep_time_minutes, 0), featured, cold_chain, tags, variants, created_at`

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

func (r *postgresRepo) ListActive(ctx context.Context, category, search string) ([]domain.Product, error) {
	const q = `
SELECT ` + productColumns + `
FROM products
WHERE is_active
  AND ($1 = '' OR category = $1)
  AND ($2 = '' OR name ILIKE '%' || $2 || '%' OR description ILIKE '%' || $2 || '%')
ORDER BY featured DESC, name
`
	rows, err := r.pool.Query(ctx, q, category, search)
	if err != nil {
		r.logger.Printf("product repo: list category=%q search=%q error=%v", category, search, err)
		return nil, err
	}
	defer rows.Close()

	var result []domain.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, p)
	}
	if err := rows.Err(); err != nil {
		r.logger.Printf("product repo: list rows error=%v", err)
		return nil, err
	}
	return result, nil
}

func (r *postgresRepo) GetByID(ctx context.Context, id string) (*domain.Product, error) {
	const q = `
SELECT ` + productColumns + `
FROM products
WHERE id = $1
`
	p, err := scanProduct(r.pool.QueryRow(ctx, q, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		r.logger.Printf("product repo: get id=%s error=%v", id, err)
		return nil, err
	}
	return &p, nil
}

func (r *postgresRepo) Upsert(ctx context.Context, p domain.Product) (*domain.Product, error) {
	const q = `
INSERT INTO products (name, description, category, image_url, price_cents, stock, is_active,
                      prep_time_minutes, featured, cold_chain, tags, variants)
VALUES ($1, NULLIF($2, ''), $3, NULLIF($4, ''), $5, $6, $7, NULLIF($8, 0), $9, $10, $11, $12)
ON CONFLICT (name) DO UPDATE
SET description = EXCLUDED.description,
    category = EXCLUDED.category,
    image_url = EXCLUDED.image_url,
    price_cents = EXCLUDED.price_cents,
    stock = EXCLUDED.stock,
    is_active = EXCLUDED.is_active,
    prep_time_minutes = EXCLUDED.prep_time_minutes,
    featured = EXCLUDED.featured,
    cold_chain = EXCLUDED.cold_chain,
    tags = EXCLUDED.tags,
    variants = EXCLUDED.variants
RETURNING ` + productColumns + `
`
	tags := p.Tags
	if tags == nil {
		tags = []string{}
	}
	variants := p.Variants
	if variants == nil {
		variants = []domain.Variant{}
	}
	saved, err := scanProduct(r.pool.QueryRow(ctx, q,
		p.Name, p.Description, p.Category, p.ImageURL, p.PriceCents, p.Stock, p.IsActive,
		p.PrepTimeMinutes, p.Featured, p.ColdChain, tags, variants,
	))
	if err != nil {
		r.logger.Printf("product repo: upsert name=%q error=%v", p.Name, err)
		return nil, err
	}
	return &saved, nil
}

func scanProduct(row pgx.Row) (domain.Product, error) {
	var p domain.Product
	err := row.Scan(&p.ID, &p.Name, &p.Description, &p.Category, &p.ImageURL,
		&p.PriceCents, &p.Stock, &p.IsActive, &p.PrepTimeMinutes, &p.Featured,
		&p.ColdChain, &p.Tags, &p.Variants, &p.CreatedAt)
	return p, err
}
