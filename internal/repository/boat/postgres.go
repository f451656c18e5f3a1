package boat

import (
	"context"
	"errors"
	"io"
	"log"

	"nautiq-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const boatColumns = `id::text, name, COALESCE(tagline, ''), price_from_cents, guests,
COALESCE(length_m, 0), COALESCE(image_url, ''), tags, popular, COALESCE(rating_avg, 0),
COALESCE(ical_url, ''), created_at`

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

func (r *postgresRepo) List(ctx context.Context) ([]domain.Boat, error) {
	const q = `
SELECT ` + boatColumns + `
FROM boats
ORDER BY popular DESC, price_from_cents
`
	rows, err := r.pool.Query(ctx, q)
	if err != nil {
		r.logger.Printf("boat repo: list error=%v", err)
		return nil, err
	}
	defer rows.Close()

	var result []domain.Boat
	for rows.Next() {
		b, err := scanBoat(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, b)
	}
	if err := rows.Err(); err != nil {
		r.logger.Printf("boat repo: list rows error=%v", err)
		return nil, err
	}
	return result, nil
}

func (r *postgresRepo) GetByID(ctx context.Context, id string) (*domain.Boat, error) {
	const q = `
SELECT ` + boatColumns + `
FROM boats
WHERE id = $1
`
	b, err := scanBoat(r.pool.QueryRow(ctx, q, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		r.logger.Printf("boat repo: get id=%s error=%v", id, err)
		return nil, err
	}
	return &b, nil
}

func (r *postgresRepo) Upsert(ctx context.Context, b domain.Boat) (*domain.Boat, error) {
	const q = `
INSERT INTO boats (name, tagline, price_from_cents, guests, length_m, image_url, tags, popular, rating_avg, ical_url)
VALUES ($1, NULLIF($2, ''), $3, $4, NULLIF($5, 0), NULLIF($6, ''), $7, $8, NULLIF($9, 0), NULLIF($10, ''))
ON CONFLICT (name) DO UPDATE
SET tagline = EXCLUDED.tagline,
    price_from_cents = EXCLUDED.price_from_cents,
    guests = EXCLUDED.guests,
    length_m = EXCLUDED.length_m,
    image_url = EXCLUDED.image_url,
    tags = EXCLUDED.tags,
    popular = EXCLUDED.popular,
    rating_avg = EXCLUDED.rating_avg,
    ical_url = EXCLUDED.ical_url
RETURNING ` + boatColumns + `
`
	tags := b.Tags
	if tags == nil {
		tags = []string{}
	}
	saved, err := scanBoat(r.pool.QueryRow(ctx, q,
		b.Name, b.Tagline, b.PriceFromCents, b.Guests, b.LengthM, b.ImageURL, tags, b.Popular, b.RatingAvg, b.ICalURL,
	))
	if err != nil {
		r.logger.Printf("boat repo: upsert name=%q error=%v", b.Name, err)
		return nil, err
	}
	return &saved, nil
}

func scanBoat(row pgx.Row) (domain.Boat, error) {
	var b domain.Boat
	err := row.Scan(&b.ID, &b.Name, &b.Tagline, &b.PriceFromCents, &b.Guests,
		&b.LengthM, &b.ImageURL, &b.Tags, &b.Popular, &b.RatingAvg, &b.ICalURL, &b.CreatedAt)
	return b, err
}
