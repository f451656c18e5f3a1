package product

import (
	"context"
	"os"
	"testing"

	"nautiq-backend/internal/domain"
	"nautiq-backend/internal/migrate"

	"github.com/jackc/pgx/v5/pgxpool"
)

func testPool(ctx context.Context, t *testing.T) *pgxpool.Pool {
	t.Helper()
	dsn := os.Getenv("TEST_DB_DSN")
	if dsn == "" {
		t.Skip("TEST_DB_DSN not set")
	}
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		t.Fatalf("connect db: %v", err)
	}
	if err := migrate.Apply(ctx, pool); err != nil {
		t.Fatalf("apply migrations: %v", err)
	}
	if _, err := pool.Exec(ctx, `TRUNCATE products CASCADE`); err != nil {
		t.Fatalf("reset tables: %v", err)
	}
	return pool
}

func TestPostgres_UpsertAndGet(t *testing.T) {
	ctx := context.Background()
	pool := testPool(ctx, t)
	defer pool.Close()

	repo := NewPostgres(pool, nil)

	saved, err := repo.Upsert(ctx, domain.Product{
		Name:       "Rioja Reserva",
		Category:   "wine",
		PriceCents: 1850,
		Stock:      24,
		IsActive:   true,
		Tags:       []string{"red", "spanish"},
		Variants:   []domain.Variant{{Label: "Magnum", PriceDeltaCents: 1200}},
	})
	if err != nil {
		t.Fatalf("Upsert: %v", err)
	}
	if saved.ID == "" || saved.CreatedAt.IsZero() {
		t.Fatalf("expected assigned id and timestamp, got %+v", saved)
	}

	got, err := repo.GetByID(ctx, saved.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.Name != "Rioja Reserva" || got.Stock != 24 || len(got.Variants) != 1 {
		t.Fatalf("unexpected product %+v", got)
	}

	// Upsert keyed by name updates in place.
	updated, err := repo.Upsert(ctx, domain.Product{
		Name:       "Rioja Reserva",
		Category:   "wine",
		PriceCents: 1950,
		Stock:      12,
		IsActive:   true,
	})
	if err != nil {
		t.Fatalf("Upsert update: %v", err)
	}
	if updated.ID != saved.ID || updated.PriceCents != 1950 || updated.Stock != 12 {
		t.Fatalf("unexpected updated product %+v", updated)
	}
}

func TestPostgres_GetByIDNotFound(t *testing.T) {
	ctx := context.Background()
	pool := testPool(ctx, t)
	defer pool.Close()

	repo := NewPostgres(pool, nil)
	if _, err := repo.GetByID(ctx, "00000000-0000-0000-0000-000000000000"); err != domain.ErrNotFound {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestPostgres_ListActiveFilters(t *testing.T) {
	ctx := context.Background()
	pool := testPool(ctx, t)
	defer pool.Close()

	repo := NewPostgres(pool, nil)
	seed := []domain.Product{
		{Name: "Rioja Reserva", Category: "wine", PriceCents: 1850, IsActive: true},
		{Name: "Albariño", Category: "wine", PriceCents: 1600, IsActive: true, Featured: true},
		{Name: "Still Water", Category: "drinks", PriceCents: 450, IsActive: true},
		{Name: "Retired Gin", Category: "spirits", PriceCents: 3000, IsActive: false},
	}
	for _, p := range seed {
		if _, err := repo.Upsert(ctx, p); err != nil {
			t.Fatalf("seed %q: %v", p.Name, err)
		}
	}

	all, err := repo.ListActive(ctx, "", "")
	if err != nil {
		t.Fatalf("ListActive: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("expected 3 active products, got %d", len(all))
	}
	if all[0].Name != "Albariño" {
		t.Fatalf("featured product should sort first, got %+v", all[0])
	}

	wines, err := repo.ListActive(ctx, "wine", "")
	if err != nil {
		t.Fatalf("ListActive wine: %v", err)
	}
	if len(wines) != 2 {
		t.Fatalf("expected 2 wines, got %d", len(wines))
	}

	matches, err := repo.ListActive(ctx, "", "rioja")
	if err != nil {
		t.Fatalf("ListActive search: %v", err)
	}
	if len(matches) != 1 || matches[0].Name != "Rioja Reserva" {
		t.Fatalf("unexpected search result %+v", matches)
	}
}
