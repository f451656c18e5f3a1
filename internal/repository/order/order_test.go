package order

import (
	"context"
	"os"
	"testing"

	"nautiq-backend/internal/domain"
	"nautiq-backend/internal/migrate"

	"github.com/google/uuid"
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
	if _, err := pool.Exec(ctx, `TRUNCATE orders`); err != nil {
		t.Fatalf("reset tables: %v", err)
	}
	return pool
}

func TestPostgres_Insert(t *testing.T) {
	ctx := context.Background()
	pool := testPool(ctx, t)
	defer pool.Close()

	repo := NewPostgres(pool, nil)
	placed, err := repo.Insert(ctx, domain.Order{
		ID:           uuid.NewString(),
		CustomerName: "Ana Torres",
		Email:        "ana@example.com",
		Phone:        "600123456",
		Marina:       "Marina Ibiza",
		DeliveryDate: "2025-07-14",
		DeliveryTime: "08:00-12:00",
		BoatCompany:  "Ibiza Charters",
		BoatName:     "Sea Breeze",
		Items: []domain.OrderItem{
			{ProductID: "p1", Name: "Rioja Reserva", Quantity: 2, UnitPriceCents: 6000},
		},
		SubtotalCents:   12000,
		DeliveryCents:   1500,
		TotalCents:      13500,
		CollaboratorRef: "skipper-77",
		Status:          domain.OrderStatusPending,
	})
	if err != nil {
		t.Fatalf("Insert: %v", err)
	}
	if placed.CreatedAt.IsZero() {
		t.Fatalf("expected DB-assigned timestamp, got %+v", placed)
	}
	if placed.Status != domain.OrderStatusPending {
		t.Fatalf("unexpected status %q", placed.Status)
	}

	var count int
	if err := pool.QueryRow(ctx, `SELECT count(*) FROM orders`).Scan(&count); err != nil {
		t.Fatalf("count orders: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected 1 order, got %d", count)
	}
}

func TestPostgres_InsertRejectsDuplicateID(t *testing.T) {
	ctx := context.Background()
	pool := testPool(ctx, t)
	defer pool.Close()

	repo := NewPostgres(pool, nil)
	o := domain.Order{
		ID:           uuid.NewString(),
		CustomerName: "Ana Torres",
		Email:        "ana@example.com",
		Phone:        "600123456",
		Marina:       "Marina Ibiza",
		DeliveryDate: "2025-07-14",
		DeliveryTime: "08:00-12:00",
		BoatCompany:  "Ibiza Charters",
		BoatName:     "Sea Breeze",
		Items:        []domain.OrderItem{},
		Status:       domain.OrderStatusPending,
	}
	if _, err := repo.Insert(ctx, o); err != nil {
		t.Fatalf("first insert: %v", err)
	}
	if _, err := repo.Insert(ctx, o); err == nil {
		t.Fatalf("expected duplicate id rejection")
	}
}
