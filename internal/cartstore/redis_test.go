package cartstore

import (
	"context"
	"os"
	"testing"

	"nautiq-backend/internal/domain"
)

func testRedis(t *testing.T) *RedisStore {
	t.Helper()
	url := os.Getenv("TEST_REDIS_URL")
	if url == "" {
		t.Skip("TEST_REDIS_URL not set")
	}
	store, err := NewRedis(url, nil)
	if err != nil {
		t.Fatalf("connect redis: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestRedisStoreRoundTrip(t *testing.T) {
	store := testRedis(t)
	ctx := context.Background()
	const sid = "cartstore-test-session"

	if err := store.Clear(ctx, sid); err != nil {
		t.Fatalf("clear: %v", err)
	}
	if items, err := store.Load(ctx, sid); err != nil || items != nil {
		t.Fatalf("fresh slot: got %+v, %v", items, err)
	}

	saved := []domain.CartItem{{Key: "p1", ProductID: "p1", Name: "Rioja", PriceCents: 1850, Quantity: 2, Stock: 10}}
	if err := store.Save(ctx, sid, saved); err != nil {
		t.Fatalf("save: %v", err)
	}
	items, err := store.Load(ctx, sid)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(items) != 1 || items[0].Name != "Rioja" || items[0].Quantity != 2 {
		t.Fatalf("unexpected items %+v", items)
	}

	if err := store.Clear(ctx, sid); err != nil {
		t.Fatalf("clear: %v", err)
	}
	if items, _ := store.Load(ctx, sid); len(items) != 0 {
		t.Fatalf("expected cleared slot, got %+v", items)
	}
}

func TestRedisStoreMalformedSlotFailsOpen(t *testing.T) {
	store := testRedis(t)
	ctx := context.Background()
	const sid = "cartstore-test-garbage"

	if err := store.client.Set(ctx, cartKey(sid), "not json", 0).Err(); err != nil {
		t.Fatalf("seed garbage: %v", err)
	}
	t.Cleanup(func() { store.Clear(ctx, sid) })

	items, err := store.Load(ctx, sid)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if items != nil {
		t.Fatalf("expected empty cart on garbage payload, got %+v", items)
	}
}
