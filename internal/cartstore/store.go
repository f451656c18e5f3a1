// Package cartstore persists the per-session cart snapshot. The stored copy
// is advisory, last-writer-wins; it is read once at session start and
// written through on every mutation.
package cartstore

import (
	"context"
	"encoding/json"
	"log"

	"nautiq-backend/internal/domain"
)

type Store interface {
	// Load returns the persisted cart for the session. A missing or
	// malformed slot reads as an empty cart, never an error.
	Load(ctx context.Context, sessionID string) ([]domain.CartItem, error)
	Save(ctx context.Context, sessionID string, items []domain.CartItem) error
	Clear(ctx context.Context, sessionID string) error
}

// decodeItems interprets a stored payload. Anything that is not a JSON list
// of cart items fails open to an empty cart.
func decodeItems(raw []byte, logger *log.Logger) []domain.CartItem {
	if len(raw) == 0 {
		return nil
	}
	var items []domain.CartItem
	if err := json.Unmarshal(raw, &items); err != nil {
		if logger != nil {
			logger.Printf("cart store: discarding malformed payload: %v", err)
		}
		return nil
	}
	return items
}
