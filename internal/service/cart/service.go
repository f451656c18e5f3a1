// Package cart owns the provisioning basket: quantity and variant
// resolution, stock enforcement, derived totals, and write-through
// persistence of every successful mutation.
package cart

import (
	"context"
	"fmt"
	"io"
	"log"

	"nautiq-backend/internal/cartstore"
	"nautiq-backend/internal/domain"
	"nautiq-backend/internal/notice"
)

type Service struct {
	store   cartstore.Store
	pricing domain.Pricing
	notices *notice.Registry
	logger  *log.Logger
}

func New(store cartstore.Store, pricing domain.Pricing, notices *notice.Registry, logger *log.Logger) *Service {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Service{store: store, pricing: pricing, notices: notices, logger: logger}
}

// Items returns the session's current cart.
func (s *Service) Items(ctx context.Context, sessionID string) ([]domain.CartItem, error) {
	return s.store.Load(ctx, sessionID)
}

// Totals derives subtotal, delivery and total for the given items.
func (s *Service) Totals(items []domain.CartItem) domain.CartTotals {
	return s.pricing.Totals(items)
}

type AddInput struct {
	Quantity            int
	VariantLabel        string
	SpecialInstructions string
}

// Add puts quantity units of the product (under the optional variant) into
// the cart. A non-positive quantity is ignored. When the new line quantity
// would exceed the product's stock the cart is left unchanged, an
// insufficient-stock notice is raised and ErrInsufficientStock returned.
func (s *Service) Add(ctx context.Context, sessionID string, product domain.Product, in AddInput) ([]domain.CartItem, error) {
	items, err := s.store.Load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if in.Quantity <= 0 {
		return items, nil
	}

	nc := s.notices.For(sessionID)
	key := domain.CartKey(product.ID, in.VariantLabel)
	idx := indexOf(items, key)

	newQty := in.Quantity
	if idx >= 0 {
		newQty += items[idx].Quantity
	}
	if newQty > product.Stock {
		nc.Push(notice.Error, fmt.Sprintf("Only %d of %s available.", product.Stock, product.Name))
		return items, domain.ErrInsufficientStock
	}

	if idx >= 0 {
		items[idx].Quantity = newQty
		nc.Push(notice.Success, fmt.Sprintf("Added %d more of %s", in.Quantity, product.Name))
	} else {
		items = append(items, domain.CartItem{
			Key:                 key,
			ProductID:           product.ID,
			Name:                product.Name,
			ImageURL:            product.ImageURL,
			PriceCents:          product.UnitPriceCents(in.VariantLabel),
			VariantLabel:        in.VariantLabel,
			Quantity:            in.Quantity,
			Stock:               product.Stock,
			Tags:                product.Tags,
			SpecialInstructions: in.SpecialInstructions,
		})
		nc.Push(notice.Success, product.Name+" added to basket")
	}

	if err := s.store.Save(ctx, sessionID, items); err != nil {
		return nil, err
	}
	return items, nil
}

// UpdateQuantity sets a line's quantity. Above the recorded stock ceiling
// the quantity clamps to the ceiling and a notice is raised; zero or less
// removes the line. An unknown key is a no-op.
func (s *Service) UpdateQuantity(ctx context.Context, sessionID, key string, quantity int) ([]domain.CartItem, error) {
	items, err := s.store.Load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	idx := indexOf(items, key)
	if idx < 0 {
		return items, nil
	}

	switch {
	case quantity > items[idx].Stock:
		s.notices.For(sessionID).Push(notice.Error, fmt.Sprintf("Only %d available.", items[idx].Stock))
		items[idx].Quantity = items[idx].Stock
	case quantity <= 0:
		items = append(items[:idx], items[idx+1:]...)
	default:
		items[idx].Quantity = quantity
	}

	if err := s.store.Save(ctx, sessionID, items); err != nil {
		return nil, err
	}
	return items, nil
}

// Remove drops the line with the given key. Removing an absent key leaves
// the cart as is.
func (s *Service) Remove(ctx context.Context, sessionID, key string) ([]domain.CartItem, error) {
	items, err := s.store.Load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if idx := indexOf(items, key); idx >= 0 {
		items = append(items[:idx], items[idx+1:]...)
	}
	s.notices.For(sessionID).Push(notice.Info, "Item removed")

	if err := s.store.Save(ctx, sessionID, items); err != nil {
		return nil, err
	}
	return items, nil
}

func indexOf(items []domain.CartItem, key string) int {
	for i := range items {
		if items[i].Key == key {
			return i
		}
	}
	return -1
}
