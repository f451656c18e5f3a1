// Package checkout drives the shop → checkout → confirmation state machine:
// form validation, the order guards, the single hand-off to the order sink,
// and clearing the cart once the sink confirms.
package checkout

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"sync"

	"nautiq-backend/internal/cartstore"
	"nautiq-backend/internal/domain"
	"nautiq-backend/internal/notice"

	"github.com/google/uuid"
)

type Page string

const (
	PageShop         Page = "shop"
	PageCheckout     Page = "checkout"
	PageConfirmation Page = "confirmation"
)

// ErrSubmitInFlight rejects a repeat submission while one is still running.
var ErrSubmitInFlight = errors.New("submission already in progress")

type orderSink interface {
	Insert(ctx context.Context, o domain.Order) (*domain.Order, error)
}

type Service struct {
	store   cartstore.Store
	orders  orderSink
	pricing domain.Pricing
	notices *notice.Registry
	logger  *log.Logger
	placed  func(domain.Order)

	mu       sync.Mutex
	sessions map[string]*sessionState
}

type sessionState struct {
	page       Page
	submitting bool
}

func New(store cartstore.Store, orders orderSink, pricing domain.Pricing, notices *notice.Registry, logger *log.Logger) *Service {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Service{
		store:    store,
		orders:   orders,
		pricing:  pricing,
		notices:  notices,
		logger:   logger,
		sessions: make(map[string]*sessionState),
	}
}

// OnPlaced registers a hook invoked after every successful submission, after
// the cart is cleared. Hook failures must not affect the order.
func (s *Service) OnPlaced(hook func(domain.Order)) {
	s.placed = hook
}

func (s *Service) state(sessionID string) *sessionState {
	st, ok := s.sessions[sessionID]
	if !ok {
		st = &sessionState{page: PageShop}
		s.sessions[sessionID] = st
	}
	return st
}

// Page reports which page of the flow the session is on.
func (s *Service) Page(sessionID string) Page {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state(sessionID).page
}

// OpenCheckout moves the session from the shop to the checkout page. It is
// blocked while the running total is under the minimum order amount.
func (s *Service) OpenCheckout(ctx context.Context, sessionID string) (Page, error) {
	items, err := s.store.Load(ctx, sessionID)
	if err != nil {
		return s.Page(sessionID), err
	}
	if len(items) == 0 || s.pricing.Totals(items).TotalCents < s.pricing.MinimumOrderCents {
		s.notices.For(sessionID).Push(notice.Error, fmt.Sprintf("Minimum order is %s", domain.Euros(s.pricing.MinimumOrderCents)))
		return s.Page(sessionID), domain.ErrBelowMinimum
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	st := s.state(sessionID)
	st.page = PageCheckout
	return st.page, nil
}

// Submit places the order: it guards the cart, snapshots it into an order
// document, hands the document to the sink exactly once, and on success
// clears the cart and moves the session to the confirmation page. A sink
// failure leaves the cart intact for a manual retry.
func (s *Service) Submit(ctx context.Context, sessionID string, form Form, collaboratorRef string) (*domain.Order, error) {
	nc := s.notices.For(sessionID)

	items, err := s.store.Load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		nc.Push(notice.Error, "Your basket is empty")
		return nil, domain.ErrEmptyCart
	}
	totals := s.pricing.Totals(items)
	if totals.TotalCents < s.pricing.MinimumOrderCents {
		nc.Push(notice.Error, fmt.Sprintf("Minimum order is %s", domain.Euros(s.pricing.MinimumOrderCents)))
		return nil, domain.ErrBelowMinimum
	}

	s.mu.Lock()
	st := s.state(sessionID)
	if st.submitting {
		s.mu.Unlock()
		return nil, ErrSubmitInFlight
	}
	st.submitting = true
	s.mu.Unlock()
	defer func() {
		s.mu.Lock()
		st.submitting = false
		s.mu.Unlock()
	}()

	order := domain.Order{
		ID:              uuid.NewString(),
		CustomerName:    form.CustomerName,
		Email:           form.Email,
		Phone:           form.Phone,
		Marina:          form.Marina,
		DeliveryDate:    form.DeliveryDate,
		DeliveryTime:    form.DeliveryTime,
		BoatCompany:     form.BoatCompany,
		BoatName:        form.BoatName,
		Items:           orderItems(items),
		SubtotalCents:   totals.SubtotalCents,
		DeliveryCents:   totals.DeliveryCents,
		TotalCents:      totals.TotalCents,
		CollaboratorRef: collaboratorRef,
		Status:          domain.OrderStatusPending,
	}
	placed, err := s.orders.Insert(ctx, order)
	if err != nil {
		s.logger.Printf("checkout: place order session=%s error=%v", sessionID, err)
		nc.Push(notice.Error, "Failed to place order. Please try again.")
		return nil, err
	}

	if err := s.store.Clear(ctx, sessionID); err != nil {
		// The order is already durable; a stale persisted cart is the lesser
		// problem and will be overwritten on the next mutation.
		s.logger.Printf("checkout: clear cart session=%s error=%v", sessionID, err)
	}
	s.mu.Lock()
	st.page = PageConfirmation
	s.mu.Unlock()
	nc.Push(notice.Success, "Order placed successfully.")

	if s.placed != nil {
		s.placed(*placed)
	}
	return placed, nil
}

func orderItems(items []domain.CartItem) []domain.OrderItem {
	out := make([]domain.OrderItem, 0, len(items))
	for _, item := range items {
		out = append(out, domain.OrderItem{
			ProductID:           item.ProductID,
			Name:                item.Name,
			VariantLabel:        item.VariantLabel,
			Quantity:            item.Quantity,
			UnitPriceCents:      item.PriceCents,
			SpecialInstructions: item.SpecialInstructions,
		})
	}
	return out
}
