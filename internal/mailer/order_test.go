package mailer

import (
	"strings"
	"testing"

	"nautiq-backend/internal/domain"
)

func sampleOrder() domain.Order {
	return domain.Order{
		ID:           "ord-1",
		CustomerName: "Ana Torres",
		Email:        "ana@example.com",
		Marina:       "Marina Ibiza",
		DeliveryDate: "2025-07-14",
		DeliveryTime: "08:00-12:00",
		BoatCompany:  "Ibiza Charters",
		BoatName:     "Sea Breeze",
		Items: []domain.OrderItem{
			{ProductID: "p1", Name: "Rioja Reserva", VariantLabel: "Magnum", Quantity: 2, UnitPriceCents: 3050},
		},
		SubtotalCents: 6100,
		DeliveryCents: 1500,
		TotalCents:    7600,
		Status:        domain.OrderStatusPending,
	}
}

func TestOrderConfirmationRouting(t *testing.T) {
	msg := OrderConfirmation("Nautiq Ibiza <info@nautiqibiza.com>", "orders@nautiqibiza.com", sampleOrder())
	if len(msg.To) != 2 || msg.To[0] != "ana@example.com" || msg.To[1] != "orders@nautiqibiza.com" {
		t.Fatalf("unexpected recipients %v", msg.To)
	}
	if msg.Subject != "Order confirmed - €76.00 - Nautiq Catering" {
		t.Fatalf("unexpected subject %q", msg.Subject)
	}
}

func TestOrderConfirmationBody(t *testing.T) {
	msg := OrderConfirmation("from", "internal", sampleOrder())
	for _, want := range []string{
		"Ana Torres",
		"Rioja Reserva (Magnum)",
		"2 ×",
		"€61.00",
		"Marina Ibiza",
		"Sea Breeze",
		"ord-1",
	} {
		if !strings.Contains(msg.HTML, want) {
			t.Fatalf("body missing %q:\n%s", want, msg.HTML)
		}
	}
}

func TestOrderConfirmationFreeDelivery(t *testing.T) {
	o := sampleOrder()
	o.DeliveryCents = 0
	msg := OrderConfirmation("from", "internal", o)
	if !strings.Contains(msg.HTML, "FREE") {
		t.Fatalf("free delivery not called out:\n%s", msg.HTML)
	}
}
