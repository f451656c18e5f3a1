package domain

import (
	"testing"
	"time"
)

func date(year, month, day int) time.Time {
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
}

func TestCartKey(t *testing.T) {
	if got := CartKey("p1", ""); got != "p1" {
		t.Fatalf("expected bare id, got %q", got)
	}
	if got := CartKey("p1", "Magnum"); got != "p1::Magnum" {
		t.Fatalf("expected composite key, got %q", got)
	}
}

func TestUnitPriceCents(t *testing.T) {
	p := Product{PriceCents: 1850, Variants: []Variant{{Label: "Magnum", PriceDeltaCents: 1200}}}
	if got := p.UnitPriceCents(""); got != 1850 {
		t.Fatalf("base price: got %d", got)
	}
	if got := p.UnitPriceCents("Magnum"); got != 3050 {
		t.Fatalf("variant price: got %d", got)
	}
	if got := p.UnitPriceCents("Unknown"); got != 1850 {
		t.Fatalf("unknown variant should fall back to base, got %d", got)
	}
}

func TestTotalsChargesDeliveryBelowThreshold(t *testing.T) {
	p := DefaultPricing()
	totals := p.Totals([]CartItem{{PriceCents: 2000, Quantity: 3}})
	if totals.SubtotalCents != 6000 {
		t.Fatalf("subtotal: got %d", totals.SubtotalCents)
	}
	if totals.DeliveryCents != p.DeliveryFeeCents {
		t.Fatalf("delivery: got %d", totals.DeliveryCents)
	}
	if totals.TotalCents != 7500 {
		t.Fatalf("total: got %d", totals.TotalCents)
	}
}

func TestTotalsFreeDeliveryAtThreshold(t *testing.T) {
	p := DefaultPricing()
	totals := p.Totals([]CartItem{{PriceCents: p.FreeDeliveryThresholdCents, Quantity: 1}})
	if totals.DeliveryCents != 0 {
		t.Fatalf("expected free delivery at the threshold, got %d", totals.DeliveryCents)
	}
	if totals.TotalCents != p.FreeDeliveryThresholdCents {
		t.Fatalf("total: got %d", totals.TotalCents)
	}
}

func TestTotalsOneCentUnderThreshold(t *testing.T) {
	p := DefaultPricing()
	totals := p.Totals([]CartItem{{PriceCents: p.FreeDeliveryThresholdCents - 1, Quantity: 1}})
	if totals.DeliveryCents != p.DeliveryFeeCents {
		t.Fatalf("expected delivery fee just under the threshold, got %d", totals.DeliveryCents)
	}
}

func TestTotalsEmptyCart(t *testing.T) {
	totals := DefaultPricing().Totals(nil)
	if totals.SubtotalCents != 0 || totals.TotalCents != DefaultPricing().DeliveryFeeCents {
		t.Fatalf("unexpected empty-cart totals %+v", totals)
	}
}

func TestBusyIntervalContainsInclusive(t *testing.T) {
	iv := BusyInterval{
		Start: date(2025, 7, 10),
		End:   date(2025, 7, 12),
	}
	for day, want := range map[int]bool{9: false, 10: true, 11: true, 12: true, 13: false} {
		if got := iv.Contains(date(2025, 7, day)); got != want {
			t.Fatalf("day %d: got %v, want %v", day, got, want)
		}
	}
}

func TestValidMarinaAndDeliveryWindow(t *testing.T) {
	if !ValidMarina("Marina Ibiza") || ValidMarina("Monaco") {
		t.Fatalf("marina allow-list broken")
	}
	if !ValidDeliveryWindow("08:00-12:00") || ValidDeliveryWindow("08:00 – 12:00") {
		t.Fatalf("delivery window must match by value, not label")
	}
}

func TestEuros(t *testing.T) {
	if got := Euros(1250); got != "€12.50" {
		t.Fatalf("got %q", got)
	}
	if got := Euros(5000); got != "€50.00" {
		t.Fatalf("got %q", got)
	}
}
