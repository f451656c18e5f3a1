package domain

// CartItem is one line of a provisioning basket. Name, image and unit price
// are denormalized from the product at add time; Stock records the ceiling
// the quantity was checked against.
type CartItem struct {
	Key                 string   `json:"key"`
	ProductID           string   `json:"productId"`
	Name                string   `json:"name"`
	ImageURL            string   `json:"imageUrl,omitempty"`
	PriceCents          int64    `json:"priceCents"`
	VariantLabel        string   `json:"variantLabel,omitempty"`
	Quantity            int      `json:"quantity"`
	Stock               int      `json:"stock"`
	Tags                []string `json:"tags,omitempty"`
	SpecialInstructions string   `json:"specialInstructions,omitempty"`
}

// CartKey builds the composite line key: the product id alone, or
// "<id>::<variant>" when a variant is selected.
func CartKey(productID, variantLabel string) string {
	if variantLabel == "" {
		return productID
	}
	return productID + "::" + variantLabel
}

type CartTotals struct {
	SubtotalCents int64 `json:"subtotalCents"`
	DeliveryCents int64 `json:"deliveryCents"`
	TotalCents    int64 `json:"totalCents"`
}

// Pricing holds the checkout money rules in euro cents.
type Pricing struct {
	FreeDeliveryThresholdCents int64
	MinimumOrderCents          int64
	DeliveryFeeCents           int64
}

func DefaultPricing() Pricing {
	return Pricing{
		FreeDeliveryThresholdCents: 15000,
		MinimumOrderCents:          5000,
		DeliveryFeeCents:           1500,
	}
}

// Totals derives subtotal, delivery and total for a set of cart items. The
// delivery fee is waived once the subtotal reaches the free-delivery
// threshold.
func (p Pricing) Totals(items []CartItem) CartTotals {
	var t CartTotals
	for _, item := range items {
		t.SubtotalCents += item.PriceCents * int64(item.Quantity)
	}
	if t.SubtotalCents < p.FreeDeliveryThresholdCents {
		t.DeliveryCents = p.DeliveryFeeCents
	}
	t.TotalCents = t.SubtotalCents + t.DeliveryCents
	return t
}
