package domain

import "time"

type Product struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	Description     string    `json:"description,omitempty"`
	Category        string    `json:"category"`
	ImageURL        string    `json:"imageUrl,omitempty"`
	PriceCents      int64     `json:"priceCents"`
	Stock           int       `json:"stock"`
	IsActive        bool      `json:"isActive"`
	PrepTimeMinutes int       `json:"prepTime,omitempty"`
	Featured        bool      `json:"featured,omitempty"`
	ColdChain       bool      `json:"isColdChain,omitempty"`
	Tags            []string  `json:"tags,omitempty"`
	Variants        []Variant `json:"variants,omitempty"`
	CreatedAt       time.Time `json:"createdAt"`
}

// Variant is a selectable product option (size, format) priced as a delta
// over the product's base price.
type Variant struct {
	Label           string `json:"label"`
	PriceDeltaCents int64  `json:"priceDeltaCents,omitempty"`
}

// UnitPriceCents resolves the price for one unit of the product under the
// named variant. An empty or unknown label resolves to the base price.
func (p Product) UnitPriceCents(variantLabel string) int64 {
	if variantLabel == "" {
		return p.PriceCents
	}
	for _, v := range p.Variants {
		if v.Label == variantLabel {
			return p.PriceCents + v.PriceDeltaCents
		}
	}
	return p.PriceCents
}
