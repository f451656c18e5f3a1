package seed

import (
	"context"
	"fmt"

	"nautiq-backend/internal/domain"
	boatrepo "nautiq-backend/internal/repository/boat"
	productrepo "nautiq-backend/internal/repository/product"
)

// Apply inserts basic catalog data for manual testing. It is idempotent via
// ON CONFLICT upserts in the repositories.
func Apply(ctx context.Context, products productrepo.Repository, boats boatrepo.Repository) error {
	for _, p := range seedProducts() {
		if _, err := products.Upsert(ctx, p); err != nil {
			return fmt.Errorf("upsert product %q: %w", p.Name, err)
		}
	}
	for _, b := range seedBoats() {
		if _, err := boats.Upsert(ctx, b); err != nil {
			return fmt.Errorf("upsert boat %q: %w", b.Name, err)
		}
	}
	return nil
}

func seedProducts() []domain.Product {
	return []domain.Product{
		{
			Name:        "Vega Sicilia Único 2015",
			Description: "Ribera del Duero icon, decanted on request",
			Category:    "wine",
			PriceCents:  42500,
			Stock:       6,
			IsActive:    true,
			Featured:    true,
			Tags:        []string{"red", "premium"},
			Variants: []domain.Variant{
				{Label: "Bottle"},
				{Label: "Magnum", PriceDeltaCents: 48000},
			},
		},
		{
			Name:        "Champagne Ruinart Blanc de Blancs",
			Description: "Chilled and cellar-packed for the crossing",
			Category:    "wine",
			PriceCents:  9800,
			Stock:       24,
			IsActive:    true,
			ColdChain:   true,
			Tags:        []string{"champagne"},
		},
		{
			Name:            "Iberian Charcuterie Board",
			Description:     "Acorn-fed ham, lomo, chorizo, picos",
			Category:        "fresh",
			PriceCents:      6500,
			Stock:           10,
			IsActive:        true,
			PrepTimeMinutes: 120,
			ColdChain:       true,
			Tags:            []string{"savoury", "sharing"},
			Variants: []domain.Variant{
				{Label: "4 guests"},
				{Label: "8 guests", PriceDeltaCents: 5500},
			},
		},
		{
			Name:       "Still Water Case (12×1L)",
			Category:   "essentials",
			PriceCents: 1800,
			Stock:      80,
			IsActive:   true,
		},
		{
			Name:       "Hendrick's Gin",
			Category:   "spirits",
			PriceCents: 4200,
			Stock:      15,
			IsActive:   true,
			Tags:       []string{"gin"},
		},
	}
}

func seedBoats() []domain.Boat {
	return []domain.Boat{
		{
			Name:           "Princess V50",
			Tagline:        "Fast, spacious day cruiser",
			PriceFromCents: 290000,
			Guests:         10,
			LengthM:        15.3,
			Tags:           []string{"motor", "popular"},
			Popular:        true,
			RatingAvg:      4.9,
			ICalURL:        "https://calendar.example.com/princess-v50.ics",
		},
		{
			Name:           "Lagoon 42",
			Tagline:        "Stable catamaran for big groups",
			PriceFromCents: 210000,
			Guests:         12,
			LengthM:        12.8,
			Tags:           []string{"catamaran"},
			RatingAvg:      4.7,
		},
		{
			Name:           "Axopar 37",
			Tagline:        "Formentera in forty minutes",
			PriceFromCents: 160000,
			Guests:         8,
			LengthM:        11.2,
			Tags:           []string{"motor", "day-trip"},
		},
	}
}
