package domain

import "time"

// Boat is one charter vessel in the fleet. ICalURL, when set, points at the
// external booking calendar feed the availability checker reads.
type Boat struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Tagline        string    `json:"tagline,omitempty"`
	PriceFromCents int64     `json:"priceFromCents"`
	Guests         int       `json:"guests"`
	LengthM        float64   `json:"length,omitempty"`
	ImageURL       string    `json:"image,omitempty"`
	Tags           []string  `json:"tags,omitempty"`
	Popular        bool      `json:"popular,omitempty"`
	RatingAvg      float64   `json:"ratingAvg,omitempty"`
	ICalURL        string    `json:"icalUrl,omitempty"`
	CreatedAt      time.Time `json:"createdAt"`
}
