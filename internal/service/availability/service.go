// Package availability answers day-by-day booking availability for a month
// by reading a vessel's external calendar feed.
package availability

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"nautiq-backend/internal/domain"
	"nautiq-backend/internal/ical"
)

const (
	userAgent    = "NautiqIbiza/1.0"
	fetchTimeout = 10 * time.Second
	maxFeedBytes = 4 << 20
)

type Service struct {
	client *http.Client
	logger *log.Logger
}

func New(client *http.Client, logger *log.Logger) *Service {
	if client == nil {
		client = &http.Client{Timeout: fetchTimeout}
	}
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Service{client: client, logger: logger}
}

// ForMonth fetches the feed and reports one entry per day of the month. An
// empty feed URL yields an empty list with no error; callers must treat
// that as "unknown", not as an open month.
func (s *Service) ForMonth(ctx context.Context, feedURL string, year int, month time.Month) ([]domain.AvailabilityDay, error) {
	if strings.TrimSpace(feedURL) == "" {
		return []domain.AvailabilityDay{}, nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, feedURL, nil)
	if err != nil {
		return nil, fmt.Errorf("build feed request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch calendar feed: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("fetch calendar feed: unexpected status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxFeedBytes))
	if err != nil {
		return nil, fmt.Errorf("read calendar feed: %w", err)
	}

	events := ical.ParseEvents(string(body))
	s.logger.Printf("availability: feed=%s events=%d month=%04d-%02d", feedURL, len(events), year, month)
	return ical.MonthAvailability(year, month, events), nil
}
