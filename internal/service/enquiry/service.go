// Package enquiry handles the charter booking enquiry flow: one internal
// notification and one customer acknowledgment per enquiry.
package enquiry

import (
	"context"
	"fmt"
	"io"
	"log"
	"strings"
	"time"

	"nautiq-backend/internal/mailer"
)

type Service struct {
	mail       mailer.Sender
	from       string
	internalTo string
	logger     *log.Logger
}

func New(mail mailer.Sender, from, internalTo string, logger *log.Logger) *Service {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Service{mail: mail, from: from, internalTo: internalTo, logger: logger}
}

// Enquiry is one charter booking request from the contact form.
type Enquiry struct {
	Contact string
	Date    string
	Guests  string
	Budget  string
	Message string
}

// Submit emails the enquiry: the internal notification first, then the
// acknowledgment to the customer. Both must go out for the enquiry to count
// as sent; a half-sent pair is not rolled back.
func (s *Service) Submit(ctx context.Context, e Enquiry) error {
	date := formatDate(e.Date)

	notification := mailer.Message{
		From:    s.from,
		To:      []string{s.internalTo},
		ReplyTo: e.Contact,
		Subject: fmt.Sprintf("New Booking Enquiry - %s guests, €%s", e.Guests, e.Budget),
		HTML:    notificationHTML(e, date),
	}
	if err := s.mail.Send(ctx, notification); err != nil {
		return fmt.Errorf("send enquiry notification: %w", err)
	}

	ack := mailer.Message{
		From:    s.from,
		To:      []string{e.Contact},
		Subject: "We received your enquiry - Nautiq Ibiza",
		HTML:    acknowledgmentHTML(e, date),
	}
	if err := s.mail.Send(ctx, ack); err != nil {
		return fmt.Errorf("send enquiry acknowledgment: %w", err)
	}

	s.logger.Printf("enquiry: sent pair contact=%s date=%s", e.Contact, e.Date)
	return nil
}

// formatDate renders an ISO date long-form ("Monday, 2 January 2006"); any
// other shape passes through untouched.
func formatDate(raw string) string {
	d, err := time.Parse("2006-01-02", strings.TrimSpace(raw))
	if err != nil {
		return raw
	}
	return d.Format("Monday, 2 January 2006")
}
