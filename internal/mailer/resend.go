package mailer

import (
	"context"
	"fmt"
	"io"
	"log"

	"github.com/resend/resend-go/v2"
)

// ResendSender delivers mail through the Resend API.
type ResendSender struct {
	client *resend.Client
	logger *log.Logger
}

func NewResend(apiKey string, logger *log.Logger) *ResendSender {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &ResendSender{client: resend.NewClient(apiKey), logger: logger}
}

func (s *ResendSender) Send(ctx context.Context, msg Message) error {
	params := &resend.SendEmailRequest{
		From:    msg.From,
		To:      msg.To,
		ReplyTo: msg.ReplyTo,
		Subject: msg.Subject,
		Html:    msg.HTML,
	}
	sent, err := s.client.Emails.SendWithContext(ctx, params)
	if err != nil {
		s.logger.Printf("mailer: send subject=%q error=%v", msg.Subject, err)
		return fmt.Errorf("send email: %w", err)
	}
	s.logger.Printf("mailer: sent id=%s subject=%q", sent.Id, msg.Subject)
	return nil
}
