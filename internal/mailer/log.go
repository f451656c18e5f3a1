package mailer

import (
	"context"
	"log"
)

// LogSender writes mail to the log instead of delivering it. It stands in
// for Resend when no API key is configured.
type LogSender struct {
	Logger *log.Logger
}

func (s LogSender) Send(_ context.Context, msg Message) error {
	s.Logger.Printf("mailer (dry run): to=%v subject=%q", msg.To, msg.Subject)
	return nil
}
