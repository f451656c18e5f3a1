// Package mailer is the outbound notification sink: enquiry and order mail
// goes through the Sender interface so callers never see the provider.
package mailer

import "context"

type Message struct {
	From    string
	To      []string
	ReplyTo string
	Subject string
	HTML    string
}

type Sender interface {
	Send(ctx context.Context, msg Message) error
}
