package enquiry

import (
	"fmt"
	"html"
	"strings"
)

func notificationHTML(e Enquiry, date string) string {
	var b strings.Builder
	b.WriteString(`<div style="font-family: sans-serif; max-width: 600px;">`)
	b.WriteString(`<h1>New Booking Enquiry</h1>`)
	row(&b, "Preferred Date", date)
	row(&b, "Guests", e.Guests+" guests")
	row(&b, "Budget", "€"+e.Budget+"/day")
	row(&b, "Contact", e.Contact)
	if e.Message != "" {
		row(&b, "Message", e.Message)
	}
	fmt.Fprintf(&b, `<p><a href="https://wa.me/%s">Reply on WhatsApp</a></p>`, digitsOnly(e.Contact))
	b.WriteString(`</div>`)
	return b.String()
}

func acknowledgmentHTML(e Enquiry, date string) string {
	var b strings.Builder
	b.WriteString(`<div style="font-family: sans-serif; max-width: 600px;">`)
	b.WriteString(`<h1>Thanks for reaching out!</h1>`)
	b.WriteString(`<p>Thanks for your enquiry about chartering a boat in Ibiza with Nautiq. We've received your request and we'll reply shortly with tailored options.</p>`)
	b.WriteString(`<p><strong>Your request:</strong><br>`)
	fmt.Fprintf(&b, "Date: %s<br>Guests: %s<br>Budget: €%s/day</p>",
		html.EscapeString(date), html.EscapeString(e.Guests), html.EscapeString(e.Budget))
	b.WriteString(`<p>Warm regards,<br><strong>The Nautiq Ibiza Team</strong></p>`)
	b.WriteString(`</div>`)
	return b.String()
}

func row(b *strings.Builder, label, value string) {
	fmt.Fprintf(b, `<p><strong>%s:</strong> %s</p>`, html.EscapeString(label), html.EscapeString(value))
}

func digitsOnly(s string) string {
	var out strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			out.WriteRune(r)
		}
	}
	return out.String()
}
