package mailer

import (
	"fmt"
	"strings"

	"nautiq-backend/internal/domain"
)

// OrderConfirmation builds the message sent to the customer (with an
// internal copy) once an order has been durably placed.
func OrderConfirmation(from, internalTo string, o domain.Order) Message {
	var lines strings.Builder
	for _, item := range o.Items {
		name := item.Name
		if item.VariantLabel != "" {
			name += " (" + item.VariantLabel + ")"
		}
		fmt.Fprintf(&lines, "<li>%d × %s — %s</li>", item.Quantity, name, domain.Euros(item.UnitPriceCents*int64(item.Quantity)))
	}

	delivery := "FREE"
	if o.DeliveryCents > 0 {
		delivery = domain.Euros(o.DeliveryCents)
	}

	html := fmt.Sprintf(`<div style="font-family: sans-serif; max-width: 600px; margin: 0 auto;">
  <h1>Order confirmed</h1>
  <p>Thank you, %s. Your provisions are being prepared for delivery.</p>
  <p><strong>Delivery:</strong> %s, %s (%s)<br>
  <strong>Vessel:</strong> %s — %s</p>
  <ul>%s</ul>
  <p>Subtotal %s · Delivery %s · <strong>Total %s</strong></p>
  <p>Order reference: %s</p>
</div>`,
		o.CustomerName,
		o.Marina, o.DeliveryDate, o.DeliveryTime,
		o.BoatCompany, o.BoatName,
		lines.String(),
		domain.Euros(o.SubtotalCents), delivery, domain.Euros(o.TotalCents),
		o.ID,
	)

	return Message{
		From:    from,
		To:      []string{o.Email, internalTo},
		Subject: fmt.Sprintf("Order confirmed - %s - Nautiq Catering", domain.Euros(o.TotalCents)),
		HTML:    html,
	}
}
