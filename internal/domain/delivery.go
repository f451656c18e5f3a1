package domain

// Marinas is the delivery location allow-list offered at checkout.
var Marinas = []string{
	"Marina Ibiza",
	"Botafoch",
	"Club Náutico Ibiza",
}

// DeliveryWindow is a selectable delivery time slot.
type DeliveryWindow struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

var DeliveryWindows = []DeliveryWindow{
	{Label: "08:00 – 12:00", Value: "08:00-12:00"},
	{Label: "12:00 – 16:00", Value: "12:00-16:00"},
	{Label: "16:00 – 20:00", Value: "16:00-20:00"},
	{Label: "20:00 – 22:00", Value: "20:00-22:00"},
}

func ValidMarina(name string) bool {
	for _, m := range Marinas {
		if m == name {
			return true
		}
	}
	return false
}

func ValidDeliveryWindow(value string) bool {
	for _, w := range DeliveryWindows {
		if w.Value == value {
			return true
		}
	}
	return false
}
