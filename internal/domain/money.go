package domain

import "fmt"

// Euros renders a cent amount the way the storefront does, e.g. "€12.50".
func Euros(cents int64) string {
	return fmt.Sprintf("€%.2f", float64(cents)/100)
}
