package checkout

import (
	"regexp"
	"strings"

	"nautiq-backend/internal/domain"
)

// Form carries the checkout fields as submitted.
type Form struct {
	CustomerName string `json:"customerName"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	Marina       string `json:"marina"`
	DeliveryDate string `json:"deliveryDate"`
	DeliveryTime string `json:"deliveryTime"`
	BoatCompany  string `json:"boatCompany"`
	BoatName     string `json:"boatName"`
}

var emailShape = regexp.MustCompile(`.+@.+\..+`)

// ValidateForm checks required fields and returns a field → message map; an
// empty map means valid. Stock and totals are not re-checked here, Submit
// owns those guards.
func ValidateForm(f Form) map[string]string {
	errs := make(map[string]string)
	if strings.TrimSpace(f.CustomerName) == "" {
		errs["customerName"] = "Full name is required"
	}
	if !emailShape.MatchString(f.Email) {
		errs["email"] = "Valid e-mail required"
	}
	if digitCount(f.Phone) < 7 {
		errs["phone"] = "Valid phone required"
	}
	if !domain.ValidMarina(f.Marina) {
		errs["marina"] = "Marina location required"
	}
	if strings.TrimSpace(f.DeliveryDate) == "" {
		errs["deliveryDate"] = "Delivery date required"
	}
	if !domain.ValidDeliveryWindow(f.DeliveryTime) {
		errs["deliveryTime"] = "Delivery time required"
	}
	if strings.TrimSpace(f.BoatCompany) == "" {
		errs["boatCompany"] = "Boat rental company required"
	}
	if strings.TrimSpace(f.BoatName) == "" {
		errs["boatName"] = "Boat name is required"
	}
	return errs
}

func digitCount(s string) int {
	n := 0
	for _, r := range s {
		if r >= '0' && r <= '9' {
			n++
		}
	}
	return n
}
