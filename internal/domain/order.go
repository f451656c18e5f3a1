package domain

import "time"

const OrderStatusPending = "pending"

// Order is the document handed to the order sink at checkout. It is built
// once per successful submission and never mutated afterwards.
type Order struct {
	ID              string      `json:"id"`
	CustomerName    string      `json:"customerName"`
	Email           string      `json:"email"`
	Phone           string      `json:"phone"`
	Marina          string      `json:"marina"`
	DeliveryDate    string      `json:"deliveryDate"`
	DeliveryTime    string      `json:"deliveryTime"`
	BoatCompany     string      `json:"boatCompany"`
	BoatName        string      `json:"boatName"`
	Items           []OrderItem `json:"items"`
	SubtotalCents   int64       `json:"subtotalCents"`
	DeliveryCents   int64       `json:"deliveryCents"`
	TotalCents      int64       `json:"totalCents"`
	CollaboratorRef string      `json:"collaboratorRef,omitempty"`
	Status          string      `json:"status"`
	CreatedAt       time.Time   `json:"createdAt"`
}

type OrderItem struct {
	ProductID           string `json:"productId"`
	Name                string `json:"name"`
	VariantLabel        string `json:"variant,omitempty"`
	Quantity            int    `json:"quantity"`
	UnitPriceCents      int64  `json:"unitPrice"`
	SpecialInstructions string `json:"specialInstructions,omitempty"`
}
