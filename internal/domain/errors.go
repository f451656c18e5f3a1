package domain

import "errors"

var (
	// ErrNotFound indicates the requested entity was not found.
	ErrNotFound = errors.New("not found")

	// ErrInsufficientStock indicates a requested quantity exceeds the stock
	// recorded for the product.
	ErrInsufficientStock = errors.New("insufficient stock")

	// ErrEmptyCart indicates a checkout was attempted with no items.
	ErrEmptyCart = errors.New("cart is empty")

	// ErrBelowMinimum indicates the cart total is under the minimum order
	// amount.
	ErrBelowMinimum = errors.New("total below minimum order")
)
