package order

import (
	"time"

	domcart "example.com/storefront/internal/domain/cart"
)

// Order is an immutable snapshot of a checked-out cart. It is written once
// to the orders collection and never updated.
type Order struct {
	ID         string
	UserID     string
	Items      []domcart.LineItem
	TotalPrice float64
	CreatedAt  time.Time
}
