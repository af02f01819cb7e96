package cartstore

import (
	"context"
	"errors"

	domcart "example.com/storefront/internal/domain/cart"
)

// ErrNotFound reports that no durable cart record exists under the key.
var ErrNotFound = errors.New("cart record not found")

// Storage is the durable backing record for the cart: one JSON-encoded
// sequence of line items under a fixed key. Delete removes the record
// entirely rather than storing an empty list.
type Storage interface {
	Load(ctx context.Context) ([]domcart.LineItem, error)
	Save(ctx context.Context, items []domcart.LineItem) error
	Delete(ctx context.Context) error
}
