package cart

import "errors"

var (
	ErrInvalidItem     = errors.New("cart item requires an id and a non-negative price")
	ErrInvalidQuantity = errors.New("quantity must not be negative")
	ErrEmptyCart       = errors.New("cart is empty")
)
