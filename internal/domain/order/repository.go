package order

import "context"

type Repository interface {
	Insert(ctx context.Context, o *Order) error
	// ListByUser returns the user's orders newest first.
	ListByUser(ctx context.Context, userID string) ([]*Order, error)
	GetByID(ctx context.Context, id string) (*Order, error)
}
