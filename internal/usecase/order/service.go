package order

import (
	"context"

	domorder "example.com/storefront/internal/domain/order"
)

type Repository interface {
	ListByUser(ctx context.Context, userID string) ([]*domorder.Order, error)
	GetByID(ctx context.Context, id string) (*domorder.Order, error)
}

type Service struct {
	orders Repository
}

func NewService(orders Repository) *Service {
	return &Service{orders: orders}
}

// History returns the user's orders newest first.
func (s *Service) History(ctx context.Context, userID string) ([]*domorder.Order, error) {
	return s.orders.ListByUser(ctx, userID)
}

func (s *Service) Get(ctx context.Context, id string) (*domorder.Order, error) {
	return s.orders.GetByID(ctx, id)
}
