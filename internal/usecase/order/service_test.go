package order

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	domorder "example.com/storefront/internal/domain/order"
)

type mockRepository struct {
	orders []*domorder.Order
}

func (m *mockRepository) ListByUser(ctx context.Context, userID string) ([]*domorder.Order, error) {
	var out []*domorder.Order
	for _, o := range m.orders {
		if o.UserID == userID {
			out = append(out, o)
		}
	}
	return out, nil
}

func (m *mockRepository) GetByID(ctx context.Context, id string) (*domorder.Order, error) {
	for _, o := range m.orders {
		if o.ID == id {
			return o, nil
		}
	}
	return nil, domorder.ErrOrderNotFound
}

func TestHistory_FiltersByUser(t *testing.T) {
	repo := &mockRepository{orders: []*domorder.Order{
		{ID: "o1", UserID: "uid-1", TotalPrice: 40, CreatedAt: time.Now()},
		{ID: "o2", UserID: "uid-2", TotalPrice: 10, CreatedAt: time.Now()},
	}}
	svc := NewService(repo)

	orders, err := svc.History(context.Background(), "uid-1")
	require.NoError(t, err)
	require.Len(t, orders, 1)
	require.Equal(t, "o1", orders[0].ID)
}

func TestGet_NotFound(t *testing.T) {
	svc := NewService(&mockRepository{})

	_, err := svc.Get(context.Background(), "missing")
	require.ErrorIs(t, err, domorder.ErrOrderNotFound)
}
