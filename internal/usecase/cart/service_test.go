package cart

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	domcart "example.com/storefront/internal/domain/cart"
	"example.com/storefront/internal/infra/cartstore"
)

func newTestStore(t *testing.T) (*Store, *cartstore.MemoryStorage) {
	t.Helper()
	storage := cartstore.NewMemoryStorage()
	return NewStore(context.Background(), storage), storage
}

func item(id int64, title string, price float64) domcart.LineItem {
	return domcart.LineItem{ID: id, Title: title, Price: price, Image: "img"}
}

func TestAddItem_FirstInsertPinsQuantityToOne(t *testing.T) {
	s, _ := newTestStore(t)

	// The caller-supplied quantity is ignored on first insert.
	in := item(1, "Shorts", 20)
	in.Quantity = 5
	require.NoError(t, s.AddItem(context.Background(), in))

	items := s.Items()
	require.Len(t, items, 1)
	require.Equal(t, int64(1), items[0].Quantity)
}

func TestAddItem_RepeatedAddIncrementsByOne(t *testing.T) {
	s, _ := newTestStore(t)

	for i := 0; i < 3; i++ {
		require.NoError(t, s.AddItem(context.Background(), item(1, "Shorts", 20)))
	}
	require.NoError(t, s.AddItem(context.Background(), item(2, "Hat", 10)))

	items := s.Items()
	require.Len(t, items, 2)
	require.Equal(t, int64(1), items[0].ID)
	require.Equal(t, int64(3), items[0].Quantity)
	require.Equal(t, int64(2), items[1].ID)
	require.Equal(t, int64(1), items[1].Quantity)
}

func TestAddItem_DistinctIDsOneLineEach(t *testing.T) {
	s, _ := newTestStore(t)

	ids := []int64{3, 1, 7, 2}
	for _, id := range ids {
		require.NoError(t, s.AddItem(context.Background(), item(id, "p", 1)))
	}

	items := s.Items()
	require.Len(t, items, len(ids))
	for i, id := range ids {
		require.Equal(t, id, items[i].ID, "insertion order preserved")
	}
}

func TestAddItem_InvalidInput(t *testing.T) {
	s, _ := newTestStore(t)

	tests := []struct {
		name string
		in   domcart.LineItem
	}{
		{name: "missing id", in: domcart.LineItem{Title: "x", Price: 1}},
		{name: "negative price", in: domcart.LineItem{ID: 1, Title: "x", Price: -0.01}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := s.AddItem(context.Background(), tt.in)
			require.ErrorIs(t, err, domcart.ErrInvalidItem)
			require.Empty(t, s.Items())
		})
	}
}

func TestRemoveItem_AbsentIDIsNoOp(t *testing.T) {
	s, _ := newTestStore(t)
	require.NoError(t, s.AddItem(context.Background(), item(1, "Shorts", 20)))

	before := s.Items()
	require.NoError(t, s.RemoveItem(context.Background(), 999))
	require.Equal(t, before, s.Items())
}

func TestRemoveItem_RemovesMatchingID(t *testing.T) {
	s, _ := newTestStore(t)
	require.NoError(t, s.AddItem(context.Background(), item(1, "Shorts", 20)))
	require.NoError(t, s.AddItem(context.Background(), item(2, "Hat", 10)))

	require.NoError(t, s.RemoveItem(context.Background(), 1))

	items := s.Items()
	require.Len(t, items, 1)
	require.Equal(t, int64(2), items[0].ID)
}

func TestUpdateItemQuantity(t *testing.T) {
	s, _ := newTestStore(t)
	require.NoError(t, s.AddItem(context.Background(), item(1, "Shorts", 20)))

	require.NoError(t, s.UpdateItemQuantity(context.Background(), 1, 4))
	require.Equal(t, int64(4), s.Items()[0].Quantity)

	// Zero is allowed; the decrement path may park an item at 0.
	require.NoError(t, s.UpdateItemQuantity(context.Background(), 1, 0))
	require.Equal(t, int64(0), s.Items()[0].Quantity)

	// Unknown id is a no-op.
	require.NoError(t, s.UpdateItemQuantity(context.Background(), 42, 9))
	require.Len(t, s.Items(), 1)
}

func TestUpdateItemQuantity_RejectsNegative(t *testing.T) {
	s, _ := newTestStore(t)
	require.NoError(t, s.AddItem(context.Background(), item(1, "Shorts", 20)))

	err := s.UpdateItemQuantity(context.Background(), 1, -1)
	require.ErrorIs(t, err, domcart.ErrInvalidQuantity)
	require.Equal(t, int64(1), s.Items()[0].Quantity)
}

func TestCalculateTotals(t *testing.T) {
	s, _ := newTestStore(t)
	require.Zero(t, s.CalculateTotal())
	require.Zero(t, s.CalculateTotalItemCount())

	require.NoError(t, s.AddItem(context.Background(), item(1, "Shorts", 20)))
	require.NoError(t, s.AddItem(context.Background(), item(1, "Shorts", 20)))

	require.Equal(t, 40.0, s.CalculateTotal())
	require.Equal(t, int64(2), s.CalculateTotalItemCount())

	require.NoError(t, s.AddItem(context.Background(), item(2, "Hat", 9.5)))
	require.Equal(t, 49.5, s.CalculateTotal())
	require.Equal(t, int64(3), s.CalculateTotalItemCount())
}

func TestClearCart_DeletesDurableRecord(t *testing.T) {
	s, storage := newTestStore(t)
	require.NoError(t, s.AddItem(context.Background(), item(1, "Shorts", 20)))
	require.True(t, storage.Exists())

	require.NoError(t, s.ClearCart(context.Background()))

	// The record is removed entirely, not stored as an empty list.
	require.False(t, storage.Exists())

	fresh := NewStore(context.Background(), storage)
	require.Empty(t, fresh.Items())
}

func TestPersistenceRoundTrip(t *testing.T) {
	storage := cartstore.NewMemoryStorage()
	s := NewStore(context.Background(), storage)

	require.NoError(t, s.AddItem(context.Background(), item(2, "Hat", 10)))
	require.NoError(t, s.AddItem(context.Background(), item(1, "Shorts", 20)))
	require.NoError(t, s.AddItem(context.Background(), item(1, "Shorts", 20)))
	require.NoError(t, s.UpdateItemQuantity(context.Background(), 2, 7))

	reloaded := NewStore(context.Background(), storage)
	require.Equal(t, s.Items(), reloaded.Items())
}

type corruptStorage struct {
	cartstore.Storage
}

func (corruptStorage) Load(ctx context.Context) ([]domcart.LineItem, error) {
	return nil, errors.New("unexpected end of JSON input")
}

func TestNewStore_UnparsableRecordStartsEmpty(t *testing.T) {
	s := NewStore(context.Background(), corruptStorage{cartstore.NewMemoryStorage()})

	require.Empty(t, s.Items())

	// The cart stays usable after the silent reset.
	require.NoError(t, s.AddItem(context.Background(), item(1, "Shorts", 20)))
	require.Len(t, s.Items(), 1)
}
