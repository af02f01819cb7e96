package checkout

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	domcart "example.com/storefront/internal/domain/cart"
	domorder "example.com/storefront/internal/domain/order"
	domuser "example.com/storefront/internal/domain/user"
)

// ErrNotSignedIn is surfaced verbatim to the user when checkout is attempted
// without a signed-in identity.
var ErrNotSignedIn = errors.New("please login to place an order")

// Phase is the checkout display state. A successful order shows committed
// until the revert timer returns the view to idle; a failed order write
// parks the coordinator in failed with the pre-clear snapshot retained.
type Phase string

const (
	PhaseIdle      Phase = "idle"
	PhasePending   Phase = "pending"
	PhaseCommitted Phase = "committed"
	PhaseFailed    Phase = "failed"
)

type CartStore interface {
	Items() []domcart.LineItem
	CalculateTotal() float64
	ClearCart(ctx context.Context) error
	Replace(ctx context.Context, items []domcart.LineItem) error
}

type OrderRepository interface {
	Insert(ctx context.Context, o *domorder.Order) error
}

// Coordinator converts the cart into an immutable order record. The clear
// happens before the write is confirmed, so the user-visible state advances
// optimistically; the snapshot kept on failure lets a caller offer
// restoration instead of silently losing the cart.
type Coordinator struct {
	cart        CartStore
	orders      OrderRepository
	revertAfter time.Duration

	mu       sync.Mutex
	phase    Phase
	snapshot []domcart.LineItem
	timer    *time.Timer
	closed   bool
}

func NewCoordinator(cart CartStore, orders OrderRepository, revertAfter time.Duration) *Coordinator {
	return &Coordinator{
		cart:        cart,
		orders:      orders,
		revertAfter: revertAfter,
		phase:       PhaseIdle,
	}
}

// PlaceOrder requires a non-empty cart and a signed-in identity. The order
// items are a projection of (id, title, price, image, quantity) only, and the
// total is computed from the cart before it is cleared.
func (c *Coordinator) PlaceOrder(ctx context.Context, identity *domuser.Identity) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	items := c.cart.Items()
	if len(items) == 0 {
		return domcart.ErrEmptyCart
	}
	if identity == nil {
		return ErrNotSignedIn
	}

	total := c.cart.CalculateTotal()

	c.snapshot = items
	c.setPhaseLocked(PhasePending)

	// Optimistic clear: the cart is emptied before the write is confirmed.
	if err := c.cart.ClearCart(ctx); err != nil {
		log.Printf("error clearing cart during checkout: %v", err)
	}

	o := &domorder.Order{
		ID:         uuid.NewString(),
		UserID:     identity.UID,
		Items:      items,
		TotalPrice: total,
	}

	if err := c.orders.Insert(ctx, o); err != nil {
		c.setPhaseLocked(PhaseFailed)
		return fmt.Errorf("placing order: %w", err)
	}

	c.setPhaseLocked(PhaseCommitted)
	c.timer = time.AfterFunc(c.revertAfter, c.revert)
	return nil
}

// Restore puts the retained snapshot back into the cart after a failed order
// write and returns the coordinator to idle. Outside the failed phase it is
// a no-op.
func (c *Coordinator) Restore(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.phase != PhaseFailed || len(c.snapshot) == 0 {
		return nil
	}

	if err := c.cart.Replace(ctx, c.snapshot); err != nil {
		return fmt.Errorf("restoring cart snapshot: %w", err)
	}
	c.snapshot = nil
	c.phase = PhaseIdle
	return nil
}

func (c *Coordinator) Phase() Phase {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.phase
}

// Snapshot returns a copy of the last pre-clear item sequence.
func (c *Coordinator) Snapshot() []domcart.LineItem {
	c.mu.Lock()
	defer c.mu.Unlock()

	items := make([]domcart.LineItem, len(c.snapshot))
	copy(items, c.snapshot)
	return items
}

// Close cancels the pending revert timer so no state is mutated after
// teardown.
func (c *Coordinator) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.closed = true
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
}

func (c *Coordinator) revert() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed || c.phase != PhaseCommitted {
		return
	}
	c.phase = PhaseIdle
	c.snapshot = nil
}

func (c *Coordinator) setPhaseLocked(p Phase) {
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
	c.phase = p
}
