package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/nikolayk812/possale/internal/domain"
	"github.com/nikolayk812/possale/internal/port"
	"golang.org/x/text/currency"
)

type cartRepository struct {
	mu       sync.Mutex
	carts    map[string]domain.Cart
	currency currency.Unit
}

func NewCart(cur currency.Unit) port.CartRepository {
	return &cartRepository{
		carts:    make(map[string]domain.Cart),
		currency: cur,
	}
}

func (r *cartRepository) GetCart(_ context.Context, ownerID string) (domain.Cart, error) {
	if ownerID == "" {
		return domain.Cart{}, fmt.Errorf("ownerID is empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	cart, ok := r.carts[ownerID]
	if !ok {
		return domain.NewCart(ownerID, r.currency), nil
	}
	return cart.Clone(), nil
}

func (r *cartRepository) SaveCart(_ context.Context, cart domain.Cart) error {
	if cart.OwnerID == "" {
		return fmt.Errorf("ownerID is empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.carts[cart.OwnerID] = cart.Clone()
	return nil
}

func (r *cartRepository) DeleteCart(_ context.Context, ownerID string) (bool, error) {
	if ownerID == "" {
		return false, fmt.Errorf("ownerID is empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	cart, ok := r.carts[ownerID]
	delete(r.carts, ownerID)
	return ok && !cart.IsEmpty(), nil
}
