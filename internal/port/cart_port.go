package port

import (
	"context"

	"github.com/nikolayk812/possale/internal/domain"
)

// CartRepository stores the in-progress sales cart of each session.
// GetCart returns an empty cart when the owner has none.
type CartRepository interface {
	GetCart(ctx context.Context, ownerID string) (domain.Cart, error)
	SaveCart(ctx context.Context, cart domain.Cart) error
	DeleteCart(ctx context.Context, ownerID string) (bool, error)
}
