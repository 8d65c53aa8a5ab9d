package sales

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/nikolayk812/possale/internal/domain"
	"github.com/nikolayk812/possale/internal/port"
)

// Service runs the sales step: it owns each session's cart until the cart is handed to checkout.
type Service struct {
	catalog  port.CatalogRepository
	carts    port.CartRepository
	transfer port.TransferChannel
	log      *slog.Logger
	now      func() time.Time

	// serializes load-modify-save cycles
	mu sync.Mutex
}

type Option func(*Service)

func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

func NewService(catalog port.CatalogRepository, carts port.CartRepository, transfer port.TransferChannel, log *slog.Logger, opts ...Option) *Service {
	s := &Service{
		catalog:  catalog,
		carts:    carts,
		transfer: transfer,
		log:      log,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// StartSale discards the session's previous cart and any checkout snapshot left behind by an
// abandoned checkout.
func (s *Service) StartSale(ctx context.Context, sessionID string) (domain.Cart, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.carts.DeleteCart(ctx, sessionID); err != nil {
		return domain.Cart{}, fmt.Errorf("carts.DeleteCart: %w", err)
	}

	cleared, err := s.transfer.Clear(ctx, sessionID)
	if err != nil {
		return domain.Cart{}, fmt.Errorf("transfer.Clear: %w", err)
	}
	if cleared {
		s.log.InfoContext(ctx, "discarded stale checkout snapshot", "session_id", sessionID)
	}

	cart, err := s.carts.GetCart(ctx, sessionID)
	if err != nil {
		return domain.Cart{}, fmt.Errorf("carts.GetCart: %w", err)
	}

	return cart, nil
}

func (s *Service) Cart(ctx context.Context, sessionID string) (domain.Cart, error) {
	cart, err := s.carts.GetCart(ctx, sessionID)
	if err != nil {
		return domain.Cart{}, fmt.Errorf("carts.GetCart: %w", err)
	}
	return cart, nil
}

// AddItem adds quantity units of a catalog item. The quantity already in the cart counts
// against stock.
func (s *Service) AddItem(ctx context.Context, sessionID string, itemID int64, quantity int) (domain.Cart, error) {
	item, err := s.catalog.Get(ctx, itemID)
	if err != nil {
		return domain.Cart{}, fmt.Errorf("catalog.Get: %w", err)
	}

	return s.update(ctx, sessionID, func(cart *domain.Cart) error {
		if line, ok := cart.Line(itemID); ok && quantity > 0 && line.Quantity+quantity > item.StockQuantity {
			return fmt.Errorf("%w: %d in cart + %d exceeds stock %d",
				domain.ErrInvalidQuantity, line.Quantity, quantity, item.StockQuantity)
		}

		if err := cart.AddItem(item, quantity); err != nil {
			return fmt.Errorf("cart.AddItem: %w", err)
		}
		return nil
	})
}

// ChangeQuantity applies delta to a line. Increments beyond the stock recorded on the line are
// rejected; a line that drops to zero is removed.
func (s *Service) ChangeQuantity(ctx context.Context, sessionID string, itemID int64, delta int) (domain.Cart, error) {
	return s.update(ctx, sessionID, func(cart *domain.Cart) error {
		line, ok := cart.Line(itemID)
		if ok && delta > 0 && line.Quantity+delta > line.Item.StockQuantity {
			return fmt.Errorf("%w: %d in cart + %d exceeds stock %d",
				domain.ErrInvalidQuantity, line.Quantity, delta, line.Item.StockQuantity)
		}

		cart.ChangeQuantity(itemID, delta)
		return nil
	})
}

func (s *Service) RemoveItem(ctx context.Context, sessionID string, itemID int64) (domain.Cart, error) {
	return s.update(ctx, sessionID, func(cart *domain.Cart) error {
		cart.RemoveItem(itemID)
		return nil
	})
}

// ProceedToCheckout writes the cart into the transfer channel, replacing any earlier snapshot.
// The sales cart is kept so the cashier can come back and edit it.
func (s *Service) ProceedToCheckout(ctx context.Context, sessionID string) (domain.CheckoutSnapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cart, err := s.carts.GetCart(ctx, sessionID)
	if err != nil {
		return domain.CheckoutSnapshot{}, fmt.Errorf("carts.GetCart: %w", err)
	}

	if cart.IsEmpty() {
		return domain.CheckoutSnapshot{}, domain.ErrEmptyCart
	}

	snapshot := domain.CheckoutSnapshot{
		Cart:      cart.Clone(),
		CreatedAt: s.now().UTC(),
	}

	if err := s.transfer.Put(ctx, sessionID, snapshot); err != nil {
		return domain.CheckoutSnapshot{}, fmt.Errorf("transfer.Put: %w", err)
	}

	s.log.InfoContext(ctx, "cart handed to checkout",
		"session_id", sessionID,
		"lines", cart.Len(),
		"items", cart.TotalItemCount(),
		"total", cart.TotalPrice().String(),
	)

	return snapshot, nil
}

func (s *Service) update(ctx context.Context, sessionID string, fn func(cart *domain.Cart) error) (domain.Cart, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cart, err := s.carts.GetCart(ctx, sessionID)
	if err != nil {
		return domain.Cart{}, fmt.Errorf("carts.GetCart: %w", err)
	}

	if err := fn(&cart); err != nil {
		return domain.Cart{}, err
	}

	if err := s.carts.SaveCart(ctx, cart); err != nil {
		return domain.Cart{}, fmt.Errorf("carts.SaveCart: %w", err)
	}

	return cart, nil
}
