package checkout

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/nikolayk812/possale/internal/domain"
	"github.com/nikolayk812/possale/internal/port"
	"github.com/shopspring/decimal"
)

// Service runs the checkout step over the snapshot handed over by the sales step.
type Service struct {
	transfer port.TransferChannel
	carts    port.CartRepository
	log      *slog.Logger

	maxAge  time.Duration
	delay   time.Duration
	now     func() time.Time
	newID   func() uuid.UUID
	metrics *Metrics
}

type Option func(*Service)

// WithMaxSnapshotAge makes snapshots older than d stale. Zero keeps snapshots valid forever.
func WithMaxSnapshotAge(d time.Duration) Option {
	return func(s *Service) {
		s.maxAge = d
	}
}

// WithSubmissionDelay holds completion for d before committing, as the dashboard does to show
// its loading state.
func WithSubmissionDelay(d time.Duration) Option {
	return func(s *Service) {
		s.delay = d
	}
}

func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

func WithIDGenerator(newID func() uuid.UUID) Option {
	return func(s *Service) {
		s.newID = newID
	}
}

func WithMetrics(m *Metrics) Option {
	return func(s *Service) {
		s.metrics = m
	}
}

func NewService(transfer port.TransferChannel, carts port.CartRepository, log *slog.Logger, opts ...Option) *Service {
	s := &Service{
		transfer: transfer,
		carts:    carts,
		log:      log,
		now:      time.Now,
		newID:    uuid.New,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Open returns the cart pending checkout for the session. A missing, stale or unreadable
// snapshot yields domain.ErrNoPendingOrder and the caller sends the user back to sales.
func (s *Service) Open(ctx context.Context, sessionID string) (domain.Cart, error) {
	snapshot, err := s.transfer.Get(ctx, sessionID)
	switch {
	case errors.Is(err, domain.ErrNoPendingOrder):
		return domain.Cart{}, domain.ErrNoPendingOrder
	case errors.Is(err, domain.ErrMalformedSnapshot):
		s.log.WarnContext(ctx, "dropping malformed checkout snapshot", "session_id", sessionID, "error", err)
		s.discard(ctx, sessionID)
		return domain.Cart{}, domain.ErrNoPendingOrder
	case err != nil:
		return domain.Cart{}, fmt.Errorf("transfer.Get: %w", err)
	}

	if snapshot.Stale(s.now(), s.maxAge) {
		s.log.InfoContext(ctx, "dropping stale checkout snapshot",
			"session_id", sessionID,
			"created_at", snapshot.CreatedAt,
			"max_age", s.maxAge,
		)
		s.discard(ctx, sessionID)
		return domain.Cart{}, domain.ErrNoPendingOrder
	}

	if snapshot.Cart.IsEmpty() {
		return domain.Cart{}, domain.ErrEmptyCart
	}

	return snapshot.Cart, nil
}

func (s *Service) Summary(ctx context.Context, sessionID string, discountPercent decimal.Decimal, method domain.PaymentMethod) (domain.Cart, domain.OrderSummary, error) {
	cart, err := s.Open(ctx, sessionID)
	if err != nil {
		return domain.Cart{}, domain.OrderSummary{}, err
	}

	summary, err := ComputeSummary(cart, discountPercent, method)
	if err != nil {
		return domain.Cart{}, domain.OrderSummary{}, err
	}

	return cart, summary, nil
}

// CompleteOrder commits the sale: it clears the session's transfer slot and sales cart.
// Only one call per handed-over cart succeeds; a repeated call gets domain.ErrNoPendingOrder.
func (s *Service) CompleteOrder(ctx context.Context, sessionID string, cart domain.Cart, summary domain.OrderSummary, customer domain.Customer) (domain.Receipt, error) {
	if cart.IsEmpty() {
		s.metrics.completionRejected("empty_cart")
		return domain.Receipt{}, domain.ErrEmptyCart
	}

	if err := s.wait(ctx); err != nil {
		return domain.Receipt{}, err
	}

	cleared, err := s.transfer.Clear(ctx, sessionID)
	if err != nil {
		return domain.Receipt{}, fmt.Errorf("transfer.Clear: %w", err)
	}
	if !cleared {
		s.metrics.completionRejected("no_pending_order")
		return domain.Receipt{}, domain.ErrNoPendingOrder
	}

	// the sale is committed once the slot is gone; a leftover sales cart is only cosmetic
	if _, err := s.carts.DeleteCart(ctx, sessionID); err != nil {
		s.log.WarnContext(ctx, "failed to clear sales cart", "session_id", sessionID, "error", err)
	}

	receipt := domain.Receipt{
		OrderID:     s.newID(),
		Lines:       cart.Lines(),
		Summary:     summary,
		Customer:    customer,
		Status:      domain.OrderCompleted,
		CompletedAt: s.now().UTC(),
	}

	s.metrics.orderCompleted(summary)
	s.log.InfoContext(ctx, "order completed",
		"session_id", sessionID,
		"order_id", receipt.OrderID,
		"items", summary.TotalItemCount,
		"subtotal", summary.Subtotal.String(),
		"discount_percent", summary.DiscountPercent.String(),
		"final_total", summary.FinalTotal.String(),
		"payment_method", summary.PaymentMethod,
	)

	return receipt, nil
}

// Complete opens the pending cart, prices it and commits it in one step.
func (s *Service) Complete(ctx context.Context, sessionID string, discountPercent decimal.Decimal, method domain.PaymentMethod, customer domain.Customer) (domain.Receipt, error) {
	cart, summary, err := s.Summary(ctx, sessionID, discountPercent, method)
	if err != nil {
		return domain.Receipt{}, err
	}

	return s.CompleteOrder(ctx, sessionID, cart, summary, customer)
}

// Cancel abandons the pending checkout. Without one it returns domain.ErrNoPendingOrder.
func (s *Service) Cancel(ctx context.Context, sessionID string) (domain.OrderStatus, error) {
	cleared, err := s.transfer.Clear(ctx, sessionID)
	if err != nil {
		return domain.OrderBuilding, fmt.Errorf("transfer.Clear: %w", err)
	}
	if !cleared {
		return domain.OrderBuilding, domain.ErrNoPendingOrder
	}

	s.metrics.orderAbandoned()
	s.log.InfoContext(ctx, "checkout abandoned", "session_id", sessionID)

	return domain.OrderAbandoned, nil
}

func (s *Service) discard(ctx context.Context, sessionID string) {
	if _, err := s.transfer.Clear(ctx, sessionID); err != nil {
		s.log.WarnContext(ctx, "failed to clear checkout snapshot", "session_id", sessionID, "error", err)
	}
}

func (s *Service) wait(ctx context.Context) error {
	if s.delay <= 0 {
		return nil
	}

	timer := time.NewTimer(s.delay)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
