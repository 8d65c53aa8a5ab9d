package port

import (
	"context"

	"github.com/nikolayk812/possale/internal/domain"
)

// TransferChannel is a single checkout slot per owner.
// Put overwrites any unconsumed snapshot. Get on an empty slot returns domain.ErrNoPendingOrder.
// Clear reports whether a snapshot was removed; it must be atomic so that only one of
// concurrent callers observes true.
type TransferChannel interface {
	Put(ctx context.Context, ownerID string, snapshot domain.CheckoutSnapshot) error
	Get(ctx context.Context, ownerID string) (domain.CheckoutSnapshot, error)
	Clear(ctx context.Context, ownerID string) (bool, error)
}
