package memory

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/nikolayk812/possale/internal/domain"
	"github.com/nikolayk812/possale/internal/port"
	"github.com/nikolayk812/possale/internal/transfer"
)

type slot struct {
	payload   []byte
	createdAt time.Time
}

// transferChannel keeps serialized snapshots so that every read goes through the codec,
// the same as the external backends.
type transferChannel struct {
	mu    sync.Mutex
	slots map[string]slot
	codec *transfer.Codec
}

func NewTransfer(codec *transfer.Codec) port.TransferChannel {
	return &transferChannel{
		slots: make(map[string]slot),
		codec: codec,
	}
}

func (c *transferChannel) Put(_ context.Context, ownerID string, snapshot domain.CheckoutSnapshot) error {
	if ownerID == "" {
		return fmt.Errorf("ownerID is empty")
	}

	payload, err := c.codec.Encode(snapshot.Cart)
	if err != nil {
		return fmt.Errorf("codec.Encode: %w", err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.slots[ownerID] = slot{payload: payload, createdAt: snapshot.CreatedAt}
	return nil
}

func (c *transferChannel) Get(_ context.Context, ownerID string) (domain.CheckoutSnapshot, error) {
	if ownerID == "" {
		return domain.CheckoutSnapshot{}, fmt.Errorf("ownerID is empty")
	}

	c.mu.Lock()
	s, ok := c.slots[ownerID]
	c.mu.Unlock()

	if !ok {
		return domain.CheckoutSnapshot{}, domain.ErrNoPendingOrder
	}

	cart, err := c.codec.Decode(ownerID, s.payload)
	if err != nil {
		return domain.CheckoutSnapshot{}, fmt.Errorf("codec.Decode: %w", err)
	}

	return domain.CheckoutSnapshot{Cart: cart, CreatedAt: s.createdAt}, nil
}

func (c *transferChannel) Clear(_ context.Context, ownerID string) (bool, error) {
	if ownerID == "" {
		return false, fmt.Errorf("ownerID is empty")
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	_, ok := c.slots[ownerID]
	delete(c.slots, ownerID)
	return ok, nil
}
