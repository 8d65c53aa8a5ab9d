package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nikolayk812/possale/internal/db"
	"github.com/nikolayk812/possale/internal/domain"
	"github.com/nikolayk812/possale/internal/port"
	"github.com/nikolayk812/possale/internal/transfer"
)

type transferRepository struct {
	q     *db.Queries
	codec *transfer.Codec
}

func NewTransfer(pool *pgxpool.Pool, codec *transfer.Codec) port.TransferChannel {
	return &transferRepository{
		q:     db.New(pool),
		codec: codec,
	}
}

func (r *transferRepository) Put(ctx context.Context, ownerID string, snapshot domain.CheckoutSnapshot) error {
	if ownerID == "" {
		return fmt.Errorf("ownerID is empty")
	}

	payload, err := r.codec.Encode(snapshot.Cart)
	if err != nil {
		return fmt.Errorf("codec.Encode: %w", err)
	}

	err = r.q.PutTransfer(ctx, db.PutTransferParams{
		OwnerID:   ownerID,
		Payload:   payload,
		CreatedAt: snapshot.CreatedAt,
	})
	if err != nil {
		return fmt.Errorf("q.PutTransfer: %w", err)
	}

	return nil
}

func (r *transferRepository) Get(ctx context.Context, ownerID string) (domain.CheckoutSnapshot, error) {
	if ownerID == "" {
		return domain.CheckoutSnapshot{}, fmt.Errorf("ownerID is empty")
	}

	row, err := r.q.GetTransfer(ctx, ownerID)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.CheckoutSnapshot{}, domain.ErrNoPendingOrder
	}
	if err != nil {
		return domain.CheckoutSnapshot{}, fmt.Errorf("q.GetTransfer: %w", err)
	}

	cart, err := r.codec.Decode(ownerID, row.Payload)
	if err != nil {
		return domain.CheckoutSnapshot{}, fmt.Errorf("codec.Decode: %w", err)
	}

	return domain.CheckoutSnapshot{
		Cart:      cart,
		CreatedAt: row.CreatedAt,
	}, nil
}

func (r *transferRepository) Clear(ctx context.Context, ownerID string) (bool, error) {
	if ownerID == "" {
		return false, fmt.Errorf("ownerID is empty")
	}

	rowsAffected, err := r.q.ClearTransfer(ctx, ownerID)
	if err != nil {
		return false, fmt.Errorf("q.ClearTransfer: %w", err)
	}

	return rowsAffected > 0, nil
}
