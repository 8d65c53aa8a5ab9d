package cache

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/nikolayk812/possale/internal/domain"
	"github.com/nikolayk812/possale/internal/port"
	"github.com/nikolayk812/possale/internal/transfer"
	"github.com/redis/go-redis/v9"
)

const (
	keyPrefix      = "checkoutCart:"
	fieldPayload   = "payload"
	fieldCreatedAt = "created_at"
)

// RedisTransfer keeps one hash per owner. A positive ttl lets Redis expire abandoned slots.
type RedisTransfer struct {
	rdb   *redis.Client
	codec *transfer.Codec
	ttl   time.Duration
}

func NewRedisTransfer(rdb *redis.Client, codec *transfer.Codec, ttl time.Duration) *RedisTransfer {
	return &RedisTransfer{rdb: rdb, codec: codec, ttl: ttl}
}

func (r *RedisTransfer) Put(ctx context.Context, ownerID string, snapshot domain.CheckoutSnapshot) error {
	if ownerID == "" {
		return fmt.Errorf("ownerID is empty")
	}

	payload, err := r.codec.Encode(snapshot.Cart)
	if err != nil {
		return fmt.Errorf("codec.Encode: %w", err)
	}

	key := keyPrefix + ownerID
	_, err = r.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Del(ctx, key)
		pipe.HSet(ctx, key,
			fieldPayload, payload,
			fieldCreatedAt, strconv.FormatInt(snapshot.CreatedAt.UnixNano(), 10),
		)
		if r.ttl > 0 {
			pipe.Expire(ctx, key, r.ttl)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("rdb.TxPipelined: %w", err)
	}

	return nil
}

func (r *RedisTransfer) Get(ctx context.Context, ownerID string) (domain.CheckoutSnapshot, error) {
	if ownerID == "" {
		return domain.CheckoutSnapshot{}, fmt.Errorf("ownerID is empty")
	}

	fields, err := r.rdb.HGetAll(ctx, keyPrefix+ownerID).Result()
	if err != nil {
		return domain.CheckoutSnapshot{}, fmt.Errorf("rdb.HGetAll: %w", err)
	}

	payload, ok := fields[fieldPayload]
	if !ok {
		return domain.CheckoutSnapshot{}, domain.ErrNoPendingOrder
	}

	nanos, err := strconv.ParseInt(fields[fieldCreatedAt], 10, 64)
	if err != nil {
		return domain.CheckoutSnapshot{}, fmt.Errorf("%w: created_at[%s]: %w", domain.ErrMalformedSnapshot, fields[fieldCreatedAt], err)
	}

	cart, err := r.codec.Decode(ownerID, []byte(payload))
	if err != nil {
		return domain.CheckoutSnapshot{}, fmt.Errorf("codec.Decode: %w", err)
	}

	return domain.CheckoutSnapshot{
		Cart:      cart,
		CreatedAt: time.Unix(0, nanos).UTC(),
	}, nil
}

func (r *RedisTransfer) Clear(ctx context.Context, ownerID string) (bool, error) {
	if ownerID == "" {
		return false, fmt.Errorf("ownerID is empty")
	}

	n, err := r.rdb.Del(ctx, keyPrefix+ownerID).Result()
	if err != nil {
		return false, fmt.Errorf("rdb.Del: %w", err)
	}

	return n > 0, nil
}

var _ port.TransferChannel = (*RedisTransfer)(nil)
