package cache_test

import (
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/nikolayk812/possale/internal/cache"
	"github.com/nikolayk812/possale/internal/domain"
	"github.com/nikolayk812/possale/internal/transfer"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	tcredis "github.com/testcontainers/testcontainers-go/modules/redis"
	"golang.org/x/text/currency"
)

type redisTransferSuite struct {
	suite.Suite

	rdb     *redis.Client
	channel *cache.RedisTransfer
}

func TestRedisTransferSuite(t *testing.T) {
	suite.Run(t, new(redisTransferSuite))
}

func (suite *redisTransferSuite) SetupSuite() {
	ctx := suite.T().Context()

	container, err := tcredis.Run(ctx, "redis:7.4-alpine")
	testcontainers.CleanupContainer(suite.T(), container)
	suite.Require().NoError(err)

	connStr, err := container.ConnectionString(ctx)
	suite.Require().NoError(err)

	opts, err := redis.ParseURL(connStr)
	suite.Require().NoError(err)

	suite.rdb = redis.NewClient(opts)
	suite.channel = cache.NewRedisTransfer(suite.rdb, transfer.NewCodec(currency.MustParseISO("UZS")), time.Minute)
}

func (suite *redisTransferSuite) TearDownSuite() {
	if suite.rdb != nil {
		suite.NoError(suite.rdb.Close())
	}
}

func (suite *redisTransferSuite) TestPutGetClear() {
	t := suite.T()
	ctx := t.Context()
	ownerID := gofakeit.UUID()

	_, err := suite.channel.Get(ctx, ownerID)
	require.ErrorIs(t, err, domain.ErrNoPendingOrder)

	snapshot := domain.CheckoutSnapshot{
		Cart:      testCart(t, ownerID),
		CreatedAt: time.Now().UTC(),
	}
	require.NoError(t, suite.channel.Put(ctx, ownerID, snapshot))

	ttl, err := suite.rdb.TTL(ctx, "checkoutCart:"+ownerID).Result()
	require.NoError(t, err)
	assert.Positive(t, ttl)

	got, err := suite.channel.Get(ctx, ownerID)
	require.NoError(t, err)
	assert.True(t, snapshot.CreatedAt.Equal(got.CreatedAt))
	assert.Equal(t, snapshot.Cart.TotalItemCount(), got.Cart.TotalItemCount())
	assert.True(t, snapshot.Cart.TotalPrice().Amount.Equal(got.Cart.TotalPrice().Amount))

	cleared, err := suite.channel.Clear(ctx, ownerID)
	require.NoError(t, err)
	assert.True(t, cleared)

	cleared, err = suite.channel.Clear(ctx, ownerID)
	require.NoError(t, err)
	assert.False(t, cleared)
}

func (suite *redisTransferSuite) TestPut_Overwrites() {
	t := suite.T()
	ctx := t.Context()
	ownerID := gofakeit.UUID()

	first := testCart(t, ownerID)
	require.NoError(t, suite.channel.Put(ctx, ownerID, domain.CheckoutSnapshot{Cart: first, CreatedAt: time.Now()}))

	second := domain.NewCart(ownerID, currency.MustParseISO("UZS"))
	require.NoError(t, second.AddItem(domain.CatalogItem{
		ID:            6,
		Name:          "Choy",
		UnitPrice:     domain.NewMoney(decimal.NewFromInt(25000), currency.MustParseISO("UZS")),
		StockQuantity: 15,
	}, 1))
	require.NoError(t, suite.channel.Put(ctx, ownerID, domain.CheckoutSnapshot{Cart: second, CreatedAt: time.Now()}))

	got, err := suite.channel.Get(ctx, ownerID)
	require.NoError(t, err)
	require.Equal(t, 1, got.Cart.Len())
	assert.Equal(t, int64(6), got.Cart.Lines()[0].Item.ID)
}

func testCart(t *testing.T, ownerID string) domain.Cart {
	t.Helper()

	uzs := currency.MustParseISO("UZS")
	cart := domain.NewCart(ownerID, uzs)

	for id := int64(1); id <= 3; id++ {
		require.NoError(t, cart.AddItem(domain.CatalogItem{
			ID:            id,
			Name:          gofakeit.ProductName(),
			UnitPrice:     domain.NewMoney(decimal.NewFromInt(int64(gofakeit.IntRange(1000, 30000))), uzs),
			Category:      gofakeit.ProductCategory(),
			StockQuantity: 20,
			Unit:          "dona",
		}, gofakeit.IntRange(1, 20)))
	}

	return cart
}
