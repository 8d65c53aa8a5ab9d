package transfer_test

import (
	"testing"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/go-cmp/cmp"
	"github.com/nikolayk812/possale/internal/domain"
	"github.com/nikolayk812/possale/internal/transfer"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/currency"
)

func TestCodec_RoundTrip(t *testing.T) {
	uzs := currency.MustParseISO("UZS")
	codec := transfer.NewCodec(uzs)

	cart := domain.NewCart(gofakeit.UUID(), uzs)
	for id := int64(1); id <= 4; id++ {
		item := domain.CatalogItem{
			ID:            id,
			Name:          gofakeit.ProductName(),
			UnitPrice:     domain.NewMoney(decimal.NewFromFloat(gofakeit.Price(1, 100000)).Round(2), uzs),
			Category:      gofakeit.ProductCategory(),
			StockQuantity: gofakeit.IntRange(10, 50),
			Unit:          "dona",
			Image:         gofakeit.URL(),
		}
		require.NoError(t, cart.AddItem(item, gofakeit.IntRange(1, 10)))
	}

	data, err := codec.Encode(cart)
	require.NoError(t, err)

	got, err := codec.Decode(cart.OwnerID, data)
	require.NoError(t, err)

	assertCartsEqual(t, cart, got)
}

func TestCodec_EncodeFormat(t *testing.T) {
	uzs := currency.MustParseISO("UZS")
	codec := transfer.NewCodec(uzs)

	cart := domain.NewCart("owner", uzs)
	require.NoError(t, cart.AddItem(domain.CatalogItem{
		ID:            1,
		Name:          "Coca Cola 1.5L",
		UnitPrice:     domain.NewMoney(decimal.NewFromInt(8000), uzs),
		Category:      "Ichimliklar",
		StockQuantity: 50,
		Unit:          "dona",
	}, 3))

	data, err := codec.Encode(cart)
	require.NoError(t, err)

	assert.JSONEq(t, `[{"id":1,"name":"Coca Cola 1.5L","price":8000,"currency":"UZS",
		"category":"Ichimliklar","stock":50,"unit":"dona","quantity":3}]`, string(data))
}

func TestCodec_Decode(t *testing.T) {
	uzs := currency.MustParseISO("UZS")
	codec := transfer.NewCodec(uzs)

	tests := []struct {
		name      string
		data      string
		wantCount int
		wantError bool
	}{
		{
			name:      "numeric price: ok",
			data:      `[{"id":2,"name":"Non","price":2000,"currency":"UZS","stock":30,"unit":"dona","quantity":2}]`,
			wantCount: 2,
		},
		{
			name:      "entries without currency: ok",
			data:      `[{"id":1,"name":"Coca Cola 1.5L","price":8000,"category":"Ichimliklar","stock":50,"unit":"dona","quantity":3}]`,
			wantCount: 3,
		},
		{
			name:      "string price: ok",
			data:      `[{"id":2,"name":"Non","price":"2000.50","currency":"UZS","stock":30,"unit":"dona","quantity":1}]`,
			wantCount: 1,
		},
		{
			name:      "non-numeric price: error",
			data:      `[{"id":2,"name":"Non","price":"abc","currency":"UZS","stock":30,"quantity":1}]`,
			wantError: true,
		},
		{
			name:      "missing price: error",
			data:      `[{"id":2,"name":"Non","currency":"UZS","stock":30,"quantity":1}]`,
			wantError: true,
		},
		{
			name: "empty array: ok",
			data: `[]`,
		},
		{
			name:      "not json: error",
			data:      `{{`,
			wantError: true,
		},
		{
			name:      "zero quantity: error",
			data:      `[{"id":2,"name":"Non","price":2000,"currency":"UZS","stock":30,"quantity":0}]`,
			wantError: true,
		},
		{
			name:      "missing name: error",
			data:      `[{"id":2,"price":2000,"currency":"UZS","stock":30,"quantity":1}]`,
			wantError: true,
		},
		{
			name:      "unknown currency: error",
			data:      `[{"id":2,"name":"Non","price":2000,"currency":"ZZZ","stock":30,"quantity":1}]`,
			wantError: true,
		},
		{
			name: "duplicate ids: error",
			data: `[{"id":2,"name":"Non","price":2000,"currency":"UZS","stock":30,"quantity":1},
				{"id":2,"name":"Non","price":2000,"currency":"UZS","stock":30,"quantity":1}]`,
			wantError: true,
		},
		{
			name:      "negative price: error",
			data:      `[{"id":2,"name":"Non","price":-5,"currency":"UZS","stock":30,"quantity":1}]`,
			wantError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cart, err := codec.Decode("owner", []byte(tt.data))
			if tt.wantError {
				require.ErrorIs(t, err, domain.ErrMalformedSnapshot)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantCount, cart.TotalItemCount())
			assert.Equal(t, "owner", cart.OwnerID)
		})
	}
}

func TestCodec_Decode_DefaultCurrency(t *testing.T) {
	uzs := currency.MustParseISO("UZS")
	codec := transfer.NewCodec(uzs)

	data := `[{"id":1,"name":"Coca Cola 1.5L","price":8000,"category":"Ichimliklar","stock":50,"unit":"dona","quantity":3},
		{"id":2,"name":"Non","price":2000,"category":"Oziq-ovqat","stock":30,"unit":"dona","quantity":1}]`

	cart, err := codec.Decode("owner", []byte(data))
	require.NoError(t, err)

	assert.Equal(t, "UZS", cart.Currency.String())
	assert.Equal(t, 4, cart.TotalItemCount())
	assert.True(t, decimal.NewFromInt(26000).Equal(cart.TotalPrice().Amount))

	for _, l := range cart.Lines() {
		assert.Equal(t, "UZS", l.Item.UnitPrice.Currency.String())
	}
}

func assertCartsEqual(t *testing.T, expected, actual domain.Cart) {
	t.Helper()

	opts := cmp.Options{
		cmp.Comparer(func(x, y currency.Unit) bool {
			return x.String() == y.String()
		}),
		cmp.Comparer(func(x, y decimal.Decimal) bool {
			return x.Equal(y)
		}),
	}

	assert.Equal(t, expected.OwnerID, actual.OwnerID)
	assert.Equal(t, expected.Currency.String(), actual.Currency.String())
	assert.Empty(t, cmp.Diff(expected.Lines(), actual.Lines(), opts))
}
