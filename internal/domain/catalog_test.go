package domain_test

import (
	"testing"

	"github.com/nikolayk812/possale/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/currency"
)

func TestNewCatalogItem(t *testing.T) {
	uzs := currency.MustParseISO("UZS")

	tests := []struct {
		name      string
		id        int64
		itemName  string
		price     decimal.Decimal
		stock     int
		wantError string
	}{
		{
			name:     "valid item: ok",
			id:       1,
			itemName: "Non",
			price:    decimal.NewFromInt(2000),
			stock:    30,
		},
		{
			name:     "zero price and stock: ok",
			id:       2,
			itemName: "Sample",
			price:    decimal.Zero,
		},
		{
			name:      "zero id: error",
			itemName:  "Non",
			price:     decimal.NewFromInt(2000),
			wantError: "invalid catalog item: id[0] must be positive",
		},
		{
			name:      "blank name: error",
			id:        3,
			itemName:  "   ",
			price:     decimal.NewFromInt(2000),
			wantError: "invalid catalog item: name is empty",
		},
		{
			name:      "negative price: error",
			id:        4,
			itemName:  "Non",
			price:     decimal.NewFromInt(-1),
			wantError: "invalid catalog item: unit price[-1 UZS] is negative",
		},
		{
			name:      "negative stock: error",
			id:        5,
			itemName:  "Non",
			price:     decimal.NewFromInt(1),
			stock:     -1,
			wantError: "invalid catalog item: stock[-1] is negative",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			item, err := domain.NewCatalogItem(tt.id, tt.itemName, domain.NewMoney(tt.price, uzs), "Oziq-ovqat", tt.stock, "dona")
			if tt.wantError != "" {
				require.EqualError(t, err, tt.wantError)
				require.ErrorIs(t, err, domain.ErrInvalidCatalogItem)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.id, item.ID)
		})
	}
}

func TestCatalogItem_Matches(t *testing.T) {
	item := domain.CatalogItem{ID: 1, Name: "Coca Cola 1.5L", Category: "Ichimliklar"}

	assert.True(t, item.Matches(""))
	assert.True(t, item.Matches("cola"))
	assert.True(t, item.Matches("ICHIM"))
	assert.False(t, item.Matches("non"))
}
