package domain_test

import (
	"testing"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/nikolayk812/possale/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/currency"
)

func TestCart_AddItem(t *testing.T) {
	cola := catalogItem(t, 1, 8000, 50)
	bread := catalogItem(t, 2, 2000, 30)

	tests := []struct {
		name      string
		setup     func(c *domain.Cart)
		item      domain.CatalogItem
		quantity  int
		wantLines []lineView
		wantError error
	}{
		{
			name:      "add new item: ok",
			item:      cola,
			quantity:  3,
			wantLines: []lineView{{id: 1, qty: 3}},
		},
		{
			name: "add same item twice: merged",
			setup: func(c *domain.Cart) {
				require.NoError(t, c.AddItem(cola, 2))
			},
			item:      cola,
			quantity:  5,
			wantLines: []lineView{{id: 1, qty: 7}},
		},
		{
			name: "add second item: appended in first-seen order",
			setup: func(c *domain.Cart) {
				require.NoError(t, c.AddItem(cola, 1))
			},
			item:      bread,
			quantity:  2,
			wantLines: []lineView{{id: 1, qty: 1}, {id: 2, qty: 2}},
		},
		{
			name:      "zero quantity: error",
			item:      cola,
			quantity:  0,
			wantError: domain.ErrInvalidQuantity,
		},
		{
			name:      "negative quantity: error",
			item:      cola,
			quantity:  -1,
			wantError: domain.ErrInvalidQuantity,
		},
		{
			name:      "quantity above stock: error",
			item:      bread,
			quantity:  31,
			wantError: domain.ErrInvalidQuantity,
		},
		{
			name: "rejected add keeps cart unchanged",
			setup: func(c *domain.Cart) {
				require.NoError(t, c.AddItem(bread, 4))
			},
			item:      cola,
			quantity:  51,
			wantLines: []lineView{{id: 2, qty: 4}},
			wantError: domain.ErrInvalidQuantity,
		},
		{
			name: "currency differs from cart: error",
			item: domain.CatalogItem{
				ID:            9,
				Name:          "Import",
				UnitPrice:     domain.NewMoney(decimal.NewFromInt(5), currency.USD),
				StockQuantity: 10,
			},
			quantity:  1,
			wantError: domain.ErrCurrencyMismatch,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cart := domain.NewCart(gofakeit.UUID(), currency.MustParseISO("UZS"))
			if tt.setup != nil {
				tt.setup(&cart)
			}

			err := cart.AddItem(tt.item, tt.quantity)
			if tt.wantError != nil {
				require.ErrorIs(t, err, tt.wantError)
			} else {
				require.NoError(t, err)
			}

			assert.Equal(t, tt.wantLines, view(cart))
		})
	}
}

func TestCart_ChangeQuantity(t *testing.T) {
	cola := catalogItem(t, 1, 8000, 50)

	tests := []struct {
		name      string
		itemID    int64
		delta     int
		wantLines []lineView
	}{
		{
			name:      "increment",
			itemID:    1,
			delta:     1,
			wantLines: []lineView{{id: 1, qty: 4}},
		},
		{
			name:      "decrement",
			itemID:    1,
			delta:     -2,
			wantLines: []lineView{{id: 1, qty: 1}},
		},
		{
			name:   "decrement to zero removes line",
			itemID: 1,
			delta:  -3,
		},
		{
			name:   "decrement below zero removes line",
			itemID: 1,
			delta:  -10,
		},
		{
			name:      "unknown item: no-op",
			itemID:    42,
			delta:     -1,
			wantLines: []lineView{{id: 1, qty: 3}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cart := domain.NewCart(gofakeit.UUID(), currency.MustParseISO("UZS"))
			require.NoError(t, cart.AddItem(cola, 3))

			cart.ChangeQuantity(tt.itemID, tt.delta)

			assert.Equal(t, tt.wantLines, view(cart))
		})
	}
}

func TestCart_RemoveItem(t *testing.T) {
	cart := domain.NewCart(gofakeit.UUID(), currency.MustParseISO("UZS"))
	require.NoError(t, cart.AddItem(catalogItem(t, 1, 8000, 50), 1))
	require.NoError(t, cart.AddItem(catalogItem(t, 2, 2000, 30), 2))
	require.NoError(t, cart.AddItem(catalogItem(t, 3, 12000, 25), 3))

	cart.RemoveItem(2)
	assert.Equal(t, []lineView{{id: 1, qty: 1}, {id: 3, qty: 3}}, view(cart))

	cart.RemoveItem(2)
	assert.Equal(t, 2, cart.Len())
}

func TestCart_Totals(t *testing.T) {
	cart := domain.NewCart(gofakeit.UUID(), currency.MustParseISO("UZS"))
	assert.True(t, cart.IsEmpty())
	assert.Equal(t, 0, cart.TotalItemCount())
	assert.True(t, cart.TotalPrice().Amount.IsZero())

	require.NoError(t, cart.AddItem(catalogItem(t, 1, 8000, 50), 3))
	assert.Equal(t, 3, cart.TotalItemCount())
	assert.True(t, decimal.NewFromInt(24000).Equal(cart.TotalPrice().Amount))

	require.NoError(t, cart.AddItem(catalogItem(t, 4, 15000, 40), 2))
	assert.Equal(t, 5, cart.TotalItemCount())
	assert.True(t, decimal.NewFromInt(54000).Equal(cart.TotalPrice().Amount))
	assert.Equal(t, "UZS", cart.TotalPrice().Currency.String())
}

// Random operation sequences never leave a non-positive line and keep the count consistent.
func TestCart_RandomOperations(t *testing.T) {
	items := []domain.CatalogItem{
		catalogItem(t, 1, 8000, 50),
		catalogItem(t, 2, 2000, 30),
		catalogItem(t, 3, 12000, 25),
	}

	for run := 0; run < 50; run++ {
		cart := domain.NewCart(gofakeit.UUID(), currency.MustParseISO("UZS"))

		for op := 0; op < 40; op++ {
			item := items[gofakeit.IntRange(0, len(items)-1)]

			switch gofakeit.IntRange(0, 2) {
			case 0:
				_ = cart.AddItem(item, gofakeit.IntRange(-2, 10))
			case 1:
				cart.ChangeQuantity(item.ID, gofakeit.IntRange(-5, 5))
			case 2:
				cart.RemoveItem(item.ID)
			}

			var sum int
			ids := make(map[int64]struct{})
			for _, line := range cart.Lines() {
				require.Positive(t, line.Quantity)
				require.NotContains(t, ids, line.Item.ID)
				ids[line.Item.ID] = struct{}{}
				sum += line.Quantity
			}
			require.Equal(t, sum, cart.TotalItemCount())
		}
	}
}

func TestRestoreCart(t *testing.T) {
	uzs := currency.MustParseISO("UZS")
	cola := catalogItem(t, 1, 8000, 50)

	_, err := domain.RestoreCart("owner", uzs, []domain.CartLine{{Item: cola, Quantity: 0}})
	require.ErrorIs(t, err, domain.ErrInvalidQuantity)

	_, err = domain.RestoreCart("owner", uzs, []domain.CartLine{{Item: cola, Quantity: 1}, {Item: cola, Quantity: 2}})
	require.Error(t, err)

	cart, err := domain.RestoreCart("owner", uzs, []domain.CartLine{{Item: cola, Quantity: 2}})
	require.NoError(t, err)
	assert.Equal(t, 2, cart.TotalItemCount())
}

func TestCart_Clone(t *testing.T) {
	cart := domain.NewCart(gofakeit.UUID(), currency.MustParseISO("UZS"))
	require.NoError(t, cart.AddItem(catalogItem(t, 1, 8000, 50), 1))

	clone := cart.Clone()
	clone.ChangeQuantity(1, 4)

	assert.Equal(t, 1, cart.TotalItemCount())
	assert.Equal(t, 5, clone.TotalItemCount())
}

type lineView struct {
	id  int64
	qty int
}

func view(c domain.Cart) []lineView {
	var out []lineView
	for _, line := range c.Lines() {
		out = append(out, lineView{id: line.Item.ID, qty: line.Quantity})
	}
	return out
}

func catalogItem(t *testing.T, id int64, price int64, stock int) domain.CatalogItem {
	t.Helper()

	item, err := domain.NewCatalogItem(id, gofakeit.ProductName(),
		domain.NewMoney(decimal.NewFromInt(price), currency.MustParseISO("UZS")),
		gofakeit.ProductCategory(), stock, "dona")
	require.NoError(t, err)

	return item
}
