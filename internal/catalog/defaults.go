// Package catalog holds the catalog the shop ships with.
package catalog

import (
	"github.com/nikolayk812/possale/internal/domain"
	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
)

const placeholderImage = "/placeholder.svg?height=80&width=80"

// Default returns the starter catalog priced in cur.
func Default(cur currency.Unit) []domain.CatalogItem {
	price := func(amount int64) domain.Money {
		return domain.NewMoney(decimal.NewFromInt(amount), cur)
	}

	return []domain.CatalogItem{
		{ID: 1, Name: "Coca Cola 1.5L", UnitPrice: price(8000), Category: "Ichimliklar", StockQuantity: 50, Unit: "dona", Image: placeholderImage},
		{ID: 2, Name: "Non", UnitPrice: price(2000), Category: "Oziq-ovqat", StockQuantity: 30, Unit: "dona", Image: placeholderImage},
		{ID: 3, Name: "Sut 1L", UnitPrice: price(12000), Category: "Sut mahsulotlari", StockQuantity: 25, Unit: "litr", Image: placeholderImage},
		{ID: 4, Name: "Olma 1kg", UnitPrice: price(15000), Category: "Mevalar", StockQuantity: 40, Unit: "kg", Image: placeholderImage},
		{ID: 5, Name: "Guruch 1kg", UnitPrice: price(18000), Category: "Oziq-ovqat", StockQuantity: 20, Unit: "kg", Image: placeholderImage},
		{ID: 6, Name: "Choy", UnitPrice: price(25000), Category: "Ichimliklar", StockQuantity: 15, Unit: "quti", Image: placeholderImage},
	}
}
