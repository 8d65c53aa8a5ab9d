package domain

import (
	"fmt"
	"strings"
)

// CatalogItem is a sellable item. Stock is informational: carts never decrement it.
type CatalogItem struct {
	ID            int64
	Name          string
	UnitPrice     Money
	Category      string
	StockQuantity int
	Unit          string
	Image         string
}

func NewCatalogItem(id int64, name string, unitPrice Money, category string, stock int, unit string) (CatalogItem, error) {
	item := CatalogItem{
		ID:            id,
		Name:          strings.TrimSpace(name),
		UnitPrice:     unitPrice,
		Category:      category,
		StockQuantity: stock,
		Unit:          unit,
	}

	if err := item.Validate(); err != nil {
		return CatalogItem{}, err
	}

	return item, nil
}

func (i CatalogItem) Validate() error {
	switch {
	case i.ID <= 0:
		return fmt.Errorf("%w: id[%d] must be positive", ErrInvalidCatalogItem, i.ID)
	case i.Name == "":
		return fmt.Errorf("%w: name is empty", ErrInvalidCatalogItem)
	case i.UnitPrice.IsNegative():
		return fmt.Errorf("%w: unit price[%s] is negative", ErrInvalidCatalogItem, i.UnitPrice)
	case i.StockQuantity < 0:
		return fmt.Errorf("%w: stock[%d] is negative", ErrInvalidCatalogItem, i.StockQuantity)
	}
	return nil
}

// Matches reports whether term is a case-insensitive substring of the name or category.
// An empty term matches everything.
func (i CatalogItem) Matches(term string) bool {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return true
	}
	return strings.Contains(strings.ToLower(i.Name), term) ||
		strings.Contains(strings.ToLower(i.Category), term)
}
