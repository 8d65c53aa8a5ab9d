// Package transfer serializes carts handed from the sales step to the checkout step.
//
// The wire format is an ordered JSON array of
// {id, name, price, category, stock, unit, quantity} objects with optional currency and image.
// Prices are written as JSON numbers carrying the exact decimal digits.
package transfer

import (
	"encoding/json"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/nikolayk812/possale/internal/domain"
	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
)

type line struct {
	ID       int64       `json:"id" validate:"gt=0"`
	Name     string      `json:"name" validate:"required"`
	Price    json.Number `json:"price" validate:"required"`
	Currency string      `json:"currency,omitempty" validate:"omitempty,len=3"`
	Category string      `json:"category"`
	Stock    int         `json:"stock" validate:"gte=0"`
	Unit     string      `json:"unit"`
	Image    string      `json:"image,omitempty"`
	Quantity int         `json:"quantity" validate:"gt=0"`
}

type Codec struct {
	currency currency.Unit
	validate *validator.Validate
}

// NewCodec returns a codec that assigns cur to empty carts and to entries without a currency.
func NewCodec(cur currency.Unit) *Codec {
	return &Codec{
		currency: cur,
		validate: validator.New(),
	}
}

func (c *Codec) Encode(cart domain.Cart) ([]byte, error) {
	lines := make([]line, 0, cart.Len())

	for _, l := range cart.Lines() {
		lines = append(lines, line{
			ID:       l.Item.ID,
			Name:     l.Item.Name,
			Price:    json.Number(l.Item.UnitPrice.Amount.String()),
			Currency: l.Item.UnitPrice.Currency.String(),
			Category: l.Item.Category,
			Stock:    l.Item.StockQuantity,
			Unit:     l.Item.Unit,
			Image:    l.Item.Image,
			Quantity: l.Quantity,
		})
	}

	data, err := json.Marshal(lines)
	if err != nil {
		return nil, fmt.Errorf("json.Marshal: %w", err)
	}

	return data, nil
}

func (c *Codec) Decode(ownerID string, data []byte) (domain.Cart, error) {
	var lines []line
	if err := json.Unmarshal(data, &lines); err != nil {
		return domain.Cart{}, fmt.Errorf("%w: %w", domain.ErrMalformedSnapshot, err)
	}

	cartCurrency := c.currency
	cartLines := make([]domain.CartLine, 0, len(lines))

	for i, l := range lines {
		if err := c.validate.Struct(l); err != nil {
			return domain.Cart{}, fmt.Errorf("%w: entry[%d]: %w", domain.ErrMalformedSnapshot, i, err)
		}

		price, err := decimal.NewFromString(l.Price.String())
		if err != nil {
			return domain.Cart{}, fmt.Errorf("%w: entry[%d]: price[%s] is not valid: %w", domain.ErrMalformedSnapshot, i, l.Price, err)
		}

		cur := c.currency
		if l.Currency != "" {
			cur, err = currency.ParseISO(l.Currency)
			if err != nil {
				return domain.Cart{}, fmt.Errorf("%w: currency[%s] is not valid: %w", domain.ErrMalformedSnapshot, l.Currency, err)
			}
		}
		if i == 0 {
			cartCurrency = cur
		}

		cartLines = append(cartLines, domain.CartLine{
			Item: domain.CatalogItem{
				ID:            l.ID,
				Name:          l.Name,
				UnitPrice:     domain.NewMoney(price, cur),
				Category:      l.Category,
				StockQuantity: l.Stock,
				Unit:          l.Unit,
				Image:         l.Image,
			},
			Quantity: l.Quantity,
		})
	}

	cart, err := domain.RestoreCart(ownerID, cartCurrency, cartLines)
	if err != nil {
		return domain.Cart{}, fmt.Errorf("%w: %w", domain.ErrMalformedSnapshot, err)
	}

	return cart, nil
}
