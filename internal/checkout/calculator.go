package checkout

import (
	"fmt"

	"github.com/nikolayk812/possale/internal/domain"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// ComputeSummary derives the order totals from a cart. It never mutates the cart.
func ComputeSummary(cart domain.Cart, discountPercent decimal.Decimal, method domain.PaymentMethod) (domain.OrderSummary, error) {
	if discountPercent.IsNegative() || discountPercent.GreaterThan(hundred) {
		return domain.OrderSummary{}, fmt.Errorf("%w: %s", domain.ErrInvalidDiscount, discountPercent)
	}
	if !method.Valid() {
		return domain.OrderSummary{}, fmt.Errorf("%w: %q", domain.ErrInvalidPaymentMethod, method)
	}

	subtotal := cart.TotalPrice()

	// shifting by two places keeps the division by 100 exact
	discount := domain.NewMoney(subtotal.Amount.Mul(discountPercent).Shift(-2), subtotal.Currency)

	final, err := subtotal.Sub(discount)
	if err != nil {
		return domain.OrderSummary{}, fmt.Errorf("subtotal.Sub: %w", err)
	}

	return domain.OrderSummary{
		TotalItemCount:  cart.TotalItemCount(),
		Subtotal:        subtotal,
		DiscountPercent: discountPercent,
		DiscountAmount:  discount,
		FinalTotal:      final,
		PaymentMethod:   method,
	}, nil
}
