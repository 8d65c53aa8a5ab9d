package domain

import "errors"

var (
	ErrInvalidQuantity      = errors.New("invalid quantity")
	ErrInvalidDiscount      = errors.New("discount percent must be within [0, 100]")
	ErrInvalidPaymentMethod = errors.New("invalid payment method")
	ErrEmptyCart            = errors.New("cart is empty")
	ErrNoPendingOrder       = errors.New("no pending order")
	ErrItemNotFound         = errors.New("catalog item not found")
	ErrCurrencyMismatch     = errors.New("currency mismatch")
	ErrInvalidCatalogItem   = errors.New("invalid catalog item")
	ErrMalformedSnapshot    = errors.New("malformed checkout snapshot")
)
