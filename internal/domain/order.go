package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type PaymentMethod string

const (
	PaymentCash     PaymentMethod = "cash"
	PaymentCard     PaymentMethod = "card"
	PaymentTransfer PaymentMethod = "transfer"
)

// ParsePaymentMethod maps an empty value to cash, the checkout default.
func ParsePaymentMethod(s string) (PaymentMethod, error) {
	switch m := PaymentMethod(strings.ToLower(strings.TrimSpace(s))); m {
	case "":
		return PaymentCash, nil
	case PaymentCash, PaymentCard, PaymentTransfer:
		return m, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidPaymentMethod, s)
	}
}

func (m PaymentMethod) Valid() bool {
	switch m {
	case PaymentCash, PaymentCard, PaymentTransfer:
		return true
	}
	return false
}

type OrderStatus int

const (
	OrderBuilding OrderStatus = iota
	OrderReadyForCheckout
	OrderCompleted
	OrderAbandoned
)

func (s OrderStatus) String() string {
	switch s {
	case OrderBuilding:
		return "building"
	case OrderReadyForCheckout:
		return "ready_for_checkout"
	case OrderCompleted:
		return "completed"
	case OrderAbandoned:
		return "abandoned"
	default:
		return "unknown"
	}
}

func (s OrderStatus) Terminal() bool {
	return s == OrderCompleted || s == OrderAbandoned
}

type OrderSummary struct {
	TotalItemCount  int
	Subtotal        Money
	DiscountPercent decimal.Decimal
	DiscountAmount  Money
	FinalTotal      Money
	PaymentMethod   PaymentMethod
}

type Customer struct {
	Name    string
	Phone   string
	Address string
}

type Receipt struct {
	OrderID     uuid.UUID
	Lines       []CartLine
	Summary     OrderSummary
	Customer    Customer
	Status      OrderStatus
	CompletedAt time.Time
}

// CheckoutSnapshot is a cart handed from the sales step to the checkout step.
type CheckoutSnapshot struct {
	Cart      Cart
	CreatedAt time.Time
}

// Stale reports whether the snapshot is older than maxAge at now. A zero maxAge never expires.
func (s CheckoutSnapshot) Stale(now time.Time, maxAge time.Duration) bool {
	if maxAge <= 0 {
		return false
	}
	return now.Sub(s.CreatedAt) > maxAge
}
