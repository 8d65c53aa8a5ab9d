package api

import (
	"time"

	"github.com/nikolayk812/possale/internal/domain"
	"github.com/shopspring/decimal"
)

// Money amounts are rendered as decimal strings so no precision is lost in JSON.

type itemResponse struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Price    string `json:"price"`
	Currency string `json:"currency"`
	Category string `json:"category"`
	Stock    int    `json:"stock"`
	Unit     string `json:"unit"`
	Image    string `json:"image,omitempty"`
}

type cartLineResponse struct {
	Item     itemResponse `json:"item"`
	Quantity int          `json:"quantity"`
	Total    string       `json:"total"`
}

type cartResponse struct {
	Lines          []cartLineResponse `json:"lines"`
	TotalItemCount int                `json:"totalItemCount"`
	TotalPrice     string             `json:"totalPrice"`
	Currency       string             `json:"currency"`
}

type handoffResponse struct {
	Cart      cartResponse `json:"cart"`
	CreatedAt time.Time    `json:"createdAt"`
	Redirect  string       `json:"redirect"`
}

type summaryResponse struct {
	TotalItemCount  int    `json:"totalItemCount"`
	Subtotal        string `json:"subtotal"`
	DiscountPercent string `json:"discountPercent"`
	DiscountAmount  string `json:"discountAmount"`
	FinalTotal      string `json:"finalTotal"`
	Currency        string `json:"currency"`
	PaymentMethod   string `json:"paymentMethod"`
}

type checkoutResponse struct {
	Cart    cartResponse    `json:"cart"`
	Summary summaryResponse `json:"summary"`
}

type customerDTO struct {
	Name    string `json:"name" binding:"omitempty,max=200"`
	Phone   string `json:"phone" binding:"omitempty,max=32"`
	Address string `json:"address" binding:"omitempty,max=500"`
}

type receiptResponse struct {
	OrderID     string             `json:"orderId"`
	Status      string             `json:"status"`
	CompletedAt time.Time          `json:"completedAt"`
	Lines       []cartLineResponse `json:"lines"`
	Summary     summaryResponse    `json:"summary"`
	Customer    customerDTO        `json:"customer"`
}

type addItemRequest struct {
	ItemID   int64 `json:"itemId" binding:"required,gt=0"`
	Quantity int   `json:"quantity"`
}

type changeQuantityRequest struct {
	Delta int `json:"delta" binding:"required"`
}

type summaryRequest struct {
	// decimal.Decimal accepts both JSON numbers and strings
	DiscountPercent decimal.Decimal `json:"discountPercent"`
	PaymentMethod   string          `json:"paymentMethod"`
}

type completeRequest struct {
	summaryRequest
	Customer customerDTO `json:"customer"`
}

func toItemResponse(item domain.CatalogItem) itemResponse {
	return itemResponse{
		ID:       item.ID,
		Name:     item.Name,
		Price:    item.UnitPrice.Amount.String(),
		Currency: item.UnitPrice.Currency.String(),
		Category: item.Category,
		Stock:    item.StockQuantity,
		Unit:     item.Unit,
		Image:    item.Image,
	}
}

func toItemsResponse(items []domain.CatalogItem) []itemResponse {
	out := make([]itemResponse, 0, len(items))
	for _, item := range items {
		out = append(out, toItemResponse(item))
	}
	return out
}

func toLinesResponse(lines []domain.CartLine) []cartLineResponse {
	out := make([]cartLineResponse, 0, len(lines))
	for _, line := range lines {
		out = append(out, cartLineResponse{
			Item:     toItemResponse(line.Item),
			Quantity: line.Quantity,
			Total:    line.Total().Amount.String(),
		})
	}
	return out
}

func toCartResponse(cart domain.Cart) cartResponse {
	return cartResponse{
		Lines:          toLinesResponse(cart.Lines()),
		TotalItemCount: cart.TotalItemCount(),
		TotalPrice:     cart.TotalPrice().Amount.String(),
		Currency:       cart.Currency.String(),
	}
}

func toSummaryResponse(s domain.OrderSummary) summaryResponse {
	return summaryResponse{
		TotalItemCount:  s.TotalItemCount,
		Subtotal:        s.Subtotal.Amount.String(),
		DiscountPercent: s.DiscountPercent.String(),
		DiscountAmount:  s.DiscountAmount.Amount.String(),
		FinalTotal:      s.FinalTotal.Amount.String(),
		Currency:        s.Subtotal.Currency.String(),
		PaymentMethod:   string(s.PaymentMethod),
	}
}

func toReceiptResponse(r domain.Receipt) receiptResponse {
	return receiptResponse{
		OrderID:     r.OrderID.String(),
		Status:      r.Status.String(),
		CompletedAt: r.CompletedAt,
		Lines:       toLinesResponse(r.Lines),
		Summary:     toSummaryResponse(r.Summary),
		Customer: customerDTO{
			Name:    r.Customer.Name,
			Phone:   r.Customer.Phone,
			Address: r.Customer.Address,
		},
	}
}

func (c customerDTO) toDomain() domain.Customer {
	return domain.Customer{Name: c.Name, Phone: c.Phone, Address: c.Address}
}
