package api

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/nikolayk812/possale/internal/api/response"
	"github.com/nikolayk812/possale/internal/domain"
	"github.com/shopspring/decimal"
)

type CheckoutService interface {
	Open(ctx context.Context, sessionID string) (domain.Cart, error)
	Summary(ctx context.Context, sessionID string, discountPercent decimal.Decimal, method domain.PaymentMethod) (domain.Cart, domain.OrderSummary, error)
	Complete(ctx context.Context, sessionID string, discountPercent decimal.Decimal, method domain.PaymentMethod, customer domain.Customer) (domain.Receipt, error)
	Cancel(ctx context.Context, sessionID string) (domain.OrderStatus, error)
}

type CheckoutHandler struct {
	checkout CheckoutService
}

func NewCheckoutHandler(checkout CheckoutService) *CheckoutHandler {
	return &CheckoutHandler{checkout: checkout}
}

// Open returns the cart handed over by the sales step.
func (h *CheckoutHandler) Open(c *gin.Context) {
	sid, ok := sessionID(c)
	if !ok {
		return
	}

	cart, err := h.checkout.Open(c.Request.Context(), sid)
	if err != nil {
		writeError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "", toCartResponse(cart))
}

func (h *CheckoutHandler) Summary(c *gin.Context) {
	sid, ok := sessionID(c)
	if !ok {
		return
	}

	var req summaryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	method, err := domain.ParsePaymentMethod(req.PaymentMethod)
	if err != nil {
		writeError(c, err)
		return
	}

	cart, summary, err := h.checkout.Summary(c.Request.Context(), sid, req.DiscountPercent, method)
	if err != nil {
		writeError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "", checkoutResponse{
		Cart:    toCartResponse(cart),
		Summary: toSummaryResponse(summary),
	})
}

func (h *CheckoutHandler) Complete(c *gin.Context) {
	sid, ok := sessionID(c)
	if !ok {
		return
	}

	var req completeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	method, err := domain.ParsePaymentMethod(req.PaymentMethod)
	if err != nil {
		writeError(c, err)
		return
	}

	receipt, err := h.checkout.Complete(c.Request.Context(), sid, req.DiscountPercent, method, req.Customer.toDomain())
	if err != nil {
		writeError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, "order completed", toReceiptResponse(receipt))
}

// Cancel abandons the pending checkout and sends the client back to sales.
func (h *CheckoutHandler) Cancel(c *gin.Context) {
	sid, ok := sessionID(c)
	if !ok {
		return
	}

	status, err := h.checkout.Cancel(c.Request.Context(), sid)
	if err != nil {
		writeError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "checkout cancelled", gin.H{
		"status":   status.String(),
		"redirect": salesScreen,
	})
}
