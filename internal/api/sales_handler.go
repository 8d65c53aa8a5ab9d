package api

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/nikolayk812/possale/internal/api/response"
	"github.com/nikolayk812/possale/internal/domain"
)

const checkoutScreen = "/checkout"

type SalesService interface {
	StartSale(ctx context.Context, sessionID string) (domain.Cart, error)
	Cart(ctx context.Context, sessionID string) (domain.Cart, error)
	AddItem(ctx context.Context, sessionID string, itemID int64, quantity int) (domain.Cart, error)
	ChangeQuantity(ctx context.Context, sessionID string, itemID int64, delta int) (domain.Cart, error)
	RemoveItem(ctx context.Context, sessionID string, itemID int64) (domain.Cart, error)
	ProceedToCheckout(ctx context.Context, sessionID string) (domain.CheckoutSnapshot, error)
}

type SalesHandler struct {
	sales SalesService
}

func NewSalesHandler(sales SalesService) *SalesHandler {
	return &SalesHandler{sales: sales}
}

func (h *SalesHandler) StartSale(c *gin.Context) {
	sid, ok := sessionID(c)
	if !ok {
		return
	}

	cart, err := h.sales.StartSale(c.Request.Context(), sid)
	if err != nil {
		writeError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, "sale started", toCartResponse(cart))
}

func (h *SalesHandler) GetCart(c *gin.Context) {
	sid, ok := sessionID(c)
	if !ok {
		return
	}

	cart, err := h.sales.Cart(c.Request.Context(), sid)
	if err != nil {
		writeError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "", toCartResponse(cart))
}

func (h *SalesHandler) AddItem(c *gin.Context) {
	sid, ok := sessionID(c)
	if !ok {
		return
	}

	var req addItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	cart, err := h.sales.AddItem(c.Request.Context(), sid, req.ItemID, req.Quantity)
	if err != nil {
		writeError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "item added", toCartResponse(cart))
}

func (h *SalesHandler) ChangeQuantity(c *gin.Context) {
	sid, ok := sessionID(c)
	if !ok {
		return
	}

	itemID, err := itemIDParam(c)
	if err != nil {
		badRequest(c, err)
		return
	}

	var req changeQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	cart, err := h.sales.ChangeQuantity(c.Request.Context(), sid, itemID, req.Delta)
	if err != nil {
		writeError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "", toCartResponse(cart))
}

func (h *SalesHandler) RemoveItem(c *gin.Context) {
	sid, ok := sessionID(c)
	if !ok {
		return
	}

	itemID, err := itemIDParam(c)
	if err != nil {
		badRequest(c, err)
		return
	}

	cart, err := h.sales.RemoveItem(c.Request.Context(), sid, itemID)
	if err != nil {
		writeError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "item removed", toCartResponse(cart))
}

// ProceedToCheckout hands the cart over; the client navigates to the returned redirect.
func (h *SalesHandler) ProceedToCheckout(c *gin.Context) {
	sid, ok := sessionID(c)
	if !ok {
		return
	}

	snapshot, err := h.sales.ProceedToCheckout(c.Request.Context(), sid)
	if err != nil {
		writeError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "ready for checkout", handoffResponse{
		Cart:      toCartResponse(snapshot.Cart),
		CreatedAt: snapshot.CreatedAt,
		Redirect:  checkoutScreen,
	})
}

func itemIDParam(c *gin.Context) (int64, error) {
	raw := c.Param("id")

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("item id[%s] must be a positive integer", raw)
	}
	return id, nil
}
