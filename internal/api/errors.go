package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/nikolayk812/possale/internal/api/response"
	"github.com/nikolayk812/possale/internal/domain"
	"github.com/nikolayk812/possale/internal/logging"
)

const salesScreen = "/sales"

type redirect struct {
	Redirect string `json:"redirect"`
}

// writeError maps domain errors onto HTTP statuses; anything unknown is a 500.
func writeError(c *gin.Context, err error) {
	_ = c.Error(err)

	switch {
	case errors.Is(err, domain.ErrInvalidQuantity):
		response.Error(c, http.StatusBadRequest, "INVALID_QUANTITY", err.Error(), nil)
	case errors.Is(err, domain.ErrInvalidDiscount):
		response.Error(c, http.StatusBadRequest, "INVALID_DISCOUNT", err.Error(), nil)
	case errors.Is(err, domain.ErrInvalidPaymentMethod):
		response.Error(c, http.StatusBadRequest, "INVALID_PAYMENT_METHOD", err.Error(), nil)
	case errors.Is(err, domain.ErrCurrencyMismatch):
		response.Error(c, http.StatusBadRequest, "CURRENCY_MISMATCH", err.Error(), nil)
	case errors.Is(err, domain.ErrItemNotFound):
		response.Error(c, http.StatusNotFound, "ITEM_NOT_FOUND", err.Error(), nil)
	case errors.Is(err, domain.ErrEmptyCart):
		response.Error(c, http.StatusConflict, "EMPTY_CART", err.Error(), redirect{Redirect: salesScreen})
	case errors.Is(err, domain.ErrNoPendingOrder):
		response.Error(c, http.StatusNotFound, "NO_PENDING_ORDER", err.Error(), redirect{Redirect: salesScreen})
	case errors.Is(err, context.DeadlineExceeded):
		response.Error(c, http.StatusGatewayTimeout, "TIMEOUT", "request timed out", nil)
	default:
		logging.From(c).Error("request failed", "error", err)
		response.Error(c, http.StatusInternalServerError, "INTERNAL", "internal error", nil)
	}
}

func badRequest(c *gin.Context, err error) {
	_ = c.Error(err)
	response.Error(c, http.StatusBadRequest, "BAD_REQUEST", "invalid input", err.Error())
}
