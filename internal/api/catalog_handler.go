package api

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/nikolayk812/possale/internal/api/response"
	"github.com/nikolayk812/possale/internal/domain"
)

type CatalogService interface {
	List(ctx context.Context) ([]domain.CatalogItem, error)
	Search(ctx context.Context, term string) ([]domain.CatalogItem, error)
}

type CatalogHandler struct {
	catalog CatalogService
}

func NewCatalogHandler(catalog CatalogService) *CatalogHandler {
	return &CatalogHandler{catalog: catalog}
}

// Search lists the catalog, filtered by the optional q term on name or category.
func (h *CatalogHandler) Search(c *gin.Context) {
	term := strings.TrimSpace(c.Query("q"))

	var (
		items []domain.CatalogItem
		err   error
	)
	if term == "" {
		items, err = h.catalog.List(c.Request.Context())
	} else {
		items, err = h.catalog.Search(c.Request.Context(), term)
	}
	if err != nil {
		writeError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "", toItemsResponse(items))
}
