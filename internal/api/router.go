package api

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/nikolayk812/possale/internal/api/middleware"
	"github.com/nikolayk812/possale/internal/api/response"
	"github.com/nikolayk812/possale/internal/session"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type RouterConfig struct {
	Logger         *slog.Logger
	Registry       *prometheus.Registry
	RequestTimeout time.Duration
}

func NewRouter(cfg RouterConfig, catalog *CatalogHandler, sales *SalesHandler, checkout *CheckoutHandler) *gin.Engine {
	r := gin.New()
	r.Use(
		gin.Recovery(),
		middleware.NewHTTPMetrics(cfg.Registry).Middleware(),
		middleware.Logging(cfg.Logger),
	)

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(cfg.Registry, promhttp.HandlerOpts{})))

	r.NoRoute(func(c *gin.Context) {
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "route not found", nil)
	})

	staff := middleware.RequireRole(session.RoleAdmin, session.RoleShopOwner, session.RoleEmployee)

	v1 := r.Group("/v1", middleware.Timeout(cfg.RequestTimeout), middleware.Session())
	{
		v1.GET("/catalog", catalog.Search)

		s := v1.Group("/sales", staff)
		s.POST("", sales.StartSale)
		s.GET("/cart", sales.GetCart)
		s.POST("/cart/items", sales.AddItem)
		s.PATCH("/cart/items/:id", sales.ChangeQuantity)
		s.DELETE("/cart/items/:id", sales.RemoveItem)
		s.POST("/checkout", sales.ProceedToCheckout)

		co := v1.Group("/checkout", staff)
		co.GET("", checkout.Open)
		co.POST("/summary", checkout.Summary)
		co.POST("/complete", checkout.Complete)
		co.DELETE("", checkout.Cancel)
	}

	return r
}
