package httpserver

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/Skotchmaster/catalog_admin/internal/db"
	"github.com/Skotchmaster/catalog_admin/internal/logging"
	"github.com/Skotchmaster/catalog_admin/internal/metrics"
)

type Deps struct {
	DB              *gorm.DB
	Metrics         *metrics.Metrics
	BrandHandler    *BrandHTTP
	CategoryHandler *CategoryHTTP
	ProductHandler  *ProductHTTP
	AuthHandler     *AuthHTTP
}

func Register(e *echo.Echo, d *Deps) {
	e.GET("/health/live", func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	e.GET("/health/ready", d.ready)
	if d.Metrics != nil {
		e.GET("/metrics", echo.WrapHandler(d.Metrics.Handler()))
	}

	e.GET("/brands", d.BrandHandler.ListBrands)
	e.POST("/brands", d.BrandHandler.CreateBrand)
	e.PUT("/brands", d.BrandHandler.UpdateBrand)
	e.DELETE("/brands", d.BrandHandler.DeleteBrand)

	e.GET("/categories", d.CategoryHandler.ListCategories)
	e.POST("/categories", d.CategoryHandler.CreateCategory)
	e.PUT("/categories", d.CategoryHandler.UpdateCategory)
	e.DELETE("/categories", d.CategoryHandler.DeleteCategory)

	e.GET("/products", d.ProductHandler.ListProducts)
	e.POST("/products", d.ProductHandler.CreateProduct)
	e.PUT("/products", d.ProductHandler.UpdateProduct)
	e.DELETE("/products", d.ProductHandler.DeleteProduct)

	auth := e.Group("/auth")
	auth.POST("/register", d.AuthHandler.Register)
	auth.POST("/login", d.AuthHandler.Login)
}

// ready reports 503 while the store does not answer a ping.
func (d *Deps) ready(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 2*time.Second)
	defer cancel()

	if err := db.Ping(ctx, d.DB); err != nil {
		logging.FromContext(ctx).Warn("readiness_error", "status", http.StatusServiceUnavailable, "error", err)
		return c.NoContent(http.StatusServiceUnavailable)
	}
	return c.NoContent(http.StatusOK)
}
