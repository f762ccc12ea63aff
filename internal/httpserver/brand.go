package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Skotchmaster/catalog_admin/internal/logging"
	"github.com/Skotchmaster/catalog_admin/internal/service"
	"github.com/Skotchmaster/catalog_admin/internal/transport"
)

type BrandHTTP struct {
	Svc *service.BrandService
}

func (h *BrandHTTP) ListBrands(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "brand.list")

	items, err := h.Svc.ListBrands(ctx)
	if err != nil {
		return fail(l, "list_brands_error", err, messages{fallback: "Failed to fetch brands"})
	}

	l.Info("list_brands_success", "count", len(items))
	return c.JSON(http.StatusOK, items)
}

func (h *BrandHTTP) CreateBrand(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "brand.create")

	var req transport.BrandRequest
	if err := c.Bind(&req); err != nil {
		return badBody(l, "create_brand_error", err)
	}

	brand, err := h.Svc.CreateBrand(ctx, req.Input())
	if err != nil {
		return fail(l, "create_brand_error", err, messages{fallback: "Failed to create brand"})
	}

	l.Info("create_brand_success", "id", brand.ID)
	return c.JSON(http.StatusCreated, brand)
}

func (h *BrandHTTP) UpdateBrand(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "brand.update")

	var req transport.BrandRequest
	if err := c.Bind(&req); err != nil {
		return badBody(l, "update_brand_error", err)
	}

	brand, err := h.Svc.UpdateBrand(ctx, req.Input())
	if err != nil {
		return fail(l, "update_brand_error", err, messages{
			notFound: "Brand not found",
			fallback: "Failed to update brand",
		})
	}

	l.Info("update_brand_success", "id", brand.ID)
	return c.JSON(http.StatusOK, brand)
}

func (h *BrandHTTP) DeleteBrand(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "brand.delete")

	var req transport.DeleteRequest
	if err := c.Bind(&req); err != nil {
		return badBody(l, "delete_brand_error", err)
	}

	if err := h.Svc.DeleteBrand(ctx, req.ID); err != nil {
		return fail(l, "delete_brand_error", err, messages{
			notFound: "Brand not found",
			fallback: "Failed to delete brand",
		})
	}

	l.Info("delete_brand_success", "id", req.ID)
	return c.JSON(http.StatusOK, transport.MessageResponse{Message: "Brand deleted successfully"})
}
