package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Skotchmaster/catalog_admin/internal/logging"
	"github.com/Skotchmaster/catalog_admin/internal/service"
	"github.com/Skotchmaster/catalog_admin/internal/transport"
)

type ProductHTTP struct {
	Svc *service.ProductService
}

func (h *ProductHTTP) ListProducts(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "product.list")

	items, err := h.Svc.ListProducts(ctx)
	if err != nil {
		return fail(l, "list_products_error", err, messages{fallback: "Failed to fetch products"})
	}

	l.Info("list_products_success", "count", len(items))
	return c.JSON(http.StatusOK, items)
}

func (h *ProductHTTP) CreateProduct(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "product.create")
	m := messages{fallback: "Failed to create product"}

	var req transport.ProductRequest
	if err := c.Bind(&req); err != nil {
		return badBody(l, "create_product_error", err)
	}
	in, err := req.Input()
	if err != nil {
		return fail(l, "create_product_error", err, m)
	}

	prod, err := h.Svc.CreateProduct(ctx, in)
	if err != nil {
		return fail(l, "create_product_error", err, m)
	}

	l.Info("create_product_success", "id", prod.ID)
	return c.JSON(http.StatusCreated, prod)
}

func (h *ProductHTTP) UpdateProduct(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "product.update")
	m := messages{notFound: "Product not found", fallback: "Failed to update product"}

	var req transport.ProductRequest
	if err := c.Bind(&req); err != nil {
		return badBody(l, "update_product_error", err)
	}
	in, err := req.Input()
	if err != nil {
		return fail(l, "update_product_error", err, m)
	}

	prod, err := h.Svc.UpdateProduct(ctx, in)
	if err != nil {
		return fail(l, "update_product_error", err, m)
	}

	l.Info("update_product_success", "id", prod.ID)
	return c.JSON(http.StatusOK, prod)
}

func (h *ProductHTTP) DeleteProduct(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "product.delete")

	var req transport.DeleteRequest
	if err := c.Bind(&req); err != nil {
		return badBody(l, "delete_product_error", err)
	}

	if err := h.Svc.DeleteProduct(ctx, req.ID); err != nil {
		return fail(l, "delete_product_error", err, messages{
			notFound: "Product not found",
			fallback: "Failed to delete product",
		})
	}

	l.Info("delete_product_success", "id", req.ID)
	return c.JSON(http.StatusOK, transport.MessageResponse{Message: "Product deleted"})
}
