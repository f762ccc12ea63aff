package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Skotchmaster/catalog_admin/internal/logging"
	"github.com/Skotchmaster/catalog_admin/internal/service"
	"github.com/Skotchmaster/catalog_admin/internal/transport"
)

type CategoryHTTP struct {
	Svc *service.CategoryService
}

func (h *CategoryHTTP) ListCategories(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "category.list")

	items, err := h.Svc.ListCategories(ctx)
	if err != nil {
		return fail(l, "list_categories_error", err, messages{fallback: "Failed to fetch categories"})
	}

	l.Info("list_categories_success", "count", len(items))
	return c.JSON(http.StatusOK, items)
}

func (h *CategoryHTTP) CreateCategory(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "category.create")

	var req transport.CategoryRequest
	if err := c.Bind(&req); err != nil {
		return badBody(l, "create_category_error", err)
	}

	category, err := h.Svc.CreateCategory(ctx, req.Input())
	if err != nil {
		return fail(l, "create_category_error", err, messages{fallback: "Failed to create category"})
	}

	l.Info("create_category_success", "id", category.ID)
	return c.JSON(http.StatusCreated, category)
}

func (h *CategoryHTTP) UpdateCategory(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "category.update")

	var req transport.CategoryRequest
	if err := c.Bind(&req); err != nil {
		return badBody(l, "update_category_error", err)
	}

	category, err := h.Svc.UpdateCategory(ctx, req.Input())
	if err != nil {
		return fail(l, "update_category_error", err, messages{
			notFound: "Category not found",
			fallback: "Failed to update category",
		})
	}

	l.Info("update_category_success", "id", category.ID)
	return c.JSON(http.StatusOK, category)
}

func (h *CategoryHTTP) DeleteCategory(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "category.delete")

	var req transport.DeleteRequest
	if err := c.Bind(&req); err != nil {
		return badBody(l, "delete_category_error", err)
	}

	if err := h.Svc.DeleteCategory(ctx, req.ID); err != nil {
		return fail(l, "delete_category_error", err, messages{
			notFound: "Category not found",
			conflict: "Category is still used by products",
			fallback: "Failed to delete category",
		})
	}

	l.Info("delete_category_success", "id", req.ID)
	return c.JSON(http.StatusOK, transport.MessageResponse{Message: "Category deleted"})
}
