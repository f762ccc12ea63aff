package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Skotchmaster/catalog_admin/internal/logging"
	"github.com/Skotchmaster/catalog_admin/internal/service"
	"github.com/Skotchmaster/catalog_admin/internal/transport"
)

type AuthHTTP struct {
	Svc *service.AccountService
}

func (h *AuthHTTP) Register(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "auth.register")

	var req transport.RegisterRequest
	if err := c.Bind(&req); err != nil {
		return badBody(l, "register_error", err)
	}

	if err := h.Svc.Register(ctx, req.Input()); err != nil {
		return fail(l, "register_error", err, messages{
			conflict: "User already exists.",
			fallback: "Something went wrong.",
		})
	}

	l.Info("register_success")
	return c.JSON(http.StatusCreated, transport.MessageResponse{Message: "User created successfully!"})
}

// Login answers 401 with the same message for every credential failure,
// including an unreadable body.
func (h *AuthHTTP) Login(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "auth.login")

	var req transport.LoginRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("login_error", "status", http.StatusUnauthorized, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusUnauthorized, "Invalid email or password")
	}

	user, err := h.Svc.Login(ctx, req.Email, req.Password)
	if err != nil {
		return fail(l, "login_error", err, messages{fallback: "Something went wrong."})
	}

	l.Info("login_success", "user_id", user.ID)
	return c.JSON(http.StatusOK, transport.LoginResponse{Message: "Login successful", User: *user})
}
