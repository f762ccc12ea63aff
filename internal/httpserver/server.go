package httpserver

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	loggingmw "github.com/Skotchmaster/catalog_admin/internal/middleware/logging"
)

// New builds the echo instance with the middleware chain and all routes.
func New(logger *slog.Logger, d *Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = errorHandler(e)

	e.Pre(echomw.RemoveTrailingSlash())
	e.Pre(preflightOnly)
	e.Use(echomw.RequestID())
	if d.Metrics != nil {
		e.Use(d.Metrics.Middleware())
	}
	e.Use(loggingmw.RequestLogger(logger))
	e.Use(echomw.Recover())
	e.Use(echomw.CORS())

	Register(e, d)
	return e
}

// preflightOnly lets OPTIONS through only as a CORS preflight; any other
// OPTIONS request is a method the API does not serve.
func preflightOnly(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		req := c.Request()
		if req.Method == http.MethodOptions && req.Header.Get(echo.HeaderAccessControlRequestMethod) == "" {
			return echo.ErrMethodNotAllowed
		}
		return next(c)
	}
}
