package httpserver

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Skotchmaster/catalog_admin/internal/service"
)

const (
	msgInvalidBody      = "Invalid request body"
	msgUnavailable      = "Service temporarily unavailable"
	msgUnknownRef       = "Referenced category or brand does not exist"
	msgMethodNotAllowed = "Method not allowed"
)

// messages holds the client-facing text for one operation.
type messages struct {
	notFound string
	conflict string
	fallback string
}

// fail maps a service error to an HTTP error and logs it: Warn for client
// errors, Error for server errors. Internal error text never reaches the body.
func fail(l *slog.Logger, event string, err error, m messages) error {
	code, msg := status(err, m)
	if code >= http.StatusInternalServerError {
		l.Error(event, "status", code, "reason", msg, "error", err)
	} else {
		l.Warn(event, "status", code, "reason", msg, "error", err)
	}
	return echo.NewHTTPError(code, msg)
}

func status(err error, m messages) (int, string) {
	var ve *service.ValidationError
	switch {
	case errors.As(err, &ve):
		return http.StatusBadRequest, ve.Message
	case errors.Is(err, service.ErrUnauthenticated):
		return http.StatusUnauthorized, "Invalid email or password"
	case errors.Is(err, service.ErrNotFound) && m.notFound != "":
		return http.StatusNotFound, m.notFound
	case (errors.Is(err, service.ErrInUse) || errors.Is(err, service.ErrConflict)) && m.conflict != "":
		return http.StatusConflict, m.conflict
	case errors.Is(err, service.ErrInvalidReference):
		return http.StatusUnprocessableEntity, msgUnknownRef
	case errors.Is(err, service.ErrUnavailable):
		return http.StatusServiceUnavailable, msgUnavailable
	}
	return http.StatusInternalServerError, m.fallback
}

func badBody(l *slog.Logger, event string, err error) error {
	l.Warn(event, "status", http.StatusBadRequest, "reason", "invalid body", "error", err)
	return echo.NewHTTPError(http.StatusBadRequest, msgInvalidBody)
}

// errorHandler renders every error through echo's default handler, with the
// router's 405 reworded.
func errorHandler(e *echo.Echo) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		var he *echo.HTTPError
		if errors.As(err, &he) && he.Code == http.StatusMethodNotAllowed {
			err = echo.NewHTTPError(http.StatusMethodNotAllowed, msgMethodNotAllowed)
		}
		e.DefaultHTTPErrorHandler(err, c)
	}
}
