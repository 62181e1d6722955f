package handler // handler defines the HTTP handlers

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/club-stadium-api/internal/queue"
	"github.com/iliyamo/club-stadium-api/internal/validation"
)

// Notifier receives change events after successful writes.  Delivery is best
// effort; a failing Notifier never changes the HTTP response.
type Notifier interface {
	Publish(ctx context.Context, ev queue.ChangeEvent) error
}

const publishTimeout = 5 * time.Second

// notify publishes ev in the background, detached from the request context
// so the publish outlives the response.
func notify(c echo.Context, n Notifier, ev queue.ChangeEvent) {
	if n == nil {
		return
	}
	ctx := context.WithoutCancel(c.Request().Context())
	go func() {
		ctx, cancel := context.WithTimeout(ctx, publishTimeout)
		defer cancel()
		_ = n.Publish(ctx, ev)
	}()
}

// parseID reads a numeric path parameter.  Anything that is not a positive
// integer cannot name a stored row.
func parseID(c echo.Context, name string) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}
	return id, true
}

// bindAndValidate binds the JSON body into payload and validates it.  On
// failure it returns the 400 response that must be sent, which the caller
// returns directly.
func bindAndValidate(c echo.Context, payload validation.Validatable) (bool, error) {
	if err := c.Bind(payload); err != nil {
		return false, c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if err := payload.Validate(); err != nil {
		return false, c.JSON(http.StatusBadRequest, echo.Map{
			"error":  "validation failed",
			"fields": validation.Fields(err),
		})
	}
	return true, nil
}

// ErrorHandler is the echo.HTTPErrorHandler for the API.  *echo.HTTPError
// values keep their status; every other error becomes a 500 that does not
// leak its text.  Failures are logged by the request logger, not here.
func ErrorHandler(err error, c echo.Context) {
	status := http.StatusInternalServerError
	msg := http.StatusText(status)

	var he *echo.HTTPError
	if errors.As(err, &he) {
		status = he.Code
		if s, ok := he.Message.(string); ok {
			msg = s
		} else {
			msg = http.StatusText(status)
		}
	}

	if c.Response().Committed {
		return
	}
	if c.Request().Method == http.MethodHead {
		_ = c.NoContent(status)
		return
	}
	_ = c.JSON(status, echo.Map{"error": msg})
}
