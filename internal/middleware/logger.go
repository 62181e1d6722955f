package middleware

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
)

// RequestLogger writes one structured line per request.  When the handler
// returned an error the response has not been written yet, so the logged
// status is derived from the error the way the error handler will.  This is
// the only place request failures are logged.
func RequestLogger(log zerolog.Logger) echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogURI:       true,
		LogStatus:    true,
		LogError:     true,
		LogLatency:   true,
		LogMethod:    true,
		LogRemoteIP:  true,
		LogRequestID: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			status := v.Status
			if v.Error != nil {
				var he *echo.HTTPError
				if errors.As(v.Error, &he) {
					status = he.Code
				} else {
					status = http.StatusInternalServerError
				}
			}

			var e *zerolog.Event
			switch {
			case status >= 500:
				e = log.Error()
			case status >= 400:
				e = log.Warn()
			default:
				e = log.Info()
			}
			if v.RequestID != "" {
				e = e.Str("request_id", v.RequestID)
			}
			e.Err(v.Error).
				Str("method", v.Method).
				Str("uri", v.URI).
				Int("status", status).
				Dur("latency", v.Latency).
				Str("ip", v.RemoteIP).
				Msg("request")
			return nil
		},
	})
}
