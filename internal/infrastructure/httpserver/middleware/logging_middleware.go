package middleware

import (
	"time"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"

	"github.com/floodrisk/forms-data/go/internal/infrastructure/httpserver/helpers"
)

type LoggingMiddleware struct {
	logger *logrus.Logger
}

func NewLoggingMiddleware(logger *logrus.Logger) *LoggingMiddleware {
	return &LoggingMiddleware{logger: logger}
}

func (m *LoggingMiddleware) RequestLogging() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if m.logger == nil {
				return next(c)
			}
			start := time.Now()
			err := next(c)

			fields := logrus.Fields{
				"method":      c.Request().Method,
				"path":        c.Path(),
				"status":      c.Response().Status,
				"duration_ms": time.Since(start).Milliseconds(),
				"request_id":  c.Response().Header().Get(echo.HeaderXRequestID),
			}
			if src, ok := helpers.GetAreaSourceRaw(c); ok {
				fields["area_source"] = src.String()
			}
			entry := m.logger.WithFields(fields)
			if err != nil {
				entry.WithError(err).Warn("request failed")
			} else {
				entry.Debug("request handled")
			}
			return err
		}
	}
}
