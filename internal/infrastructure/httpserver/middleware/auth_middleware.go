package middleware

import (
	"errors"
	"net/http"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"

	"github.com/floodrisk/forms-data/go/internal/infrastructure/httpserver/helpers"
)

// AdminAudience is the audience admin tokens must carry.
const AdminAudience = "forms-data-admin"

// ServiceAuthMiddleware guards operator endpoints with HS256 tokens signed
// with the shared service secret. With no secret configured the guarded
// routes are closed.
type ServiceAuthMiddleware struct {
	secret []byte
	logger *logrus.Logger
}

func NewServiceAuthMiddleware(secret string, logger *logrus.Logger) *ServiceAuthMiddleware {
	return &ServiceAuthMiddleware{secret: []byte(secret), logger: logger}
}

// RequireServiceToken validates the bearer token and stores its subject in the context.
func (m *ServiceAuthMiddleware) RequireServiceToken() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if len(m.secret) == 0 {
				return echo.NewHTTPError(http.StatusForbidden, "admin endpoints are disabled")
			}
			tokenString, err := helpers.GetBearerToken(c)
			if err != nil {
				return err
			}

			claims := &jwt.RegisteredClaims{}
			_, err = jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
				return m.secret, nil
			},
				jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
				jwt.WithAudience(AdminAudience),
				jwt.WithExpirationRequired(),
			)
			if err != nil {
				if m.logger != nil {
					m.logger.WithFields(logrus.Fields{"ip": c.RealIP(), "path": c.Request().URL.Path, "error": err.Error()}).Warn("service token validation failed")
				}
				if errors.Is(err, jwt.ErrTokenExpired) {
					return echo.NewHTTPError(http.StatusUnauthorized, "token expired")
				}
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			helpers.SetServiceSubject(c, claims.Subject)
			if m.logger != nil {
				m.logger.WithFields(logrus.Fields{"subject": claims.Subject, "jti": claims.ID}).Debug("service token validated")
			}
			return next(c)
		}
	}
}
