package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/devsocial/social-api/internal/api/metrics"
	"github.com/devsocial/social-api/internal/core/token"
)

// HeaderAuthToken is the request header carrying the raw token. The client
// contract predates bearer auth and is kept as-is.
const HeaderAuthToken = "x-auth-token"

const userIDKey = "auth.user_id"

const (
	msgNoToken      = "No token, authorization denied"
	msgInvalidToken = "Token is not valid"
)

// Auth validates the x-auth-token header and injects the caller's user id
// into the request context. A missing header and an invalid or expired
// token both yield 401; the two causes are deliberately indistinguishable
// to the caller beyond the message text.
func Auth(codec *token.Codec) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			raw := c.Request().Header.Get(HeaderAuthToken)
			if raw == "" {
				metrics.AuthDeniedTotal.WithLabelValues("missing_token").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, msgNoToken)
			}

			id, err := codec.Decode(raw)
			if err != nil {
				metrics.AuthDeniedTotal.WithLabelValues("invalid_token").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, msgInvalidToken)
			}

			c.Set(userIDKey, id.UserID)
			return next(c)
		}
	}
}

// UserID returns the caller's user id injected by Auth, or "" when the
// middleware did not run.
func UserID(c echo.Context) string {
	id, _ := c.Get(userIDKey).(string)
	return id
}
