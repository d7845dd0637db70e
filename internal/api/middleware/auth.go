package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/fixserve/account-service/internal/core/ports"
)

// TokenCookie is the cookie carrying the session token for browser clients.
const TokenCookie = "token"

// Context keys populated by Auth for downstream handlers.
const (
	CtxAccountID = "account_id"
	CtxRole      = "role"
)

// Auth validates the session token and injects the subject id and role into
// the echo context. The token is read from the Authorization header (Bearer
// scheme) or, failing that, from the token cookie.
func Auth(issuer ports.TokenIssuer) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token := bearerToken(c)
			if token == "" {
				if cookie, err := c.Cookie(TokenCookie); err == nil {
					token = cookie.Value
				}
			}
			if token == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing credentials")
			}

			subject, role, err := issuer.Validate(token)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			c.Set(CtxAccountID, subject)
			c.Set(CtxRole, role)

			return next(c)
		}
	}
}

func bearerToken(c echo.Context) string {
	header := c.Request().Header.Get("Authorization")
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return ""
	}
	return parts[1]
}
