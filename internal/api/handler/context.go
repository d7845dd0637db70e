package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/fixserve/account-service/internal/api/middleware"
)

// ctxClaims extracts the claims injected by the Auth middleware and performs
// a fast-fail check before any service call: both the subject id and role
// must be present, their presence proves the middleware ran.
func ctxClaims(c echo.Context) (accountID, role string, err error) {
	accountID, _ = c.Get(middleware.CtxAccountID).(string)
	role, _ = c.Get(middleware.CtxRole).(string)
	if accountID == "" || role == "" {
		return "", "", echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return accountID, role, nil
}
