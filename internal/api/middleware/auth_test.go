package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/fixserve/account-service/internal/security"
)

func TestAuthMiddleware_BearerToken(t *testing.T) {
	e := echo.New()
	issuer := security.NewJWTIssuer("secret", time.Hour)
	token, err := issuer.Issue("id-1", "USER")
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	called := false
	handler := Auth(issuer)(func(c echo.Context) error {
		called = true
		if c.Get(CtxAccountID) != "id-1" {
			t.Fatalf("account id not set")
		}
		if c.Get(CtxRole) != "USER" {
			t.Fatalf("role not set")
		}
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("next not called")
	}
}

func TestAuthMiddleware_CookieFallback(t *testing.T) {
	e := echo.New()
	issuer := security.NewJWTIssuer("secret", time.Hour)
	token, err := issuer.Issue("id-2", "ADMIN")
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: TokenCookie, Value: token})
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := Auth(issuer)(func(c echo.Context) error {
		if c.Get(CtxRole) != "ADMIN" {
			t.Fatalf("role not set from cookie token")
		}
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
}

func TestAuthMiddleware_MissingCredentials(t *testing.T) {
	e := echo.New()
	issuer := security.NewJWTIssuer("secret", time.Hour)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := Auth(issuer)(func(c echo.Context) error {
		t.Fatalf("next should not run")
		return nil
	})(c)

	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
}

func TestAuthMiddleware_InvalidToken(t *testing.T) {
	e := echo.New()
	issuer := security.NewJWTIssuer("secret", time.Hour)
	forged, err := security.NewJWTIssuer("other-secret", time.Hour).Issue("id", "USER")
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+forged)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err = Auth(issuer)(func(c echo.Context) error {
		t.Fatalf("next should not run")
		return nil
	})(c)

	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
}
