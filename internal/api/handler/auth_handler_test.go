package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/fixserve/account-service/internal/api/middleware"
	"github.com/fixserve/account-service/internal/core/domain"
	"github.com/fixserve/account-service/internal/core/ports"
)

type stubAuthService struct {
	loginFn          func(ctx context.Context, email, password string) (string, error)
	registerUserFn   func(ctx context.Context, input ports.RegisterUserInput) error
	registerTechFn   func(ctx context.Context, input ports.RegisterTechnicianInput) error
	changePasswordFn func(ctx context.Context, accountID, oldPassword, newPassword string) error
}

func (s *stubAuthService) Login(ctx context.Context, email, password string) (string, error) {
	return s.loginFn(ctx, email, password)
}

func (s *stubAuthService) RegisterUser(ctx context.Context, input ports.RegisterUserInput) error {
	return s.registerUserFn(ctx, input)
}

func (s *stubAuthService) RegisterTechnician(ctx context.Context, input ports.RegisterTechnicianInput) error {
	return s.registerTechFn(ctx, input)
}

func (s *stubAuthService) ChangePassword(ctx context.Context, accountID, oldPassword, newPassword string) error {
	return s.changePasswordFn(ctx, accountID, oldPassword, newPassword)
}

func newTestContext(t *testing.T, method, path, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = NewValidator()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestAuthHandler_Login_Success(t *testing.T) {
	stub := &stubAuthService{
		loginFn: func(_ context.Context, email, password string) (string, error) {
			if email != "a@example.com" || password != "Passw0rd!" {
				t.Fatalf("unexpected args: %s %s", email, password)
			}
			return "signed-token", nil
		},
	}
	h := NewAuthHandler(stub, time.Hour)

	c, rec := newTestContext(t, http.MethodPost, "/auth/login", `{"email":"a@example.com","password":"Passw0rd!"}`)
	if err := h.Login(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["token"] != "signed-token" {
		t.Fatalf("token missing from response: %v", resp)
	}

	cookies := rec.Result().Cookies()
	if len(cookies) != 1 || cookies[0].Name != middleware.TokenCookie || cookies[0].Value != "signed-token" {
		t.Fatalf("session cookie not set: %v", cookies)
	}
	if !cookies[0].HttpOnly {
		t.Fatalf("session cookie must be httpOnly")
	}
}

func TestAuthHandler_Login_ErrorsPropagate(t *testing.T) {
	stub := &stubAuthService{
		loginFn: func(context.Context, string, string) (string, error) {
			return "", domain.ErrInvalidCredentials
		},
	}
	h := NewAuthHandler(stub, time.Hour)

	c, _ := newTestContext(t, http.MethodPost, "/auth/login", `{"email":"a@example.com","password":"Passw0rd!"}`)
	if err := h.Login(c); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected credentials error to reach the error handler, got %v", err)
	}
}

func TestAuthHandler_Login_RejectsShortPassword(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{
		loginFn: func(context.Context, string, string) (string, error) {
			t.Fatalf("service should not be called on validation failure")
			return "", nil
		},
	}, time.Hour)

	c, _ := newTestContext(t, http.MethodPost, "/auth/login", `{"email":"a@example.com","password":"short"}`)
	err := h.Login(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}

func TestAuthHandler_Logout_ClearsCookie(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{}, time.Hour)

	c, rec := newTestContext(t, http.MethodPost, "/auth/logout", "")
	if err := h.Logout(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	cookies := rec.Result().Cookies()
	if len(cookies) != 1 || cookies[0].Value != "" || cookies[0].MaxAge >= 0 {
		t.Fatalf("expected expired empty cookie, got %v", cookies)
	}
}

func TestAuthHandler_RegisterUser_Success(t *testing.T) {
	var got ports.RegisterUserInput
	stub := &stubAuthService{
		registerUserFn: func(_ context.Context, input ports.RegisterUserInput) error {
			got = input
			return nil
		},
	}
	h := NewAuthHandler(stub, time.Hour)

	body := `{"fullName":"Alice","email":"alice@example.com","phoneNumber":"+123456789","password":"Passw0rd!","address":"1 Main St"}`
	c, rec := newTestContext(t, http.MethodPost, "/auth/register/user", body)
	if err := h.RegisterUser(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
	if got.Email != "alice@example.com" || got.Address != "1 Main St" {
		t.Fatalf("input not forwarded: %+v", got)
	}
}

func TestAuthHandler_RegisterUser_InvalidPhone(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{
		registerUserFn: func(context.Context, ports.RegisterUserInput) error {
			t.Fatalf("service should not be called")
			return nil
		},
	}, time.Hour)

	body := `{"fullName":"Alice","email":"alice@example.com","phoneNumber":"not-a-phone","password":"Passw0rd!","address":"x"}`
	c, _ := newTestContext(t, http.MethodPost, "/auth/register/user", body)
	err := h.RegisterUser(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}

func TestAuthHandler_RegisterTechnician_OptionalExperience(t *testing.T) {
	var got ports.RegisterTechnicianInput
	stub := &stubAuthService{
		registerTechFn: func(_ context.Context, input ports.RegisterTechnicianInput) error {
			got = input
			return nil
		},
	}
	h := NewAuthHandler(stub, time.Hour)

	body := `{"fullName":"Bob","email":"bob@example.com","phoneNumber":"+123456789","password":"Passw0rd!","address":"2 Side St"}`
	c, rec := newTestContext(t, http.MethodPost, "/auth/register/technician", body)
	if err := h.RegisterTechnician(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
	if got.ExperienceYears != nil {
		t.Fatalf("experience should stay absent when omitted, got %v", *got.ExperienceYears)
	}
}

func TestAuthHandler_ChangePassword_UsesTokenSubject(t *testing.T) {
	var gotID string
	stub := &stubAuthService{
		changePasswordFn: func(_ context.Context, accountID, oldPassword, newPassword string) error {
			gotID = accountID
			if oldPassword != "OldPass1!" || newPassword != "NewPass2@" {
				t.Fatalf("unexpected passwords: %s %s", oldPassword, newPassword)
			}
			return nil
		},
	}
	h := NewAuthHandler(stub, time.Hour)

	c, rec := newTestContext(t, http.MethodPut, "/auth/password", `{"oldPassword":"OldPass1!","newPassword":"NewPass2@"}`)
	c.Set(middleware.CtxAccountID, "id-9")
	c.Set(middleware.CtxRole, "USER")

	if err := h.ChangePassword(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if gotID != "id-9" {
		t.Fatalf("account id must come from claims, got %q", gotID)
	}
}

func TestAuthHandler_ChangePassword_MissingClaims(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{}, time.Hour)

	c, _ := newTestContext(t, http.MethodPut, "/auth/password", `{"oldPassword":"a","newPassword":"b"}`)
	err := h.ChangePassword(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
}
