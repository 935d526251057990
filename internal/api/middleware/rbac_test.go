package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/shiftboard/jobboard-api/internal/core/domain"
)

type stubAccounts struct {
	exists bool
	err    error
	asked  []domain.Identity
}

func (s *stubAccounts) AccountExists(_ context.Context, id domain.Identity) (bool, error) {
	s.asked = append(s.asked, id)
	return s.exists, s.err
}

func contextWithIdentity(id *domain.Identity) (echo.Context, *httptest.ResponseRecorder, *echo.Echo) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if id != nil {
		c.Set(identityKey, *id)
	}
	return c, rec, e
}

func TestRequireRole_Allows(t *testing.T) {
	c, rec, _ := contextWithIdentity(&domain.Identity{ID: "js1", Role: domain.RoleJobSeeker})
	accounts := &stubAccounts{exists: true}

	called := false
	handler := RequireRole(accounts, domain.RoleJobSeeker)(func(c echo.Context) error {
		called = true
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("next handler not called")
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if len(accounts.asked) != 1 || accounts.asked[0].ID != "js1" {
		t.Fatalf("expected one existence check for js1, got %+v", accounts.asked)
	}
}

func TestRequireRole_ForbidsOtherRole(t *testing.T) {
	c, rec, _ := contextWithIdentity(&domain.Identity{ID: "c1", Role: domain.RoleCompany})
	accounts := &stubAccounts{exists: true}

	handler := RequireRole(accounts, domain.RoleJobSeeker)(func(c echo.Context) error {
		t.Fatalf("should not reach next handler")
		return nil
	})

	_ = handler(c)
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rec.Code)
	}
	if len(accounts.asked) != 0 {
		t.Fatalf("role mismatch must not hit the store")
	}
}

func TestRequireRole_DeletedAccount(t *testing.T) {
	for _, role := range []domain.Role{domain.RoleCompany, domain.RoleJobSeeker} {
		t.Run(string(role), func(t *testing.T) {
			c, rec, e := contextWithIdentity(&domain.Identity{ID: "gone", Role: role})

			handler := RequireRole(&stubAccounts{exists: false}, role)(func(c echo.Context) error {
				t.Fatalf("should not reach next handler")
				return nil
			})

			if err := handler(c); err != nil {
				e.HTTPErrorHandler(err, c)
			}
			if rec.Code != http.StatusUnauthorized {
				t.Fatalf("expected 401, got %d", rec.Code)
			}
		})
	}
}

func TestRequireRole_AnyRole(t *testing.T) {
	c, rec, _ := contextWithIdentity(&domain.Identity{ID: "c1", Role: domain.RoleCompany})

	handler := RequireRole(&stubAccounts{exists: true})(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestRequireRole_MissingIdentity(t *testing.T) {
	c, rec, e := contextWithIdentity(nil)

	handler := RequireRole(&stubAccounts{exists: true}, domain.RoleCompany)(func(c echo.Context) error {
		t.Fatalf("should not reach next handler")
		return nil
	})
	if err := handler(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestRequireRole_StoreError(t *testing.T) {
	c, _, _ := contextWithIdentity(&domain.Identity{ID: "c1", Role: domain.RoleCompany})
	boom := errors.New("mongo down")

	handler := RequireRole(&stubAccounts{err: boom}, domain.RoleCompany)(func(c echo.Context) error {
		t.Fatalf("should not reach next handler")
		return nil
	})
	if err := handler(c); !errors.Is(err, boom) {
		t.Fatalf("expected store error, got %v", err)
	}
}
