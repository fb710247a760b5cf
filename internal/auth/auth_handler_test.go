package auth_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"hr-payroll/internal/auth"
	autherrors "hr-payroll/internal/auth/errors"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type fakeAuthService struct {
	LoginFn func(ctx context.Context, email, password string) (string, error)
}

func (f *fakeAuthService) Login(ctx context.Context, email, password string) (string, error) {
	return f.LoginFn(ctx, email, password)
}

func setupAuthRouter(svc auth.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	auth.RegisterRoutes(r.Group(""), auth.NewHandler(svc))
	return r
}

func TestAuthHandler_Login(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc := &fakeAuthService{
			LoginFn: func(ctx context.Context, email, password string) (string, error) {
				assert.Equal(t, "admin@company.com", email)
				return "signed.jwt.token", nil
			},
		}

		r := setupAuthRouter(svc)
		body := `{"email":"admin@company.com","password":"secret"}`
		req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()

		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"message":"Login successful","token":"signed.jwt.token"}`, w.Body.String())
	})

	t.Run("invalid credentials", func(t *testing.T) {
		svc := &fakeAuthService{
			LoginFn: func(ctx context.Context, email, password string) (string, error) {
				return "", autherrors.ErrInvalidCredentials
			},
		}

		r := setupAuthRouter(svc)
		body := `{"email":"admin@company.com","password":"wrong"}`
		req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()

		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "Login failed. Invalid username or password.")
	})

	t.Run("missing fields", func(t *testing.T) {
		r := setupAuthRouter(&fakeAuthService{})
		req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(`{}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()

		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
