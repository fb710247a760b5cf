package user_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"hr-payroll/internal/user"
	usererrors "hr-payroll/internal/user/errors"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type fakeUserService struct {
	GetAllFn        func(ctx context.Context) ([]user.UserResponse, error)
	RegisterFn      func(ctx context.Context, req user.CreateUserRequest) error
	DeleteByEmailFn func(ctx context.Context, email string) error
	CountFn         func(ctx context.Context) (int64, error)
}

func (f *fakeUserService) GetAll(ctx context.Context) ([]user.UserResponse, error) {
	return f.GetAllFn(ctx)
}
func (f *fakeUserService) Register(ctx context.Context, req user.CreateUserRequest) error {
	return f.RegisterFn(ctx, req)
}
func (f *fakeUserService) DeleteByEmail(ctx context.Context, email string) error {
	return f.DeleteByEmailFn(ctx, email)
}
func (f *fakeUserService) Count(ctx context.Context) (int64, error) {
	return f.CountFn(ctx)
}

func setupUserRouter(svc user.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	user.RegisterRoutes(r.Group(""), user.NewHandler(svc))
	return r
}

func TestUserHandler_Register(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc := &fakeUserService{
			RegisterFn: func(ctx context.Context, req user.CreateUserRequest) error {
				assert.Equal(t, "admin@company.com", req.Email)
				return nil
			},
		}

		r := setupUserRouter(svc)
		body := `{"email":"admin@company.com","password":"secret"}`
		req := httptest.NewRequest(http.MethodPost, "/users", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()

		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.JSONEq(t, `{"message":"User registered successfully"}`, w.Body.String())
	})

	t.Run("missing password", func(t *testing.T) {
		r := setupUserRouter(&fakeUserService{})
		req := httptest.NewRequest(http.MethodPost, "/users", strings.NewReader(`{"email":"admin@company.com"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()

		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	// The legacy API reported a duplicate registration as its generic
	// 500, and the dashboard relies on that.
	t.Run("duplicate email surfaces as 500", func(t *testing.T) {
		svc := &fakeUserService{
			RegisterFn: func(ctx context.Context, req user.CreateUserRequest) error {
				return usererrors.ErrEmailAlreadyRegistered
			},
		}

		r := setupUserRouter(svc)
		body := `{"email":"admin@company.com","password":"secret"}`
		req := httptest.NewRequest(http.MethodPost, "/users", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()

		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Contains(t, w.Body.String(), "An error occurred while processing your request.")
	})
}

func TestUserHandler_Delete(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc := &fakeUserService{
			DeleteByEmailFn: func(ctx context.Context, email string) error {
				assert.Equal(t, "admin@company.com", email)
				return nil
			},
		}

		r := setupUserRouter(svc)
		body := `{"email":"admin@company.com"}`
		req := httptest.NewRequest(http.MethodDelete, "/users", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()

		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"message":"User removed successfully"}`, w.Body.String())
	})

	t.Run("unknown email", func(t *testing.T) {
		svc := &fakeUserService{
			DeleteByEmailFn: func(ctx context.Context, email string) error {
				return usererrors.ErrUserNotFound
			},
		}

		r := setupUserRouter(svc)
		req := httptest.NewRequest(http.MethodDelete, "/users", strings.NewReader(`{"email":"nobody@company.com"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()

		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Contains(t, w.Body.String(), "User not found.")
	})
}

func TestUserHandler_Count(t *testing.T) {
	svc := &fakeUserService{
		CountFn: func(ctx context.Context) (int64, error) { return 3, nil },
	}

	r := setupUserRouter(svc)
	req := httptest.NewRequest(http.MethodGet, "/total-users", nil)
	w := httptest.NewRecorder()

	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"total":3}`, w.Body.String())
}
