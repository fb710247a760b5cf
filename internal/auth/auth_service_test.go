package auth_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"hr-payroll/internal/auth"
	autherrors "hr-payroll/internal/auth/errors"
	"hr-payroll/internal/user"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

const testSecret = "test-secret"

type fakeUserRepo struct {
	FindByCredentialsFn func(ctx context.Context, email, password string) (*user.User, error)
}

func (f *fakeUserRepo) Create(ctx context.Context, u *user.User) error { return nil }
func (f *fakeUserRepo) FindAll(ctx context.Context) ([]user.User, error) {
	return nil, nil
}
func (f *fakeUserRepo) FindByCredentials(ctx context.Context, email, password string) (*user.User, error) {
	return f.FindByCredentialsFn(ctx, email, password)
}
func (f *fakeUserRepo) DeleteByEmail(ctx context.Context, email string) (int64, error) {
	return 0, nil
}
func (f *fakeUserRepo) Count(ctx context.Context) (int64, error) { return 0, nil }

func TestAuthService_Login(t *testing.T) {
	ctx := context.Background()

	t.Run("success - token carries email and a 24h expiry", func(t *testing.T) {
		repo := &fakeUserRepo{
			FindByCredentialsFn: func(ctx context.Context, email, password string) (*user.User, error) {
				assert.Equal(t, "admin@company.com", email)
				assert.Equal(t, "secret", password)
				return &user.User{Email: email, Password: password}, nil
			},
		}

		svc := auth.NewService(repo, testSecret)
		token, err := svc.Login(ctx, "admin@company.com", "secret")

		assert.NoError(t, err)
		assert.NotEmpty(t, token)

		parsed, err := jwt.Parse(token, func(t *jwt.Token) (any, error) {
			return []byte(testSecret), nil
		})
		assert.NoError(t, err)
		assert.True(t, parsed.Valid)

		claims, ok := parsed.Claims.(jwt.MapClaims)
		assert.True(t, ok)
		assert.Equal(t, "admin@company.com", claims["email"])

		exp, err := claims.GetExpirationTime()
		assert.NoError(t, err)
		assert.WithinDuration(t, time.Now().Add(24*time.Hour), exp.Time, time.Minute)
	})

	t.Run("wrong credentials", func(t *testing.T) {
		repo := &fakeUserRepo{
			FindByCredentialsFn: func(ctx context.Context, email, password string) (*user.User, error) {
				return nil, gorm.ErrRecordNotFound
			},
		}

		svc := auth.NewService(repo, testSecret)
		token, err := svc.Login(ctx, "admin@company.com", "wrong")

		assert.Empty(t, token)
		assert.ErrorIs(t, err, autherrors.ErrInvalidCredentials)
	})

	t.Run("store error is not an auth failure", func(t *testing.T) {
		repo := &fakeUserRepo{
			FindByCredentialsFn: func(ctx context.Context, email, password string) (*user.User, error) {
				return nil, errors.New("db error")
			},
		}

		svc := auth.NewService(repo, testSecret)
		_, err := svc.Login(ctx, "admin@company.com", "secret")

		assert.Error(t, err)
		assert.NotErrorIs(t, err, autherrors.ErrInvalidCredentials)
	})
}
