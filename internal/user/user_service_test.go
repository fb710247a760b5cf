package user_test

import (
	"context"
	"errors"
	"testing"

	"hr-payroll/internal/user"
	usererrors "hr-payroll/internal/user/errors"

	"github.com/stretchr/testify/assert"
)

type fakeUserRepo struct {
	CreateFn            func(ctx context.Context, u *user.User) error
	FindAllFn           func(ctx context.Context) ([]user.User, error)
	FindByCredentialsFn func(ctx context.Context, email, password string) (*user.User, error)
	DeleteByEmailFn     func(ctx context.Context, email string) (int64, error)
	CountFn             func(ctx context.Context) (int64, error)
}

func (f *fakeUserRepo) Create(ctx context.Context, u *user.User) error {
	return f.CreateFn(ctx, u)
}
func (f *fakeUserRepo) FindAll(ctx context.Context) ([]user.User, error) {
	return f.FindAllFn(ctx)
}
func (f *fakeUserRepo) FindByCredentials(ctx context.Context, email, password string) (*user.User, error) {
	return f.FindByCredentialsFn(ctx, email, password)
}
func (f *fakeUserRepo) DeleteByEmail(ctx context.Context, email string) (int64, error) {
	return f.DeleteByEmailFn(ctx, email)
}
func (f *fakeUserRepo) Count(ctx context.Context) (int64, error) {
	return f.CountFn(ctx)
}

func TestUserService_Register(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		repo := &fakeUserRepo{
			CreateFn: func(ctx context.Context, u *user.User) error {
				assert.Equal(t, "admin@company.com", u.Email)
				assert.Equal(t, "secret", u.Password)
				return nil
			},
		}

		svc := user.NewService(repo)
		err := svc.Register(ctx, user.CreateUserRequest{Email: "admin@company.com", Password: "secret"})

		assert.NoError(t, err)
	})

	t.Run("repo error", func(t *testing.T) {
		repo := &fakeUserRepo{
			CreateFn: func(ctx context.Context, u *user.User) error {
				return errors.New("db error")
			},
		}

		svc := user.NewService(repo)
		err := svc.Register(ctx, user.CreateUserRequest{Email: "admin@company.com", Password: "secret"})

		assert.Error(t, err)
	})
}

func TestUserService_GetAll(t *testing.T) {
	ctx := context.Background()

	repo := &fakeUserRepo{
		FindAllFn: func(ctx context.Context) ([]user.User, error) {
			return []user.User{
				{Email: "admin@company.com", Password: "secret"},
				{Email: "hr@company.com", Password: "hunter2"},
			}, nil
		},
	}

	svc := user.NewService(repo)
	resp, err := svc.GetAll(ctx)

	assert.NoError(t, err)
	assert.Len(t, resp, 2)
	assert.Equal(t, "admin@company.com", resp[0].Email)
}

func TestUserService_DeleteByEmail(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		repo := &fakeUserRepo{
			DeleteByEmailFn: func(ctx context.Context, email string) (int64, error) {
				assert.Equal(t, "admin@company.com", email)
				return 1, nil
			},
		}

		svc := user.NewService(repo)
		err := svc.DeleteByEmail(ctx, "admin@company.com")

		assert.NoError(t, err)
	})

	t.Run("unknown email", func(t *testing.T) {
		repo := &fakeUserRepo{
			DeleteByEmailFn: func(ctx context.Context, email string) (int64, error) {
				return 0, nil
			},
		}

		svc := user.NewService(repo)
		err := svc.DeleteByEmail(ctx, "nobody@company.com")

		assert.ErrorIs(t, err, usererrors.ErrUserNotFound)
	})
}

func TestUserService_Count(t *testing.T) {
	repo := &fakeUserRepo{
		CountFn: func(ctx context.Context) (int64, error) { return 3, nil },
	}

	svc := user.NewService(repo)
	total, err := svc.Count(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, int64(3), total)
}
