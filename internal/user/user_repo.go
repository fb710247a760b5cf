package user

import (
	"context"

	"gorm.io/gorm"
)

//go:generate mockgen -source=user_repo.go -destination=mock/user_repo_mock.go -package=mock
type Repository interface {
	Create(ctx context.Context, u *User) error
	FindAll(ctx context.Context) ([]User, error)
	FindByCredentials(ctx context.Context, email, password string) (*User, error)
	DeleteByEmail(ctx context.Context, email string) (int64, error)
	Count(ctx context.Context) (int64, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, u *User) error {
	return r.db.WithContext(ctx).Create(u).Error
}

func (r *repository) FindAll(ctx context.Context) ([]User, error) {
	var users []User
	err := r.db.WithContext(ctx).Find(&users).Error
	return users, err
}

// FindByCredentials matches both fields verbatim, mirroring the exact
// findOne({email, password}) lookup of the legacy API.
func (r *repository) FindByCredentials(ctx context.Context, email, password string) (*User, error) {
	var u User
	err := r.db.WithContext(ctx).
		First(&u, "email = ? AND password = ?", email, password).Error
	return &u, err
}

func (r *repository) DeleteByEmail(ctx context.Context, email string) (int64, error) {
	res := r.db.WithContext(ctx).Delete(&User{}, "email = ?", email)
	return res.RowsAffected, res.Error
}

func (r *repository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&User{}).Count(&count).Error
	return count, err
}
