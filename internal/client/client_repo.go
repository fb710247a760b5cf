package client

import (
	"context"

	"gorm.io/gorm"
)

//go:generate mockgen -source=client_repo.go -destination=mock/client_repo_mock.go -package=mock
type Repository interface {
	Create(ctx context.Context, cl *Client) error
	FindAll(ctx context.Context) ([]Client, error)
	FindByClientID(ctx context.Context, clientID int64) (*Client, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	UpdateProfile(ctx context.Context, clientID int64, fields map[string]any) (int64, error)
	Delete(ctx context.Context, clientID int64) (int64, error)
	Count(ctx context.Context) (int64, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, cl *Client) error {
	return r.db.WithContext(ctx).Create(cl).Error
}

func (r *repository) FindAll(ctx context.Context) ([]Client, error) {
	var clients []Client
	err := r.db.WithContext(ctx).Find(&clients).Error
	return clients, err
}

func (r *repository) FindByClientID(ctx context.Context, clientID int64) (*Client, error) {
	var cl Client
	err := r.db.WithContext(ctx).
		First(&cl, "client_id = ?", clientID).Error
	return &cl, err
}

func (r *repository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&Client{}).
		Where("email = ?", email).
		Count(&count).Error
	return count > 0, err
}

func (r *repository) UpdateProfile(ctx context.Context, clientID int64, fields map[string]any) (int64, error) {
	res := r.db.WithContext(ctx).
		Model(&Client{}).
		Where("client_id = ?", clientID).
		Updates(fields)
	return res.RowsAffected, res.Error
}

func (r *repository) Delete(ctx context.Context, clientID int64) (int64, error) {
	res := r.db.WithContext(ctx).Delete(&Client{}, "client_id = ?", clientID)
	return res.RowsAffected, res.Error
}

func (r *repository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&Client{}).Count(&count).Error
	return count, err
}
