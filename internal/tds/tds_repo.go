package tds

import (
	"context"

	"gorm.io/gorm"
)

//go:generate mockgen -source=tds_repo.go -destination=mock/tds_repo_mock.go -package=mock
type Repository interface {
	Create(ctx context.Context, rec *TDSRecord) error
	FindAll(ctx context.Context) ([]TDSRecord, error)
	ExistsByPan(ctx context.Context, panCardNo string) (bool, error)
	ExistsByPanExcluding(ctx context.Context, panCardNo string, tdsID int64) (bool, error)
	UpdateRecord(ctx context.Context, tdsID int64, fields map[string]any) (int64, error)
	FindByTDSID(ctx context.Context, tdsID int64) (*TDSRecord, error)
	Delete(ctx context.Context, tdsID int64) (int64, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, rec *TDSRecord) error {
	return r.db.WithContext(ctx).Create(rec).Error
}

func (r *repository) FindAll(ctx context.Context) ([]TDSRecord, error) {
	var recs []TDSRecord
	err := r.db.WithContext(ctx).Find(&recs).Error
	return recs, err
}

func (r *repository) ExistsByPan(ctx context.Context, panCardNo string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&TDSRecord{}).
		Where("pan_card_no = ?", panCardNo).
		Count(&count).Error
	return count > 0, err
}

// ExistsByPanExcluding ignores the record being updated, so keeping
// one's own PAN unchanged never reads as a collision.
func (r *repository) ExistsByPanExcluding(ctx context.Context, panCardNo string, tdsID int64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&TDSRecord{}).
		Where("pan_card_no = ? AND tds_id <> ?", panCardNo, tdsID).
		Count(&count).Error
	return count > 0, err
}

func (r *repository) UpdateRecord(ctx context.Context, tdsID int64, fields map[string]any) (int64, error) {
	res := r.db.WithContext(ctx).
		Model(&TDSRecord{}).
		Where("tds_id = ?", tdsID).
		Updates(fields)
	return res.RowsAffected, res.Error
}

func (r *repository) FindByTDSID(ctx context.Context, tdsID int64) (*TDSRecord, error) {
	var rec TDSRecord
	err := r.db.WithContext(ctx).
		First(&rec, "tds_id = ?", tdsID).Error
	return &rec, err
}

func (r *repository) Delete(ctx context.Context, tdsID int64) (int64, error) {
	res := r.db.WithContext(ctx).Delete(&TDSRecord{}, "tds_id = ?", tdsID)
	return res.RowsAffected, res.Error
}
