package counter

import (
	"context"

	"gorm.io/gorm"
)

// Entity kinds that receive allocator-assigned public ids.
const (
	KindEmployee     = "employee"
	KindPayslip      = "payslip"
	KindClient       = "client"
	KindEmployeeCode = "employee_code"
	KindTDSRecord    = "tds_record"
)

//go:generate mockgen -destination=mock/counter_repo_mock.go -package=mock . Repository
type Repository interface {
	NextValue(ctx context.Context, entity string) (int64, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

// NextValue hands out a strictly increasing sequence per entity kind,
// starting at 1. The raw upsert keeps the increment atomic, so two
// concurrent creates can never receive the same value. A create that
// fails after allocation leaves a gap; gaps are fine.
func (r *repository) NextValue(ctx context.Context, entity string) (int64, error) {
	var nextValue int64

	err := r.db.WithContext(ctx).Raw(`
		INSERT INTO entity_counters (entity, last_value, updated_at)
		VALUES (?, 1, now())
		ON CONFLICT (entity) DO UPDATE
		SET last_value = entity_counters.last_value + 1, updated_at = now()
		RETURNING last_value
	`, entity).Scan(&nextValue).Error

	if err != nil {
		return 0, err
	}

	return nextValue, nil
}
