package employee

import (
	"context"

	"gorm.io/gorm"
)

//go:generate mockgen -source=employee_repo.go -destination=mock/employee_repo_mock.go -package=mock
type Repository interface {
	Create(ctx context.Context, empl *Employee) error
	FindAll(ctx context.Context) ([]Employee, error)
	FindByEmployeeID(ctx context.Context, employeeID int64) (*Employee, error)
	UpdateFields(ctx context.Context, employeeID int64, fields map[string]any) (int64, error)
	Delete(ctx context.Context, employeeID int64) (int64, error)
	Count(ctx context.Context) (int64, error)
	SumSalary(ctx context.Context) (float64, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, empl *Employee) error {
	return r.db.WithContext(ctx).Create(empl).Error
}

func (r *repository) FindAll(ctx context.Context) ([]Employee, error) {
	var empls []Employee
	err := r.db.WithContext(ctx).Find(&empls).Error
	return empls, err
}

func (r *repository) FindByEmployeeID(ctx context.Context, employeeID int64) (*Employee, error) {
	var empl Employee
	err := r.db.WithContext(ctx).
		First(&empl, "employee_id = ?", employeeID).Error
	return &empl, err
}

func (r *repository) UpdateFields(ctx context.Context, employeeID int64, fields map[string]any) (int64, error) {
	res := r.db.WithContext(ctx).
		Model(&Employee{}).
		Where("employee_id = ?", employeeID).
		Updates(fields)
	return res.RowsAffected, res.Error
}

func (r *repository) Delete(ctx context.Context, employeeID int64) (int64, error) {
	res := r.db.WithContext(ctx).Delete(&Employee{}, "employee_id = ?", employeeID)
	return res.RowsAffected, res.Error
}

func (r *repository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&Employee{}).Count(&count).Error
	return count, err
}

// SumSalary coalesces to 0 so an empty table never yields a NULL scan.
func (r *repository) SumSalary(ctx context.Context) (float64, error) {
	var total float64
	err := r.db.WithContext(ctx).
		Model(&Employee{}).
		Select("COALESCE(SUM(salary), 0)").
		Scan(&total).Error
	return total, err
}
