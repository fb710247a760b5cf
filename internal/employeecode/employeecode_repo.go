package employeecode

import (
	"context"

	"gorm.io/gorm"
)

//go:generate mockgen -source=employeecode_repo.go -destination=mock/employeecode_repo_mock.go -package=mock
type Repository interface {
	Create(ctx context.Context, ec *EmployeeCode) error
	FindAll(ctx context.Context) ([]EmployeeCode, error)
	FindByEmployeeID(ctx context.Context, employeeID int64) (*EmployeeCode, error)
	ExistsForEmployee(ctx context.Context, employeeID int64) (bool, error)
	UpdateCode(ctx context.Context, employeeID int64, code string) (int64, error)
	Delete(ctx context.Context, employeeID int64) (int64, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, ec *EmployeeCode) error {
	return r.db.WithContext(ctx).Create(ec).Error
}

func (r *repository) FindAll(ctx context.Context) ([]EmployeeCode, error) {
	var codes []EmployeeCode
	err := r.db.WithContext(ctx).Find(&codes).Error
	return codes, err
}

func (r *repository) FindByEmployeeID(ctx context.Context, employeeID int64) (*EmployeeCode, error) {
	var ec EmployeeCode
	err := r.db.WithContext(ctx).
		First(&ec, "employee_id = ?", employeeID).Error
	return &ec, err
}

func (r *repository) ExistsForEmployee(ctx context.Context, employeeID int64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&EmployeeCode{}).
		Where("employee_id = ?", employeeID).
		Count(&count).Error
	return count > 0, err
}

func (r *repository) UpdateCode(ctx context.Context, employeeID int64, code string) (int64, error) {
	res := r.db.WithContext(ctx).
		Model(&EmployeeCode{}).
		Where("employee_id = ?", employeeID).
		Update("employee_code", code)
	return res.RowsAffected, res.Error
}

func (r *repository) Delete(ctx context.Context, employeeID int64) (int64, error) {
	res := r.db.WithContext(ctx).Delete(&EmployeeCode{}, "employee_id = ?", employeeID)
	return res.RowsAffected, res.Error
}
