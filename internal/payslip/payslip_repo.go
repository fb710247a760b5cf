package payslip

import (
	"context"

	"gorm.io/gorm"
)

//go:generate mockgen -source=payslip_repo.go -destination=mock/payslip_repo_mock.go -package=mock
type Repository interface {
	Create(ctx context.Context, p *Payslip) error
	FindByEmployeeID(ctx context.Context, employeeID int64) ([]Payslip, error)
	FindByEmployeeIDAndPeriod(ctx context.Context, employeeID int64, payPeriod string) ([]Payslip, error)
	FindByPayslipID(ctx context.Context, payslipID int64) (*Payslip, error)
	Delete(ctx context.Context, payslipID int64) (int64, error)
	Count(ctx context.Context) (int64, error)
	CountByPayPeriod(ctx context.Context) ([]MonthCount, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, p *Payslip) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *repository) FindByEmployeeID(ctx context.Context, employeeID int64) ([]Payslip, error) {
	var slips []Payslip
	err := r.db.WithContext(ctx).
		Find(&slips, "employee_id = ?", employeeID).Error
	return slips, err
}

func (r *repository) FindByEmployeeIDAndPeriod(ctx context.Context, employeeID int64, payPeriod string) ([]Payslip, error) {
	var slips []Payslip
	err := r.db.WithContext(ctx).
		Find(&slips, "employee_id = ? AND pay_period = ?", employeeID, payPeriod).Error
	return slips, err
}

func (r *repository) FindByPayslipID(ctx context.Context, payslipID int64) (*Payslip, error) {
	var p Payslip
	err := r.db.WithContext(ctx).
		First(&p, "payslip_id = ?", payslipID).Error
	return &p, err
}

func (r *repository) Delete(ctx context.Context, payslipID int64) (int64, error) {
	res := r.db.WithContext(ctx).Delete(&Payslip{}, "payslip_id = ?", payslipID)
	return res.RowsAffected, res.Error
}

func (r *repository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&Payslip{}).Count(&count).Error
	return count, err
}

func (r *repository) CountByPayPeriod(ctx context.Context) ([]MonthCount, error) {
	var rows []MonthCount
	err := r.db.WithContext(ctx).
		Model(&Payslip{}).
		Select("pay_period, COUNT(*) AS count").
		Group("pay_period").
		Order("pay_period ASC").
		Scan(&rows).Error
	return rows, err
}
