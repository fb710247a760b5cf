package payslip

import (
	"time"

	"github.com/google/uuid"
)

// Payslip stores the rendered PDF in-row. EmployeeID is a soft
// reference: nothing checks the employee exists, and deleting an
// employee leaves its payslips behind.
type Payslip struct {
	ID         uuid.UUID `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	PayslipID  int64     `gorm:"column:payslip_id;not null;uniqueIndex:uq_payslips_payslip_id"`
	EmployeeID int64     `gorm:"column:employee_id;not null;index"`
	PayPeriod  string    `gorm:"column:pay_period;type:varchar(7);not null"`
	CreatedAt  time.Time `gorm:"column:created_at;autoCreateTime"`
	PDFFile    []byte    `gorm:"column:pdf_file;type:bytea;not null"`
}
