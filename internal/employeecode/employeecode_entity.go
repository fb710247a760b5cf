package employeecode

import (
	"time"

	"github.com/google/uuid"
)

// EmployeeCode links an employee to a unique badge/code string. The
// one-code-per-employee rule is enforced by a pre-check at creation,
// not by a storage constraint.
type EmployeeCode struct {
	ID             uuid.UUID `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	EmployeeCodeID int64     `gorm:"column:employee_code_id;not null;uniqueIndex:uq_employee_codes_id"`
	EmployeeID     int64     `gorm:"column:employee_id;not null;index"`
	EmployeeCode   string    `gorm:"column:employee_code;type:text;not null;uniqueIndex:uq_employee_codes_code"`
	CreatedAt      time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt      time.Time `gorm:"column:updated_at;autoUpdateTime"`
}
