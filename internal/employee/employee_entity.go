package employee

import (
	"time"

	"github.com/google/uuid"
)

// Employee is keyed internally by a uuid row id; EmployeeID is the
// allocator-assigned public identifier the dashboard works with.
type Employee struct {
	ID            uuid.UUID `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	EmployeeID    int64     `gorm:"column:employee_id;not null;uniqueIndex:uq_employees_employee_id"`
	Name          string    `gorm:"column:name;type:text;not null"`
	Email         string    `gorm:"column:email;type:text;not null"`
	Categories    string    `gorm:"column:categories;type:text;not null"`
	Salary        float64   `gorm:"column:salary;not null"`
	DateOfJoining time.Time `gorm:"column:date_of_joining;not null"`
	Designation   string    `gorm:"column:designation;type:text;not null"`
	CreatedAt     time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt     time.Time `gorm:"column:updated_at;autoUpdateTime"`
}
