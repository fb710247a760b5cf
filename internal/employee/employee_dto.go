package employee

type CreateEmployeeRequest struct {
	Name          string   `json:"name" binding:"required"`
	Email         string   `json:"email" binding:"required,email"`
	Categories    string   `json:"categories" binding:"required"`
	Salary        *float64 `json:"salary" binding:"required,gte=0"`
	DateOfJoining string   `json:"date_of_joining" binding:"required"`
	Designation   string   `json:"designation" binding:"required"`
}

// UpdateEmployeeRequest replaces only the fields the caller supplies.
type UpdateEmployeeRequest struct {
	Name          *string  `json:"name"`
	Email         *string  `json:"email" binding:"omitempty,email"`
	Categories    *string  `json:"categories"`
	Salary        *float64 `json:"salary" binding:"omitempty,gte=0"`
	DateOfJoining *string  `json:"date_of_joining"`
	Designation   *string  `json:"designation"`
}

type EmployeeResponse struct {
	EmployeeID    int64   `json:"employeeId"`
	Name          string  `json:"name"`
	Email         string  `json:"email"`
	Categories    string  `json:"categories"`
	Salary        float64 `json:"salary"`
	DateOfJoining string  `json:"date_of_joining"`
	Designation   string  `json:"designation"`
}
