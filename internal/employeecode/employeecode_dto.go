package employeecode

type CreateEmployeeCodeRequest struct {
	EmployeeID   *int64 `json:"employeeId" binding:"required"`
	EmployeeCode string `json:"employeeCode" binding:"required"`
}

type UpdateEmployeeCodeRequest struct {
	EmployeeCode string `json:"employeeCode" binding:"required"`
}

type EmployeeCodeResponse struct {
	EmployeeCodeID int64  `json:"employeeCodeId"`
	EmployeeID     int64  `json:"employeeId"`
	EmployeeCode   string `json:"employeeCode"`
}
